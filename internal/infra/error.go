package infra

import (
	"errors"
	"log/slog"

	"do-coupon-system/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr classifies err. Without an explicit kind it is an upstream failure.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindUpstreamFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	if k == KindUpstreamFailure || k == KindInvalidPayload {
		args := []any{slog.String("kind", string(k))}
		if err != nil {
			args = append(args, slog.String("error", err.Error()))
		}
		slog.Error("Repository error: "+msg, args...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound        RepositoryErrorKind = "NOT_FOUND"
	KindAmbiguous       RepositoryErrorKind = "AMBIGUOUS"
	KindUpstreamFailure RepositoryErrorKind = "UPSTREAM_FAILURE"
	KindInvalidPayload  RepositoryErrorKind = "INVALID_PAYLOAD"
)
