package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"do-coupon-system/internal/pkg/background"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/usecase/commands"

	"github.com/avast/retry-go"
)

type statusError struct {
	code int
}

func (e statusError) Error() string {
	return fmt.Sprintf("email endpoint answered %d", e.code)
}

func retryable(err error) bool {
	var se statusError
	if errs.As(err, &se) {
		return se.code >= 500 || se.code == http.StatusTooManyRequests
	}
	return true
}

// EmailNotifier posts notifications to an external mail relay in the background.
// With no endpoint configured every notification is dropped.
type EmailNotifier struct {
	endpoint string
	http     *http.Client
	attempts uint
	delay    time.Duration
	tasks    *background.Group
}

func NewEmailNotifier(cfg config.NotifyConfig) *EmailNotifier {
	return &EmailNotifier{
		endpoint: cfg.EmailEndpoint,
		http:     &http.Client{Timeout: cfg.Timeout},
		attempts: cfg.Attempts,
		delay:    cfg.Delay,
		tasks:    background.New(cfg.Timeout * time.Duration(cfg.Attempts+1)),
	}
}

func (n *EmailNotifier) Notify(note commands.Notification) {
	if n.endpoint == "" || note.To == "" {
		slog.Debug("notification skipped", slog.String("kind", string(note.Kind)))
		return
	}

	n.tasks.Go("notify "+string(note.Kind), func(ctx context.Context) error {
		if err := n.Send(ctx, note); err != nil {
			return errs.Wrapf(err, "deliver to %s", note.To)
		}
		return nil
	})
}

// Send delivers synchronously, retrying transport errors and 5xx answers.
func (n *EmailNotifier) Send(ctx context.Context, note commands.Notification) error {
	body, err := json.Marshal(note)
	if err != nil {
		return errs.Wrap(err, "encode notification")
	}

	return retry.Do(
		func() error {
			return n.post(ctx, body)
		},
		retry.Context(ctx),
		retry.RetryIf(retryable),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(n.delay),
		retry.Attempts(n.attempts),
		retry.LastErrorOnly(true),
	)
}

func (n *EmailNotifier) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "post notification")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 300 {
		return statusError{code: resp.StatusCode}
	}
	return nil
}

// Wait blocks until background deliveries finish.
func (n *EmailNotifier) Wait() {
	n.tasks.Wait()
}

// Shutdown drops later notifications and drains in-flight ones.
func (n *EmailNotifier) Shutdown(ctx context.Context) error {
	return n.tasks.Shutdown(ctx)
}
