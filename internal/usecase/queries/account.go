package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/pkg/errs"
)

//go:generate mockgen -source=account.go -destination=../../../tests/mock/queries/account_mock.go -package=queriesmock

var (
	ErrAccountNotFound = errs.New("account not found")
	ErrSessionInvalid  = errs.New("session invalid")
)

type AccountReadStore interface {
	FindByName(ctx context.Context, name string) ([]*AccountView, error)
}

type HistoryQueries interface {
	List(ctx context.Context, username, query string) ([]HistoryItem, error)
}

type SessionQueries interface {
	Verify(ctx context.Context, name string, role account.Role) error
}

type historyQueriesImpl struct {
	store AccountReadStore
}

func NewHistoryQueries(store AccountReadStore) HistoryQueries {
	return &historyQueriesImpl{store: store}
}

func (q *historyQueriesImpl) List(ctx context.Context, username, query string) ([]HistoryItem, error) {
	acc, err := single(ctx, q.store, username)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	items := make([]HistoryItem, 0, len(acc.History))
	for _, h := range acc.History {
		if query != "" &&
			!strings.Contains(strings.ToLower(h.Consumer), query) &&
			!strings.Contains(strings.ToLower(h.AdditionalInfo), query) {
			continue
		}
		items = append(items, h)
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Time.After(items[j].Time) })
	return items, nil
}

type sessionQueriesImpl struct {
	store AccountReadStore
}

func NewSessionQueries(store AccountReadStore) SessionQueries {
	return &sessionQueriesImpl{store: store}
}

// Verify succeeds only for exactly one active account holding the given role.
func (q *sessionQueriesImpl) Verify(ctx context.Context, name string, role account.Role) error {
	name = strings.TrimSpace(name)
	if name == "" || !role.IsValid() {
		return ErrSessionInvalid
	}
	accounts, err := q.store.FindByName(ctx, name)
	if err != nil {
		return errs.Mark(err, ErrStoreUnavailable)
	}

	var matches int
	for _, a := range accounts {
		if a.Role == role && a.Active {
			matches++
		}
	}
	if matches != 1 {
		return ErrSessionInvalid
	}
	return nil
}

func single(ctx context.Context, store AccountReadStore, name string) (*AccountView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrAccountNotFound
	}
	accounts, err := store.FindByName(ctx, name)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	switch len(accounts) {
	case 0:
		return nil, ErrAccountNotFound
	case 1:
		return accounts[0], nil
	default:
		slog.Error("multiple accounts share one name", slog.String("account", name), slog.Int("matches", len(accounts)))
		return nil, ErrAccountNotFound
	}
}
