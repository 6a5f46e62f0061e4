package repository

import (
	"context"
	"net/http"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/infra/converter"
	"do-coupon-system/internal/infra/strapi"
	"do-coupon-system/internal/pkg/config"
)

type AccountRepository struct {
	client     *strapi.Client
	collection string
}

func NewAccountRepository(client *strapi.Client, store config.StoreConfig) *AccountRepository {
	return &AccountRepository{
		client:     client,
		collection: store.AccountCollection,
	}
}

// FindByName returns every account with that name; callers decide what a
// duplicate means.
func (r *AccountRepository) FindByName(ctx context.Context, name string) ([]*account.Account, error) {
	q := strapi.Query{
		Filters:  []strapi.Filter{strapi.Eq(strapi.FieldName, name)},
		Populate: []string{strapi.FieldConsumptionRecord},
	}

	var docs []strapi.AccountDocument
	if _, err := r.client.Find(ctx, r.collection, q, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to find account by name", err)
	}

	out := make([]*account.Account, 0, len(docs))
	for _, d := range docs {
		out = append(out, converter.AccountToDomain(d))
	}
	return out, nil
}

// SaveHistory rewrites the whole ConsumptionRecord list.
func (r *AccountRepository) SaveHistory(ctx context.Context, a *account.Account) error {
	if err := r.client.Update(ctx, r.collection, a.ID(), converter.AccountToHistoryPayload(a), nil); err != nil {
		switch strapi.StatusOf(err) {
		case http.StatusNotFound:
			return infra.WrapRepoErr("account disappeared before update", err, infra.KindNotFound)
		case http.StatusBadRequest:
			return infra.WrapRepoErr("history rejected by store", err, infra.KindInvalidPayload)
		}
		return infra.WrapRepoErr("failed to update account history", err)
	}
	return nil
}
