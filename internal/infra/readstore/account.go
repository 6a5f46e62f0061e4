package readstore

import (
	"context"

	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/infra/converter"
	"do-coupon-system/internal/infra/strapi"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/usecase/queries"
)

type AccountReadStore struct {
	client     *strapi.Client
	collection string
}

func NewAccountReadStore(client *strapi.Client, store config.StoreConfig) *AccountReadStore {
	return &AccountReadStore{
		client:     client,
		collection: store.AccountCollection,
	}
}

func (r *AccountReadStore) FindByName(ctx context.Context, name string) ([]*queries.AccountView, error) {
	q := strapi.Query{
		Filters:  []strapi.Filter{strapi.Eq(strapi.FieldName, name)},
		Populate: []string{strapi.FieldConsumptionRecord},
	}
	docs, err := strapi.FindAll[strapi.AccountDocument](ctx, r.client, r.collection, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find account by name", err)
	}

	out := make([]*queries.AccountView, 0, len(docs))
	for _, d := range docs {
		out = append(out, toAccountView(d))
	}
	return out, nil
}

// toAccountView goes through the domain so history decoding stays in one place.
func toAccountView(d strapi.AccountDocument) *queries.AccountView {
	acc := converter.AccountToDomain(d)
	records := acc.History()
	history := make([]queries.HistoryItem, 0, len(records))
	for _, r := range records {
		history = append(history, queries.HistoryItem{
			Consumer:       r.Consumer,
			Provider:       r.Provider,
			Platform:       r.Platform.String(),
			Time:           r.Time,
			Amount:         r.Amount,
			AdditionalInfo: r.AdditionalInfo,
		})
	}
	return &queries.AccountView{
		ID:              acc.ID(),
		Name:            acc.Name(),
		Role:            acc.Role(),
		MembershipField: acc.MembershipField(),
		Active:          acc.IsActive(),
		History:         history,
	}
}
