package readstore

import (
	"context"
	"net/http"

	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/infra/converter"
	"do-coupon-system/internal/infra/strapi"
	"do-coupon-system/internal/usecase/queries"
)

type MemberReadStore struct {
	client *strapi.Client
}

func NewMemberReadStore(client *strapi.Client) *MemberReadStore {
	return &MemberReadStore{client: client}
}

func (r *MemberReadStore) FindByNumber(ctx context.Context, collection, number string) ([]*queries.MemberView, error) {
	q := strapi.Query{Filters: []strapi.Filter{strapi.Eq(strapi.FieldMembershipNumber, number)}}

	var docs []strapi.MemberDocument
	if _, err := r.client.Find(ctx, collection, q, &docs); err != nil {
		if strapi.StatusOf(err) == http.StatusNotFound {
			return nil, infra.WrapRepoErr("membership collection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member by number", err)
	}

	out := make([]*queries.MemberView, 0, len(docs))
	for _, d := range docs {
		m := converter.MemberToDomain(d)
		out = append(out, &queries.MemberView{
			MembershipNumber: m.MembershipNumber(),
			Name:             m.Name(),
			DisplayName:      m.DisplayName(),
			Email:            m.Email(),
			ExpiryDate:       m.ExpiryDate(),
			Point:            m.Point(),
			DiscountPoint:    m.DiscountPoint(),
		})
	}
	return out, nil
}
