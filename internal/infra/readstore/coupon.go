package readstore

import (
	"context"
	"strconv"

	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/infra/strapi"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/usecase/queries"
)

type CouponReadStore struct {
	client     *strapi.Client
	collection string
}

func NewCouponReadStore(client *strapi.Client, store config.StoreConfig) *CouponReadStore {
	return &CouponReadStore{
		client:     client,
		collection: store.CouponCollection,
	}
}

// ListCoupons walks every page. An empty issuer lists all issuers.
func (r *CouponReadStore) ListCoupons(ctx context.Context, issuer string, activeOnly bool) ([]*queries.CouponView, error) {
	var q strapi.Query
	if issuer != "" {
		q.Filters = append(q.Filters, strapi.Eq(strapi.FieldAssignedFrom, issuer))
	}
	if activeOnly {
		q.Filters = append(q.Filters, strapi.Eq(strapi.FieldActive, strconv.FormatBool(true)))
	}

	docs, err := strapi.FindAll[strapi.CouponDocument](ctx, r.client, r.collection, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}

	out := make([]*queries.CouponView, 0, len(docs))
	for _, d := range docs {
		out = append(out, toCouponView(d))
	}
	return out, nil
}

func toCouponView(d strapi.CouponDocument) *queries.CouponView {
	return &queries.CouponView{
		ID:           d.Key(),
		Hash:         d.Hash.String(),
		Title:        d.Title.String(),
		Description:  d.Description.String(),
		Expiry:       d.Expiry.String(),
		AssignedFrom: d.AssignedFrom.String(),
		AssignedTo:   d.AssignedTo.String(),
		UsesLeft:     d.UsesLeft,
		Active:       d.Active,
		Contact:      d.Contact.String(),
	}
}
