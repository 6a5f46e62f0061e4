package repository

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"do-coupon-system/internal/domain/coupon"
	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/infra/converter"
	"do-coupon-system/internal/infra/strapi"
	"do-coupon-system/internal/pkg/config"
)

type CouponRepository struct {
	client     *strapi.Client
	collection string
	loc        *time.Location
}

func NewCouponRepository(client *strapi.Client, store config.StoreConfig, cc config.CouponConfig) *CouponRepository {
	return &CouponRepository{
		client:     client,
		collection: store.CouponCollection,
		loc:        cc.Location(),
	}
}

// FindByHash narrows by issuer when one is given.
func (r *CouponRepository) FindByHash(ctx context.Context, hash coupon.Hash, issuer string) (*coupon.Coupon, error) {
	q := strapi.Query{Filters: []strapi.Filter{strapi.Eq(strapi.FieldHash, hash.String())}}
	if issuer != "" {
		q.Filters = append(q.Filters, strapi.Eq(strapi.FieldAssignedFrom, issuer))
	}

	var docs []strapi.CouponDocument
	if _, err := r.client.Find(ctx, r.collection, q, &docs); err != nil {
		return nil, infra.WrapRepoErr("failed to find coupon by hash", err)
	}

	switch len(docs) {
	case 0:
		return nil, infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	case 1:
		return converter.CouponToDomain(docs[0], r.loc), nil
	default:
		slog.Error("multiple coupons share one hash",
			slog.String("hash", hash.String()),
			slog.String("issuer", issuer),
			slog.Int("matches", len(docs)))
		return nil, infra.WrapRepoErr("coupon hash is ambiguous", nil, infra.KindAmbiguous)
	}
}

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	if err := r.client.Create(ctx, r.collection, converter.CouponToCreatePayload(c, r.loc), nil); err != nil {
		if strapi.StatusOf(err) == http.StatusBadRequest {
			return infra.WrapRepoErr("coupon rejected by store", err, infra.KindInvalidPayload)
		}
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

func (r *CouponRepository) SaveState(ctx context.Context, c *coupon.Coupon) error {
	if err := r.client.Update(ctx, r.collection, c.ID(), converter.CouponToStatePayload(c), nil); err != nil {
		if strapi.StatusOf(err) == http.StatusNotFound {
			return infra.WrapRepoErr("coupon disappeared before update", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	return nil
}
