package repository

import (
	"context"
	"net/http"

	"do-coupon-system/internal/domain/membership"
	"do-coupon-system/internal/infra"
	"do-coupon-system/internal/infra/converter"
	"do-coupon-system/internal/infra/strapi"
)

// MemberRepository reads membership collections whose names come from accounts.
type MemberRepository struct {
	client *strapi.Client
}

func NewMemberRepository(client *strapi.Client) *MemberRepository {
	return &MemberRepository{client: client}
}

func (r *MemberRepository) FindByEmail(ctx context.Context, collection, email string) ([]*membership.Member, error) {
	return r.findBy(ctx, collection, strapi.FieldEmail, email)
}

func (r *MemberRepository) FindByNumber(ctx context.Context, collection, number string) ([]*membership.Member, error) {
	return r.findBy(ctx, collection, strapi.FieldMembershipNumber, number)
}

func (r *MemberRepository) findBy(ctx context.Context, collection, field, value string) ([]*membership.Member, error) {
	q := strapi.Query{Filters: []strapi.Filter{strapi.Eq(field, value)}}

	var docs []strapi.MemberDocument
	if _, err := r.client.Find(ctx, collection, q, &docs); err != nil {
		if strapi.StatusOf(err) == http.StatusNotFound {
			return nil, infra.WrapRepoErr("membership collection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find members", err)
	}

	out := make([]*membership.Member, 0, len(docs))
	for _, d := range docs {
		out = append(out, converter.MemberToDomain(d))
	}
	return out, nil
}

func (r *MemberRepository) SaveBalance(ctx context.Context, collection string, m *membership.Member) error {
	if err := r.client.Update(ctx, collection, m.ID(), converter.MemberToBalancePayload(m), nil); err != nil {
		if strapi.StatusOf(err) == http.StatusNotFound {
			return infra.WrapRepoErr("member disappeared before update", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update member balance", err)
	}
	return nil
}
