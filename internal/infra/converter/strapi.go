package converter

import (
	"time"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/domain/coupon"
	"do-coupon-system/internal/domain/membership"
	"do-coupon-system/internal/infra/strapi"
	"do-coupon-system/internal/pkg/ptr"
)

// CouponToDomain tolerates an unreadable expiry by treating it as already expired.
func CouponToDomain(d strapi.CouponDocument, loc *time.Location) *coupon.Coupon {
	exp, err := coupon.ParseExpiry(d.Expiry.String(), loc)
	if err != nil {
		exp = time.Time{}
	}
	return coupon.Reconstruct(
		d.Key(),
		coupon.Hash(d.Hash),
		d.Title.String(),
		d.Description.String(),
		exp,
		d.AssignedFrom.String(),
		d.AssignedTo.String(),
		d.UsesLeft,
		d.Active,
		d.Contact.String(),
	)
}

func CouponToCreatePayload(c *coupon.Coupon, loc *time.Location) map[string]any {
	return map[string]any{
		strapi.FieldHash:         c.Hash().String(),
		strapi.FieldTitle:        c.Title(),
		strapi.FieldDescription:  ptr.NonEmpty(c.Description()),
		strapi.FieldExpiry:       coupon.FormatExpiry(c.Expiry(), loc),
		strapi.FieldAssignedFrom: c.AssignedFrom(),
		strapi.FieldAssignedTo:   c.AssignedTo(),
		strapi.FieldUsesLeft:     c.UsesLeft(),
		strapi.FieldActive:       c.Active(),
		strapi.FieldContact:      ptr.NonEmpty(c.Contact()),
	}
}

// CouponToStatePayload carries only the fields redemption may change.
func CouponToStatePayload(c *coupon.Coupon) map[string]any {
	return map[string]any{
		strapi.FieldUsesLeft: c.UsesLeft(),
		strapi.FieldActive:   c.Active(),
	}
}

func AccountToDomain(d strapi.AccountDocument) *account.Account {
	entries := make([]account.Entry, 0, len(d.ConsumptionRecord))
	for _, e := range d.ConsumptionRecord {
		entries = append(entries, account.Entry(e))
	}
	return account.Reconstruct(
		d.Key(),
		d.Name.String(),
		d.Password.String(),
		account.Role(d.Role),
		d.MembershipField.String(),
		d.CurrentStatus.String(),
		entries,
	)
}

func AccountToHistoryPayload(a *account.Account) map[string]any {
	entries := a.Entries()
	out := make([]map[string]any, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]any(e))
	}
	return map[string]any{strapi.FieldConsumptionRecord: out}
}

func MemberToDomain(d strapi.MemberDocument) *membership.Member {
	return membership.Reconstruct(
		d.Key(),
		d.MembershipNumber.String(),
		d.Name.String(),
		d.UserName.String(),
		d.Email.String(),
		d.ExpiryDate.String(),
		d.Point,
		d.DiscountPoint,
	)
}

func MemberToBalancePayload(m *membership.Member) map[string]any {
	return map[string]any{
		strapi.FieldPoint:         m.Point(),
		strapi.FieldDiscountPoint: m.DiscountPoint(),
	}
}
