//go:build unit || e2e

package builder

import (
	"time"

	"do-coupon-system/internal/domain/coupon"
	reqdto "do-coupon-system/internal/handler/dto/request"
)

type CouponBuilder struct {
	ID           string
	Hash         coupon.Hash
	Title        string
	Description  string
	Expiry       time.Time
	AssignedFrom string
	AssignedTo   string
	UsesLeft     int
	Active       bool
	Contact      string
	Email        string
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		ID:           "cpn-1",
		Hash:         "0123456789abcdef0123456789abcdef",
		Title:        "Free Coffee",
		Description:  "One small coffee",
		Expiry:       time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC),
		AssignedFrom: "provA",
		AssignedTo:   "alice",
		UsesLeft:     1,
		Active:       true,
		Email:        "alice@example.com",
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	return coupon.Reconstruct(b.ID, b.Hash, b.Title, b.Description, b.Expiry, b.AssignedFrom, b.AssignedTo, b.UsesLeft, b.Active, b.Contact)
}

// BuildAttrs returns the CMS record for strapitest.Seed.
func (b *CouponBuilder) BuildAttrs() map[string]any {
	return map[string]any{
		"Hash":         b.Hash.String(),
		"Title":        b.Title,
		"Description":  b.Description,
		"Expiry":       coupon.FormatExpiry(b.Expiry, time.UTC),
		"AssignedFrom": b.AssignedFrom,
		"AssignedTo":   b.AssignedTo,
		"UsesLeft":     b.UsesLeft,
		"Active":       b.Active,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Title:        b.Title,
		Description:  b.Description,
		Expiry:       coupon.FormatExpiry(b.Expiry, time.UTC),
		AssignedFrom: b.AssignedFrom,
		AssignedTo:   b.AssignedTo,
		Email:        b.Email,
		Contact:      b.Contact,
	}
}

func (b *CouponBuilder) BuildUseRequestDTO(username string) reqdto.UseCouponRequest {
	return reqdto.UseCouponRequest{
		Hash:     b.Hash.String(),
		Username: username,
		Provider: b.AssignedFrom,
	}
}
