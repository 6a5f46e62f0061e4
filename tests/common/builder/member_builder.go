//go:build unit || e2e

package builder

import (
	"do-coupon-system/internal/domain/membership"
	reqdto "do-coupon-system/internal/handler/dto/request"
	"do-coupon-system/internal/pkg/ptr"
)

type MemberBuilder struct {
	ID               string
	MembershipNumber string
	Name             string
	Email            string
	Point            float64
	DiscountPoint    float64
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:               "mem-1",
		MembershipNumber: "1001",
		Name:             "Alice",
		Email:            "alice@example.com",
		Point:            100,
		DiscountPoint:    20,
	}
}

func (b *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(b)
	return b
}

func (b *MemberBuilder) BuildDomain() *membership.Member {
	return membership.Reconstruct(b.ID, b.MembershipNumber, b.Name, "", b.Email, "", b.Point, b.DiscountPoint)
}

func (b *MemberBuilder) BuildAttrs() map[string]any {
	return map[string]any{
		"MembershipNumber": b.MembershipNumber,
		"Name":             b.Name,
		"Email":            b.Email,
		"Point":            b.Point,
		"DiscountPoint":    b.DiscountPoint,
	}
}

func (b *MemberBuilder) BuildDeductRequestDTO(amount, discount float64) reqdto.DeductPointsRequest {
	return reqdto.DeductPointsRequest{
		MemberEmail: b.Email,
		Amount:      ptr.Of(amount),
		Discount:    ptr.Of(discount),
		Notes:       "Lunch",
	}
}

func (b *MemberBuilder) BuildRecordRequestDTO(account string, amount float64) reqdto.RecordDeductionRequest {
	return reqdto.RecordDeductionRequest{
		Amount:      ptr.Of(amount),
		Account:     account,
		MemberName:  b.Name,
		MemberEmail: b.Email,
		Notes:       "Lunch",
	}
}

