package membership

import (
	"errors"
	"strings"
)

var (
	ErrNegativeAmount        = errors.New("amounts must not be negative")
	ErrEmptyDeduction        = errors.New("amount and discount are both zero")
	ErrInsufficientDiscount  = errors.New("not enough discount points")
	ErrInsufficientPoints    = errors.New("not enough points")
	ErrMembershipNumberEmpty = errors.New("membership number is required")
)

// Member is a record in an account's membership collection.
type Member struct {
	id               string
	membershipNumber string
	name             string
	userName         string
	email            string
	expiryDate       string
	point            float64
	discountPoint    float64
}

func Reconstruct(id, membershipNumber, name, userName, email, expiryDate string, point, discountPoint float64) *Member {
	return &Member{
		id:               id,
		membershipNumber: membershipNumber,
		name:             name,
		userName:         userName,
		email:            email,
		expiryDate:       expiryDate,
		point:            point,
		discountPoint:    discountPoint,
	}
}

// DisplayName prefers the user-chosen name.
func (m *Member) DisplayName() string {
	if strings.TrimSpace(m.userName) != "" {
		return m.userName
	}
	return m.name
}

// Deduction spends total, of which discount comes out of DiscountPoint.
type Deduction struct {
	total    float64
	discount float64
}

func NewDeduction(total, discount float64) (Deduction, error) {
	if total < 0 || discount < 0 {
		return Deduction{}, ErrNegativeAmount
	}
	if total == 0 && discount == 0 {
		return Deduction{}, ErrEmptyDeduction
	}
	return Deduction{total: total, discount: discount}, nil
}

func (d Deduction) Total() float64    { return d.total }
func (d Deduction) Discount() float64 { return d.discount }

// Apply updates both balances or neither.
func (m *Member) Apply(d Deduction) error {
	newDiscount := m.discountPoint - d.discount
	if newDiscount < 0 {
		return ErrInsufficientDiscount
	}
	newPoint := m.point - d.total + d.discount
	if newPoint < 0 {
		return ErrInsufficientPoints
	}
	m.point = newPoint
	m.discountPoint = newDiscount
	return nil
}

func (m *Member) ID() string               { return m.id }
func (m *Member) MembershipNumber() string { return m.membershipNumber }
func (m *Member) Name() string             { return m.name }
func (m *Member) UserName() string         { return m.userName }
func (m *Member) Email() string            { return m.email }
func (m *Member) ExpiryDate() string       { return m.expiryDate }
func (m *Member) Point() float64           { return m.point }
func (m *Member) DiscountPoint() float64   { return m.discountPoint }
