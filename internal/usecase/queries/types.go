package queries

import (
	"time"

	"do-coupon-system/internal/domain/account"
)

// CouponView is the admin-facing projection of a coupon
type CouponView struct {
	ID           string `json:"id"`
	Hash         string `json:"hash"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Expiry       string `json:"expiry"`
	AssignedFrom string `json:"assigned_from"`
	AssignedTo   string `json:"assigned_to"`
	UsesLeft     int    `json:"uses_left"`
	Active       bool   `json:"active"`
	Contact      string `json:"contact,omitempty"`
}

type CouponPage struct {
	Items      []*CouponView `json:"items"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	TotalPages int           `json:"total_pages"`
}

// HistoryItem is one consumption record as shown on the history page
type HistoryItem struct {
	Consumer       string    `json:"consumer"`
	Provider       string    `json:"provider"`
	Platform       string    `json:"platform"`
	Time           time.Time `json:"time"`
	Amount         float64   `json:"amount"`
	AdditionalInfo string    `json:"additional_info"`
}

// AccountView carries what the read side needs about an account; never the password
type AccountView struct {
	ID              string
	Name            string
	Role            account.Role
	MembershipField string
	Active          bool
	History         []HistoryItem
}

type MemberView struct {
	MembershipNumber string  `json:"membership_number"`
	Name             string  `json:"name"`
	DisplayName      string  `json:"display_name"`
	Email            string  `json:"email"`
	ExpiryDate       string  `json:"expiry_date"`
	Point            float64 `json:"point"`
	DiscountPoint    float64 `json:"discount_point"`
}

// Actor is the authenticated caller of a read endpoint
type Actor struct {
	Username string
	Role     account.Role
}
