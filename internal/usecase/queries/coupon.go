package queries

import (
	"context"
	"sort"
	"strings"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/pkg/config"
	"do-coupon-system/internal/pkg/errs"
)

//go:generate mockgen -source=coupon.go -destination=../../../tests/mock/queries/coupon_mock.go -package=queriesmock

var (
	ErrForbidden        = errs.New("access denied")
	ErrStoreUnavailable = errs.New("record store unavailable")
)

const (
	SortTitle    = "Title"
	SortExpiry   = "Expiry"
	SortUsesLeft = "UsesLeft"
)

type ListCouponsParams struct {
	Query      string
	ActiveOnly bool
	Sort       string
	Desc       bool
	Page       int
	PageSize   int
}

type CouponReadStore interface {
	ListCoupons(ctx context.Context, issuer string, activeOnly bool) ([]*CouponView, error)
}

type CouponQueries interface {
	List(ctx context.Context, actor Actor, params ListCouponsParams) (*CouponPage, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	cfg   config.CouponConfig
}

func NewCouponQueries(store CouponReadStore, cfg config.CouponConfig) CouponQueries {
	return &couponQueriesImpl{store: store, cfg: cfg}
}

// List scopes providers to coupons they issued. Admins see everything.
func (q *couponQueriesImpl) List(ctx context.Context, actor Actor, params ListCouponsParams) (*CouponPage, error) {
	var issuer string
	switch actor.Role {
	case account.RoleAdmin:
	case account.RoleProvider:
		issuer = actor.Username
	default:
		return nil, ErrForbidden
	}

	items, err := q.store.ListCoupons(ctx, issuer, params.ActiveOnly)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}

	items = filterCoupons(items, params.Query)
	sortCoupons(items, params.Sort, params.Desc)

	size := params.PageSize
	if size <= 0 {
		size = q.cfg.PageSize
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	return paginate(items, params.Page, size), nil
}

func filterCoupons(items []*CouponView, query string) []*CouponView {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}
	out := make([]*CouponView, 0, len(items))
	for _, c := range items {
		if strings.Contains(strings.ToLower(c.Title), query) ||
			strings.Contains(strings.ToLower(c.AssignedTo), query) ||
			strings.Contains(strings.ToLower(c.AssignedFrom), query) {
			out = append(out, c)
		}
	}
	return out
}

func sortCoupons(items []*CouponView, key string, desc bool) {
	var less func(a, b *CouponView) bool
	switch key {
	case SortTitle:
		less = func(a, b *CouponView) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case SortUsesLeft:
		less = func(a, b *CouponView) bool { return a.UsesLeft < b.UsesLeft }
	case SortExpiry:
		// CMS dates are ISO so lexical order is chronological
		less = func(a, b *CouponView) bool { return a.Expiry < b.Expiry }
	default:
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

func paginate(items []*CouponView, page, size int) *CouponPage {
	if size > MaxListLimit {
		size = MaxListLimit
	}
	total := len(items)
	pages := (total + size - 1) / size
	if page < 1 {
		page = 1
	}

	// past the last page the slice is empty; page is never multiplied there
	start := total
	if page <= pages {
		start = (page - 1) * size
	}
	end := start + size
	if end > total {
		end = total
	}

	return &CouponPage{
		Items:      items[start:end],
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: pages,
	}
}
