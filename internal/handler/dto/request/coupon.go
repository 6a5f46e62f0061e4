package request

import (
	"do-coupon-system/internal/pkg/patch"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/internal/usecase/queries"
)

type ValidateCouponRequest struct {
	Hash     string `json:"hash" binding:"required"`
	Provider string `json:"provider"`
}

type UseCouponRequest struct {
	Hash     string `json:"hash" binding:"required"`
	Username string `json:"username" binding:"required"`
	Provider string `json:"provider"`
}

func (r *UseCouponRequest) ToCommand() commands.UseCouponRequest {
	return commands.UseCouponRequest{
		Hash:     r.Hash,
		Username: r.Username,
		Provider: r.Provider,
	}
}

type CreateCouponRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Expiry       string `json:"expiry" binding:"required"`
	AssignedFrom string `json:"assigned_from" binding:"required"`
	AssignedTo   string `json:"assigned_to" binding:"required"`
	Email        string `json:"email" binding:"omitempty,email"`
	Contact      string `json:"contact"`
}

func (r *CreateCouponRequest) ToCommand() commands.CreateCouponRequest {
	return commands.CreateCouponRequest{
		Title:        r.Title,
		Description:  r.Description,
		Expiry:       r.Expiry,
		AssignedFrom: r.AssignedFrom,
		AssignedTo:   r.AssignedTo,
		Email:        r.Email,
		Contact:      r.Contact,
	}
}

// ListCouponsQuery binds GET /coupons. ActiveOnly defaults to true.
type ListCouponsQuery struct {
	Q          string `form:"q"`
	ActiveOnly *bool  `form:"active_only"`
	Sort       string `form:"sort" binding:"omitempty,oneof=Title Expiry UsesLeft"`
	Order      string `form:"order" binding:"omitempty,oneof=asc desc"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=200"`
}

func (q *ListCouponsQuery) ToParams() queries.ListCouponsParams {
	return queries.ListCouponsParams{
		Query:      q.Q,
		ActiveOnly: patch.Coalesce(q.ActiveOnly, true),
		Sort:       q.Sort,
		Desc:       q.Order == "desc",
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
}

type QRQuery struct {
	Size int `form:"size" binding:"omitempty,min=64,max=1024"`
}
