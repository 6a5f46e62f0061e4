package response

import (
	"do-coupon-system/internal/domain/coupon"
	"do-coupon-system/internal/usecase/commands"
	"do-coupon-system/internal/usecase/queries"
)

type ValidateCouponResponse struct {
	Status      string `json:"status"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	UsesLeft    *int   `json:"uses_left,omitempty"`
	Message     string `json:"message"`
}

func FromValidateResult(r *commands.ValidateResult, msg string) ValidateCouponResponse {
	resp := ValidateCouponResponse{Status: r.Status.String(), Message: msg}
	if r.Status == coupon.StatusValid {
		uses := r.UsesLeft
		resp.Title = r.Title
		resp.Description = r.Description
		resp.UsesLeft = &uses
	}
	return resp
}

func NewValidateFailure(status coupon.Status, msg string) ValidateCouponResponse {
	return ValidateCouponResponse{Status: status.String(), Message: msg}
}

type UseCouponResponse struct {
	Status   string `json:"status"`
	UsesLeft int    `json:"uses_left"`
	Message  string `json:"message"`
}

const StatusDone = "done"

type CreateCouponResponse struct {
	CouponStatus string `json:"couponStatus"`
	QRData       string `json:"QRdata,omitempty"`
	Message      string `json:"message"`
}

const (
	CouponStatusActive = "active"
	CouponStatusFail   = "fail"
)

type CouponListResponse struct {
	Items      []*queries.CouponView `json:"items"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	PageSize   int                   `json:"page_size"`
	TotalPages int                   `json:"total_pages"`
}

func FromCouponPage(p *queries.CouponPage) CouponListResponse {
	items := p.Items
	if items == nil {
		items = []*queries.CouponView{}
	}
	return CouponListResponse{
		Items:      items,
		Total:      p.Total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
