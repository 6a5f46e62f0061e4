package request

import (
	"bytes"
	"encoding/json"

	"do-coupon-system/internal/pkg/ptr"
	"do-coupon-system/internal/usecase/commands"
)

type RecordDeductionRequest struct {
	Amount      *float64 `json:"amount" binding:"required"`
	Discount    *float64 `json:"discount"`
	Account     string   `json:"account" binding:"required"`
	MemberName  string   `json:"member_name" binding:"required"`
	MemberEmail string   `json:"member_email"`
	Notes       string   `json:"notes"`
}

func (r *RecordDeductionRequest) ToCommand() commands.RecordDeductionRequest {
	return commands.RecordDeductionRequest{
		Amount:      ptr.Deref(r.Amount),
		Discount:    ptr.Deref(r.Discount),
		Account:     r.Account,
		MemberName:  r.MemberName,
		MemberEmail: r.MemberEmail,
		Notes:       r.Notes,
	}
}

// DeductPointsRequest acts on behalf of the logged-in account.
type DeductPointsRequest struct {
	MemberEmail string   `json:"member_email" binding:"required,email"`
	Amount      *float64 `json:"amount" binding:"required"`
	Discount    *float64 `json:"discount"`
	Notes       string   `json:"notes" binding:"required"`
}

func (r *DeductPointsRequest) ToCommand(account string) commands.DeductPointsRequest {
	return commands.DeductPointsRequest{
		Account:     account,
		MemberEmail: r.MemberEmail,
		Amount:      ptr.Deref(r.Amount),
		Discount:    ptr.Deref(r.Discount),
		Notes:       r.Notes,
	}
}

type LookupMemberRequest struct {
	MembershipNumber NumberString `json:"membership_number" binding:"required"`
}

// NumberString accepts a membership number typed as either a JSON string or number.
type NumberString string

func (n *NumberString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumberString(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*n = NumberString(num.String())
	return nil
}
