package response

import "do-coupon-system/internal/usecase/commands"

type LoginResponse struct {
	Role            string `json:"role"`
	MembershipField string `json:"membershipField,omitempty"`
	Message         string `json:"message"`
	Token           string `json:"token"`
}

func FromLoginResult(r *commands.LoginResult, msg string) LoginResponse {
	return LoginResponse{
		Role:            r.Role.String(),
		MembershipField: r.MembershipField,
		Message:         msg,
		Token:           r.Token,
	}
}

// LoginFailure keeps role "none" so the login page can branch on it.
type LoginFailure struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

func NewLoginFailure(msg string) LoginFailure {
	return LoginFailure{Role: "none", Message: msg}
}

type VerifySessionResponse struct {
	Valid bool `json:"valid"`
}
