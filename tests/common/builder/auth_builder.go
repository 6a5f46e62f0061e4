//go:build unit || e2e

package builder

import (
	reqdto "do-coupon-system/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "provA",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Name:     a.Name,
		Password: a.Password,
	}
}

func (a *AuthBuilder) With(mutate func(*AuthBuilder)) *AuthBuilder {
	mutate(a)
	return a
}
