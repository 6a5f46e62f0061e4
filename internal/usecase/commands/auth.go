package commands

import (
	"context"
	"log/slog"
	"strings"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/pkg/errs"
	"do-coupon-system/internal/pkg/jwt"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrAccountInactive    = errs.New("account inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const OpLogin = "login"

type LoginResult struct {
	Name            string
	Role            account.Role
	MembershipField string
	Token           string
}

type AuthCommands interface {
	Login(ctx context.Context, name, password string) (*LoginResult, error)
}

type authCommandsImpl struct {
	accounts   AccountRepository
	jwtService *jwt.Service
	outcomes   OutcomeRecorder
}

func NewAuthCommands(accounts AccountRepository, jwtService *jwt.Service, outcomes OutcomeRecorder) AuthCommands {
	return &authCommandsImpl{
		accounts:   accounts,
		jwtService: jwtService,
		outcomes:   outcomes,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, name, password string) (*LoginResult, error) {
	name = strings.TrimSpace(name)
	if name == "" || password == "" {
		a.outcomes.Outcome(OpLogin, "invalid")
		return nil, errs.Mark(errs.New("name and password are required"), ErrInvalidInput)
	}

	acc, err := a.resolve(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := acc.CheckPassword(password); err != nil {
		a.outcomes.Outcome(OpLogin, "rejected")
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}
	if acc.HasLegacyPassword() {
		slog.Warn("account still stores a plaintext password", slog.String("account", acc.Name()))
	}
	if !acc.IsActive() {
		a.outcomes.Outcome(OpLogin, "inactive")
		return nil, ErrAccountInactive
	}

	token, err := a.jwtService.GenerateToken(acc.Name(), acc.Role(), acc.MembershipField())
	if err != nil {
		a.outcomes.Outcome(OpLogin, "error")
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.outcomes.Outcome(OpLogin, "ok")
	return &LoginResult{
		Name:            acc.Name(),
		Role:            acc.Role(),
		MembershipField: acc.MembershipField(),
		Token:           token,
	}, nil
}

func (a *authCommandsImpl) resolve(ctx context.Context, name string) (*account.Account, error) {
	accounts, err := a.accounts.FindByName(ctx, name)
	if err != nil {
		a.outcomes.Outcome(OpLogin, "error")
		return nil, errs.Mark(err, ErrStoreUnavailable)
	}
	switch len(accounts) {
	case 0:
		a.outcomes.Outcome(OpLogin, "not_found")
		return nil, ErrAccountNotFound
	case 1:
		return accounts[0], nil
	default:
		slog.Error("multiple accounts share one name", slog.String("account", name), slog.Int("matches", len(accounts)))
		a.outcomes.Outcome(OpLogin, "not_found")
		return nil, ErrAccountNotFound
	}
}
