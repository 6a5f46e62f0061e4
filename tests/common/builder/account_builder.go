//go:build unit || e2e

package builder

import (
	"testing"

	"do-coupon-system/internal/domain/account"
	"do-coupon-system/internal/pkg/password"

	"github.com/stretchr/testify/require"
)

type AccountBuilder struct {
	ID              string
	Name            string
	Password        string
	Role            account.Role
	MembershipField string
	CurrentStatus   string
	Entries         []account.Entry
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:       "acc-1",
		Name:     "provA",
		Password: "password123",
		Role:     account.RoleProvider,
	}
}

func (a *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(a)
	return a
}

// BuildDomain keeps the password in plaintext, the legacy storage form.
func (a *AccountBuilder) BuildDomain() *account.Account {
	return account.Reconstruct(a.ID, a.Name, a.Password, a.Role, a.MembershipField, a.CurrentStatus, a.Entries)
}

// BuildAttrs returns a CMS record with a bcrypt password, ready for strapitest.Seed.
func (a *AccountBuilder) BuildAttrs(t *testing.T) map[string]any {
	t.Helper()
	hashed, err := password.HashPassword(a.Password)
	require.NoError(t, err)

	attrs := map[string]any{
		"Name":     a.Name,
		"Password": hashed,
		"Role":     a.Role.String(),
	}
	if a.MembershipField != "" {
		attrs["MembershipField"] = a.MembershipField
	}
	if a.CurrentStatus != "" {
		attrs["CurrentStatus"] = a.CurrentStatus
	}
	if len(a.Entries) > 0 {
		list := make([]map[string]any, 0, len(a.Entries))
		for _, e := range a.Entries {
			list = append(list, map[string]any(e))
		}
		attrs["ConsumptionRecord"] = list
	}
	return attrs
}
