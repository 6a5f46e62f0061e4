package account

import (
	"sort"
	"strings"

	"do-coupon-system/internal/pkg/password"
)

// Account is a staff login held in the CMS. Its history is append-only.
type Account struct {
	id              string
	name            string
	password        string
	role            Role
	membershipField string
	currentStatus   string
	entries         []Entry
}

func Reconstruct(id, name, storedPassword string, role Role, membershipField, currentStatus string, entries []Entry) *Account {
	return &Account{
		id:              id,
		name:            name,
		password:        storedPassword,
		role:            role,
		membershipField: membershipField,
		currentStatus:   currentStatus,
		entries:         entries,
	}
}

// CheckPassword accepts bcrypt hashes and legacy plaintext values.
func (a *Account) CheckPassword(supplied string) error {
	return password.Verify(a.password, supplied)
}

func (a *Account) HasLegacyPassword() bool {
	return a.password != "" && !password.IsHashed(a.password)
}

// IsActive treats an unset status as active.
func (a *Account) IsActive() bool {
	s := strings.TrimSpace(a.currentStatus)
	return s == "" || strings.EqualFold(s, StatusActive)
}

func (a *Account) Append(r Record) {
	a.entries = append(a.entries, r.Entry())
}

// Entries returns the history ready to be written back.
func (a *Account) Entries() []Entry {
	out := make([]Entry, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.WithoutID())
	}
	return out
}

// History returns decoded records, newest first.
func (a *Account) History() []Record {
	out := make([]Record, 0, len(a.entries))
	for _, e := range a.entries {
		out = append(out, e.Record())
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time.After(out[j].Time)
	})
	return out
}

func (a *Account) ID() string              { return a.id }
func (a *Account) Name() string            { return a.name }
func (a *Account) Role() Role              { return a.role }
func (a *Account) MembershipField() string { return a.membershipField }
func (a *Account) CurrentStatus() string   { return a.currentStatus }
