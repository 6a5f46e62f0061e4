package coupon

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidHash   = errors.New("coupon hash is required")
	ErrInvalidExpiry = errors.New("invalid coupon expiry")
)

const hashBytes = 16

// Hash is the redemption code printed into the QR image.
type Hash string

// NewHash generates a fresh 32-character hex code. Collisions are not checked.
func NewHash() (Hash, error) {
	b := make([]byte, hashBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return Hash(hex.EncodeToString(b)), nil
}

// ParseHash accepts any non-blank code; older coupons were issued with other formats.
func ParseHash(s string) (Hash, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidHash
	}
	return Hash(s), nil
}

func (h Hash) String() string {
	return string(h)
}

// Status is the outcome of checking a coupon against the redemption rules.
type Status string

const (
	StatusValid    Status = "valid"
	StatusInvalid  Status = "invalid"
	StatusExpired  Status = "expired"
	StatusUsed     Status = "used"
	StatusInactive Status = "inactive"
	StatusError    Status = "error"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsRedeemable() bool {
	return s == StatusValid
}

const expiryDateLayout = "2006-01-02"

// ParseExpiry reads a CMS date ("2006-01-02") or a full RFC3339 timestamp.
// A date-only value stays valid until the end of that day in loc.
func ParseExpiry(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidExpiry
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(expiryDateLayout, s, loc); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidExpiry
}

// FormatExpiry renders the date the CMS stores.
func FormatExpiry(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(expiryDateLayout)
}
