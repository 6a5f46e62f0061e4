package coupon

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrTitleRequired     = errors.New("coupon title is required")
	ErrIssuerRequired    = errors.New("coupon issuer is required")
	ErrRecipientRequired = errors.New("coupon recipient is required")
	ErrInvalidUses       = errors.New("coupon uses must be positive")
	ErrNotRedeemable     = errors.New("coupon is not redeemable")
)

// Coupon mirrors a CMS coupon record. usesLeft only decreases and reaching
// zero clears active.
type Coupon struct {
	id           string
	hash         Hash
	title        string
	description  string
	expiry       time.Time
	assignedFrom string
	assignedTo   string
	usesLeft     int
	active       bool
	contact      string
}

// New issues a fresh active coupon with a random hash.
func New(title, description string, expiry time.Time, assignedFrom, assignedTo string, uses int, contact string) (*Coupon, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(assignedFrom) == "" {
		return nil, ErrIssuerRequired
	}
	if strings.TrimSpace(assignedTo) == "" {
		return nil, ErrRecipientRequired
	}
	if expiry.IsZero() {
		return nil, ErrInvalidExpiry
	}
	if uses <= 0 {
		return nil, ErrInvalidUses
	}

	hash, err := NewHash()
	if err != nil {
		return nil, err
	}

	return &Coupon{
		hash:         hash,
		title:        title,
		description:  description,
		expiry:       expiry,
		assignedFrom: strings.TrimSpace(assignedFrom),
		assignedTo:   strings.TrimSpace(assignedTo),
		usesLeft:     uses,
		active:       true,
		contact:      contact,
	}, nil
}

// Reconstruct rebuilds a coupon from stored state without validation.
func Reconstruct(id string, hash Hash, title, description string, expiry time.Time, assignedFrom, assignedTo string, usesLeft int, active bool, contact string) *Coupon {
	return &Coupon{
		id:           id,
		hash:         hash,
		title:        title,
		description:  description,
		expiry:       expiry,
		assignedFrom: assignedFrom,
		assignedTo:   assignedTo,
		usesLeft:     usesLeft,
		active:       active,
		contact:      contact,
	}
}

// Evaluate applies the checks in fixed order: expired, exhausted, inactive.
func (c *Coupon) Evaluate(now time.Time) Status {
	switch {
	case c.IsExpiredAt(now):
		return StatusExpired
	case c.usesLeft <= 0:
		return StatusUsed
	case !c.active:
		return StatusInactive
	default:
		return StatusValid
	}
}

func (c *Coupon) IsExpiredAt(now time.Time) bool {
	return c.expiry.Before(now)
}

func (c *Coupon) Deactivate() {
	c.active = false
}

// Redeem consumes one use. It refuses anything Evaluate would not call valid.
func (c *Coupon) Redeem(now time.Time) error {
	if st := c.Evaluate(now); !st.IsRedeemable() {
		return ErrNotRedeemable
	}
	c.usesLeft--
	if c.usesLeft <= 0 {
		c.active = false
	}
	return nil
}

func (c *Coupon) ID() string           { return c.id }
func (c *Coupon) Hash() Hash           { return c.hash }
func (c *Coupon) Title() string        { return c.title }
func (c *Coupon) Description() string  { return c.description }
func (c *Coupon) Expiry() time.Time    { return c.expiry }
func (c *Coupon) AssignedFrom() string { return c.assignedFrom }
func (c *Coupon) AssignedTo() string   { return c.assignedTo }
func (c *Coupon) UsesLeft() int        { return c.usesLeft }
func (c *Coupon) Active() bool         { return c.active }
func (c *Coupon) Contact() string      { return c.contact }
