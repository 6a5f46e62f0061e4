package strapi

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Attribute names used in filters and write payloads.
const (
	FieldHash              = "Hash"
	FieldTitle             = "Title"
	FieldDescription       = "Description"
	FieldExpiry            = "Expiry"
	FieldAssignedFrom      = "AssignedFrom"
	FieldAssignedTo        = "AssignedTo"
	FieldUsesLeft          = "UsesLeft"
	FieldActive            = "Active"
	FieldContact           = "Contact"
	FieldName              = "Name"
	FieldRole              = "Role"
	FieldConsumptionRecord = "ConsumptionRecord"
	FieldMembershipNumber  = "MembershipNumber"
	FieldEmail             = "Email"
	FieldPoint             = "Point"
	FieldDiscountPoint     = "DiscountPoint"
)

// Text decodes a JSON string or number as a string.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	*t = Text(b)
	return nil
}

func (t Text) String() string { return string(t) }

type CouponDocument struct {
	ID           int    `json:"id,omitempty"`
	DocumentID   string `json:"documentId,omitempty"`
	Hash         Text   `json:"Hash"`
	Title        Text   `json:"Title"`
	Description  Text   `json:"Description"`
	Expiry       Text   `json:"Expiry"`
	AssignedFrom Text   `json:"AssignedFrom"`
	AssignedTo   Text   `json:"AssignedTo"`
	UsesLeft     int    `json:"UsesLeft"`
	Active       bool   `json:"Active"`
	Contact      Text   `json:"Contact"`
}

func (d CouponDocument) Key() string {
	return recordKey(d.DocumentID, d.ID)
}

type AccountDocument struct {
	ID                int              `json:"id,omitempty"`
	DocumentID        string           `json:"documentId,omitempty"`
	Name              Text             `json:"Name"`
	Password          Text             `json:"Password"`
	Role              Text             `json:"Role"`
	MembershipField   Text             `json:"MembershipField"`
	CurrentStatus     Text             `json:"CurrentStatus"`
	ConsumptionRecord []map[string]any `json:"ConsumptionRecord"`
}

func (d AccountDocument) Key() string {
	return recordKey(d.DocumentID, d.ID)
}

type MemberDocument struct {
	ID               int     `json:"id,omitempty"`
	DocumentID       string  `json:"documentId,omitempty"`
	MembershipNumber Text    `json:"MembershipNumber"`
	Name             Text    `json:"Name"`
	UserName         Text    `json:"UserName"`
	Email            Text    `json:"Email"`
	ExpiryDate       Text    `json:"ExpiryDate"`
	Point            float64 `json:"Point"`
	DiscountPoint    float64 `json:"DiscountPoint"`
}

func (d MemberDocument) Key() string {
	return recordKey(d.DocumentID, d.ID)
}

// recordKey prefers the v5 documentId and falls back to the numeric id.
func recordKey(documentID string, id int) string {
	if documentID != "" {
		return documentID
	}
	if id != 0 {
		return strconv.Itoa(id)
	}
	return ""
}
