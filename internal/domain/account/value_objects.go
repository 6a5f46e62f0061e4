package account

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidRole      = errors.New("invalid role")
	ErrConsumerRequired = errors.New("consumer is required")
	ErrProviderRequired = errors.New("provider is required")
)

// Entry keys as stored in the CMS ConsumptionRecord component.
const (
	KeyID             = "id"
	KeyConsumer       = "Consumer"
	KeyProvider       = "Provider"
	KeyPlatform       = "Platform"
	KeyTime           = "Time"
	KeyAmount         = "Amount"
	KeyAdditionalInfo = "AdditionalInfo"
)

// Record is one consumption history entry.
type Record struct {
	Consumer       string
	Provider       string
	Platform       Platform
	Time           time.Time
	Amount         float64
	AdditionalInfo string
}

func NewRecord(consumer, provider string, platform Platform, at time.Time, amount float64, info string) (Record, error) {
	if strings.TrimSpace(consumer) == "" {
		return Record{}, ErrConsumerRequired
	}
	if strings.TrimSpace(provider) == "" {
		return Record{}, ErrProviderRequired
	}
	return Record{
		Consumer:       consumer,
		Provider:       provider,
		Platform:       platform,
		Time:           at,
		Amount:         amount,
		AdditionalInfo: info,
	}, nil
}

// Entry is a stored history entry exactly as the CMS returned it.
// Fields this service does not know about are carried through untouched.
type Entry map[string]any

func (r Record) Entry() Entry {
	return Entry{
		KeyConsumer:       r.Consumer,
		KeyProvider:       r.Provider,
		KeyPlatform:       r.Platform.String(),
		KeyTime:           r.Time.UTC().Format(time.RFC3339Nano),
		KeyAmount:         r.Amount,
		KeyAdditionalInfo: r.AdditionalInfo,
	}
}

// WithoutID returns a copy without the store-assigned id, which the CMS
// rejects when a component list is written back.
func (e Entry) WithoutID() Entry {
	out := make(Entry, len(e))
	for k, v := range e {
		if k == KeyID {
			continue
		}
		out[k] = v
	}
	return out
}

// Record decodes the entry leniently; unknown shapes become zero values.
func (e Entry) Record() Record {
	r := Record{
		Consumer:       stringField(e[KeyConsumer]),
		Provider:       stringField(e[KeyProvider]),
		Platform:       Platform(stringField(e[KeyPlatform])),
		Amount:         numberField(e[KeyAmount]),
		AdditionalInfo: stringField(e[KeyAdditionalInfo]),
	}
	if s := stringField(e[KeyTime]); s != "" {
		if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
			r.Time = t
		}
	}
	return r
}

func stringField(v any) string {
	s, _ := v.(string)
	return s
}

func numberField(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case json.Number:
		f, _ := x.Float64()
		return f
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
