// Package notification parses inbound gateway notifications. Their content is
// unsigned, so only the type and the payment id are ever read from them.
package notification

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

const TypePayment = "payment"

type Notification struct {
	Type      string
	PaymentID string
}

// Relevant reports whether the notification should trigger a gateway lookup.
func (n Notification) Relevant() bool {
	return n.Type == TypePayment && n.PaymentID != ""
}

func FromQuery(q url.Values) Notification {
	return Notification{
		Type:      firstNonEmpty(q.Get("topic"), q.Get("type")),
		PaymentID: firstNonEmpty(q.Get("id"), q.Get("data.id")),
	}
}

type body struct {
	Type  string `json:"type"`
	Topic string `json:"topic"`
	ID    flexID `json:"id"`
	Data  struct {
		ID flexID `json:"id"`
	} `json:"data"`
}

// FromBody parses a JSON notification. Malformed or empty bodies yield a zero
// Notification rather than an error.
func FromBody(raw []byte) Notification {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Notification{}
	}
	var b body
	if err := json.Unmarshal(raw, &b); err != nil {
		return Notification{}
	}
	return Notification{
		Type:      firstNonEmpty(b.Type, b.Topic),
		PaymentID: firstNonEmpty(string(b.Data.ID), string(b.ID)),
	}
}

// Parse merges query and body, field by field, with the body taking precedence.
func Parse(q url.Values, raw []byte) Notification {
	n := FromQuery(q)
	fromBody := FromBody(raw)
	if fromBody.Type != "" {
		n.Type = fromBody.Type
	}
	if fromBody.PaymentID != "" {
		n.PaymentID = fromBody.PaymentID
	}
	return n
}

// flexID accepts ids sent either as JSON numbers or strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
