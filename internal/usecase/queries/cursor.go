package queries

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
	cursorVersion    = 1
)

type Cursor struct {
	After string `json:"after,omitempty"`
}

// cursorPayload is the keyset position (created_at, id) of the last row
// returned. Microseconds match timestamptz precision.
type cursorPayload struct {
	V  int       `json:"v"`
	At int64     `json:"at"`
	ID uuid.UUID `json:"id"`
}

func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw, _ := json.Marshal(cursorPayload{V: cursorVersion, At: t.UnixMicro(), ID: id})
	return base64.RawURLEncoding.EncodeToString(raw)
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, fmt.Errorf("empty cursor")
	}

	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor encoding: %w", err)
	}

	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return time.Time{}, uuid.Nil, fmt.Errorf("cursor payload: %w", err)
	}
	if p.V != cursorVersion {
		return time.Time{}, uuid.Nil, fmt.Errorf("unsupported cursor version %d", p.V)
	}
	if p.ID == uuid.Nil || p.At <= 0 {
		return time.Time{}, uuid.Nil, fmt.Errorf("incomplete cursor")
	}
	return time.UnixMicro(p.At).UTC(), p.ID, nil
}

// ValidateLimit clamps a requested page size into [1, MaxListLimit]; zero or
// negative means the default.
func ValidateLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}
