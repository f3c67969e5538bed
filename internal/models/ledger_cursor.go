package models

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidCursor = errors.New("invalid cursor")

// LedgerCursor is a keyset position in an owner's ledger, ordered by
// occurred_at DESC, id DESC.
type LedgerCursor struct {
	OccurredAt time.Time `json:"t"`
	ID         uuid.UUID `json:"id"`
}

// CursorAfter returns the cursor that resumes listing after entry.
func CursorAfter(entry LedgerEntry) *LedgerCursor {
	return &LedgerCursor{OccurredAt: entry.OccurredAt, ID: entry.ID}
}

func (c *LedgerCursor) Encode() string {
	raw, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeLedgerCursor parses an opaque cursor. An empty string means "from the start".
func DecodeLedgerCursor(s string) (*LedgerCursor, error) {
	if s == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidCursor
	}
	var c LedgerCursor
	if err := json.Unmarshal(raw, &c); err != nil || c.ID == uuid.Nil {
		return nil, ErrInvalidCursor
	}
	return &c, nil
}
