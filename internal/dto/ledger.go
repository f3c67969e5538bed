package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

type CreateEntryRequest struct {
	Amount      string     `json:"amount" validate:"required,decimal_amount"`
	Direction   string     `json:"direction" validate:"required,direction"`
	Category    string     `json:"category" validate:"omitempty,category"`
	Description string     `json:"description" validate:"max=500"`
	Currency    string     `json:"currency" validate:"omitempty,len=3,alpha"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

type UpdateEntryRequest struct {
	Amount      *string    `json:"amount" validate:"omitempty,decimal_amount"`
	Direction   *string    `json:"direction" validate:"omitempty,direction"`
	Category    *string    `json:"category" validate:"omitempty,category"`
	Description *string    `json:"description" validate:"omitempty,max=500"`
	OccurredAt  *time.Time `json:"occurred_at"`
}

type ListEntriesQuery struct {
	Direction string `query:"direction" validate:"omitempty,direction"`
	Category  string `query:"category" validate:"omitempty,category"`
	From      string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Cursor    string `query:"cursor"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=200"`
}

type EntryResponse struct {
	ID          uuid.UUID `json:"id"`
	Amount      string    `json:"amount"`
	Direction   string    `json:"direction"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Currency    string    `json:"currency"`
	OccurredAt  time.Time `json:"occurred_at"`
	ExternalID  string    `json:"external_id,omitempty"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewEntryResponse(e models.LedgerEntry) EntryResponse {
	resp := EntryResponse{
		ID:          e.ID,
		Amount:      e.Amount.StringFixed(2),
		Direction:   e.Direction,
		Category:    e.Category,
		Description: e.Description,
		Currency:    e.Currency,
		OccurredAt:  e.OccurredAt,
		Source:      e.Source,
		CreatedAt:   e.CreatedAt,
	}
	if e.ExternalID != nil {
		resp.ExternalID = *e.ExternalID
	}
	return resp
}

func NewEntryResponses(entries []models.LedgerEntry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewEntryResponse(e))
	}
	return out
}

type PaginationInfo struct {
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
	Limit      int    `json:"limit"`
}

type ListEntriesResponse struct {
	Entries    []EntryResponse `json:"entries"`
	Pagination PaginationInfo  `json:"pagination"`
}

type BalanceResponse struct {
	Balance  string `json:"balance"`
	Currency string `json:"currency,omitempty"`
}
