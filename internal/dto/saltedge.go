package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salt Edge wraps every payload in {"data": ..., "meta": ...}. Unknown fields
// are ignored on decode.
type SaltEdgeEnvelope[T any] struct {
	Data T             `json:"data"`
	Meta *SaltEdgeMeta `json:"meta,omitempty"`
}

type SaltEdgeMeta struct {
	NextID   *string `json:"next_id"`
	NextPage *string `json:"next_page"`
}

// NextCursor returns the from_id for the following page, or "" when the feed is exhausted.
func (m *SaltEdgeMeta) NextCursor() string {
	if m == nil || m.NextID == nil {
		return ""
	}
	return *m.NextID
}

type SaltEdgeErrorResponse struct {
	Error SaltEdgeErrorDetail `json:"error"`
}

type SaltEdgeErrorDetail struct {
	Class   string `json:"class"`
	Message string `json:"message"`
}

// ---------- Customers ----------

type SaltEdgeCustomerRequest struct {
	Identifier string `json:"identifier"`
}

type SaltEdgeCustomer struct {
	CustomerID string `json:"customer_id"`
	Identifier string `json:"identifier"`
}

// ---------- Connect sessions ----------

type SaltEdgeConnectRequest struct {
	CustomerID string          `json:"customer_id"`
	Consent    SaltEdgeConsent `json:"consent"`
	Attempt    SaltEdgeAttempt `json:"attempt"`
}

type SaltEdgeConsent struct {
	Scopes   []string `json:"scopes"`
	FromDate string   `json:"from_date,omitempty"`
}

type SaltEdgeAttempt struct {
	FetchScopes []string `json:"fetch_scopes"`
	ReturnTo    string   `json:"return_to,omitempty"`
	NotifyURL   string   `json:"notify_url,omitempty"`
}

type SaltEdgeConnectSession struct {
	ConnectURL string    `json:"connect_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ---------- Connections & transactions ----------

type SaltEdgeConnection struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	ProviderCode string `json:"provider_code"`
	ProviderName string `json:"provider_name"`
	Status       string `json:"status"`
}

type SaltEdgeTransaction struct {
	ID           string                   `json:"id"`
	Mode         string                   `json:"mode"`
	Status       string                   `json:"status"`
	MadeOn       string                   `json:"made_on"`
	Amount       decimal.Decimal          `json:"amount"`
	CurrencyCode string                   `json:"currency_code"`
	Description  string                   `json:"description"`
	Category     string                   `json:"category"`
	Duplicated   bool                     `json:"duplicated"`
	AccountID    string                   `json:"account_id"`
	Extra        SaltEdgeTransactionExtra `json:"extra"`
}

type SaltEdgeTransactionExtra struct {
	Payee       string `json:"payee,omitempty"`
	Information string `json:"information,omitempty"`
}

// SaltEdgeCallback is the body of the provider's success notification.
type SaltEdgeCallback struct {
	Data SaltEdgeCallbackData `json:"data"`
}

type SaltEdgeCallbackData struct {
	ConnectionID string `json:"connection_id"`
	CustomerID   string `json:"customer_id"`
	Stage        string `json:"stage"`
}
