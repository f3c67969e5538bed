package errors

import (
	stderrors "errors"
	"fmt"
)

// Error kinds shared by every layer. Callers match them with errors.Is.
var (
	ErrValidation        = stderrors.New("validation error")
	ErrNotFound          = stderrors.New("not found")
	ErrInsufficientFunds = stderrors.New("insufficient funds")
	ErrExternalService   = stderrors.New("external service error")
	ErrConflict          = stderrors.New("conflict")
)

// DomainError is a kind-tagged error that also carries the API code it maps to.
type DomainError struct {
	Kind    error
	Code    ErrorCode
	Message string
}

// New creates a DomainError of the given kind.
func New(kind error, code ErrorCode, message string) *DomainError {
	return &DomainError{Kind: kind, Code: code, Message: message}
}

// Validationf creates a validation DomainError with a formatted message.
func Validationf(code ErrorCode, format string, args ...any) *DomainError {
	return &DomainError{Kind: ErrValidation, Code: code, Message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.Message
}

func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return target == e.Kind
}

// ExternalServiceError reports a transport or protocol failure of a remote dependency.
type ExternalServiceError struct {
	Service    string
	Operation  string
	StatusCode int
	Err        error
}

func (e *ExternalServiceError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s failed with status %d: %v", e.Service, e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Operation, e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}

func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

// Retryable reports whether repeating the call may succeed. Client errors other
// than throttling are not retryable.
func (e *ExternalServiceError) Retryable() bool {
	if e.StatusCode == 0 || e.StatusCode == 429 {
		return true
	}
	return e.StatusCode >= 500
}

// CodeFor maps an error from any layer to the API error code it should surface as.
func CodeFor(err error) ErrorCode {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) {
		return domainErr.Code
	}

	var extErr *ExternalServiceError
	if stderrors.As(err, &extErr) {
		return SyncProviderFailure
	}

	switch {
	case stderrors.Is(err, ErrValidation):
		return ValidationGeneral
	case stderrors.Is(err, ErrNotFound):
		return SystemResourceNotFound
	case stderrors.Is(err, ErrInsufficientFunds):
		return LedgerInsufficientFunds
	case stderrors.Is(err, ErrConflict):
		return LedgerDuplicateExternal
	case stderrors.Is(err, ErrExternalService):
		return SyncProviderFailure
	default:
		return SystemInternalError
	}
}

// MessageFor returns the client-safe message for err. Domain errors expose
// their own message; anything else gets the code's default.
func MessageFor(err error) string {
	var domainErr *DomainError
	if stderrors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return GetErrorMessage(CodeFor(err))
}
