package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// User error codes (USER_*)
const (
	UserNotFound  ErrorCode = "USER_001"
	UserInvalidID ErrorCode = "USER_002"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerEntryNotFound     ErrorCode = "LEDGER_001"
	LedgerInsufficientFunds ErrorCode = "LEDGER_002"
	LedgerInvalidAmount     ErrorCode = "LEDGER_003"
	LedgerInvalidDirection  ErrorCode = "LEDGER_004"
	LedgerDuplicateExternal ErrorCode = "LEDGER_005"
	LedgerInvalidCursor     ErrorCode = "LEDGER_006"
	LedgerInvalidCurrency   ErrorCode = "LEDGER_007"
)

// Category rule error codes (RULE_*)
const (
	RuleNotFound        ErrorCode = "RULE_001"
	RuleKeywordExists   ErrorCode = "RULE_002"
	RuleInvalidCategory ErrorCode = "RULE_003"
)

// Sync error codes (SYNC_*)
const (
	SyncConnectionNotFound ErrorCode = "SYNC_001"
	SyncProviderFailure    ErrorCode = "SYNC_002"
	SyncInvalidCallback    ErrorCode = "SYNC_003"
	SyncNotConfigured      ErrorCode = "SYNC_004"
	SyncInvalidTransition  ErrorCode = "SYNC_005"
)

// Import error codes (IMPORT_*)
const (
	ImportUnsupportedFormat ErrorCode = "IMPORT_001"
	ImportUnreadableFile    ErrorCode = "IMPORT_002"
	ImportMissingHeader     ErrorCode = "IMPORT_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemResourceNotFound   ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	UserNotFound:  "User not found",
	UserInvalidID: "Invalid user ID format",

	LedgerEntryNotFound:     "Ledger entry not found",
	LedgerInsufficientFunds: "Insufficient balance for this expense",
	LedgerInvalidAmount:     "Amount must be a non-negative decimal",
	LedgerInvalidDirection:  "Direction must be INCOME or EXPENSE",
	LedgerDuplicateExternal: "A ledger entry with this external id already exists",
	LedgerInvalidCursor:     "Invalid pagination cursor",
	LedgerInvalidCurrency:   "Currency must be a three-letter code",

	RuleNotFound:        "Category rule not found",
	RuleKeywordExists:   "A category rule with this keyword already exists",
	RuleInvalidCategory: "Unknown category",

	SyncConnectionNotFound: "Bank connection not found",
	SyncProviderFailure:    "Bank data provider request failed, retry later",
	SyncInvalidCallback:    "Invalid provider callback payload",
	SyncNotConfigured:      "Bank data provider is not configured",
	SyncInvalidTransition:  "Connection is not in a state that allows this operation",

	ImportUnsupportedFormat: "Unsupported import file format",
	ImportUnreadableFile:    "Import file could not be read",
	ImportMissingHeader:     "Import file is missing required columns",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemResourceNotFound:   "Resource not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
