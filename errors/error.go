package errors

import "fmt"

// Severity of a normalized gateway error.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Code is an internal error code from the Mercantil integration catalog.
// Only declared constants below appear in the catalog, unknown strings
// never map to a catalog entry.
type Code string

const (
	CodeUnknown Code = "UNKNOWN"

	CodeAuthInvalidClient Code = "AUTH_001"
	CodeAuthInvalidSecret Code = "AUTH_002"
	CodeAuthTokenExpired  Code = "AUTH_003"

	CodeValOriginPhone      Code = "VAL_001"
	CodeValInvoice          Code = "VAL_002"
	CodeValAmount           Code = "VAL_003"
	CodeValDate             Code = "VAL_004"
	CodeValDestinationBank  Code = "VAL_005"
	CodeValDestinationID    Code = "VAL_006"
	CodeValDestinationPhone Code = "VAL_007"

	CodeSearchNotFound     Code = "SEARCH_001"
	CodeSearchMultiple     Code = "SEARCH_002"
	CodeSearchInsufficient Code = "SEARCH_003"

	CodeNetTimeout    Code = "NET_001"
	CodeNetConnection Code = "NET_002"

	CodeSysUnavailable Code = "SYS_001"
	CodeSysInternal    Code = "SYS_002"

	CodeCryptoEncrypt Code = "CRYPTO_001"
	CodeCryptoDecrypt Code = "CRYPTO_002"

	CodeHTTPBadRequest Code = "HTTP_400"
	CodeHTTPForbidden  Code = "HTTP_403"
	CodeHTTPTooMany    Code = "HTTP_429"
)

// GatewayError is the single error currency above the transport boundary.
// UserMessage is always safe to render to the end user as-is.
type GatewayError struct {
	Code        Code     `json:"code"`
	Message     string   `json:"message"`
	UserMessage string   `json:"user_message"`
	Severity    Severity `json:"severity"`
	Retryable   bool     `json:"retryable"`
}

func (e *GatewayError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// ErrorCode implements the coder contract used by Classify.
func (e *GatewayError) ErrorCode() Code {
	return e.Code
}

// HTTPError carries a non-2xx gateway response until classification.
// Code may be set when the body already exposed an internal code.
type HTTPError struct {
	Status int
	Body   string
	Code   Code
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP Error: %v - %v", e.Status, e.Body)
}

// ErrorCode implements the coder contract used by Classify.
func (e *HTTPError) ErrorCode() Code {
	return e.Code
}

// IsRetryable reports whether the retry loop may absorb this failure.
// Critical errors are never retried regardless of the retryable flag.
func IsRetryable(e *GatewayError) bool {
	return e.Retryable && e.Severity != SeverityCritical
}
