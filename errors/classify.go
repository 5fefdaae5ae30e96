package errors

import "strings"

type coder interface {
	ErrorCode() Code
}

// Classify maps any failure to a normalized GatewayError. Precedence,
// first match wins:
//
//  1. the fault carries a cataloged internal code
//  2. the fault carries an HTTP status
//  3. the fault message matches a known pattern
//  4. generic UNKNOWN, retryable
//
// Classify is pure, the retry driver owns every side effect.
func Classify(err error) *GatewayError {
	if err == nil {
		return nil
	}

	if c, ok := err.(coder); ok && c.ErrorCode() != "" {
		if entry, ok := FromCode(c.ErrorCode()); ok {
			return entry
		}
	}

	// a GatewayError with an uncataloged code is already normalized
	if ge, ok := err.(*GatewayError); ok {
		return ge
	}

	if he, ok := err.(*HTTPError); ok {
		return classifyStatus(he)
	}

	if entry := classifyMessage(err.Error()); entry != nil {
		return entry
	}

	return &GatewayError{
		Code:        CodeUnknown,
		Message:     err.Error(),
		UserMessage: "Ocurrió un error inesperado. Intente nuevamente o contacte al soporte.",
		Severity:    SeverityMedium,
		Retryable:   true,
	}
}

func classifyStatus(he *HTTPError) *GatewayError {
	switch he.Status {
	case 400:
		return &GatewayError{
			Code:        CodeHTTPBadRequest,
			Message:     "Solicitud inválida",
			UserMessage: "Los datos enviados no son válidos. Verifique la información.",
			Severity:    SeverityLow,
			Retryable:   false,
		}
	case 401:
		return MustFromCode(CodeAuthInvalidClient)
	case 403:
		return &GatewayError{
			Code:        CodeHTTPForbidden,
			Message:     "Acceso denegado",
			UserMessage: "No tiene permisos para realizar esta operación.",
			Severity:    SeverityHigh,
			Retryable:   false,
		}
	case 404:
		return MustFromCode(CodeSearchNotFound)
	case 408:
		return MustFromCode(CodeNetTimeout)
	case 429:
		return &GatewayError{
			Code:        CodeHTTPTooMany,
			Message:     "Demasiadas solicitudes",
			UserMessage: "Ha excedido el límite de solicitudes. Intente más tarde.",
			Severity:    SeverityMedium,
			Retryable:   true,
		}
	case 500, 502, 503:
		return MustFromCode(CodeSysUnavailable)
	case 504:
		return MustFromCode(CodeNetTimeout)
	}

	return &GatewayError{
		Code:        CodeUnknown,
		Message:     he.Error(),
		UserMessage: "Ocurrió un error inesperado. Intente nuevamente o contacte al soporte.",
		Severity:    SeverityMedium,
		Retryable:   true,
	}
}

func classifyMessage(message string) *GatewayError {
	message = strings.ToLower(message)

	switch {
	case strings.Contains(message, "timeout"), strings.Contains(message, "timed out"),
		strings.Contains(message, "deadline exceeded"):
		return MustFromCode(CodeNetTimeout)
	case strings.Contains(message, "network"), strings.Contains(message, "connection"):
		return MustFromCode(CodeNetConnection)
	case strings.Contains(message, "encrypt"):
		return MustFromCode(CodeCryptoEncrypt)
	case strings.Contains(message, "decrypt"):
		return MustFromCode(CodeCryptoDecrypt)
	}

	return nil
}
