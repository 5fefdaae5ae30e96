package errors

// Catalog of known Mercantil integration errors. Messages mirror the bank
// integration runbook; the UserMessage strings are rendered verbatim in
// the web layer, keep them in Spanish.
var catalog = map[Code]GatewayError{
	CodeAuthInvalidClient: {
		Code:        CodeAuthInvalidClient,
		Message:     "Client ID inválido",
		UserMessage: "Error de configuración. Contacte al administrador.",
		Severity:    SeverityCritical,
		Retryable:   false,
	},
	CodeAuthInvalidSecret: {
		Code:        CodeAuthInvalidSecret,
		Message:     "Clave secreta inválida",
		UserMessage: "Error de configuración. Contacte al administrador.",
		Severity:    SeverityCritical,
		Retryable:   false,
	},
	CodeAuthTokenExpired: {
		Code:        CodeAuthTokenExpired,
		Message:     "Token expirado",
		UserMessage: "Sesión expirada. Intente nuevamente.",
		Severity:    SeverityMedium,
		Retryable:   true,
	},
	CodeValOriginPhone: {
		Code:        CodeValOriginPhone,
		Message:     "Número de teléfono origen inválido",
		UserMessage: "El número de teléfono debe tener el formato 04XX-XXXXXXX.",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeValInvoice: {
		Code:        CodeValInvoice,
		Message:     "Número de factura inválido",
		UserMessage: "La referencia de pago no tiene un formato válido.",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeValAmount: {
		Code:        CodeValAmount,
		Message:     "Monto inválido",
		UserMessage: "El monto debe ser un número positivo.",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeValDate: {
		Code:        CodeValDate,
		Message:     "Fecha inválida",
		UserMessage: "La fecha debe estar en formato válido (YYYY-MM-DD).",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeValDestinationBank: {
		Code:        CodeValDestinationBank,
		Message:     "Código de banco destino inválido",
		UserMessage: "El banco destino no es válido.",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeValDestinationID: {
		Code:        CodeValDestinationID,
		Message:     "Identificación destino inválida",
		UserMessage: "La identificación del beneficiario no es válida.",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeValDestinationPhone: {
		Code:        CodeValDestinationPhone,
		Message:     "Número de teléfono destino inválido",
		UserMessage: "El número de teléfono destino debe tener el formato 04XX-XXXXXXX.",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeSearchNotFound: {
		Code:        CodeSearchNotFound,
		Message:     "Pago no encontrado",
		UserMessage: "No se encontró ningún pago con los criterios especificados.",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeSearchMultiple: {
		Code:        CodeSearchMultiple,
		Message:     "Múltiples pagos encontrados",
		UserMessage: "Se encontraron múltiples pagos. Refine los criterios de búsqueda.",
		Severity:    SeverityMedium,
		Retryable:   false,
	},
	CodeSearchInsufficient: {
		Code:        CodeSearchInsufficient,
		Message:     "Criterios de búsqueda insuficientes",
		UserMessage: "Debe proporcionar al menos un criterio de búsqueda válido.",
		Severity:    SeverityLow,
		Retryable:   false,
	},
	CodeNetTimeout: {
		Code:        CodeNetTimeout,
		Message:     "Timeout de conexión",
		UserMessage: "La conexión tardó demasiado. Intente nuevamente.",
		Severity:    SeverityMedium,
		Retryable:   true,
	},
	CodeNetConnection: {
		Code:        CodeNetConnection,
		Message:     "Error de conexión",
		UserMessage: "No se pudo conectar con el servidor. Verifique su conexión.",
		Severity:    SeverityMedium,
		Retryable:   true,
	},
	CodeSysUnavailable: {
		Code:        CodeSysUnavailable,
		Message:     "Servicio temporalmente no disponible",
		UserMessage: "El servicio no está disponible temporalmente. Intente más tarde.",
		Severity:    SeverityHigh,
		Retryable:   true,
	},
	CodeSysInternal: {
		Code:        CodeSysInternal,
		Message:     "Error interno del servidor",
		UserMessage: "Error interno del sistema. Contacte al soporte técnico.",
		Severity:    SeverityCritical,
		Retryable:   false,
	},
	CodeCryptoEncrypt: {
		Code:        CodeCryptoEncrypt,
		Message:     "Error de cifrado",
		UserMessage: "Error en el procesamiento de datos. Contacte al administrador.",
		Severity:    SeverityCritical,
		Retryable:   false,
	},
	CodeCryptoDecrypt: {
		Code:        CodeCryptoDecrypt,
		Message:     "Error de descifrado",
		UserMessage: "Error en el procesamiento de respuesta. Intente nuevamente.",
		Severity:    SeverityHigh,
		Retryable:   true,
	},
}

// FromCode returns a copy of the catalog entry for code. The second return
// is false for codes outside the catalog.
func FromCode(code Code) (*GatewayError, bool) {
	entry, ok := catalog[code]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// MustFromCode returns the catalog entry for a code known at compile time.
// Panics on an uncataloged code, which is a programming error.
func MustFromCode(code Code) *GatewayError {
	entry, ok := FromCode(code)
	if !ok {
		panic("errors: no catalog entry for code " + string(code))
	}
	return entry
}
