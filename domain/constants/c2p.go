package constants

const (
	// fixed protocol values of the Mercantil C2P request schema
	Currency         = "VES"
	TrxTypePurchase  = "compra"
	PaymentMethodC2P = "c2p"
	IntegratorID     = 1
	TerminalID       = "1"

	// MercantilBankID - destination bank code of Mercantil Banco
	MercantilBankID = "0105"

	// ClientIDHeader carries credentials.ClientID on every gateway call
	ClientIDHeader = "X-IBM-Client-Id"

	DeviceUnknown = "Unknown"

	// Caracas, fallback coordinate when the caller sends no location
	DefaultLatitude  = 10.4806
	DefaultLongitude = -66.9036
)

// GatewayCode is the business-level result code inside a C2P response.
// The transport call succeeding says nothing about this code: an HTTP 200
// body can still carry the failure sentinel.
type GatewayCode int

// GatewayCodeBusinessFailure - sentinel the bank uses to report a logical
// failure over a successful transport call
const GatewayCodeBusinessFailure GatewayCode = 99999

// IsApproved reports a granted payment key. A zero value means the field
// was absent from the response, which also counts as a failure.
func (code GatewayCode) IsApproved() bool {
	return code != 0 && code != GatewayCodeBusinessFailure
}

func (code GatewayCode) IsBusinessFailure() bool {
	return !code.IsApproved()
}
