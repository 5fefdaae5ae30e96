package value_objects

// VerificationResult is what the verify-payment operation hands back to the
// presenter once the gateway answered.
type VerificationResult struct {
	VerificationID string `json:"verification_id"`
	Verified       bool   `json:"verified"`
	Status         string `json:"status"`
	GatewayCode    int    `json:"gateway_code"`
	GuID           string `json:"guid,omitempty"`
	Reference      string `json:"reference"`
	Message        string `json:"message,omitempty"`
	ProcessingDate string `json:"processing_date,omitempty"`
}
