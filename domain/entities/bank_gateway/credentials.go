package entities

// Credentials is the Mercantil credential tuple, loaded once at client
// construction and never mutated.
type Credentials struct {
	ClientID   string `json:"client_id"`
	MerchantID string `json:"merchant_id"`
	SecretKey  string `json:"secret_key"`
	Endpoint   string `json:"endpoint"`
}
