package entities

import "c2p-system/domain/constants"

// C2PTransaction is the caller-facing input of a payment key request. The
// three sensitive fields travel encrypted, see the envelope below.
type C2PTransaction struct {
	Amount                  float64 `json:"amount"`
	DestinationBankID       string  `json:"destination_bank_id"`
	DestinationID           string  `json:"destination_id"`
	OriginMobileNumber      string  `json:"origin_mobile_number"`
	DestinationMobileNumber string  `json:"destination_mobile_number"`
	InvoiceNumber           string  `json:"invoice_number,omitempty"`
}

// ClientContext is descriptive caller metadata forwarded to the gateway,
// never validated beyond presence.
type ClientContext struct {
	IPAddress  string      `json:"ip_address"`
	UserAgent  string      `json:"user_agent"`
	DeviceInfo *DeviceInfo `json:"device_info,omitempty"`
}

type DeviceInfo struct {
	Manufacturer string       `json:"manufacturer,omitempty"`
	Model        string       `json:"model,omitempty"`
	OSVersion    string       `json:"os_version,omitempty"`
	Location     *GeoLocation `json:"location,omitempty"`
}

type GeoLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// EncryptedPayload wraps the whole encrypted envelope on the wire, both
// directions.
type EncryptedPayload struct {
	Data string `json:"data"`
}

// C2PRequest is the plaintext envelope before whole-body encryption.
// Field names and nesting are the bank's schema, do not rename.
type C2PRequest struct {
	MerchantIdentify MerchantIdentify `json:"merchant_identify"`
	ClientIdentify   ClientIdentify   `json:"client_identify"`
	TransactionC2P   TransactionC2P   `json:"transaction_c2p"`
}

type MerchantIdentify struct {
	IntegratorID int    `json:"integratorId"`
	MerchantID   int    `json:"merchantId"`
	TerminalID   string `json:"terminalId"`
}

type ClientIdentify struct {
	IPAddress    string       `json:"ipaddress"`
	BrowserAgent string       `json:"browser_agent"`
	Mobile       MobileDevice `json:"mobile"`
}

type MobileDevice struct {
	Manufacturer string      `json:"manufacturer"`
	Model        string      `json:"model"`
	OSVersion    string      `json:"os_version"`
	Location     GeoLocation `json:"location"`
}

// TransactionC2P carries the transaction block; destination_id and both
// mobile numbers are AES-ECB ciphertexts of the caller values.
type TransactionC2P struct {
	Amount                  float64 `json:"amount"`
	Currency                string  `json:"currency"`
	DestinationBankID       string  `json:"destination_bank_id"`
	DestinationID           string  `json:"destination_id"`
	OriginMobileNumber      string  `json:"origin_mobile_number"`
	DestinationMobileNumber string  `json:"destination_mobile_number"`
	TrxType                 string  `json:"trx_type"`
	PaymentMethod           string  `json:"payment_method"`
	InvoiceNumber           string  `json:"invoice_number"`
}

type C2PResponse struct {
	ProcessingDate string                `json:"processingDate"`
	InfoMsg        InfoMsg               `json:"infoMsg"`
	Code           constants.GatewayCode `json:"code"`
}

type InfoMsg struct {
	GuID       string `json:"guId"`
	Channel    string `json:"channel"`
	Subchannel string `json:"subchannel"`
	ApplID     string `json:"applId"`
	PersonID   string `json:"personId"`
	UserID     string `json:"userId"`
	Token      string `json:"token"`
	Action     string `json:"action"`
	TokenS     string `json:"tokenS,omitempty"`
}
