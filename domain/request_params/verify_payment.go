package request_params

// VerifyPayment is the inbound body of POST /api/verify-payment.
type VerifyPayment struct {
	SenderBank       string  `json:"sender_bank"`
	ReceiverBank     string  `json:"receiver_bank"`
	Reference        string  `json:"reference"`
	Amount           float64 `json:"amount"`
	Phone            string  `json:"phone"`
	DestinationPhone string  `json:"destination_phone,omitempty"`
	Date             string  `json:"date,omitempty"`
	IPAddress        string  `json:"-"`
	UserAgent        string  `json:"-"`
}
