package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VerificationStatus string

const (
	VerificationStatusVerified VerificationStatus = "verified"
	VerificationStatusFailed   VerificationStatus = "failed"
	VerificationStatusError    VerificationStatus = "error"
)

// VerificationEntity is one payment verification attempt persisted after
// the gateway round trip, whatever the outcome.
type VerificationEntity struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	VerificationID   string             `json:"verification_id" bson:"verification_id"`
	Status           VerificationStatus `json:"status" bson:"status"`
	Reference        string             `json:"reference" bson:"reference"`
	Amount           float64            `json:"amount" bson:"amount"`
	Phone            string             `json:"phone" bson:"phone"`
	DestinationPhone string             `json:"destination_phone" bson:"destination_phone"`
	SenderBank       string             `json:"sender_bank" bson:"sender_bank"`
	ReceiverBank     string             `json:"receiver_bank" bson:"receiver_bank"`
	GatewayCode      int                `json:"gateway_code" bson:"gateway_code"`
	GuID             string             `json:"guid,omitempty" bson:"guid,omitempty"`
	ErrorCode        string             `json:"error_code,omitempty" bson:"error_code,omitempty"`
	Message          string             `json:"message,omitempty" bson:"message,omitempty"`
	IPAddress        string             `json:"ip_address,omitempty" bson:"ip_address,omitempty"`
	UserAgent        string             `json:"user_agent,omitempty" bson:"user_agent,omitempty"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}

// VerificationEvent is the kafka payload published for each finished
// verification.
type VerificationEvent struct {
	VerificationID string             `json:"verification_id"`
	Status         VerificationStatus `json:"status"`
	Reference      string             `json:"reference"`
	Amount         float64            `json:"amount"`
	Phone          string             `json:"phone"`
	GatewayCode    int                `json:"gateway_code"`
	ErrorCode      string             `json:"error_code,omitempty"`
	OccurredAt     time.Time          `json:"occurred_at"`
}
