package repositories

import (
	"context"

	"c2p-system/domain/entities"
	eBankGw "c2p-system/domain/entities/bank_gateway"
)

// BankServiceRepository talks to the Mercantil C2P gateway. A nil error
// only means the transport and crypto round trip succeeded; callers must
// still inspect the response code for the business outcome.
type BankServiceRepository interface {
	RequestPaymentKey(ctx context.Context, tx eBankGw.C2PTransaction, clientCtx eBankGw.ClientContext) (resp eBankGw.C2PResponse, err error)
	ValidateCredentials() bool
}

type VerificationRepository interface {
	Create(ctx context.Context, v *entities.VerificationEntity) error
	FindByVerificationID(ctx context.Context, verificationID string) (*entities.VerificationEntity, error)
	FindByReference(ctx context.Context, reference string) ([]entities.VerificationEntity, error)
	UpdateStatus(ctx context.Context, verificationID string, status entities.VerificationStatus) error
}

type EventProducer interface {
	PublishVerificationResult(event entities.VerificationEvent) error
}
