package application

import (
	"context"
	"fmt"
	"time"

	"c2p-system/domain/constants"
	"c2p-system/domain/entities"
	eBankGw "c2p-system/domain/entities/bank_gateway"
	"c2p-system/domain/request_params"
	"c2p-system/domain/value_objects"
	gwerrors "c2p-system/errors"
	"c2p-system/utils/helpers"
	"c2p-system/utils/retry"
	"c2p-system/utils/telegram"

	"go.uber.org/zap"
)

// VerifyPayment runs one C2P verification end to end: local validation,
// the retried gateway call, persistence and the outcome event. A non-nil
// error is always a *gwerrors.GatewayError; a business rejection from the
// bank is not an error, it comes back as a failed result.
func (us *VerificationApplication) VerifyPayment(ctx context.Context, request request_params.VerifyPayment) (result *value_objects.VerificationResult, gwErr *gwerrors.GatewayError) {
	phone, err := helpers.FormatVenezuelanMobile(request.Phone)
	if err != nil {
		return nil, gwerrors.MustFromCode(gwerrors.CodeValOriginPhone)
	}

	verificationID := fmt.Sprintf("MER-%v", time.Now().UnixNano()/int64(time.Millisecond))
	reference := helpers.FormatPaymentReference(request.Reference)

	receiverBank := request.ReceiverBank
	if receiverBank == "" {
		receiverBank = constants.MercantilBankID
	}

	entity := &entities.VerificationEntity{
		VerificationID:   verificationID,
		Reference:        reference,
		Amount:           request.Amount,
		Phone:            phone,
		DestinationPhone: request.DestinationPhone,
		SenderBank:       request.SenderBank,
		ReceiverBank:     receiverBank,
		IPAddress:        request.IPAddress,
		UserAgent:        request.UserAgent,
	}

	// the beneficiary the bank looks up is the payment reference itself
	tx := eBankGw.C2PTransaction{
		Amount:                  request.Amount,
		DestinationBankID:       receiverBank,
		DestinationID:           reference,
		OriginMobileNumber:      phone,
		DestinationMobileNumber: request.DestinationPhone,
		InvoiceNumber:           "INV-" + reference,
	}
	clientCtx := eBankGw.ClientContext{
		IPAddress: request.IPAddress,
		UserAgent: request.UserAgent,
	}

	var response eBankGw.C2PResponse
	err = retry.Do(ctx, us.Retry, us.Logger.With(zap.String("verification_id", verificationID)), func(ctx context.Context) error {
		var callErr error
		response, callErr = us.BankServiceRepository.RequestPaymentKey(ctx, tx, clientCtx)
		return callErr
	})

	if err != nil {
		gwErr = gwerrors.Classify(err)

		entity.Status = entities.VerificationStatusError
		entity.ErrorCode = string(gwErr.Code)
		entity.Message = gwErr.Message

		us.finishVerification(entity, gwErr)

		return nil, gwErr
	}

	entity.GatewayCode = int(response.Code)
	entity.GuID = response.InfoMsg.GuID

	if response.Code.IsApproved() {
		entity.Status = entities.VerificationStatusVerified
	} else {
		entity.Status = entities.VerificationStatusFailed
		entity.Message = "El banco rechazó la operación"
	}

	us.finishVerification(entity, nil)

	result = &value_objects.VerificationResult{
		VerificationID: verificationID,
		Verified:       response.Code.IsApproved(),
		Status:         string(entity.Status),
		GatewayCode:    int(response.Code),
		GuID:           response.InfoMsg.GuID,
		Reference:      reference,
		Message:        entity.Message,
		ProcessingDate: response.ProcessingDate,
	}

	return result, nil
}

func (us *VerificationApplication) ListVerificationsByReference(ctx context.Context, reference string) ([]entities.VerificationEntity, *gwerrors.GatewayError) {
	records, err := us.VerificationRepository.FindByReference(ctx, helpers.FormatPaymentReference(reference))
	if err != nil {
		us.Logger.With(zap.Error(err)).Error("can not read verifications")
		return nil, gwerrors.Classify(err)
	}
	return records, nil
}

// finishVerification runs the side effects of a finished verification off
// the request path: mongo record, kafka event and telegram alerts.
func (us *VerificationApplication) finishVerification(entity *entities.VerificationEntity, gwErr *gwerrors.GatewayError) {
	snapshot := *entity

	us.IPool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		defer cancel()

		if err := us.VerificationRepository.Create(ctx, &snapshot); err != nil {
			us.Logger.With(zap.Error(err)).
				With(zap.String("verification_id", snapshot.VerificationID)).
				Error(constants.SERVICE_STORAGE_ERROR + "can not persist verification")
		}

		if err := us.Events.PublishVerificationResult(entities.VerificationEvent{
			VerificationID: snapshot.VerificationID,
			Status:         snapshot.Status,
			Reference:      snapshot.Reference,
			Amount:         snapshot.Amount,
			Phone:          snapshot.Phone,
			GatewayCode:    snapshot.GatewayCode,
			ErrorCode:      snapshot.ErrorCode,
			OccurredAt:     helpers.GetCurrentTime(),
		}); err != nil {
			us.Logger.With(zap.Error(err)).
				With(zap.String("verification_id", snapshot.VerificationID)).
				Error("can not publish verification event")
		}

		us.notify(snapshot, gwErr)
	})
}

func (us *VerificationApplication) notify(verification entities.VerificationEntity, gwErr *gwerrors.GatewayError) {
	if us.Config.TelegramBotToken == "" {
		return
	}

	if gwErr != nil && (gwErr.Severity == gwerrors.SeverityHigh || gwErr.Severity == gwerrors.SeverityCritical) {
		if err := telegram.SendTelegram(us.Config.TelegramBotToken,
			telegram.SendGatewayIncident(verification, gwErr),
			us.Config.TelegramChannelId.Incident); err != nil {
			us.Logger.With(zap.Error(err)).Error(constants.SERVICE_ALERT_ERROR + "can not send incident alert")
		}
		return
	}

	if verification.Status == entities.VerificationStatusVerified {
		if err := telegram.SendTelegram(us.Config.TelegramBotToken,
			telegram.SendVerificationInfo(verification),
			us.Config.TelegramChannelId.Verification); err != nil {
			us.Logger.With(zap.Error(err)).Error(constants.SERVICE_ALERT_ERROR + "can not send verification info")
		}
	}
}
