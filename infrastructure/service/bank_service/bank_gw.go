package bank_service

import (
	"bytes"
	"context"
	"encoding/json"
	"io/ioutil"
	"net"
	"net/http"
	"strings"
	"time"

	"c2p-system/domain/constants"
	eBankGw "c2p-system/domain/entities/bank_gateway"
	gwerrors "c2p-system/errors"
	"c2p-system/utils/crypt"
	"c2p-system/utils/helpers"

	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const timeout = time.Second * 30

const paymentKeyPath = "/mobile-payment/v1/c2p/payment-key"

type repoImpl struct {
	Credentials eBankGw.Credentials
	Logger      *zap.Logger
	client      *http.Client
}

// RequestPaymentKey validates the transaction locally, builds the encrypted
// C2P envelope and posts it to the bank. A nil error covers transport and
// crypto only; the response code still decides the business outcome.
func (r repoImpl) RequestPaymentKey(ctx context.Context, tx eBankGw.C2PTransaction, clientCtx eBankGw.ClientContext) (response eBankGw.C2PResponse, err error) {
	if err = r.validate(&tx); err != nil {
		return response, err
	}

	envelope, err := r.buildEnvelope(tx, clientCtx)
	if err != nil {
		return response, err
	}

	plainBody, err := json.Marshal(envelope)
	if err != nil {
		r.Logger.With(zap.Error(err)).Error(constants.SERVICE_BANKGW_ERROR + "can not marshal envelope")
		return response, gwerrors.MustFromCode(gwerrors.CodeCryptoEncrypt)
	}

	encryptedBody, err := crypt.AESEncryptECB(string(plainBody), r.Credentials.SecretKey)
	if err != nil {
		r.Logger.With(zap.Error(err)).Error(constants.SERVICE_BANKGW_ERROR + "can not encrypt envelope")
		return response, gwerrors.MustFromCode(gwerrors.CodeCryptoEncrypt)
	}

	requestBody, err := json.Marshal(eBankGw.EncryptedPayload{Data: encryptedBody})
	if err != nil {
		return response, gwerrors.MustFromCode(gwerrors.CodeCryptoEncrypt)
	}

	uri := r.Credentials.Endpoint + paymentKeyPath

	r.Logger.With(zap.String("uri", uri)).
		With(zap.String("invoice_number", envelope.TransactionC2P.InvoiceNumber)).
		With(zap.Float64("amount", envelope.TransactionC2P.Amount)).
		Info("bank_request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(requestBody))
	if err != nil {
		return response, gwerrors.Classify(err)
	}

	req.Header.Add("Content-Type", `application/json`)
	req.Header.Add("Accept", `application/json`)
	req.Header.Add(constants.ClientIDHeader, r.Credentials.ClientID)

	resp, err := r.client.Do(req)
	if err != nil {
		r.Logger.With(zap.Error(err)).Error(constants.SERVICE_BANKGW_ERROR + "transport failure")
		if isTimeout(err) {
			return response, gwerrors.MustFromCode(gwerrors.CodeNetTimeout)
		}
		return response, gwerrors.MustFromCode(gwerrors.CodeNetConnection)
	}
	defer resp.Body.Close()

	responseByte, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return response, gwerrors.MustFromCode(gwerrors.CodeNetConnection)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.Logger.With(zap.Int("status", resp.StatusCode)).
			With(zap.String("response", string(responseByte))).
			Error(constants.SERVICE_BANKGW_ERROR + "gateway rejected request")
		return response, gwerrors.Classify(&gwerrors.HTTPError{
			Status: resp.StatusCode,
			Body:   string(responseByte),
		})
	}

	plaintext := r.decodeResponseBody(responseByte)

	if err = json.Unmarshal([]byte(plaintext), &response); err != nil {
		r.Logger.With(zap.Error(err)).
			With(zap.String("response", string(responseByte))).
			Error(constants.SERVICE_BANKGW_ERROR + "can not unmarshal response")
		return response, gwerrors.MustFromCode(gwerrors.CodeCryptoDecrypt)
	}

	r.Logger.With(zap.String("uri", uri)).
		With(zap.Int("code", int(response.Code))).
		With(zap.String("processing_date", response.ProcessingDate)).
		Info("bank_response")

	return response, nil
}

// decodeResponseBody unwraps and decrypts a {"data": ...} body. When the
// body is not encrypted, or decryption fails, the raw body is used as-is;
// the fallback is logged so both shapes stay visible in production.
func (r repoImpl) decodeResponseBody(responseByte []byte) string {
	var payload eBankGw.EncryptedPayload
	if err := json.Unmarshal(responseByte, &payload); err != nil || payload.Data == "" {
		r.Logger.With(zap.String("response", string(responseByte))).
			Warn("response_plaintext_fallback")
		return string(responseByte)
	}

	plaintext, err := crypt.AESDecryptECB(payload.Data, r.Credentials.SecretKey)
	if err != nil {
		r.Logger.With(zap.Error(err)).
			With(zap.String("response", string(responseByte))).
			Warn("response_plaintext_fallback")
		return string(responseByte)
	}

	return plaintext
}

func (r repoImpl) validate(tx *eBankGw.C2PTransaction) error {
	if tx.Amount <= 0 {
		return gwerrors.MustFromCode(gwerrors.CodeValAmount)
	}

	origin, err := helpers.FormatVenezuelanMobile(tx.OriginMobileNumber)
	if err != nil {
		return gwerrors.MustFromCode(gwerrors.CodeValOriginPhone)
	}
	tx.OriginMobileNumber = origin

	if tx.DestinationMobileNumber == "" {
		tx.DestinationMobileNumber = tx.OriginMobileNumber
	} else {
		destination, err := helpers.FormatVenezuelanMobile(tx.DestinationMobileNumber)
		if err != nil {
			return gwerrors.MustFromCode(gwerrors.CodeValDestinationPhone)
		}
		tx.DestinationMobileNumber = destination
	}

	// the caller decides the beneficiary and invoice; nothing is repaired here
	if tx.DestinationBankID == "" {
		return gwerrors.MustFromCode(gwerrors.CodeValDestinationBank)
	}

	if tx.DestinationID == "" {
		return gwerrors.MustFromCode(gwerrors.CodeValDestinationID)
	}

	if strings.TrimSpace(tx.InvoiceNumber) == "" {
		return gwerrors.MustFromCode(gwerrors.CodeValInvoice)
	}
	tx.InvoiceNumber = helpers.FormatPaymentReference(tx.InvoiceNumber)

	return nil
}

func (r repoImpl) buildEnvelope(tx eBankGw.C2PTransaction, clientCtx eBankGw.ClientContext) (envelope eBankGw.C2PRequest, err error) {
	encryptedDestinationID, err := crypt.AESEncryptECB(tx.DestinationID, r.Credentials.SecretKey)
	if err != nil {
		return envelope, gwerrors.MustFromCode(gwerrors.CodeCryptoEncrypt)
	}
	encryptedOrigin, err := crypt.AESEncryptECB(tx.OriginMobileNumber, r.Credentials.SecretKey)
	if err != nil {
		return envelope, gwerrors.MustFromCode(gwerrors.CodeCryptoEncrypt)
	}
	encryptedDestination, err := crypt.AESEncryptECB(tx.DestinationMobileNumber, r.Credentials.SecretKey)
	if err != nil {
		return envelope, gwerrors.MustFromCode(gwerrors.CodeCryptoEncrypt)
	}

	envelope = eBankGw.C2PRequest{
		MerchantIdentify: eBankGw.MerchantIdentify{
			IntegratorID: constants.IntegratorID,
			MerchantID:   cast.ToInt(r.Credentials.MerchantID),
			TerminalID:   constants.TerminalID,
		},
		ClientIdentify: eBankGw.ClientIdentify{
			IPAddress:    clientCtx.IPAddress,
			BrowserAgent: clientCtx.UserAgent,
			Mobile:       buildMobileDevice(clientCtx.DeviceInfo),
		},
		TransactionC2P: eBankGw.TransactionC2P{
			Amount:                  tx.Amount,
			Currency:                constants.Currency,
			DestinationBankID:       tx.DestinationBankID,
			DestinationID:           encryptedDestinationID,
			OriginMobileNumber:      encryptedOrigin,
			DestinationMobileNumber: encryptedDestination,
			TrxType:                 constants.TrxTypePurchase,
			PaymentMethod:           constants.PaymentMethodC2P,
			InvoiceNumber:           tx.InvoiceNumber,
		},
	}

	return envelope, nil
}

func buildMobileDevice(info *eBankGw.DeviceInfo) eBankGw.MobileDevice {
	device := eBankGw.MobileDevice{
		Manufacturer: constants.DeviceUnknown,
		Model:        constants.DeviceUnknown,
		OSVersion:    constants.DeviceUnknown,
		Location: eBankGw.GeoLocation{
			Lat: constants.DefaultLatitude,
			Lng: constants.DefaultLongitude,
		},
	}

	if info == nil {
		return device
	}

	if info.Manufacturer != "" {
		device.Manufacturer = info.Manufacturer
	}
	if info.Model != "" {
		device.Model = info.Model
	}
	if info.OSVersion != "" {
		device.OSVersion = info.OSVersion
	}
	if info.Location != nil {
		device.Location = *info.Location
	}

	return device
}

// ValidateCredentials reports whether the configured credential tuple is
// complete enough to call the gateway.
func (r repoImpl) ValidateCredentials() bool {
	return r.Credentials.ClientID != "" &&
		r.Credentials.MerchantID != "" &&
		r.Credentials.Endpoint != "" &&
		crypt.ValidateSecret(r.Credentials.SecretKey)
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
		return true
	}
	if err == context.DeadlineExceeded {
		return true
	}
	return false
}

func NewRepoImpl(credentials eBankGw.Credentials, logger *zap.Logger) *repoImpl {
	return &repoImpl{
		Credentials: credentials,
		Logger:      logger,
		client:      &http.Client{Timeout: timeout},
	}
}
