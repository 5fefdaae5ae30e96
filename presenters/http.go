package presenters

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"c2p-system/domain/entities"
	"c2p-system/domain/request_params"
	"c2p-system/domain/value_objects"
	gwerrors "c2p-system/errors"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// VerificationService is the application surface the HTTP layer depends on.
type VerificationService interface {
	VerifyPayment(ctx context.Context, request request_params.VerifyPayment) (*value_objects.VerificationResult, *gwerrors.GatewayError)
	ListVerificationsByReference(ctx context.Context, reference string) ([]entities.VerificationEntity, *gwerrors.GatewayError)
}

type HTTPPresenter struct {
	service VerificationService
	logger  *zap.Logger
}

func NewHTTPPresenter(service VerificationService, logger *zap.Logger) *HTTPPresenter {
	return &HTTPPresenter{service: service, logger: logger}
}

func (p *HTTPPresenter) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", p.health)
	r.Route("/api", func(r chi.Router) {
		r.Post("/verify-payment", p.verifyPayment)
		r.Get("/verifications/{reference}", p.listVerifications)
	})

	return r
}

func (p *HTTPPresenter) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (p *HTTPPresenter) verifyPayment(w http.ResponseWriter, r *http.Request) {
	var request request_params.VerifyPayment
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("VAL_000", "El cuerpo de la solicitud no es un JSON válido."))
		return
	}

	if msg := validateRequest(request); msg != "" {
		writeJSON(w, http.StatusBadRequest, errorBody("VAL_000", msg))
		return
	}

	request.IPAddress = r.RemoteAddr
	request.UserAgent = r.UserAgent()

	result, gwErr := p.service.VerifyPayment(r.Context(), request)
	if gwErr != nil {
		p.logger.With(zap.String("code", string(gwErr.Code))).Warn("verify_payment_rejected")
		writeJSON(w, statusFromCode(gwErr.Code), errorBody(string(gwErr.Code), gwErr.UserMessage))
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (p *HTTPPresenter) listVerifications(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	records, gwErr := p.service.ListVerificationsByReference(r.Context(), reference)
	if gwErr != nil {
		writeJSON(w, statusFromCode(gwErr.Code), errorBody(string(gwErr.Code), gwErr.UserMessage))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"verifications": records})
}

func validateRequest(request request_params.VerifyPayment) string {
	switch {
	case request.Reference == "":
		return "La referencia del pago es obligatoria."
	case request.Amount <= 0:
		return "El monto debe ser mayor que cero."
	case request.Phone == "":
		return "El teléfono de origen es obligatorio."
	}
	return ""
}

// statusFromCode maps internal catalog codes to the outward HTTP status of
// this service, not of the bank.
func statusFromCode(code gwerrors.Code) int {
	switch {
	case strings.HasPrefix(string(code), "VAL_"), code == gwerrors.CodeHTTPBadRequest:
		return http.StatusBadRequest
	case strings.HasPrefix(string(code), "AUTH_"):
		return http.StatusUnauthorized
	case code == gwerrors.CodeHTTPForbidden:
		return http.StatusForbidden
	case strings.HasPrefix(string(code), "SEARCH_"):
		return http.StatusNotFound
	case code == gwerrors.CodeHTTPTooMany:
		return http.StatusTooManyRequests
	case strings.HasPrefix(string(code), "NET_"):
		return http.StatusGatewayTimeout
	case strings.HasPrefix(string(code), "SYS_"):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func errorBody(code, message string) map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
