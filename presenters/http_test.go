package presenters

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"c2p-system/domain/entities"
	"c2p-system/domain/request_params"
	"c2p-system/domain/value_objects"
	gwerrors "c2p-system/errors"
	"c2p-system/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	result  *value_objects.VerificationResult
	records []entities.VerificationEntity
	gwErr   *gwerrors.GatewayError
	got     request_params.VerifyPayment
}

func (s *stubService) VerifyPayment(ctx context.Context, request request_params.VerifyPayment) (*value_objects.VerificationResult, *gwerrors.GatewayError) {
	s.got = request
	return s.result, s.gwErr
}

func (s *stubService) ListVerificationsByReference(ctx context.Context, reference string) ([]entities.VerificationEntity, *gwerrors.GatewayError) {
	return s.records, s.gwErr
}

func newTestServer(service *stubService) *httptest.Server {
	log, _ := logger.NewLogger("DEV")
	return httptest.NewServer(NewHTTPPresenter(service, log).Router())
}

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	return resp
}

func TestHTTPPresenter_Health(t *testing.T) {
	server := newTestServer(&stubService{})
	defer server.Close()

	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPPresenter_VerifyPayment(t *testing.T) {
	service := &stubService{result: &value_objects.VerificationResult{
		VerificationID: "MER-1",
		Verified:       true,
		Status:         "verified",
		GatewayCode:    12345,
		GuID:           "guid-1",
		Reference:      "REF1",
	}}
	server := newTestServer(service)
	defer server.Close()

	resp := postJSON(t, server.URL+"/api/verify-payment", map[string]interface{}{
		"sender_bank": "0102",
		"reference":   "REF1",
		"amount":      100.50,
		"phone":       "04141234567",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result value_objects.VerificationResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Verified)
	assert.Equal(t, "MER-1", result.VerificationID)
	assert.Equal(t, "guid-1", result.GuID)

	assert.Equal(t, "REF1", service.got.Reference)
	assert.NotEmpty(t, service.got.UserAgent)
}

func TestHTTPPresenter_VerifyPayment_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{
			name: "missing reference",
			body: map[string]interface{}{"amount": 10, "phone": "04141234567"},
		},
		{
			name: "zero amount",
			body: map[string]interface{}{"reference": "R1", "amount": 0, "phone": "04141234567"},
		},
		{
			name: "missing phone",
			body: map[string]interface{}{"reference": "R1", "amount": 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubService{}
			server := newTestServer(service)
			defer server.Close()

			resp := postJSON(t, server.URL+"/api/verify-payment", tt.body)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHTTPPresenter_VerifyPayment_GatewayErrors(t *testing.T) {
	tests := []struct {
		name       string
		code       gwerrors.Code
		wantStatus int
	}{
		{name: "validation", code: gwerrors.CodeValOriginPhone, wantStatus: http.StatusBadRequest},
		{name: "auth", code: gwerrors.CodeAuthInvalidClient, wantStatus: http.StatusUnauthorized},
		{name: "not found", code: gwerrors.CodeSearchNotFound, wantStatus: http.StatusNotFound},
		{name: "timeout", code: gwerrors.CodeNetTimeout, wantStatus: http.StatusGatewayTimeout},
		{name: "system", code: gwerrors.CodeSysUnavailable, wantStatus: http.StatusBadGateway},
		{name: "crypto", code: gwerrors.CodeCryptoDecrypt, wantStatus: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubService{gwErr: gwerrors.MustFromCode(tt.code)}
			server := newTestServer(service)
			defer server.Close()

			resp := postJSON(t, server.URL+"/api/verify-payment", map[string]interface{}{
				"reference": "R1",
				"amount":    10,
				"phone":     "04141234567",
			})
			defer resp.Body.Close()

			require.Equal(t, tt.wantStatus, resp.StatusCode)

			var body struct {
				Error struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, string(tt.code), body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}

func TestHTTPPresenter_ListVerifications(t *testing.T) {
	service := &stubService{records: []entities.VerificationEntity{
		{VerificationID: "MER-1", Reference: "REF1", Status: entities.VerificationStatusVerified},
	}}
	server := newTestServer(service)
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/verifications/REF1")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Verifications []entities.VerificationEntity `json:"verifications"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Verifications, 1)
	assert.Equal(t, "MER-1", body.Verifications[0].VerificationID)
}
