package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_CatalogCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode Code
	}{
		{
			name:     "cataloged gateway error returns catalog entry",
			err:      &GatewayError{Code: CodeNetTimeout, Message: "ad-hoc message"},
			wantCode: CodeNetTimeout,
		},
		{
			name:     "validation code",
			err:      &GatewayError{Code: CodeValAmount},
			wantCode: CodeValAmount,
		},
		{
			name: "internal code wins over HTTP status",
			err:  &HTTPError{Status: 503, Body: "unavailable", Code: CodeAuthInvalidClient},
			// not SYS_001: catalog code has precedence over the 503
			wantCode: CodeAuthInvalidClient,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)

			want, ok := FromCode(tt.wantCode)
			if !ok {
				t.Fatalf("code %v missing from catalog", tt.wantCode)
			}
			// catalog entry returned verbatim, ad-hoc message discarded
			assert.Equal(t, want, got)
		})
	}
}

func TestClassify_HTTPStatus(t *testing.T) {
	tests := []struct {
		status        int
		wantCode      Code
		wantRetryable bool
	}{
		{status: 400, wantCode: CodeHTTPBadRequest, wantRetryable: false},
		{status: 401, wantCode: CodeAuthInvalidClient, wantRetryable: false},
		{status: 403, wantCode: CodeHTTPForbidden, wantRetryable: false},
		{status: 404, wantCode: CodeSearchNotFound, wantRetryable: false},
		{status: 408, wantCode: CodeNetTimeout, wantRetryable: true},
		{status: 429, wantCode: CodeHTTPTooMany, wantRetryable: true},
		{status: 500, wantCode: CodeSysUnavailable, wantRetryable: true},
		{status: 502, wantCode: CodeSysUnavailable, wantRetryable: true},
		{status: 503, wantCode: CodeSysUnavailable, wantRetryable: true},
		{status: 504, wantCode: CodeNetTimeout, wantRetryable: true},
		{status: 418, wantCode: CodeUnknown, wantRetryable: true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %v", tt.status), func(t *testing.T) {
			got := Classify(&HTTPError{Status: tt.status, Body: "body"})
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantRetryable, got.Retryable)
		})
	}
}

func TestClassify_MessagePatterns(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		wantCode Code
	}{
		{name: "timeout", message: "request timeout after 30s", wantCode: CodeNetTimeout},
		{name: "timed out", message: "operation timed out", wantCode: CodeNetTimeout},
		{name: "deadline", message: "context deadline exceeded", wantCode: CodeNetTimeout},
		{name: "connection", message: "connection refused", wantCode: CodeNetConnection},
		{name: "network", message: "network is unreachable", wantCode: CodeNetConnection},
		{name: "encrypt", message: "encrypt: empty secret key", wantCode: CodeCryptoEncrypt},
		{name: "decrypt", message: "decrypt: invalid base64", wantCode: CodeCryptoDecrypt},
		{name: "case insensitive", message: "Connection RESET", wantCode: CodeNetConnection},
		{name: "no match", message: "algo salió mal", wantCode: CodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(fmt.Errorf(tt.message))
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func TestClassify_Unknown(t *testing.T) {
	got := Classify(fmt.Errorf("falla inesperada"))
	assert.Equal(t, CodeUnknown, got.Code)
	assert.Equal(t, SeverityMedium, got.Severity)
	assert.True(t, got.Retryable)
	assert.Equal(t, "falla inesperada", got.Message)
	assert.NotEmpty(t, got.UserMessage)
}

func TestClassify_NormalizedPassThrough(t *testing.T) {
	custom := &GatewayError{
		Code:      Code("C2P_BUSINESS"),
		Message:   "rechazado por el banco",
		Severity:  SeverityLow,
		Retryable: false,
	}
	assert.Same(t, custom, Classify(custom))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  *GatewayError
		want bool
	}{
		{
			name: "retryable medium",
			err:  MustFromCode(CodeNetTimeout),
			want: true,
		},
		{
			name: "non retryable",
			err:  MustFromCode(CodeValAmount),
			want: false,
		},
		{
			name: "critical never retryable",
			err:  &GatewayError{Code: CodeSysInternal, Severity: SeverityCritical, Retryable: true},
			want: false,
		},
		{
			name: "high retryable decrypt",
			err:  MustFromCode(CodeCryptoDecrypt),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestFromCode_CopySemantics(t *testing.T) {
	first := MustFromCode(CodeNetTimeout)
	first.Message = "mutated"

	second := MustFromCode(CodeNetTimeout)
	assert.Equal(t, "Timeout de conexión", second.Message)
}
