package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatVenezuelanMobile(t *testing.T) {
	type args struct {
		phoneNumber string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "canonical form passes through",
			args: args{phoneNumber: "584141234567"},
			want: "584141234567",
		},
		{
			name: "national form with leading zero",
			args: args{phoneNumber: "04141234567"},
			want: "584141234567",
		},
		{
			name: "hyphenated national form",
			args: args{phoneNumber: "0414-1234567"},
			want: "584141234567",
		},
		{
			name: "international plus prefix",
			args: args{phoneNumber: "+58 414 123 4567"},
			want: "584141234567",
		},
		{
			name:    "missing country code and too short",
			args:    args{phoneNumber: "041412345"},
			wantErr: true,
		},
		{
			name:    "letters",
			args:    args{phoneNumber: "0414abcdefg"},
			wantErr: true,
		},
		{
			name:    "empty",
			args:    args{phoneNumber: ""},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FormatVenezuelanMobile(tt.args.phoneNumber)
			if (err != nil) != tt.wantErr {
				t.Errorf("FormatVenezuelanMobile() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidMobileNumber(t *testing.T) {
	assert.True(t, IsValidMobileNumber("584141234567"))
	assert.True(t, IsValidMobileNumber("58 414-123-4567"))
	assert.False(t, IsValidMobileNumber("041412345"))
	assert.False(t, IsValidMobileNumber("5841412345678"))
	assert.False(t, IsValidMobileNumber(""))
}

func TestFormatPaymentReference(t *testing.T) {
	assert.Equal(t, "ABC123", FormatPaymentReference("abc 123"))
	assert.Equal(t, "REF-99", FormatPaymentReference("ref-99"))
}

func TestGetUUId(t *testing.T) {
	first := GetUUId()
	second := GetUUId()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
