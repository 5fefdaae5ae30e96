package helpers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jakehl/goid"
)

// mobile numbers travel to the bank as 58 + 10 digits, e.g. 584141234567
var mobileRegex = regexp.MustCompile(`^58[0-9]{10}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

func GetUUId() string {
	v4UUID := goid.NewV4UUID()
	return fmt.Sprint(v4UUID.String())
}

func LocationVenezuela() *time.Location {
	location, err := time.LoadLocation("America/Caracas")
	if err != nil {
		fmt.Println(err)
	}
	return location
}

func GetCurrentTime() time.Time {
	location, err := time.LoadLocation("America/Caracas")
	if err != nil {
		fmt.Println(err)
	}

	timeNow := time.Now()

	return timeNow.In(location)
}

func IsStringSliceContains(stringSlice []string, searchString string) bool {
	for _, value := range stringSlice {
		if value == searchString {
			return true
		}
	}
	return false
}

// StripPhoneSeparators removes spaces, hyphens and parentheses.
func StripPhoneSeparators(phoneNumber string) string {
	return phoneSeparators.Replace(phoneNumber)
}

// IsValidMobileNumber checks the national mobile format after stripping
// separators.
func IsValidMobileNumber(phoneNumber string) bool {
	return mobileRegex.MatchString(StripPhoneSeparators(phoneNumber))
}

// FormatVenezuelanMobile normalizes the user-entered forms 0414-1234567,
// +584141234567 and 584141234567 to the canonical 58XXXXXXXXXX the
// gateway validates against.
func FormatVenezuelanMobile(phoneNumber string) (string, error) {
	cleaned := StripPhoneSeparators(phoneNumber)

	if strings.HasPrefix(cleaned, "+58") {
		cleaned = cleaned[1:]
	}

	if strings.HasPrefix(cleaned, "0") && len(cleaned) == 11 {
		cleaned = "58" + cleaned[1:]
	}

	if !mobileRegex.MatchString(cleaned) {
		return "", errors.New("número de teléfono venezolano inválido, debe tener el formato 04XX-XXXXXXX")
	}

	return cleaned, nil
}

// FormatPaymentReference uppercases a reference and drops spaces.
func FormatPaymentReference(reference string) string {
	return strings.ToUpper(strings.ReplaceAll(reference, " ", ""))
}
