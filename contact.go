package getbd

import (
	"strings"
)

const (
	bdCountryCode = "880"
	bdPhonePrefix = "+" + bdCountryCode
	bdPhoneDigits = 10
)

// RegistrantContact is the raw registrant block as the platform collects it.
type RegistrantContact struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	City             string `json:"city"`
	State            string `json:"state"`
	ZipCode          string `json:"zipCode"`
	Country          string `json:"country"`
	PhoneCountryCode string `json:"phoneCountryCode"`
	Phone            string `json:"phone"`
}

// NormalizePhone derives the +880XXXXXXXXXX contact number the provider expects.
//
// Non-digits are dropped from countryCode+phone, a leading 880 is removed, then
// the 0 trunk prefix, and the first ten remaining digits are kept. Fewer than
// ten digits is a KindValidation error.
func NormalizePhone(countryCode, phone string) (string, error) {
	digits := digitsOnly(countryCode + phone)
	digits = strings.TrimPrefix(digits, bdCountryCode)
	digits = strings.TrimLeft(digits, "0")
	contact := bdPhonePrefix + firstN(digits, bdPhoneDigits)
	if len(contact) < len(bdPhonePrefix)+bdPhoneDigits {
		return "", newError(KindValidation, "normalize phone", "invalid contact number", &ValidationError{
			Field:  "phone",
			Reason: "expected a Bangladeshi number with 10 subscriber digits",
			Parsed: contact,
			Raw:    countryCode + phone,
		})
	}
	return contact, nil
}

// DisplayPhone strips the +880 prefix from a stored contact number.
func DisplayPhone(contact string) string { return strings.ReplaceAll(contact, bdPhonePrefix, "") }

// FormatAddress joins the non-empty address parts with ", ".
func FormatAddress(c RegistrantContact) string {
	parts := []string{c.AddressLine1, c.AddressLine2, c.City, c.State, c.ZipCode, c.Country}
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}
