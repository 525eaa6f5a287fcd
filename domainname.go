package getbd

import (
	"strings"

	"golang.org/x/net/idna"
)

// ASCIIDomain converts a possibly internationalized name into its ASCII (punycode) form.
func ASCIIDomain(name string) (string, error) {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	if name == "" {
		return "", newError(KindValidation, "domain", "domain name is empty", nil)
	}
	a, err := idna.Lookup.ToASCII(name)
	if err != nil {
		return "", newError(KindValidation, "domain", "invalid domain name "+name, err)
	}
	return a, nil
}

// DomainName joins a second-level label and a top-level label ("example", "com.bd")
// and returns the ASCII form.
func DomainName(sld, tld string) (string, error) {
	sld = strings.Trim(strings.TrimSpace(sld), ".")
	tld = strings.Trim(strings.TrimSpace(tld), ".")
	if sld == "" || tld == "" {
		return "", newError(KindValidation, "domain", "second-level and top-level labels are required", nil)
	}
	return ASCIIDomain(sld + "." + tld)
}
