package getbd

// Wire shapes of the Get BD partner API.

import (
	"encoding/json"
	"strconv"
	"strings"
)

// APIResponse is the envelope every endpoint answers with. Transport synthesizes
// one with Success=false when the body is empty or not a JSON object.
type APIResponse struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Message    string          `json:"-"`
	StatusCode int             `json:"-"`

	synthetic bool // body was empty or not a JSON object
}

// HasData reports whether data is present and not JSON null/empty.
func (r *APIResponse) HasData() bool {
	d := strings.TrimSpace(string(r.Data))
	return d != "" && d != "null" && d != "{}" && d != "[]"
}

// messageText renders the provider message, which is a string on most endpoints
// and a list of validation messages on some.
func messageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var list []string
	if json.Unmarshal(raw, &list) == nil {
		return strings.Join(list, "; ")
	}
	if string(raw) == "null" {
		return ""
	}
	return string(raw)
}

// OrderRequest is the body of POST /orders.
type OrderRequest struct {
	DomainName     string   `json:"domainName"`
	Years          int      `json:"years"`
	FullName       string   `json:"fullName"`
	NID            string   `json:"nid"`
	Email          string   `json:"email"`
	ContactAddress string   `json:"contactAddress"`
	ContactNumber  string   `json:"contactNumber"`
	NameServers    []string `json:"nameServers"`
}

// OrderResult is the data member of a successful order creation.
type OrderResult struct {
	ID FlexString `json:"id"`
}

// FlexString accepts a JSON string or number; ids come back as either.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*f = FlexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// LocalDomain is the registry-side part of a domain record.
type LocalDomain struct {
	ActivationDate string     `json:"activationDate"`
	ExpiryDate     string     `json:"expiryDate"`
	IsActive       FlexBool   `json:"isActive"`
	OrderID        FlexString `json:"orderId"`
}

// FlexBool accepts true/false, 0/1 and "true"/"1".
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	switch strings.ToLower(s) {
	case "", "null", "false", "0":
		*f = false
		return nil
	case "true", "1":
		*f = true
		return nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		*f = n != 0
		return nil
	}
	return &json.UnsupportedValueError{Str: s}
}

// DomainInfoRecord is the data member of GET /domains/info.
type DomainInfoRecord struct {
	LocalDomain         *LocalDomain `json:"localDomain"`
	PrimaryDNS          string       `json:"primaryDns"`
	SecondaryDNS        string       `json:"secondaryDns"`
	TertiaryDNS         string       `json:"tertiaryDns"`
	ClientFullName      *string      `json:"clientFullName"`
	ClientEmail         string       `json:"clientEmail"`
	ClientContactNumber string       `json:"clientContactNumber"`
	ClientNID           string       `json:"clientNid"`
}

// SearchResult is the data member of GET /domains/search.
type SearchResult struct {
	Domain    string   `json:"domain,omitempty"`
	Available FlexBool `json:"available"`
}

// DomainRate is the data member of GET /domains/rate.
type DomainRate map[string]any

// Customer is the body of POST /customers.
type Customer struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	ContactNumber  string `json:"contactNumber"`
	ContactAddress string `json:"contactAddress,omitempty"`
	NID            string `json:"nid,omitempty"`
}
