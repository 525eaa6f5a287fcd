package getbd

import "strings"

const (
	dateLen     = len("2006-01-02")
	placeholder = "N/A"
)

// WhoisContact is one role of the platform's whois block.
type WhoisContact struct {
	FirstName        string `json:"FirstName"`
	LastName         string `json:"LastName"`
	Name             string `json:"Name"`
	Company          string `json:"Company"`
	EMail            string `json:"EMail"`
	Country          string `json:"Country"`
	City             string `json:"City"`
	State            string `json:"State"`
	AddressLine1     string `json:"AddressLine1"`
	AddressLine2     string `json:"AddressLine2"`
	ZipCode          string `json:"ZipCode"`
	PhoneCountryCode string `json:"PhoneCountryCode"`
	Phone            string `json:"Phone"`
	FaxCountryCode   string `json:"FaxCountryCode"`
	Fax              string `json:"Fax"`
}

// Whois groups the four contact roles. The provider keeps a single customer, so
// all four are the same record.
type Whois struct {
	Registrant     WhoisContact `json:"registrant"`
	Administrative WhoisContact `json:"administrative"`
	Technical      WhoisContact `json:"technical"`
	Billing        WhoisContact `json:"billing"`
}

// WhoisInfo is the platform-facing view of a domain.
type WhoisInfo struct {
	CreationTime string    `json:"creation_time"`
	EndTime      string    `json:"end_time"`
	Nameservers  [3]string `json:"nameservers"`
	TransferLock bool      `json:"transferlock"`
	Whois        Whois     `json:"whois"`
}

// SyncStatus is the platform-facing expiry/state view of a domain.
type SyncStatus struct {
	CreationTime string `json:"creationtime"`
	EndTime      string `json:"endtime"`
	Status       string `json:"status"`
}

const (
	StatusActive  = "active"
	StatusExpired = "expired"
)

// dateOnly keeps the YYYY-MM-DD part of a provider timestamp.
func dateOnly(ts string) string { return firstN(strings.TrimSpace(ts), dateLen) }

// splitName splits on the first space; a single word has an empty last name.
func splitName(full string) (first, last string) {
	first, last, _ = strings.Cut(full, " ")
	return first, last
}

// MapToWhois converts a provider domain record into the platform's whois shape.
func MapToWhois(rec DomainInfoRecord) WhoisInfo {
	var ld LocalDomain
	if rec.LocalDomain != nil {
		ld = *rec.LocalDomain
	}
	fullName := placeholder
	if rec.ClientFullName != nil {
		fullName = *rec.ClientFullName
	}
	first, last := splitName(fullName)

	company := placeholder
	if rec.ClientNID != "" {
		company = "NID: " + rec.ClientNID
	}
	contact := WhoisContact{
		FirstName:        first,
		LastName:         last,
		Name:             fullName,
		Company:          company,
		EMail:            rec.ClientEmail,
		Country:          "BD",
		PhoneCountryCode: bdCountryCode,
		Phone:            DisplayPhone(rec.ClientContactNumber),
	}
	return WhoisInfo{
		CreationTime: dateOnly(ld.ActivationDate),
		EndTime:      dateOnly(ld.ExpiryDate),
		Nameservers:  [3]string{rec.PrimaryDNS, rec.SecondaryDNS, rec.TertiaryDNS},
		TransferLock: true,
		Whois: Whois{
			Registrant:     contact,
			Administrative: contact,
			Technical:      contact,
			Billing:        contact,
		},
	}
}

// MapToSyncStatus reduces a provider record to dates and active/expired state.
func MapToSyncStatus(rec DomainInfoRecord) SyncStatus {
	var ld LocalDomain
	if rec.LocalDomain != nil {
		ld = *rec.LocalDomain
	}
	status := StatusExpired
	if ld.IsActive {
		status = StatusActive
	}
	return SyncStatus{
		CreationTime: dateOnly(ld.ActivationDate),
		EndTime:      dateOnly(ld.ExpiryDate),
		Status:       status,
	}
}
