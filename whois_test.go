package getbd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMapToWhois(t *testing.T) {
	rec := DomainInfoRecord{
		LocalDomain: &LocalDomain{
			ActivationDate: "2024-01-15T10:30:00Z",
			ExpiryDate:     "2025-01-15T10:30:00Z",
			IsActive:       true,
		},
		PrimaryDNS:          "ns1.example.com",
		SecondaryDNS:        "ns2.example.com",
		ClientFullName:      strPtr("Jane Doe"),
		ClientEmail:         "jane@example.com",
		ClientContactNumber: "+8801712345678",
		ClientNID:           "1234567890",
	}
	info := MapToWhois(rec)

	assert.Equal(t, "2024-01-15", info.CreationTime)
	assert.Equal(t, "2025-01-15", info.EndTime)
	assert.Equal(t, [3]string{"ns1.example.com", "ns2.example.com", ""}, info.Nameservers)
	assert.True(t, info.TransferLock)

	reg := info.Whois.Registrant
	assert.Equal(t, "Jane", reg.FirstName)
	assert.Equal(t, "Doe", reg.LastName)
	assert.Equal(t, "Jane Doe", reg.Name)
	assert.Equal(t, "NID: 1234567890", reg.Company)
	assert.Equal(t, "jane@example.com", reg.EMail)
	assert.Equal(t, "BD", reg.Country)
	assert.Equal(t, "880", reg.PhoneCountryCode)
	assert.Equal(t, "1712345678", reg.Phone)

	assert.Equal(t, reg, info.Whois.Administrative)
	assert.Equal(t, reg, info.Whois.Technical)
	assert.Equal(t, reg, info.Whois.Billing)
}

func TestMapToWhois_Placeholders(t *testing.T) {
	info := MapToWhois(DomainInfoRecord{})
	reg := info.Whois.Registrant
	assert.Equal(t, "N/A", reg.Name)
	assert.Equal(t, "N/A", reg.FirstName)
	assert.Empty(t, reg.LastName)
	assert.Equal(t, "N/A", reg.Company)
	assert.Empty(t, info.CreationTime)
	assert.Empty(t, info.EndTime)
	assert.True(t, info.TransferLock)
}

func TestSplitName(t *testing.T) {
	tests := []struct{ in, first, last string }{
		{"Jane Doe", "Jane", "Doe"},
		{"Jane", "Jane", ""},
		{"Mohammad Abdul Karim", "Mohammad", "Abdul Karim"},
		{"", "", ""},
	}
	for _, tt := range tests {
		first, last := splitName(tt.in)
		assert.Equal(t, tt.first, first, tt.in)
		assert.Equal(t, tt.last, last, tt.in)
	}
}

func TestMapToSyncStatus(t *testing.T) {
	active := MapToSyncStatus(DomainInfoRecord{LocalDomain: &LocalDomain{
		ActivationDate: "2024-01-15T10:30:00Z",
		ExpiryDate:     "2026-01-15",
		IsActive:       true,
	}})
	assert.Equal(t, SyncStatus{CreationTime: "2024-01-15", EndTime: "2026-01-15", Status: StatusActive}, active)

	expired := MapToSyncStatus(DomainInfoRecord{LocalDomain: &LocalDomain{IsActive: false}})
	assert.Equal(t, StatusExpired, expired.Status)

	assert.Equal(t, StatusExpired, MapToSyncStatus(DomainInfoRecord{}).Status)
}

func TestDomainInfoRecord_LooseTypes(t *testing.T) {
	var rec DomainInfoRecord
	require.NoError(t, json.Unmarshal([]byte(`{
		"localDomain": {"activationDate": "2024-01-15", "expiryDate": "2025-01-15", "isActive": 1, "orderId": 42},
		"primaryDns": "ns1.example.com",
		"clientFullName": null
	}`), &rec))
	require.NotNil(t, rec.LocalDomain)
	assert.True(t, bool(rec.LocalDomain.IsActive))
	assert.Equal(t, "42", rec.LocalDomain.OrderID.String())
	assert.Nil(t, rec.ClientFullName)
	assert.Equal(t, "N/A", MapToWhois(rec).Whois.Registrant.Name)
}

func TestWhoisInfo_JSONShape(t *testing.T) {
	b, err := json.Marshal(MapToWhois(DomainInfoRecord{ClientFullName: strPtr("Jane Doe")}))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.Contains(t, m, "creation_time")
	assert.Contains(t, m, "end_time")
	assert.Contains(t, m, "transferlock")
	whois := m["whois"].(map[string]any)
	for _, role := range []string{"registrant", "administrative", "technical", "billing"} {
		assert.Contains(t, whois, role)
	}
}
