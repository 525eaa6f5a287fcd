package getbd

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchDomain(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		want     bool
		wantKind Kind
	}{
		{"available", 200, `{"success":true,"data":{"available":true}}`, true, ""},
		{"available as string", 200, `{"success":true,"data":{"available":"1"}}`, true, ""},
		{"taken", 200, `{"success":true,"data":{"available":false}}`, false, ""},
		{"success false", 200, `{"success":false,"message":"Invalid TLD"}`, false, ""},
		{"no data", 200, `{"success":true}`, false, ""},
		{"server error", 503, `{"success":false,"message":"maintenance"}`, false, ""},
		{"server error without body", 502, ``, false, ""},
		{"empty body", 200, ``, false, ""},
		{"html body", 200, `<html>oops</html>`, false, ""},
		{"data not object", 200, `{"success":true,"data":"yes"}`, false, KindDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})
			res, err := api.client(t).SearchDomain(context.Background(), "example.com.bd")
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bool(res.Available))
			assert.Equal(t, "/domains/search", api.Requests()[0].Path)
		})
	}
}

func TestDomainRate(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"price": 1200, "currency": "BDT"}})
	})
	rate, err := api.client(t).DomainRate(context.Background(), "example.com.bd", 2)
	require.NoError(t, err)
	assert.Equal(t, "BDT", rate["currency"])
	assert.Equal(t, float64(1200), rate["price"])

	q, err := url.ParseQuery(api.Requests()[0].Query)
	require.NoError(t, err)
	assert.Equal(t, "2", q.Get("year"))
}

func TestListDomains(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "9" {
			writeJSON(w, http.StatusOK, map[string]any{"success": false})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": []any{map[string]any{"domain": "a.com.bd"}}})
	})
	c := api.client(t)

	data, err := c.ListDomains(context.Background(), url.Values{"page": {"1"}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"domain":"a.com.bd"}]`, string(data))

	_, err = c.ListDomains(context.Background(), url.Values{"page": {"9"}})
	require.Error(t, err)
	_, _, msg := Failure(err)
	assert.Equal(t, "Domain listing failed", msg)
}
