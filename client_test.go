package getbd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- fake provider ----------

// fakeAPI is an httptest server that counts calls and remembers the last request.
type fakeAPI struct {
	*httptest.Server
	calls atomic.Int32

	mu       sync.Mutex
	requests []capturedRequest
}

type capturedRequest struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

func newFakeAPI(t *testing.T, h http.HandlerFunc) *fakeAPI {
	t.Helper()
	f := &fakeAPI{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		b, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(b))
		f.mu.Lock()
		f.requests = append(f.requests, capturedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   b,
		})
		f.mu.Unlock()
		h(w, r)
	}))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) Calls() int { return int(f.calls.Load()) }

func (f *fakeAPI) Requests() []capturedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]capturedRequest(nil), f.requests...)
}

func (f *fakeAPI) client(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New("test-key", append([]Option{WithBaseURL(f.URL)}, opts...)...)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ---------- New ----------

func TestNew_RequiresAPIKey(t *testing.T) {
	for _, key := range []string{"", "   ", "\t\n"} {
		c, err := New(key)
		require.Error(t, err)
		assert.Nil(t, c)
		assert.True(t, IsKind(err, KindConfig), "kind: %v", KindOf(err))
	}
}

func TestNew_BaseURLSelection(t *testing.T) {
	prod, err := New("k")
	require.NoError(t, err)
	assert.Equal(t, "https://api.get.bd/api/v1/external", prod.BaseURL())
	assert.False(t, prod.Sandbox())

	sb, err := New("k", WithSandbox(true))
	require.NoError(t, err)
	assert.Equal(t, "https://sandbox-api.get.bd/api/v1/external", sb.BaseURL())

	custom, err := New("k", WithSandbox(true), WithBaseURL("http://localhost:9999/"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", custom.BaseURL())
}

func TestNew_TrimsKey(t *testing.T) {
	api := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	c, err := New("  secret  ", WithBaseURL(api.URL))
	require.NoError(t, err)
	require.NoError(t, c.ValidateAPIKey(context.Background()))

	reqs := api.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "secret", reqs[0].Header.Get("X-API-Key"))
	assert.Equal(t, "Bearer secret", reqs[0].Header.Get("Authorization"))
}

// ---------- helpers ----------

func TestDigitsOnlyAndFirstN(t *testing.T) {
	assert.Equal(t, "8801712345678", digitsOnly("+880 (171) 234-5678"))
	assert.Equal(t, "", digitsOnly("abc"))
	assert.Equal(t, "2024-01-15", firstN("2024-01-15T10:30:00Z", 10))
	assert.Equal(t, "2024", firstN("2024", 10))
}

func TestLimitNameservers(t *testing.T) {
	got := limitNameservers([]string{" ns1.example.com ", "", "ns2.example.com", "ns3.example.com", "ns4.example.com"})
	assert.Equal(t, []string{"ns1.example.com", "ns2.example.com", "ns3.example.com"}, got)
	assert.Empty(t, limitNameservers(nil))
}

func TestCopyHeaders(t *testing.T) {
	src := make(http.Header)
	src.Add("K", "a")
	src.Add("K", "b")
	dst := make(http.Header)
	copyHeaders(dst, src)
	assert.Equal(t, []string{"a", "b"}, dst.Values("K"))
}

func TestTrimDotLower(t *testing.T) {
	assert.Equal(t, "com.bd", trimDotLower(" .COM.BD"))
	assert.True(t, strings.EqualFold(trimDotLower("Net.Bd"), "net.bd"))
}
