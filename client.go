package getbd

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	productionBaseURL = "https://api.get.bd/api/v1/external"
	sandboxBaseURL    = "https://sandbox-api.get.bd/api/v1/external"

	defaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

// Doer is the minimal http.Client interface we depend on (handy for tests/mocks).
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client talks to the Get BD partner API. It holds no mutable state after New
// and is safe for concurrent use.
type Client struct {
	// HTTP / defaults
	hc          Doer
	ua          string
	timeout     time.Duration
	headerExtra http.Header

	apiKey  string
	sandbox bool
	baseURL string

	// collaborators
	logger   *slog.Logger
	recorder Recorder
	metrics  *Metrics
}

// New returns a Client for apiKey. The key is trimmed; an empty key is a KindConfig error.
func New(apiKey string, opts ...Option) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, newError(KindConfig, "new", "Get BD API key is required", nil)
	}
	c := &Client{
		hc:          defaultHTTPClient(),
		ua:          "getbd-go/0.1",
		timeout:     defaultTimeout,
		headerExtra: make(http.Header),
		apiKey:      key,
		logger:      slog.New(slog.DiscardHandler),
		recorder:    NopRecorder{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		c.baseURL = productionBaseURL
		if c.sandbox {
			c.baseURL = sandboxBaseURL
		}
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c, nil
}

// The per-request context deadline is the real bound; this only guards against a missing one.
func defaultHTTPClient() *http.Client { return &http.Client{Timeout: 2 * defaultTimeout} }

// BaseURL returns the endpoint prefix selected at construction.
func (c *Client) BaseURL() string { return c.baseURL }

// Sandbox reports whether the client targets the provider's test environment.
func (c *Client) Sandbox() bool { return c.sandbox }
