package getbd

import (
	"log/slog"
	"time"
)

type Option func(*Client)

func WithHTTPDoer(d Doer) Option         { return func(c *Client) { c.hc = d } }
func WithUserAgent(ua string) Option     { return func(c *Client) { c.ua = ua } }
func WithTimeout(d time.Duration) Option { return func(c *Client) { c.timeout = d } }
func WithSandbox(on bool) Option         { return func(c *Client) { c.sandbox = on } }
func WithHeader(k, v string) Option      { return func(c *Client) { c.headerExtra.Add(k, v) } }

// WithBaseURL overrides the sandbox/production endpoint selection (test servers, proxies).
func WithBaseURL(u string) Option { return func(c *Client) { c.baseURL = u } }

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l.With("provider", "getbd")
		}
	}
}

// WithRecorder installs the sink that receives every request/response pair.
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		if r != nil {
			c.recorder = r
		}
	}
}

func WithMetrics(m *Metrics) Option { return func(c *Client) { c.metrics = m } }
