package getbd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// RequestSummary identifies one outbound call. Headers are never included, so
// the API key does not reach the sink.
type RequestSummary struct {
	ID     string
	Method string
	URL    string
	Route  string
}

// ResponseSummary is what came back. Body is nil when the call failed at transport level.
type ResponseSummary struct {
	StatusCode int
	Body       []byte
	Err        error
	Duration   time.Duration
}

// Recorder receives every request/response pair after the call completed. It
// has no influence on the call's outcome.
type Recorder interface {
	Record(ctx context.Context, req RequestSummary, resp ResponseSummary)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(ctx context.Context, req RequestSummary, resp ResponseSummary)

func (f RecorderFunc) Record(ctx context.Context, req RequestSummary, resp ResponseSummary) {
	f(ctx, req, resp)
}

// NopRecorder drops everything.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, RequestSummary, ResponseSummary) {}

// WriterRecorder appends a plain-text block per call to w:
//
//	URL: <url>
//	STATUS: <code>
//	RESPONSE:
//	<body>
type WriterRecorder struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriterRecorder(w io.Writer) *WriterRecorder { return &WriterRecorder{w: w} }

func (r *WriterRecorder) Record(_ context.Context, req RequestSummary, resp ResponseSummary) {
	r.mu.Lock()
	defer r.mu.Unlock()
	body := string(resp.Body)
	if resp.Err != nil {
		body = "ERROR: " + resp.Err.Error()
	}
	// Write errors are ignored; the sink must never affect the call.
	_, _ = fmt.Fprintf(r.w, "URL: %s\nSTATUS: %d\nRESPONSE:\n%s\n\n", req.URL, resp.StatusCode, body)
}

// FileRecorder is a WriterRecorder over an append-only file.
type FileRecorder struct {
	*WriterRecorder
	f *os.File
}

// OpenFileRecorder opens (or creates) path in append mode.
func OpenFileRecorder(path string) (*FileRecorder, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open raw log %s: %w", path, err)
	}
	return &FileRecorder{WriterRecorder: NewWriterRecorder(f), f: f}, nil
}

func (r *FileRecorder) Close() error { return r.f.Close() }

// SlogRecorder logs each pair at debug level.
type SlogRecorder struct{ Logger *slog.Logger }

func (r SlogRecorder) Record(ctx context.Context, req RequestSummary, resp ResponseSummary) {
	if r.Logger == nil {
		return
	}
	attrs := []any{
		"request_id", req.ID,
		"method", req.Method,
		"url", req.URL,
		"status_code", resp.StatusCode,
		"duration", resp.Duration,
	}
	if resp.Err != nil {
		attrs = append(attrs, "error", resp.Err)
	} else {
		attrs = append(attrs, "body", truncate(string(resp.Body), 512))
	}
	r.Logger.DebugContext(ctx, "getbd raw exchange", attrs...)
}

// MultiRecorder fans out to several sinks in order.
type MultiRecorder []Recorder

func (m MultiRecorder) Record(ctx context.Context, req RequestSummary, resp ResponseSummary) {
	for _, r := range m {
		if r != nil {
			r.Record(ctx, req, resp)
		}
	}
}
