package getbd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

const (
	msgEmptyResponse   = "Empty API response"
	msgInvalidResponse = "Invalid JSON response"
)

type reqOptions struct {
	query     url.Values
	json      any
	multipart *Multipart
	route     string // metrics label; path with ids replaced
}

// Multipart is a multipart/form-data body.
type Multipart struct {
	Fields map[string]string
	Files  []MultipartFile
}

// MultipartFile is one file part.
type MultipartFile struct {
	Field    string
	Filename string
	Content  io.Reader
}

// execute performs one authenticated call. A nil error means a response came
// back; whether it succeeded is in the returned APIResponse.
func (c *Client) execute(ctx context.Context, method, path string, o reqOptions) (*APIResponse, error) {
	u := c.baseURL + path
	if len(o.query) > 0 {
		u += "?" + o.query.Encode()
	}
	route := o.route
	if route == "" {
		route = path
	}

	body, contentType, err := encodeBody(o)
	if err != nil {
		return nil, newError(KindTransport, method+" "+route, "encode request body", err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, method, u, body)
	if err != nil {
		return nil, newError(KindTransport, method+" "+route, "build request", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.ua)
	req.Header.Set("X-Request-ID", reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	copyHeaders(req.Header, c.headerExtra)

	summary := RequestSummary{ID: reqID, Method: method, URL: u, Route: route}
	start := time.Now()

	resp, err := c.hc.Do(req)
	if err != nil {
		elapsed := time.Since(start)
		c.recorder.Record(ctx, summary, ResponseSummary{Err: err, Duration: elapsed})
		c.metrics.observeRequest(method, route, "transport_error", elapsed)
		c.logger.WarnContext(ctx, "Get BD request failed", "method", method, "route", route, "request_id", reqID, "error", err)
		msg := "request failed"
		if isTimeout(err) {
			msg = "request timed out"
		}
		return nil, newError(KindTransport, method+" "+route, msg, err)
	}
	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	resp.Body.Close()
	elapsed := time.Since(start)

	c.recorder.Record(ctx, summary, ResponseSummary{StatusCode: resp.StatusCode, Body: raw, Err: readErr, Duration: elapsed})
	if readErr != nil {
		c.metrics.observeRequest(method, route, "transport_error", elapsed)
		return nil, newError(KindTransport, method+" "+route, "read response body", readErr)
	}

	out, ok := parseEnvelope(raw, resp.StatusCode)
	switch {
	case len(bytes.TrimSpace(raw)) == 0:
		out = &APIResponse{Message: msgEmptyResponse, StatusCode: resp.StatusCode, synthetic: true}
	case !ok:
		out = &APIResponse{Message: msgInvalidResponse, StatusCode: resp.StatusCode, synthetic: true}
	}

	outcome := "failure"
	if out.Success {
		outcome = "success"
	}
	c.metrics.observeRequest(method, route, outcome, elapsed)
	c.logger.DebugContext(ctx, "Get BD response", "method", method, "route", route, "request_id", reqID,
		"status_code", resp.StatusCode, "success", out.Success, "duration", elapsed)
	return out, nil
}

func encodeBody(o reqOptions) (io.Reader, string, error) {
	switch {
	case o.json != nil && o.multipart != nil:
		return nil, "", errors.New("json and multipart bodies are mutually exclusive")
	case o.json != nil:
		b, err := json.Marshal(o.json)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(b), "application/json", nil
	case o.multipart != nil:
		return encodeMultipart(o.multipart)
	}
	return nil, "", nil
}

func encodeMultipart(m *Multipart) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, k := range sortedKeys(m.Fields) {
		if err := w.WriteField(k, m.Fields[k]); err != nil {
			return nil, "", err
		}
	}
	for _, f := range m.Files {
		if f.Content == nil {
			return nil, "", fmt.Errorf("multipart file %q has no content", f.Field)
		}
		part, err := w.CreateFormFile(f.Field, f.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
