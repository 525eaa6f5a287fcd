package getbd

import (
	"bytes"
	"encoding/json"
	"errors"
)

// envelope is the raw top-level shape; message stays raw because its type varies.
type envelope struct {
	Success FlexBool        `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
	Error   json.RawMessage `json:"error"`
}

// parseEnvelope decodes a response body. ok=false means the body is not a JSON object.
func parseEnvelope(body []byte, status int) (*APIResponse, bool) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, false
	}
	msg := messageText(env.Message)
	if msg == "" {
		msg = messageText(env.Error)
	}
	return &APIResponse{
		Success:    bool(env.Success),
		Data:       env.Data,
		Message:    msg,
		StatusCode: status,
	}, true
}

// decodeData decodes resp.Data into v. Missing or mismatched data is a KindDecode error.
func decodeData(op string, resp *APIResponse, v any, want string) error {
	if resp == nil || !resp.HasData() {
		return newError(KindDecode, op, "response has no data", ErrUnexpectedPayload(want))
	}
	if bytes.TrimSpace(resp.Data)[0] != '{' {
		return newError(KindDecode, op, "response data is not an object", ErrUnexpectedPayload(want))
	}
	if err := json.Unmarshal(resp.Data, v); err != nil {
		return newError(KindDecode, op, "malformed "+want, errors.Join(ErrUnexpectedPayload(want), err))
	}
	return nil
}
