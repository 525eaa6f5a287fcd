package getbd

import (
	"context"
	"encoding/json"
	"net/http"
)

// ValidateAPIKey probes the API root. Only a 401 means the key is rejected;
// any other status is accepted.
func (c *Client) ValidateAPIKey(ctx context.Context) error {
	resp, err := c.execute(ctx, http.MethodGet, "", reqOptions{route: "/"})
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return newError(KindAuth, "validate api key", "API Key is invalid", nil)
	}
	return nil
}

// CreateCustomer registers a customer record and returns the provider's data member.
func (c *Client) CreateCustomer(ctx context.Context, cust Customer) (json.RawMessage, error) {
	resp, err := c.execute(ctx, http.MethodPost, "/customers", reqOptions{json: cust})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, providerError("create customer", resp, "Customer creation failed")
	}
	return resp.Data, nil
}

// UploadDocument sends registrant documents as multipart/form-data.
func (c *Client) UploadDocument(ctx context.Context, body *Multipart) (json.RawMessage, error) {
	resp, err := c.execute(ctx, http.MethodPost, "/documents/upload", reqOptions{multipart: body})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, providerError("upload document", resp, "Document upload failed")
	}
	return resp.Data, nil
}
