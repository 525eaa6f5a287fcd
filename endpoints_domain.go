package getbd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// providerError builds the KindProvider error for a success=false answer.
func providerError(op string, resp *APIResponse, fallback string) *Error {
	msg := resp.Message
	if msg == "" {
		msg = fallback
	}
	return newError(KindProvider, op, msg, nil)
}

// SearchDomain checks availability of one fully qualified name.
//
// Any failed answer, including an empty or non-JSON body and a 5xx status, is
// reported as not available. Only a malformed data member is an error.
func (c *Client) SearchDomain(ctx context.Context, domain string) (*SearchResult, error) {
	const op = "search domain"
	resp, err := c.execute(ctx, http.MethodGet, "/domains/search", reqOptions{
		query: url.Values{"domain": {domain}},
	})
	if err != nil {
		return nil, err
	}
	out := &SearchResult{Domain: domain}
	if !resp.Success || !resp.HasData() {
		return out, nil
	}
	if err := decodeData(op, resp, out, "search result"); err != nil {
		return nil, err
	}
	return out, nil
}

// DomainInfo fetches the provider's domain and customer record.
func (c *Client) DomainInfo(ctx context.Context, domain string) (*DomainInfoRecord, error) {
	const op = "domain info"
	resp, err := c.execute(ctx, http.MethodGet, "/domains/info", reqOptions{
		query: url.Values{"domain": {domain}},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success || !resp.HasData() {
		return nil, newError(KindProvider, op, msgNoDomainInfo, providerError(op, resp, "no data"))
	}
	var rec DomainInfoRecord
	if err := decodeData(op, resp, &rec, "domain info"); err != nil {
		return nil, err
	}
	return &rec, nil
}

const msgNoDomainInfo = "Unable to retrieve domain information"

// RenewDomain extends a registration by years.
func (c *Client) RenewDomain(ctx context.Context, domain string, years int) error {
	resp, err := c.execute(ctx, http.MethodPost, "/domains/renew", reqOptions{
		json: map[string]any{"domain": domain, "years": years},
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return providerError("renew domain", resp, "Domain renewal failed")
	}
	return nil
}

// UpdateNameservers replaces the delegation. At most three nameservers are sent.
func (c *Client) UpdateNameservers(ctx context.Context, domain string, nameservers []string) error {
	resp, err := c.execute(ctx, http.MethodPut, "/domains/update", reqOptions{
		json: map[string]any{"domain": domain, "nameServers": limitNameservers(nameservers)},
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		return providerError("update nameservers", resp, "Nameserver update failed")
	}
	return nil
}

// DomainRate returns the provider's price quote for domain over years.
func (c *Client) DomainRate(ctx context.Context, domain string, years int) (DomainRate, error) {
	const op = "domain rate"
	resp, err := c.execute(ctx, http.MethodGet, "/domains/rate", reqOptions{
		query: url.Values{"domain": {domain}, "year": {strconv.Itoa(years)}},
	})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, providerError(op, resp, "Rate lookup failed")
	}
	var rate DomainRate
	if err := decodeData(op, resp, &rate, "domain rate"); err != nil {
		return nil, err
	}
	return rate, nil
}

// ListDomains returns the raw domain listing; params are passed through as query.
func (c *Client) ListDomains(ctx context.Context, params url.Values) (json.RawMessage, error) {
	resp, err := c.execute(ctx, http.MethodGet, "/domains", reqOptions{query: params})
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, providerError("list domains", resp, "Domain listing failed")
	}
	return resp.Data, nil
}
