package getbd

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Settings is what the hosting platform configures for this registrar.
type Settings struct {
	APIKey    string               `json:"api_key" yaml:"api_key" mapstructure:"api_key"`
	Sandbox   bool                 `json:"sandbox_mode" yaml:"sandbox_mode" mapstructure:"sandbox_mode"`
	DocFields DocumentRequirements `json:"doc_fields" yaml:"doc_fields" mapstructure:"doc_fields"`
}

const (
	partnerPanelURL        = "https://partner.get.bd"
	sandboxPartnerPanelURL = "https://sandbox.get.bd"

	msgTransferUnsupported = "Domain transfer is not supported via Get BD. Please process transfers manually."
)

// Availability is the search outcome for one TLD.
type Availability string

const (
	Available   Availability = "available"
	Unavailable Availability = "unavailable"
	SearchError Availability = "error"
)

// TLDAvailability pairs a TLD with its search outcome.
type TLDAvailability struct {
	TLD    string       `json:"tld"`
	Status Availability `json:"status"`
}

// SearchResults keeps the caller's TLD order.
type SearchResults []TLDAvailability

// Map returns the results keyed by TLD.
func (r SearchResults) Map() map[string]Availability {
	out := make(map[string]Availability, len(r))
	for _, a := range r {
		out[a.TLD] = a.Status
	}
	return out
}

// RegisterRequest carries the platform's registration parameters.
type RegisterRequest struct {
	SLD         string
	TLD         string
	Years       int
	Nameservers []string
	Registrant  RegistrantContact
	Documents   Documents
}

// Registrar exposes the lifecycle operations a hosting platform calls. A fresh
// Client is built from Settings for every operation; nothing is shared between calls.
type Registrar struct {
	settings          Settings
	clientOpts        []Option
	searchConcurrency int
}

// RegistrarOption configures a Registrar.
type RegistrarOption func(*Registrar)

// WithClientOptions passes opts to every Client the Registrar builds.
func WithClientOptions(opts ...Option) RegistrarOption {
	return func(r *Registrar) { r.clientOpts = append(r.clientOpts, opts...) }
}

// WithSearchConcurrency bounds the availability fan-out; 1 (default) is sequential.
func WithSearchConcurrency(n int) RegistrarOption {
	return func(r *Registrar) {
		if n > 0 {
			r.searchConcurrency = n
		}
	}
}

func NewRegistrar(s Settings, opts ...RegistrarOption) *Registrar {
	r := &Registrar{settings: s, searchConcurrency: 1}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registrar) client() (*Client, error) {
	opts := append([]Option{WithSandbox(r.settings.Sandbox)}, r.clientOpts...)
	return New(r.settings.APIKey, opts...)
}

// TestConnection checks that the configured API key is accepted.
func (r *Registrar) TestConnection(ctx context.Context) error {
	c, err := r.client()
	if err != nil {
		return err
	}
	return c.ValidateAPIKey(ctx)
}

// CheckAvailability searches sld under each TLD. A failing TLD is reported as
// SearchError and never affects the others; the result keeps the order of tlds.
func (r *Registrar) CheckAvailability(ctx context.Context, sld string, tlds []string) SearchResults {
	out := make(SearchResults, len(tlds))
	for i, tld := range tlds {
		out[i] = TLDAvailability{TLD: tld, Status: SearchError}
	}
	c, err := r.client()
	if err != nil {
		return out
	}

	var g errgroup.Group
	g.SetLimit(r.searchConcurrency)
	for i, tld := range tlds {
		g.Go(func() error {
			out[i].Status = c.availability(ctx, sld, tld)
			return nil
		})
	}
	_ = g.Wait() // per-TLD failures are recorded in out
	return out
}

func (c *Client) availability(ctx context.Context, sld, tld string) (status Availability) {
	defer func() {
		if p := recover(); p != nil {
			c.logger.ErrorContext(ctx, "Get BD search panicked", "tld", tld, "panic", fmt.Sprint(p))
			status = SearchError
		}
	}()
	domain, err := DomainName(sld, tld)
	if err != nil {
		return SearchError
	}
	res, err := c.SearchDomain(ctx, domain)
	if err != nil {
		c.logger.WarnContext(ctx, "Get BD search failed", "domain", domain, "error", err)
		return SearchError
	}
	if res.Available {
		return Available
	}
	return Unavailable
}

// Register validates the registrant and runs the order workflow. Validation
// failures return before any network call.
func (r *Registrar) Register(ctx context.Context, req RegisterRequest) error {
	domain, err := DomainName(req.SLD, req.TLD)
	if err != nil {
		return err
	}
	contact, err := NormalizePhone(req.Registrant.PhoneCountryCode, req.Registrant.Phone)
	if err != nil {
		return err
	}
	nid, err := ValidateNID(req.TLD, req.Documents, r.settings.DocFields)
	if err != nil {
		return err
	}
	c, err := r.client()
	if err != nil {
		return err
	}
	years := req.Years
	if years < 1 {
		years = 1
	}
	return c.RegisterDomain(ctx, OrderRequest{
		DomainName:     domain,
		Years:          years,
		FullName:       req.Registrant.Name,
		NID:            nid,
		Email:          req.Registrant.Email,
		ContactAddress: FormatAddress(req.Registrant),
		ContactNumber:  contact,
		NameServers:    limitNameservers(req.Nameservers),
	})
}

// Renew extends domain by years.
func (r *Registrar) Renew(ctx context.Context, domain string, years int) error {
	name, err := ASCIIDomain(domain)
	if err != nil {
		return err
	}
	c, err := r.client()
	if err != nil {
		return err
	}
	return c.RenewDomain(ctx, name, years)
}

// Transfer is not offered by the provider and always fails without a network call.
func (r *Registrar) Transfer(context.Context, string) error {
	return newError(KindUnsupported, "transfer", msgTransferUnsupported, nil)
}

// UpdateNameservers sets up to three nameservers on domain.
func (r *Registrar) UpdateNameservers(ctx context.Context, domain string, nameservers []string) error {
	name, err := ASCIIDomain(domain)
	if err != nil {
		return err
	}
	c, err := r.client()
	if err != nil {
		return err
	}
	return c.UpdateNameservers(ctx, name, nameservers)
}

// GetInfo returns the whois view of domain.
func (r *Registrar) GetInfo(ctx context.Context, domain string) (*WhoisInfo, error) {
	rec, err := r.domainInfo(ctx, domain)
	if err != nil {
		return nil, err
	}
	info := MapToWhois(*rec)
	return &info, nil
}

// Sync returns dates and active/expired state of domain.
func (r *Registrar) Sync(ctx context.Context, domain string) (*SyncStatus, error) {
	rec, err := r.domainInfo(ctx, domain)
	if err != nil {
		return nil, err
	}
	st := MapToSyncStatus(*rec)
	return &st, nil
}

// OrderURL links to the domain's order in the partner panel.
func (r *Registrar) OrderURL(ctx context.Context, domain string) (string, error) {
	rec, err := r.domainInfo(ctx, domain)
	if err != nil {
		return "", err
	}
	if rec.LocalDomain == nil || rec.LocalDomain.OrderID == "" {
		return "", newError(KindProvider, "order url", "Order ID not found.", nil)
	}
	base := partnerPanelURL
	if r.settings.Sandbox {
		base = sandboxPartnerPanelURL
	}
	return base + "/orders/" + rec.LocalDomain.OrderID.String(), nil
}

func (r *Registrar) domainInfo(ctx context.Context, domain string) (*DomainInfoRecord, error) {
	name, err := ASCIIDomain(domain)
	if err != nil {
		return nil, err
	}
	c, err := r.client()
	if err != nil {
		return nil, err
	}
	rec, err := c.DomainInfo(ctx, name)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Kind == KindDecode {
			return nil, newError(KindDecode, "domain info", msgNoDomainInfo, err)
		}
		return nil, err
	}
	return rec, nil
}
