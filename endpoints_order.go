package getbd

import (
	"context"
	"net/http"
	"net/url"
)

// PendingDocumentsMessage is the provider's answer when an order is processed
// before its documents were approved. Approval happens out of band, so this
// answer still counts as a successful registration.
//
// The match is on the literal wording; the provider exposes no error code for it.
const PendingDocumentsMessage = "Order must have at least 2 APPROVED documents before processing. Currently 0 approved. Please review and approve documents first."

const (
	outcomeProcessed        = "processed"
	outcomePendingDocuments = "pending_documents"
	outcomeFailed           = "failed"
)

// CreateOrder submits a registration order and returns the raw provider answer.
func (c *Client) CreateOrder(ctx context.Context, req OrderRequest) (*APIResponse, error) {
	req.NameServers = limitNameservers(req.NameServers)
	return c.execute(ctx, http.MethodPost, "/orders", reqOptions{json: req})
}

// ProcessOrder asks the provider to finalize an order and returns the raw answer.
func (c *Client) ProcessOrder(ctx context.Context, orderID string) (*APIResponse, error) {
	return c.execute(ctx, http.MethodPost, "/orders/"+url.PathEscape(orderID)+"/process", reqOptions{
		route: "/orders/{id}/process",
	})
}

// RegisterDomain runs the two-call registration: create the order, then process it.
// Processing is never attempted when creation did not yield an order id.
func (c *Client) RegisterDomain(ctx context.Context, req OrderRequest) error {
	const op = "register domain"
	log := c.logger.With("domain", req.DomainName)

	created, err := c.CreateOrder(ctx, req)
	if err != nil {
		c.metrics.observeRegistration(outcomeFailed)
		return err
	}
	var order OrderResult
	if created.Success && created.HasData() {
		if err := decodeData(op, created, &order, "order"); err != nil {
			c.metrics.observeRegistration(outcomeFailed)
			return err
		}
	}
	if !created.Success || order.ID == "" {
		c.metrics.observeRegistration(outcomeFailed)
		log.WarnContext(ctx, "Get BD order creation rejected", "status_code", created.StatusCode, "message", created.Message)
		return registrationError(op, created.Message, "Order creation failed")
	}
	log = log.With("order_id", order.ID.String())

	processed, err := c.ProcessOrder(ctx, order.ID.String())
	if err != nil {
		c.metrics.observeRegistration(outcomeFailed)
		return err
	}
	switch {
	case processed.Success:
		c.metrics.observeRegistration(outcomeProcessed)
		log.InfoContext(ctx, "Get BD order processed")
		return nil
	case processed.Message == PendingDocumentsMessage:
		c.metrics.observeRegistration(outcomePendingDocuments)
		log.InfoContext(ctx, "Get BD order awaiting document approval")
		return nil
	}
	c.metrics.observeRegistration(outcomeFailed)
	log.WarnContext(ctx, "Get BD order processing rejected", "status_code", processed.StatusCode, "message", processed.Message)
	return registrationError(op, processed.Message, "Order processing failed")
}

func registrationError(op, msg, fallback string) *Error {
	if msg == "" {
		msg = fallback
	}
	return newError(KindRegistration, op, msg, nil)
}
