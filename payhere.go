// Package payhere is the Go client SDK for the PayHere mobile-money
// gateway. It wraps the request-to-pay collection and outbound transfer
// resources behind typed methods, runs the client-side field checks before
// any network call, and maps gateway failure payloads onto a small typed
// error hierarchy (domain.ValidationError, domain.TransactionError,
// domain.TransportError).
package payhere

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rileydigitalservices/payhere-go/config"
	"github.com/rileydigitalservices/payhere-go/inpayments"
	"github.com/rileydigitalservices/payhere-go/internal/rest"
	"github.com/rileydigitalservices/payhere-go/outpayments"
)

// Client binds the two resource clients behind one validated configuration.
// Every call is independent; the injected HTTP client is the only shared
// resource, so the client is safe for concurrent use. The SDK performs no
// retries, ordering, or deduplication between calls.
type Client struct {
	Inpayments  *inpayments.Client
	Outpayments *outpayments.Client

	cfg config.Resolved
}

// New resolves and validates the configuration once, then binds the
// resource clients to it. A nil httpClient installs a default with a 30s
// timeout; a nil logger keeps the SDK silent. Configuration errors are
// *domain.ValidationError values.
func New(global config.GlobalConfig, user config.UserConfig, httpClient *http.Client, logger *zap.Logger) (*Client, error) {
	resolved, err := config.Resolve(global, user)
	if err != nil {
		return nil, err
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: rest.DefaultTimeout}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		Inpayments:  inpayments.New(resolved, httpClient, logger),
		Outpayments: outpayments.New(resolved, httpClient, logger),
		cfg:         resolved,
	}, nil
}

// Config returns the resolved connection settings the client was bound to.
func (c *Client) Config() config.Resolved {
	return c.cfg
}
