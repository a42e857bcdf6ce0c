// Package inpayments wraps the gateway's request-to-pay collection
// resource: submit a collection request against a payer, then poll its
// status by reference id.
package inpayments

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rileydigitalservices/payhere-go/config"
	"github.com/rileydigitalservices/payhere-go/domain"
	"github.com/rileydigitalservices/payhere-go/internal/rest"
)

const resourcePath = "/inpayments"

// Client issues request-to-pay collections. Calls are independent; the SDK
// keeps no transaction registry, so concurrent use is safe and polling
// cadence is the caller's policy.
type Client struct {
	rest   *rest.Client
	logger *zap.Logger
}

func New(cfg config.Resolved, httpClient *http.Client, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{rest: rest.New(cfg, httpClient, logger), logger: logger}
}

// RequestToPay validates req, generates a fresh reference id and posts the
// collection request. It resolves with the locally generated id regardless
// of the response body content; the gateway does not echo the id back, so
// callers must not assume server-side uniqueness guarantees on it. The raw
// response rides along on the result for callers that want it.
func (c *Client) RequestToPay(ctx context.Context, req domain.PaymentRequest) (*domain.RequestResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	referenceID := uuid.New().String()

	c.logger.Info("requesting payment",
		zap.String("reference_id", referenceID),
		zap.String("processing_number", req.ProcessingNumber))

	resp, err := c.rest.PostJSON(ctx, resourcePath, req)
	if err != nil {
		return nil, err
	}

	return &domain.RequestResult{
		ReferenceID: referenceID,
		StatusCode:  resp.StatusCode,
		Body:        resp.Body,
	}, nil
}

// GetTransaction fetches the current state of a collection by reference id.
// A FAILED record comes back as *domain.TransactionError selected by the
// gateway's reason code; every other status, PENDING and values the SDK
// does not recognize included, returns the record unchanged for the caller
// to keep polling on.
func (c *Client) GetTransaction(ctx context.Context, referenceID string) (*domain.Payment, error) {
	var payment domain.Payment
	if _, err := c.rest.GetJSON(ctx, resourcePath+"/"+referenceID, &payment); err != nil {
		return nil, err
	}

	if payment.Status == domain.StatusFailed {
		c.logger.Info("payment failed",
			zap.String("reference_id", referenceID),
			zap.String("reason", string(payment.Reason)))
		return nil, domain.NewTransactionError(referenceID, payment.Reason)
	}

	return &payment, nil
}
