// Package outpayments wraps the gateway's outbound transfer resource:
// submit a payout toward a payee, then poll its status by reference id.
package outpayments

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rileydigitalservices/payhere-go/config"
	"github.com/rileydigitalservices/payhere-go/domain"
	"github.com/rileydigitalservices/payhere-go/internal/rest"
)

const resourcePath = "/outpayments"

// Client issues outbound transfers. Calls are independent; the SDK keeps no
// transaction registry, so concurrent use is safe.
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

// Transfer validates req, generates a fresh reference id and posts the
// transfer. The id is generated locally and never reconciled against the
// server; the raw response rides along on the result.
func (c *Client) Transfer(ctx context.Context, req domain.TransferRequest) (*domain.RequestResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	referenceID := uuid.New().String()

	c.logger.Info("requesting transfer",
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

// GetTransaction fetches the current state of a transfer by reference id,
// with the same FAILED-to-error mapping as the inpayments resource.
func (c *Client) GetTransaction(ctx context.Context, referenceID string) (*domain.Transfer, error) {
	var transfer domain.Transfer
	if _, err := c.rest.GetJSON(ctx, resourcePath+"/"+referenceID, &transfer); err != nil {
		return nil, err
	}

	if transfer.Status == domain.StatusFailed {
		c.logger.Info("transfer failed",
			zap.String("reference_id", referenceID),
			zap.String("reason", string(transfer.Reason)))
		return nil, domain.NewTransactionError(referenceID, transfer.Reason)
	}

	return &transfer, nil
}
