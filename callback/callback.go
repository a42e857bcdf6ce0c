// Package callback receives gateway status callbacks: the push counterpart
// to polling GetTransaction. The gateway signs each delivery with
// HMAC-SHA256 over "<body>.<timestamp>" and sends the signature and
// timestamp in headers; this package verifies, decodes, and hands verified
// notifications to the integrator. Nothing is persisted or retried.
package callback

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/rileydigitalservices/payhere-go/domain"
)

const (
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
)

// ErrBadSignature is returned when a delivery's signature does not match
// the shared webhook secret.
var ErrBadSignature = errors.New("callback signature mismatch")

// Notification is a status update pushed by the gateway. It mirrors the
// transaction record plus the reference id and delivery timestamp.
type Notification struct {
	ReferenceID      string        `json:"referenceId"`
	ProcessingNumber string        `json:"processingNumber"`
	Amount           string        `json:"amount"`
	MSISDN           string        `json:"msisdn"`
	Narration        string        `json:"narration,omitempty"`
	Status           domain.Status `json:"status"`
	Reason           domain.Reason `json:"reason,omitempty"`
	Timestamp        int64         `json:"timestamp"`
}

// Verifier checks delivery signatures against the shared webhook secret.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

// Verify recomputes the HMAC-SHA256 signature over "<body>.<timestamp>" and
// compares it to the delivered hex signature in constant time.
func (v *Verifier) Verify(body []byte, timestamp, signature string) error {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	mac.Write([]byte("." + timestamp))
	want := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(want), []byte(signature)) {
		return ErrBadSignature
	}
	return nil
}

// Sign computes the delivery signature for a body and timestamp. The
// gateway's side of the handshake; exported for tests and sandboxes that
// stand in for it.
func (v *Verifier) Sign(body []byte, timestamp string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(body)
	mac.Write([]byte("." + timestamp))
	return hex.EncodeToString(mac.Sum(nil))
}

type ack struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Handler returns an http.Handler accepting POSTed status callbacks:
// verify, decode, acknowledge immediately, then hand the notification to fn
// on a detached context (the gateway expects a prompt 200; fn outliving the
// request must not be cut off by its cancellation). Failed verification is
// a 401, a malformed payload a 400.
func Handler(secret string, fn func(context.Context, *Notification), logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	verifier := NewVerifier(secret)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			logger.Error("failed to read callback payload", zap.Error(err))
			writeAck(w, http.StatusBadRequest, ack{Status: "error", Message: "failed to read payload"})
			return
		}

		timestamp := req.Header.Get(HeaderTimestamp)
		signature := req.Header.Get(HeaderSignature)
		if err := verifier.Verify(body, timestamp, signature); err != nil {
			logger.Error("callback signature rejected",
				zap.String("remote_addr", req.RemoteAddr))
			writeAck(w, http.StatusUnauthorized, ack{Status: "error", Message: "signature mismatch"})
			return
		}

		var n Notification
		if err := json.Unmarshal(body, &n); err != nil {
			logger.Error("malformed callback payload", zap.Error(err))
			writeAck(w, http.StatusBadRequest, ack{Status: "error", Message: "malformed payload"})
			return
		}

		logger.Info("gateway callback received",
			zap.String("reference_id", n.ReferenceID),
			zap.String("status", string(n.Status)))

		writeAck(w, http.StatusOK, ack{Status: "success"})

		go fn(context.WithoutCancel(req.Context()), &n)
	})

	return r
}

func writeAck(w http.ResponseWriter, code int, a ack) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(a)
}
