// Package payment models the external payment collaborator. The real
// contract (idempotency keys, webhooks, failure codes) lives with the
// provider; the storefront only needs a charge call that reports an
// explicit result.
package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Status string

const (
	StatusSucceeded Status = "succeeded"
	StatusDeclined  Status = "declined"
	StatusPending   Status = "pending"
)

type Result struct {
	Status    Status `json:"status"`
	Reference string `json:"reference"`
}

// ErrUnknownMethod is returned for a payment method id the storefront
// does not offer.
var ErrUnknownMethod = errors.New("unknown payment method")

type Processor interface {
	Charge(ctx context.Context, method string, amount int64) (Result, error)
}

// Method is a payment option shown at checkout.
type Method struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // bank, ewallet or cod
}

// Methods lists the payment options the storefront offers.
func Methods() []Method {
	return []Method{
		{ID: "bca", Name: "BCA Virtual Account", Type: "bank"},
		{ID: "mandiri", Name: "Mandiri Virtual Account", Type: "bank"},
		{ID: "bni", Name: "BNI Virtual Account", Type: "bank"},
		{ID: "gopay", Name: "GoPay", Type: "ewallet"},
		{ID: "ovo", Name: "OVO", Type: "ewallet"},
		{ID: "dana", Name: "DANA", Type: "ewallet"},
		{ID: "cod", Name: "Cash on Delivery", Type: "cod"},
	}
}

func ValidMethod(id string) bool {
	for _, m := range Methods() {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Simulator stands in for the payment gateway. It resolves every charge
// as succeeded after a fixed processing delay, or earlier with the
// context's error if the caller gives up.
type Simulator struct {
	delay time.Duration
	log   *zap.SugaredLogger
}

// DefaultDelay matches the gateway latency the storefront simulates.
const DefaultDelay = 2500 * time.Millisecond

func NewSimulator(delay time.Duration, log *zap.SugaredLogger) *Simulator {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Simulator{delay: delay, log: log}
}

func (s *Simulator) Charge(ctx context.Context, method string, amount int64) (Result, error) {
	if !ValidMethod(method) {
		return Result{}, ErrUnknownMethod
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return Result{}, ctx.Err()
	case <-timer.C:
	}

	ref := "PAY-" + uuid.NewString()
	s.log.Infow("payment processed", "method", method, "amount", amount, "reference", ref)
	return Result{Status: StatusSucceeded, Reference: ref}, nil
}
