// Package checkout turns the current checkout selection into a paid
// order: quoting, charging the payment processor, and recording the
// order before the paid lines leave the cart.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/nouvalryhn/reboxed-web/internal/identity"
	"github.com/nouvalryhn/reboxed-web/internal/order"
	"github.com/nouvalryhn/reboxed-web/internal/payment"
	"github.com/nouvalryhn/reboxed-web/internal/store"
)

const (
	// Flat shipping fee, waived above the free-shipping threshold.
	ShippingFee           int64 = 15000
	FreeShippingThreshold int64 = 500000
)

var (
	// ErrNothingSelected means the selection is empty; there is nothing
	// to quote or pay for.
	ErrNothingSelected = errors.New("no items selected for checkout")
	// ErrPaymentInFlight rejects a second payment while one is being
	// processed.
	ErrPaymentInFlight = errors.New("a payment is already being processed")
	// ErrPaymentDeclined is returned when the processor does not
	// resolve the charge as succeeded.
	ErrPaymentDeclined = errors.New("payment was not approved")
)

type Quote struct {
	Lines    []store.CartLine `json:"lines"`
	Subtotal int64            `json:"subtotal"`
	Shipping int64            `json:"shipping"`
	Total    int64            `json:"total"`
}

type Service struct {
	store     *store.Store
	processor payment.Processor
	log       *zap.SugaredLogger

	mu       sync.Mutex
	inFlight bool
}

func NewService(st *store.Store, processor payment.Processor, log *zap.SugaredLogger) *Service {
	return &Service{store: st, processor: processor, log: log}
}

// Quote prices the current selection.
func (s *Service) Quote() (Quote, error) {
	lines := s.store.SelectedLines()
	if len(lines) == 0 {
		return Quote{}, ErrNothingSelected
	}

	subtotal := s.store.SelectedTotal()
	shipping := ShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	return Quote{
		Lines:    lines,
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal + shipping,
	}, nil
}

// Pay charges the processor for the quoted total and, on success,
// records the order and removes the paid lines from the cart — in that
// order, so a paid order can never be lost to a failed cleanup step.
// At most one payment runs at a time; a declined or failed charge
// records nothing and leaves the cart untouched.
func (s *Service) Pay(ctx context.Context, method string) (order.Order, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return order.Order{}, ErrPaymentInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	q, err := s.Quote()
	if err != nil {
		return order.Order{}, err
	}

	res, err := s.processor.Charge(ctx, method, q.Total)
	if err != nil {
		return order.Order{}, fmt.Errorf("charge %s: %w", method, err)
	}
	if res.Status != payment.StatusSucceeded {
		s.log.Warnw("payment not approved", "method", method, "status", res.Status)
		return order.Order{}, ErrPaymentDeclined
	}

	o := s.buildOrder(q, method)
	s.store.AddOrder(o)
	s.store.RemoveSelected()

	s.log.Infow("order placed",
		"orderId", o.ID, "total", o.Total, "items", o.ItemCount(), "reference", res.Reference)
	return o, nil
}

func (s *Service) buildOrder(q Quote, method string) order.Order {
	now := time.Now().UTC()

	items := make([]order.Item, 0, len(q.Lines))
	for _, l := range q.Lines {
		items = append(items, order.Item{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Image:     l.Product.Image,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		})
	}

	addr, ok := s.store.ShippingAddress()
	if !ok {
		addr = identity.DefaultAddress()
	}

	return order.Order{
		ID:              "ORD-" + strconv.FormatInt(now.UnixMilli(), 10),
		Items:           items,
		Total:           q.Total,
		Status:          order.StatusPaid,
		PaymentMethod:   method,
		ShippingAddress: addr,
		CreatedAt:       now,
	}
}
