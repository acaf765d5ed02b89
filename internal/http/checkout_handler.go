package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nouvalryhn/reboxed-web/internal/checkout"
	"github.com/nouvalryhn/reboxed-web/internal/payment"
	"github.com/nouvalryhn/reboxed-web/internal/tracking"
)

type CheckoutHandler struct {
	svc *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Quote()
	if err != nil {
		if errors.Is(err, checkout.ErrNothingSelected) {
			writeError(w, http.StatusUnprocessableEntity, "no items selected for checkout")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to quote")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *CheckoutHandler) Methods(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"methods": payment.Methods()})
}

func (h *CheckoutHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PaymentMethod == "" {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	o, err := h.svc.Pay(r.Context(), body.PaymentMethod)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrNothingSelected):
			writeError(w, http.StatusUnprocessableEntity, "no items selected for checkout")
		case errors.Is(err, checkout.ErrPaymentInFlight):
			writeError(w, http.StatusConflict, "a payment is already being processed")
		case errors.Is(err, payment.ErrUnknownMethod):
			writeError(w, http.StatusBadRequest, "unknown payment method")
		case errors.Is(err, checkout.ErrPaymentDeclined):
			writeError(w, http.StatusPaymentRequired, "payment was not approved")
		default:
			writeError(w, http.StatusInternalServerError, "payment failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"order":          o,
		"trackingNumber": tracking.Number(o.ID),
	})
}
