package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nouvalryhn/reboxed-web/internal/store"
	"github.com/nouvalryhn/reboxed-web/internal/tracking"
)

type OrderHandler struct {
	store *store.Store
}

func NewOrderHandler(st *store.Store) *OrderHandler {
	return &OrderHandler{store: st}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders := h.store.Orders()
	writeJSON(w, http.StatusOK, map[string]any{
		"orders": orders,
		"count":  len(orders),
	})
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	o, ok := h.store.OrderByID(orderID)
	if !ok {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"order":          o,
		"trackingNumber": tracking.Number(o.ID),
		"timeline":       tracking.Timeline(o),
	})
}
