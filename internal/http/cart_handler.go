package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/nouvalryhn/reboxed-web/internal/catalog"
	"github.com/nouvalryhn/reboxed-web/internal/store"
)

type CartHandler struct {
	store   *store.Store
	catalog catalog.Repository
}

func NewCartHandler(st *store.Store, cat catalog.Repository) *CartHandler {
	return &CartHandler{store: st, catalog: cat}
}

type cartView struct {
	Items      []store.CartLine `json:"items"`
	ItemCount  int              `json:"itemCount"`
	Total      int64            `json:"totalAmount"`
	Selected   []string         `json:"selected"`
	SelectedTt int64            `json:"selectedTotal"`
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:      h.store.CartLines(),
		ItemCount:  h.store.CartItemCount(),
		Total:      h.store.CartTotal(),
		Selected:   h.store.SelectedIDs(),
		SelectedTt: h.store.SelectedTotal(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.view())
}

// AddItem looks the product up in the catalog and merges it into the
// cart (one unit per call, like tapping "add to cart").
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ProductID == "" {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.catalog.Get(ctx, body.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	h.store.AddToCart(p)
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Quantity == nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	h.store.UpdateQuantity(productID, *body.Quantity)
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.store.RemoveFromCart(chi.URLParam(r, "productId"))
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.ClearCart()
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) ToggleSelect(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleSelect(chi.URLParam(r, "productId"))
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) SelectAll(w http.ResponseWriter, r *http.Request) {
	h.store.SelectAll()
	writeJSON(w, http.StatusOK, h.view())
}

func (h *CartHandler) DeselectAll(w http.ResponseWriter, r *http.Request) {
	h.store.DeselectAll()
	writeJSON(w, http.StatusOK, h.view())
}

type wishlistView struct {
	ProductIDs []string `json:"productIds"`
	Count      int      `json:"count"`
}

func (h *CartHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	ids := h.store.WishlistIDs()
	writeJSON(w, http.StatusOK, wishlistView{ProductIDs: ids, Count: len(ids)})
}

func (h *CartHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	h.store.ToggleWishlist(productID)

	writeJSON(w, http.StatusOK, map[string]any{
		"productId":  productID,
		"inWishlist": h.store.InWishlist(productID),
	})
}
