package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/nouvalryhn/reboxed-web/internal/identity"
	"github.com/nouvalryhn/reboxed-web/internal/store"
)

type ProfileHandler struct {
	store *store.Store
}

func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, ok := h.store.User()
	if !ok {
		writeError(w, http.StatusNotFound, "not signed in")
		return
	}

	addr, ok := h.store.ShippingAddress()
	if !ok {
		addr = u.Address
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":            u,
		"shippingAddress": addr,
		"orderCount":      len(h.store.Orders()),
		"wishlistCount":   len(h.store.WishlistIDs()),
	})
}

// SetAddress replaces the shipping address used at checkout. Fields are
// plain strings; the only check is that none of them is empty.
func (h *ProfileHandler) SetAddress(w http.ResponseWriter, r *http.Request) {
	var addr identity.Address
	if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if addr.Street == "" || addr.City == "" || addr.Province == "" || addr.PostalCode == "" || addr.Country == "" {
		writeError(w, http.StatusBadRequest, "all address fields are required")
		return
	}

	h.store.SetShippingAddress(addr)
	writeJSON(w, http.StatusOK, addr)
}
