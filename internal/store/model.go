package store

import (
	"github.com/nouvalryhn/reboxed-web/internal/catalog"
	"github.com/nouvalryhn/reboxed-web/internal/order"
)

// CartLine is one product/quantity pairing in the cart. Quantity is
// always strictly positive; a mutation driving it to zero removes the
// line instead.
type CartLine struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.Product.Price * int64(l.Quantity)
}

// Snapshot is the aggregate's persisted state, one field per slot.
type Snapshot struct {
	Lines    []CartLine
	Selected []string
	Wishlist []string
	Orders   []order.Order
}
