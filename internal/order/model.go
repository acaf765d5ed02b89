package order

import (
	"time"

	"github.com/nouvalryhn/reboxed-web/internal/identity"
)

// Item is an order line snapshot. It deliberately owns its fields
// instead of referencing a live cart line, so later cart mutations can
// never rewrite order history.
type Item struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image,omitempty"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID              string           `json:"orderId"`
	Items           []Item           `json:"items"`
	Total           int64            `json:"totalAmount"`
	Status          Status           `json:"status"`
	PaymentMethod   string           `json:"paymentMethod"`
	ShippingAddress identity.Address `json:"shippingAddress"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// ItemCount is the sum of line quantities.
func (o Order) ItemCount() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
