package events

const OrderPlacedEvent = "order.placed"

type OrderPlaced struct {
	OrderID string `json:"orderId"`
	Total   int64  `json:"totalAmount"`
	Status  string `json:"status"`
}
