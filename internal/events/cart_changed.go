package events

const (
	CartChangedEvent      = "cart.changed"
	SelectionChangedEvent = "cart.selection.changed"
)

// CartChanged is published after any mutation of the cart lines.
type CartChanged struct {
	ItemCount int   `json:"itemCount"`
	Total     int64 `json:"totalAmount"`
}

// SelectionChanged is published after any mutation of the checkout
// selection, including prunes caused by cart removals.
type SelectionChanged struct {
	Selected []string `json:"selected"`
}
