// Package store holds the shopper's transactional state: cart lines,
// the checkout selection, the wishlist, order history and shipping
// address. It is the single source of truth for the storefront; views
// only ever read through it and mutate through it.
//
// Every operation is total: mutating a line that is not in the cart is
// a no-op, never an error. The selection is kept a subset of the cart's
// product ids across all operations.
package store

import (
	"sync"

	"github.com/nouvalryhn/reboxed-web/internal/catalog"
	"github.com/nouvalryhn/reboxed-web/internal/events"
	"github.com/nouvalryhn/reboxed-web/internal/identity"
	"github.com/nouvalryhn/reboxed-web/internal/order"
)

type Store struct {
	mu       sync.Mutex
	lines    []CartLine
	selected []string
	wishlist []string
	orders   []order.Order
	user     *identity.User
	address  *identity.Address

	bus *events.Bus
}

// New builds the aggregate from a restored snapshot. A selection id
// without a matching cart line (slots written unevenly on a previous
// run) is dropped so the selection invariant holds from the start.
// bus may be nil, in which case no change events are published.
func New(snap Snapshot, bus *events.Bus) *Store {
	s := &Store{
		lines:    append([]CartLine(nil), snap.Lines...),
		wishlist: append([]string(nil), snap.Wishlist...),
		orders:   append([]order.Order(nil), snap.Orders...),
		bus:      bus,
	}
	for _, id := range snap.Selected {
		if s.lineIndex(id) >= 0 && !contains(s.selected, id) {
			s.selected = append(s.selected, id)
		}
	}
	return s
}

// --- cart ---

// AddToCart merges the product into the cart: an existing line gains
// one unit, otherwise a new line with quantity 1 is appended. Newly
// added products are selected for checkout by default.
func (s *Store) AddToCart(p catalog.Product) {
	s.mu.Lock()
	if i := s.lineIndex(p.ID); i >= 0 {
		s.lines[i].Quantity++
	} else {
		s.lines = append(s.lines, CartLine{Product: p, Quantity: 1})
	}
	selectionChanged := false
	if !contains(s.selected, p.ID) {
		s.selected = append(s.selected, p.ID)
		selectionChanged = true
	}
	s.mu.Unlock()

	s.publishCart()
	if selectionChanged {
		s.publishSelection()
	}
}

// RemoveFromCart deletes the line for productID and prunes its id from
// the selection. No-op when the product is not in the cart.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	i := s.lineIndex(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	selectionChanged := contains(s.selected, productID)
	s.selected = remove(s.selected, productID)
	s.mu.Unlock()

	s.publishCart()
	if selectionChanged {
		s.publishSelection()
	}
}

// UpdateQuantity sets the line's quantity to an absolute value.
// quantity <= 0 removes the line entirely; an unknown product id is a
// no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	i := s.lineIndex(productID)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	s.lines[i].Quantity = quantity
	s.mu.Unlock()

	s.publishCart()
}

// ClearCart empties the cart and the selection.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.lines = nil
	s.selected = nil
	s.mu.Unlock()

	s.publishCart()
	s.publishSelection()
}

func (s *Store) CartLines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]CartLine, 0, len(s.lines)), s.lines...)
}

// CartTotal sums price x quantity over the whole cart, selected or not.
func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.lines)
}

// CartItemCount sums quantities over all lines (badge count).
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

// --- checkout selection ---

// ToggleSelect flips checkout membership for a product in the cart.
// Toggling an id that has no cart line is a no-op; the selection never
// holds ids outside the cart.
func (s *Store) ToggleSelect(productID string) {
	s.mu.Lock()
	switch {
	case contains(s.selected, productID):
		s.selected = remove(s.selected, productID)
	case s.lineIndex(productID) >= 0:
		s.selected = append(s.selected, productID)
	default:
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.publishSelection()
}

// SelectAll sets the selection to exactly the current cart's product
// ids, discarding anything stale.
func (s *Store) SelectAll() {
	s.mu.Lock()
	s.selected = s.selected[:0]
	for _, l := range s.lines {
		s.selected = append(s.selected, l.Product.ID)
	}
	s.mu.Unlock()

	s.publishSelection()
}

func (s *Store) DeselectAll() {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()

	s.publishSelection()
}

func (s *Store) IsSelected(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.selected, productID)
}

func (s *Store) SelectedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]string, 0, len(s.selected)), s.selected...)
}

// SelectedLines returns the cart lines participating in the next
// checkout, in cart order.
func (s *Store) SelectedLines() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedLinesLocked()
}

func (s *Store) SelectedTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cartTotal(s.selectedLinesLocked())
}

// RemoveSelected deletes every selected cart line and empties the
// selection. Used after a successful checkout so unselected items stay
// in the cart.
func (s *Store) RemoveSelected() {
	s.mu.Lock()
	if len(s.selected) == 0 {
		s.mu.Unlock()
		return
	}
	kept := s.lines[:0]
	for _, l := range s.lines {
		if !contains(s.selected, l.Product.ID) {
			kept = append(kept, l)
		}
	}
	s.lines = kept
	s.selected = nil
	s.mu.Unlock()

	s.publishCart()
	s.publishSelection()
}

// --- wishlist ---

// ToggleWishlist flips saved-for-later membership. The wishlist has no
// relation to cart state.
func (s *Store) ToggleWishlist(productID string) {
	s.mu.Lock()
	if contains(s.wishlist, productID) {
		s.wishlist = remove(s.wishlist, productID)
	} else {
		s.wishlist = append(s.wishlist, productID)
	}
	s.mu.Unlock()

	s.publishWishlist()
}

func (s *Store) InWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return contains(s.wishlist, productID)
}

func (s *Store) WishlistIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]string, 0, len(s.wishlist)), s.wishlist...)
}

// --- orders ---

// AddOrder prepends the order to the history; callers insert in the
// order they want displayed, newest first. The item slice is copied so
// the stored order never aliases the caller's.
func (s *Store) AddOrder(o order.Order) {
	o.Items = append([]order.Item(nil), o.Items...)

	s.mu.Lock()
	s.orders = append([]order.Order{o}, s.orders...)
	s.mu.Unlock()

	if s.bus != nil {
		s.bus.Publish(events.NewEnvelope(events.OrderPlacedEvent, events.OrderPlaced{
			OrderID: o.ID,
			Total:   o.Total,
			Status:  string(o.Status),
		}))
	}
}

func (s *Store) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append(make([]order.Order, 0, len(s.orders)), s.orders...)
}

func (s *Store) OrderByID(orderID string) (order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return order.Order{}, false
}

// --- profile ---

func (s *Store) SetUser(u *identity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	cp := *u
	s.user = &cp
}

func (s *Store) User() (identity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return identity.User{}, false
	}
	return *s.user, true
}

func (s *Store) SetShippingAddress(a identity.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.address = &a
}

func (s *Store) ShippingAddress() (identity.Address, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.address == nil {
		return identity.Address{}, false
	}
	return *s.address, true
}

// --- internals ---

// lineIndex requires s.mu held.
func (s *Store) lineIndex(productID string) int {
	for i, l := range s.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}

// selectedLinesLocked requires s.mu held.
func (s *Store) selectedLinesLocked() []CartLine {
	out := make([]CartLine, 0, len(s.selected))
	for _, l := range s.lines {
		if contains(s.selected, l.Product.ID) {
			out = append(out, l)
		}
	}
	return out
}

func (s *Store) publishCart() {
	if s.bus == nil {
		return
	}
	s.mu.Lock()
	payload := events.CartChanged{Total: cartTotal(s.lines)}
	for _, l := range s.lines {
		payload.ItemCount += l.Quantity
	}
	s.mu.Unlock()
	s.bus.Publish(events.NewEnvelope(events.CartChangedEvent, payload))
}

func (s *Store) publishSelection() {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.NewEnvelope(events.SelectionChangedEvent, events.SelectionChanged{
		Selected: s.SelectedIDs(),
	}))
}

func (s *Store) publishWishlist() {
	if s.bus == nil {
		return
	}
	s.bus.Publish(events.NewEnvelope(events.WishlistChangedEvent, events.WishlistChanged{
		ProductIDs: s.WishlistIDs(),
	}))
}

func cartTotal(lines []CartLine) int64 {
	var total int64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return total
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
