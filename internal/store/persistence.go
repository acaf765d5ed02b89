package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nouvalryhn/reboxed-web/internal/events"
	"github.com/nouvalryhn/reboxed-web/internal/kv"
)

// Slot keys in the durable key-value store. Each slot holds its whole
// collection as JSON and is rewritten in full on every change.
const (
	SlotCart     = "reboxed-cart"
	SlotSelected = "reboxed-selected"
	SlotWishlist = "reboxed-wishlist"
	SlotOrders   = "reboxed-orders"
)

// LoadSnapshot reads all four slots. A slot that was never written
// loads as its empty collection; a slot that fails to decode is logged
// and reset rather than failing startup.
func LoadSnapshot(ctx context.Context, kvs kv.Store, log *zap.SugaredLogger) (Snapshot, error) {
	var snap Snapshot

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loadSlot(ctx, kvs, log, SlotCart, &snap.Lines) })
	g.Go(func() error { return loadSlot(ctx, kvs, log, SlotSelected, &snap.Selected) })
	g.Go(func() error { return loadSlot(ctx, kvs, log, SlotWishlist, &snap.Wishlist) })
	g.Go(func() error { return loadSlot(ctx, kvs, log, SlotOrders, &snap.Orders) })

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func loadSlot[T any](ctx context.Context, kvs kv.Store, log *zap.SugaredLogger, key string, dst *[]T) error {
	raw, err := kvs.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load slot %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Warnw("discarding corrupt slot", "slot", key, "error", err)
		*dst = nil
	}
	return nil
}

// Persister mirrors aggregate state into the key-value store. It
// subscribes to the change events the aggregate publishes and rewrites
// the affected slot. A failed write is logged as a warning; the
// in-memory mutation already happened and is never rolled back.
type Persister struct {
	kvs kv.Store
	st  *Store
	log *zap.SugaredLogger
}

func NewPersister(kvs kv.Store, st *Store, log *zap.SugaredLogger) *Persister {
	return &Persister{kvs: kvs, st: st, log: log}
}

// Attach subscribes the persister to every slot-backed change event.
func (p *Persister) Attach(bus *events.Bus) {
	bus.Subscribe(events.CartChangedEvent, func(events.Envelope) {
		p.save(SlotCart, p.st.CartLines())
	})
	bus.Subscribe(events.SelectionChangedEvent, func(events.Envelope) {
		p.save(SlotSelected, p.st.SelectedIDs())
	})
	bus.Subscribe(events.WishlistChangedEvent, func(events.Envelope) {
		p.save(SlotWishlist, p.st.WishlistIDs())
	})
	bus.Subscribe(events.OrderPlacedEvent, func(events.Envelope) {
		p.save(SlotOrders, p.st.Orders())
	})
}

func (p *Persister) save(key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		p.log.Warnw("state not saved", "slot", key, "error", err)
		return
	}
	if err := p.kvs.Put(context.Background(), key, raw); err != nil {
		p.log.Warnw("state not saved", "slot", key, "error", err)
	}
}
