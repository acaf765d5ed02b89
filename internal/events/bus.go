package events

import "sync"

// Handler receives every envelope published under a subscribed name.
type Handler func(Envelope)

// Bus is a synchronous publish/subscribe dispatcher. Publish runs each
// handler inline, in subscription order, before returning; callers get
// deterministic ordering between a mutation and its side effects.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{subs: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(eventName string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[eventName] = append(b.subs[eventName], h)
}

// SubscribeAll registers a handler for every event name in names.
func (b *Bus) SubscribeAll(h Handler, names ...string) {
	for _, name := range names {
		b.Subscribe(name, h)
	}
}

func (b *Bus) Publish(ev Envelope) {
	b.mu.RLock()
	handlers := b.subs[ev.EventName]
	b.mu.RUnlock()

	for _, h := range handlers {
		h(ev)
	}
}
