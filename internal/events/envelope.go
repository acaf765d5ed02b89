// Package events carries state-change notifications between the shopper
// state aggregate and its subscribers (persistence, logging). Dispatch
// is synchronous and in-process; the storefront is a single-user,
// single-process system, so there is no broker behind the bus.
package events

import (
	"time"

	"github.com/google/uuid"
)

const producer = "storefront"

// Envelope wraps every published event with a stable identity.
type Envelope struct {
	EventName  string    `json:"eventName"`
	EventID    string    `json:"eventId"`
	Producer   string    `json:"producer"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// NewEnvelope stamps a payload with event identity.
func NewEnvelope(name string, payload any) Envelope {
	return Envelope{
		EventName:  name,
		EventID:    uuid.NewString(),
		Producer:   producer,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
