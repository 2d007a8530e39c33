package model

import "time"

// EventKind names a registrar state change.
type EventKind string

var (
	EventBid            EventKind = "bid"
	EventReveal         EventKind = "reveal"
	EventRevealRejected EventKind = "reveal_rejected"
	EventResolved       EventKind = "resolved"
	EventReset          EventKind = "reset"
	EventRefund         EventKind = "refund"
	EventForfeit        EventKind = "forfeit"
	EventBurn           EventKind = "burn"
	EventClaim          EventKind = "claim"
)

// Event is an append-only history entry for a name.
type Event struct {
	Name    Name      `json:"name"`
	Kind    EventKind `json:"kind"`
	Account AccountID `json:"account,omitempty"`
	Amount  Amount    `json:"amount"`
	At      time.Time `json:"at"`
}
