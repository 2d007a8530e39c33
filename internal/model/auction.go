// Package model defines domain models for the top-level name registrar.
package model

import (
	"time"
)

// Name is a top-level account name.
type Name string

// AccountID identifies a ledger account (bidder, winner, owner).
type AccountID string

// Amount is a value in the ledger's smallest unit.
type Amount uint64

// Status describes the phase of an auction.
type Status string

var (
	// StatusUnreleased marks a name with no auction in progress.
	StatusUnreleased Status = "unreleased"
	// StatusBidding marks an auction accepting sealed bids.
	StatusBidding Status = "bidding"
	// StatusReveal marks an auction accepting reveals.
	StatusReveal Status = "reveal"
	// StatusResolved marks an auction with a known winner awaiting claim.
	StatusResolved Status = "resolved"
	// StatusDone marks a claimed name.
	StatusDone Status = "done"
)

// Commitment is a sealed bid together with the deposit escrowed for it.
type Commitment struct {
	Bidder      AccountID      `json:"bidder"`
	Hash        CommitmentHash `json:"hash"`
	Escrowed    Amount         `json:"escrowed"`
	CommittedAt time.Time      `json:"committed_at"`
	// Forfeited is set once a reveal fails verification.
	Forfeited bool `json:"forfeited,omitempty"`
	// Settled is set once the escrow has been refunded or burned.
	Settled bool `json:"settled,omitempty"`
}

// RevealedBid is an opened commitment.
type RevealedBid struct {
	Bidder     AccountID `json:"bidder"`
	Amount     Amount    `json:"amount"`
	Mask       []byte    `json:"mask"`
	RevealedAt time.Time `json:"revealed_at"`
	Seq        uint64    `json:"seq"`
}

// Auction is the per-name auction record.
type Auction struct {
	Name          Name                       `json:"name"`
	Status        Status                     `json:"status"`
	BiddingStart  time.Time                  `json:"bidding_start"`
	Bids          map[AccountID]*Commitment  `json:"bids"`
	Reveals       map[AccountID]*RevealedBid `json:"reveals"`
	Winner        AccountID                  `json:"winner,omitempty"`
	ClearingPrice Amount                     `json:"clearing_price,omitempty"`
	RevealSeq     uint64                     `json:"reveal_seq"`
}

// NewAuction returns an empty unreleased auction for name.
func NewAuction(name Name) *Auction {
	return &Auction{
		Name:    name,
		Status:  StatusUnreleased,
		Bids:    make(map[AccountID]*Commitment),
		Reveals: make(map[AccountID]*RevealedBid),
	}
}

// RevealStart is the end of the bidding window.
func (a *Auction) RevealStart(biddingWindow time.Duration) time.Time {
	return a.BiddingStart.Add(biddingWindow)
}

// RevealEnd is the end of the reveal window.
func (a *Auction) RevealEnd(biddingWindow, revealWindow time.Duration) time.Time {
	return a.RevealStart(biddingWindow).Add(revealWindow)
}

// AllRevealed reports whether every committed bidder has either revealed or forfeited.
func (a *Auction) AllRevealed() bool {
	if len(a.Bids) == 0 {
		return false
	}
	for bidder, bid := range a.Bids {
		if bid.Forfeited {
			continue
		}
		if _, ok := a.Reveals[bidder]; !ok {
			return false
		}
	}
	return true
}

// Phase returns the effective status at now, accounting for windows that
// elapsed since the record was last written.
func (a *Auction) Phase(now time.Time, biddingWindow time.Duration) Status {
	if a.Status == StatusBidding && !now.Before(a.RevealStart(biddingWindow)) {
		return StatusReveal
	}
	return a.Status
}

// DoneRecord is the permanent record of a claimed name.
type DoneRecord struct {
	Name      Name      `json:"name"`
	Owner     AccountID `json:"owner"`
	PricePaid Amount    `json:"price_paid"`
	PublicKey string    `json:"public_key,omitempty"`
	ClaimedAt time.Time `json:"claimed_at"`
}

// Outcome is the result of resolving an auction.
type Outcome struct {
	Name          Name      `json:"name"`
	Winner        AccountID `json:"winner,omitempty"`
	ClearingPrice Amount    `json:"clearing_price"`
	Reveals       int       `json:"reveals"`
	// Reset is set when nobody revealed and the name went back to unreleased.
	Reset bool `json:"reset,omitempty"`
}

// AccountBinding is the owner account created for a claimed name.
type AccountBinding struct {
	Name      Name      `json:"name"`
	Owner     AccountID `json:"owner"`
	PublicKey []byte    `json:"public_key"`
	CreatedAt time.Time `json:"created_at"`
}
