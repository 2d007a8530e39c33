package registrar

import (
	"encoding/binary"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"golang.org/x/crypto/sha3"
)

const commitmentDomain = "tla-registrar/commitment/v1"

// HashBid seals (amount, mask) to bidder. Binding the bidder stops one bidder
// from replaying another's reveal.
func HashBid(amount model.Amount, mask []byte, bidder model.AccountID) model.CommitmentHash {
	var buf [8]byte
	h := sha3.New256()
	h.Write([]byte(commitmentDomain))
	binary.BigEndian.PutUint64(buf[:], uint64(amount))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(len(mask)))
	h.Write(buf[:])
	h.Write(mask)
	h.Write([]byte(bidder))

	var out model.CommitmentHash
	h.Sum(out[:0])
	return out
}

// commit records a sealed bid. The caller escrows the deposit in the same transaction.
func commit(a *model.Auction, bidder model.AccountID, hash model.CommitmentHash, deposit model.Amount, now time.Time, biddingWindow time.Duration) error {
	phase := a.Phase(now, biddingWindow)
	if phase != model.StatusUnreleased && phase != model.StatusBidding {
		return ErrWindowClosed
	}
	if _, ok := a.Bids[bidder]; ok {
		return ErrDuplicateBid
	}
	if phase == model.StatusUnreleased {
		a.Status = model.StatusBidding
		a.BiddingStart = now
	}
	a.Bids[bidder] = &model.Commitment{
		Bidder:      bidder,
		Hash:        hash,
		Escrowed:    deposit,
		CommittedAt: now,
	}
	return nil
}
