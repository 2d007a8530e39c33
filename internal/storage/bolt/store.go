// Package bolt implements the registrar ledger on top of bbolt. Every Update is a
// single serialized read-write transaction, so a call either fully applies or not at all.
package bolt

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goodnatureofminers/tla-registrar/internal/model"
	"github.com/goodnatureofminers/tla-registrar/internal/storage"
	"github.com/goodnatureofminers/tla-registrar/pkg/safe"
	"go.etcd.io/bbolt"
)

const (
	fileName      = "registrar.db"
	openTimeout   = 2 * time.Second
	boltAllocSize = 8 * 1024 * 1024
)

var (
	auctionsBucket = []byte("auctions")
	doneBucket     = []byte("done")
	balanceBucket  = []byte("balances")
	ledgerBucket   = []byte("ledger")
	accountsBucket = []byte("accounts")

	custodyKey = []byte("custody")
	burnedKey  = []byte("burned")
)

// Store is a bbolt-backed storage.Store.
type Store struct {
	db *bbolt.DB
}

// Open creates dir if needed and opens the registrar database inside it.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("bolt dir path is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create bolt dir: %w", err)
	}

	db, err := bbolt.Open(filepath.Join(dir, fileName), 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		if errors.Is(err, bbolt.ErrTimeout) {
			return nil, errors.New("cannot obtain database lock, database may be in use by another process")
		}
		return nil, fmt.Errorf("open bolt db: %w", err)
	}
	db.AllocSize = boltAllocSize

	if err := db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{auctionsBucket, doneBucket, balanceBucket, ledgerBucket, accountsBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("create bucket %s: %w", name, err)
			}
		}
		return nil
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// Update runs fn in a read-write transaction. Any error rolls the transaction back.
func (s *Store) Update(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(btx *bbolt.Tx) error {
		return fn(&tx{tx: btx})
	})
}

// View runs fn in a read-only transaction.
func (s *Store) View(ctx context.Context, fn func(tx storage.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(btx *bbolt.Tx) error {
		return fn(&tx{tx: btx})
	})
}

type tx struct {
	tx *bbolt.Tx
}

func (t *tx) Auction(name model.Name) (*model.Auction, error) {
	var a model.Auction
	if err := t.get(auctionsBucket, []byte(name), &a); err != nil {
		return nil, err
	}
	if a.Bids == nil {
		a.Bids = make(map[model.AccountID]*model.Commitment)
	}
	if a.Reveals == nil {
		a.Reveals = make(map[model.AccountID]*model.RevealedBid)
	}
	return &a, nil
}

func (t *tx) PutAuction(a *model.Auction) error {
	return t.put(auctionsBucket, []byte(a.Name), a)
}

func (t *tx) DeleteAuction(name model.Name) error {
	return t.tx.Bucket(auctionsBucket).Delete([]byte(name))
}

func (t *tx) ForEachAuction(fn func(a *model.Auction) error) error {
	return t.tx.Bucket(auctionsBucket).ForEach(func(k, v []byte) error {
		var a model.Auction
		if err := json.Unmarshal(v, &a); err != nil {
			return fmt.Errorf("decode auction %s: %w", k, err)
		}
		return fn(&a)
	})
}

func (t *tx) DoneRecord(name model.Name) (*model.DoneRecord, error) {
	var rec model.DoneRecord
	if err := t.get(doneBucket, []byte(name), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (t *tx) PutDoneRecord(rec model.DoneRecord) error {
	return t.put(doneBucket, []byte(rec.Name), rec)
}

func (t *tx) Balance(account model.AccountID) (model.Amount, error) {
	return readAmount(t.tx.Bucket(balanceBucket), []byte(account)), nil
}

func (t *tx) Credit(account model.AccountID, amount model.Amount) error {
	b := t.tx.Bucket(balanceBucket)
	next, err := safe.Add(readAmount(b, []byte(account)), amount)
	if err != nil {
		return fmt.Errorf("credit %s: %w", account, err)
	}
	return writeAmount(b, []byte(account), next)
}

func (t *tx) Escrow(from model.AccountID, amount model.Amount) error {
	balances := t.tx.Bucket(balanceBucket)
	left, err := safe.Sub(readAmount(balances, []byte(from)), amount)
	if err != nil {
		return fmt.Errorf("escrow from %s: %w", from, storage.ErrInsufficientFunds)
	}
	ledger := t.tx.Bucket(ledgerBucket)
	custody, err := safe.Add(readAmount(ledger, custodyKey), amount)
	if err != nil {
		return fmt.Errorf("escrow custody: %w", err)
	}
	if err := writeAmount(balances, []byte(from), left); err != nil {
		return err
	}
	return writeAmount(ledger, custodyKey, custody)
}

func (t *tx) Refund(to model.AccountID, amount model.Amount) error {
	if err := t.releaseCustody(amount); err != nil {
		return fmt.Errorf("refund %s: %w", to, err)
	}
	return t.Credit(to, amount)
}

func (t *tx) Burn(amount model.Amount) error {
	if err := t.releaseCustody(amount); err != nil {
		return fmt.Errorf("burn: %w", err)
	}
	ledger := t.tx.Bucket(ledgerBucket)
	burned, err := safe.Add(readAmount(ledger, burnedKey), amount)
	if err != nil {
		return fmt.Errorf("burn total: %w", err)
	}
	return writeAmount(ledger, burnedKey, burned)
}

func (t *tx) Totals() (storage.Totals, error) {
	ledger := t.tx.Bucket(ledgerBucket)
	return storage.Totals{
		Custody: readAmount(ledger, custodyKey),
		Burned:  readAmount(ledger, burnedKey),
	}, nil
}

func (t *tx) CreateAccount(binding model.AccountBinding) error {
	if t.tx.Bucket(accountsBucket).Get([]byte(binding.Name)) != nil {
		return fmt.Errorf("create account %s: %w", binding.Name, storage.ErrAccountExists)
	}
	return t.put(accountsBucket, []byte(binding.Name), binding)
}

func (t *tx) Account(name model.Name) (*model.AccountBinding, error) {
	var binding model.AccountBinding
	if err := t.get(accountsBucket, []byte(name), &binding); err != nil {
		return nil, err
	}
	return &binding, nil
}

func (t *tx) releaseCustody(amount model.Amount) error {
	ledger := t.tx.Bucket(ledgerBucket)
	left, err := safe.Sub(readAmount(ledger, custodyKey), amount)
	if err != nil {
		return storage.ErrCustodyShortfall
	}
	return writeAmount(ledger, custodyKey, left)
}

func (t *tx) get(bucket, key []byte, dst any) error {
	data := t.tx.Bucket(bucket).Get(key)
	if data == nil {
		return storage.ErrNotFound
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s/%s: %w", bucket, key, err)
	}
	return nil
}

func (t *tx) put(bucket, key []byte, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", bucket, key, err)
	}
	return t.tx.Bucket(bucket).Put(key, data)
}

func readAmount(b *bbolt.Bucket, key []byte) model.Amount {
	data := b.Get(key)
	if len(data) != 8 {
		return 0
	}
	return model.Amount(binary.BigEndian.Uint64(data))
}

func writeAmount(b *bbolt.Bucket, key []byte, v model.Amount) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	return b.Put(key, buf)
}
