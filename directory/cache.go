package directory

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gudangkita/coa_service/coa_core"
)

const snapshotKey = "coa_service/directory_snapshot"

// NewCached decorates a Provider with a short-lived badger cache so bursts of
// suggestion requests do not refetch the whole chart per call. Staleness is
// tolerated by design: allocation is advisory and commit-time uniqueness
// resolves conflicts.
func NewCached(inner Provider, bdb *badger.DB, ttl time.Duration) *cachedProviderImpl {
	return &cachedProviderImpl{
		inner: inner,
		bdb:   bdb,
		ttl:   ttl,
	}
}

type cachedProviderImpl struct {
	inner Provider
	bdb   *badger.DB
	ttl   time.Duration
}

// Snapshot implements Provider.
func (c *cachedProviderImpl) Snapshot(ctx context.Context) ([]*coa_core.Account, error) {
	accounts, ok := c.get()
	if ok {
		return accounts, nil
	}

	accounts, err := c.inner.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	c.set(accounts)
	return accounts, nil
}

// Invalidate drops the cached snapshot. Called after every directory write.
func (c *cachedProviderImpl) Invalidate() error {
	return c.bdb.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(snapshotKey))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}

func (c *cachedProviderImpl) get() ([]*coa_core.Account, bool) {
	var accounts []*coa_core.Account

	err := c.bdb.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(snapshotKey))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &accounts)
		})
	})

	if err != nil {
		return nil, false
	}
	return accounts, true
}

func (c *cachedProviderImpl) set(accounts []*coa_core.Account) {
	data, err := json.Marshal(accounts)
	if err != nil {
		return
	}

	// cache is best effort, a write failure only costs a refetch
	_ = c.bdb.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(snapshotKey), data).WithTTL(c.ttl)
		return txn.SetEntry(entry)
	})
}
