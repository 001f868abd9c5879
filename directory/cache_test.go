package directory_test

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gudangkita/coa_service/coa_core"
	"github.com/gudangkita/coa_service/directory"
	"github.com/stretchr/testify/assert"
)

type countingProvider struct {
	calls int
}

func (c *countingProvider) Snapshot(_ context.Context) ([]*coa_core.Account, error) {
	c.calls++
	return []*coa_core.Account{
		{Code: "1-1001", Name: "Kas", IsActive: true, IsPostable: true},
	}, nil
}

func TestCachedSnapshot(t *testing.T) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	bdb, err := badger.Open(opts)
	assert.Nil(t, err)
	defer bdb.Close()

	inner := countingProvider{}
	cached := directory.NewCached(&inner, bdb, time.Minute)

	accounts, err := cached.Snapshot(t.Context())
	assert.Nil(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, 1, inner.calls)

	// second read is served from the cache
	accounts, err = cached.Snapshot(t.Context())
	assert.Nil(t, err)
	assert.Len(t, accounts, 1)
	assert.Equal(t, 1, inner.calls)

	// invalidation forces a refetch
	err = cached.Invalidate()
	assert.Nil(t, err)

	_, err = cached.Snapshot(t.Context())
	assert.Nil(t, err)
	assert.Equal(t, 2, inner.calls)
}
