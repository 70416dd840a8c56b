package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"gamestore/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryVoucherStore mimics the row-level guarantees of the database
// store: TryClaim is a linearizable compare-and-swap on is_used.
type memoryVoucherStore struct {
	mu    sync.Mutex
	codes []*models.VoucherCode
}

func (s *memoryVoucherStore) NextUnused(productID uint) (*models.VoucherCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.codes {
		if c.ProductID == productID && !c.IsUsed {
			cp := *c
			return &cp, nil
		}
	}
	return nil, models.ErrOutOfStock
}

func (s *memoryVoucherStore) TryClaim(codeID, orderItemID uint, now time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.codes {
		if c.ID != codeID {
			continue
		}
		if c.IsUsed {
			return false, nil
		}
		c.IsUsed = true
		c.UsedAt = &now
		id := orderItemID
		c.OrderItemID = &id
		return true, nil
	}
	return false, nil
}

func (s *memoryVoucherStore) ClaimedBy(orderItemID uint) ([]models.VoucherCode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.VoucherCode
	for _, c := range s.codes {
		if c.OrderItemID != nil && *c.OrderItemID == orderItemID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func newMemoryStore(productID uint, n int) *memoryVoucherStore {
	store := &memoryVoucherStore{}
	for i := 1; i <= n; i++ {
		code := &models.VoucherCode{ProductID: productID, Code: "CODE"}
		code.ID = uint(i)
		store.codes = append(store.codes, code)
	}
	return store
}

func TestReserveVoucherCodeSequential(t *testing.T) {
	store := newMemoryStore(1, 2)
	now := time.Now()

	first, err := ReserveVoucherCode(store, 1, 10, now)
	require.NoError(t, err)
	second, err := ReserveVoucherCode(store, 1, 11, now)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = ReserveVoucherCode(store, 1, 12, now)
	assert.ErrorIs(t, err, models.ErrOutOfStock)
}

func TestReserveVoucherCodeExclusiveUnderConcurrency(t *testing.T) {
	const (
		available = 10
		requests  = 50
	)
	store := newMemoryStore(1, available)
	now := time.Now()

	type result struct {
		code *models.VoucherCode
		err  error
	}
	results := make([]result, requests)

	var wg sync.WaitGroup
	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			code, err := ReserveVoucherCode(store, 1, uint(i+1), now)
			results[i] = result{code, err}
		}(i)
	}
	wg.Wait()

	var succeeded, outOfStock int
	seen := map[uint]bool{}
	for _, r := range results {
		switch {
		case r.err == nil:
			succeeded++
			assert.Falsef(t, seen[r.code.ID], "code %d handed out twice", r.code.ID)
			seen[r.code.ID] = true
			assert.True(t, r.code.IsUsed)
			assert.NotNil(t, r.code.UsedAt)
			assert.NotNil(t, r.code.OrderItemID)
		case errors.Is(r.err, models.ErrOutOfStock):
			outOfStock++
		default:
			t.Fatalf("unexpected error: %v", r.err)
		}
	}

	assert.Equal(t, available, succeeded)
	assert.Equal(t, requests-available, outOfStock)

	// every stored code ended up consistent
	for _, c := range store.codes {
		assert.True(t, c.Consistent())
	}
}

func TestReserveVoucherCodesRetryAfterPartialFailure(t *testing.T) {
	store := newMemoryStore(1, 1)
	now := time.Now()

	// quantity 2 against a pool of 1: one code gets linked before the
	// pool runs dry
	_, err := ReserveVoucherCodes(store, 1, 7, 2, now)
	require.ErrorIs(t, err, models.ErrOutOfStock)
	claimed, err := store.ClaimedBy(7)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// refill the pool and retry: only the remainder is reserved
	for id := uint(2); id <= 3; id++ {
		code := &models.VoucherCode{ProductID: 1, Code: "CODE"}
		code.ID = id
		store.codes = append(store.codes, code)
	}

	codes, err := ReserveVoucherCodes(store, 1, 7, 2, now)
	require.NoError(t, err)
	assert.Len(t, codes, 2)

	claimed, err = store.ClaimedBy(7)
	require.NoError(t, err)
	assert.Len(t, claimed, 2)

	free := 0
	for _, c := range store.codes {
		if !c.IsUsed {
			free++
		}
	}
	assert.Equal(t, 1, free)
}

func TestReserveVoucherCodesAlreadySatisfied(t *testing.T) {
	store := newMemoryStore(1, 3)
	now := time.Now()

	first, err := ReserveVoucherCodes(store, 1, 9, 2, now)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// a repeat claims nothing new
	again, err := ReserveVoucherCodes(store, 1, 9, 2, now)
	require.NoError(t, err)
	assert.Len(t, again, 2)

	free := 0
	for _, c := range store.codes {
		if !c.IsUsed {
			free++
		}
	}
	assert.Equal(t, 1, free)
}

func TestReserveVoucherCodeIgnoresOtherProducts(t *testing.T) {
	store := newMemoryStore(1, 1)
	other := &models.VoucherCode{ProductID: 2, Code: "OTHER"}
	other.ID = 99
	store.codes = append(store.codes, other)

	code, err := ReserveVoucherCode(store, 1, 5, time.Now())
	require.NoError(t, err)
	assert.Equal(t, uint(1), code.ProductID)

	_, err = ReserveVoucherCode(store, 1, 6, time.Now())
	assert.ErrorIs(t, err, models.ErrOutOfStock)
	assert.False(t, other.IsUsed)
}
