package transaction

import (
	"context"
	"errors"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/pos-service/internal/apperr"
)

func init() {
	log.SetOutput(io.Discard)
}

// steppingClock returns start, start+step, start+2*step, ...
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	cur := start.Add(-step)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(step)
		return cur
	}
}

var base = time.Date(2026, time.October, 19, 9, 30, 0, 0, time.UTC)

func newTestService(clock func() time.Time) (*Service, *MemRepo) {
	repo := NewMemRepo(time.UTC)
	return NewService(repo, time.UTC).WithClock(clock), repo
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decp(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func checkout(name string, total string, items ...LineItem) CreateTransactionRequest {
	return CreateTransactionRequest{CustomerName: name, Items: items, Total: decp(total)}
}

func TestCreate_SetsPreparingAndExactTotal(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(steppingClock(base, time.Second))
	uid := 2

	tx, err := svc.Create(context.Background(), checkout("  Ana ", "45.83",
		LineItem{ProductID: 1, Name: "Product A", Price: dec("22.75"), Quantity: 1},
		LineItem{ProductID: 9, Name: "Gum", Price: dec("0.1"), Quantity: 3},
		LineItem{ProductID: 5, Name: "Product E", Price: dec("22.78"), Quantity: 1},
	), &uid)
	require.NoError(t, err)

	assert.Equal(t, StatusPreparing, tx.KitchenStatus)
	assert.Equal(t, "Ana", tx.CustomerName)
	assert.True(t, tx.Total.Equal(dec("45.83")), "total=%s", tx.Total)
	assert.Equal(t, "October 19, 2026", tx.Date)
	assert.Equal(t, "09:30 AM", tx.Time)
	assert.Equal(t, base.UnixMilli(), tx.Timestamp)
	require.NotNil(t, tx.UserID)
	assert.Equal(t, 2, *tx.UserID)
	assert.True(t, strings.HasPrefix(tx.ReceiptNumber, "REC-"))
	assert.Len(t, tx.ReceiptNumber, len("REC-")+8)
	assert.NotEqual(t, tx.ID, tx.ReceiptNumber)
}

func TestCreate_AcceptsTotalWithinTolerance(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(steppingClock(base, time.Second))

	// 3 x 3.333 = 9.999, client rounded to 10.00
	tx, err := svc.Create(context.Background(), checkout("Bo", "10.00",
		LineItem{ProductID: 1, Name: "Third", Price: dec("3.333"), Quantity: 3},
	), nil)
	require.NoError(t, err)
	assert.True(t, tx.Total.Equal(dec("9.999")))
	assert.Nil(t, tx.UserID)
}

func TestCreate_Validation(t *testing.T) {
	t.Parallel()
	svc, repo := newTestService(steppingClock(base, time.Second))
	item := LineItem{ProductID: 1, Name: "A", Price: dec("10"), Quantity: 1}

	tests := []struct {
		name string
		req  CreateTransactionRequest
	}{
		{name: "missing customer", req: checkout(" ", "10", item)},
		{name: "no items", req: checkout("Ana", "10")},
		{name: "missing total", req: CreateTransactionRequest{CustomerName: "Ana", Items: []LineItem{item}}},
		{name: "zero quantity", req: checkout("Ana", "0", LineItem{ProductID: 1, Name: "A", Price: dec("10"), Quantity: 0})},
		{name: "negative price", req: checkout("Ana", "-10", LineItem{ProductID: 1, Name: "A", Price: dec("-10"), Quantity: 1})},
		{name: "unnamed item", req: checkout("Ana", "10", LineItem{ProductID: 1, Price: dec("10"), Quantity: 1})},
		{name: "total mismatch", req: checkout("Ana", "11", item)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.req, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperr.ErrValidation), "got %v", err)
		})
	}

	all, err := repo.List(context.Background(), Query{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestCreate_ReceiptsStrictlyIncrease(t *testing.T) {
	t.Parallel()
	// every call lands on the same millisecond: the sequence still moves on
	svc, _ := newTestService(func() time.Time { return base })
	ctx := context.Background()

	seen := map[string]bool{}
	last := int64(-1)
	for i := 0; i < 50; i++ {
		tx, err := svc.Create(ctx, checkout("C", "1", LineItem{ProductID: 1, Name: "A", Price: dec("1"), Quantity: 1}), nil)
		require.NoError(t, err)
		require.False(t, seen[tx.ReceiptNumber], "duplicate %s", tx.ReceiptNumber)
		seen[tx.ReceiptNumber] = true

		tail, err := strconv.ParseInt(strings.TrimPrefix(tx.ReceiptNumber, "REC-"), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, tail, last)
		last = tail
	}
}

func TestMemRepo_ReceiptSkipsLiveTail(t *testing.T) {
	t.Parallel()
	repo := NewMemRepo(time.UTC)
	ctx := context.Background()

	first := &Transaction{ID: "a", Timestamp: 5}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, "REC-00000005", first.ReceiptNumber)

	// a timestamp that wraps around onto the same 8-digit tail
	wrapped := &Transaction{ID: "b", Timestamp: receiptSpace + 5}
	require.NoError(t, repo.Create(ctx, wrapped))
	assert.NotEqual(t, first.ReceiptNumber, wrapped.ReceiptNumber)
	assert.Equal(t, "REC-00000006", wrapped.ReceiptNumber)

	err := repo.Create(ctx, &Transaction{ID: "a", Timestamp: 7})
	assert.True(t, errors.Is(err, apperr.ErrInternal))
}

func TestFindByIDOrReceipt(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(steppingClock(base, time.Second))
	ctx := context.Background()

	tx, err := svc.Create(ctx, checkout("Ana", "10", LineItem{ProductID: 1, Name: "A", Price: dec("10"), Quantity: 1}), nil)
	require.NoError(t, err)

	byID, err := svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	byReceipt, err := svc.Get(ctx, tx.ReceiptNumber)
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byReceipt.ID)

	_, err = svc.Get(ctx, "REC-99999999")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestKitchenStatus_RoundTripAndPermissiveMerge(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(steppingClock(base, time.Second))
	ctx := context.Background()

	tx, err := svc.Create(ctx, checkout("Ana", "10", LineItem{ProductID: 1, Name: "A", Price: dec("10"), Quantity: 1}), nil)
	require.NoError(t, err)

	got, err := svc.UpdateKitchenStatus(ctx, tx.ID, StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got.KitchenStatus)

	got, err = svc.UpdateKitchenStatus(ctx, tx.ReceiptNumber, StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, StatusPreparing, got.KitchenStatus)

	got, err = svc.UpdateKitchenStatus(ctx, tx.ID, "burnt")
	require.NoError(t, err, "unknown status is a no-op, not an error")
	assert.Equal(t, StatusPreparing, got.KitchenStatus)

	_, err = svc.UpdateKitchenStatus(ctx, "missing", StatusCompleted)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestVoid(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(steppingClock(base, time.Second))
	ctx := context.Background()

	tx, err := svc.Create(ctx, checkout("Ana", "10", LineItem{ProductID: 1, Name: "A", Price: dec("10"), Quantity: 1}), nil)
	require.NoError(t, err)

	require.NoError(t, svc.Void(ctx, tx.ReceiptNumber))
	_, err = svc.Get(ctx, tx.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	_, err = svc.Get(ctx, tx.ReceiptNumber)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	assert.True(t, errors.Is(svc.Void(ctx, tx.ID), apperr.ErrNotFound))
}

func TestList_OrderDateRangeAndStatus(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(steppingClock(base.AddDate(0, 0, -3), 24*time.Hour))
	ctx := context.Background()

	var ids []string
	for i := 0; i < 4; i++ { // Oct 16, 17, 18, 19
		tx, err := svc.Create(ctx, checkout("C", "1", LineItem{ProductID: 1, Name: "A", Price: dec("1"), Quantity: 1}), nil)
		require.NoError(t, err)
		ids = append(ids, tx.ID)
	}

	all, err := svc.List(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, ids[3], all[0].ID, "most recent first")
	assert.Equal(t, ids[0], all[3].ID)

	// inclusive on both ends, time of day ignored
	got, err := svc.ListByDateRange(ctx,
		time.Date(2026, time.October, 17, 23, 0, 0, 0, time.UTC),
		time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ids[2], got[0].ID)
	assert.Equal(t, ids[1], got[1].ID)

	_, err = svc.UpdateKitchenStatus(ctx, ids[1], StatusCompleted)
	require.NoError(t, err)
	preparing, err := svc.ListByStatus(ctx, StatusPreparing)
	require.NoError(t, err)
	assert.Len(t, preparing, 3)
	done, err := svc.ListByStatus(ctx, StatusCompleted)
	require.NoError(t, err)
	require.Len(t, done, 1)
	assert.Equal(t, ids[1], done[0].ID)
}

func TestList_ReturnsCopies(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(steppingClock(base, time.Second))
	ctx := context.Background()

	tx, err := svc.Create(ctx, checkout("Ana", "10", LineItem{ProductID: 1, Name: "A", Price: dec("10"), Quantity: 1}), nil)
	require.NoError(t, err)

	all, err := svc.List(ctx, Query{})
	require.NoError(t, err)
	all[0].Items[0].Name = "mutated"
	all[0].KitchenStatus = StatusCompleted

	again, err := svc.Get(ctx, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Items[0].Name)
	assert.Equal(t, StatusPreparing, again.KitchenStatus)
}

func TestConcurrentVoidAndStatusUpdate(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(steppingClock(base, time.Millisecond))
	ctx := context.Background()

	tx, err := svc.Create(ctx, checkout("Ana", "10", LineItem{ProductID: 1, Name: "A", Price: dec("10"), Quantity: 1}), nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	voided := 0
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if svc.Void(ctx, tx.ID) == nil {
				mu.Lock()
				voided++
				mu.Unlock()
			}
		}()
		go func() {
			defer wg.Done()
			_, _ = svc.UpdateKitchenStatus(ctx, tx.ID, StatusCompleted)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, voided, "exactly one void succeeds")
	_, err = svc.Get(ctx, tx.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}
