// Package transaction holds the checkout records: the in-memory store with
// its receipt-number index and the service that validates and builds them.
package transaction

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MikeMC777/pos-service/internal/apperr"
	"github.com/MikeMC777/pos-service/internal/calendar"
)

var (
	ErrNotFound = fmt.Errorf("transaction %w", apperr.ErrNotFound)
)

// receiptSpace bounds the numeric tail shown after "REC-".
const receiptSpace = 100_000_000

type Query struct {
	Range  calendar.Range
	Status KitchenStatus // empty means any
}

type Repository interface {
	Create(ctx context.Context, t *Transaction) error
	GetByID(ctx context.Context, idOrReceipt string) (*Transaction, error)
	List(ctx context.Context, q Query) ([]Transaction, error)
	UpdateKitchenStatus(ctx context.Context, idOrReceipt string, s KitchenStatus) (*Transaction, error)
	Delete(ctx context.Context, idOrReceipt string) error
}

// MemRepo keeps transactions most-recent-first, with a secondary index from
// receipt number to primary id. One lock guards the slice, the index and the
// receipt sequence.
type MemRepo struct {
	mu        sync.RWMutex
	items     []Transaction
	byReceipt map[string]string
	lastSeq   int64
	loc       *time.Location
}

func NewMemRepo(loc *time.Location) *MemRepo {
	if loc == nil {
		loc = time.Local
	}
	return &MemRepo{byReceipt: make(map[string]string), loc: loc}
}

// Create assigns the receipt number and inserts t at the head. The receipt
// tail follows a monotonic sequence seeded by t.Timestamp, skipping tails
// still held by a live transaction.
func (r *MemRepo) Create(ctx context.Context, t *Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexOf(t.ID) >= 0 {
		return fmt.Errorf("%w: duplicate transaction id %s", apperr.ErrInternal, t.ID)
	}

	seq := t.Timestamp
	if seq <= r.lastSeq {
		seq = r.lastSeq + 1
	}
	rn := receiptNumber(seq)
	for r.taken(rn) {
		seq++
		rn = receiptNumber(seq)
	}
	r.lastSeq = seq
	t.ReceiptNumber = rn

	r.items = append(r.items, Transaction{})
	copy(r.items[1:], r.items)
	r.items[0] = t.clone()
	r.byReceipt[rn] = t.ID
	return nil
}

func (r *MemRepo) GetByID(ctx context.Context, idOrReceipt string) (*Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.resolve(idOrReceipt)
	if i < 0 {
		return nil, ErrNotFound
	}
	cp := r.items[i].clone()
	return &cp, nil
}

// List returns copies in most-recent-first order. Date bounds compare the
// calendar day of each timestamp in the store location.
func (r *MemRepo) List(ctx context.Context, q Query) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Transaction, 0, len(r.items))
	for _, t := range r.items {
		if q.Status != "" && t.KitchenStatus != q.Status {
			continue
		}
		if !q.Range.Contains(calendar.FromMillis(t.Timestamp, r.loc)) {
			continue
		}
		out = append(out, t.clone())
	}
	return out, nil
}

// UpdateKitchenStatus sets the status when s is a known state. Unknown values
// leave the record untouched and still return it.
func (r *MemRepo) UpdateKitchenStatus(ctx context.Context, idOrReceipt string, s KitchenStatus) (*Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.resolve(idOrReceipt)
	if i < 0 {
		return nil, ErrNotFound
	}
	if s.Valid() {
		r.items[i].KitchenStatus = s
	}
	cp := r.items[i].clone()
	return &cp, nil
}

func (r *MemRepo) Delete(ctx context.Context, idOrReceipt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.resolve(idOrReceipt)
	if i < 0 {
		return ErrNotFound
	}
	delete(r.byReceipt, r.items[i].ReceiptNumber)
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *MemRepo) taken(rn string) bool {
	_, ok := r.byReceipt[rn]
	return ok
}

func (r *MemRepo) resolve(key string) int {
	if id, ok := r.byReceipt[key]; ok {
		key = id
	}
	return r.indexOf(key)
}

func (r *MemRepo) indexOf(id string) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

func receiptNumber(seq int64) string {
	return fmt.Sprintf("REC-%08d", seq%receiptSpace)
}
