// Package product provides the repository interface and the in-memory
// implementation for managing products and their stock movements.
package product

import (
	"context"
	"fmt"
	"sync"

	"github.com/MikeMC777/pos-service/internal/apperr"
)

var (
	ErrNotFound = fmt.Errorf("product %w", apperr.ErrNotFound)
)

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id int) (*Product, error)
	List(ctx context.Context) ([]Product, error)
	Update(ctx context.Context, id int, u UpdateProductRequest) (before, after *Product, err error)
	AdjustStock(ctx context.Context, id, delta int) (*Product, error)
	Delete(ctx context.Context, id int) error
}

// MemRepo keeps products in insertion order behind a single lock.
type MemRepo struct {
	mu    sync.RWMutex
	items []Product
}

func NewMemRepo(seed ...Product) *MemRepo {
	r := &MemRepo{items: make([]Product, 0, len(seed))}
	r.items = append(r.items, seed...)
	return r
}

// Create assigns ID = max+1 (1 when empty) and, when SKU is blank, the
// default PRD-NNN code derived from the current count.
func (r *MemRepo) Create(ctx context.Context, p *Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := 1
	for _, it := range r.items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	p.ID = next
	if p.SKU == "" {
		p.SKU = fmt.Sprintf("PRD-%03d", len(r.items)+1)
	}
	r.items = append(r.items, *p)
	return nil
}

func (r *MemRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	cp := r.items[i]
	return &cp, nil
}

func (r *MemRepo) List(ctx context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Product, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Update applies only the fields present in u. It returns the record as it
// was before and after the merge.
func (r *MemRepo) Update(ctx context.Context, id int, u UpdateProductRequest) (*Product, *Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, nil, ErrNotFound
	}
	before := r.items[i]
	cur := before
	if u.Name != nil {
		cur.Name = *u.Name
	}
	if u.SKU != nil {
		cur.SKU = *u.SKU
	}
	if u.Price != nil {
		cur.Price = *u.Price
	}
	if u.Stock != nil {
		cur.Stock = *u.Stock
	}
	if u.Category != nil {
		cur.Category = *u.Category
	}
	if u.Image != nil {
		cur.Image = *u.Image
	}
	r.items[i] = cur
	after := cur
	return &before, &after, nil
}

// AdjustStock adds delta to the current stock. The result may not go below zero.
func (r *MemRepo) AdjustStock(ctx context.Context, id, delta int) (*Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}
	next := r.items[i].Stock + delta
	if next < 0 {
		return nil, fmt.Errorf("%w: insufficient stock (have %d, need %d)", apperr.ErrValidation, r.items[i].Stock, -delta)
	}
	r.items[i].Stock = next
	cp := r.items[i]
	return &cp, nil
}

func (r *MemRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

func (r *MemRepo) indexOf(id int) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
