package product

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MikeMC777/pos-service/internal/apperr"
	"github.com/MikeMC777/pos-service/internal/calendar"
)

// Service validates product requests and keeps the movement log in step with
// stock changes.
type Service struct {
	repo  Repository
	moves *MovementLog
	loc   *time.Location
	now   func() time.Time
}

func NewService(repo Repository, moves *MovementLog, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{repo: repo, moves: moves, loc: loc, now: time.Now}
}

// WithClock replaces the time source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) List(ctx context.Context) ([]Product, error) { return s.repo.List(ctx) }

func (s *Service) Get(ctx context.Context, id int) (*Product, error) { return s.repo.GetByID(ctx, id) }

func (s *Service) Movements(ctx context.Context) []Movement { return s.moves.List(ctx) }

// Create requires name, price, stock and category to be present. Zero stock
// and zero price are valid values.
func (s *Service) Create(ctx context.Context, in CreateProductRequest) (*Product, error) {
	if in.Name == nil || in.Price == nil || in.Stock == nil || in.Category == nil {
		return nil, fmt.Errorf("%w: name, price, stock and category are required", apperr.ErrValidation)
	}
	p := &Product{
		Name:     strings.TrimSpace(*in.Name),
		SKU:      strings.TrimSpace(in.SKU),
		Price:    *in.Price,
		Stock:    *in.Stock,
		Category: strings.TrimSpace(*in.Category),
		Image:    in.Image,
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if p.Stock > 0 {
		s.log(ctx, p, MovementIn, p.Stock, "initial stock")
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int, in UpdateProductRequest) (*Product, error) {
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", apperr.ErrValidation)
		}
		in.Name = &n
	}
	if in.Category != nil {
		c := strings.TrimSpace(*in.Category)
		if c == "" {
			return nil, fmt.Errorf("%w: category cannot be empty", apperr.ErrValidation)
		}
		in.Category = &c
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must be non-negative", apperr.ErrValidation)
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be non-negative", apperr.ErrValidation)
	}

	before, after, err := s.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if delta := after.Stock - before.Stock; delta > 0 {
		s.log(ctx, after, MovementIn, delta, "stock adjustment")
	} else if delta < 0 {
		s.log(ctx, after, MovementOut, -delta, "stock adjustment")
	}
	return after, nil
}

func (s *Service) Delete(ctx context.Context, id int) error { return s.repo.Delete(ctx, id) }

// RecordMovement adjusts stock by the movement quantity and appends it to the log.
func (s *Service) RecordMovement(ctx context.Context, in MovementRequest) (*Movement, *Product, error) {
	if !in.Type.Valid() {
		return nil, nil, fmt.Errorf("%w: type must be 'in' or 'out'", apperr.ErrValidation)
	}
	if in.Quantity <= 0 {
		return nil, nil, fmt.Errorf("%w: quantity must be positive", apperr.ErrValidation)
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return nil, nil, fmt.Errorf("%w: reason is required", apperr.ErrValidation)
	}
	delta := in.Quantity
	if in.Type == MovementOut {
		delta = -delta
	}
	p, err := s.repo.AdjustStock(ctx, in.ProductID, delta)
	if err != nil {
		return nil, nil, err
	}
	m := s.log(ctx, p, in.Type, in.Quantity, reason)
	return &m, p, nil
}

func (s *Service) log(ctx context.Context, p *Product, typ MovementType, qty int, reason string) Movement {
	now := s.now().In(s.loc)
	m := s.moves.Append(ctx, Movement{
		ProductID:   p.ID,
		ProductName: p.Name,
		Type:        typ,
		Quantity:    qty,
		Reason:      reason,
		Date:        now.Format(calendar.DateLayout),
		Time:        now.Format(calendar.TimeLayout),
		Timestamp:   now.UnixMilli(),
	})
	log.Printf("[product] movement id=%d product=%d type=%s qty=%d reason=%q", m.ID, p.ID, typ, qty, reason)
	return m
}

func validate(p *Product) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name is required", apperr.ErrValidation)
	case p.Category == "":
		return fmt.Errorf("%w: category is required", apperr.ErrValidation)
	case p.Price.IsNegative():
		return fmt.Errorf("%w: price must be non-negative", apperr.ErrValidation)
	case p.Stock < 0:
		return fmt.Errorf("%w: stock must be non-negative", apperr.ErrValidation)
	}
	return nil
}
