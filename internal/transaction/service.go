package transaction

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/pos-service/internal/apperr"
	"github.com/MikeMC777/pos-service/internal/calendar"
)

// totalTolerance is how far a client-supplied total may drift from the sum of
// its line items.
var totalTolerance = decimal.New(1, -2)

type Service struct {
	repo Repository
	loc  *time.Location
	now  func() time.Time
}

func NewService(repo Repository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{repo: repo, loc: loc, now: time.Now}
}

// WithClock replaces the time source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Create validates a checkout and stores it as a new preparing order. The
// stored total is the exact sum of the line items.
func (s *Service) Create(ctx context.Context, in CreateTransactionRequest, userID *int) (*Transaction, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" || len(in.Items) == 0 || in.Total == nil {
		return nil, fmt.Errorf("%w: customerName, items and total are required", apperr.ErrValidation)
	}

	items := make([]LineItem, 0, len(in.Items))
	sum := decimal.Zero
	for i, it := range in.Items {
		it.Name = strings.TrimSpace(it.Name)
		switch {
		case it.Name == "":
			return nil, fmt.Errorf("%w: items[%d].name is required", apperr.ErrValidation, i)
		case it.Quantity < 1:
			return nil, fmt.Errorf("%w: items[%d].quantity must be at least 1", apperr.ErrValidation, i)
		case it.Price.IsNegative():
			return nil, fmt.Errorf("%w: items[%d].price must be non-negative", apperr.ErrValidation, i)
		}
		sum = sum.Add(it.Subtotal())
		items = append(items, it)
	}
	if sum.Sub(*in.Total).Abs().GreaterThan(totalTolerance) {
		return nil, fmt.Errorf("%w: total %s does not match items sum %s",
			apperr.ErrValidation, in.Total.StringFixed(2), sum.StringFixed(2))
	}

	now := s.now().In(s.loc)
	t := &Transaction{
		ID:            uuid.NewString(),
		CustomerName:  name,
		Items:         items,
		Total:         sum,
		Timestamp:     now.UnixMilli(),
		Time:          now.Format(calendar.TimeLayout),
		Date:          now.Format(calendar.DateLayout),
		UserID:        userID,
		KitchenStatus: StatusPreparing,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	log.Printf("[transaction] created id=%s receipt=%s items=%d total=%s", t.ID, t.ReceiptNumber, len(items), sum.StringFixed(2))
	return t, nil
}

func (s *Service) Get(ctx context.Context, idOrReceipt string) (*Transaction, error) {
	return s.repo.GetByID(ctx, idOrReceipt)
}

func (s *Service) List(ctx context.Context, q Query) ([]Transaction, error) {
	return s.repo.List(ctx, q)
}

// ListByDateRange keeps transactions whose calendar date falls in [start, end].
func (s *Service) ListByDateRange(ctx context.Context, start, end time.Time) ([]Transaction, error) {
	start, end = calendar.Day(start, s.loc), calendar.Day(end, s.loc)
	return s.repo.List(ctx, Query{Range: calendar.Range{Start: &start, End: &end}})
}

// ListByStatus backs the kitchen board, which polls it every few seconds.
func (s *Service) ListByStatus(ctx context.Context, status KitchenStatus) ([]Transaction, error) {
	return s.repo.List(ctx, Query{Status: status})
}

func (s *Service) UpdateKitchenStatus(ctx context.Context, idOrReceipt string, status KitchenStatus) (*Transaction, error) {
	t, err := s.repo.UpdateKitchenStatus(ctx, idOrReceipt, status)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		log.Printf("[transaction] ignored kitchen status %q for %s", status, t.ID)
	}
	return t, nil
}

// Void removes the transaction. No trace of it is kept.
func (s *Service) Void(ctx context.Context, idOrReceipt string) error {
	if err := s.repo.Delete(ctx, idOrReceipt); err != nil {
		return err
	}
	log.Printf("[transaction] voided %s", idOrReceipt)
	return nil
}
