package report

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeMC777/pos-service/internal/apperr"
	"github.com/MikeMC777/pos-service/internal/calendar"
	"github.com/MikeMC777/pos-service/internal/product"
	"github.com/MikeMC777/pos-service/internal/transaction"
)

type ProductLister interface {
	List(ctx context.Context) ([]product.Product, error)
	Movements(ctx context.Context) []product.Movement
}

type TransactionLister interface {
	List(ctx context.Context, q transaction.Query) ([]transaction.Transaction, error)
}

type Options struct {
	LowStockThreshold int
	TopN              int
	RecentLimit       int
	Location          *time.Location
}

// Dashboard is the payload of the admin landing page.
type Dashboard struct {
	Stats              DashboardStats            `json:"stats"`
	RecentTransactions []transaction.Transaction `json:"recentTransactions"`
}

// Service takes snapshots from the stores and runs the aggregations on them.
type Service struct {
	products ProductLister
	txs      TransactionLister
	opts     Options
	now      func() time.Time
}

func NewService(products ProductLister, txs TransactionLister, opts Options) *Service {
	if opts.LowStockThreshold <= 0 {
		opts.LowStockThreshold = DefaultLowStockThreshold
	}
	if opts.TopN <= 0 {
		opts.TopN = DefaultTopN
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = DefaultTopN
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Service{products: products, txs: txs, opts: opts, now: time.Now}
}

// WithClock replaces the time source. Tests only.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	txs, err := s.txs.List(ctx, transaction.Query{})
	if err != nil {
		return nil, fmt.Errorf("%w: list transactions: %v", apperr.ErrInternal, err)
	}
	stats := Summarize(txs, s.products.Movements(ctx), s.now(), s.opts.Location)
	return &Dashboard{Stats: stats.Rounded(), RecentTransactions: Recent(txs, s.opts.RecentLimit)}, nil
}

func (s *Service) Sales(ctx context.Context, period string) (*SalesReport, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return nil, err
	}
	span := Window(p, s.now(), s.opts.Location)
	txs, err := s.txs.List(ctx, transaction.Query{Range: span.Range()})
	if err != nil {
		return nil, fmt.Errorf("%w: list transactions: %v", apperr.ErrInternal, err)
	}
	rep := Sales(txs, s.opts.TopN).Rounded()
	rep.Period = p
	rep.StartDate = span.Start.Format(calendar.QueryLayout)
	rep.EndDate = span.End.Format(calendar.QueryLayout)
	return &rep, nil
}

func (s *Service) Inventory(ctx context.Context) (*InventoryAlerts, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list products: %v", apperr.ErrInternal, err)
	}
	txs, err := s.txs.List(ctx, transaction.Query{})
	if err != nil {
		return nil, fmt.Errorf("%w: list transactions: %v", apperr.ErrInternal, err)
	}
	alerts := Inventory(products, txs, s.opts.LowStockThreshold, s.opts.TopN)
	return &alerts, nil
}
