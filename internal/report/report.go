// Package report turns snapshots of transactions, products and stock
// movements into dashboard statistics, sales reports and inventory alerts.
// The aggregation functions are pure and accumulate exact decimals; rounding
// to two places happens only in the Rounded methods used for presentation.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/pos-service/internal/calendar"
	"github.com/MikeMC777/pos-service/internal/product"
	"github.com/MikeMC777/pos-service/internal/transaction"
)

const (
	DefaultLowStockThreshold = 20
	DefaultTopN              = 5
	// UnknownCategory labels fast movers that no longer match a product.
	UnknownCategory = "Unknown"

	percentPrecision = 8
	displayPlaces    = 2
)

var hundred = decimal.NewFromInt(100)

type PeriodStats struct {
	Amount       decimal.Decimal `json:"amount"`
	Transactions int             `json:"transactions"`
	Change       decimal.Decimal `json:"change"`
}

type MovementStats struct {
	In  int `json:"in"`
	Out int `json:"out"`
	Net int `json:"net"`
}

type DashboardStats struct {
	Today            PeriodStats   `json:"today"`
	Week             PeriodStats   `json:"week"`
	Month            PeriodStats   `json:"month"`
	Year             PeriodStats   `json:"year"`
	ProductMovements MovementStats `json:"productMovements"`
}

type TopProduct struct {
	ProductID  int             `json:"productId"`
	Name       string          `json:"name"`
	Sales      decimal.Decimal `json:"sales"`
	Quantity   int             `json:"quantity"`
	Percentage decimal.Decimal `json:"percentage"`
}

type SalesReport struct {
	Period            Period          `json:"period,omitempty"`
	StartDate         string          `json:"startDate,omitempty"`
	EndDate           string          `json:"endDate,omitempty"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalTransactions int             `json:"totalTransactions"`
	TopProducts       []TopProduct    `json:"topProducts"`
}

type InventoryAlert struct {
	ProductID    int    `json:"productId"`
	Name         string `json:"name"`
	CurrentStock int    `json:"currentStock"`
	MinThreshold int    `json:"minThreshold"`
	Category     string `json:"category"`
}

type FastMovingProduct struct {
	ProductID  int    `json:"productId"`
	Name       string `json:"name"`
	SalesCount int    `json:"salesCount"`
	Category   string `json:"category"`
}

type InventoryAlerts struct {
	LowStock   []InventoryAlert    `json:"lowStock"`
	OutOfStock []InventoryAlert    `json:"outOfStock"`
	FastMoving []FastMovingProduct `json:"fastMoving"`
}

// Filter keeps the transactions whose calendar day falls inside span.
func Filter(txs []transaction.Transaction, span Span, loc *time.Location) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(txs))
	for _, t := range txs {
		if span.Contains(calendar.FromMillis(t.Timestamp, loc)) {
			out = append(out, t)
		}
	}
	return out
}

// Summarize computes totals for today, the trailing week, month to date and
// year to date, each compared with the equivalent prior window, plus today's
// stock movement counts.
func Summarize(txs []transaction.Transaction, moves []product.Movement, now time.Time, loc *time.Location) DashboardStats {
	stats := func(p Period) PeriodStats {
		cur := sum(Filter(txs, Window(p, now, loc), loc))
		prev := sum(Filter(txs, PriorWindow(p, now, loc), loc))
		cur.Change = change(cur.Amount, prev.Amount)
		return cur
	}
	return DashboardStats{
		Today:            stats(PeriodDay),
		Week:             stats(PeriodWeek),
		Month:            stats(PeriodMonth),
		Year:             stats(PeriodYear),
		ProductMovements: movementsOn(moves, Window(PeriodDay, now, loc), loc),
	}
}

// Sales totals the given transactions and ranks products by revenue. Line
// items are grouped by product id; the first name seen is kept for display.
// Ties keep first-seen order.
func Sales(txs []transaction.Transaction, topN int) SalesReport {
	if topN <= 0 {
		topN = DefaultTopN
	}
	total := decimal.Zero
	var order []int
	groups := map[int]*TopProduct{}
	for _, t := range txs {
		total = total.Add(t.Total)
		for _, it := range t.Items {
			g, ok := groups[it.ProductID]
			if !ok {
				g = &TopProduct{ProductID: it.ProductID, Name: it.Name, Sales: decimal.Zero}
				groups[it.ProductID] = g
				order = append(order, it.ProductID)
			}
			g.Sales = g.Sales.Add(it.Subtotal())
			g.Quantity += it.Quantity
		}
	}

	top := make([]TopProduct, 0, len(order))
	for _, id := range order {
		g := groups[id]
		g.Percentage = decimal.Zero
		if total.IsPositive() {
			// truncated so the shares never add up past 100
			g.Percentage, _ = g.Sales.Mul(hundred).QuoRem(total, percentPrecision)
		}
		top = append(top, *g)
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Sales.GreaterThan(top[j].Sales) })
	if len(top) > topN {
		top = top[:topN]
	}
	return SalesReport{TotalSales: total, TotalTransactions: len(txs), TopProducts: top}
}

// Inventory flags low (0 < stock < threshold) and empty stock, and ranks the
// fastest movers by quantity sold across every transaction given.
func Inventory(products []product.Product, txs []transaction.Transaction, threshold, topN int) InventoryAlerts {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	out := InventoryAlerts{
		LowStock:   []InventoryAlert{},
		OutOfStock: []InventoryAlert{},
		FastMoving: []FastMovingProduct{},
	}
	byID := make(map[int]product.Product, len(products))
	byName := make(map[string]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
		if _, dup := byName[p.Name]; !dup {
			byName[p.Name] = p
		}
		alert := InventoryAlert{ProductID: p.ID, Name: p.Name, CurrentStock: p.Stock, MinThreshold: threshold, Category: p.Category}
		switch {
		case p.Stock == 0:
			out.OutOfStock = append(out.OutOfStock, alert)
		case p.Stock > 0 && p.Stock < threshold:
			out.LowStock = append(out.LowStock, alert)
		}
	}

	var order []int
	groups := map[int]*FastMovingProduct{}
	for _, t := range txs {
		for _, it := range t.Items {
			g, ok := groups[it.ProductID]
			if !ok {
				g = &FastMovingProduct{ProductID: it.ProductID, Name: it.Name, Category: UnknownCategory}
				if p, ok := byID[it.ProductID]; ok {
					g.Category = p.Category
				} else if p, ok := byName[it.Name]; ok {
					g.Category = p.Category
				}
				groups[it.ProductID] = g
				order = append(order, it.ProductID)
			}
			g.SalesCount += it.Quantity
		}
	}
	for _, id := range order {
		out.FastMoving = append(out.FastMoving, *groups[id])
	}
	sort.SliceStable(out.FastMoving, func(i, j int) bool {
		return out.FastMoving[i].SalesCount > out.FastMoving[j].SalesCount
	})
	if len(out.FastMoving) > topN {
		out.FastMoving = out.FastMoving[:topN]
	}
	return out
}

// Recent returns at most n transactions from a most-recent-first list.
func Recent(txs []transaction.Transaction, n int) []transaction.Transaction {
	if n < 0 {
		n = 0
	}
	if len(txs) > n {
		txs = txs[:n]
	}
	return append([]transaction.Transaction{}, txs...)
}

func sum(txs []transaction.Transaction) PeriodStats {
	s := PeriodStats{Amount: decimal.Zero, Change: decimal.Zero}
	for _, t := range txs {
		s.Amount = s.Amount.Add(t.Total)
		s.Transactions++
	}
	return s
}

// change is the percentage growth of cur over prev: 0 when both are zero,
// 100 when there is no prior amount to compare with.
func change(cur, prev decimal.Decimal) decimal.Decimal {
	if prev.IsZero() {
		if cur.IsZero() {
			return decimal.Zero
		}
		return hundred
	}
	return cur.Sub(prev).Mul(hundred).DivRound(prev, percentPrecision)
}

func movementsOn(moves []product.Movement, span Span, loc *time.Location) MovementStats {
	var s MovementStats
	for _, m := range moves {
		if !span.Contains(calendar.FromMillis(m.Timestamp, loc)) {
			continue
		}
		switch m.Type {
		case product.MovementIn:
			s.In += m.Quantity
		case product.MovementOut:
			s.Out += m.Quantity
		}
	}
	s.Net = s.In - s.Out
	return s
}

// Rounded returns a copy with money and percentages at two decimal places.
func (d DashboardStats) Rounded() DashboardStats {
	r := func(p PeriodStats) PeriodStats {
		p.Amount = p.Amount.Round(displayPlaces)
		p.Change = p.Change.Round(displayPlaces)
		return p
	}
	d.Today, d.Week, d.Month, d.Year = r(d.Today), r(d.Week), r(d.Month), r(d.Year)
	return d
}

// Rounded rounds money to two places. Percentages are truncated instead, so
// the displayed shares still sum to at most 100.
func (s SalesReport) Rounded() SalesReport {
	s.TotalSales = s.TotalSales.Round(displayPlaces)
	top := make([]TopProduct, len(s.TopProducts))
	for i, p := range s.TopProducts {
		p.Sales = p.Sales.Round(displayPlaces)
		p.Percentage = p.Percentage.Truncate(displayPlaces)
		top[i] = p
	}
	s.TopProducts = top
	return s
}
