package transaction

import "github.com/shopspring/decimal"

// KitchenStatus is the fulfillment state shown on the kitchen board. Both
// states are reachable from each other.
type KitchenStatus string

const (
	StatusPreparing KitchenStatus = "preparing"
	StatusCompleted KitchenStatus = "completed"
)

func (s KitchenStatus) Valid() bool { return s == StatusPreparing || s == StatusCompleted }

// LineItem is a snapshot of a product at the time of sale.
type LineItem struct {
	ProductID int             `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal is price*quantity at full precision.
func (it LineItem) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

type Transaction struct {
	ID            string          `json:"id"`
	ReceiptNumber string          `json:"receiptNumber"`
	CustomerName  string          `json:"customerName"`
	Items         []LineItem      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Timestamp     int64           `json:"timestamp"` // epoch millis
	Time          string          `json:"time"`
	Date          string          `json:"date"`
	UserID        *int            `json:"userId,omitempty"`
	KitchenStatus KitchenStatus   `json:"kitchenStatus,omitempty"`
}

func (t Transaction) clone() Transaction {
	cp := t
	cp.Items = append([]LineItem(nil), t.Items...)
	if t.UserID != nil {
		uid := *t.UserID
		cp.UserID = &uid
	}
	return cp
}
