package transaction

import "github.com/shopspring/decimal"

// CreateTransactionRequest payload of checkout.
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	CustomerName string           `json:"customerName" example:"Walk-in"`
	Items        []LineItem       `json:"items"`
	Total        *decimal.Decimal `json:"total" swaggertype:"string" example:"45.50"`
}

// UpdateStatusRequest payload of kitchen status change.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	KitchenStatus KitchenStatus `json:"kitchenStatus" example:"completed"`
}

// Response wraps a single transaction.
// swagger:model
type Response struct {
	Success     bool        `json:"success"`
	Transaction Transaction `json:"transaction"`
	Message     string      `json:"message,omitempty"`
}

// ListResponse wraps a list of transactions.
// swagger:model
type ListResponse struct {
	Success      bool          `json:"success"`
	Transactions []Transaction `json:"transactions"`
}
