package product

import "github.com/shopspring/decimal"

// Product is a sellable item. Price travels as a decimal string to avoid
// float rounding.
type Product struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	SKU      string          `json:"sku"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Image    string          `json:"image,omitempty"`
}

// ListResponse represents the list of products.
// swagger:model
type ListResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

// Response wraps a single product.
// swagger:model
type Response struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
	Message string  `json:"message,omitempty"`
}

// CreateProductRequest payload of creation. Pointer fields tell "absent"
// apart from zero values.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name     *string          `json:"name"     example:"Cold Brew"`
	SKU      string           `json:"sku"      example:"PRD-009"`
	Price    *decimal.Decimal `json:"price"    swaggertype:"string" example:"4.50"`
	Stock    *int             `json:"stock"    example:"30"`
	Category *string          `json:"category" example:"Drinks"`
	Image    string           `json:"image"`
}

// UpdateProductRequest payload of partial update. Only present fields apply.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name     *string          `json:"name"`
	SKU      *string          `json:"sku"`
	Price    *decimal.Decimal `json:"price" swaggertype:"string"`
	Stock    *int             `json:"stock"`
	Category *string          `json:"category"`
	Image    *string          `json:"image"`
}

// Empty reports whether the request carries no field at all.
func (u UpdateProductRequest) Empty() bool {
	return u.Name == nil && u.SKU == nil && u.Price == nil && u.Stock == nil &&
		u.Category == nil && u.Image == nil
}
