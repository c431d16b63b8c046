package product

import "github.com/shopspring/decimal"

// DefaultCatalog is the demo catalog loaded when SEED_PRODUCTS is on.
func DefaultCatalog() []Product {
	p := func(id int, name, sku string, stock int, price, category string) Product {
		return Product{ID: id, Name: name, SKU: sku, Stock: stock, Price: decimal.RequireFromString(price), Category: category}
	}
	return []Product{
		p(1, "Product A", "PRD-001", 45, "22.75", "Electronics"),
		p(2, "Product B", "PRD-002", 32, "25.00", "Electronics"),
		p(3, "Product C", "PRD-003", 18, "22.50", "Clothing"),
		p(4, "Product D", "PRD-004", 67, "45.00", "Home"),
		p(5, "Product E", "PRD-005", 12, "15.25", "Clothing"),
		p(6, "Product F", "PRD-006", 89, "30.00", "Electronics"),
		p(7, "Product G", "PRD-007", 24, "25.00", "Home"),
		p(8, "Product H", "PRD-008", 56, "40.00", "Electronics"),
	}
}
