package inventory

import (
	"time"

	"github.com/shopspring/decimal"
	"stockledger/pkg/db/models"
	"stockledger/pkg/enums"
)

// CreateProductInput holds the payload to register a product.
type CreateProductInput struct {
	Name  string          `json:"name" validate:"required"`
	Price decimal.Decimal `json:"price" validate:"gte=0"`
}

// AddSupplierInput holds the payload to register a supplier.
type AddSupplierInput struct {
	Name    string `json:"name" validate:"required"`
	Contact string `json:"contact" validate:"required"`
}

// AddStockInput records an inbound stock movement for a product, optionally
// attributed to a supplier.
type AddStockInput struct {
	ProductID  uint  `json:"product_id"`
	SupplierID *uint `json:"supplier_id,omitempty"`
	Quantity   int   `json:"quantity" validate:"gt=0"`
}

// RemoveStockInput records an outbound stock movement for a product.
type RemoveStockInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity" validate:"gt=0"`
}

// UpdateProductPriceInput overwrites the price of an existing product.
type UpdateProductPriceInput struct {
	ProductID uint            `json:"product_id"`
	NewPrice  decimal.Decimal `json:"new_price" validate:"gte=0"`
}

// ProductDTO represents a product row returned to callers.
type ProductDTO struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// SupplierDTO represents a supplier row returned to callers.
type SupplierDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// HistoryEntry is one ledger transaction for a product, annotated with the
// supplier name or a placeholder when the supplier reference is null or
// dangling.
type HistoryEntry struct {
	ID           uint                  `json:"id"`
	Date         time.Time             `json:"date"`
	Quantity     int                   `json:"quantity"`
	Type         enums.TransactionType `json:"type"`
	SupplierName string                `json:"supplier_name"`
}

// NewProductDTO builds a DTO from the persisted model.
func NewProductDTO(product *models.Product) *ProductDTO {
	return &ProductDTO{
		ID:    product.ID,
		Name:  product.Name,
		Price: product.Price,
		Stock: product.Stock,
	}
}

// NewSupplierDTO builds a DTO from the persisted model.
func NewSupplierDTO(supplier *models.Supplier) *SupplierDTO {
	return &SupplierDTO{
		ID:      supplier.ID,
		Name:    supplier.Name,
		Contact: supplier.Contact,
	}
}
