package models

import (
	"time"

	"stockledger/pkg/enums"
)

// StockTransaction records an immutable stock movement for a product.
//
// Supplier references are deliberately unconstrained at the database level:
// suppliers may be deleted after the fact, and historical rows keep their
// now-dangling supplier_id. Read paths resolve the name with a LEFT JOIN and
// fall back to a placeholder.
type StockTransaction struct {
	ID         uint                  `gorm:"column:id;primaryKey"`
	ProductID  uint                  `gorm:"column:product_id;not null;index:stock_transactions_product_id_idx"`
	SupplierID *uint                 `gorm:"column:supplier_id"`
	Quantity   int                   `gorm:"column:quantity;not null;check:quantity > 0"`
	Date       time.Time             `gorm:"column:date;type:date;not null"`
	Type       enums.TransactionType `gorm:"column:type;type:varchar(8);not null;check:chk_stock_transactions_type,type IN ('IN','OUT')"`
	CreatedAt  time.Time             `gorm:"column:created_at;autoCreateTime"`
}
