package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item together with its current on-hand stock count.
type Product struct {
	ID        uint            `gorm:"column:id;primaryKey"`
	Name      string          `gorm:"column:name;not null"`
	Price     decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null;check:price >= 0"`
	Stock     int             `gorm:"column:stock;not null;default:0"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
