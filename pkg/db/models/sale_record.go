package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/salesbridge/pkg/enums"
)

// SaleRecord is the canonical shape both sources are reconciled into before
// the merged set replaces the destination table.
type SaleRecord struct {
	Source         enums.SaleSource `gorm:"column:source;not null"`
	ProductID      string           `gorm:"column:product_id;not null"`
	ProductName    string           `gorm:"column:product_name;not null"`
	Quantity       int              `gorm:"column:quantity;not null"`
	PriceUSD       decimal.Decimal  `gorm:"column:price_usd;type:numeric;not null"`
	SaleTimestamp  time.Time        `gorm:"column:sale_timestamp;not null"`
	TotalSaleValue decimal.Decimal  `gorm:"column:total_sale_value;type:numeric;not null"`
}

// TableName returns the default destination table; the loader overrides it
// per run from configuration.
func (SaleRecord) TableName() string {
	return "master_sales"
}
