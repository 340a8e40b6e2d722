package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderItem snapshots one cart line as the kiosk submitted it.
type OrderItem struct {
	ID                  uuid.UUID       `gorm:"column:id;size:36;primaryKey"`
	OrderID             string          `gorm:"column:order_id;size:64;not null"`
	LineNo              int             `gorm:"column:line_no;not null"`
	ItemID              string          `gorm:"column:item_id;size:64;not null"`
	Name                string          `gorm:"column:name;size:255;not null"`
	Price               decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Quantity            int             `gorm:"column:quantity;not null"`
	Variations          pq.StringArray  `gorm:"column:variations;type:text"`
	SpecialInstructions *string         `gorm:"column:special_instructions"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
