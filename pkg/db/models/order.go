package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
)

// Order is the locally persisted record of a kiosk checkout.
type Order struct {
	ID             string            `gorm:"column:id;primaryKey;size:64"`
	TableNumber    string            `gorm:"column:table_number;size:32;not null"`
	TableID        *string           `gorm:"column:table_id;size:64"`
	Subtotal       decimal.Decimal   `gorm:"column:subtotal;type:numeric(12,2);not null"`
	Discount       decimal.Decimal   `gorm:"column:discount;type:numeric(12,2);not null"`
	CouponCode     *string           `gorm:"column:coupon_code;size:64"`
	CGST           decimal.Decimal   `gorm:"column:cgst;type:numeric(12,2);not null"`
	SGST           decimal.Decimal   `gorm:"column:sgst;type:numeric(12,2);not null"`
	Total          decimal.Decimal   `gorm:"column:total;type:numeric(12,2);not null"`
	CustomerName   *string           `gorm:"column:customer_name;size:255"`
	CustomerMobile *string           `gorm:"column:customer_mobile;size:32"`
	Status         enums.OrderStatus `gorm:"column:status;size:32;not null"`
	POSOrderID     *string           `gorm:"column:pos_order_id;size:64"`
	POSSyncError   *string           `gorm:"column:pos_sync_error"`
	Items          []OrderItem       `gorm:"foreignKey:OrderID;references:ID"`
	CreatedAt      time.Time         `gorm:"column:created_at;autoCreateTime"`
}

func (Order) TableName() string {
	return "orders"
}
