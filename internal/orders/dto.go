package orders

import (
	"time"

	"github.com/Abhi-mygenie/Kiosk/pkg/db/models"
	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	"github.com/Abhi-mygenie/Kiosk/pkg/pagination"
)

// CartItemInput is one line of the kiosk cart.
type CartItemInput struct {
	ItemID              string              `json:"item_id" validate:"required"`
	Name                string              `json:"name" validate:"required"`
	Price               float64             `json:"price" validate:"gte=0"`
	Quantity            int                 `json:"quantity" validate:"min=1"`
	Variations          []string            `json:"variations"`
	// GroupedVariations is accepted from the kiosk cart and ignored; Variations is what gets stored.
	GroupedVariations   map[string][]string `json:"grouped_variations"`
	SpecialInstructions *string             `json:"special_instructions"`
}

// CreateOrderRequest is the body of POST /orders. Aggregates are client supplied.
type CreateOrderRequest struct {
	TableNumber    string          `json:"table_number" validate:"required"`
	TableID        *string         `json:"table_id"`
	Items          []CartItemInput `json:"items" validate:"required,min=1,dive"`
	Subtotal       *float64        `json:"subtotal" validate:"omitempty,gte=0"`
	Discount       float64         `json:"discount" validate:"gte=0"`
	CouponCode     *string         `json:"coupon_code"`
	CGST           float64         `json:"cgst" validate:"gte=0"`
	SGST           float64         `json:"sgst" validate:"gte=0"`
	Total          float64         `json:"total" validate:"gte=0"`
	CustomerName   *string         `json:"customer_name"`
	GuestName      *string         `json:"guest_name"`
	CustomerMobile *string         `json:"customer_mobile"`
}

// customerName prefers customer_name and falls back to the legacy guest_name.
func (r CreateOrderRequest) customerName() *string {
	if r.CustomerName != nil && *r.CustomerName != "" {
		return r.CustomerName
	}
	return r.GuestName
}

// ListParams narrows an order listing; Status is optional.
type ListParams struct {
	Status string
	pagination.Params
}

type ListResult struct {
	Orders     []OrderDTO `json:"orders"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

type CartItemDTO struct {
	ItemID              string   `json:"item_id"`
	Name                string   `json:"name"`
	Price               float64  `json:"price"`
	Quantity            int      `json:"quantity"`
	Variations          []string `json:"variations"`
	SpecialInstructions *string  `json:"special_instructions,omitempty"`
}

// OrderDTO is the persisted order as returned to the kiosk.
type OrderDTO struct {
	ID             string            `json:"id"`
	TableNumber    string            `json:"table_number"`
	TableID        *string           `json:"table_id"`
	Items          []CartItemDTO     `json:"items"`
	Subtotal       float64           `json:"subtotal"`
	Discount       float64           `json:"discount"`
	CouponCode     *string           `json:"coupon_code"`
	CGST           float64           `json:"cgst"`
	SGST           float64           `json:"sgst"`
	Total          float64           `json:"total"`
	CustomerName   *string           `json:"customer_name"`
	CustomerMobile *string           `json:"customer_mobile"`
	Status         enums.OrderStatus `json:"status"`
	POSOrderID     *string           `json:"pos_order_id"`
	POSSyncError   *string           `json:"pos_sync_error,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

func toDTO(order *models.Order) *OrderDTO {
	items := make([]CartItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		variations := []string(item.Variations)
		if variations == nil {
			variations = []string{}
		}
		items = append(items, CartItemDTO{
			ItemID:              item.ItemID,
			Name:                item.Name,
			Price:               item.Price.InexactFloat64(),
			Quantity:            item.Quantity,
			Variations:          variations,
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	return &OrderDTO{
		ID:             order.ID,
		TableNumber:    order.TableNumber,
		TableID:        order.TableID,
		Items:          items,
		Subtotal:       order.Subtotal.Round(2).InexactFloat64(),
		Discount:       order.Discount.Round(2).InexactFloat64(),
		CouponCode:     order.CouponCode,
		CGST:           order.CGST.Round(2).InexactFloat64(),
		SGST:           order.SGST.Round(2).InexactFloat64(),
		Total:          order.Total.Round(2).InexactFloat64(),
		CustomerName:   order.CustomerName,
		CustomerMobile: order.CustomerMobile,
		Status:         order.Status,
		POSOrderID:     order.POSOrderID,
		POSSyncError:   order.POSSyncError,
		CreatedAt:      order.CreatedAt,
	}
}
