package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhi-mygenie/Kiosk/pkg/db/models"
	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	"github.com/Abhi-mygenie/Kiosk/pkg/pagination"
	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
)

// Repository persists kiosk orders. Orders are append-only.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, filter ListFilter) ([]models.Order, error)
}

// ListFilter selects a page of orders, newest first. Limit is the raw row count to fetch.
type ListFilter struct {
	Status *enums.OrderStatus
	After  *pagination.Cursor
	Limit  int
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type orderPlacer interface {
	PlaceOrder(ctx context.Context, token string, payload pos.OrderPayload) pos.PlaceOrderResult
}
