package orders

import (
	"context"

	"gorm.io/gorm"

	"github.com/Abhi-mygenie/Kiosk/internal/repo"
	"github.com/Abhi-mygenie/Kiosk/pkg/db/models"
)

type repository struct {
	repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{Base: r.Bind(tx)}
}

// Create inserts the order together with its items.
func (r *repository) Create(ctx context.Context, order *models.Order) error {
	return r.DB(ctx).Create(order).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.DB(ctx).
		Preload("Items", orderedItems).
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List returns orders by created_at DESC, id DESC, starting after the cursor.
func (r *repository) List(ctx context.Context, filter ListFilter) ([]models.Order, error) {
	q := r.DB(ctx).Model(&models.Order{}).Preload("Items", orderedItems)
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.After != nil {
		q = q.Where("(created_at < ?) OR (created_at = ? AND id < ?)", filter.After.CreatedAt, filter.After.CreatedAt, filter.After.ID)
	}

	var rows []models.Order
	if err := q.Order("created_at DESC").Order("id DESC").Limit(filter.Limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("line_no ASC")
}
