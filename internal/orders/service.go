package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Abhi-mygenie/Kiosk/pkg/db"
	"github.com/Abhi-mygenie/Kiosk/pkg/db/models"
	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	pkgerrors "github.com/Abhi-mygenie/Kiosk/pkg/errors"
	"github.com/Abhi-mygenie/Kiosk/pkg/logger"
	"github.com/Abhi-mygenie/Kiosk/pkg/pagination"
	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
)

// Service submits kiosk orders to the POS and keeps the local record.
type Service interface {
	Submit(ctx context.Context, token string, req CreateOrderRequest) (*OrderDTO, error)
	Get(ctx context.Context, id string) (*OrderDTO, error)
	List(ctx context.Context, params ListParams) (*ListResult, error)
}

// ServiceParams bundles the dependencies required to build an orders service.
type ServiceParams struct {
	Repo   Repository
	Tx     txRunner
	POS    orderPlacer
	Logger *logger.Logger
	// AdoptPOSID replaces the local id with the POS order id when one is returned.
	AdoptPOSID bool
	Clock      func() time.Time
	NewID      func() string
}

type service struct {
	repo       Repository
	tx         txRunner
	pos        orderPlacer
	logger     *logger.Logger
	adoptPOSID bool
	now        func() time.Time
	newID      func() string
}

// NewService constructs the order assembler.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("orders repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.POS == nil {
		return nil, fmt.Errorf("pos gateway is required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	newID := params.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	return &service{
		repo:       params.Repo,
		tx:         params.Tx,
		pos:        params.POS,
		logger:     params.Logger,
		adoptPOSID: params.AdoptPOSID,
		now:        clock,
		newID:      newID,
	}, nil
}

// Submit places the order with the POS and persists the outcome. A POS failure is not a
// request failure: the order is stored and returned as pending_pos_sync.
func (s *service) Submit(ctx context.Context, token string, req CreateOrderRequest) (*OrderDTO, error) {
	if strings.TrimSpace(token) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authorization token required")
	}
	if strings.TrimSpace(req.TableNumber) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "table_number is required")
	}
	if len(req.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order must contain at least one item")
	}

	// the POS call and the insert complete even if the kiosk disconnects
	ctx = context.WithoutCancel(ctx)
	ctx = s.logger.WithTableNumber(ctx, req.TableNumber)

	order := s.buildOrder(req)
	payload := buildPayload(req, order)

	result := s.pos.PlaceOrder(ctx, token, payload)
	s.applyResult(order, result)

	ctx = s.logger.WithOrderID(ctx, order.ID)
	if order.Status == enums.OrderStatusPendingPOSSync {
		s.logger.Warn(s.logger.WithFields(ctx, map[string]any{
			"pos_status": result.StatusCode,
			"reason":     result.Error,
		}), "orders.pos_sync_failed")
	}

	if err := s.persist(ctx, order); err != nil {
		fields := map[string]any{"order_status": order.Status}
		if order.POSOrderID != nil {
			// the POS already holds this order; reconcile by hand
			fields["pos_order_id"] = *order.POSOrderID
		}
		s.logger.Error(s.logger.WithFields(ctx, fields), "orders.persist_failed", err)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "persist order")
	}

	s.logger.Info(s.logger.WithField(ctx, "order_status", order.Status), "orders.submitted")
	return toDTO(order), nil
}

func (s *service) Get(ctx context.Context, id string) (*OrderDTO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "order id is required")
	}
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return toDTO(order), nil
}

// List pages through stored orders, newest first. Filtering by pending_pos_sync gives
// operators the orders the POS never acknowledged.
func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	filter := ListFilter{Limit: pagination.LimitWithBuffer(params.Limit)}

	if raw := strings.TrimSpace(params.Status); raw != "" {
		status, err := enums.ParseOrderStatus(raw)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status filter")
		}
		filter.Status = &status
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	filter.After = cursor

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	result := &ListResult{Orders: make([]OrderDTO, 0, min(len(rows), limit))}
	if len(rows) > limit {
		last := rows[limit-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		rows = rows[:limit]
	}
	for i := range rows {
		result.Orders = append(result.Orders, *toDTO(&rows[i]))
	}
	return result, nil
}

func (s *service) buildOrder(req CreateOrderRequest) *models.Order {
	total := decimal.NewFromFloat(req.Total)
	subtotal := total
	if req.Subtotal != nil {
		subtotal = decimal.NewFromFloat(*req.Subtotal)
	}

	order := &models.Order{
		ID:             s.newID(),
		TableNumber:    strings.TrimSpace(req.TableNumber),
		TableID:        trimmedOrNil(req.TableID),
		Subtotal:       subtotal.Round(2),
		Discount:       decimal.NewFromFloat(req.Discount).Round(2),
		CouponCode:     trimmedOrNil(req.CouponCode),
		CGST:           decimal.NewFromFloat(req.CGST).Round(2),
		SGST:           decimal.NewFromFloat(req.SGST).Round(2),
		Total:          total.Round(2),
		CustomerName:   trimmedOrNil(req.customerName()),
		CustomerMobile: trimmedOrNil(req.CustomerMobile),
		Status:         enums.OrderStatusPending,
		CreatedAt:      s.now().UTC(),
	}

	order.Items = make([]models.OrderItem, 0, len(req.Items))
	for i, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ID:                  uuid.New(),
			OrderID:             order.ID,
			LineNo:              i + 1,
			ItemID:              item.ItemID,
			Name:                item.Name,
			Price:               decimal.NewFromFloat(item.Price),
			Quantity:            item.Quantity,
			Variations:          pq.StringArray(item.Variations),
			SpecialInstructions: trimmedOrNil(item.SpecialInstructions),
		})
	}
	return order
}

// buildPayload maps the cart to POS lines. Variation and add-on selections are not
// translated to POS identifiers, so those fields are always empty.
func buildPayload(req CreateOrderRequest, order *models.Order) pos.OrderPayload {
	lines := make([]pos.CartLine, 0, len(order.Items))
	for _, item := range order.Items {
		notes := ""
		if item.SpecialInstructions != nil {
			notes = *item.SpecialInstructions
		}
		lines = append(lines, pos.CartLine{
			FoodID:         item.ItemID,
			Quantity:       item.Quantity,
			FoodAmount:     item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2).InexactFloat64(),
			FoodLevelNotes: notes,
			Variations:     []string{},
			AddOnIDs:       []string{},
			AddOnQtys:      []int{},
		})
	}

	tableID := order.TableNumber
	if order.TableID != nil {
		tableID = *order.TableID
	}

	gst := decimal.NewFromFloat(req.CGST).Add(decimal.NewFromFloat(req.SGST))

	return pos.OrderPayload{
		Cart:                lines,
		TableID:             tableID,
		OrderAmount:         order.Total.InexactFloat64(),
		OrderSubTotalAmount: order.Subtotal.InexactFloat64(),
		TotalGSTTaxAmount:   gst.Round(2).InexactFloat64(),
		DiscountAmount:      order.Discount.InexactFloat64(),
		CouponCode:          valueOrEmpty(order.CouponCode),
		CustName:            valueOrEmpty(order.CustomerName),
		CustMobile:          valueOrEmpty(order.CustomerMobile),
	}
}

// applyResult performs the single pending -> confirmed|pending_pos_sync transition.
func (s *service) applyResult(order *models.Order, result pos.PlaceOrderResult) {
	if !result.Success {
		order.Status = enums.OrderStatusPendingPOSSync
		reason := strings.TrimSpace(result.Error)
		if reason == "" {
			reason = "pos order placement failed"
		}
		order.POSSyncError = &reason
		return
	}

	order.Status = enums.OrderStatusConfirmed
	if result.OrderID == "" {
		return
	}
	posID := result.OrderID
	order.POSOrderID = &posID
	if s.adoptPOSID {
		setOrderID(order, posID)
	}
}

// persist inserts the order once. When an adopted POS id collides with an existing
// row the order is stored under a fresh local id instead.
func (s *service) persist(ctx context.Context, order *models.Order) error {
	err := s.insert(ctx, order)
	if err == nil || !db.IsUniqueViolation(err) || order.POSOrderID == nil || order.ID != *order.POSOrderID {
		return err
	}
	s.logger.Warn(s.logger.WithField(ctx, "pos_order_id", *order.POSOrderID), "orders.pos_id_collision")
	setOrderID(order, s.newID())
	return s.insert(ctx, order)
}

func (s *service) insert(ctx context.Context, order *models.Order) error {
	return s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		return s.repo.WithTx(tx).Create(ctx, order)
	})
}

func setOrderID(order *models.Order, id string) {
	order.ID = id
	for i := range order.Items {
		order.Items[i].OrderID = id
	}
}

func trimmedOrNil(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func valueOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
