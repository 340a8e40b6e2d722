package pos

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Abhi-mygenie/Kiosk/pkg/types"
)

// RawCategory is the nested category object on a POS food record.
type RawCategory struct {
	ID    types.FlexString `json:"id"`
	Name  string           `json:"name"`
	Image string           `json:"image"`
}

// RawVariationValue is one selectable value inside a POS variation group.
type RawVariationValue struct {
	Label       string           `json:"label"`
	OptionPrice types.FlexString `json:"optionPrice"`
}

// RawVariationGroup mirrors the POS variation payload; every scalar arrives loosely typed.
type RawVariationGroup struct {
	Name     string              `json:"name"`
	Type     string              `json:"type"`
	Required types.FlexString    `json:"required"`
	Min      types.FlexString    `json:"min"`
	Max      types.FlexString    `json:"max"`
	Values   []RawVariationValue `json:"values"`
}

type RawAddon struct {
	ID    types.FlexString `json:"id"`
	Name  string           `json:"name"`
	Price types.FlexString `json:"price"`
}

// RawFood is a sellable item as the POS lists it.
type RawFood struct {
	ID            types.FlexString    `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Price         types.FlexString    `json:"price"`
	Discount      types.FlexString    `json:"discount"`
	Tax           types.FlexString    `json:"tax"`
	Complementary types.FlexString    `json:"complementary"`
	Category      RawCategory         `json:"category"`
	Image         string              `json:"image"`
	Status        types.FlexString    `json:"status"`
	Kcal          types.FlexString    `json:"kcal"`
	PortionSize   types.FlexString    `json:"portion_size"`
	Allergens     types.FlexList      `json:"allergens"`
	Variations    []RawVariationGroup `json:"variations"`
	AddOns        []RawAddon          `json:"add_ons"`
}

// RawTable is one row of the POS table/room configuration.
type RawTable struct {
	ID      types.FlexString `json:"id"`
	TableNo types.FlexString `json:"table_no"`
	Title   string           `json:"title"`
	Waiter  types.FlexString `json:"waiter"`
	RType   string           `json:"rtype"`
	Status  types.FlexString `json:"status"`
}

// LoginResult is the POS session returned by Authenticate.
type LoginResult struct {
	Token         string   `json:"token"`
	RoleName      string   `json:"role_name"`
	Role          []string `json:"role"`
	FirebaseToken string   `json:"firebase_token"`
	FirstLogin    any      `json:"first_login"`
}

// CartLine is one POS order line. Variation and add-on fields are always sent empty.
type CartLine struct {
	FoodID         string   `json:"food_id"`
	Quantity       int      `json:"quantity"`
	FoodAmount     float64  `json:"food_amount"`
	FoodLevelNotes string   `json:"food_level_notes"`
	Variations     []string `json:"variations"`
	AddOnIDs       []string `json:"add_on_ids"`
	AddOnQtys      []int    `json:"add_on_qtys"`
}

// OrderPayload is the body sent to the POS place-order endpoint.
type OrderPayload struct {
	Cart                []CartLine `json:"cart"`
	TableID             string     `json:"table_id"`
	OrderAmount         float64    `json:"order_amount"`
	OrderSubTotalAmount float64    `json:"order_sub_total_amount"`
	TotalGSTTaxAmount   float64    `json:"total_gst_tax_amount"`
	DiscountAmount      float64    `json:"discount_amount"`
	CouponCode          string     `json:"coupon_code"`
	CustName            string     `json:"cust_name"`
	CustMobile          string     `json:"cust_mobile"`
}

// PlaceOrderResult is the discriminated outcome of PlaceOrder.
type PlaceOrderResult struct {
	Success    bool
	OrderID    string
	Message    string
	Data       json.RawMessage
	Error      string
	StatusCode int
}

// StatusError carries an unexpected POS HTTP status.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("pos %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("pos %s: status %d: %s", e.Op, e.Status, body)
}

// UpstreamStatus exposes the status to error dumps.
func (e *StatusError) UpstreamStatus() int {
	return e.Status
}
