package menu

import "github.com/Abhi-mygenie/Kiosk/pkg/enums"

// AddOnsGroupName names the synthetic group that carries free-standing add-ons.
const AddOnsGroupName = "ADD-ONS"

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type VariationOption struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type VariationGroup struct {
	GroupName string              `json:"group_name"`
	Type      enums.SelectionType `json:"type"`
	Required  bool                `json:"required"`
	MinSelect int                 `json:"min_select"`
	MaxSelect int                 `json:"max_select"`
	Options   []VariationOption   `json:"options"`
}

// MenuItem is the normalized view of a POS food record. Money fields are rounded to 2 places.
type MenuItem struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	BasePrice       float64           `json:"base_price"`
	Discount        float64           `json:"discount"`
	TaxPercent      float64           `json:"tax_percent"`
	TaxAmount       float64           `json:"tax_amount"`
	Price           float64           `json:"price"`
	IsComplementary bool              `json:"is_complementary"`
	Image           string            `json:"image"`
	Category        string            `json:"category"`
	CategoryName    string            `json:"category_name"`
	Available       bool              `json:"available"`
	VariationGroups []VariationGroup  `json:"variation_groups"`
	Variations      []VariationOption `json:"variations"`
	Calories        int               `json:"calories"`
	PortionSize     string            `json:"portion_size"`
	Allergens       []string          `json:"allergens"`
}
