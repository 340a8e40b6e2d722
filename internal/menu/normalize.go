package menu

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
	"github.com/Abhi-mygenie/Kiosk/pkg/types"
)

var hundred = decimal.NewFromInt(100)

// Normalize maps a raw POS food record into a MenuItem. It performs no I/O.
func Normalize(raw pos.RawFood) MenuItem {
	groups := normalizeGroups(raw.Variations)
	if addons := addOnsGroup(raw.AddOns); addons != nil {
		groups = append(groups, *addons)
	}

	flat := make([]VariationOption, 0)
	for _, g := range groups {
		flat = append(flat, g.Options...)
	}

	p := computePrice(raw)

	allergens := []string(raw.Allergens)
	if allergens == nil {
		allergens = []string{}
	}

	return MenuItem{
		ID:              strings.TrimSpace(raw.ID.String()),
		Name:            raw.Name,
		Description:     raw.Description,
		BasePrice:       money(p.base),
		Discount:        money(p.discount),
		TaxPercent:      money(p.taxPercent),
		TaxAmount:       money(p.taxAmount),
		Price:           money(p.final),
		IsComplementary: p.complementary,
		Image:           raw.Image,
		Category:        strings.TrimSpace(raw.Category.ID.String()),
		CategoryName:    raw.Category.Name,
		Available:       types.ParseIntOr(raw.Status.String(), 0) == 1,
		VariationGroups: groups,
		Variations:      flat,
		Calories:        int(types.ParseDecimalOr(raw.Kcal.String(), decimal.Zero).IntPart()),
		PortionSize:     raw.PortionSize.String(),
		Allergens:       allergens,
	}
}

type pricing struct {
	base          decimal.Decimal
	discount      decimal.Decimal
	taxPercent    decimal.Decimal
	taxAmount     decimal.Decimal
	final         decimal.Decimal
	complementary bool
}

// computePrice applies discount, then tax, then the complementary override.
// Values stay unrounded here; rounding happens in money.
func computePrice(raw pos.RawFood) pricing {
	p := pricing{
		base:          types.ParseDecimalOr(raw.Price.String(), decimal.Zero),
		discount:      types.ParseDecimalOr(raw.Discount.String(), decimal.Zero),
		taxPercent:    types.ParseDecimalOr(raw.Tax.String(), decimal.Zero),
		complementary: IsComplementary(raw.Complementary.String()),
	}

	if p.complementary {
		p.discount = decimal.Zero
		p.taxAmount = decimal.Zero
		p.final = decimal.Zero
		return p
	}

	afterDiscount := p.base.Sub(p.discount)
	if afterDiscount.IsNegative() {
		afterDiscount = decimal.Zero
	}
	p.taxAmount = afterDiscount.Mul(p.taxPercent).Div(hundred)
	p.final = afterDiscount.Add(p.taxAmount)
	return p
}

// IsComplementary matches yes/true/1 case-insensitively.
func IsComplementary(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1":
		return true
	}
	return false
}

func normalizeGroups(raw []pos.RawVariationGroup) []VariationGroup {
	groups := make([]VariationGroup, 0, len(raw))
	for _, rg := range raw {
		options := make([]VariationOption, 0, len(rg.Values))
		for _, v := range rg.Values {
			if strings.TrimSpace(v.Label) == "" {
				continue
			}
			options = append(options, VariationOption{
				ID:    OptionID(rg.Name, v.Label),
				Name:  strings.ToUpper(v.Label),
				Price: types.ParseDecimalOr(v.OptionPrice.String(), decimal.Zero).InexactFloat64(),
			})
		}
		if len(options) == 0 {
			continue
		}
		groups = append(groups, VariationGroup{
			GroupName: rg.Name,
			Type:      enums.SelectionTypeFromPOS(rg.Type),
			Required:  rg.Required.String() == "on",
			MinSelect: types.ParseIntOr(rg.Min.String(), 0),
			MaxSelect: types.ParseIntOr(rg.Max.String(), 0),
			Options:   options,
		})
	}
	return groups
}

func addOnsGroup(raw []pos.RawAddon) *VariationGroup {
	if len(raw) == 0 {
		return nil
	}
	options := make([]VariationOption, 0, len(raw))
	for _, a := range raw {
		options = append(options, VariationOption{
			ID:    OptionID(AddOnsGroupName, a.Name),
			Name:  strings.ToUpper(a.Name),
			Price: types.ParseDecimalOr(a.Price.String(), decimal.Zero).InexactFloat64(),
		})
	}
	return &VariationGroup{
		GroupName: AddOnsGroupName,
		Type:      enums.SelectionTypeMultiple,
		Options:   options,
	}
}

// OptionID derives the stable option id: lowercase group_label with spaces as underscores.
func OptionID(group, label string) string {
	return strings.ReplaceAll(strings.ToLower(group+"_"+label), " ", "_")
}

func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
