package menu

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhi-mygenie/Kiosk/pkg/enums"
	"github.com/Abhi-mygenie/Kiosk/pkg/pos"
	"github.com/Abhi-mygenie/Kiosk/pkg/types"
)

func rawFood(t *testing.T, payload string) pos.RawFood {
	t.Helper()
	var food pos.RawFood
	require.NoError(t, json.Unmarshal([]byte(payload), &food))
	return food
}

func TestNormalizeDiscountThenTax(t *testing.T) {
	item := Normalize(rawFood(t, `{"id":1,"name":"Paneer","price":100,"discount":10,"tax":5,"status":1}`))

	assert.Equal(t, 94.5, item.Price)
	assert.Equal(t, 100.0, item.BasePrice)
	assert.Equal(t, 10.0, item.Discount)
	assert.Equal(t, 5.0, item.TaxPercent)
	assert.Equal(t, 4.5, item.TaxAmount)
	assert.False(t, item.IsComplementary)
	assert.True(t, item.Available)
}

func TestNormalizeComplementaryIgnoresDiscountAndTax(t *testing.T) {
	for _, flag := range []string{"yes", "Yes", "TRUE", "1", " true "} {
		t.Run(flag, func(t *testing.T) {
			item := Normalize(pos.RawFood{
				Price:         "100",
				Discount:      "10",
				Tax:           "5",
				Complementary: types.FlexString(flag),
			})
			assert.True(t, item.IsComplementary)
			assert.Zero(t, item.Price)
			assert.Zero(t, item.Discount)
			assert.Zero(t, item.TaxAmount)
			assert.Equal(t, 100.0, item.BasePrice)
		})
	}

	for _, flag := range []string{"no", "0", "", "y", "complementary"} {
		item := Normalize(pos.RawFood{Price: "100", Complementary: types.FlexString(flag)})
		assert.False(t, item.IsComplementary, flag)
		assert.Equal(t, 100.0, item.Price, flag)
	}
}

func TestNormalizeRoundsOnlyAtOutput(t *testing.T) {
	cases := []struct {
		base, discount, tax string
	}{
		{"99.99", "0.333", "18"},
		{"10.005", "0", "12.5"},
		{"1", "0.1", "33.333"},
		{"250", "17.45", "5"},
	}
	for _, tc := range cases {
		item := Normalize(pos.RawFood{Price: types.FlexString(tc.base), Discount: types.FlexString(tc.discount), Tax: types.FlexString(tc.tax)})

		b, d, x := mustFloat(tc.base), mustFloat(tc.discount), mustFloat(tc.tax)
		after := b - d
		want := round2(round10(after) + round10(after*x/100))
		assert.InDelta(t, want, item.Price, 0.0051, "%+v", tc)
	}
}

func TestNormalizeUnparseableNumbersDefaultToZero(t *testing.T) {
	item := Normalize(pos.RawFood{Price: "abc", Discount: "", Tax: "n/a", Kcal: "lots", Status: "active"})
	assert.Zero(t, item.Price)
	assert.Zero(t, item.BasePrice)
	assert.Zero(t, item.TaxPercent)
	assert.Zero(t, item.Calories)
	assert.False(t, item.Available)
}

func TestNormalizeNegativePriceClampsToZero(t *testing.T) {
	item := Normalize(pos.RawFood{Price: "10", Discount: "15", Tax: "10"})
	assert.Zero(t, item.Price)
	assert.Zero(t, item.TaxAmount)
	assert.False(t, math.Signbit(item.TaxAmount))
	assert.Equal(t, 15.0, item.Discount)
	assert.Equal(t, 10.0, item.TaxPercent)
}

func TestNormalizeWithoutGroupsYieldsEmptySlices(t *testing.T) {
	item := Normalize(pos.RawFood{ID: "1", Price: "10"})
	require.NotNil(t, item.VariationGroups)
	require.NotNil(t, item.Variations)
	assert.Empty(t, item.VariationGroups)
	assert.Empty(t, item.Variations)
	assert.NotNil(t, item.Allergens)

	encoded, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"variation_groups":[]`)
	assert.Contains(t, string(encoded), `"variations":[]`)
}

func TestNormalizeVariationGroups(t *testing.T) {
	item := Normalize(rawFood(t, `{
		"id": "7",
		"price": "200",
		"status": "1",
		"category": {"id": 3, "name": "Mains"},
		"kcal": "450",
		"portion_size": "Full",
		"allergens": "dairy, nuts",
		"variations": [
			{"name": "Spice Level", "type": "single", "required": "on", "min": "1", "max": "1",
			 "values": [{"label": "Extra Hot", "optionPrice": "10.5"}, {"label": "mild", "optionPrice": "bad"}]},
			{"name": "Size", "type": "Single", "required": "off", "min": "x", "max": 2,
			 "values": [{"label": "Large", "optionPrice": 50}]},
			{"name": "Empty", "type": "multiple", "values": []},
			{"name": "Blank", "type": "multiple", "values": [{"label": "  ", "optionPrice": 1}]}
		],
		"add_ons": [{"id": 1, "name": "Extra Cheese", "price": "20"}]
	}`))

	require.Len(t, item.VariationGroups, 3)

	spice := item.VariationGroups[0]
	assert.Equal(t, "Spice Level", spice.GroupName)
	assert.Equal(t, enums.SelectionTypeSingle, spice.Type)
	assert.True(t, spice.Required)
	assert.Equal(t, 1, spice.MinSelect)
	assert.Equal(t, 1, spice.MaxSelect)
	require.Len(t, spice.Options, 2)
	assert.Equal(t, VariationOption{ID: "spice_level_extra_hot", Name: "EXTRA HOT", Price: 10.5}, spice.Options[0])
	assert.Equal(t, VariationOption{ID: "spice_level_mild", Name: "MILD", Price: 0}, spice.Options[1])

	size := item.VariationGroups[1]
	assert.Equal(t, enums.SelectionTypeMultiple, size.Type, "only the literal 'single' is single")
	assert.False(t, size.Required)
	assert.Equal(t, 0, size.MinSelect)
	assert.Equal(t, 2, size.MaxSelect)

	addons := item.VariationGroups[2]
	assert.Equal(t, AddOnsGroupName, addons.GroupName)
	assert.Equal(t, enums.SelectionTypeMultiple, addons.Type)
	assert.False(t, addons.Required)
	assert.Equal(t, []VariationOption{{ID: "add-ons_extra_cheese", Name: "EXTRA CHEESE", Price: 20}}, addons.Options)

	require.Len(t, item.Variations, 4)
	assert.Equal(t, "spice_level_extra_hot", item.Variations[0].ID)
	assert.Equal(t, "size_large", item.Variations[2].ID)
	assert.Equal(t, "add-ons_extra_cheese", item.Variations[3].ID)

	assert.Equal(t, "3", item.Category)
	assert.Equal(t, "Mains", item.CategoryName)
	assert.Equal(t, 450, item.Calories)
	assert.Equal(t, "Full", item.PortionSize)
	assert.Equal(t, []string{"dairy", "nuts"}, item.Allergens)
}

func TestOptionID(t *testing.T) {
	assert.Equal(t, "spice_level_extra_hot", OptionID("Spice Level", "Extra Hot"))
	assert.Equal(t, "add-ons_coke", OptionID("ADD-ONS", "Coke"))
}

func mustFloat(v string) float64 {
	var f float64
	if err := json.Unmarshal([]byte(v), &f); err != nil {
		panic(err)
	}
	return f
}

func round10(v float64) float64 { return math.Round(v*1e10) / 1e10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }
