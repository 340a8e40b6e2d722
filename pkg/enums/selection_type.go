package enums

import "fmt"

// SelectionType describes how many options of a variation group a customer may pick.
type SelectionType string

const (
	SelectionTypeSingle   SelectionType = "single"
	SelectionTypeMultiple SelectionType = "multiple"
)

var validSelectionTypes = []SelectionType{
	SelectionTypeSingle,
	SelectionTypeMultiple,
}

// String implements fmt.Stringer.
func (s SelectionType) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SelectionType.
func (s SelectionType) IsValid() bool {
	for _, candidate := range validSelectionTypes {
		if candidate == s {
			return true
		}
	}
	return false
}

// SelectionTypeFromPOS maps the POS group type; only the literal "single" is single.
func SelectionTypeFromPOS(raw string) SelectionType {
	if raw == string(SelectionTypeSingle) {
		return SelectionTypeSingle
	}
	return SelectionTypeMultiple
}

// ParseSelectionType converts raw input into a SelectionType.
func ParseSelectionType(value string) (SelectionType, error) {
	for _, candidate := range validSelectionTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid selection type %q", value)
}
