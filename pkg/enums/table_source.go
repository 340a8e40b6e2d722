package enums

// TableSource reports where a table listing came from.
type TableSource string

const (
	TableSourcePOS      TableSource = "pos"
	TableSourceFallback TableSource = "fallback"
)

// String implements fmt.Stringer.
func (s TableSource) String() string {
	return string(s)
}

// IsValid reports whether the value is a known TableSource.
func (s TableSource) IsValid() bool {
	switch s {
	case TableSourcePOS, TableSourceFallback:
		return true
	}
	return false
}
