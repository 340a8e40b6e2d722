package enums

// ResourceKind names a cached POS resource.
type ResourceKind string

const (
	ResourceKindMenu   ResourceKind = "menu"
	ResourceKindTables ResourceKind = "tables"
)

// String implements fmt.Stringer.
func (k ResourceKind) String() string {
	return string(k)
}

// IsValid reports whether the value is a known ResourceKind.
func (k ResourceKind) IsValid() bool {
	switch k {
	case ResourceKindMenu, ResourceKindTables:
		return true
	}
	return false
}
