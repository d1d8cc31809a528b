package domain

// Requirement is one required-supply line item on a service. It is a closed
// sum: a line either references a catalog supply by id (legacy shape) or
// carries a freeform name.
type Requirement interface {
	isRequirement()

	// Quantity returns the required amount for the line.
	Quantity() int
	// Unit returns the unit the line was entered in, which may be empty
	// for catalog references.
	Unit() string
}

// CatalogRef is a requirement line that references a catalog supply.
type CatalogRef struct {
	SupplyID string
	Qty      int
	// UnitName is optional; resolution falls back to the catalog supply's unit.
	UnitName string
}

func (CatalogRef) isRequirement() {}

// Quantity returns the required amount.
func (r CatalogRef) Quantity() int { return r.Qty }

// Unit returns the unit the line was entered in.
func (r CatalogRef) Unit() string { return r.UnitName }

// FreeformLine is a requirement line described by name only, with no catalog
// backing.
type FreeformLine struct {
	Name     string
	Qty      int
	UnitName string
}

func (FreeformLine) isRequirement() {}

// Quantity returns the required amount.
func (r FreeformLine) Quantity() int { return r.Qty }

// Unit returns the unit the line was entered in.
func (r FreeformLine) Unit() string { return r.UnitName }
