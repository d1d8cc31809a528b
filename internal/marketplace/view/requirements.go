package view

import "github.com/obralink/obralink/internal/marketplace/domain"

// Sentinel names rendered when a requirement line cannot be resolved.
const (
	// NameSupplyNotFound replaces a catalog reference whose supply id does
	// not resolve.
	NameSupplyNotFound = "Supply not found"
	// NameUnnamedSupply replaces a line carrying neither a name nor a
	// catalog reference.
	NameUnnamedSupply = "Unnamed supply"
)

// ResolvedRequirement is a requirement line ready for display: a name, a
// quantity and a unit, whatever shape the underlying line had.
type ResolvedRequirement struct {
	Name     string
	Quantity int
	Unit     string
}

// ResolveRequirements resolves every requirement line of a service against
// the supply catalog. Freeform lines pass their name through; catalog
// references look the supply up, substituting the not-found sentinel on a
// miss and borrowing the catalog unit when the line omits one. Degenerate
// lines resolve to the unnamed sentinel instead of failing.
func ResolveRequirements(service domain.Service, supplies []domain.Supply) []ResolvedRequirement {
	out := make([]ResolvedRequirement, 0, len(service.Requirements))
	for _, line := range service.Requirements {
		out = append(out, resolveLine(line, supplies))
	}
	return out
}

func resolveLine(line domain.Requirement, supplies []domain.Supply) ResolvedRequirement {
	switch l := line.(type) {
	case domain.FreeformLine:
		return ResolvedRequirement{
			Name:     l.Name,
			Quantity: l.Qty,
			Unit:     l.UnitName,
		}
	case domain.CatalogRef:
		resolved := ResolvedRequirement{
			Name:     NameSupplyNotFound,
			Quantity: l.Qty,
			Unit:     l.UnitName,
		}
		for _, supply := range supplies {
			if supply.ID == l.SupplyID {
				resolved.Name = supply.Name
				if resolved.Unit == "" {
					resolved.Unit = supply.Unit
				}
				break
			}
		}
		return resolved
	default:
		// Neither shape: keep the row renderable with a sentinel name.
		quantity := 0
		unit := ""
		if line != nil {
			quantity = line.Quantity()
			unit = line.Unit()
		}
		return ResolvedRequirement{
			Name:     NameUnnamedSupply,
			Quantity: quantity,
			Unit:     unit,
		}
	}
}
