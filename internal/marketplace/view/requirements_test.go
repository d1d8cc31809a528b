package view

import (
	"testing"

	"github.com/obralink/obralink/internal/marketplace/domain"
)

func testCatalog() []domain.Supply {
	return []domain.Supply{
		{ID: "I1", Name: "Electrical cable 2.5mm", Unit: "meter", UnitPrice: 150, Stock: 1000, ProviderID: "sp1"},
		{ID: "I2", Name: "Main electrical panel", Unit: "unit", UnitPrice: 8500, Stock: 15, ProviderID: "sp1"},
	}
}

func TestResolveRequirementsCatalogReference(t *testing.T) {
	service := domain.Service{
		Requirements: []domain.Requirement{
			domain.CatalogRef{SupplyID: "I1", Qty: 500, UnitName: "meter"},
		},
	}

	got := ResolveRequirements(service, testCatalog())
	if len(got) != 1 {
		t.Fatalf("expected 1 resolved line, got %d", len(got))
	}
	if got[0].Name != "Electrical cable 2.5mm" {
		t.Fatalf("expected catalog name, got %q", got[0].Name)
	}
	if got[0].Quantity != 500 || got[0].Unit != "meter" {
		t.Fatalf("expected quantity and unit passed through, got %+v", got[0])
	}
}

func TestResolveRequirementsUnitFallsBackToCatalog(t *testing.T) {
	service := domain.Service{
		Requirements: []domain.Requirement{
			domain.CatalogRef{SupplyID: "I2", Qty: 1},
		},
	}

	got := ResolveRequirements(service, testCatalog())
	if got[0].Unit != "unit" {
		t.Fatalf("expected catalog unit fallback, got %q", got[0].Unit)
	}
}

func TestResolveRequirementsFreeformLine(t *testing.T) {
	service := domain.Service{
		Requirements: []domain.Requirement{
			domain.FreeformLine{Name: "Special sealant", Qty: 3, UnitName: "liter"},
		},
	}

	got := ResolveRequirements(service, testCatalog())
	if got[0].Name != "Special sealant" || got[0].Quantity != 3 || got[0].Unit != "liter" {
		t.Fatalf("expected freeform line passed through, got %+v", got[0])
	}
}

func TestResolveRequirementsCatalogMiss(t *testing.T) {
	service := domain.Service{
		Requirements: []domain.Requirement{
			domain.CatalogRef{SupplyID: "gone", Qty: 2, UnitName: "kg"},
		},
	}

	got := ResolveRequirements(service, testCatalog())
	if got[0].Name != NameSupplyNotFound {
		t.Fatalf("expected not-found sentinel, got %q", got[0].Name)
	}
	if got[0].Quantity != 2 || got[0].Unit != "kg" {
		t.Fatalf("expected quantity and unit preserved on miss, got %+v", got[0])
	}
}

func TestResolveRequirementsDegenerateLine(t *testing.T) {
	service := domain.Service{
		Requirements: []domain.Requirement{nil},
	}

	got := ResolveRequirements(service, testCatalog())
	if len(got) != 1 {
		t.Fatalf("expected degenerate line kept, got %d entries", len(got))
	}
	if got[0].Name != NameUnnamedSupply {
		t.Fatalf("expected unnamed sentinel, got %q", got[0].Name)
	}
}

func TestResolveRequirementsPreservesOrder(t *testing.T) {
	service := domain.Service{
		Requirements: []domain.Requirement{
			domain.CatalogRef{SupplyID: "I2", Qty: 1},
			domain.FreeformLine{Name: "Outlet covers", Qty: 20, UnitName: "unit"},
			domain.CatalogRef{SupplyID: "I1", Qty: 100, UnitName: "meter"},
		},
	}

	got := ResolveRequirements(service, testCatalog())
	want := []string{"Main electrical panel", "Outlet covers", "Electrical cable 2.5mm"}
	for i, name := range want {
		if got[i].Name != name {
			t.Fatalf("expected %q at %d, got %q", name, i, got[i].Name)
		}
	}
}
