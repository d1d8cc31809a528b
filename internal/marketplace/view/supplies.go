package view

import (
	"strings"

	"github.com/obralink/obralink/internal/marketplace/domain"
)

// SupplyStats summarizes a supply provider's catalog.
type SupplyStats struct {
	// CatalogCount is how many items the provider lists.
	CatalogCount int
	// TotalStock is the summed stock across the provider's items.
	TotalStock int
	// OfferCount is how many packs the provider has published.
	OfferCount int
}

// SupplyProviderStats computes the catalog counters for a supply provider.
func SupplyProviderStats(supplies []domain.Supply, offers []domain.SupplyOffer, providerID string) SupplyStats {
	stats := SupplyStats{}
	for _, supply := range supplies {
		if supply.ProviderID != providerID {
			continue
		}
		stats.CatalogCount++
		stats.TotalStock += supply.Stock
	}
	for _, offer := range offers {
		if offer.ProviderID == providerID {
			stats.OfferCount++
		}
	}
	return stats
}

// ProviderSupplies returns the catalog items owned by the provider.
func ProviderSupplies(supplies []domain.Supply, providerID string) []domain.Supply {
	out := []domain.Supply{}
	for _, supply := range supplies {
		if supply.ProviderID == providerID {
			out = append(out, supply)
		}
	}
	return out
}

// ProviderOffers returns the packs owned by the provider.
func ProviderOffers(offers []domain.SupplyOffer, providerID string) []domain.SupplyOffer {
	out := []domain.SupplyOffer{}
	for _, offer := range offers {
		if offer.ProviderID == providerID {
			out = append(out, offer)
		}
	}
	return out
}

// SupplyFilter holds search criteria for a supply catalog. Zero-valued
// fields are ignored.
type SupplyFilter struct {
	// Text matches the supply name, case-insensitively.
	Text string
	// Category must match the supply category exactly.
	Category string
}

// FilterSupplies applies the filter criteria, AND-combined.
func FilterSupplies(supplies []domain.Supply, filter SupplyFilter) []domain.Supply {
	text := strings.ToLower(strings.TrimSpace(filter.Text))

	out := []domain.Supply{}
	for _, supply := range supplies {
		if text != "" && !strings.Contains(strings.ToLower(supply.Name), text) {
			continue
		}
		if filter.Category != "" && supply.Category != filter.Category {
			continue
		}
		out = append(out, supply)
	}
	return out
}
