package view

import (
	"testing"
	"time"

	"github.com/obralink/obralink/internal/marketplace/domain"
)

func TestSupplyProviderStats(t *testing.T) {
	supplies := []domain.Supply{
		{ID: "I1", Stock: 50, ProviderID: "sp1"},
		{ID: "I2", Stock: 30, ProviderID: "sp1"},
		{ID: "I3", Stock: 200, ProviderID: "sp2"},
	}
	offers := []domain.SupplyOffer{
		{ID: "O1", ProviderID: "sp1"},
		{ID: "O2", ProviderID: "sp2"},
		{ID: "O3", ProviderID: "sp1"},
	}

	stats := SupplyProviderStats(supplies, offers, "sp1")
	if stats.CatalogCount != 2 {
		t.Fatalf("expected 2 catalog items, got %d", stats.CatalogCount)
	}
	if stats.TotalStock != 80 {
		t.Fatalf("expected stock 80, got %d", stats.TotalStock)
	}
	if stats.OfferCount != 2 {
		t.Fatalf("expected 2 offers, got %d", stats.OfferCount)
	}
}

func TestFilterSupplies(t *testing.T) {
	supplies := []domain.Supply{
		{ID: "I1", Name: "Powdered chlorine", Category: "Pools"},
		{ID: "I2", Name: "Liquid pH+", Category: "Pools"},
		{ID: "I3", Name: "Organic fertilizer", Category: "Gardening"},
	}

	if got := FilterSupplies(supplies, SupplyFilter{Text: "CHLOR"}); len(got) != 1 || got[0].ID != "I1" {
		t.Fatalf("expected case-insensitive name match, got %+v", got)
	}
	if got := FilterSupplies(supplies, SupplyFilter{Category: "Pools"}); len(got) != 2 {
		t.Fatalf("expected 2 pool supplies, got %d", len(got))
	}
	if got := FilterSupplies(supplies, SupplyFilter{Text: "liquid", Category: "Gardening"}); len(got) != 0 {
		t.Fatalf("expected AND-combined filters, got %d", len(got))
	}
	if got := FilterSupplies(supplies, SupplyFilter{}); len(got) != 3 {
		t.Fatalf("expected empty filter to keep everything, got %d", len(got))
	}
}

func TestProviderOwnership(t *testing.T) {
	supplies := []domain.Supply{
		{ID: "I1", ProviderID: "sp1"},
		{ID: "I2", ProviderID: "sp2"},
	}
	offers := []domain.SupplyOffer{
		{ID: "O1", ProviderID: "sp2"},
	}

	if got := ProviderSupplies(supplies, "sp1"); len(got) != 1 || got[0].ID != "I1" {
		t.Fatalf("expected sp1 supplies, got %+v", got)
	}
	if got := ProviderOffers(offers, "sp1"); len(got) != 0 {
		t.Fatalf("expected no sp1 offers, got %+v", got)
	}
}

func TestRequesterDashboard(t *testing.T) {
	services := []domain.Service{
		{ID: "S1", RequesterID: "r1", Status: domain.StatusPublished},
		{ID: "S2", RequesterID: "r1", Status: domain.StatusUnderReview},
		{ID: "S3", RequesterID: "r1", Status: domain.StatusAssigned},
		{ID: "S4", RequesterID: "r2", Status: domain.StatusPublished},
	}
	quotes := []domain.Quote{
		{ID: "Q1", ServiceID: "S1"},
		{ID: "Q2", ServiceID: "S2"},
		{ID: "Q3", ServiceID: "S4"},
		{ID: "Q4", ServiceID: "gone"},
	}

	stats := RequesterDashboard(services, quotes, "r1")
	if stats.Published != 1 {
		t.Fatalf("expected 1 published, got %d", stats.Published)
	}
	if stats.UnderReview != 1 {
		t.Fatalf("expected 1 under review, got %d", stats.UnderReview)
	}
	if stats.QuotesReceived != 2 {
		t.Fatalf("expected 2 quotes received, got %d", stats.QuotesReceived)
	}
}

func TestRecentServicesOrdersAndLimits(t *testing.T) {
	services := []domain.Service{
		{ID: "S1", RequesterID: "r1", PreferredDate: date(2026, time.February, 10)},
		{ID: "S2", RequesterID: "r1", PreferredDate: date(2026, time.February, 25)},
		{ID: "S3", RequesterID: "r1", PreferredDate: date(2026, time.February, 15)},
		{ID: "S4", RequesterID: "r1", PreferredDate: date(2026, time.February, 20)},
		{ID: "S5", RequesterID: "r2", PreferredDate: date(2026, time.February, 28)},
	}
	quotes := []domain.Quote{
		{ID: "Q1", ServiceID: "S2"},
		{ID: "Q2", ServiceID: "S2"},
	}

	got := RecentServices(services, quotes, "r1", 3)
	if len(got) != 3 {
		t.Fatalf("expected limit of 3, got %d", len(got))
	}
	want := []string{"S2", "S4", "S3"}
	for i, id := range want {
		if got[i].Service.ID != id {
			t.Fatalf("expected %v, got %s at %d", want, got[i].Service.ID, i)
		}
	}
	if got[0].QuoteCount != 2 {
		t.Fatalf("expected 2 quotes on S2, got %d", got[0].QuoteCount)
	}
}

func TestOpenServicesPreview(t *testing.T) {
	services := []domain.Service{
		{ID: "S1", RequesterID: "r1", Status: domain.StatusPublished, PreferredDate: date(2026, time.March, 1)},
		{ID: "S2", RequesterID: "p1", Status: domain.StatusPublished, PreferredDate: date(2026, time.March, 5)},
		{ID: "S3", RequesterID: "r1", Status: domain.StatusAssigned, PreferredDate: date(2026, time.March, 9)},
	}
	provider := domain.User{ID: "p1", Role: domain.RoleServiceProvider}

	got := OpenServicesPreview(services, nil, provider, 3)
	if len(got) != 1 || got[0].Service.ID != "S1" {
		t.Fatalf("expected only the open service from another requester, got %+v", got)
	}
}
