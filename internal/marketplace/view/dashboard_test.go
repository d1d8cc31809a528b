package view

import (
	"testing"
	"time"

	"github.com/obralink/obralink/internal/marketplace/domain"
)

func TestRequesterDashboardCountsOwnServicesOnly(t *testing.T) {
	services := []domain.Service{
		{ID: "S1", RequesterID: "r1", Status: domain.StatusPublished},
		{ID: "S2", RequesterID: "r1", Status: domain.StatusUnderReview},
		{ID: "S3", RequesterID: "r1", Status: domain.StatusCompleted},
		{ID: "S4", RequesterID: "r2", Status: domain.StatusPublished},
	}
	quotes := []domain.Quote{
		{ID: "Q1", ServiceID: "S1"},
		{ID: "Q2", ServiceID: "S2"},
		{ID: "Q3", ServiceID: "S4"},
		{ID: "Q4", ServiceID: "missing"},
	}

	got := RequesterDashboard(services, quotes, "r1")
	if got.Published != 1 {
		t.Fatalf("expected 1 published, got %d", got.Published)
	}
	if got.UnderReview != 1 {
		t.Fatalf("expected 1 under review, got %d", got.UnderReview)
	}
	// Q3 belongs to another requester and Q4 dangles; neither counts.
	if got.QuotesReceived != 2 {
		t.Fatalf("expected 2 quotes received, got %d", got.QuotesReceived)
	}
}

func TestRecentServicesOrdersByPreferredDateAndLimits(t *testing.T) {
	services := []domain.Service{
		{ID: "S1", RequesterID: "r1", PreferredDate: date(2026, time.March, 1)},
		{ID: "S2", RequesterID: "r1", PreferredDate: date(2026, time.March, 20)},
		{ID: "S3", RequesterID: "r2", PreferredDate: date(2026, time.March, 30)},
		{ID: "S4", RequesterID: "r1", PreferredDate: date(2026, time.March, 10)},
	}
	quotes := []domain.Quote{
		{ID: "Q1", ServiceID: "S2"},
		{ID: "Q2", ServiceID: "S2"},
	}

	got := RecentServices(services, quotes, "r1", 2)
	if len(got) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(got))
	}
	if got[0].Service.ID != "S2" || got[1].Service.ID != "S4" {
		t.Fatalf("expected newest first (S2, S4), got %s and %s", got[0].Service.ID, got[1].Service.ID)
	}
	if got[0].QuoteCount != 2 || got[1].QuoteCount != 0 {
		t.Fatalf("expected quote counts 2 and 0, got %d and %d", got[0].QuoteCount, got[1].QuoteCount)
	}
}

func TestRecentServicesZeroLimitReturnsAll(t *testing.T) {
	services := []domain.Service{
		{ID: "S1", RequesterID: "r1", PreferredDate: date(2026, time.March, 1)},
		{ID: "S2", RequesterID: "r1", PreferredDate: date(2026, time.March, 2)},
	}

	if got := RecentServices(services, nil, "r1", 0); len(got) != 2 {
		t.Fatalf("expected all services with zero limit, got %d", len(got))
	}
}

func TestOpenServicesPreviewAppliesRoleScope(t *testing.T) {
	services := []domain.Service{
		{ID: "S1", RequesterID: "p1", Status: domain.StatusPublished, PreferredDate: date(2026, time.March, 5)},
		{ID: "S2", RequesterID: "r1", Status: domain.StatusPublished, PreferredDate: date(2026, time.March, 1)},
		{ID: "S3", RequesterID: "r1", Status: domain.StatusAssigned, PreferredDate: date(2026, time.March, 9)},
	}
	provider := domain.User{ID: "p1", Role: domain.RoleServiceProvider}

	got := OpenServicesPreview(services, nil, provider, 5)
	// Own posting and the assigned service are both out of scope.
	if len(got) != 1 || got[0].Service.ID != "S2" {
		t.Fatalf("expected only S2 visible, got %+v", got)
	}
}
