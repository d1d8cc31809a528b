package view

import (
	"sort"

	"github.com/obralink/obralink/internal/marketplace/domain"
)

// RequesterStats summarizes a requester's posting activity.
type RequesterStats struct {
	// Published is how many of the requester's services are still published.
	Published int
	// QuotesReceived counts quotes across all of the requester's services.
	QuotesReceived int
	// UnderReview is how many of the requester's services are under review.
	UnderReview int
}

// RequesterDashboard computes the posting counters for a requester.
func RequesterDashboard(services []domain.Service, quotes []domain.Quote, requesterID string) RequesterStats {
	stats := RequesterStats{}
	for _, service := range services {
		if service.RequesterID != requesterID {
			continue
		}
		switch service.Status {
		case domain.StatusPublished:
			stats.Published++
		case domain.StatusUnderReview:
			stats.UnderReview++
		}
	}
	for _, quote := range quotes {
		service, ok := serviceByID(services, quote.ServiceID)
		if ok && service.RequesterID == requesterID {
			stats.QuotesReceived++
		}
	}
	return stats
}

// ServiceWithQuoteCount is a service annotated with its quote badge count.
type ServiceWithQuoteCount struct {
	Service    domain.Service
	QuoteCount int
}

// RecentServices returns the requester's own services ordered by preferred
// date, most recent first, limited, each annotated with its quote count.
func RecentServices(services []domain.Service, quotes []domain.Quote, requesterID string, limit int) []ServiceWithQuoteCount {
	own := []domain.Service{}
	for _, service := range services {
		if service.RequesterID == requesterID {
			own = append(own, service)
		}
	}
	return newestWithCounts(own, quotes, limit)
}

// OpenServicesPreview returns the services a provider could quote, ordered
// by preferred date, most recent first, limited, with quote counts.
func OpenServicesPreview(services []domain.Service, quotes []domain.Quote, user domain.User, limit int) []ServiceWithQuoteCount {
	return newestWithCounts(RoleScopedServices(services, user), quotes, limit)
}

func newestWithCounts(services []domain.Service, quotes []domain.Quote, limit int) []ServiceWithQuoteCount {
	sorted := make([]domain.Service, len(services))
	copy(sorted, services)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PreferredDate.After(sorted[j].PreferredDate)
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]ServiceWithQuoteCount, 0, len(sorted))
	for _, service := range sorted {
		out = append(out, ServiceWithQuoteCount{
			Service:    service,
			QuoteCount: QuoteCount(quotes, service.ID),
		})
	}
	return out
}
