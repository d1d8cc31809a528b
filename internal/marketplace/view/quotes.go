package view

import (
	"sort"
	"strings"

	"github.com/obralink/obralink/internal/marketplace/domain"
)

// QuoteWithService is a quote joined with its owning service.
type QuoteWithService struct {
	Quote   domain.Quote
	Service domain.Service
}

// MyQuotes returns the quotes authored by the provider, each joined with its
// owning service. Quotes whose service no longer resolves are dropped.
func MyQuotes(quotes []domain.Quote, services []domain.Service, providerID string) []QuoteWithService {
	out := []QuoteWithService{}
	for _, quote := range quotes {
		if quote.ProviderID != providerID {
			continue
		}
		service, ok := serviceByID(services, quote.ServiceID)
		if !ok {
			continue
		}
		out = append(out, QuoteWithService{Quote: quote, Service: service})
	}
	return out
}

// SearchMyQuotes keeps joined quotes whose service title or city contains
// the term, case-insensitively. An empty term keeps everything.
func SearchMyQuotes(joined []QuoteWithService, term string) []QuoteWithService {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return joined
	}
	out := []QuoteWithService{}
	for _, entry := range joined {
		title := strings.ToLower(entry.Service.Title)
		city := strings.ToLower(entry.Service.City)
		if strings.Contains(title, term) || strings.Contains(city, term) {
			out = append(out, entry)
		}
	}
	return out
}

// QuoteGroups is the two-bucket partition of a provider's quotes as the
// quotes screen renders it.
type QuoteGroups struct {
	// Published holds pending quotes on still-published services.
	Published []QuoteWithService
	// UnderReview holds pending quotes on under-review services plus every
	// accepted quote, whatever the service's concrete status. Acceptance
	// deliberately lands here instead of a separate assigned bucket.
	UnderReview []QuoteWithService
}

// GroupMyQuotes partitions joined quotes into the two screen buckets.
// Rejected quotes and pending quotes on assigned or completed services fall
// out of both buckets.
func GroupMyQuotes(joined []QuoteWithService) QuoteGroups {
	groups := QuoteGroups{
		Published:   []QuoteWithService{},
		UnderReview: []QuoteWithService{},
	}
	for _, entry := range joined {
		switch entry.Quote.Status {
		case domain.QuotePending:
			switch entry.Service.Status {
			case domain.StatusPublished:
				groups.Published = append(groups.Published, entry)
			case domain.StatusUnderReview:
				groups.UnderReview = append(groups.UnderReview, entry)
			}
		case domain.QuoteAccepted:
			groups.UnderReview = append(groups.UnderReview, entry)
		}
	}
	return groups
}

// QuoteStats summarizes a provider's quoting activity. Accepted and
// CompletedServices count independently: a quote on a completed service
// counts toward both.
type QuoteStats struct {
	Sent              int
	Pending           int
	Accepted          int
	CompletedServices int
}

// ProviderQuoteStats computes the quote counters for a provider.
func ProviderQuoteStats(quotes []domain.Quote, services []domain.Service, providerID string) QuoteStats {
	stats := QuoteStats{}
	for _, quote := range quotes {
		if quote.ProviderID != providerID {
			continue
		}
		stats.Sent++
		switch quote.Status {
		case domain.QuotePending:
			stats.Pending++
		case domain.QuoteAccepted:
			stats.Accepted++
		}
		if service, ok := serviceByID(services, quote.ServiceID); ok && service.Status == domain.StatusCompleted {
			stats.CompletedServices++
		}
	}
	return stats
}

// SortOrder selects how a quote list is ordered.
type SortOrder string

const (
	// SortPriceAsc orders by total price, cheapest first.
	SortPriceAsc SortOrder = "price-asc"
	// SortPriceDesc orders by total price, most expensive first.
	SortPriceDesc SortOrder = "price-desc"
	// SortDurationAsc orders by duration, shortest first.
	SortDurationAsc SortOrder = "duration-asc"
)

// SortQuotes returns the quotes stably sorted by the given order. Unknown
// orders preserve the input order. The input slice is never reordered in
// place.
func SortQuotes(quotes []domain.Quote, order SortOrder) []domain.Quote {
	sorted := make([]domain.Quote, len(quotes))
	copy(sorted, quotes)

	switch order {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Total < sorted[j].Total
		})
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Total > sorted[j].Total
		})
	case SortDurationAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DurationDays < sorted[j].DurationDays
		})
	}
	return sorted
}

// ServiceQuotes returns the quotes targeting one service.
func ServiceQuotes(quotes []domain.Quote, serviceID string) []domain.Quote {
	out := []domain.Quote{}
	for _, quote := range quotes {
		if quote.ServiceID == serviceID {
			out = append(out, quote)
		}
	}
	return out
}

func serviceByID(services []domain.Service, serviceID string) (domain.Service, bool) {
	for _, service := range services {
		if service.ID == serviceID {
			return service, true
		}
	}
	return domain.Service{}, false
}
