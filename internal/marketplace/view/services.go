package view

import (
	"sort"
	"strings"
	"time"

	"github.com/obralink/obralink/internal/marketplace/domain"
)

// RoleScopedServices returns the services visible to a user.
//
// Requesters see their own services regardless of status. Service providers
// see published and under-review services posted by other users — never
// their own postings and never assigned or completed ones. Every other role
// sees nothing.
func RoleScopedServices(services []domain.Service, user domain.User) []domain.Service {
	switch user.Role {
	case domain.RoleRequester:
		out := []domain.Service{}
		for _, service := range services {
			if service.RequesterID == user.ID {
				out = append(out, service)
			}
		}
		return out
	case domain.RoleServiceProvider:
		out := []domain.Service{}
		for _, service := range services {
			open := service.Status == domain.StatusPublished || service.Status == domain.StatusUnderReview
			if open && service.RequesterID != user.ID {
				out = append(out, service)
			}
		}
		return out
	default:
		return []domain.Service{}
	}
}

// ServiceFilter holds the search criteria for a service listing. Zero-valued
// fields are ignored.
type ServiceFilter struct {
	// Text matches the title or description, case-insensitively.
	Text string
	// Category must match the service category exactly.
	Category string
	// City must match the service city exactly.
	City string
	// From keeps services whose preferred date falls on or after it. Both
	// sides are normalized to midnight so time-of-day never skews the
	// comparison.
	From time.Time
}

// FilterServices applies the filter criteria, AND-combined, in order.
func FilterServices(services []domain.Service, filter ServiceFilter) []domain.Service {
	text := strings.ToLower(strings.TrimSpace(filter.Text))

	out := []domain.Service{}
	for _, service := range services {
		if text != "" {
			title := strings.ToLower(service.Title)
			description := strings.ToLower(service.Description)
			if !strings.Contains(title, text) && !strings.Contains(description, text) {
				continue
			}
		}
		if filter.Category != "" && service.Category != filter.Category {
			continue
		}
		if filter.City != "" && service.City != filter.City {
			continue
		}
		if !filter.From.IsZero() && !service.PreferredDate.IsZero() {
			if truncateToDay(service.PreferredDate).Before(truncateToDay(filter.From)) {
				continue
			}
		}
		out = append(out, service)
	}
	return out
}

func truncateToDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// QuoteCount returns how many quotes target the given service.
func QuoteCount(quotes []domain.Quote, serviceID string) int {
	count := 0
	for _, quote := range quotes {
		if quote.ServiceID == serviceID {
			count++
		}
	}
	return count
}

// ServiceCategories returns the distinct categories across the given
// services, sorted.
func ServiceCategories(services []domain.Service) []string {
	return distinct(services, func(s domain.Service) string { return s.Category })
}

// ServiceCities returns the distinct cities across the given services,
// sorted.
func ServiceCities(services []domain.Service) []string {
	return distinct(services, func(s domain.Service) string { return s.City })
}

func distinct(services []domain.Service, field func(domain.Service) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, service := range services {
		value := field(service)
		if value == "" || seen[value] {
			continue
		}
		seen[value] = true
		out = append(out, value)
	}
	sort.Strings(out)
	return out
}
