package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/obralink/obralink/internal/errors"
	"github.com/obralink/obralink/internal/platform/id"
)

// ServiceStatus represents where a service sits in its lifecycle.
type ServiceStatus string

const (
	// StatusPublished marks a freshly posted service open for quoting.
	StatusPublished ServiceStatus = "PUBLISHED"
	// StatusUnderReview marks a service whose requester is reviewing quotes.
	StatusUnderReview ServiceStatus = "UNDER_REVIEW"
	// StatusAssigned marks a service with an accepted quote.
	StatusAssigned ServiceStatus = "ASSIGNED"
	// StatusCompleted marks a finished service.
	StatusCompleted ServiceStatus = "COMPLETED"
)

// IsValid reports whether the status is a known lifecycle state.
func (s ServiceStatus) IsValid() bool {
	switch s {
	case StatusPublished, StatusUnderReview, StatusAssigned, StatusCompleted:
		return true
	}
	return false
}

var (
	// ErrEmptyTitle indicates a missing service title.
	ErrEmptyTitle = apperrors.New(apperrors.CodeServiceEmptyTitle, "service title is required")
	// ErrEmptyRequesterID indicates a missing owning requester.
	ErrEmptyRequesterID = apperrors.New(apperrors.CodeServiceEmptyRequesterID, "service requester id is required")
)

// Service represents a posted job that service providers can quote.
//
// SelectedQuoteID is non-empty exactly when Status is StatusAssigned; the
// state engine's accept transition maintains this pairing.
type Service struct {
	ID            string
	Title         string
	Description   string
	Category      string
	Address       string
	City          string
	PreferredDate time.Time
	Status        ServiceStatus
	RequesterID   string
	// Requirements is the ordered list of required-supply line items.
	Requirements []Requirement
	// QuoteIDs lists the quotes submitted against this service.
	QuoteIDs []string
	// SelectedQuoteID is the accepted quote, empty until assignment.
	SelectedQuoteID string
}

// CreateServiceInput describes the fields needed to post a service.
type CreateServiceInput struct {
	Title         string
	Description   string
	Category      string
	Address       string
	City          string
	PreferredDate time.Time
	RequesterID   string
	Requirements  []Requirement
}

// NormalizeCreateServiceInput trims text fields and validates required ones.
func NormalizeCreateServiceInput(input CreateServiceInput) (CreateServiceInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Category = strings.TrimSpace(input.Category)
	input.Address = strings.TrimSpace(input.Address)
	input.City = strings.TrimSpace(input.City)
	input.RequesterID = strings.TrimSpace(input.RequesterID)

	if input.Title == "" {
		return CreateServiceInput{}, ErrEmptyTitle
	}
	if input.RequesterID == "" {
		return CreateServiceInput{}, ErrEmptyRequesterID
	}
	return input, nil
}

// NewService creates a published service with a generated id and no quotes.
func NewService(input CreateServiceInput, idGenerator func() (string, error)) (Service, error) {
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateServiceInput(input)
	if err != nil {
		return Service{}, err
	}

	serviceID, err := idGenerator()
	if err != nil {
		return Service{}, fmt.Errorf("generate service id: %w", err)
	}

	return Service{
		ID:            serviceID,
		Title:         normalized.Title,
		Description:   normalized.Description,
		Category:      normalized.Category,
		Address:       normalized.Address,
		City:          normalized.City,
		PreferredDate: normalized.PreferredDate,
		Status:        StatusPublished,
		RequesterID:   normalized.RequesterID,
		Requirements:  normalized.Requirements,
		QuoteIDs:      []string{},
	}, nil
}
