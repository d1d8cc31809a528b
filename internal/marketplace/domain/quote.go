package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/obralink/obralink/internal/errors"
	"github.com/obralink/obralink/internal/platform/id"
)

// QuoteStatus represents the decision state of a quote.
type QuoteStatus string

const (
	// QuotePending marks a submitted quote awaiting a decision.
	QuotePending QuoteStatus = "PENDING"
	// QuoteAccepted marks the quote the requester selected.
	QuoteAccepted QuoteStatus = "ACCEPTED"
	// QuoteRejected marks a quote passed over during selection.
	QuoteRejected QuoteStatus = "REJECTED"
)

// IsValid reports whether the status is a known quote state.
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuotePending, QuoteAccepted, QuoteRejected:
		return true
	}
	return false
}

var (
	// ErrQuoteEmptyServiceID indicates a quote without an owning service.
	ErrQuoteEmptyServiceID = apperrors.New(apperrors.CodeQuoteEmptyServiceID, "quote service id is required")
	// ErrQuoteEmptyProviderID indicates a quote without an authoring provider.
	ErrQuoteEmptyProviderID = apperrors.New(apperrors.CodeQuoteEmptyProviderID, "quote provider id is required")
	// ErrQuoteInvalidTotal indicates a non-positive quote price.
	ErrQuoteInvalidTotal = apperrors.New(apperrors.CodeQuoteInvalidTotal, "quote total must be greater than zero")
	// ErrQuoteInvalidDuration indicates a non-positive duration.
	ErrQuoteInvalidDuration = apperrors.New(apperrors.CodeQuoteInvalidDuration, "quote duration must be greater than zero")
)

// Quote represents a bid a service provider submits against a service.
type Quote struct {
	ID         string
	ServiceID  string
	ProviderID string
	Total      float64
	// DurationDays is the provider's estimated completion time.
	DurationDays int
	Notes        string
	Status       QuoteStatus
	CreatedAt    time.Time
}

// CreateQuoteInput describes the fields needed to submit a quote.
type CreateQuoteInput struct {
	ServiceID    string
	ProviderID   string
	Total        float64
	DurationDays int
	Notes        string
}

// NormalizeCreateQuoteInput trims identifiers and validates amounts.
func NormalizeCreateQuoteInput(input CreateQuoteInput) (CreateQuoteInput, error) {
	input.ServiceID = strings.TrimSpace(input.ServiceID)
	input.ProviderID = strings.TrimSpace(input.ProviderID)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.ServiceID == "" {
		return CreateQuoteInput{}, ErrQuoteEmptyServiceID
	}
	if input.ProviderID == "" {
		return CreateQuoteInput{}, ErrQuoteEmptyProviderID
	}
	if input.Total <= 0 {
		return CreateQuoteInput{}, ErrQuoteInvalidTotal
	}
	if input.DurationDays <= 0 {
		return CreateQuoteInput{}, ErrQuoteInvalidDuration
	}
	return input, nil
}

// NewQuote creates a pending quote with a generated id and timestamps.
func NewQuote(input CreateQuoteInput, now func() time.Time, idGenerator func() (string, error)) (Quote, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateQuoteInput(input)
	if err != nil {
		return Quote{}, err
	}

	quoteID, err := idGenerator()
	if err != nil {
		return Quote{}, fmt.Errorf("generate quote id: %w", err)
	}

	return Quote{
		ID:           quoteID,
		ServiceID:    normalized.ServiceID,
		ProviderID:   normalized.ProviderID,
		Total:        normalized.Total,
		DurationDays: normalized.DurationDays,
		Notes:        normalized.Notes,
		Status:       QuotePending,
		CreatedAt:    now().UTC(),
	}, nil
}
