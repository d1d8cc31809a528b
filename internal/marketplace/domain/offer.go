package domain

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/obralink/obralink/internal/errors"
	"github.com/obralink/obralink/internal/platform/id"
)

var (
	// ErrOfferEmptyName indicates a pack without a name.
	ErrOfferEmptyName = apperrors.New(apperrors.CodeOfferEmptyName, "offer name is required")
	// ErrOfferEmptyProviderID indicates a pack without an owner.
	ErrOfferEmptyProviderID = apperrors.New(apperrors.CodeOfferEmptyProviderID, "offer provider id is required")
	// ErrOfferInvalidTotal indicates a non-positive pack price.
	ErrOfferInvalidTotal = apperrors.New(apperrors.CodeOfferInvalidTotal, "offer total must be greater than zero")
	// ErrOfferEmptyItems indicates a pack with no line items.
	ErrOfferEmptyItems = apperrors.New(apperrors.CodeOfferEmptyItems, "offer needs at least one item")
)

// OfferItem is one supply line inside a pack.
type OfferItem struct {
	SupplyID string
	Quantity int
}

// SupplyOffer represents a bundled, priced set of supplies ("pack"),
// optionally tied to one service.
type SupplyOffer struct {
	ID   string
	Name string
	// ServiceID is the optionally linked service, empty when the pack is
	// not tied to a specific job.
	ServiceID  string
	ProviderID string
	Total      float64
	Items      []OfferItem
	CreatedAt  time.Time
	Notes      string
}

// CreateOfferInput describes the fields needed to publish a pack.
type CreateOfferInput struct {
	Name       string
	ServiceID  string
	ProviderID string
	Total      float64
	Items      []OfferItem
	Notes      string
}

// NormalizeCreateOfferInput trims text fields and validates the pack.
func NormalizeCreateOfferInput(input CreateOfferInput) (CreateOfferInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.ServiceID = strings.TrimSpace(input.ServiceID)
	input.ProviderID = strings.TrimSpace(input.ProviderID)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.Name == "" {
		return CreateOfferInput{}, ErrOfferEmptyName
	}
	if input.ProviderID == "" {
		return CreateOfferInput{}, ErrOfferEmptyProviderID
	}
	if input.Total <= 0 {
		return CreateOfferInput{}, ErrOfferInvalidTotal
	}
	if len(input.Items) == 0 {
		return CreateOfferInput{}, ErrOfferEmptyItems
	}
	return input, nil
}

// NewOffer creates a pack with a generated id and timestamps.
func NewOffer(input CreateOfferInput, now func() time.Time, idGenerator func() (string, error)) (SupplyOffer, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateOfferInput(input)
	if err != nil {
		return SupplyOffer{}, err
	}

	offerID, err := idGenerator()
	if err != nil {
		return SupplyOffer{}, fmt.Errorf("generate offer id: %w", err)
	}

	items := make([]OfferItem, len(normalized.Items))
	copy(items, normalized.Items)

	return SupplyOffer{
		ID:         offerID,
		Name:       normalized.Name,
		ServiceID:  normalized.ServiceID,
		ProviderID: normalized.ProviderID,
		Total:      normalized.Total,
		Items:      items,
		CreatedAt:  now().UTC(),
		Notes:      normalized.Notes,
	}, nil
}
