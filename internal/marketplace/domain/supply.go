package domain

import (
	"fmt"
	"strings"

	apperrors "github.com/obralink/obralink/internal/errors"
	"github.com/obralink/obralink/internal/platform/id"
)

var (
	// ErrSupplyEmptyName indicates a catalog item without a name.
	ErrSupplyEmptyName = apperrors.New(apperrors.CodeSupplyEmptyName, "supply name is required")
	// ErrSupplyEmptyProviderID indicates a catalog item without an owner.
	ErrSupplyEmptyProviderID = apperrors.New(apperrors.CodeSupplyEmptyProviderID, "supply provider id is required")
	// ErrSupplyInvalidPrice indicates a non-positive unit price.
	ErrSupplyInvalidPrice = apperrors.New(apperrors.CodeSupplyInvalidPrice, "supply unit price must be greater than zero")
	// ErrSupplyInvalidStock indicates a negative stock quantity.
	ErrSupplyInvalidStock = apperrors.New(apperrors.CodeSupplyInvalidStock, "supply stock cannot be negative")
)

// Supply represents a catalog item a supply provider sells.
type Supply struct {
	ID        string
	Name      string
	Category  string
	Unit      string
	UnitPrice float64
	Stock     int
	// ProviderID is the owning supply provider.
	ProviderID string
}

// CreateSupplyInput describes the fields needed to add a catalog item.
type CreateSupplyInput struct {
	Name       string
	Category   string
	Unit       string
	UnitPrice  float64
	Stock      int
	ProviderID string
}

// NormalizeCreateSupplyInput trims text fields and validates amounts.
func NormalizeCreateSupplyInput(input CreateSupplyInput) (CreateSupplyInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)
	input.Unit = strings.TrimSpace(input.Unit)
	input.ProviderID = strings.TrimSpace(input.ProviderID)

	if input.Name == "" {
		return CreateSupplyInput{}, ErrSupplyEmptyName
	}
	if input.ProviderID == "" {
		return CreateSupplyInput{}, ErrSupplyEmptyProviderID
	}
	if input.UnitPrice <= 0 {
		return CreateSupplyInput{}, ErrSupplyInvalidPrice
	}
	if input.Stock < 0 {
		return CreateSupplyInput{}, ErrSupplyInvalidStock
	}
	return input, nil
}

// NewSupply creates a catalog item with a generated id.
func NewSupply(input CreateSupplyInput, idGenerator func() (string, error)) (Supply, error) {
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateSupplyInput(input)
	if err != nil {
		return Supply{}, err
	}

	supplyID, err := idGenerator()
	if err != nil {
		return Supply{}, fmt.Errorf("generate supply id: %w", err)
	}

	return Supply{
		ID:         supplyID,
		Name:       normalized.Name,
		Category:   normalized.Category,
		Unit:       normalized.Unit,
		UnitPrice:  normalized.UnitPrice,
		Stock:      normalized.Stock,
		ProviderID: normalized.ProviderID,
	}, nil
}
