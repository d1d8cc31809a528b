package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewQuoteDefaults(t *testing.T) {
	fixedTime := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)
	input := CreateQuoteInput{
		ServiceID:    " svc1 ",
		ProviderID:   "p2",
		Total:        45000,
		DurationDays: 7,
		Notes:        "  Work guaranteed, basic materials included.  ",
	}

	quote, err := NewQuote(input, func() time.Time { return fixedTime }, func() (string, error) {
		return "quote123", nil
	})
	if err != nil {
		t.Fatalf("new quote: %v", err)
	}

	if quote.ID != "quote123" {
		t.Fatalf("expected id quote123, got %q", quote.ID)
	}
	if quote.ServiceID != "svc1" {
		t.Fatalf("expected trimmed service id, got %q", quote.ServiceID)
	}
	if quote.Status != QuotePending {
		t.Fatalf("expected pending status, got %q", quote.Status)
	}
	if quote.Notes != "Work guaranteed, basic materials included." {
		t.Fatalf("expected trimmed notes, got %q", quote.Notes)
	}
	if !quote.CreatedAt.Equal(fixedTime) {
		t.Fatalf("expected creation time to match fixed time, got %v", quote.CreatedAt)
	}
}

func TestNormalizeCreateQuoteInputValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateQuoteInput
		err   error
	}{
		{
			name:  "empty service id",
			input: CreateQuoteInput{ProviderID: "p1", Total: 100, DurationDays: 1},
			err:   ErrQuoteEmptyServiceID,
		},
		{
			name:  "empty provider id",
			input: CreateQuoteInput{ServiceID: "s1", Total: 100, DurationDays: 1},
			err:   ErrQuoteEmptyProviderID,
		},
		{
			name:  "zero total",
			input: CreateQuoteInput{ServiceID: "s1", ProviderID: "p1", Total: 0, DurationDays: 1},
			err:   ErrQuoteInvalidTotal,
		},
		{
			name:  "negative duration",
			input: CreateQuoteInput{ServiceID: "s1", ProviderID: "p1", Total: 100, DurationDays: -2},
			err:   ErrQuoteInvalidDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeCreateQuoteInput(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}

func TestNormalizeCreateOfferInputValidation(t *testing.T) {
	valid := CreateOfferInput{
		Name:       "Basic pool maintenance pack",
		ProviderID: "sp3",
		Total:      1800,
		Items:      []OfferItem{{SupplyID: "s1", Quantity: 2}},
	}

	tests := []struct {
		name   string
		mutate func(CreateOfferInput) CreateOfferInput
		err    error
	}{
		{
			name:   "empty name",
			mutate: func(in CreateOfferInput) CreateOfferInput { in.Name = " "; return in },
			err:    ErrOfferEmptyName,
		},
		{
			name:   "empty provider",
			mutate: func(in CreateOfferInput) CreateOfferInput { in.ProviderID = ""; return in },
			err:    ErrOfferEmptyProviderID,
		},
		{
			name:   "zero total",
			mutate: func(in CreateOfferInput) CreateOfferInput { in.Total = 0; return in },
			err:    ErrOfferInvalidTotal,
		},
		{
			name:   "no items",
			mutate: func(in CreateOfferInput) CreateOfferInput { in.Items = nil; return in },
			err:    ErrOfferEmptyItems,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeCreateOfferInput(tt.mutate(valid))
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}

	if _, err := NormalizeCreateOfferInput(valid); err != nil {
		t.Fatalf("expected valid input to pass, got %v", err)
	}
}

func TestNormalizeCreateSupplyInputValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateSupplyInput
		err   error
	}{
		{
			name:  "empty name",
			input: CreateSupplyInput{ProviderID: "sp3", UnitPrice: 850, Stock: 50},
			err:   ErrSupplyEmptyName,
		},
		{
			name:  "empty provider",
			input: CreateSupplyInput{Name: "Powdered chlorine", UnitPrice: 850, Stock: 50},
			err:   ErrSupplyEmptyProviderID,
		},
		{
			name:  "zero price",
			input: CreateSupplyInput{Name: "Powdered chlorine", ProviderID: "sp3", UnitPrice: 0, Stock: 50},
			err:   ErrSupplyInvalidPrice,
		},
		{
			name:  "negative stock",
			input: CreateSupplyInput{Name: "Powdered chlorine", ProviderID: "sp3", UnitPrice: 850, Stock: -1},
			err:   ErrSupplyInvalidStock,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeCreateSupplyInput(tt.input)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
		})
	}
}
