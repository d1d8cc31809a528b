package state

import (
	"time"

	apperrors "github.com/obralink/obralink/internal/errors"
)

var (
	// ErrServiceNotFound indicates an action targeting a missing service.
	ErrServiceNotFound = apperrors.New(apperrors.CodeServiceNotFound, "service not found")
	// ErrQuoteNotFound indicates an action targeting a missing quote.
	ErrQuoteNotFound = apperrors.New(apperrors.CodeQuoteNotFound, "quote not found")
	// ErrSupplyNotFound indicates an action targeting a missing catalog item.
	ErrSupplyNotFound = apperrors.New(apperrors.CodeSupplyNotFound, "supply not found")
	// ErrOfferNotFound indicates an action targeting a missing pack.
	ErrOfferNotFound = apperrors.New(apperrors.CodeOfferNotFound, "supply offer not found")
	// ErrDuplicateQuote indicates a provider already quoted the service.
	ErrDuplicateQuote = apperrors.New(apperrors.CodeQuoteDuplicate, "provider already has a quote for this service")
	// ErrQuoteServiceMismatch indicates an accept action whose quote belongs
	// to a different service.
	ErrQuoteServiceMismatch = apperrors.New(apperrors.CodeQuoteServiceMismatch, "quote does not belong to the service")
	// ErrInvalidRole indicates a sign-in with an unknown role.
	ErrInvalidRole = apperrors.New(apperrors.CodeUserInvalidRole, "user role is not recognized")
	// ErrInvalidServiceStatus indicates a status change to an unknown state.
	ErrInvalidServiceStatus = apperrors.New(apperrors.CodeServiceInvalidStatus, "service status is not recognized")
)

// Entry records one applied action in the store's journal.
type Entry struct {
	// Seq is the entry sequence number, starting at 1.
	Seq uint64
	// Kind identifies the action that was applied.
	Kind Kind
	// Timestamp is when the action was applied.
	Timestamp time.Time
}

// Store owns the authoritative snapshot. Dispatch validates each action
// against the current snapshot, applies Reduce, publishes the result, and
// journals the applied action.
//
// A single logical actor drives the store; callers between actions treat
// returned snapshots as read-only. No locking is performed.
type Store struct {
	snapshot Snapshot
	journal  []Entry
	seq      uint64
	clock    func() time.Time
}

// NewStore creates a store seeded with the initial snapshot.
func NewStore(initial Snapshot) *Store {
	return &Store{
		snapshot: initial,
		clock:    time.Now,
	}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	return s.snapshot
}

// Journal returns a copy of the applied-action journal.
func (s *Store) Journal() []Entry {
	out := make([]Entry, len(s.journal))
	copy(out, s.journal)
	return out
}

// Dispatch validates and applies one action. On success the new snapshot is
// published and returned; on validation failure the snapshot is left
// untouched and the action is rejected whole, never partially applied.
// Nil and unrecognized actions apply as no-ops.
func (s *Store) Dispatch(action Action) (Snapshot, error) {
	if err := s.validate(action); err != nil {
		return s.snapshot, err
	}

	s.snapshot = Reduce(s.snapshot, action)
	if action != nil {
		s.seq++
		s.journal = append(s.journal, Entry{
			Seq:       s.seq,
			Kind:      action.Kind(),
			Timestamp: s.clock().UTC(),
		})
	}
	return s.snapshot, nil
}

// validate rejects actions whose targets are missing or inconsistent. The
// reducer stays permissive; this gate is where malformed payloads surface as
// errors instead of silently inconsistent state.
func (s *Store) validate(action Action) error {
	switch a := action.(type) {
	case SetCurrentUser:
		if !a.User.Role.IsValid() {
			return ErrInvalidRole
		}

	case UpdateService:
		if _, ok := s.snapshot.ServiceByID(a.Patch.ID); !ok {
			return ErrServiceNotFound
		}
		if a.Patch.Status != nil && !a.Patch.Status.IsValid() {
			return ErrInvalidServiceStatus
		}

	case SetServiceStatus:
		if _, ok := s.snapshot.ServiceByID(a.ServiceID); !ok {
			return ErrServiceNotFound
		}
		if !a.Status.IsValid() {
			return ErrInvalidServiceStatus
		}

	case CreateQuote:
		if _, ok := s.snapshot.ServiceByID(a.Quote.ServiceID); !ok {
			return ErrServiceNotFound
		}
		for _, quote := range s.snapshot.Quotes {
			if quote.ServiceID == a.Quote.ServiceID && quote.ProviderID == a.Quote.ProviderID {
				return ErrDuplicateQuote
			}
		}

	case UpdateQuote:
		if _, ok := s.snapshot.QuoteByID(a.Patch.ID); !ok {
			return ErrQuoteNotFound
		}

	case DeleteQuote:
		if _, ok := s.snapshot.QuoteByID(a.QuoteID); !ok {
			return ErrQuoteNotFound
		}

	case UpdateSupply:
		if _, ok := s.snapshot.SupplyByID(a.Patch.ID); !ok {
			return ErrSupplyNotFound
		}

	case CreateSupplyOffer:
		if a.Offer.ServiceID != "" {
			if _, ok := s.snapshot.ServiceByID(a.Offer.ServiceID); !ok {
				return ErrServiceNotFound
			}
		}

	case UpdateSupplyOffer:
		if _, ok := s.snapshot.OfferByID(a.Patch.ID); !ok {
			return ErrOfferNotFound
		}

	case DeleteSupplyOffer:
		if _, ok := s.snapshot.OfferByID(a.OfferID); !ok {
			return ErrOfferNotFound
		}

	case AcceptQuoteForService:
		if _, ok := s.snapshot.ServiceByID(a.ServiceID); !ok {
			return ErrServiceNotFound
		}
		quote, ok := s.snapshot.QuoteByID(a.QuoteID)
		if !ok {
			return ErrQuoteNotFound
		}
		if quote.ServiceID != a.ServiceID {
			return ErrQuoteServiceMismatch
		}
	}
	return nil
}
