package state

import "github.com/obralink/obralink/internal/marketplace/domain"

// Snapshot is the complete in-memory application state at a point in time.
// It is the reducer's sole unit of input and output; readers always observe
// a fully-formed snapshot, never a partial update.
type Snapshot struct {
	// CurrentUser is the signed-in user, nil when nobody is signed in.
	CurrentUser *domain.User
	// Users is the fixed account collection, seeded once and never mutated
	// by actions.
	Users    []domain.User
	Services []domain.Service
	Quotes   []domain.Quote
	Supplies []domain.Supply
	Offers   []domain.SupplyOffer
}

// UserByID returns the user with the given id, if present.
func (s Snapshot) UserByID(userID string) (domain.User, bool) {
	for _, user := range s.Users {
		if user.ID == userID {
			return user, true
		}
	}
	return domain.User{}, false
}

// ServiceByID returns the service with the given id, if present.
func (s Snapshot) ServiceByID(serviceID string) (domain.Service, bool) {
	for _, service := range s.Services {
		if service.ID == serviceID {
			return service, true
		}
	}
	return domain.Service{}, false
}

// QuoteByID returns the quote with the given id, if present.
func (s Snapshot) QuoteByID(quoteID string) (domain.Quote, bool) {
	for _, quote := range s.Quotes {
		if quote.ID == quoteID {
			return quote, true
		}
	}
	return domain.Quote{}, false
}

// SupplyByID returns the catalog supply with the given id, if present.
func (s Snapshot) SupplyByID(supplyID string) (domain.Supply, bool) {
	for _, supply := range s.Supplies {
		if supply.ID == supplyID {
			return supply, true
		}
	}
	return domain.Supply{}, false
}

// OfferByID returns the supply offer with the given id, if present.
func (s Snapshot) OfferByID(offerID string) (domain.SupplyOffer, bool) {
	for _, offer := range s.Offers {
		if offer.ID == offerID {
			return offer, true
		}
	}
	return domain.SupplyOffer{}, false
}
