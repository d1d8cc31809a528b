package state

import "github.com/obralink/obralink/internal/marketplace/domain"

// Reduce applies one action to a snapshot and returns the resulting snapshot.
//
// Reduce is a pure, total function: it never errors, never mutates its input,
// and returns the input unchanged for nil or unrecognized actions. Collections
// untouched by the action are shared between input and output; touched
// collections are copied. Reduce performs no validation — callers are
// responsible for well-formed payloads (Store rejects malformed actions
// before they reach Reduce).
func Reduce(snapshot Snapshot, action Action) Snapshot {
	switch a := action.(type) {
	case SetCurrentUser:
		user := a.User
		snapshot.CurrentUser = &user
		return snapshot

	case ClearCurrentUser:
		snapshot.CurrentUser = nil
		return snapshot

	case CreateService:
		snapshot.Services = appendService(snapshot.Services, a.Service)
		return snapshot

	case UpdateService:
		snapshot.Services = mapServices(snapshot.Services, func(service domain.Service) domain.Service {
			if service.ID != a.Patch.ID {
				return service
			}
			return applyServicePatch(service, a.Patch)
		})
		return snapshot

	case SetServiceStatus:
		snapshot.Services = mapServices(snapshot.Services, func(service domain.Service) domain.Service {
			if service.ID != a.ServiceID {
				return service
			}
			service.Status = a.Status
			return service
		})
		return snapshot

	case CreateQuote:
		snapshot.Quotes = appendQuote(snapshot.Quotes, a.Quote)
		snapshot.Services = mapServices(snapshot.Services, func(service domain.Service) domain.Service {
			if service.ID != a.Quote.ServiceID {
				return service
			}
			ids := make([]string, 0, len(service.QuoteIDs)+1)
			ids = append(ids, service.QuoteIDs...)
			service.QuoteIDs = append(ids, a.Quote.ID)
			return service
		})
		return snapshot

	case UpdateQuote:
		snapshot.Quotes = mapQuotes(snapshot.Quotes, func(quote domain.Quote) domain.Quote {
			if quote.ID != a.Patch.ID {
				return quote
			}
			return applyQuotePatch(quote, a.Patch)
		})
		return snapshot

	case DeleteQuote:
		quotes := make([]domain.Quote, 0, len(snapshot.Quotes))
		for _, quote := range snapshot.Quotes {
			if quote.ID != a.QuoteID {
				quotes = append(quotes, quote)
			}
		}
		snapshot.Quotes = quotes
		// Defensive full scan: strip the id from every service, not just
		// the owning one.
		snapshot.Services = mapServices(snapshot.Services, func(service domain.Service) domain.Service {
			ids := make([]string, 0, len(service.QuoteIDs))
			for _, id := range service.QuoteIDs {
				if id != a.QuoteID {
					ids = append(ids, id)
				}
			}
			service.QuoteIDs = ids
			return service
		})
		return snapshot

	case CreateSupply:
		supplies := make([]domain.Supply, 0, len(snapshot.Supplies)+1)
		supplies = append(supplies, snapshot.Supplies...)
		snapshot.Supplies = append(supplies, a.Supply)
		return snapshot

	case UpdateSupply:
		supplies := make([]domain.Supply, len(snapshot.Supplies))
		for i, supply := range snapshot.Supplies {
			if supply.ID == a.Patch.ID {
				supply = applySupplyPatch(supply, a.Patch)
			}
			supplies[i] = supply
		}
		snapshot.Supplies = supplies
		return snapshot

	case CreateSupplyOffer:
		offers := make([]domain.SupplyOffer, 0, len(snapshot.Offers)+1)
		offers = append(offers, snapshot.Offers...)
		snapshot.Offers = append(offers, a.Offer)
		return snapshot

	case UpdateSupplyOffer:
		offers := make([]domain.SupplyOffer, len(snapshot.Offers))
		for i, offer := range snapshot.Offers {
			if offer.ID == a.Patch.ID {
				offer = applyOfferPatch(offer, a.Patch)
			}
			offers[i] = offer
		}
		snapshot.Offers = offers
		return snapshot

	case DeleteSupplyOffer:
		offers := make([]domain.SupplyOffer, 0, len(snapshot.Offers))
		for _, offer := range snapshot.Offers {
			if offer.ID != a.OfferID {
				offers = append(offers, offer)
			}
		}
		snapshot.Offers = offers
		return snapshot

	case AcceptQuoteForService:
		snapshot.Services = mapServices(snapshot.Services, func(service domain.Service) domain.Service {
			if service.ID != a.ServiceID {
				return service
			}
			service.Status = domain.StatusAssigned
			service.SelectedQuoteID = a.QuoteID
			return service
		})
		snapshot.Quotes = mapQuotes(snapshot.Quotes, func(quote domain.Quote) domain.Quote {
			switch {
			case quote.ID == a.QuoteID:
				quote.Status = domain.QuoteAccepted
			case quote.ServiceID == a.ServiceID:
				quote.Status = domain.QuoteRejected
			}
			return quote
		})
		return snapshot

	default:
		// Unrecognized actions are a deliberate no-op, not an error.
		return snapshot
	}
}

func appendService(services []domain.Service, service domain.Service) []domain.Service {
	out := make([]domain.Service, 0, len(services)+1)
	out = append(out, services...)
	return append(out, service)
}

func appendQuote(quotes []domain.Quote, quote domain.Quote) []domain.Quote {
	out := make([]domain.Quote, 0, len(quotes)+1)
	out = append(out, quotes...)
	return append(out, quote)
}

func mapServices(services []domain.Service, transform func(domain.Service) domain.Service) []domain.Service {
	out := make([]domain.Service, len(services))
	for i, service := range services {
		out[i] = transform(service)
	}
	return out
}

func mapQuotes(quotes []domain.Quote, transform func(domain.Quote) domain.Quote) []domain.Quote {
	out := make([]domain.Quote, len(quotes))
	for i, quote := range quotes {
		out[i] = transform(quote)
	}
	return out
}

func applyServicePatch(service domain.Service, patch ServicePatch) domain.Service {
	if patch.Title != nil {
		service.Title = *patch.Title
	}
	if patch.Description != nil {
		service.Description = *patch.Description
	}
	if patch.Category != nil {
		service.Category = *patch.Category
	}
	if patch.Address != nil {
		service.Address = *patch.Address
	}
	if patch.City != nil {
		service.City = *patch.City
	}
	if patch.PreferredDate != nil {
		service.PreferredDate = *patch.PreferredDate
	}
	if patch.Status != nil {
		service.Status = *patch.Status
	}
	if patch.Requirements != nil {
		service.Requirements = *patch.Requirements
	}
	if patch.SelectedQuoteID != nil {
		service.SelectedQuoteID = *patch.SelectedQuoteID
	}
	return service
}

func applyQuotePatch(quote domain.Quote, patch QuotePatch) domain.Quote {
	if patch.Total != nil {
		quote.Total = *patch.Total
	}
	if patch.DurationDays != nil {
		quote.DurationDays = *patch.DurationDays
	}
	if patch.Notes != nil {
		quote.Notes = *patch.Notes
	}
	if patch.Status != nil {
		quote.Status = *patch.Status
	}
	return quote
}

func applySupplyPatch(supply domain.Supply, patch SupplyPatch) domain.Supply {
	if patch.Name != nil {
		supply.Name = *patch.Name
	}
	if patch.Category != nil {
		supply.Category = *patch.Category
	}
	if patch.Unit != nil {
		supply.Unit = *patch.Unit
	}
	if patch.UnitPrice != nil {
		supply.UnitPrice = *patch.UnitPrice
	}
	if patch.Stock != nil {
		supply.Stock = *patch.Stock
	}
	return supply
}

func applyOfferPatch(offer domain.SupplyOffer, patch OfferPatch) domain.SupplyOffer {
	if patch.Name != nil {
		offer.Name = *patch.Name
	}
	if patch.ServiceID != nil {
		offer.ServiceID = *patch.ServiceID
	}
	if patch.Total != nil {
		offer.Total = *patch.Total
	}
	if patch.Items != nil {
		offer.Items = *patch.Items
	}
	if patch.Notes != nil {
		offer.Notes = *patch.Notes
	}
	return offer
}
