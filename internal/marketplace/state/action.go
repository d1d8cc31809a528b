package state

import (
	"time"

	"github.com/obralink/obralink/internal/marketplace/domain"
)

// Kind identifies the kind of an applied action in the journal.
type Kind string

// User session actions.
const (
	// KindUserSignedIn records a user signing in.
	KindUserSignedIn Kind = "user.signed_in"
	// KindUserSignedOut records the current user signing out.
	KindUserSignedOut Kind = "user.signed_out"
)

// Service actions.
const (
	// KindServiceCreated records a requester posting a service.
	KindServiceCreated Kind = "service.created"
	// KindServiceUpdated records a partial service update.
	KindServiceUpdated Kind = "service.updated"
	// KindServiceStatusSet records a service status change.
	KindServiceStatusSet Kind = "service.status_set"
)

// Quote actions.
const (
	// KindQuoteCreated records a provider submitting a quote.
	KindQuoteCreated Kind = "quote.created"
	// KindQuoteUpdated records a partial quote update.
	KindQuoteUpdated Kind = "quote.updated"
	// KindQuoteDeleted records a provider withdrawing a quote.
	KindQuoteDeleted Kind = "quote.deleted"
	// KindQuoteAccepted records a requester accepting a quote for a service.
	KindQuoteAccepted Kind = "quote.accepted"
)

// Supply and pack actions.
const (
	// KindSupplyCreated records a new catalog item.
	KindSupplyCreated Kind = "supply.created"
	// KindSupplyUpdated records a partial catalog item update.
	KindSupplyUpdated Kind = "supply.updated"
	// KindOfferCreated records a new supply pack.
	KindOfferCreated Kind = "offer.created"
	// KindOfferUpdated records a partial supply pack update.
	KindOfferUpdated Kind = "offer.updated"
	// KindOfferDeleted records a supply pack removal.
	KindOfferDeleted Kind = "offer.deleted"
)

// Action is one state transition request. The concrete variants below are
// the only transitions the engine knows; anything else reduces to a no-op.
type Action interface {
	isAction()

	// Kind returns the journal kind for the action.
	Kind() Kind
}

// SetCurrentUser replaces the signed-in user.
type SetCurrentUser struct {
	User domain.User
}

// ClearCurrentUser signs the current user out.
type ClearCurrentUser struct{}

// CreateService appends a complete, freshly constructed service.
type CreateService struct {
	Service domain.Service
}

// UpdateService shallow-merges a patch into the matching service.
type UpdateService struct {
	Patch ServicePatch
}

// SetServiceStatus sets one service's status field.
type SetServiceStatus struct {
	ServiceID string
	Status    domain.ServiceStatus
}

// CreateQuote appends a quote and registers it on its owning service.
type CreateQuote struct {
	Quote domain.Quote
}

// UpdateQuote shallow-merges a patch into the matching quote.
type UpdateQuote struct {
	Patch QuotePatch
}

// DeleteQuote removes a quote and strips its id from every service.
type DeleteQuote struct {
	QuoteID string
}

// CreateSupply appends a catalog item.
type CreateSupply struct {
	Supply domain.Supply
}

// UpdateSupply shallow-merges a patch into the matching catalog item.
type UpdateSupply struct {
	Patch SupplyPatch
}

// CreateSupplyOffer appends a supply pack.
type CreateSupplyOffer struct {
	Offer domain.SupplyOffer
}

// UpdateSupplyOffer shallow-merges a patch into the matching pack.
type UpdateSupplyOffer struct {
	Patch OfferPatch
}

// DeleteSupplyOffer removes a pack by id.
type DeleteSupplyOffer struct {
	OfferID string
}

// AcceptQuoteForService assigns a service to one quote: the service becomes
// assigned with the quote selected, the quote is accepted, and every sibling
// quote on the same service is rejected. The three effects land in a single
// snapshot.
type AcceptQuoteForService struct {
	ServiceID string
	QuoteID   string
}

func (SetCurrentUser) isAction()        {}
func (ClearCurrentUser) isAction()      {}
func (CreateService) isAction()         {}
func (UpdateService) isAction()         {}
func (SetServiceStatus) isAction()      {}
func (CreateQuote) isAction()           {}
func (UpdateQuote) isAction()           {}
func (DeleteQuote) isAction()           {}
func (CreateSupply) isAction()          {}
func (UpdateSupply) isAction()          {}
func (CreateSupplyOffer) isAction()     {}
func (UpdateSupplyOffer) isAction()     {}
func (DeleteSupplyOffer) isAction()     {}
func (AcceptQuoteForService) isAction() {}

// Kind returns the journal kind for the action.
func (SetCurrentUser) Kind() Kind { return KindUserSignedIn }

// Kind returns the journal kind for the action.
func (ClearCurrentUser) Kind() Kind { return KindUserSignedOut }

// Kind returns the journal kind for the action.
func (CreateService) Kind() Kind { return KindServiceCreated }

// Kind returns the journal kind for the action.
func (UpdateService) Kind() Kind { return KindServiceUpdated }

// Kind returns the journal kind for the action.
func (SetServiceStatus) Kind() Kind { return KindServiceStatusSet }

// Kind returns the journal kind for the action.
func (CreateQuote) Kind() Kind { return KindQuoteCreated }

// Kind returns the journal kind for the action.
func (UpdateQuote) Kind() Kind { return KindQuoteUpdated }

// Kind returns the journal kind for the action.
func (DeleteQuote) Kind() Kind { return KindQuoteDeleted }

// Kind returns the journal kind for the action.
func (CreateSupply) Kind() Kind { return KindSupplyCreated }

// Kind returns the journal kind for the action.
func (UpdateSupply) Kind() Kind { return KindSupplyUpdated }

// Kind returns the journal kind for the action.
func (CreateSupplyOffer) Kind() Kind { return KindOfferCreated }

// Kind returns the journal kind for the action.
func (UpdateSupplyOffer) Kind() Kind { return KindOfferUpdated }

// Kind returns the journal kind for the action.
func (DeleteSupplyOffer) Kind() Kind { return KindOfferDeleted }

// Kind returns the journal kind for the action.
func (AcceptQuoteForService) Kind() Kind { return KindQuoteAccepted }

// ServicePatch is a partial service update. Nil fields are left untouched;
// a non-nil field replaces the target field wholesale.
type ServicePatch struct {
	ID              string
	Title           *string
	Description     *string
	Category        *string
	Address         *string
	City            *string
	PreferredDate   *time.Time
	Status          *domain.ServiceStatus
	Requirements    *[]domain.Requirement
	SelectedQuoteID *string
}

// QuotePatch is a partial quote update. Ownership fields (service, provider)
// are not patchable.
type QuotePatch struct {
	ID           string
	Total        *float64
	DurationDays *int
	Notes        *string
	Status       *domain.QuoteStatus
}

// SupplyPatch is a partial catalog item update.
type SupplyPatch struct {
	ID        string
	Name      *string
	Category  *string
	Unit      *string
	UnitPrice *float64
	Stock     *int
}

// OfferPatch is a partial supply pack update.
type OfferPatch struct {
	ID        string
	Name      *string
	ServiceID *string
	Total     *float64
	Items     *[]domain.OfferItem
	Notes     *string
}
