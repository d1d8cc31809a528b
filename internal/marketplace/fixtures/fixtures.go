// Package fixtures loads the static seed data the application starts from.
// The embedded files mirror the demo dataset: six accounts across the three
// roles, four services, five quotes, a supply catalog and three packs.
package fixtures

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/obralink/obralink/internal/errors"
	"github.com/obralink/obralink/internal/marketplace/domain"
	"github.com/obralink/obralink/internal/marketplace/state"
)

//go:embed data/*.json
var embedded embed.FS

const dateLayout = "2006-01-02"

// Load assembles the initial snapshot from the embedded seed data.
func Load() (state.Snapshot, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return state.Snapshot{}, fmt.Errorf("open embedded fixtures: %w", err)
	}
	return loadFS(sub)
}

// LoadDir assembles the initial snapshot from JSON files in a directory,
// using the same five file names as the embedded set.
func LoadDir(dir string) (state.Snapshot, error) {
	return loadFS(os.DirFS(filepath.Clean(dir)))
}

func loadFS(fsys fs.FS) (state.Snapshot, error) {
	var users []userRecord
	if err := decodeFile(fsys, "users.json", &users); err != nil {
		return state.Snapshot{}, err
	}
	var services []serviceRecord
	if err := decodeFile(fsys, "services.json", &services); err != nil {
		return state.Snapshot{}, err
	}
	var quotes []quoteRecord
	if err := decodeFile(fsys, "quotes.json", &quotes); err != nil {
		return state.Snapshot{}, err
	}
	var supplies []supplyRecord
	if err := decodeFile(fsys, "supplies.json", &supplies); err != nil {
		return state.Snapshot{}, err
	}
	var offers []offerRecord
	if err := decodeFile(fsys, "offers.json", &offers); err != nil {
		return state.Snapshot{}, err
	}

	snapshot := state.Snapshot{
		Users:    make([]domain.User, 0, len(users)),
		Services: make([]domain.Service, 0, len(services)),
		Quotes:   make([]domain.Quote, 0, len(quotes)),
		Supplies: make([]domain.Supply, 0, len(supplies)),
		Offers:   make([]domain.SupplyOffer, 0, len(offers)),
	}

	for _, record := range users {
		snapshot.Users = append(snapshot.Users, record.toDomain())
	}
	for _, record := range services {
		service, err := record.toDomain()
		if err != nil {
			return state.Snapshot{}, err
		}
		snapshot.Services = append(snapshot.Services, service)
	}
	for _, record := range quotes {
		quote, err := record.toDomain()
		if err != nil {
			return state.Snapshot{}, err
		}
		snapshot.Quotes = append(snapshot.Quotes, quote)
	}
	for _, record := range supplies {
		snapshot.Supplies = append(snapshot.Supplies, record.toDomain())
	}
	for _, record := range offers {
		offer, err := record.toDomain()
		if err != nil {
			return state.Snapshot{}, err
		}
		snapshot.Offers = append(snapshot.Offers, offer)
	}

	if err := verify(snapshot); err != nil {
		return state.Snapshot{}, err
	}
	return snapshot, nil
}

func decodeFile(fsys fs.FS, name string, target any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return apperrors.Wrap(apperrors.CodeFixtureDecode, fmt.Sprintf("decode fixture %s", name), err)
	}
	return nil
}

// verify rejects seed data with duplicate ids or dangling cross-references
// before it ever reaches a store.
func verify(snapshot state.Snapshot) error {
	ids := map[string]bool{}
	for _, user := range snapshot.Users {
		if ids["user:"+user.ID] {
			return duplicateErr("user", user.ID)
		}
		ids["user:"+user.ID] = true
	}
	for _, service := range snapshot.Services {
		if ids["service:"+service.ID] {
			return duplicateErr("service", service.ID)
		}
		ids["service:"+service.ID] = true
	}
	for _, quote := range snapshot.Quotes {
		if ids["quote:"+quote.ID] {
			return duplicateErr("quote", quote.ID)
		}
		ids["quote:"+quote.ID] = true
	}
	for _, supply := range snapshot.Supplies {
		if ids["supply:"+supply.ID] {
			return duplicateErr("supply", supply.ID)
		}
		ids["supply:"+supply.ID] = true
	}
	for _, offer := range snapshot.Offers {
		if ids["offer:"+offer.ID] {
			return duplicateErr("offer", offer.ID)
		}
		ids["offer:"+offer.ID] = true
	}

	for _, quote := range snapshot.Quotes {
		if _, ok := snapshot.ServiceByID(quote.ServiceID); !ok {
			return danglingErr("quote", quote.ID, "service", quote.ServiceID)
		}
		if _, ok := snapshot.UserByID(quote.ProviderID); !ok {
			return danglingErr("quote", quote.ID, "user", quote.ProviderID)
		}
	}
	for _, service := range snapshot.Services {
		if _, ok := snapshot.UserByID(service.RequesterID); !ok {
			return danglingErr("service", service.ID, "user", service.RequesterID)
		}
		for _, quoteID := range service.QuoteIDs {
			if _, ok := snapshot.QuoteByID(quoteID); !ok {
				return danglingErr("service", service.ID, "quote", quoteID)
			}
		}
		if service.SelectedQuoteID != "" {
			if _, ok := snapshot.QuoteByID(service.SelectedQuoteID); !ok {
				return danglingErr("service", service.ID, "quote", service.SelectedQuoteID)
			}
		}
	}
	for _, offer := range snapshot.Offers {
		if offer.ServiceID != "" {
			if _, ok := snapshot.ServiceByID(offer.ServiceID); !ok {
				return danglingErr("offer", offer.ID, "service", offer.ServiceID)
			}
		}
		for _, item := range offer.Items {
			if _, ok := snapshot.SupplyByID(item.SupplyID); !ok {
				return danglingErr("offer", offer.ID, "supply", item.SupplyID)
			}
		}
	}
	return nil
}

func duplicateErr(entity, id string) error {
	return apperrors.WithMetadata(apperrors.CodeFixtureDuplicate,
		fmt.Sprintf("duplicate %s id %s in fixtures", entity, id),
		map[string]string{"entity": entity, "id": id})
}

func danglingErr(entity, id, target, targetID string) error {
	return apperrors.WithMetadata(apperrors.CodeFixtureDangling,
		fmt.Sprintf("%s %s references missing %s %s", entity, id, target, targetID),
		map[string]string{"entity": entity, "id": id, "target": target, "target_id": targetID})
}

type userRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Rating   string `json:"rating,omitempty"`
}

func (r userRecord) toDomain() domain.User {
	return domain.User{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     domain.Role(r.Role),
		Rating:   r.Rating,
	}
}

// requirementRecord covers both wire shapes a requirement line can have: the
// legacy catalog reference and the freeform named line. Presence of a name
// wins; a line with neither decodes to a degenerate (nil) requirement.
type requirementRecord struct {
	SupplyID string `json:"supply_id,omitempty"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
}

func (r requirementRecord) toDomain() domain.Requirement {
	switch {
	case r.Name != "":
		return domain.FreeformLine{Name: r.Name, Qty: r.Quantity, UnitName: r.Unit}
	case r.SupplyID != "":
		return domain.CatalogRef{SupplyID: r.SupplyID, Qty: r.Quantity, UnitName: r.Unit}
	default:
		return nil
	}
}

type serviceRecord struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Category        string              `json:"category"`
	Address         string              `json:"address"`
	City            string              `json:"city"`
	PreferredDate   string              `json:"preferred_date"`
	Status          string              `json:"status"`
	RequesterID     string              `json:"requester_id"`
	Requirements    []requirementRecord `json:"requirements"`
	QuoteIDs        []string            `json:"quote_ids"`
	SelectedQuoteID string              `json:"selected_quote_id"`
}

func (r serviceRecord) toDomain() (domain.Service, error) {
	preferred, err := parseDate(r.PreferredDate, "service", r.ID)
	if err != nil {
		return domain.Service{}, err
	}

	requirements := make([]domain.Requirement, 0, len(r.Requirements))
	for _, line := range r.Requirements {
		requirements = append(requirements, line.toDomain())
	}
	quoteIDs := r.QuoteIDs
	if quoteIDs == nil {
		quoteIDs = []string{}
	}

	return domain.Service{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Category:        r.Category,
		Address:         r.Address,
		City:            r.City,
		PreferredDate:   preferred,
		Status:          domain.ServiceStatus(r.Status),
		RequesterID:     r.RequesterID,
		Requirements:    requirements,
		QuoteIDs:        quoteIDs,
		SelectedQuoteID: r.SelectedQuoteID,
	}, nil
}

type quoteRecord struct {
	ID           string  `json:"id"`
	ServiceID    string  `json:"service_id"`
	ProviderID   string  `json:"provider_id"`
	Total        float64 `json:"total"`
	DurationDays int     `json:"duration_days"`
	Notes        string  `json:"notes,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

func (r quoteRecord) toDomain() (domain.Quote, error) {
	createdAt, err := parseDate(r.CreatedAt, "quote", r.ID)
	if err != nil {
		return domain.Quote{}, err
	}
	return domain.Quote{
		ID:           r.ID,
		ServiceID:    r.ServiceID,
		ProviderID:   r.ProviderID,
		Total:        r.Total,
		DurationDays: r.DurationDays,
		Notes:        r.Notes,
		Status:       domain.QuoteStatus(r.Status),
		CreatedAt:    createdAt,
	}, nil
}

type supplyRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
	Stock      int     `json:"stock"`
	ProviderID string  `json:"provider_id"`
}

func (r supplyRecord) toDomain() domain.Supply {
	return domain.Supply{
		ID:         r.ID,
		Name:       r.Name,
		Category:   r.Category,
		Unit:       r.Unit,
		UnitPrice:  r.UnitPrice,
		Stock:      r.Stock,
		ProviderID: r.ProviderID,
	}
}

type offerItemRecord struct {
	SupplyID string `json:"supply_id"`
	Quantity int    `json:"quantity"`
}

type offerRecord struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	ServiceID  string            `json:"service_id,omitempty"`
	ProviderID string            `json:"provider_id"`
	Total      float64           `json:"total"`
	Items      []offerItemRecord `json:"items"`
	CreatedAt  string            `json:"created_at"`
	Notes      string            `json:"notes,omitempty"`
}

func (r offerRecord) toDomain() (domain.SupplyOffer, error) {
	createdAt, err := parseDate(r.CreatedAt, "offer", r.ID)
	if err != nil {
		return domain.SupplyOffer{}, err
	}
	items := make([]domain.OfferItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.OfferItem{SupplyID: item.SupplyID, Quantity: item.Quantity})
	}
	return domain.SupplyOffer{
		ID:         r.ID,
		Name:       r.Name,
		ServiceID:  r.ServiceID,
		ProviderID: r.ProviderID,
		Total:      r.Total,
		Items:      items,
		CreatedAt:  createdAt,
		Notes:      r.Notes,
	}, nil
}

func parseDate(value, entity, id string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.Wrap(apperrors.CodeFixtureDecode,
			fmt.Sprintf("parse date %q on %s %s", value, entity, id), err)
	}
	return parsed, nil
}
