// Package main provides a CLI for exercising the marketplace engine against
// the seed data: it loads fixtures, signs a demo user in, optionally replays
// a scripted quoting scenario, and prints the views that user would see.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/obralink/obralink/internal/marketplace/domain"
	"github.com/obralink/obralink/internal/marketplace/fixtures"
	"github.com/obralink/obralink/internal/marketplace/session"
	"github.com/obralink/obralink/internal/marketplace/state"
	"github.com/obralink/obralink/internal/marketplace/view"
	"github.com/obralink/obralink/internal/platform/config"
)

type seedConfig struct {
	// FixturesDir overrides the embedded seed data with JSON files on disk.
	FixturesDir string `env:"OBRALINK_FIXTURES_DIR"`
	Email       string `env:"OBRALINK_DEMO_EMAIL" envDefault:"requester@test.com"`
	Password    string `env:"OBRALINK_DEMO_PASSWORD" envDefault:"123456"`
}

func main() {
	var cfg seedConfig
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("parse env: %v", err)
	}

	var demo bool
	flag.StringVar(&cfg.FixturesDir, "fixtures-dir", cfg.FixturesDir, "load fixtures from a directory instead of the embedded set")
	flag.StringVar(&cfg.Email, "email", cfg.Email, "demo user email")
	flag.StringVar(&cfg.Password, "password", cfg.Password, "demo user password")
	flag.BoolVar(&demo, "demo", false, "replay a scripted quoting scenario before printing views")
	flag.Parse()

	log.SetPrefix("[SEED] ")
	log.SetFlags(0)

	if err := run(cfg, demo); err != nil {
		log.Fatalf("seed: %v", err)
	}
}

func run(cfg seedConfig, demo bool) error {
	snapshot, err := loadSnapshot(cfg.FixturesDir)
	if err != nil {
		return err
	}

	store := state.NewStore(snapshot)

	user, err := session.Authenticate(store.Snapshot().Users, cfg.Email, cfg.Password)
	if err != nil {
		return err
	}
	if _, err := store.Dispatch(state.SetCurrentUser{User: user}); err != nil {
		return err
	}
	log.Printf("signed in as %s (%s)", user.Name, user.Role)

	if demo {
		if err := replayDemo(store); err != nil {
			return err
		}
	}

	printViews(store.Snapshot())
	printJournal(store.Journal())
	return nil
}

func loadSnapshot(dir string) (state.Snapshot, error) {
	if dir != "" {
		log.Printf("loading fixtures from %s", dir)
		return fixtures.LoadDir(dir)
	}
	return fixtures.Load()
}

// replayDemo runs the canonical quoting flow end to end: a provider quotes
// an open service and the requester accepts the new quote.
func replayDemo(store *state.Store) error {
	snapshot := store.Snapshot()

	var target domain.Service
	found := false
	for _, service := range snapshot.Services {
		if service.Status == domain.StatusPublished && len(service.QuoteIDs) == 0 {
			target = service
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no published service without quotes to demo against")
	}

	var provider domain.User
	found = false
	for _, user := range snapshot.Users {
		if user.Role == domain.RoleServiceProvider {
			provider = user
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("no service provider in fixtures to demo with")
	}

	quote, err := domain.NewQuote(domain.CreateQuoteInput{
		ServiceID:    target.ID,
		ProviderID:   provider.ID,
		Total:        39000,
		DurationDays: 6,
		Notes:        "Demo quote, immediate availability.",
	}, nil, nil)
	if err != nil {
		return err
	}

	if _, err := store.Dispatch(state.CreateQuote{Quote: quote}); err != nil {
		return err
	}
	log.Printf("demo: %s quoted %q for %.0f", provider.Name, target.Title, quote.Total)

	if _, err := store.Dispatch(state.AcceptQuoteForService{ServiceID: target.ID, QuoteID: quote.ID}); err != nil {
		return err
	}
	log.Print("demo: quote accepted, service assigned")
	return nil
}

func printViews(snapshot state.Snapshot) {
	gate := session.NewGate(snapshot)
	if !gate.SignedIn() {
		log.Print("nobody signed in")
		return
	}
	user := *snapshot.CurrentUser

	visible := view.RoleScopedServices(snapshot.Services, user)
	log.Printf("%d visible services", len(visible))
	for _, entry := range view.FilterServices(visible, view.ServiceFilter{}) {
		log.Printf("  [%s] %s (%s, %s): %d quotes",
			entry.Status, entry.Title, entry.Category, entry.City,
			view.QuoteCount(snapshot.Quotes, entry.ID))
	}

	switch {
	case gate.CanPostServices():
		stats := view.RequesterDashboard(snapshot.Services, snapshot.Quotes, user.ID)
		log.Printf("dashboard: %d published, %d under review, %d quotes received",
			stats.Published, stats.UnderReview, stats.QuotesReceived)
		for _, recent := range view.RecentServices(snapshot.Services, snapshot.Quotes, user.ID, 3) {
			log.Printf("  recent: %s (%d quotes)", recent.Service.Title, recent.QuoteCount)
		}

	case gate.CanQuote():
		stats := view.ProviderQuoteStats(snapshot.Quotes, snapshot.Services, user.ID)
		log.Printf("quotes: %d sent, %d pending, %d accepted, %d on completed services",
			stats.Sent, stats.Pending, stats.Accepted, stats.CompletedServices)
		groups := view.GroupMyQuotes(view.MyQuotes(snapshot.Quotes, snapshot.Services, user.ID))
		log.Printf("  %d on published services, %d under review",
			len(groups.Published), len(groups.UnderReview))

	case gate.CanManageSupplies():
		stats := view.SupplyProviderStats(snapshot.Supplies, snapshot.Offers, user.ID)
		log.Printf("catalog: %d items, %d total stock, %d packs",
			stats.CatalogCount, stats.TotalStock, stats.OfferCount)
		for _, supply := range view.ProviderSupplies(snapshot.Supplies, user.ID) {
			log.Printf("  %s: %.0f per %s, %d in stock",
				supply.Name, supply.UnitPrice, supply.Unit, supply.Stock)
		}
	}
}

func printJournal(entries []state.Entry) {
	log.Printf("%d actions applied", len(entries))
	for _, entry := range entries {
		log.Printf("  #%d %s", entry.Seq, entry.Kind)
	}
}
