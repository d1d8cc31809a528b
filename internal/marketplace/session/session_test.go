package session

import (
	"errors"
	"testing"

	"github.com/obralink/obralink/internal/marketplace/domain"
	"github.com/obralink/obralink/internal/marketplace/state"
)

func TestGateWithoutUser(t *testing.T) {
	gate := NewGate(state.Snapshot{})

	if gate.SignedIn() {
		t.Fatal("expected no signed-in user")
	}
	if gate.Role() != "" {
		t.Fatalf("expected empty role, got %q", gate.Role())
	}
	if gate.CanPostServices() || gate.CanQuote() || gate.CanManageSupplies() {
		t.Fatal("expected no capabilities without a user")
	}
}

func TestGateCapabilitiesPerRole(t *testing.T) {
	tests := []struct {
		role     domain.Role
		post     bool
		quote    bool
		supplies bool
	}{
		{role: domain.RoleRequester, post: true},
		{role: domain.RoleServiceProvider, quote: true},
		{role: domain.RoleSupplyProvider, supplies: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			user := domain.User{ID: "u1", Role: tt.role}
			gate := NewGate(state.Snapshot{CurrentUser: &user})

			if !gate.SignedIn() {
				t.Fatal("expected signed-in user")
			}
			if !gate.Is(tt.role) {
				t.Fatalf("expected role %q", tt.role)
			}
			if gate.CanPostServices() != tt.post {
				t.Fatalf("post capability mismatch for %q", tt.role)
			}
			if gate.CanQuote() != tt.quote {
				t.Fatalf("quote capability mismatch for %q", tt.role)
			}
			if gate.CanManageSupplies() != tt.supplies {
				t.Fatalf("supplies capability mismatch for %q", tt.role)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	users := []domain.User{
		{ID: "u1", Email: "requester@test.com", Password: "123456", Role: domain.RoleRequester},
		{ID: "u2", Email: "provider@test.com", Password: "654321", Role: domain.RoleServiceProvider},
	}

	user, err := Authenticate(users, "provider@test.com", "654321")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.ID != "u2" {
		t.Fatalf("expected u2, got %q", user.ID)
	}

	if _, err := Authenticate(users, "provider@test.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := Authenticate(users, "nobody@test.com", "123456"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}
