package catalog

import (
	"testing"

	"github.com/calebmarsh/tend/internal/models"
)

func TestGet(t *testing.T) {
	h, ok := Get("drink-water")
	if !ok {
		t.Fatal("drink-water missing from catalog")
	}
	if h.Name != "Drink More Water" {
		t.Errorf("name = %q", h.Name)
	}
	if h.Kind != models.HabitKindBuild {
		t.Errorf("kind = %q, want build", h.Kind)
	}
	if len(h.Methods) != 3 {
		t.Errorf("methods = %d, want 3", len(h.Methods))
	}

	if _, ok := Get("juggling"); ok {
		t.Error("unknown id resolved")
	}
}

func TestKinds(t *testing.T) {
	for _, h := range Build() {
		if h.Kind != models.HabitKindBuild {
			t.Errorf("%s listed as build but kind = %q", h.ID, h.Kind)
		}
	}
	for _, h := range Break() {
		if !h.IsBreak() {
			t.Errorf("%s listed as break but kind = %q", h.ID, h.Kind)
		}
	}
	if len(Break()) == 0 || len(Build()) == 0 {
		t.Fatal("catalog missing a section")
	}
}

func TestAllIsStable(t *testing.T) {
	if len(All()) != len(Build())+len(Break()) {
		t.Fatalf("All() = %d entries, want %d", len(All()), len(Build())+len(Break()))
	}

	// Build habits come first, in authored order.
	first := All()[0]
	if first.ID != Build()[0].ID {
		t.Errorf("first entry = %s, want %s", first.ID, Build()[0].ID)
	}
}

func TestEveryEntryIsComplete(t *testing.T) {
	for _, h := range All() {
		if h.ID == "" || h.Name == "" || h.Description == "" {
			t.Errorf("incomplete entry: %+v", h)
		}
		if len(h.Methods) == 0 {
			t.Errorf("%s has no methods", h.ID)
		}
		for _, m := range h.Methods {
			if m.Name == "" || m.Description == "" {
				t.Errorf("%s has an incomplete method", h.ID)
			}
		}
	}
}
