package history

import (
	"fmt"
	"testing"

	"github.com/tidewater-app/boatid/internal/models"
)

func entryWithID(id string) Entry {
	return Entry{
		ID: id,
		Result: models.IdentificationResult{
			Success:  true,
			Filename: id + ".jpg",
			IsBoat:   true,
		},
	}
}

func TestEmptyStore(t *testing.T) {
	store := New(10)

	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
	if _, ok := store.Latest(); ok {
		t.Error("Latest() reported an entry on an empty store")
	}
	if entries := store.All(); len(entries) != 0 {
		t.Errorf("All() returned %d entries, want 0", len(entries))
	}
}

func TestAddKeepsNewestFirst(t *testing.T) {
	store := New(10)
	store.Add(entryWithID("first"))
	store.Add(entryWithID("second"))
	store.Add(entryWithID("third"))

	latest, ok := store.Latest()
	if !ok {
		t.Fatal("Latest() found no entry")
	}
	if latest.ID != "third" {
		t.Errorf("Latest().ID = %q, want %q", latest.ID, "third")
	}

	entries := store.All()
	want := []string{"third", "second", "first"}
	if len(entries) != len(want) {
		t.Fatalf("All() returned %d entries, want %d", len(entries), len(want))
	}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("All()[%d].ID = %q, want %q", i, entries[i].ID, id)
		}
	}
}

func TestAddDropsOldestAtLimit(t *testing.T) {
	store := New(3)
	for i := 1; i <= 5; i++ {
		store.Add(entryWithID(fmt.Sprintf("entry-%d", i)))
	}

	if store.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", store.Len())
	}

	entries := store.All()
	want := []string{"entry-5", "entry-4", "entry-3"}
	for i, id := range want {
		if entries[i].ID != id {
			t.Errorf("All()[%d].ID = %q, want %q", i, entries[i].ID, id)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	store := New(10)
	store.Add(entryWithID("original"))

	entries := store.All()
	entries[0].ID = "mutated"

	latest, _ := store.Latest()
	if latest.ID != "original" {
		t.Errorf("store entry mutated through All() copy: ID = %q", latest.ID)
	}
}

func TestZeroLimitUsesDefault(t *testing.T) {
	store := New(0)
	for i := 0; i < DefaultLimit+5; i++ {
		store.Add(entryWithID(fmt.Sprintf("entry-%d", i)))
	}

	if store.Len() != DefaultLimit {
		t.Errorf("Len() = %d, want %d", store.Len(), DefaultLimit)
	}
}
