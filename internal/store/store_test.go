package store

import (
	"context"
	"errors"
	"testing"

	"github.com/orionarts/sharpie/pkg/ship"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:", nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func sample(name string) *ship.Ship {
	s := ship.New()
	s.Name = name
	s.Country = "Testland"
	s.Kind = "Cruiser"
	s.Year = 1900
	s.Hull.SetDisplacement(7000)
	s.Hull.SetLwl(400)
	s.Hull.B = 60
	s.Hull.BB = 60
	s.Hull.T = 20
	return s
}

func TestSaveAndGet(t *testing.T) {
	st := openTest(t)
	ctx := context.Background()

	id, err := st.Save(ctx, sample("Repulse"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Repulse" || got.Hull.Disp != 7000 {
		t.Errorf("design did not survive round trip: %+v", got)
	}
}

func TestListFiltersByName(t *testing.T) {
	st := openTest(t)
	ctx := context.Background()

	for _, name := range []string{"Repulse", "Renown", "Majestic"} {
		if _, err := st.Save(ctx, sample(name)); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	all, err := st.List(ctx, "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 designs, got %d", len(all))
	}

	re, err := st.List(ctx, "re")
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(re) != 2 {
		t.Errorf("expected 2 matches for 're', got %d", len(re))
	}
}

func TestUpdate(t *testing.T) {
	st := openTest(t)
	ctx := context.Background()

	id, err := st.Save(ctx, sample("Repulse"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	d := sample("Repulse")
	d.Year = 1905
	if err := st.Update(ctx, id, d); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := st.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Year != 1905 {
		t.Errorf("expected updated year 1905, got %d", got.Year)
	}

	if err := st.Update(ctx, "no-such-id", d); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	st := openTest(t)
	ctx := context.Background()

	id, err := st.Save(ctx, sample("Repulse"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := st.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Get(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := st.Delete(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on double delete, got %v", err)
	}
}
