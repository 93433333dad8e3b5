package quiz

import (
	"errors"
	"testing"
)

func smallCatalog(t *testing.T, n int) Catalog {
	t.Helper()
	items := Builtin().Items()
	if n > len(items) {
		t.Fatalf("catalog fixture supports up to %d items", len(items))
	}
	catalog, err := NewCatalog(items[:n])
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return catalog
}

func TestPickerRejectsSmallCatalog(t *testing.T) {
	catalog, err := NewCatalog([]Item{{Name: "Cat"}, {Name: "Dog"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := NewPickerWithSeed(catalog, 1); !errors.Is(err, ErrCatalogTooSmall) {
		t.Fatalf("want ErrCatalogTooSmall, got %v", err)
	}
}

func TestNextPoolItemsDistinct(t *testing.T) {
	picker, err := NewPickerWithSeed(Builtin(), 7)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	pool, labels := picker.NextPool()
	if len(pool) != ItemsPerRound || len(labels) != ItemsPerRound {
		t.Fatalf("expected %d items, got %d/%d", ItemsPerRound, len(pool), len(labels))
	}
	seen := map[string]struct{}{}
	for _, item := range pool {
		if _, dup := seen[item.Name]; dup {
			t.Fatalf("pool item repeated: %s", item.Name)
		}
		seen[item.Name] = struct{}{}
	}
}

func TestLabelOrderIsPermutationOfPool(t *testing.T) {
	picker, err := NewPickerWithSeed(Builtin(), 11)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	pool, labels := picker.NextPool()
	inPool := map[string]struct{}{}
	for _, item := range pool {
		inPool[item.Name] = struct{}{}
	}
	for _, item := range labels {
		if _, ok := inPool[item.Name]; !ok {
			t.Fatalf("label %s not in pool", item.Name)
		}
	}
}

func TestNoRepeatsAcrossTenRounds(t *testing.T) {
	// 30 items covers exactly ten recycle-free rounds.
	picker, err := NewPickerWithSeed(Builtin(), 42)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	seen := map[string]int{}
	for round := 1; round <= 10; round++ {
		pool, _ := picker.NextPool()
		for _, item := range pool {
			if prev, dup := seen[item.Name]; dup {
				t.Fatalf("item %s repeated in rounds %d and %d", item.Name, prev, round)
			}
			seen[item.Name] = round
		}
	}
	if len(seen) != 30 {
		t.Fatalf("expected all 30 items used, got %d", len(seen))
	}
	if picker.Remaining() != 0 {
		t.Fatalf("expected empty pool after ten rounds, got %d", picker.Remaining())
	}
}

func TestRecycleMergesUsedPool(t *testing.T) {
	picker, err := NewPickerWithSeed(smallCatalog(t, 4), 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	picker.NextPool()
	if picker.Remaining() != 1 {
		t.Fatalf("expected 1 item before recycle, got %d", picker.Remaining())
	}
	pool, _ := picker.NextPool()
	if len(pool) != ItemsPerRound {
		t.Fatalf("expected full pool after recycle, got %d", len(pool))
	}
	if picker.Remaining() != 1 {
		t.Fatalf("expected 1 item after recycled draw, got %d", picker.Remaining())
	}
}

func TestResetRestoresFullPool(t *testing.T) {
	picker, err := NewPickerWithSeed(Builtin(), 5)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	picker.NextPool()
	picker.NextPool()
	picker.Reset()
	if picker.Remaining() != 30 {
		t.Fatalf("expected full pool after reset, got %d", picker.Remaining())
	}
}
