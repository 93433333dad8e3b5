package quiz

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewCatalogRejectsBadInput(t *testing.T) {
	cases := []struct {
		name  string
		items []Item
	}{
		{name: "empty catalog", items: nil},
		{name: "empty name", items: []Item{{Name: " ", Image: "x.png"}}},
		{name: "duplicate name", items: []Item{
			{Name: "Cat", Image: "cat.png"},
			{Name: "cat", Image: "cat2.png"},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCatalog(tc.items); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestNewCatalogDefaultsImageToName(t *testing.T) {
	catalog, err := NewCatalog([]Item{{Name: "Cat"}, {Name: "Dog", Image: "dog.png"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	items := catalog.Items()
	if items[0].Image != "Cat" {
		t.Fatalf("expected image fallback to name, got %q", items[0].Image)
	}
	if items[1].Image != "dog.png" {
		t.Fatalf("expected explicit image kept, got %q", items[1].Image)
	}
}

func TestCatalogItemsReturnsCopy(t *testing.T) {
	catalog, err := NewCatalog([]Item{{Name: "Cat", Image: "cat.png"}, {Name: "Dog", Image: "dog.png"}, {Name: "Fox", Image: "fox.png"}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	items := catalog.Items()
	items[0].Name = "Mutated"
	if catalog.Items()[0].Name != "Cat" {
		t.Fatalf("catalog mutated through Items copy")
	}
}

func TestBuiltinCoversTenRounds(t *testing.T) {
	if got := Builtin().Len(); got != 10*ItemsPerRound {
		t.Fatalf("expected %d builtin items, got %d", 10*ItemsPerRound, got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	payload := `[{"name":"Cat","image":"cat.png"},{"name":"Dog","image":"dog.png"},{"name":"Fox","image":"fox.png"}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	catalog, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if catalog.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", catalog.Len())
	}
}

func TestLoadFileRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
