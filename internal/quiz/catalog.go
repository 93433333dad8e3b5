package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Item is one (name, image) pair in the quiz catalog. Image is an opaque
// asset reference; the core never interprets it.
type Item struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Catalog is the fixed set of quiz items loaded once at startup.
type Catalog struct {
	items []Item
}

func NewCatalog(items []Item) (Catalog, error) {
	if len(items) == 0 {
		return Catalog{}, errors.New("catalog is empty")
	}
	seen := make(map[string]struct{}, len(items))
	cleaned := make([]Item, 0, len(items))
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return Catalog{}, errors.New("catalog item has empty name")
		}
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return Catalog{}, fmt.Errorf("catalog item repeated: %s", name)
		}
		seen[key] = struct{}{}
		image := strings.TrimSpace(item.Image)
		if image == "" {
			image = name
		}
		cleaned = append(cleaned, Item{Name: name, Image: image})
	}
	return Catalog{items: cleaned}, nil
}

func (c Catalog) Len() int {
	return len(c.items)
}

func (c Catalog) Items() []Item {
	items := make([]Item, len(c.items))
	copy(items, c.items)
	return items
}

// LoadFile reads a JSON catalog: an array of {"name": ..., "image": ...}.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return NewCatalog(items)
}

// Builtin is the default classroom catalog used when neither a database nor
// a catalog file is configured. 30 items covers ten 3-item rounds without a
// recycle.
func Builtin() Catalog {
	names := []string{
		"Cat", "Dog", "Elephant", "Giraffe", "Lion", "Tiger",
		"Zebra", "Monkey", "Panda", "Rabbit", "Horse", "Sheep",
		"Cow", "Pig", "Duck", "Owl", "Fox", "Bear",
		"Wolf", "Deer", "Frog", "Turtle", "Snake", "Crocodile",
		"Penguin", "Dolphin", "Whale", "Shark", "Octopus", "Seal",
	}
	items := make([]Item, 0, len(names))
	for _, name := range names {
		items = append(items, Item{
			Name:  name,
			Image: "animals/" + strings.ToLower(name) + ".png",
		})
	}
	catalog, err := NewCatalog(items)
	if err != nil {
		panic(err)
	}
	return catalog
}
