package quiz

import (
	"errors"
	"math/rand"
	"time"
)

// ItemsPerRound is the number of picture/label pairs shown each round.
const ItemsPerRound = 3

var ErrCatalogTooSmall = errors.New("catalog needs at least 3 items")

// Picker samples each round's item pool from the catalog without repeats.
// Items move from available to used as they are drawn; when fewer than
// ItemsPerRound remain the used pool is merged back in (a full recycle, not
// per-item). Repeats are therefore impossible within one cycle and possible
// only across a recycle boundary.
type Picker struct {
	rng       *rand.Rand
	catalog   []Item
	available []Item
	used      []Item
}

func NewPicker(catalog Catalog) (*Picker, error) {
	return NewPickerWithSeed(catalog, time.Now().UnixNano())
}

func NewPickerWithSeed(catalog Catalog, seed int64) (*Picker, error) {
	if catalog.Len() < ItemsPerRound {
		return nil, ErrCatalogTooSmall
	}
	p := &Picker{
		rng:     rand.New(rand.NewSource(seed)),
		catalog: catalog.Items(),
	}
	p.Reset()
	return p, nil
}

// Reset returns every item to the available pool, as on a fresh game.
func (p *Picker) Reset() {
	p.available = make([]Item, len(p.catalog))
	copy(p.available, p.catalog)
	p.used = nil
}

// Remaining reports how many items are left before the next recycle.
func (p *Picker) Remaining() int {
	return len(p.available)
}

// NextPool draws the round's pool and an independently shuffled label order.
// The label permutation is decoupled from the picture order so the two
// columns are not trivially aligned.
func (p *Picker) NextPool() (pool []Item, labels []Item) {
	if len(p.available) < ItemsPerRound {
		p.available = append(p.available, p.used...)
		p.used = nil
	}

	picked := p.rng.Perm(len(p.available))[:ItemsPerRound]
	taken := make(map[int]struct{}, ItemsPerRound)
	pool = make([]Item, 0, ItemsPerRound)
	for _, i := range picked {
		pool = append(pool, p.available[i])
		taken[i] = struct{}{}
	}

	rest := p.available[:0]
	for i, item := range p.available {
		if _, ok := taken[i]; ok {
			continue
		}
		rest = append(rest, item)
	}
	p.available = rest
	p.used = append(p.used, pool...)

	labels = make([]Item, ItemsPerRound)
	copy(labels, pool)
	p.rng.Shuffle(len(labels), func(i, j int) {
		labels[i], labels[j] = labels[j], labels[i]
	})
	return pool, labels
}
