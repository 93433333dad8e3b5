package game

import "class-quiz-challenge/internal/quiz"

type Side string

const (
	SidePicture Side = "picture"
	SideLabel   Side = "label"
)

// Point is a renderer screen coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Endpoint is one connectable slot on the board. Its item is reassigned at
// every round start; the slot itself is fixed for the session.
type Endpoint struct {
	ID     string
	Side   Side
	Anchor Point
	Item   quiz.Item
}

// Board resolves input-target ids to endpoints. Visual children of a slot
// (the text inside a label button, for example) are registered as alias ids
// pointing at the owning endpoint, so resolution is a single map lookup
// rather than a scene-graph walk.
type Board struct {
	endpoints map[string]*Endpoint
	pictures  []*Endpoint
	labels    []*Endpoint
}

func NewBoard() *Board {
	return &Board{endpoints: make(map[string]*Endpoint)}
}

func (b *Board) AddPicture(ep *Endpoint) {
	b.endpoints[ep.ID] = ep
	b.pictures = append(b.pictures, ep)
}

func (b *Board) AddLabel(ep *Endpoint) {
	b.endpoints[ep.ID] = ep
	b.labels = append(b.labels, ep)
}

// Alias registers an extra target id that resolves to the same endpoint.
func (b *Board) Alias(id string, ep *Endpoint) {
	b.endpoints[id] = ep
}

// Resolve maps an input-target id to its owning endpoint. Unknown targets
// resolve to nothing; droppers treat that as a benign miss.
func (b *Board) Resolve(targetID string) (*Endpoint, bool) {
	ep, ok := b.endpoints[targetID]
	return ep, ok
}

func (b *Board) Pictures() []*Endpoint {
	return b.pictures
}

func (b *Board) Labels() []*Endpoint {
	return b.labels
}
