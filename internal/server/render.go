package server

import "class-quiz-challenge/internal/game"

// renderState is the server-side stand-in for the rendering engine: it
// records every line segment and widget value the session pushes, and the
// websocket snapshot mirrors it to the browser. It implements both
// game.LineRenderer and game.Display.
//
// renderState is only ever touched under the store mutex, because the
// session that drives it is.
type renderState struct {
	nextLine game.LineID
	lines    map[game.LineID]*renderLine
	sprites  map[string]string
	texts    map[string]string
	timer    int
	coins    int
	progress float64
	result   *renderResult
}

type renderLine struct {
	From game.Point
	To   game.Point
}

type renderResult struct {
	Status     game.Status
	Stars      int
	Repeatable bool
}

func newRenderState() *renderState {
	return &renderState{
		nextLine: 1,
		lines:    make(map[game.LineID]*renderLine),
		sprites:  make(map[string]string),
		texts:    make(map[string]string),
	}
}

func (r *renderState) DrawLine(from, to game.Point) game.LineID {
	id := r.nextLine
	r.nextLine++
	r.lines[id] = &renderLine{From: from, To: to}
	return id
}

func (r *renderState) MoveLine(id game.LineID, to game.Point) {
	if line, ok := r.lines[id]; ok {
		line.To = to
	}
}

func (r *renderState) DestroyLine(id game.LineID) {
	delete(r.lines, id)
}

func (r *renderState) SetSprite(endpointID, image string) {
	r.sprites[endpointID] = image
}

func (r *renderState) SetText(endpointID, text string) {
	r.texts[endpointID] = text
}

func (r *renderState) SetTimer(seconds int) {
	r.timer = seconds
}

func (r *renderState) SetCoins(coins int) {
	r.coins = coins
}

func (r *renderState) SetProgress(value float64) {
	r.progress = value
}

func (r *renderState) ShowResult(status game.Status, stars int, repeatable bool) {
	r.result = &renderResult{Status: status, Stars: stars, Repeatable: repeatable}
}

func (r *renderState) ClearResult() {
	r.result = nil
}
