package server

import (
	"testing"

	"class-quiz-challenge/internal/game"
)

func TestRenderStateLines(t *testing.T) {
	render := newRenderState()

	a := render.DrawLine(game.Point{X: 1, Y: 1}, game.Point{X: 1, Y: 1})
	b := render.DrawLine(game.Point{X: 2, Y: 2}, game.Point{X: 2, Y: 2})
	if a == b {
		t.Fatalf("expected distinct line ids")
	}

	render.MoveLine(a, game.Point{X: 5, Y: 5})
	if render.lines[a].To != (game.Point{X: 5, Y: 5}) {
		t.Fatalf("expected line end moved, got %+v", render.lines[a].To)
	}

	render.DestroyLine(a)
	if _, ok := render.lines[a]; ok {
		t.Fatalf("expected line destroyed")
	}
	// Moving or destroying a dead line must be harmless.
	render.MoveLine(a, game.Point{X: 9, Y: 9})
	render.DestroyLine(a)
	if len(render.lines) != 1 {
		t.Fatalf("expected one surviving line, got %d", len(render.lines))
	}
}

func TestRenderStateResultPanel(t *testing.T) {
	render := newRenderState()
	render.ShowResult(game.StatusRoundWon, 2, true)
	if render.result == nil || render.result.Stars != 2 || !render.result.Repeatable {
		t.Fatalf("unexpected result state: %+v", render.result)
	}
	render.ClearResult()
	if render.result != nil {
		t.Fatalf("expected result cleared")
	}
}

func TestRenderStateWidgets(t *testing.T) {
	render := newRenderState()
	render.SetSprite("picture-0", "animals/cat.png")
	render.SetText("label-0", "Cat")
	render.SetTimer(45)
	render.SetCoins(160)
	render.SetProgress(0.3)

	if render.sprites["picture-0"] != "animals/cat.png" {
		t.Fatalf("sprite not recorded")
	}
	if render.texts["label-0"] != "Cat" {
		t.Fatalf("text not recorded")
	}
	if render.timer != 45 || render.coins != 160 || render.progress != 0.3 {
		t.Fatalf("widget values not recorded: %d/%d/%v", render.timer, render.coins, render.progress)
	}
}
