package server

import (
	"crypto/subtle"
	"errors"
	"strings"
)

// requireControl checks the per-game control token issued at creation.
// Every mutating endpoint demands it; snapshots are free to read.
func requireControl(g *Game, provided string) error {
	if g == nil {
		return errors.New("game not found")
	}
	provided = strings.TrimSpace(provided)
	if provided == "" {
		return errors.New("control token required")
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(g.ControlToken)) != 1 {
		return errors.New("invalid control token")
	}
	return nil
}
