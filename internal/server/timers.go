package server

import (
	"log"
	"time"

	"class-quiz-challenge/internal/game"
)

const tickInterval = time.Second

// scheduleRoundTimer arms the one-second tick chain for a game. Each tick
// advances the session's countdown accumulator; the chain stops by itself
// once the round leaves RoundActive (timeout included).
func (s *Server) scheduleRoundTimer(gameID string) {
	s.timersMu.Lock()
	if existing, ok := s.timers[gameID]; ok {
		existing.Stop()
	}
	s.timers[gameID] = time.AfterFunc(tickInterval, func() {
		s.tickRound(gameID)
	})
	s.timersMu.Unlock()
}

func (s *Server) cancelRoundTimer(gameID string) {
	s.timersMu.Lock()
	defer s.timersMu.Unlock()
	if timer, ok := s.timers[gameID]; ok {
		timer.Stop()
		delete(s.timers, gameID)
	}
}

func (s *Server) tickRound(gameID string) {
	g, err := s.store.UpdateGame(gameID, func(g *Game) error {
		g.Session.Advance(tickInterval)
		return nil
	})
	if err != nil {
		s.cancelRoundTimer(gameID)
		return
	}
	if g.Session.Status() == game.StatusRoundActive {
		s.scheduleRoundTimer(gameID)
	} else {
		s.cancelRoundTimer(gameID)
		if g.Session.Status() == game.StatusRoundLost && g.Session.RemainingSeconds() == 0 {
			log.Printf("round timed out game_id=%s round=%d", gameID, g.Session.Round())
		}
	}
	s.broadcastGame(gameID)
}
