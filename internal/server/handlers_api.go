package server

import (
	"log"
	"net/http"
	"strings"

	"class-quiz-challenge/internal/game"
)

type dragRequest struct {
	ControlToken string  `json:"control_token"`
	Action       string  `json:"action"`
	Target       string  `json:"target"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

type controlRequest struct {
	ControlToken string `json:"control_token"`
}

func (s *Server) handleCreateGame(w http.ResponseWriter, r *http.Request) {
	g, err := s.store.CreateGame(s.catalog, s.cfg)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create game")
		return
	}
	log.Printf("game created game_id=%s join_code=%s", g.ID, g.JoinCode)
	writeJSON(w, http.StatusCreated, map[string]string{
		"game_id":       g.ID,
		"join_code":     g.JoinCode,
		"control_token": g.ControlToken,
	})
}

func (s *Server) handleGameSubroutes(w http.ResponseWriter, r *http.Request) {
	gameID, action, ok := parseGamePath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if r.Method == http.MethodGet {
		if action != "" {
			http.NotFound(w, r)
			return
		}
		s.handleGetGame(w, r, gameID)
		return
	}
	switch action {
	case "start":
		s.handleStartGame(w, r, gameID)
	case "drag":
		s.handleDrag(w, r, gameID)
	case "check":
		s.handleCheck(w, r, gameID)
	case "retry":
		s.handleTransition(w, r, gameID, "retry")
	case "repeat":
		s.handleTransition(w, r, gameID, "repeat")
	case "next":
		s.handleTransition(w, r, gameID, "next")
	case "again":
		s.handleTransition(w, r, gameID, "again")
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request, gameID string) {
	var payload map[string]any
	_, err := s.store.UpdateGame(gameID, func(g *Game) error {
		payload = snapshot(g)
		return nil
	})
	if err != nil {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request, gameID string) {
	var req controlRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	g, err := s.store.UpdateGame(gameID, func(g *Game) error {
		if err := requireControl(g, req.ControlToken); err != nil {
			return err
		}
		if g.Session.Status() != game.StatusIdle {
			return errAlreadyStarted
		}
		g.Session.Start()
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	log.Printf("game started game_id=%s round=%d", g.ID, g.Session.Round())
	s.scheduleRoundTimer(gameID)
	s.broadcastGame(gameID)
	writeJSON(w, http.StatusOK, map[string]any{"status": string(g.Session.Status())})
}

// handleDrag feeds one gesture event into the session. Events arrive in the
// fixed order start -> move* -> drop? -> end; anything out of order is a
// benign no-op in the tracker, so the handler never fails on game state.
func (s *Server) handleDrag(w http.ResponseWriter, r *http.Request, gameID string) {
	var req dragRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	connected := false
	_, err := s.store.UpdateGame(gameID, func(g *Game) error {
		if err := requireControl(g, req.ControlToken); err != nil {
			return err
		}
		switch strings.ToLower(req.Action) {
		case "start":
			g.Session.DragStart(req.Target)
		case "move":
			g.Session.DragMove(game.Point{X: req.X, Y: req.Y})
		case "drop":
			connected = g.Session.Drop(req.Target)
		case "end":
			g.Session.DragEnd()
		default:
			return errUnknownDragAction
		}
		return nil
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	s.broadcastGame(gameID)
	writeJSON(w, http.StatusOK, map[string]any{"connected": connected})
}

func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request, gameID string) {
	var req controlRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	won := false
	g, err := s.store.UpdateGame(gameID, func(g *Game) error {
		if err := requireControl(g, req.ControlToken); err != nil {
			return err
		}
		var checkErr error
		won, checkErr = g.Session.CheckResult()
		return checkErr
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	s.cancelRoundTimer(gameID)
	log.Printf("round checked game_id=%s round=%d won=%t attempts=%d coins=%d",
		g.ID, g.Session.Round(), won, g.Session.Attempts(), g.Session.Coins())
	s.broadcastGame(gameID)
	writeJSON(w, http.StatusOK, map[string]any{
		"won":      won,
		"stars":    g.Session.Stars(),
		"coins":    g.Session.Coins(),
		"attempts": g.Session.Attempts(),
	})
}

// handleTransition covers the four round-boundary buttons: retry after a
// loss, repeat after a low-star win, next after a win and play-again from
// the game-over panel.
func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request, gameID, kind string) {
	var req controlRequest
	if err := readJSON(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	g, err := s.store.UpdateGame(gameID, func(g *Game) error {
		if err := requireControl(g, req.ControlToken); err != nil {
			return err
		}
		switch kind {
		case "retry":
			return g.Session.RetryRound()
		case "repeat":
			return g.Session.RepeatRound()
		case "next":
			return g.Session.NextRound()
		case "again":
			return g.Session.PlayAgain()
		}
		return errUnknownTransition
	})
	if err != nil {
		s.writeGameError(w, err)
		return
	}
	if g.Session.Status() == game.StatusRoundActive {
		s.scheduleRoundTimer(gameID)
	} else {
		s.cancelRoundTimer(gameID)
	}
	log.Printf("game transition game_id=%s kind=%s status=%s round=%d",
		g.ID, kind, g.Session.Status(), g.Session.Round())
	s.broadcastGame(gameID)
	writeJSON(w, http.StatusOK, map[string]any{
		"status": string(g.Session.Status()),
		"round":  g.Session.Round(),
	})
}
