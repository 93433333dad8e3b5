package server

import (
	"errors"
	"net/http"
	"strings"

	"class-quiz-challenge/internal/game"
)

var (
	errAlreadyStarted    = errors.New("game already started")
	errUnknownDragAction = errors.New("unknown drag action")
	errUnknownTransition = errors.New("unknown transition")
)

// writeGameError maps closure errors onto HTTP statuses: token problems are
// 401, state-machine guards are 409, everything else is a bad request.
func (s *Server) writeGameError(w http.ResponseWriter, err error) {
	message := err.Error()
	switch {
	case strings.Contains(message, "control token"):
		writeError(w, http.StatusUnauthorized, message)
	case strings.Contains(message, "game not found"):
		writeError(w, http.StatusNotFound, message)
	case errors.Is(err, errAlreadyStarted),
		errors.Is(err, game.ErrRoundNotActive),
		errors.Is(err, game.ErrBoardIncomplete),
		errors.Is(err, game.ErrNotAfterLoss),
		errors.Is(err, game.ErrNotAfterWin),
		errors.Is(err, game.ErrRepeatNotOffered),
		errors.Is(err, game.ErrGameNotOver):
		writeError(w, http.StatusConflict, message)
	default:
		writeError(w, http.StatusBadRequest, message)
	}
}
