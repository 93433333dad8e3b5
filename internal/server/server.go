package server

import (
	"net/http"
	"sync"
	"time"

	"gorm.io/gorm"

	"class-quiz-challenge/internal/config"
	"class-quiz-challenge/internal/quiz"
)

type Server struct {
	store    *Store
	db       *gorm.DB
	ws       *wsHub
	cfg      config.Config
	catalog  quiz.Catalog
	timersMu sync.Mutex
	timers   map[string]*time.Timer
}

func New(conn *gorm.DB, catalog quiz.Catalog, cfg config.Config) *Server {
	return &Server{
		store:   NewStore(),
		db:      conn,
		ws:      newWSHub(),
		cfg:     cfg,
		catalog: catalog,
		timers:  make(map[string]*time.Timer),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", s.handleHome)
	mux.HandleFunc("GET /join/", s.handleJoinByCode)
	mux.HandleFunc("GET /games/", s.handleGameView)
	mux.HandleFunc("POST /api/games", s.handleCreateGame)
	mux.HandleFunc("GET /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("POST /api/games/", s.handleGameSubroutes)
	mux.HandleFunc("GET /ws/games/", s.handleWebsocket)
	admin := s.adminHandler()
	mux.Handle("GET /admin/", admin)
	mux.Handle("POST /admin/", admin)
	mux.Handle("DELETE /admin/", admin)
	return mux
}
