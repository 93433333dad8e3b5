package server

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"class-quiz-challenge/internal/config"
	"class-quiz-challenge/internal/game"
	"class-quiz-challenge/internal/quiz"
)

// Game is one hosted play session: the flow-controller session plus the
// render state the browser mirrors.
type Game struct {
	ID           string
	JoinCode     string
	ControlToken string
	CreatedAt    time.Time
	Session      *game.Session
	Render       *renderState
}

type GameSummary struct {
	ID       string
	JoinCode string
	Status   string
	Round    int
	Coins    int
}

// Store holds the running games behind one mutex. Every session mutation
// goes through UpdateGame, which serializes the session, tracker and render
// state against both handlers and timer callbacks.
type Store struct {
	mu     sync.Mutex
	nextID int
	games  map[string]*Game
}

func NewStore() *Store {
	return &Store{
		nextID: 1,
		games:  make(map[string]*Game),
	}
}

func (s *Store) CreateGame(catalog quiz.Catalog, cfg config.Config) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	render := newRenderState()
	rules := game.Rules{
		TotalRounds: cfg.TotalRounds,
		RoundTime:   time.Duration(cfg.RoundSeconds) * time.Second,
	}
	session, err := game.NewSession(catalog, render, render, rules)
	if err != nil {
		return nil, err
	}

	id := fmt.Sprintf("game-%d", s.nextID)
	s.nextID++
	g := &Game{
		ID:           id,
		JoinCode:     newJoinCode(),
		ControlToken: uuid.NewString(),
		CreatedAt:    timeNowUTC(),
		Session:      session,
		Render:       render,
	}
	s.games[id] = g
	return g, nil
}

func (s *Store) GetGame(id string) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	return g, ok
}

func (s *Store) UpdateGame(id string, update func(g *Game) error) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[id]
	if !ok {
		return nil, errors.New("game not found")
	}
	if err := update(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Store) FindGameByJoinCode(code string) (*Game, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, g := range s.games {
		if g.JoinCode == code {
			return g, true
		}
	}
	return nil, false
}

func (s *Store) RemoveGame(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return false
	}
	delete(s.games, id)
	return true
}

func (s *Store) ListGameSummaries() []GameSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]GameSummary, 0, len(s.games))
	for _, g := range s.games {
		list = append(list, GameSummary{
			ID:       g.ID,
			JoinCode: g.JoinCode,
			Status:   string(g.Session.Status()),
			Round:    g.Session.Round(),
			Coins:    g.Session.Coins(),
		})
	}
	sort.Slice(list, func(i, j int) bool {
		return gameSortKey(list[i].ID) < gameSortKey(list[j].ID)
	})
	return list
}

func gameSortKey(id string) int {
	parts := strings.Split(id, "-")
	if len(parts) < 2 {
		return 0
	}
	value, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0
	}
	return value
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
