package game

import (
	"errors"
	"fmt"
	"time"

	"class-quiz-challenge/internal/quiz"
)

type Status string

const (
	StatusIdle        Status = "idle"
	StatusRoundActive Status = "round-active"
	StatusRoundWon    Status = "round-won"
	StatusRoundLost   Status = "round-lost"
	StatusGameOver    Status = "game-over"
)

var (
	ErrRoundNotActive   = errors.New("round not active")
	ErrBoardIncomplete  = errors.New("connect all three pairs first")
	ErrNotAfterLoss     = errors.New("round not lost")
	ErrNotAfterWin      = errors.New("round not won")
	ErrRepeatNotOffered = errors.New("repeat only offered below three stars")
	ErrGameNotOver      = errors.New("game not over")
)

// Display is the widget surface the session pushes values into: sprites and
// label text each round, the countdown, the coin counter, the progress bar
// and the result panels. It never reads anything back.
type Display interface {
	SetSprite(endpointID, image string)
	SetText(endpointID, text string)
	SetTimer(seconds int)
	SetCoins(coins int)
	SetProgress(value float64)
	ShowResult(status Status, stars int, repeatable bool)
	ClearResult()
}

type nopDisplay struct{}

func (nopDisplay) SetSprite(endpointID, image string)               {}
func (nopDisplay) SetText(endpointID, text string)                  {}
func (nopDisplay) SetTimer(seconds int)                             {}
func (nopDisplay) SetCoins(coins int)                               {}
func (nopDisplay) SetProgress(value float64)                        {}
func (nopDisplay) ShowResult(status Status, stars int, repeat bool) {}
func (nopDisplay) ClearResult()                                     {}

// Rules are the designer-tunable constants of a session.
type Rules struct {
	TotalRounds int
	RoundTime   time.Duration
}

func DefaultRules() Rules {
	return Rules{TotalRounds: 10, RoundTime: 60 * time.Second}
}

// Session is the game flow controller for one local play session. It owns
// the round lifecycle (Idle -> RoundActive -> Won/Lost -> next round or
// GameOver), the attempt/star/coin accounting and the connection tracker.
// Time advances only through Advance; input arrives only through the drag
// and button methods. Callers serialize access.
type Session struct {
	rules   Rules
	picker  *quiz.Picker
	tracker *Tracker
	board   *Board
	display Display

	status     Status
	round      int
	attempts   int
	remaining  time.Duration
	coins      int
	stars      int
	pool       []quiz.Item
	labelOrder []quiz.Item
}

func NewSession(catalog quiz.Catalog, renderer LineRenderer, display Display, rules Rules) (*Session, error) {
	return newSession(catalog, renderer, display, rules, time.Now().UnixNano())
}

// NewSessionWithSeed fixes the sampling seed; tests use it for reproducible
// pools.
func NewSessionWithSeed(catalog quiz.Catalog, renderer LineRenderer, display Display, rules Rules, seed int64) (*Session, error) {
	return newSession(catalog, renderer, display, rules, seed)
}

func newSession(catalog quiz.Catalog, renderer LineRenderer, display Display, rules Rules, seed int64) (*Session, error) {
	if rules.TotalRounds <= 0 || rules.RoundTime <= 0 {
		return nil, errors.New("invalid session rules")
	}
	picker, err := quiz.NewPickerWithSeed(catalog, seed)
	if err != nil {
		return nil, err
	}
	if display == nil {
		display = nopDisplay{}
	}
	s := &Session{
		rules:   rules,
		picker:  picker,
		tracker: NewTracker(renderer),
		board:   newSessionBoard(),
		display: display,
		status:  StatusIdle,
	}
	return s, nil
}

// newSessionBoard lays out three picture slots and three label slots with
// fixed anchors, plus alias ids for the text child inside each label button.
func newSessionBoard() *Board {
	board := NewBoard()
	for i := 0; i < quiz.ItemsPerRound; i++ {
		picture := &Endpoint{
			ID:     fmt.Sprintf("picture-%d", i),
			Side:   SidePicture,
			Anchor: Point{X: 120, Y: 100 + float64(i)*140},
		}
		board.AddPicture(picture)

		label := &Endpoint{
			ID:     fmt.Sprintf("label-%d", i),
			Side:   SideLabel,
			Anchor: Point{X: 520, Y: 100 + float64(i)*140},
		}
		board.AddLabel(label)
		board.Alias(label.ID+"/text", label)
	}
	return board
}

// Start begins a new game: coins to zero, round one, full item pool.
func (s *Session) Start() {
	s.coins = 0
	s.round = 1
	s.picker.Reset()
	s.beginRound(true, true)
}

func (s *Session) beginRound(resample, resetAttempts bool) {
	s.tracker.ClearAll()
	if resample {
		s.pool, s.labelOrder = s.picker.NextPool()
	}
	for i, ep := range s.board.Pictures() {
		ep.Item = s.pool[i]
		s.display.SetSprite(ep.ID, ep.Item.Image)
	}
	for i, ep := range s.board.Labels() {
		ep.Item = s.labelOrder[i]
		s.display.SetText(ep.ID, ep.Item.Name)
	}
	if resetAttempts {
		s.attempts = 0
	}
	s.remaining = s.rules.RoundTime
	s.status = StatusRoundActive
	s.display.ClearResult()
	s.display.SetTimer(s.RemainingSeconds())
	s.display.SetCoins(s.coins)
	s.display.SetProgress(s.Progress())
}

// Advance moves the countdown forward by the elapsed time. Reaching zero
// while the round is active loses the round, the same path as a wrong
// answer.
func (s *Session) Advance(delta time.Duration) {
	if s.status != StatusRoundActive || delta <= 0 {
		return
	}
	s.remaining -= delta
	s.display.SetTimer(s.RemainingSeconds())
	if s.remaining <= 0 {
		s.loseRound()
	}
}

func (s *Session) loseRound() {
	s.tracker.ClearAll()
	s.status = StatusRoundLost
	s.display.ShowResult(StatusRoundLost, 0, false)
}

// DragStart begins a line from the resolved endpoint. Starting on an
// already-connected endpoint breaks that connection first, which is how a
// player re-routes a line.
func (s *Session) DragStart(targetID string) {
	if s.status != StatusRoundActive {
		return
	}
	ep, ok := s.board.Resolve(targetID)
	if !ok {
		return
	}
	if s.tracker.IsConnected(ep) {
		s.tracker.BreakConnection(ep)
	}
	s.tracker.BeginLine(ep)
}

func (s *Session) DragMove(at Point) {
	if s.status != StatusRoundActive {
		return
	}
	s.tracker.UpdateLine(at)
}

// Drop attempts to complete the pending line on the drop target. Unknown
// targets and drops with no active drag are ignored.
func (s *Session) Drop(targetID string) bool {
	if s.status != StatusRoundActive {
		return false
	}
	ep, _ := s.board.Resolve(targetID)
	return s.tracker.TryComplete(ep)
}

// DragEnd closes the gesture; a line not finalized by a successful drop is
// destroyed. Safe to call in any state.
func (s *Session) DragEnd() {
	s.tracker.EndLine()
}

func (s *Session) CanCheck() bool {
	return s.status == StatusRoundActive && s.tracker.Count() == quiz.ItemsPerRound
}

// CheckResult validates the three connections. Every pair must link a
// picture and a label holding the same item name; one mismatch loses the
// round and clears the board. The attempts counter feeds the star award.
func (s *Session) CheckResult() (bool, error) {
	if s.status != StatusRoundActive {
		return false, ErrRoundNotActive
	}
	if s.tracker.Count() != quiz.ItemsPerRound {
		return false, ErrBoardIncomplete
	}
	s.attempts++
	for _, conn := range s.tracker.Connections() {
		if conn.Start.Item.Name != conn.End.Item.Name {
			s.loseRound()
			return false, nil
		}
	}
	stars, award := scoreForAttempts(s.attempts)
	s.stars = stars
	s.coins += award
	s.status = StatusRoundWon
	s.display.SetCoins(s.coins)
	s.display.ShowResult(StatusRoundWon, stars, s.RepeatAvailable())
	return true, nil
}

// RetryRound replays a lost round: same pool, same label order, timer back
// to full. The attempts counter is deliberately NOT reset on this path.
func (s *Session) RetryRound() error {
	if s.status != StatusRoundLost {
		return ErrNotAfterLoss
	}
	s.beginRound(false, false)
	return nil
}

// RepeatRound replays a won round to improve its star score. Only offered
// below three stars; attempts start fresh here, unlike the loss path.
func (s *Session) RepeatRound() error {
	if s.status != StatusRoundWon {
		return ErrNotAfterWin
	}
	if !s.RepeatAvailable() {
		return ErrRepeatNotOffered
	}
	s.beginRound(false, true)
	return nil
}

// NextRound advances after a win; past the final round the game ends with
// the accumulated coins as the final score.
func (s *Session) NextRound() error {
	if s.status != StatusRoundWon {
		return ErrNotAfterWin
	}
	s.tracker.ClearAll()
	s.round++
	if s.round > s.rules.TotalRounds {
		s.status = StatusGameOver
		s.display.ShowResult(StatusGameOver, 0, false)
		return nil
	}
	s.beginRound(true, true)
	return nil
}

// PlayAgain restarts from round one with the full pool and zero coins.
func (s *Session) PlayAgain() error {
	if s.status != StatusGameOver {
		return ErrGameNotOver
	}
	s.Start()
	return nil
}

// scoreForAttempts maps the round's attempt count to stars and coins.
func scoreForAttempts(attempts int) (stars, coins int) {
	switch {
	case attempts <= 1:
		return 3, 100
	case attempts <= 3:
		return 2, 60
	case attempts <= 5:
		return 1, 30
	default:
		return 0, 10
	}
}

func (s *Session) Status() Status   { return s.status }
func (s *Session) Round() int       { return s.round }
func (s *Session) TotalRounds() int { return s.rules.TotalRounds }
func (s *Session) Attempts() int    { return s.attempts }
func (s *Session) Coins() int       { return s.coins }
func (s *Session) Stars() int       { return s.stars }

func (s *Session) RepeatAvailable() bool {
	return s.status == StatusRoundWon && s.stars < 3
}

// RemainingSeconds is the countdown as shown to the player: whole seconds,
// never below zero.
func (s *Session) RemainingSeconds() int {
	if s.remaining <= 0 {
		return 0
	}
	return int((s.remaining + time.Second - 1) / time.Second)
}

// Progress is the progress-bar value: completed rounds over total.
func (s *Session) Progress() float64 {
	if s.round == 0 {
		return 0
	}
	return float64(s.round-1) / float64(s.rules.TotalRounds)
}

func (s *Session) Pictures() []*Endpoint { return s.board.Pictures() }
func (s *Session) Labels() []*Endpoint   { return s.board.Labels() }

func (s *Session) Connections() []Connection { return s.tracker.Connections() }

func (s *Session) IsConnected(targetID string) bool {
	ep, ok := s.board.Resolve(targetID)
	if !ok {
		return false
	}
	return s.tracker.IsConnected(ep)
}
