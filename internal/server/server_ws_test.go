package server

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"class-quiz-challenge/internal/config"
	"class-quiz-challenge/internal/quiz"
)

func TestWebsocketSendsSnapshotOnConnect(t *testing.T) {
	srv := New(nil, quiz.Builtin(), config.Default())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	gameID, _ := createGame(t, ts)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/games/" + gameID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Skipf("skipping test; websocket dial unavailable: %v", err)
	}
	defer conn.Close()

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if payload["game_id"] != gameID {
		t.Fatalf("expected snapshot for %s, got %v", gameID, payload["game_id"])
	}
	if payload["status"] != "idle" {
		t.Fatalf("expected idle snapshot, got %v", payload["status"])
	}
}

func TestWebsocketReceivesStartBroadcast(t *testing.T) {
	srv := New(nil, quiz.Builtin(), config.Default())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	gameID, token := createGame(t, ts)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/games/" + gameID
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Skipf("skipping test; websocket dial unavailable: %v", err)
	}
	defer conn.Close()

	// First message is the connect snapshot, the next one the start broadcast.
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err != nil {
		t.Fatalf("read connect snapshot: %v", err)
	}

	startGame(t, ts, gameID, token)

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("decode broadcast: %v", err)
	}
	if payload["status"] != "round-active" {
		t.Fatalf("expected active round broadcast, got %v", payload["status"])
	}
}

func TestWebsocketUnknownGame(t *testing.T) {
	srv := New(nil, quiz.Builtin(), config.Default())
	ts := newTestServer(t, srv.Handler())
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/games/no-such-game"
	if _, _, err := websocket.DefaultDialer.Dial(wsURL, nil); err == nil {
		t.Fatalf("expected dial to unknown game to fail")
	}
}
