package server

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		t.Skipf("skipping test; listen unavailable: %v", err)
	}
	ts := &httptest.Server{
		Listener: listener,
		Config:   &http.Server{Handler: handler},
	}
	ts.Start()
	return ts
}

func createGame(t *testing.T, ts *httptest.Server) (string, string) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games", nil)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	body := decodeBody(t, resp)
	return body["game_id"].(string), body["control_token"].(string)
}

func startGame(t *testing.T, ts *httptest.Server, gameID, token string) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/start", map[string]string{
		"control_token": token,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func fetchSnapshot(t *testing.T, ts *httptest.Server, gameID string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodGet, "/api/games/"+gameID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

// boardPairs reads the current round's board and returns the label id each
// picture should connect to, shifted by offset; offset 0 is the correct
// pairing.
func boardPairs(t *testing.T, srv *Server, gameID string, offset int) [][2]string {
	t.Helper()
	var pairs [][2]string
	_, err := srv.store.UpdateGame(gameID, func(g *Game) error {
		labels := g.Session.Labels()
		for _, pic := range g.Session.Pictures() {
			match := -1
			for i, label := range labels {
				if label.Item.Name == pic.Item.Name {
					match = i
					break
				}
			}
			if match < 0 {
				t.Fatalf("no label for picture item %s", pic.Item.Name)
			}
			pairs = append(pairs, [2]string{pic.ID, labels[(match+offset)%len(labels)].ID})
		}
		return nil
	})
	if err != nil {
		t.Fatalf("read board: %v", err)
	}
	return pairs
}

func dragConnect(t *testing.T, ts *httptest.Server, gameID, token, pictureID, labelID string) {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/drag", map[string]any{
		"control_token": token,
		"action":        "start",
		"target":        pictureID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("drag start: expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	resp = doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/drag", map[string]any{
		"control_token": token,
		"action":        "drop",
		"target":        labelID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("drag drop: expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	if body := decodeBody(t, resp); body["connected"] != true {
		t.Fatalf("expected drop %s -> %s to connect", pictureID, labelID)
	}
	resp = doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/drag", map[string]any{
		"control_token": token,
		"action":        "end",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("drag end: expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
}

func connectAllPairs(t *testing.T, srv *Server, ts *httptest.Server, gameID, token string, offset int) {
	t.Helper()
	for _, pair := range boardPairs(t, srv, gameID, offset) {
		dragConnect(t, ts, gameID, token, pair[0], pair[1])
	}
}

func checkRound(t *testing.T, ts *httptest.Server, gameID, token string) map[string]any {
	t.Helper()
	resp := doRequest(t, ts, http.MethodPost, "/api/games/"+gameID+"/check", map[string]string{
		"control_token": token,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("check: expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	return decodeBody(t, resp)
}

func doRequest(t *testing.T, ts *httptest.Server, method, path string, payload any) *http.Response {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func doRequestNoRedirect(t *testing.T, ts *httptest.Server, method, path string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, ts.URL+path, nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func assertString(t *testing.T, value any) {
	t.Helper()
	if _, ok := value.(string); !ok {
		t.Fatalf("expected string, got %T", value)
	}
}
