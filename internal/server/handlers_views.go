package server

import (
	"html"
	"net/http"
	"strconv"
	"strings"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	var b strings.Builder
	b.WriteString(homeHTMLHead)
	b.WriteString("<ul>")
	for _, summary := range s.store.ListGameSummaries() {
		b.WriteString(`<li><a href="/games/` + html.EscapeString(summary.ID) + `">`)
		b.WriteString(html.EscapeString(summary.ID))
		b.WriteString("</a> code " + html.EscapeString(summary.JoinCode))
		b.WriteString(" round " + strconv.Itoa(summary.Round))
		b.WriteString(" " + html.EscapeString(summary.Status))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
	b.WriteString(homeHTMLTail)
	writeHTML(w, b.String())
}

func (s *Server) handleJoinByCode(w http.ResponseWriter, r *http.Request) {
	code, ok := parseJoinPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	g, found := s.store.FindGameByJoinCode(code)
	if !found {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/games/"+g.ID, http.StatusFound)
}

func (s *Server) handleGameView(w http.ResponseWriter, r *http.Request) {
	gameID, ok := parseGameViewPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if _, exists := s.store.GetGame(gameID); !exists {
		http.NotFound(w, r)
		return
	}
	page := strings.ReplaceAll(gamePageHTML, "{{GAME_ID}}", html.EscapeString(gameID))
	writeHTML(w, page)
}

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}
