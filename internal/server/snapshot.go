package server

import (
	"sort"

	"class-quiz-challenge/internal/game"
)

// snapshot builds the full client-facing view of a game: session values,
// board contents and the render state (lines, widgets, result panel). The
// websocket hub pushes it on every mutation; GET returns the same payload.
func snapshot(g *Game) map[string]any {
	session := g.Session

	pictures := make([]map[string]any, 0, len(session.Pictures()))
	for _, ep := range session.Pictures() {
		pictures = append(pictures, map[string]any{
			"id":     ep.ID,
			"image":  g.Render.sprites[ep.ID],
			"anchor": ep.Anchor,
		})
	}
	labels := make([]map[string]any, 0, len(session.Labels()))
	for _, ep := range session.Labels() {
		labels = append(labels, map[string]any{
			"id":     ep.ID,
			"text":   g.Render.texts[ep.ID],
			"anchor": ep.Anchor,
		})
	}

	connections := make([]map[string]any, 0, len(session.Connections()))
	for _, conn := range session.Connections() {
		connections = append(connections, map[string]any{
			"start": conn.Start.ID,
			"end":   conn.End.ID,
		})
	}

	lines := make([]map[string]any, 0, len(g.Render.lines))
	for id, line := range g.Render.lines {
		lines = append(lines, map[string]any{
			"id":   int(id),
			"from": line.From,
			"to":   line.To,
		})
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i]["id"].(int) < lines[j]["id"].(int)
	})

	payload := map[string]any{
		"game_id":          g.ID,
		"join_code":        g.JoinCode,
		"status":           string(session.Status()),
		"round":            session.Round(),
		"total_rounds":     session.TotalRounds(),
		"attempts":         session.Attempts(),
		"remaining":        session.RemainingSeconds(),
		"coins":            session.Coins(),
		"progress":         session.Progress(),
		"can_check":        session.CanCheck(),
		"repeat_available": session.RepeatAvailable(),
		"pictures":         pictures,
		"labels":           labels,
		"connections":      connections,
		"lines":            lines,
	}

	if result := g.Render.result; result != nil {
		payload["result"] = map[string]any{
			"status":     string(result.Status),
			"stars":      result.Stars,
			"repeatable": result.Repeatable,
		}
	}
	if session.Status() == game.StatusGameOver {
		payload["final_score"] = session.Coins()
	}
	return payload
}
