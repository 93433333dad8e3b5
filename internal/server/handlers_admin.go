package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type adminGameURI struct {
	GameID string `uri:"gameID" binding:"required"`
}

type adminListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=idle round-active round-won round-lost game-over"`
}

type adminCreateRequest struct {
	TotalRounds  int `json:"total_rounds" binding:"omitempty,min=1,max=50"`
	RoundSeconds int `json:"round_seconds" binding:"omitempty,min=5,max=600"`
}

// adminHandler mounts the operator surface on its own gin engine: game
// listing and inspection, forced removal, catalog review and game creation
// with overridden round settings.
func (s *Server) adminHandler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/admin/api/games", s.handleAdminListGames)
	engine.POST("/admin/api/games", s.handleAdminCreateGame)
	engine.GET("/admin/api/games/:gameID", s.handleAdminGetGame)
	engine.DELETE("/admin/api/games/:gameID", s.handleAdminRemoveGame)
	engine.GET("/admin/api/catalog", s.handleAdminCatalog)
	return engine
}

func (s *Server) handleAdminListGames(c *gin.Context) {
	var query adminListQuery
	if !bindQuery(c, &query) {
		return
	}
	games := make([]gin.H, 0)
	for _, summary := range s.store.ListGameSummaries() {
		if query.Status != "" && summary.Status != query.Status {
			continue
		}
		games = append(games, gin.H{
			"game_id":   summary.ID,
			"join_code": summary.JoinCode,
			"status":    summary.Status,
			"round":     summary.Round,
			"coins":     summary.Coins,
		})
	}
	c.JSON(http.StatusOK, gin.H{"games": games})
}

func (s *Server) handleAdminCreateGame(c *gin.Context) {
	var req adminCreateRequest
	if !bindJSON(c, &req, bindMessages{
		"TotalRounds":  {"min": "total_rounds must be at least 1", "max": "total_rounds must be 50 or fewer"},
		"RoundSeconds": {"min": "round_seconds must be at least 5", "max": "round_seconds must be 600 or fewer"},
	}, "invalid game settings") {
		return
	}
	cfg := s.cfg
	if req.TotalRounds > 0 {
		cfg.TotalRounds = req.TotalRounds
	}
	if req.RoundSeconds > 0 {
		cfg.RoundSeconds = req.RoundSeconds
	}
	g, err := s.store.CreateGame(s.catalog, cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create game"})
		return
	}
	log.Printf("game created game_id=%s join_code=%s source=admin rounds=%d", g.ID, g.JoinCode, cfg.TotalRounds)
	c.JSON(http.StatusCreated, gin.H{
		"game_id":       g.ID,
		"join_code":     g.JoinCode,
		"control_token": g.ControlToken,
	})
}

func (s *Server) handleAdminGetGame(c *gin.Context) {
	var uri adminGameURI
	if !bindURI(c, &uri) {
		return
	}
	var payload map[string]any
	_, err := s.store.UpdateGame(uri.GameID, func(g *Game) error {
		payload = snapshot(g)
		return nil
	})
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, payload)
}

func (s *Server) handleAdminRemoveGame(c *gin.Context) {
	var uri adminGameURI
	if !bindURI(c, &uri) {
		return
	}
	if !s.store.RemoveGame(uri.GameID) {
		c.Status(http.StatusNotFound)
		return
	}
	s.cancelRoundTimer(uri.GameID)
	log.Printf("game removed game_id=%s source=admin", uri.GameID)
	c.JSON(http.StatusOK, gin.H{"removed": uri.GameID})
}

func (s *Server) handleAdminCatalog(c *gin.Context) {
	items := make([]gin.H, 0, s.catalog.Len())
	for _, item := range s.catalog.Items() {
		items = append(items, gin.H{"name": item.Name, "image": item.Image})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}
