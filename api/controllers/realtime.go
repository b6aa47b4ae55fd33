package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/realtime"
	"github.com/gin-gonic/gin"
)

// RealtimeController exposes hub subscriptions as server-sent events and
// serves the live scoreboard that viewers re-fetch on every event.
type RealtimeController struct {
	hub       *realtime.Hub
	board     *contest.ScoreBoard
	keepAlive time.Duration
}

func NewRealtimeController(hub *realtime.Hub, board *contest.ScoreBoard, keepAlive time.Duration) *RealtimeController {
	if keepAlive <= 0 {
		keepAlive = 15 * time.Second
	}
	return &RealtimeController{hub: hub, board: board, keepAlive: keepAlive}
}

func (c *RealtimeController) RegisterRoutes(engine *gin.Engine) {
	engine.GET("/api/realtime", c.stream)
	engine.GET("/api/scores", c.scores)
}

// @Summary Live team scores
// @Description Totals over approved results only, highest first.
// @Tags scores
// @Produce json
// @Success 200 {array} contest.TeamScore
// @Failure 500 {object} models.ErrorResponse
// @Router /api/scores [get]
func (c *RealtimeController) scores(g *gin.Context) {
	scores, err := c.board.LiveScores(g.Request.Context())
	if err != nil {
		respondError(g, "SCORES", err)
		return
	}
	g.JSON(http.StatusOK, scores)
}

// @Summary Subscribe to change notifications
// @Description Server-sent events named channel.kind. Events carry no payload beyond their identity; clients re-fetch.
// @Tags realtime
// @Produce text/event-stream
// @Param channel query []string false "Channels to follow, all when omitted" collectionFormat(multi)
// @Success 200 {object} realtime.Event
// @Failure 400 {object} models.ErrorResponse
// @Router /api/realtime [get]
func (c *RealtimeController) stream(g *gin.Context) {
	var channels []realtime.Channel
	for _, name := range g.QueryArray("channel") {
		ch := realtime.Channel(name)
		if !realtime.ValidChannel(ch) {
			g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown channel " + name, Code: "UNKNOWN_CHANNEL"})
			return
		}
		channels = append(channels, ch)
	}

	sub, err := c.hub.Subscribe(channels...)
	if err != nil {
		respondError(g, "REALTIME", err)
		return
	}
	defer sub.Close()

	g.Header("Content-Type", "text/event-stream")
	g.Header("Cache-Control", "no-cache")
	g.Header("Connection", "keep-alive")
	g.Header("X-Accel-Buffering", "no")
	g.Status(http.StatusOK)
	if _, err := io.WriteString(g.Writer, ": connected\n\n"); err != nil {
		return
	}
	g.Writer.Flush()

	ticker := time.NewTicker(c.keepAlive)
	defer ticker.Stop()
	ctx := g.Request.Context()

	g.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-sub.C:
			if !ok {
				return false
			}
			g.SSEvent(ev.Name(), ev)
			return true
		case <-ticker.C:
			_, err := io.WriteString(w, ": keepalive\n\n")
			return err == nil
		case <-ctx.Done():
			return false
		}
	})
	logging.Log.Debugf("REALTIME: stream from %s closed", g.ClientIP())
}
