package controllers

import (
	"net/http"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin"
)

type ReplacementsController struct {
	lifecycle *contest.ReplacementLifecycle
}

func NewReplacementsController(l *contest.ReplacementLifecycle) *ReplacementsController {
	return &ReplacementsController{lifecycle: l}
}

func (c *ReplacementsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/replacements")

	group.POST("", c.create)
	group.GET("", c.list)
	group.POST("/:id/decision", transport.AdminAuthMiddleware(), c.decide)
}

// @Security TeamToken
// @Summary Request a candidate replacement
// @Description Only accepted after the registration window has closed and before the program is published.
// @Tags replacements
// @Accept json
// @Produce json
// @Param request body models.CreateReplacementRequest true "Replacement request"
// @Success 201 {object} models.IDResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/replacements [post]
func (c *ReplacementsController) create(g *gin.Context) {
	var req models.CreateReplacementRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "REPLACEMENT", err)
		return
	}

	created, err := c.lifecycle.Create(g.Request.Context(), transport.CallerFrom(g), contest.ReplacementInput{
		ProgramID:    req.ProgramID,
		OldStudentID: req.OldStudentID,
		NewStudentID: req.NewStudentID,
		TeamID:       req.TeamID,
		Reason:       req.Reason,
	})
	if err != nil {
		respondError(g, "REPLACEMENT", err)
		return
	}
	g.JSON(http.StatusCreated, models.IDResponse{ID: created.ID})
}

// @Summary List replacement requests
// @Description Team callers only see their own team's requests.
// @Tags replacements
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} storage.Replacement
// @Failure 403 {object} models.ErrorResponse
// @Router /api/replacements [get]
func (c *ReplacementsController) list(g *gin.Context) {
	requests, err := c.lifecycle.List(g.Request.Context(), transport.CallerFrom(g), storage.ResultStatus(g.Query("status")))
	if err != nil {
		respondError(g, "REPLACEMENT", err)
		return
	}
	g.JSON(http.StatusOK, requests)
}

// @Security AdminToken
// @Summary Approve or reject a pending replacement request
// @Tags replacements
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param decision body models.DecisionRequest true "approved or rejected"
// @Success 200 {object} storage.Replacement
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/replacements/{id}/decision [post]
func (c *ReplacementsController) decide(g *gin.Context) {
	var req models.DecisionRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "REPLACEMENT", err)
		return
	}

	decided, err := c.lifecycle.Decide(g.Request.Context(), transport.CallerFrom(g), g.Param("id"), contest.Outcome(req.Outcome))
	if err != nil {
		respondError(g, "REPLACEMENT", err)
		return
	}
	g.JSON(http.StatusOK, decided)
}
