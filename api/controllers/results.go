package controllers

import (
	"net/http"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin"
)

type ResultsController struct {
	lifecycle *contest.ResultLifecycle
}

func NewResultsController(l *contest.ResultLifecycle) *ResultsController {
	return &ResultsController{lifecycle: l}
}

func (c *ResultsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/results")

	group.POST("", c.submit)
	group.GET("", c.list)
	group.GET("/:id", c.get)
	group.POST("/:id/approve", transport.AdminAuthMiddleware(), c.approve)
	group.POST("/:id/reject", transport.AdminAuthMiddleware(), c.reject)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Security JuryToken
// @Summary Submit a result for a program
// @Description Submits the first, second and third placements. The result stays pending until an admin approves it.
// @Tags results
// @Accept json
// @Produce json
// @Param result body models.SubmitResultRequest true "Placements and penalties"
// @Success 201 {object} models.IDResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/results [post]
func (c *ResultsController) submit(g *gin.Context) {
	var req models.SubmitResultRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "RESULT", err)
		return
	}

	result, err := c.lifecycle.Submit(g.Request.Context(), transport.CallerFrom(g), contest.Submission{
		ProgramID: req.ProgramID,
		Entries:   models.ToEntries(req.Entries),
		Penalties: models.ToPenalties(req.Penalties),
	})
	if err != nil {
		respondError(g, "RESULT", err)
		return
	}
	g.JSON(http.StatusCreated, models.IDResponse{ID: result.ID})
}

// @Summary List results
// @Tags results
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} models.ResultResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /api/results [get]
func (c *ResultsController) list(g *gin.Context) {
	status := storage.ResultStatus(g.Query("status"))
	switch status {
	case "", storage.StatusPending, storage.StatusApproved, storage.StatusRejected:
	default:
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "unknown status", Code: "INVALID_REQUEST"})
		return
	}

	results, err := c.lifecycle.List(g.Request.Context(), transport.CallerFrom(g), status)
	if err != nil {
		respondError(g, "RESULT", err)
		return
	}

	responses := make([]models.ResultResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, models.TransformResultFromStorage(r))
	}
	g.JSON(http.StatusOK, responses)
}

// @Summary Get a result
// @Tags results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} models.ResultResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/results/{id} [get]
func (c *ResultsController) get(g *gin.Context) {
	result, err := c.lifecycle.Get(g.Request.Context(), transport.CallerFrom(g), g.Param("id"))
	if err != nil {
		respondError(g, "RESULT", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformResultFromStorage(result))
}

// @Security AdminToken
// @Summary Approve a pending result
// @Tags results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/results/{id}/approve [post]
func (c *ResultsController) approve(g *gin.Context) {
	if err := c.lifecycle.Approve(g.Request.Context(), transport.CallerFrom(g), g.Param("id")); err != nil {
		respondError(g, "RESULT", err)
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "result approved"})
}

// @Security AdminToken
// @Summary Reject a pending result
// @Tags results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/results/{id}/reject [post]
func (c *ResultsController) reject(g *gin.Context) {
	if err := c.lifecycle.Reject(g.Request.Context(), transport.CallerFrom(g), g.Param("id")); err != nil {
		respondError(g, "RESULT", err)
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "result rejected"})
}

// @Security AdminToken
// @Summary Edit an approved result
// @Tags results
// @Accept json
// @Produce json
// @Param id path string true "Result ID"
// @Param result body models.UpdateResultRequest true "Replacement placements and penalties"
// @Success 200 {object} models.ResultResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/results/{id} [put]
func (c *ResultsController) update(g *gin.Context) {
	var req models.UpdateResultRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "RESULT", err)
		return
	}

	result, err := c.lifecycle.Update(g.Request.Context(), transport.CallerFrom(g), g.Param("id"),
		models.ToEntries(req.Entries), models.ToPenalties(req.Penalties))
	if err != nil {
		respondError(g, "RESULT", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformResultFromStorage(result))
}

// @Security AdminToken
// @Summary Delete an approved result
// @Tags results
// @Produce json
// @Param id path string true "Result ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/results/{id} [delete]
func (c *ResultsController) delete(g *gin.Context) {
	if err := c.lifecycle.Delete(g.Request.Context(), transport.CallerFrom(g), g.Param("id")); err != nil {
		respondError(g, "RESULT", err)
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "result deleted"})
}
