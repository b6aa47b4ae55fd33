package controllers

import (
	"net/http"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin"
)

type AssignmentsController struct {
	roster *contest.JuryRoster
}

func NewAssignmentsController(r *contest.JuryRoster) *AssignmentsController {
	return &AssignmentsController{roster: r}
}

func (c *AssignmentsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/assignments")

	group.GET("", c.list)
	group.POST("", transport.AdminAuthMiddleware(), c.assign)
	group.DELETE("/:programId/:juryId", transport.AdminAuthMiddleware(), c.unassign)
}

// @Summary List jury assignments
// @Description Admins see every assignment, juries only their own.
// @Tags assignments
// @Produce json
// @Success 200 {array} storage.Assignment
// @Failure 403 {object} models.ErrorResponse
// @Router /api/assignments [get]
func (c *AssignmentsController) list(g *gin.Context) {
	assignments, err := c.roster.List(g.Request.Context(), transport.CallerFrom(g))
	if err != nil {
		respondError(g, "ASSIGNMENT", err)
		return
	}
	if assignments == nil {
		assignments = []*storage.Assignment{}
	}
	g.JSON(http.StatusOK, assignments)
}

// @Security AdminToken
// @Summary Assign a jury to a program
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body models.AssignRequest true "Assignment"
// @Success 201 {object} storage.Assignment
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/assignments [post]
func (c *AssignmentsController) assign(g *gin.Context) {
	var req models.AssignRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "ASSIGNMENT", err)
		return
	}

	assignment, err := c.roster.Assign(g.Request.Context(), transport.CallerFrom(g), req.ProgramID, req.JuryID)
	if err != nil {
		respondError(g, "ASSIGNMENT", err)
		return
	}
	g.JSON(http.StatusCreated, assignment)
}

// @Security AdminToken
// @Summary Remove a jury assignment
// @Tags assignments
// @Produce json
// @Param programId path string true "Program ID"
// @Param juryId path string true "Jury ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/assignments/{programId}/{juryId} [delete]
func (c *AssignmentsController) unassign(g *gin.Context) {
	if err := c.roster.Unassign(g.Request.Context(), transport.CallerFrom(g), g.Param("programId"), g.Param("juryId")); err != nil {
		respondError(g, "ASSIGNMENT", err)
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "assignment removed"})
}
