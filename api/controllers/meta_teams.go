package controllers

import (
	"errors"
	"net/http"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newMetaID keeps a client-chosen id and generates one otherwise.
func newMetaID(requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	return gonanoid.Generate(idAlphabet, 8)
}

type TeamMetaController struct {
	storage storage.TeamStorage
}

func NewTeamMetaController(s storage.TeamStorage) *TeamMetaController {
	return &TeamMetaController{storage: s}
}

func (c *TeamMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/teams")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

// @Summary Get all teams
// @Tags Meta/Teams
// @Produce json
// @Success 200 {array} storage.Team
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams [get]
func (c *TeamMetaController) getAll(g *gin.Context) {
	teams, err := c.storage.GetAll(g.Request.Context())
	if err != nil {
		logging.Log.Errorf("META: failed to get all teams: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
		return
	}
	if teams == nil {
		teams = []*storage.Team{}
	}
	g.JSON(http.StatusOK, teams)
}

// @Summary Get a team by ID
// @Tags Meta/Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} storage.Team
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{id} [get]
func (c *TeamMetaController) get(g *gin.Context) {
	team, err := c.storage.Get(g.Request.Context(), g.Param("id"))
	if err != nil {
		logging.Log.Errorf("META: failed to get team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
		return
	}
	if team == nil {
		g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found", Code: "TEAM_NOT_FOUND"})
		return
	}
	g.JSON(http.StatusOK, team)
}

// @Security AdminToken
// @Summary Create a team
// @Tags Meta/Teams
// @Accept json
// @Produce json
// @Param team body models.TeamCreateRequest true "Team object"
// @Success 201 {object} storage.Team
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams [post]
func (c *TeamMetaController) create(g *gin.Context) {
	var req models.TeamCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "META", err)
		return
	}
	id, err := newMetaID(req.ID)
	if err != nil {
		logging.Log.Errorf("META: failed to generate team id: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
		return
	}

	team := &storage.Team{ID: id, Name: req.Name, Description: req.Description}
	if err := c.storage.Create(g.Request.Context(), team); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			logging.Log.Warnf("META: team with ID %s already exists", id)
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "team with ID already exists", Code: "ALREADY_EXISTS"})
			return
		}
		logging.Log.Errorf("META: failed to create team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
		return
	}
	g.JSON(http.StatusCreated, team)
}

// @Security AdminToken
// @Summary Update an existing team
// @Tags Meta/Teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param team body models.TeamUpdateRequest true "Team update object"
// @Success 200 {object} storage.Team
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{id} [put]
func (c *TeamMetaController) update(g *gin.Context) {
	var req models.TeamUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "META", err)
		return
	}

	team := &storage.Team{ID: g.Param("id"), Name: req.Name, Description: req.Description}
	if err := c.storage.Update(g.Request.Context(), team); err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			g.JSON(http.StatusNotFound, models.ErrorResponse{Error: "team not found", Code: "TEAM_NOT_FOUND"})
			return
		}
		logging.Log.Errorf("META: failed to update team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
		return
	}
	g.JSON(http.StatusOK, team)
}

// @Security AdminToken
// @Summary Delete a team
// @Tags Meta/Teams
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/teams/{id} [delete]
func (c *TeamMetaController) delete(g *gin.Context) {
	if err := c.storage.Delete(g.Request.Context(), g.Param("id")); err != nil {
		logging.Log.Errorf("META: failed to delete team: %v", err)
		g.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "team deleted"})
}
