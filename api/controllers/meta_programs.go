package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin"
)

// ProgramMetaController manages programs. A program with a published result
// can no longer be edited or removed.
type ProgramMetaController struct {
	programs storage.ProgramStorage
	results  storage.ResultStorage
}

func NewProgramMetaController(programs storage.ProgramStorage, results storage.ResultStorage) *ProgramMetaController {
	return &ProgramMetaController{programs: programs, results: results}
}

func (c *ProgramMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/programs")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

func (c *ProgramMetaController) ensureUnpublished(ctx context.Context, id string) error {
	published, err := c.results.IsPublished(ctx, id)
	if err != nil {
		return fmt.Errorf("check publication of %s: %w", id, err)
	}
	if published {
		return fmt.Errorf("%w: %s", contest.ErrProgramPublished, id)
	}
	return nil
}

// @Summary Get all programs
// @Tags Meta/Programs
// @Produce json
// @Success 200 {array} storage.Program
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/programs [get]
func (c *ProgramMetaController) getAll(g *gin.Context) {
	programs, err := c.programs.GetAll(g.Request.Context())
	if err != nil {
		respondError(g, "META", err)
		return
	}
	if programs == nil {
		programs = []*storage.Program{}
	}
	g.JSON(http.StatusOK, programs)
}

// @Summary Get a program by ID
// @Tags Meta/Programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} storage.Program
// @Failure 404 {object} models.ErrorResponse
// @Router /api/meta/programs/{id} [get]
func (c *ProgramMetaController) get(g *gin.Context) {
	program, err := c.programs.Get(g.Request.Context(), g.Param("id"))
	if err != nil {
		respondError(g, "META", err)
		return
	}
	if program == nil {
		respondError(g, "META", contest.ErrProgramNotFound)
		return
	}
	g.JSON(http.StatusOK, program)
}

// @Security AdminToken
// @Summary Create a program
// @Tags Meta/Programs
// @Accept json
// @Produce json
// @Param program body models.ProgramCreateRequest true "Program object"
// @Success 201 {object} storage.Program
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/meta/programs [post]
func (c *ProgramMetaController) create(g *gin.Context) {
	var req models.ProgramCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "META", err)
		return
	}
	id, err := newMetaID(req.ID)
	if err != nil {
		respondError(g, "META", err)
		return
	}

	program := models.ProgramFromCreate(id, req)
	if err := c.programs.Create(g.Request.Context(), program); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "program with ID already exists", Code: "ALREADY_EXISTS"})
			return
		}
		respondError(g, "META", err)
		return
	}
	logging.Log.Infof("META: created %s program %s", program.Section, program.ID)
	g.JSON(http.StatusCreated, program)
}

// @Security AdminToken
// @Summary Update a program
// @Tags Meta/Programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param program body models.ProgramUpdateRequest true "Program update object"
// @Success 200 {object} storage.Program
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/meta/programs/{id} [put]
func (c *ProgramMetaController) update(g *gin.Context) {
	var req models.ProgramUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "META", err)
		return
	}
	id := g.Param("id")
	if err := c.ensureUnpublished(g.Request.Context(), id); err != nil {
		respondError(g, "META", err)
		return
	}

	program := models.ProgramFromUpdate(id, req)
	if err := c.programs.Update(g.Request.Context(), program); err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			respondError(g, "META", contest.ErrProgramNotFound)
			return
		}
		respondError(g, "META", err)
		return
	}
	g.JSON(http.StatusOK, program)
}

// @Security AdminToken
// @Summary Delete a program
// @Tags Meta/Programs
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} models.MessageResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/meta/programs/{id} [delete]
func (c *ProgramMetaController) delete(g *gin.Context) {
	id := g.Param("id")
	if err := c.ensureUnpublished(g.Request.Context(), id); err != nil {
		respondError(g, "META", err)
		return
	}
	if err := c.programs.Delete(g.Request.Context(), id); err != nil {
		respondError(g, "META", err)
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "program deleted"})
}
