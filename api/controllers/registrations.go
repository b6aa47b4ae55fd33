package controllers

import (
	"net/http"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin"
)

// RegistrationsController serves program registrations and the registration
// window setting.
type RegistrationsController struct {
	desk *contest.RegistrationDesk
}

func NewRegistrationsController(d *contest.RegistrationDesk) *RegistrationsController {
	return &RegistrationsController{desk: d}
}

func (c *RegistrationsController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/registrations")
	group.POST("", c.register)
	group.GET("/:programId", c.listByProgram)
	group.DELETE("/:programId/:studentId", c.unregister)

	settings := engine.Group("/api/settings")
	settings.GET("/registration-window", c.getWindow)
	settings.PUT("/registration-window", transport.AdminAuthMiddleware(), c.setWindow)
}

// @Security TeamToken
// @Summary Register a student for a program
// @Tags registrations
// @Accept json
// @Produce json
// @Param registration body models.RegisterRequest true "Registration"
// @Success 201 {object} storage.Registration
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/registrations [post]
func (c *RegistrationsController) register(g *gin.Context) {
	var req models.RegisterRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "REGISTRATION", err)
		return
	}

	registration, err := c.desk.Register(g.Request.Context(), transport.CallerFrom(g), req.ProgramID, req.StudentID, req.TeamID)
	if err != nil {
		respondError(g, "REGISTRATION", err)
		return
	}
	g.JSON(http.StatusCreated, registration)
}

// @Summary List registrations of a program
// @Tags registrations
// @Produce json
// @Param programId path string true "Program ID"
// @Success 200 {array} storage.Registration
// @Failure 404 {object} models.ErrorResponse
// @Router /api/registrations/{programId} [get]
func (c *RegistrationsController) listByProgram(g *gin.Context) {
	registrations, err := c.desk.ListByProgram(g.Request.Context(), g.Param("programId"))
	if err != nil {
		respondError(g, "REGISTRATION", err)
		return
	}
	if registrations == nil {
		registrations = []*storage.Registration{}
	}
	g.JSON(http.StatusOK, registrations)
}

// @Security TeamToken
// @Summary Remove a registration
// @Tags registrations
// @Produce json
// @Param programId path string true "Program ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} models.MessageResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/registrations/{programId}/{studentId} [delete]
func (c *RegistrationsController) unregister(g *gin.Context) {
	err := c.desk.Unregister(g.Request.Context(), transport.CallerFrom(g), g.Param("programId"), g.Param("studentId"))
	if err != nil {
		respondError(g, "REGISTRATION", err)
		return
	}
	g.JSON(http.StatusOK, models.MessageResponse{Message: "registration removed"})
}

// @Summary Get the registration window
// @Tags settings
// @Produce json
// @Success 200 {object} models.RegistrationWindowResponse
// @Router /api/settings/registration-window [get]
func (c *RegistrationsController) getWindow(g *gin.Context) {
	window, open, err := c.desk.Window(g.Request.Context())
	if err != nil {
		respondError(g, "SETTINGS", err)
		return
	}
	g.JSON(http.StatusOK, models.TransformWindowFromStorage(window, open))
}

// @Security AdminToken
// @Summary Set the registration window
// @Tags settings
// @Accept json
// @Produce json
// @Param window body models.RegistrationWindowRequest true "Window bounds (RFC 3339)"
// @Success 200 {object} models.RegistrationWindowResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /api/settings/registration-window [put]
func (c *RegistrationsController) setWindow(g *gin.Context) {
	var req models.RegistrationWindowRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "SETTINGS", err)
		return
	}

	err := c.desk.SetWindow(g.Request.Context(), transport.CallerFrom(g), storage.RegistrationWindow{
		OpensAt:  req.OpensAt,
		ClosesAt: req.ClosesAt,
	})
	if err != nil {
		respondError(g, "SETTINGS", err)
		return
	}
	c.getWindow(g)
}
