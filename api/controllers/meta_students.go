package controllers

import (
	"errors"
	"net/http"

	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/realtime"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin"
)

// StudentMetaController manages students. Every successful write is
// announced on the students channel.
type StudentMetaController struct {
	students storage.StudentStorage
	teams    storage.TeamStorage
	events   realtime.Publisher
}

func NewStudentMetaController(students storage.StudentStorage, teams storage.TeamStorage, events realtime.Publisher) *StudentMetaController {
	return &StudentMetaController{students: students, teams: teams, events: events}
}

func (c *StudentMetaController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/meta/students")

	group.GET("", c.getAll)
	group.GET("/:id", c.get)
	group.POST("", transport.AdminAuthMiddleware(), c.create)
	group.PUT("/:id", transport.AdminAuthMiddleware(), c.update)
	group.DELETE("/:id", transport.AdminAuthMiddleware(), c.delete)
}

func (c *StudentMetaController) publish(kind realtime.Kind) {
	if err := c.events.Publish(realtime.ChannelStudents, kind); err != nil {
		logging.Log.Errorf("META: failed to publish students.%s event: %v", kind, err)
	}
}

// teamExists answers 400 and returns false when the team is unknown.
func (c *StudentMetaController) teamExists(g *gin.Context, teamID string) bool {
	team, err := c.teams.Get(g.Request.Context(), teamID)
	if err != nil {
		respondError(g, "META", err)
		return false
	}
	if team == nil {
		g.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "team " + teamID + " does not exist", Code: "TEAM_NOT_FOUND"})
		return false
	}
	return true
}

// @Summary Get all students
// @Tags Meta/Students
// @Produce json
// @Param teamId query string false "Only students of this team"
// @Success 200 {array} storage.Student
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/students [get]
func (c *StudentMetaController) getAll(g *gin.Context) {
	students, err := c.students.GetAll(g.Request.Context())
	if err != nil {
		respondError(g, "META", err)
		return
	}
	teamID := g.Query("teamId")
	out := make([]*storage.Student, 0, len(students))
	for _, s := range students {
		if teamID == "" || s.TeamID == teamID {
			out = append(out, s)
		}
	}
	g.JSON(http.StatusOK, out)
}

// @Summary Get a student by ID
// @Tags Meta/Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} storage.Student
// @Failure 404 {object} models.ErrorResponse
// @Router /api/meta/students/{id} [get]
func (c *StudentMetaController) get(g *gin.Context) {
	student, err := c.students.Get(g.Request.Context(), g.Param("id"))
	if err != nil {
		respondError(g, "META", err)
		return
	}
	if student == nil {
		respondError(g, "META", contest.ErrStudentNotFound)
		return
	}
	g.JSON(http.StatusOK, student)
}

// @Security AdminToken
// @Summary Create a student
// @Tags Meta/Students
// @Accept json
// @Produce json
// @Param student body models.StudentCreateRequest true "Student object"
// @Success 201 {object} storage.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /api/meta/students [post]
func (c *StudentMetaController) create(g *gin.Context) {
	var req models.StudentCreateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "META", err)
		return
	}
	if !c.teamExists(g, req.TeamID) {
		return
	}
	id, err := newMetaID(req.ID)
	if err != nil {
		respondError(g, "META", err)
		return
	}

	student := &storage.Student{ID: id, Name: req.Name, TeamID: req.TeamID, Class: req.Class}
	if err := c.students.Create(g.Request.Context(), student); err != nil {
		if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
			g.JSON(http.StatusConflict, models.ErrorResponse{Error: "student with ID already exists", Code: "ALREADY_EXISTS"})
			return
		}
		respondError(g, "META", err)
		return
	}
	c.publish(realtime.KindCreated)
	g.JSON(http.StatusCreated, student)
}

// @Security AdminToken
// @Summary Update a student
// @Tags Meta/Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param student body models.StudentUpdateRequest true "Student update object"
// @Success 200 {object} storage.Student
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/meta/students/{id} [put]
func (c *StudentMetaController) update(g *gin.Context) {
	var req models.StudentUpdateRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		respondBindingError(g, "META", err)
		return
	}
	if !c.teamExists(g, req.TeamID) {
		return
	}

	student := &storage.Student{ID: g.Param("id"), Name: req.Name, TeamID: req.TeamID, Class: req.Class}
	if err := c.students.Update(g.Request.Context(), student); err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			respondError(g, "META", contest.ErrStudentNotFound)
			return
		}
		respondError(g, "META", err)
		return
	}
	c.publish(realtime.KindUpdated)
	g.JSON(http.StatusOK, student)
}

// @Security AdminToken
// @Summary Delete a student
// @Tags Meta/Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.MessageResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/meta/students/{id} [delete]
func (c *StudentMetaController) delete(g *gin.Context) {
	if err := c.students.Delete(g.Request.Context(), g.Param("id")); err != nil {
		respondError(g, "META", err)
		return
	}
	c.publish(realtime.KindDeleted)
	g.JSON(http.StatusOK, models.MessageResponse{Message: "student deleted"})
}
