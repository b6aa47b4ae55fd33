package controllers

import (
	"context"
	"net/http"
	"testing"

	testutils "github.com/alex-pricope/festival-results/api/controllers/testing"
	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplacementEndpoints(t *testing.T) {
	app := setupTestApp(t)
	app.seed(t)

	request := models.CreateReplacementRequest{
		ProgramID:    "solo",
		OldStudentID: "sX",
		NewStudentID: "s2X",
		TeamID:       "X",
		Reason:       "injury",
	}

	var id string
	t.Run("Happy path - team requests a replacement", func(t *testing.T) {
		w := testutils.PerformRequest(app.router, http.MethodPost, "/api/replacements", request, testutils.TeamHeaders("X"))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		id = decode[models.IDResponse](t, w).ID
	})

	t.Run("Unhappy path - duplicate pending request", func(t *testing.T) {
		w := testutils.PerformRequest(app.router, http.MethodPost, "/api/replacements", request, testutils.TeamHeaders("X"))
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "DUPLICATE_PENDING_REQUEST", decode[models.ErrorResponse](t, w).Code)
	})

	t.Run("Unhappy path - same student on both sides", func(t *testing.T) {
		same := request
		same.NewStudentID = same.OldStudentID
		w := testutils.PerformRequest(app.router, http.MethodPost, "/api/replacements", same, testutils.TeamHeaders("X"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Happy path - teams only list their own", func(t *testing.T) {
		w := testutils.PerformRequest(app.router, http.MethodGet, "/api/replacements", nil, testutils.TeamHeaders("Y"))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode[[]storage.Replacement](t, w))

		w = testutils.PerformRequest(app.router, http.MethodGet, "/api/replacements?status=pending", nil, testutils.AdminHeaders())
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]storage.Replacement](t, w), 1)
	})

	t.Run("Unhappy path - invalid outcome", func(t *testing.T) {
		w := testutils.PerformRequest(app.router, http.MethodPost, "/api/replacements/"+id+"/decision",
			models.DecisionRequest{Outcome: "maybe"}, testutils.AdminHeaders())
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Happy path - admin approves and the swap is applied", func(t *testing.T) {
		w := testutils.PerformRequest(app.router, http.MethodPost, "/api/replacements/"+id+"/decision",
			models.DecisionRequest{Outcome: "approved"}, testutils.AdminHeaders())
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, storage.StatusApproved, decode[storage.Replacement](t, w).Status)

		ctx := context.Background()
		old, err := app.stores.Registrations.Get(ctx, "solo", "sX")
		require.NoError(t, err)
		assert.Nil(t, old)
		replacement, err := app.stores.Registrations.Get(ctx, "solo", "s2X")
		require.NoError(t, err)
		assert.NotNil(t, replacement)
	})

	t.Run("Unhappy path - deciding twice", func(t *testing.T) {
		w := testutils.PerformRequest(app.router, http.MethodPost, "/api/replacements/"+id+"/decision",
			models.DecisionRequest{Outcome: "rejected"}, testutils.AdminHeaders())
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "INVALID_TRANSITION", decode[models.ErrorResponse](t, w).Code)
	})

	t.Run("Unhappy path - team cannot decide", func(t *testing.T) {
		w := testutils.PerformRequest(app.router, http.MethodPost, "/api/replacements/"+id+"/decision",
			models.DecisionRequest{Outcome: "approved"}, testutils.TeamHeaders("X"))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestReplacementWhileRegistrationOpen(t *testing.T) {
	app := setupTestApp(t)
	app.seed(t)
	openWindow(t, app)

	w := testutils.PerformRequest(app.router, http.MethodPost, "/api/replacements", models.CreateReplacementRequest{
		ProgramID: "solo", OldStudentID: "sX", NewStudentID: "s2X", TeamID: "X",
	}, testutils.TeamHeaders("X"))
	require.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "REGISTRATION_OPEN", decode[models.ErrorResponse](t, w).Code)
}
