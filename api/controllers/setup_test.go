package controllers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	testutils "github.com/alex-pricope/festival-results/api/controllers/testing"
	"github.com/alex-pricope/festival-results/api/models"
	"github.com/alex-pricope/festival-results/api/transport"
	"github.com/alex-pricope/festival-results/contest"
	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/metrics"
	"github.com/alex-pricope/festival-results/realtime"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	router *gin.Engine
	stores *storage.Stores
	hub    *realtime.Hub
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	logging.Log = logrus.New()
	require.NoError(t, models.RegisterBindingValidators())

	stores := storage.NewMemoryStores()
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)
	hub := realtime.NewHub(64, m)

	rules := contest.DefaultScoringRules()
	guard := contest.NewRegistrationGuard(stores.Programs, stores.Registrations)
	board := contest.NewScoreBoard(stores, rules)

	r := transport.NewRouter(gin.TestMode, transport.Tokens{
		Admin: testutils.AdminToken,
		Jury:  testutils.JuryToken,
		Team:  testutils.TeamToken,
	}, registry)
	NewResultsController(contest.NewResultLifecycle(stores, guard, rules, hub, m)).RegisterRoutes(r)
	NewReplacementsController(contest.NewReplacementLifecycle(stores, guard, hub, m)).RegisterRoutes(r)
	NewRegistrationsController(contest.NewRegistrationDesk(stores, guard, hub)).RegisterRoutes(r)
	NewAssignmentsController(contest.NewJuryRoster(stores, guard, hub)).RegisterRoutes(r)
	NewRealtimeController(hub, board, 50*time.Millisecond).RegisterRoutes(r)
	NewProgramMetaController(stores.Programs, stores.Results).RegisterRoutes(r)
	NewTeamMetaController(stores.Teams).RegisterRoutes(r)
	NewStudentMetaController(stores.Students, stores.Teams, hub).RegisterRoutes(r)

	return &testApp{router: r, stores: stores, hub: hub}
}

// seed creates teams X, Y, Z with one student each, registered for a group
// program "choir" and a single program "solo".
func (a *testApp) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	for _, team := range []string{"X", "Y", "Z"} {
		require.NoError(t, a.stores.Teams.Create(ctx, &storage.Team{ID: team, Name: "Team " + team}))
		require.NoError(t, a.stores.Students.Create(ctx, &storage.Student{ID: "s" + team, Name: "Student " + team, TeamID: team}))
	}
	require.NoError(t, a.stores.Students.Create(ctx, &storage.Student{ID: "s2X", Name: "Second X", TeamID: "X"}))
	require.NoError(t, a.stores.Programs.Create(ctx, &storage.Program{ID: "choir", Name: "Choir", Section: storage.SectionGroup}))
	require.NoError(t, a.stores.Programs.Create(ctx, &storage.Program{ID: "solo", Name: "Solo", Section: storage.SectionSingle}))
	for _, team := range []string{"X", "Y", "Z"} {
		for _, program := range []string{"choir", "solo"} {
			require.NoError(t, a.stores.Registrations.Create(ctx, &storage.Registration{
				ProgramID: program, StudentID: "s" + team, TeamID: team, CreatedAt: time.Now(),
			}))
		}
	}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func submission(programID string, first, second, third string) models.SubmitResultRequest {
	return models.SubmitResultRequest{
		ProgramID: programID,
		Entries: []models.EntryRequest{
			{Position: 1, CandidateID: first, Grade: "A"},
			{Position: 2, CandidateID: second, Grade: "B"},
			{Position: 3, CandidateID: third},
		},
	}
}
