package contest

import (
	"context"
	"testing"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/metrics"
	"github.com/alex-pricope/festival-results/realtime"
	"github.com/alex-pricope/festival-results/storage"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	t            *testing.T
	ctx          context.Context
	now          time.Time
	stores       *storage.Stores
	hub          *realtime.Hub
	sub          *realtime.Subscription
	guard        *RegistrationGuard
	results      *ResultLifecycle
	replacements *ReplacementLifecycle
	desk         *RegistrationDesk
	roster       *JuryRoster
	board        *ScoreBoard
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logging.Log = logrus.New()

	m := metrics.New(prometheus.NewRegistry())
	stores := storage.NewMemoryStores()
	hub := realtime.NewHub(256, m)
	sub, err := hub.Subscribe()
	require.NoError(t, err)
	t.Cleanup(sub.Close)

	f := &fixture{
		t:      t,
		ctx:    context.Background(),
		now:    time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		stores: stores,
		hub:    hub,
		sub:    sub,
	}
	clock := func() time.Time { return f.now }

	rules := DefaultScoringRules()
	f.guard = NewRegistrationGuard(stores.Programs, stores.Registrations)
	f.results = NewResultLifecycle(stores, f.guard, rules, hub, m)
	f.results.now = clock
	f.replacements = NewReplacementLifecycle(stores, f.guard, hub, m)
	f.replacements.now = clock
	f.desk = NewRegistrationDesk(stores, f.guard, hub)
	f.desk.now = clock
	f.roster = NewJuryRoster(stores, f.guard, hub)
	f.roster.now = clock
	f.board = NewScoreBoard(stores, rules)
	return f
}

func (f *fixture) team(id string) {
	f.t.Helper()
	require.NoError(f.t, f.stores.Teams.Create(f.ctx, &storage.Team{ID: id, Name: "Team " + id}))
}

func (f *fixture) student(id, teamID string) {
	f.t.Helper()
	require.NoError(f.t, f.stores.Students.Create(f.ctx, &storage.Student{ID: id, Name: "Student " + id, TeamID: teamID}))
}

func (f *fixture) program(id string, section storage.Section, limit int) {
	f.t.Helper()
	require.NoError(f.t, f.stores.Programs.Create(f.ctx, &storage.Program{
		ID: id, Name: id, Section: section, Category: "general", CandidateLimit: limit,
	}))
}

func (f *fixture) register(programID, studentID, teamID string) {
	f.t.Helper()
	require.NoError(f.t, f.stores.Registrations.Create(f.ctx, &storage.Registration{
		ProgramID: programID, StudentID: studentID, TeamID: teamID, CreatedAt: f.now,
	}))
}

func (f *fixture) openWindow() {
	f.t.Helper()
	require.NoError(f.t, f.stores.Settings.PutRegistrationWindow(f.ctx, storage.RegistrationWindow{
		OpensAt:  f.now.Add(-time.Hour),
		ClosesAt: f.now.Add(time.Hour),
	}))
}

// events drains every event published so far.
func (f *fixture) events() []string {
	var names []string
	for {
		select {
		case ev := <-f.sub.C:
			names = append(names, ev.Name())
		default:
			return names
		}
	}
}

// seedContest creates teams X, Y, Z and W, one student per team, a group
// program "poetry" with X, Y and Z registered and a single program "essay"
// with the students of X, Y and Z registered.
func (f *fixture) seedContest() {
	f.t.Helper()
	for _, team := range []string{"X", "Y", "Z", "W"} {
		f.team(team)
		f.student("s"+team, team)
	}
	f.student("s2X", "X")

	f.program("poetry", storage.SectionGroup, 0)
	f.program("essay", storage.SectionSingle, 2)
	for _, team := range []string{"X", "Y", "Z"} {
		f.register("poetry", "s"+team, team)
		f.register("essay", "s"+team, team)
	}
}

func entries(first, second, third string, grades ...storage.Grade) []storage.ResultEntry {
	g := []storage.Grade{storage.GradeNone, storage.GradeNone, storage.GradeNone}
	copy(g, grades)
	return []storage.ResultEntry{
		{Position: 1, CandidateID: first, Grade: g[0]},
		{Position: 2, CandidateID: second, Grade: g[1]},
		{Position: 3, CandidateID: third, Grade: g[2]},
	}
}
