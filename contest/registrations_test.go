package contest

import (
	"testing"
	"time"

	"github.com/alex-pricope/festival-results/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterWithinWindow(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.openWindow()
	f.program("drama", storage.SectionSingle, 0)

	reg, err := f.desk.Register(f.ctx, TeamCaller("W"), "drama", "sW", "W")
	require.NoError(t, err)
	assert.Equal(t, storage.RegistrationKey("drama", "sW"), storage.RegistrationKey(reg.ProgramID, reg.StudentID))
	assert.Equal(t, []string{"registrations.created"}, f.events())

	regs, err := f.desk.ListByProgram(f.ctx, "drama")
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "W", regs[0].TeamID)

	_, err = f.desk.Register(f.ctx, TeamCaller("W"), "drama", "sW", "W")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestRegisterOutsideWindow(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.program("drama", storage.SectionSingle, 0)

	_, err := f.desk.Register(f.ctx, TeamCaller("W"), "drama", "sW", "W")
	assert.ErrorIs(t, err, ErrRegistrationClosed)

	_, err = f.desk.Register(f.ctx, Admin(), "drama", "sW", "W")
	assert.NoError(t, err, "admins are not bound by the window")
}

func TestRegisterRejections(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.openWindow()

	_, err := f.desk.Register(f.ctx, TeamCaller("Y"), "essay", "sW", "W")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.desk.Register(f.ctx, Jury("j1"), "essay", "sW", "W")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.desk.Register(f.ctx, TeamCaller("W"), "nope", "sW", "W")
	assert.ErrorIs(t, err, ErrProgramNotFound)

	_, err = f.desk.Register(f.ctx, TeamCaller("W"), "essay", "ghost", "W")
	assert.ErrorIs(t, err, ErrStudentNotFound)

	_, err = f.desk.Register(f.ctx, TeamCaller("W"), "essay", "sX", "W")
	assert.ErrorIs(t, err, ErrNotTeamMember)
}

func TestRegisterEnforcesCandidateLimit(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.openWindow()
	f.student("s3X", "X")

	// essay allows two candidates per team and sX is already in.
	_, err := f.desk.Register(f.ctx, TeamCaller("X"), "essay", "s2X", "X")
	require.NoError(t, err)

	_, err = f.desk.Register(f.ctx, TeamCaller("X"), "essay", "s3X", "X")
	assert.ErrorIs(t, err, ErrCapacityExceeded)
}

func TestRegistrationFrozenAfterPublication(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	result, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))

	_, err = f.desk.Register(f.ctx, Admin(), "essay", "s2X", "X")
	assert.ErrorIs(t, err, ErrProgramPublished)
	assert.ErrorIs(t, f.desk.Unregister(f.ctx, Admin(), "essay", "sX"), ErrProgramPublished)
}

func TestUnregister(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.openWindow()

	assert.ErrorIs(t, f.desk.Unregister(f.ctx, TeamCaller("Y"), "essay", "sX"), ErrUnauthorized)
	assert.ErrorIs(t, f.desk.Unregister(f.ctx, TeamCaller("W"), "essay", "sW"), ErrNotRegistered)

	require.NoError(t, f.desk.Unregister(f.ctx, TeamCaller("X"), "essay", "sX"))
	assert.Equal(t, []string{"registrations.deleted"}, f.events())

	reg, err := f.stores.Registrations.Get(f.ctx, "essay", "sX")
	require.NoError(t, err)
	assert.Nil(t, reg)
}

func TestRegistrationWindow(t *testing.T) {
	f := newFixture(t)

	_, open, err := f.desk.Window(f.ctx)
	require.NoError(t, err)
	assert.False(t, open, "an unset window is closed")

	loc := time.FixedZone("UTC+3", 3*60*60)
	window := storage.RegistrationWindow{
		OpensAt:  f.now.Add(-time.Minute).In(loc),
		ClosesAt: f.now.Add(time.Minute).In(loc),
	}
	assert.ErrorIs(t, f.desk.SetWindow(f.ctx, TeamCaller("X"), window), ErrUnauthorized)
	require.NoError(t, f.desk.SetWindow(f.ctx, Admin(), window))

	stored, open, err := f.desk.Window(f.ctx)
	require.NoError(t, err)
	assert.True(t, open)
	assert.Equal(t, time.UTC, stored.OpensAt.Location())
	assert.True(t, stored.ClosesAt.Equal(window.ClosesAt))

	f.now = f.now.Add(time.Minute)
	_, open, err = f.desk.Window(f.ctx)
	require.NoError(t, err)
	assert.False(t, open, "the close instant is outside the window")

	backwards := storage.RegistrationWindow{OpensAt: f.now, ClosesAt: f.now}
	assert.ErrorIs(t, f.desk.SetWindow(f.ctx, Admin(), backwards), ErrInvalidWindow)
}

func TestJuryRoster(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	_, err := f.roster.Assign(f.ctx, Jury("j1"), "essay", "j1")
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.roster.Assign(f.ctx, Admin(), "nope", "j1")
	assert.ErrorIs(t, err, ErrProgramNotFound)

	_, err = f.roster.Assign(f.ctx, Admin(), "essay", "j1")
	require.NoError(t, err)
	_, err = f.roster.Assign(f.ctx, Admin(), "poetry", "j2")
	require.NoError(t, err)
	_, err = f.roster.Assign(f.ctx, Admin(), "essay", "j1")
	assert.ErrorIs(t, err, ErrAlreadyAssigned)

	all, err := f.roster.List(f.ctx, Admin())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := f.roster.List(f.ctx, Jury("j1"))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "essay", mine[0].ProgramID)

	require.NoError(t, f.roster.Unassign(f.ctx, Admin(), "essay", "j1"))
	assert.ErrorIs(t, f.roster.Unassign(f.ctx, Admin(), "essay", "j1"), ErrNotAssigned)
	assert.Equal(t, []string{"assignments.created", "assignments.created", "assignments.deleted"}, f.events())
}
