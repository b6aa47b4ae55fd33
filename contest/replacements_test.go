package contest

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alex-pricope/festival-results/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func swapInput() ReplacementInput {
	return ReplacementInput{
		ProgramID:    "essay",
		OldStudentID: "sX",
		NewStudentID: "s2X",
		TeamID:       "X",
		Reason:       "illness",
	}
}

func TestCreateReplacementRequest(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	req, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	require.NoError(t, err)
	assert.NotEmpty(t, req.ID)
	assert.Equal(t, storage.StatusPending, req.Status)
	assert.Equal(t, f.now, req.CreatedAt)
	assert.Equal(t, []string{"replacements.created"}, f.events())

	registered, err := f.stores.Registrations.Get(f.ctx, "essay", "sX")
	require.NoError(t, err)
	assert.NotNil(t, registered, "creating a request does not touch registrations")
}

func TestCreateReplacementForPublishedProgram(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	result, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))
	f.events()

	_, err = f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	assert.ErrorIs(t, err, ErrProgramPublished)

	all, err := f.stores.Replacements.GetAll(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.events())
}

func TestCreateReplacementRejections(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.student("s3X", "X")
	f.student("sOut", "")

	tests := []struct {
		name    string
		caller  Caller
		mutate  func(in *ReplacementInput)
		wantErr error
	}{
		{
			name:    "public caller",
			caller:  Caller{},
			mutate:  func(in *ReplacementInput) {},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "jury caller",
			caller:  Jury("j1"),
			mutate:  func(in *ReplacementInput) {},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "team acting for another team",
			caller:  TeamCaller("Y"),
			mutate:  func(in *ReplacementInput) {},
			wantErr: ErrUnauthorized,
		},
		{
			name:    "unknown program",
			caller:  TeamCaller("X"),
			mutate:  func(in *ReplacementInput) { in.ProgramID = "nope" },
			wantErr: ErrProgramNotFound,
		},
		{
			name:    "unknown new student",
			caller:  TeamCaller("X"),
			mutate:  func(in *ReplacementInput) { in.NewStudentID = "ghost" },
			wantErr: ErrStudentNotFound,
		},
		{
			name:    "new student from another team",
			caller:  TeamCaller("X"),
			mutate:  func(in *ReplacementInput) { in.NewStudentID = "sW" },
			wantErr: ErrNotTeamMember,
		},
		{
			name:    "new student without team",
			caller:  Admin(),
			mutate:  func(in *ReplacementInput) { in.NewStudentID = "sOut" },
			wantErr: ErrNotTeamMember,
		},
		{
			name:    "old student not registered",
			caller:  TeamCaller("X"),
			mutate:  func(in *ReplacementInput) { in.OldStudentID = "s3X" },
			wantErr: ErrNotRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := swapInput()
			tt.mutate(&in)
			_, err := f.replacements.Create(f.ctx, tt.caller, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateReplacementWithRegisteredNewStudent(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.register("essay", "s2X", "X")

	_, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestCreateReplacementWhileWindowOpen(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.openWindow()

	_, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	assert.ErrorIs(t, err, ErrRegistrationOpen)
}

func TestCreateDuplicatePendingRequest(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.student("s3X", "X")

	_, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	require.NoError(t, err)

	in := swapInput()
	in.NewStudentID = "s3X"
	_, err = f.replacements.Create(f.ctx, TeamCaller("X"), in)
	assert.ErrorIs(t, err, ErrDuplicatePendingRequest)
}

func TestApproveReplacementSwapsAtomically(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	req, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	require.NoError(t, err)
	f.events()

	stop := make(chan struct{})
	var (
		wg       sync.WaitGroup
		reads    atomic.Int64
		mismatch atomic.Int64
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			regs, err := f.stores.Registrations.GetByProgram(f.ctx, "essay")
			if err != nil {
				mismatch.Add(1)
				return
			}
			found := 0
			for _, r := range regs {
				if r.StudentID == "sX" || r.StudentID == "s2X" {
					found++
				}
			}
			if found != 1 {
				mismatch.Add(1)
			}
			reads.Add(1)
		}
	}()

	decided, err := f.replacements.Decide(f.ctx, Admin(), req.ID, OutcomeApproved)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return reads.Load() >= 10 }, time.Second, time.Millisecond)
	close(stop)
	wg.Wait()

	assert.Zero(t, mismatch.Load(), "a reader saw both or neither registration")
	assert.Equal(t, storage.StatusApproved, decided.Status)
	require.NotNil(t, decided.DecidedAt)

	old, err := f.stores.Registrations.Get(f.ctx, "essay", "sX")
	require.NoError(t, err)
	assert.Nil(t, old)
	replacement, err := f.stores.Registrations.Get(f.ctx, "essay", "s2X")
	require.NoError(t, err)
	require.NotNil(t, replacement)
	assert.Equal(t, "X", replacement.TeamID)

	assert.Equal(t, []string{"replacements.approved", "registrations.created"}, f.events())

	// The swapped-in student is now an eligible candidate and the old one is not.
	_, err = f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	assert.ErrorIs(t, err, ErrNotRegistered)
	_, err = f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("s2X", "sY", "sZ")})
	assert.NoError(t, err)
}

func TestRejectReplacementIsFinal(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	req, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	require.NoError(t, err)
	f.events()

	decided, err := f.replacements.Decide(f.ctx, Admin(), req.ID, OutcomeRejected)
	require.NoError(t, err)
	assert.Equal(t, storage.StatusRejected, decided.Status)
	assert.Equal(t, []string{"replacements.rejected"}, f.events())

	_, err = f.replacements.Decide(f.ctx, Admin(), req.ID, OutcomeApproved)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.events())

	old, err := f.stores.Registrations.Get(f.ctx, "essay", "sX")
	require.NoError(t, err)
	assert.NotNil(t, old, "rejection leaves registrations untouched")

	// A rejected request no longer blocks a new one.
	_, err = f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	assert.NoError(t, err)
}

func TestDecideReplacementValidation(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	req, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	require.NoError(t, err)

	_, err = f.replacements.Decide(f.ctx, TeamCaller("X"), req.ID, OutcomeApproved)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = f.replacements.Decide(f.ctx, Admin(), req.ID, Outcome("maybe"))
	assert.ErrorIs(t, err, ErrInvalidOutcome)
	_, err = f.replacements.Decide(f.ctx, Admin(), "missing", OutcomeApproved)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestFailedSwapLeavesRequestPending(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	req, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	require.NoError(t, err)
	f.register("essay", "s2X", "X")
	f.events()

	_, err = f.replacements.Decide(f.ctx, Admin(), req.ID, OutcomeApproved)
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Empty(t, f.events())

	stored, err := f.stores.Replacements.Get(f.ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.StatusPending, stored.Status)
	old, err := f.stores.Registrations.Get(f.ctx, "essay", "sX")
	require.NoError(t, err)
	assert.NotNil(t, old)
}

func TestApproveReplacementAfterPublication(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	req, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	require.NoError(t, err)
	result, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))

	_, err = f.replacements.Decide(f.ctx, Admin(), req.ID, OutcomeApproved)
	assert.ErrorIs(t, err, ErrProgramPublished)
}

func TestListReplacementsScopesTeams(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.student("s2Y", "Y")

	_, err := f.replacements.Create(f.ctx, TeamCaller("X"), swapInput())
	require.NoError(t, err)
	f.now = f.now.Add(1)
	_, err = f.replacements.Create(f.ctx, TeamCaller("Y"), ReplacementInput{
		ProgramID: "essay", OldStudentID: "sY", NewStudentID: "s2Y", TeamID: "Y",
	})
	require.NoError(t, err)

	all, err := f.replacements.List(f.ctx, Admin(), "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Y", all[0].TeamID, "newest first")

	own, err := f.replacements.List(f.ctx, TeamCaller("X"), "")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "X", own[0].TeamID)

	_, err = f.replacements.List(f.ctx, Jury("j1"), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
