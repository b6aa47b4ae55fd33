package contest

import (
	"strings"
	"sync"
	"testing"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/storage"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitApprovePoetryUpdatesLiveScores(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	before, err := f.board.Totals(f.ctx)
	require.NoError(t, err)

	result, err := f.results.Submit(f.ctx, Admin(), Submission{
		ProgramID: "poetry",
		Entries:   entries("X", "Y", "Z", storage.GradeA, storage.GradeB, storage.GradeNone),
	})
	require.NoError(t, err)
	assert.Equal(t, storage.StatusPending, result.Status)
	assert.Equal(t, []int{15, 10, 5}, []int{result.Entries[0].Points, result.Entries[1].Points, result.Entries[2].Points})

	pending, err := f.board.Totals(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, before, pending, "pending results must not count")

	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))

	after, err := f.board.Totals(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, before["X"]+15, after["X"])
	assert.Equal(t, before["Y"]+10, after["Y"])
	assert.Equal(t, before["Z"]+5, after["Z"])
	assert.Equal(t, before["W"], after["W"])
	assert.Equal(t, []string{"results.submitted", "results.approved"}, f.events())
}

func TestSubmitUnregisteredCandidateCreatesNothing(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	_, err := f.results.Submit(f.ctx, Admin(), Submission{
		ProgramID: "poetry",
		Entries:   entries("X", "Y", "W"),
	})
	assert.ErrorIs(t, err, ErrNotRegistered)

	all, err := f.stores.Results.GetAll(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.events())
}

func TestSubmitRepeatedCandidateFailsBeforeWrite(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	_, err := f.results.Submit(f.ctx, Admin(), Submission{
		ProgramID: "essay",
		Entries:   entries("sX", "sY", "sX"),
	})
	assert.ErrorIs(t, err, ErrDuplicatePlacement)

	all, err := f.stores.Results.GetAll(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSubmitRepeatedCandidateCheckedBeforeLookups(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	published, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), published.ID))

	_, err = f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sX")})
	assert.ErrorIs(t, err, ErrDuplicatePlacement, "reported ahead of the publication check")

	_, err = f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "nope", Entries: entries("sX", "sX", "sZ")})
	assert.ErrorIs(t, err, ErrDuplicatePlacement, "reported ahead of the program lookup")
}

func TestSubmitValidation(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	f.program("empty", storage.SectionSingle, 0)

	tests := []struct {
		name    string
		sub     Submission
		wantErr error
	}{
		{
			name:    "missing program",
			sub:     Submission{ProgramID: "nope", Entries: entries("sX", "sY", "sZ")},
			wantErr: ErrProgramNotFound,
		},
		{
			name:    "program without registrations",
			sub:     Submission{ProgramID: "empty", Entries: entries("sX", "sY", "sZ")},
			wantErr: ErrNoRegistrations,
		},
		{
			name:    "two entries",
			sub:     Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")[:2]},
			wantErr: ErrInvalidEntries,
		},
		{
			name: "repeated position",
			sub: Submission{ProgramID: "essay", Entries: []storage.ResultEntry{
				{Position: 1, CandidateID: "sX", Grade: storage.GradeA},
				{Position: 1, CandidateID: "sY", Grade: storage.GradeA},
				{Position: 3, CandidateID: "sZ", Grade: storage.GradeA},
			}},
			wantErr: ErrInvalidEntries,
		},
		{
			name: "unknown grade",
			sub: Submission{ProgramID: "essay", Entries: []storage.ResultEntry{
				{Position: 1, CandidateID: "sX", Grade: "S"},
				{Position: 2, CandidateID: "sY", Grade: storage.GradeA},
				{Position: 3, CandidateID: "sZ", Grade: storage.GradeA},
			}},
			wantErr: ErrInvalidEntries,
		},
		{
			name: "zero point penalty",
			sub: Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ"), Penalties: []storage.Penalty{
				{Target: storage.PenaltyTargetTeam, TargetID: "X", Points: 0},
			}},
			wantErr: ErrInvalidPenalty,
		},
		{
			name:    "group program named by student",
			sub:     Submission{ProgramID: "poetry", Entries: entries("sX", "Y", "Z")},
			wantErr: ErrNotRegistered,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.results.Submit(f.ctx, Admin(), tt.sub)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmitRoleGating(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	sub := Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")}

	_, err := f.results.Submit(f.ctx, TeamCaller("X"), sub)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.results.Submit(f.ctx, Caller{}, sub)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = f.results.Submit(f.ctx, Jury("j1"), sub)
	assert.ErrorIs(t, err, ErrUnauthorized, "unassigned jury")

	_, err = f.roster.Assign(f.ctx, Admin(), "essay", "j1")
	require.NoError(t, err)
	result, err := f.results.Submit(f.ctx, Jury("j1"), sub)
	require.NoError(t, err)
	assert.Equal(t, "j1", result.SubmittedBy)

	assert.ErrorIs(t, f.results.Approve(f.ctx, Jury("j1"), result.ID), ErrUnauthorized)
	assert.ErrorIs(t, f.results.Reject(f.ctx, TeamCaller("X"), result.ID), ErrUnauthorized)
}

func TestSubmitWhilePendingIsDuplicate(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	_, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)

	_, err = f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sY", "sX", "sZ")})
	assert.ErrorIs(t, err, ErrDuplicateSubmission)
}

func TestSubmitAfterApprovalIsAlreadyPublished(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	result, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))

	_, err = f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sY", "sX", "sZ")})
	assert.ErrorIs(t, err, ErrAlreadyPublished)
}

func TestResubmitAfterRejectGetsNewID(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	first, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Reject(f.ctx, Admin(), first.ID))

	second, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sY", "sX", "sZ")})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	stored, err := f.stores.Results.Get(f.ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.StatusRejected, stored.Status)
}

func TestRejectTwiceFailsWithoutSecondEvent(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	result, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Reject(f.ctx, Admin(), result.ID))
	f.events()

	err = f.results.Reject(f.ctx, Admin(), result.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.events())

	assert.ErrorIs(t, f.results.Approve(f.ctx, Admin(), result.ID), ErrInvalidTransition)
	assert.ErrorIs(t, f.results.Reject(f.ctx, Admin(), "missing"), ErrResultNotFound)
}

func TestSecondApprovalForProgramIsAlreadyPublished(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	first, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)

	// A racing submission that slipped past the pending check.
	racer := &storage.Result{
		ID: "RACER", ProgramID: "essay", Section: storage.SectionSingle,
		Status: storage.StatusPending, Entries: entries("sZ", "sY", "sX"), SubmittedAt: f.now,
	}
	require.NoError(t, f.stores.Results.Create(f.ctx, racer))

	require.NoError(t, f.results.Approve(f.ctx, Admin(), first.ID))
	assert.ErrorIs(t, f.results.Approve(f.ctx, Admin(), racer.ID), ErrAlreadyPublished)

	approved, err := f.stores.Results.GetByStatus(f.ctx, storage.StatusApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, first.ID, approved[0].ID)
}

func TestConcurrentApprovalsPublishOnce(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	ids := []string{"A1", "A2", "A3", "A4"}
	for _, id := range ids {
		require.NoError(t, f.stores.Results.Create(f.ctx, &storage.Result{
			ID: id, ProgramID: "poetry", Section: storage.SectionGroup,
			Status: storage.StatusPending, Entries: entries("X", "Y", "Z"), SubmittedAt: f.now,
		}))
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(ids))
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			errs <- f.results.Approve(f.ctx, Admin(), id)
		}(id)
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyPublished)
	}
	assert.Equal(t, 1, succeeded)
}

func TestUpdateApprovedReflectsNewEntriesOnce(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	result, err := f.results.Submit(f.ctx, Admin(), Submission{
		ProgramID: "poetry",
		Entries:   entries("X", "Y", "Z", storage.GradeA, storage.GradeA, storage.GradeA),
	})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))
	f.events()

	updated, err := f.results.Update(f.ctx, Admin(), result.ID,
		entries("Z", "Y", "X", storage.GradeB, storage.GradeNone, storage.GradeC),
		[]storage.Penalty{{Target: storage.PenaltyTargetStudent, TargetID: "sY", Points: 4, Reason: "late"}},
	)
	require.NoError(t, err)
	assert.NotNil(t, updated.UpdatedAt)

	totals, err := f.board.Totals(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 10+3, totals["Z"])
	assert.Equal(t, 7-4, totals["Y"])
	assert.Equal(t, 5+1, totals["X"])
	assert.Equal(t, 0, totals["W"])
	assert.Equal(t, []string{"results.updated"}, f.events())
}

func TestUpdateAndDeleteRequireApproved(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	result, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)

	_, err = f.results.Update(f.ctx, Admin(), result.ID, entries("sY", "sX", "sZ"), nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, f.results.Delete(f.ctx, Admin(), result.ID), ErrInvalidTransition)

	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))
	_, err = f.results.Update(f.ctx, Admin(), result.ID, entries("sY", "sY", "sZ"), nil)
	assert.ErrorIs(t, err, ErrDuplicatePlacement)
	_, err = f.results.Update(f.ctx, Admin(), result.ID, entries("sY", "s2X", "sZ"), nil)
	assert.ErrorIs(t, err, ErrNotRegistered)
}

func TestDeleteApprovedReversesContribution(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	result, err := f.results.Submit(f.ctx, Admin(), Submission{
		ProgramID: "essay",
		Entries:   entries("sX", "sY", "sZ", storage.GradeA),
		Penalties: []storage.Penalty{{Target: storage.PenaltyTargetTeam, TargetID: "W", Points: 3}},
	})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))

	totals, err := f.board.Totals(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, totals["X"])
	assert.Equal(t, -3, totals["W"], "negative totals are allowed")

	require.NoError(t, f.results.Delete(f.ctx, Admin(), result.ID))

	totals, err = f.board.Totals(f.ctx)
	require.NoError(t, err)
	for _, team := range []string{"X", "Y", "Z", "W"} {
		assert.Equal(t, 0, totals[team], team)
	}

	_, err = f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sZ", "sY", "sX")})
	assert.NoError(t, err, "program can be published again after delete")
}

func TestLifecycleTransitionsAreLogged(t *testing.T) {
	f := newFixture(t)
	f.seedContest()
	hook := logtest.NewLocal(logging.Log)

	result, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), result.ID))
	_, err = f.results.Update(f.ctx, Admin(), result.ID, entries("sY", "sX", "sZ"), nil)
	require.NoError(t, err)
	require.NoError(t, f.results.Delete(f.ctx, Admin(), result.ID))

	var resultLogs []string
	for _, entry := range hook.AllEntries() {
		if strings.HasPrefix(entry.Message, "RESULT:") && strings.Contains(entry.Message, result.ID) {
			resultLogs = append(resultLogs, entry.Message)
		}
	}
	require.Len(t, resultLogs, 4, "submit, approve, update and delete each log once")
	assert.Contains(t, resultLogs[3], "deleted")
}

func TestListResults(t *testing.T) {
	f := newFixture(t)
	f.seedContest()

	first, err := f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "essay", Entries: entries("sX", "sY", "sZ")})
	require.NoError(t, err)
	require.NoError(t, f.results.Approve(f.ctx, Admin(), first.ID))
	_, err = f.results.Submit(f.ctx, Admin(), Submission{ProgramID: "poetry", Entries: entries("X", "Y", "Z")})
	require.NoError(t, err)

	all, err := f.results.List(f.ctx, Admin(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := f.results.List(f.ctx, Admin(), storage.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "poetry", pending[0].ProgramID)

	_, err = f.results.List(f.ctx, Caller{}, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
