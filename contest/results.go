package contest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/metrics"
	"github.com/alex-pricope/festival-results/realtime"
	"github.com/alex-pricope/festival-results/storage"
)

// ResultLifecycle moves result records through
// pending -> approved | rejected, plus in-place edits and removal of
// approved records.
type ResultLifecycle struct {
	results     storage.ResultStorage
	assignments storage.AssignmentStorage
	guard       *RegistrationGuard
	rules       ScoringRules
	events      realtime.Publisher
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewResultLifecycle(stores *storage.Stores, guard *RegistrationGuard, rules ScoringRules, events realtime.Publisher, m *metrics.Metrics) *ResultLifecycle {
	return &ResultLifecycle{
		results:     stores.Results,
		assignments: stores.Assignments,
		guard:       guard,
		rules:       rules,
		events:      events,
		metrics:     m,
		now:         time.Now,
	}
}

type Submission struct {
	ProgramID string
	Entries   []storage.ResultEntry
	Penalties []storage.Penalty
}

// validateEntries checks shape only: one entry per position 1..3 and
// positive penalties. It returns the candidate ids in position order.
func validateEntries(entries []storage.ResultEntry, penalties []storage.Penalty) ([]string, error) {
	if len(entries) != 3 {
		return nil, ErrInvalidEntries
	}
	sorted := append([]storage.ResultEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	ids := make([]string, 0, 3)
	for i, e := range sorted {
		if e.Position != i+1 || e.CandidateID == "" {
			return nil, ErrInvalidEntries
		}
		switch e.Grade {
		case storage.GradeA, storage.GradeB, storage.GradeC, storage.GradeNone:
		default:
			return nil, fmt.Errorf("%w: unknown grade %q", ErrInvalidEntries, e.Grade)
		}
		ids = append(ids, e.CandidateID)
	}

	for _, p := range penalties {
		if p.Points <= 0 || p.TargetID == "" {
			return nil, ErrInvalidPenalty
		}
		if p.Target != storage.PenaltyTargetStudent && p.Target != storage.PenaltyTargetTeam {
			return nil, fmt.Errorf("%w: unknown target %q", ErrInvalidPenalty, p.Target)
		}
	}
	return ids, nil
}

func ensureDistinct(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlacement, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// scoredEntries returns entries ordered by position with Points derived from
// the rules.
func (l *ResultLifecycle) scoredEntries(section storage.Section, entries []storage.ResultEntry) []storage.ResultEntry {
	out := append([]storage.ResultEntry(nil), entries...)
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	for i := range out {
		out[i].Points = l.rules.EntryPoints(section, out[i].Position, out[i].Grade)
	}
	return out
}

func (l *ResultLifecycle) publish(kind realtime.Kind) {
	if err := l.events.Publish(realtime.ChannelResults, kind); err != nil {
		logging.Log.Errorf("RESULT: failed to publish %s event: %v", kind, err)
	}
}

func (l *ResultLifecycle) Submit(ctx context.Context, caller Caller, sub Submission) (*storage.Result, error) {
	if err := caller.require(RoleJury, RoleAdmin); err != nil {
		return nil, err
	}
	ids, err := validateEntries(sub.Entries, sub.Penalties)
	if err != nil {
		return nil, err
	}
	if err := ensureDistinct(ids); err != nil {
		return nil, err
	}

	program, err := l.guard.program(ctx, sub.ProgramID)
	if err != nil {
		return nil, err
	}

	if caller.Role == RoleJury {
		assignment, err := l.assignments.Get(ctx, program.ID, caller.ID)
		if err != nil {
			return nil, fmt.Errorf("load assignment: %w", err)
		}
		if assignment == nil {
			return nil, fmt.Errorf("%w: jury %s is not assigned to %s", ErrUnauthorized, caller.ID, program.Name)
		}
	}

	published, err := l.results.IsPublished(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("check publication: %w", err)
	}
	if published {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyPublished, program.Name)
	}

	if err := l.guard.ensureEligible(ctx, program, ids); err != nil {
		return nil, err
	}

	// Pre-write existence check. Two concurrent submissions can both pass it;
	// approval is where uniqueness is enforced.
	existing, err := l.results.GetByProgram(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("load results for %s: %w", program.ID, err)
	}
	for _, r := range existing {
		if r.Status == storage.StatusPending {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSubmission, r.ID)
		}
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("generate result id: %w", err)
	}
	submittedBy := caller.ID
	if submittedBy == "" {
		submittedBy = caller.Role.String()
	}

	result := &storage.Result{
		ID:          id,
		ProgramID:   program.ID,
		Section:     program.Section,
		SubmittedBy: submittedBy,
		Status:      storage.StatusPending,
		Entries:     l.scoredEntries(program.Section, sub.Entries),
		Penalties:   append([]storage.Penalty(nil), sub.Penalties...),
		SubmittedAt: l.now().UTC(),
	}
	if err := l.results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("store result: %w", err)
	}

	logging.Log.Infof("RESULT: %s submitted result %s for program %s", submittedBy, id, program.ID)
	l.metrics.Transition("result", string(storage.StatusPending))
	l.publish(realtime.KindSubmitted)
	return result, nil
}

func (l *ResultLifecycle) load(ctx context.Context, id string) (*storage.Result, error) {
	result, err := l.results.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load result %s: %w", id, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: %s", ErrResultNotFound, id)
	}
	return result, nil
}

// Approve is the only way a result starts counting toward live scores.
func (l *ResultLifecycle) Approve(ctx context.Context, caller Caller, id string) error {
	if err := caller.require(RoleAdmin); err != nil {
		return err
	}
	result, err := l.load(ctx, id)
	if err != nil {
		return err
	}
	if result.Status != storage.StatusPending {
		return fmt.Errorf("%w: result %s is %s", ErrInvalidTransition, id, result.Status)
	}

	err = l.results.Approve(ctx, id, result.ProgramID, l.now().UTC())
	switch {
	case errors.Is(err, storage.ErrAlreadyPublished):
		return fmt.Errorf("%w: program %s", ErrAlreadyPublished, result.ProgramID)
	case errors.Is(err, storage.ErrConditionFailed):
		return fmt.Errorf("%w: result %s is no longer pending", ErrInvalidTransition, id)
	case err != nil:
		return fmt.Errorf("approve result %s: %w", id, err)
	}

	logging.Log.Infof("RESULT: approved result %s for program %s", id, result.ProgramID)
	l.metrics.Transition("result", string(storage.StatusApproved))
	l.publish(realtime.KindApproved)
	return nil
}

func (l *ResultLifecycle) Reject(ctx context.Context, caller Caller, id string) error {
	if err := caller.require(RoleAdmin); err != nil {
		return err
	}
	result, err := l.load(ctx, id)
	if err != nil {
		return err
	}
	if result.Status != storage.StatusPending {
		return fmt.Errorf("%w: result %s is %s", ErrInvalidTransition, id, result.Status)
	}

	err = l.results.Reject(ctx, id, l.now().UTC())
	if errors.Is(err, storage.ErrConditionFailed) {
		return fmt.Errorf("%w: result %s is no longer pending", ErrInvalidTransition, id)
	}
	if err != nil {
		return fmt.Errorf("reject result %s: %w", id, err)
	}

	logging.Log.Infof("RESULT: rejected result %s for program %s", id, result.ProgramID)
	l.metrics.Transition("result", string(storage.StatusRejected))
	l.publish(realtime.KindRejected)
	return nil
}

// Update replaces entries and penalties of an approved result in one write,
// so readers see either the old or the new record and never a mix.
func (l *ResultLifecycle) Update(ctx context.Context, caller Caller, id string, entries []storage.ResultEntry, penalties []storage.Penalty) (*storage.Result, error) {
	if err := caller.require(RoleAdmin); err != nil {
		return nil, err
	}
	ids, err := validateEntries(entries, penalties)
	if err != nil {
		return nil, err
	}
	result, err := l.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if result.Status != storage.StatusApproved {
		return nil, fmt.Errorf("%w: only approved results can be edited, %s is %s", ErrInvalidTransition, id, result.Status)
	}
	if err := ensureDistinct(ids); err != nil {
		return nil, err
	}
	if err := l.guard.EnsureEligible(ctx, result.ProgramID, ids); err != nil {
		return nil, err
	}

	now := l.now().UTC()
	result.Entries = l.scoredEntries(result.Section, entries)
	result.Penalties = append([]storage.Penalty(nil), penalties...)
	result.UpdatedAt = &now

	err = l.results.ReplaceApproved(ctx, result)
	if errors.Is(err, storage.ErrConditionFailed) {
		return nil, fmt.Errorf("%w: result %s is no longer approved", ErrInvalidTransition, id)
	}
	if err != nil {
		return nil, fmt.Errorf("update result %s: %w", id, err)
	}

	logging.Log.Infof("RESULT: updated approved result %s", id)
	l.metrics.Transition("result", "updated")
	l.publish(realtime.KindUpdated)
	return result, nil
}

// Delete removes an approved result. Its contribution disappears from the
// next live score read and the program can be published again.
func (l *ResultLifecycle) Delete(ctx context.Context, caller Caller, id string) error {
	if err := caller.require(RoleAdmin); err != nil {
		return err
	}
	result, err := l.load(ctx, id)
	if err != nil {
		return err
	}
	if result.Status != storage.StatusApproved {
		return fmt.Errorf("%w: only approved results can be deleted, %s is %s", ErrInvalidTransition, id, result.Status)
	}

	err = l.results.DeleteApproved(ctx, id, result.ProgramID)
	if errors.Is(err, storage.ErrConditionFailed) {
		return fmt.Errorf("%w: result %s is no longer approved", ErrInvalidTransition, id)
	}
	if err != nil {
		return fmt.Errorf("delete result %s: %w", id, err)
	}

	logging.Log.Infof("RESULT: deleted approved result %s, program %s can be published again", id, result.ProgramID)
	l.metrics.Transition("result", "deleted")
	l.publish(realtime.KindDeleted)
	return nil
}

func (l *ResultLifecycle) Get(ctx context.Context, caller Caller, id string) (*storage.Result, error) {
	if err := caller.require(RoleJury, RoleAdmin); err != nil {
		return nil, err
	}
	return l.load(ctx, id)
}

// List returns results newest first. An empty status returns every result.
func (l *ResultLifecycle) List(ctx context.Context, caller Caller, status storage.ResultStatus) ([]*storage.Result, error) {
	if err := caller.require(RoleJury, RoleAdmin); err != nil {
		return nil, err
	}

	var (
		results []*storage.Result
		err     error
	)
	if status == "" {
		results, err = l.results.GetAll(ctx)
	} else {
		results, err = l.results.GetByStatus(ctx, status)
	}
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SubmittedAt.After(results[j].SubmittedAt)
	})
	return results, nil
}
