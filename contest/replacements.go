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

type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomeRejected Outcome = "rejected"
)

// ReplacementLifecycle handles candidate swaps requested after the
// registration window closed: pending -> approved | rejected, then final.
type ReplacementLifecycle struct {
	stores  *storage.Stores
	guard   *RegistrationGuard
	events  realtime.Publisher
	metrics *metrics.Metrics
	now     func() time.Time
}

func NewReplacementLifecycle(stores *storage.Stores, guard *RegistrationGuard, events realtime.Publisher, m *metrics.Metrics) *ReplacementLifecycle {
	return &ReplacementLifecycle{
		stores:  stores,
		guard:   guard,
		events:  events,
		metrics: m,
		now:     time.Now,
	}
}

type ReplacementInput struct {
	ProgramID    string
	OldStudentID string
	NewStudentID string
	TeamID       string
	Reason       string
}

func (l *ReplacementLifecycle) publish(channel realtime.Channel, kind realtime.Kind) {
	if err := l.events.Publish(channel, kind); err != nil {
		logging.Log.Errorf("REPLACEMENT: failed to publish %s.%s event: %v", channel, kind, err)
	}
}

func (l *ReplacementLifecycle) student(ctx context.Context, id, teamID string) error {
	s, err := l.stores.Students.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load student %s: %w", id, err)
	}
	if s == nil {
		return fmt.Errorf("%w: %s", ErrStudentNotFound, id)
	}
	if s.TeamID != teamID {
		return fmt.Errorf("%w: %s is not in team %s", ErrNotTeamMember, id, teamID)
	}
	return nil
}

func (l *ReplacementLifecycle) Create(ctx context.Context, caller Caller, in ReplacementInput) (*storage.Replacement, error) {
	if err := caller.require(RoleTeam, RoleAdmin); err != nil {
		return nil, err
	}
	if err := caller.actsForTeam(in.TeamID); err != nil {
		return nil, err
	}

	window, err := l.stores.Settings.GetRegistrationWindow(ctx)
	if err != nil {
		return nil, fmt.Errorf("load registration window: %w", err)
	}
	if window.IsOpen(l.now()) {
		return nil, ErrRegistrationOpen
	}

	program, err := l.guard.program(ctx, in.ProgramID)
	if err != nil {
		return nil, err
	}
	published, err := l.stores.Results.IsPublished(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("check publication: %w", err)
	}
	if published {
		return nil, fmt.Errorf("%w: %s", ErrProgramPublished, program.Name)
	}

	if err := l.student(ctx, in.OldStudentID, in.TeamID); err != nil {
		return nil, err
	}
	if err := l.student(ctx, in.NewStudentID, in.TeamID); err != nil {
		return nil, err
	}

	candidate := in.OldStudentID
	if program.Section == storage.SectionGroup {
		candidate = in.TeamID
	}
	if err := l.guard.ensureEligible(ctx, program, []string{candidate}); err != nil {
		return nil, err
	}

	old, err := l.stores.Registrations.Get(ctx, program.ID, in.OldStudentID)
	if err != nil {
		return nil, fmt.Errorf("load registration: %w", err)
	}
	if old == nil {
		return nil, fmt.Errorf("%w: %s is not registered for %s", ErrNotRegistered, in.OldStudentID, program.Name)
	}
	current, err := l.stores.Registrations.Get(ctx, program.ID, in.NewStudentID)
	if err != nil {
		return nil, fmt.Errorf("load registration: %w", err)
	}
	if current != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, in.NewStudentID)
	}

	pending, err := l.stores.Replacements.FindPending(ctx, program.ID, in.OldStudentID)
	if err != nil {
		return nil, fmt.Errorf("find pending requests: %w", err)
	}
	if pending != nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePendingRequest, pending.ID)
	}

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("generate request id: %w", err)
	}
	req := &storage.Replacement{
		ID:           id,
		ProgramID:    program.ID,
		OldStudentID: in.OldStudentID,
		NewStudentID: in.NewStudentID,
		TeamID:       in.TeamID,
		Reason:       in.Reason,
		Status:       storage.StatusPending,
		CreatedAt:    l.now().UTC(),
	}
	if err := l.stores.Replacements.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("store replacement request: %w", err)
	}

	logging.Log.Infof("REPLACEMENT: team %s requested %s -> %s in program %s", in.TeamID, in.OldStudentID, in.NewStudentID, program.ID)
	l.metrics.Transition("replacement", string(storage.StatusPending))
	l.publish(realtime.ChannelReplacements, realtime.KindCreated)
	return req, nil
}

// Decide approves or rejects a pending request. Approval swaps the
// registrations and marks the request in one commit; if the swap cannot be
// applied the request stays pending.
func (l *ReplacementLifecycle) Decide(ctx context.Context, caller Caller, id string, outcome Outcome) (*storage.Replacement, error) {
	if err := caller.require(RoleAdmin); err != nil {
		return nil, err
	}
	if outcome != OutcomeApproved && outcome != OutcomeRejected {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	}

	req, err := l.stores.Replacements.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load replacement request %s: %w", id, err)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestNotFound, id)
	}
	if req.Status != storage.StatusPending {
		return nil, fmt.Errorf("%w: request %s is %s", ErrInvalidTransition, id, req.Status)
	}

	now := l.now().UTC()
	if outcome == OutcomeRejected {
		err := l.stores.Replacements.Reject(ctx, id, now)
		if errors.Is(err, storage.ErrConditionFailed) {
			return nil, fmt.Errorf("%w: request %s is no longer pending", ErrInvalidTransition, id)
		}
		if err != nil {
			return nil, fmt.Errorf("reject replacement request %s: %w", id, err)
		}
		req.Status = storage.StatusRejected
		req.DecidedAt = &now

		l.metrics.Transition("replacement", string(storage.StatusRejected))
		l.publish(realtime.ChannelReplacements, realtime.KindRejected)
		return req, nil
	}

	published, err := l.stores.Results.IsPublished(ctx, req.ProgramID)
	if err != nil {
		return nil, fmt.Errorf("check publication: %w", err)
	}
	if published {
		return nil, fmt.Errorf("%w: %s", ErrProgramPublished, req.ProgramID)
	}

	registration := &storage.Registration{
		ProgramID: req.ProgramID,
		StudentID: req.NewStudentID,
		TeamID:    req.TeamID,
		CreatedAt: now,
	}
	err = l.stores.Replacements.ApproveWithSwap(ctx, req, registration, now)
	switch {
	case errors.Is(err, storage.ErrItemWithIDAlreadyExists):
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, req.NewStudentID)
	case errors.Is(err, storage.ErrConditionFailed):
		return nil, fmt.Errorf("%w: request %s could not be applied, the old registration or request state changed", ErrInvalidTransition, id)
	case err != nil:
		return nil, fmt.Errorf("approve replacement request %s: %w", id, err)
	}
	req.Status = storage.StatusApproved
	req.DecidedAt = &now

	l.metrics.Transition("replacement", string(storage.StatusApproved))
	l.publish(realtime.ChannelReplacements, realtime.KindApproved)
	l.publish(realtime.ChannelRegistrations, realtime.KindCreated)
	return req, nil
}

// List returns requests newest first. Team callers only see their own.
func (l *ReplacementLifecycle) List(ctx context.Context, caller Caller, status storage.ResultStatus) ([]*storage.Replacement, error) {
	if err := caller.require(RoleTeam, RoleAdmin); err != nil {
		return nil, err
	}
	all, err := l.stores.Replacements.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list replacement requests: %w", err)
	}

	out := make([]*storage.Replacement, 0, len(all))
	for _, r := range all {
		if status != "" && r.Status != status {
			continue
		}
		if caller.Role == RoleTeam && r.TeamID != caller.ID {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
