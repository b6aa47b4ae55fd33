package contest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alex-pricope/festival-results/logging"
	"github.com/alex-pricope/festival-results/realtime"
	"github.com/alex-pricope/festival-results/storage"
)

// JuryRoster assigns juries to the programs they may submit results for.
type JuryRoster struct {
	assignments storage.AssignmentStorage
	guard       *RegistrationGuard
	events      realtime.Publisher
	now         func() time.Time
}

func NewJuryRoster(stores *storage.Stores, guard *RegistrationGuard, events realtime.Publisher) *JuryRoster {
	return &JuryRoster{assignments: stores.Assignments, guard: guard, events: events, now: time.Now}
}

func (r *JuryRoster) Assign(ctx context.Context, caller Caller, programID, juryID string) (*storage.Assignment, error) {
	if err := caller.require(RoleAdmin); err != nil {
		return nil, err
	}
	if _, err := r.guard.program(ctx, programID); err != nil {
		return nil, err
	}

	a := &storage.Assignment{ProgramID: programID, JuryID: juryID, CreatedAt: r.now().UTC()}
	err := r.assignments.Create(ctx, a)
	if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
		return nil, ErrAlreadyAssigned
	}
	if err != nil {
		return nil, fmt.Errorf("store assignment: %w", err)
	}

	if err := r.events.Publish(realtime.ChannelAssignments, realtime.KindCreated); err != nil {
		logging.Log.Errorf("ASSIGNMENT: failed to publish created event: %v", err)
	}
	return a, nil
}

func (r *JuryRoster) Unassign(ctx context.Context, caller Caller, programID, juryID string) error {
	if err := caller.require(RoleAdmin); err != nil {
		return err
	}
	err := r.assignments.Delete(ctx, programID, juryID)
	if errors.Is(err, storage.ErrItemNotFound) {
		return ErrNotAssigned
	}
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}

	if err := r.events.Publish(realtime.ChannelAssignments, realtime.KindDeleted); err != nil {
		logging.Log.Errorf("ASSIGNMENT: failed to publish deleted event: %v", err)
	}
	return nil
}

func (r *JuryRoster) List(ctx context.Context, caller Caller) ([]*storage.Assignment, error) {
	if err := caller.require(RoleJury, RoleAdmin); err != nil {
		return nil, err
	}
	all, err := r.assignments.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	if caller.Role == RoleAdmin {
		return all, nil
	}
	own := make([]*storage.Assignment, 0, len(all))
	for _, a := range all {
		if a.JuryID == caller.ID {
			own = append(own, a)
		}
	}
	return own, nil
}
