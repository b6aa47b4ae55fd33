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

// RegistrationDesk adds and removes program registrations while the
// registration window is open. Admins may edit outside the window.
type RegistrationDesk struct {
	stores *storage.Stores
	guard  *RegistrationGuard
	events realtime.Publisher
	now    func() time.Time
}

func NewRegistrationDesk(stores *storage.Stores, guard *RegistrationGuard, events realtime.Publisher) *RegistrationDesk {
	return &RegistrationDesk{stores: stores, guard: guard, events: events, now: time.Now}
}

func (d *RegistrationDesk) publish(kind realtime.Kind) {
	if err := d.events.Publish(realtime.ChannelRegistrations, kind); err != nil {
		logging.Log.Errorf("REGISTRATION: failed to publish %s event: %v", kind, err)
	}
}

func (d *RegistrationDesk) ensureWindow(ctx context.Context, caller Caller) error {
	if caller.Role == RoleAdmin {
		return nil
	}
	window, err := d.stores.Settings.GetRegistrationWindow(ctx)
	if err != nil {
		return fmt.Errorf("load registration window: %w", err)
	}
	if !window.IsOpen(d.now()) {
		return ErrRegistrationClosed
	}
	return nil
}

func (d *RegistrationDesk) ensureUnpublished(ctx context.Context, program *storage.Program) error {
	published, err := d.stores.Results.IsPublished(ctx, program.ID)
	if err != nil {
		return fmt.Errorf("check publication: %w", err)
	}
	if published {
		return fmt.Errorf("%w: %s", ErrProgramPublished, program.Name)
	}
	return nil
}

func (d *RegistrationDesk) Register(ctx context.Context, caller Caller, programID, studentID, teamID string) (*storage.Registration, error) {
	if err := caller.require(RoleTeam, RoleAdmin); err != nil {
		return nil, err
	}
	if err := caller.actsForTeam(teamID); err != nil {
		return nil, err
	}
	if err := d.ensureWindow(ctx, caller); err != nil {
		return nil, err
	}

	program, err := d.guard.program(ctx, programID)
	if err != nil {
		return nil, err
	}
	if err := d.ensureUnpublished(ctx, program); err != nil {
		return nil, err
	}

	student, err := d.stores.Students.Get(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("load student %s: %w", studentID, err)
	}
	if student == nil {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}
	if student.TeamID != teamID {
		return nil, fmt.Errorf("%w: %s is not in team %s", ErrNotTeamMember, studentID, teamID)
	}

	existing, err := d.stores.Registrations.GetByProgram(ctx, program.ID)
	if err != nil {
		return nil, fmt.Errorf("load registrations: %w", err)
	}
	teamCount := 0
	for _, r := range existing {
		if r.StudentID == studentID {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, studentID)
		}
		if r.TeamID == teamID {
			teamCount++
		}
	}
	// Capacity is a pre-write count; concurrent registrations from the same
	// team can overshoot by the number of racing requests.
	if program.CandidateLimit > 0 && teamCount >= program.CandidateLimit {
		return nil, fmt.Errorf("%w: %d of %d used", ErrCapacityExceeded, teamCount, program.CandidateLimit)
	}

	registration := &storage.Registration{
		ProgramID: program.ID,
		StudentID: studentID,
		TeamID:    teamID,
		CreatedAt: d.now().UTC(),
	}
	err = d.stores.Registrations.Create(ctx, registration)
	if errors.Is(err, storage.ErrItemWithIDAlreadyExists) {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRegistered, studentID)
	}
	if err != nil {
		return nil, fmt.Errorf("store registration: %w", err)
	}

	logging.Log.Infof("REGISTRATION: %s registered for %s by team %s", studentID, program.ID, teamID)
	d.publish(realtime.KindCreated)
	return registration, nil
}

func (d *RegistrationDesk) Unregister(ctx context.Context, caller Caller, programID, studentID string) error {
	if err := caller.require(RoleTeam, RoleAdmin); err != nil {
		return err
	}
	if err := d.ensureWindow(ctx, caller); err != nil {
		return err
	}

	program, err := d.guard.program(ctx, programID)
	if err != nil {
		return err
	}
	registration, err := d.stores.Registrations.Get(ctx, program.ID, studentID)
	if err != nil {
		return fmt.Errorf("load registration: %w", err)
	}
	if registration == nil {
		return fmt.Errorf("%w: %s is not registered for %s", ErrNotRegistered, studentID, program.Name)
	}
	if err := caller.actsForTeam(registration.TeamID); err != nil {
		return err
	}
	if err := d.ensureUnpublished(ctx, program); err != nil {
		return err
	}

	err = d.stores.Registrations.Delete(ctx, program.ID, studentID)
	if errors.Is(err, storage.ErrItemNotFound) {
		return fmt.Errorf("%w: %s", ErrNotRegistered, studentID)
	}
	if err != nil {
		return fmt.Errorf("delete registration: %w", err)
	}

	d.publish(realtime.KindDeleted)
	return nil
}

func (d *RegistrationDesk) ListByProgram(ctx context.Context, programID string) ([]*storage.Registration, error) {
	program, err := d.guard.program(ctx, programID)
	if err != nil {
		return nil, err
	}
	return d.stores.Registrations.GetByProgram(ctx, program.ID)
}

func (d *RegistrationDesk) Window(ctx context.Context) (storage.RegistrationWindow, bool, error) {
	window, err := d.stores.Settings.GetRegistrationWindow(ctx)
	if err != nil {
		return storage.RegistrationWindow{}, false, fmt.Errorf("load registration window: %w", err)
	}
	return window, window.IsOpen(d.now()), nil
}

func (d *RegistrationDesk) SetWindow(ctx context.Context, caller Caller, window storage.RegistrationWindow) error {
	if err := caller.require(RoleAdmin); err != nil {
		return err
	}
	if !window.ClosesAt.After(window.OpensAt) {
		return ErrInvalidWindow
	}
	return d.stores.Settings.PutRegistrationWindow(ctx, storage.RegistrationWindow{
		OpensAt:  window.OpensAt.UTC(),
		ClosesAt: window.ClosesAt.UTC(),
	})
}
