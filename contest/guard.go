package contest

import (
	"context"
	"fmt"

	"github.com/alex-pricope/festival-results/storage"
)

// RegistrationGuard checks that named candidates are registered for a
// program. It never writes.
type RegistrationGuard struct {
	programs      storage.ProgramStorage
	registrations storage.RegistrationStorage
}

func NewRegistrationGuard(programs storage.ProgramStorage, registrations storage.RegistrationStorage) *RegistrationGuard {
	return &RegistrationGuard{programs: programs, registrations: registrations}
}

func (g *RegistrationGuard) program(ctx context.Context, programID string) (*storage.Program, error) {
	program, err := g.programs.Get(ctx, programID)
	if err != nil {
		return nil, fmt.Errorf("load program %s: %w", programID, err)
	}
	if program == nil {
		return nil, fmt.Errorf("%w: %s", ErrProgramNotFound, programID)
	}
	return program, nil
}

// EnsureEligible fails unless every candidate id is registered for the
// program: student ids for single programs, team ids for group programs.
func (g *RegistrationGuard) EnsureEligible(ctx context.Context, programID string, candidateIDs []string) error {
	program, err := g.program(ctx, programID)
	if err != nil {
		return err
	}
	return g.ensureEligible(ctx, program, candidateIDs)
}

func (g *RegistrationGuard) ensureEligible(ctx context.Context, program *storage.Program, candidateIDs []string) error {
	registrations, err := g.registrations.GetByProgram(ctx, program.ID)
	if err != nil {
		return fmt.Errorf("load registrations for %s: %w", program.ID, err)
	}
	if len(registrations) == 0 {
		return fmt.Errorf("%w: %s", ErrNoRegistrations, program.Name)
	}

	eligible := make(map[string]struct{}, len(registrations))
	for _, r := range registrations {
		if program.Section == storage.SectionGroup {
			eligible[r.TeamID] = struct{}{}
		} else {
			eligible[r.StudentID] = struct{}{}
		}
	}

	for _, id := range candidateIDs {
		if _, ok := eligible[id]; !ok {
			return fmt.Errorf("%w: %s is not registered for %s", ErrNotRegistered, id, program.Name)
		}
	}
	return nil
}
