package contest

import "errors"

// Error kinds returned by the lifecycle operations. Callers compare with
// errors.Is; messages are written for the human operator.
var (
	ErrProgramNotFound         = errors.New("program not found")
	ErrStudentNotFound         = errors.New("student not found")
	ErrResultNotFound          = errors.New("result not found")
	ErrRequestNotFound         = errors.New("replacement request not found")
	ErrNoRegistrations         = errors.New("no candidates are registered for this program")
	ErrNotRegistered           = errors.New("winner must be selected from registered candidates")
	ErrDuplicatePlacement      = errors.New("the same candidate cannot take more than one position")
	ErrAlreadyPublished        = errors.New("program already published")
	ErrProgramPublished        = errors.New("program already has a published result")
	ErrDuplicateSubmission     = errors.New("a result for this program is already awaiting approval")
	ErrDuplicatePendingRequest = errors.New("a replacement request for this student is already pending")
	ErrRegistrationOpen        = errors.New("registration window is open, edit registrations directly")
	ErrRegistrationClosed      = errors.New("registration window is closed")
	ErrCapacityExceeded        = errors.New("team has reached the candidate limit for this program")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrInvalidTransition       = errors.New("operation not allowed in the current state")
	ErrInvalidEntries          = errors.New("a result needs exactly one entry for each of positions 1, 2 and 3")
	ErrInvalidPenalty          = errors.New("penalty points must be a positive number")
	ErrNotTeamMember           = errors.New("student does not belong to the team")
	ErrAlreadyRegistered       = errors.New("student is already registered for this program")
	ErrInvalidOutcome          = errors.New("outcome must be approved or rejected")
	ErrInvalidWindow           = errors.New("registration window must close after it opens")
	ErrAlreadyAssigned         = errors.New("jury is already assigned to this program")
	ErrNotAssigned             = errors.New("jury is not assigned to this program")
)
