package models

import (
	"errors"
	"net/http"

	"github.com/alex-pricope/festival-results/contest"
	"github.com/go-playground/validator/v10"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type errorKind struct {
	err     error
	status  int
	code    string
	message string
}

// errorKinds is checked in order; the first match wins.
var errorKinds = []errorKind{
	{contest.ErrUnauthorized, http.StatusForbidden, "FORBIDDEN", "You are not allowed to perform this action"},
	{contest.ErrProgramNotFound, http.StatusNotFound, "PROGRAM_NOT_FOUND", "Program not found"},
	{contest.ErrStudentNotFound, http.StatusNotFound, "STUDENT_NOT_FOUND", "Student not found"},
	{contest.ErrResultNotFound, http.StatusNotFound, "RESULT_NOT_FOUND", "Result not found"},
	{contest.ErrRequestNotFound, http.StatusNotFound, "REQUEST_NOT_FOUND", "Replacement request not found"},
	{contest.ErrNotAssigned, http.StatusNotFound, "NOT_ASSIGNED", "Jury is not assigned to this program"},
	{contest.ErrNoRegistrations, http.StatusBadRequest, "NO_REGISTRATIONS", "Program has no registered candidates"},
	{contest.ErrNotRegistered, http.StatusBadRequest, "NOT_REGISTERED", "Winner must be selected from registered candidates"},
	{contest.ErrDuplicatePlacement, http.StatusBadRequest, "DUPLICATE_PLACEMENT", "A candidate can only hold one placement"},
	{contest.ErrInvalidEntries, http.StatusBadRequest, "INVALID_ENTRIES", "Exactly one entry is required for each of positions 1, 2 and 3"},
	{contest.ErrInvalidPenalty, http.StatusBadRequest, "INVALID_PENALTY", "Penalties need a target and positive points"},
	{contest.ErrInvalidOutcome, http.StatusBadRequest, "INVALID_OUTCOME", "Outcome must be approved or rejected"},
	{contest.ErrInvalidWindow, http.StatusBadRequest, "INVALID_WINDOW", "Registration window must close after it opens"},
	{contest.ErrNotTeamMember, http.StatusBadRequest, "NOT_TEAM_MEMBER", "Student does not belong to the team"},
	{contest.ErrAlreadyPublished, http.StatusConflict, "ALREADY_PUBLISHED", "Program already published"},
	{contest.ErrProgramPublished, http.StatusConflict, "PROGRAM_PUBLISHED", "Program results are already published"},
	{contest.ErrDuplicateSubmission, http.StatusConflict, "DUPLICATE_SUBMISSION", "A result for this program is already awaiting approval"},
	{contest.ErrDuplicatePendingRequest, http.StatusConflict, "DUPLICATE_PENDING_REQUEST", "A replacement request for this student is already pending"},
	{contest.ErrInvalidTransition, http.StatusConflict, "INVALID_TRANSITION", "The record is not in a state that allows this action"},
	{contest.ErrAlreadyRegistered, http.StatusConflict, "ALREADY_REGISTERED", "Student is already registered for this program"},
	{contest.ErrAlreadyAssigned, http.StatusConflict, "ALREADY_ASSIGNED", "Jury is already assigned to this program"},
	{contest.ErrCapacityExceeded, http.StatusConflict, "CAPACITY_EXCEEDED", "Team reached the candidate limit for this program"},
	{contest.ErrRegistrationOpen, http.StatusConflict, "REGISTRATION_OPEN", "Replacements can only be requested after registration closes"},
	{contest.ErrRegistrationClosed, http.StatusConflict, "REGISTRATION_CLOSED", "Registration is closed"},
}

// ErrorStatus maps an operation error to an HTTP status and response body.
// Unknown errors are internal.
func ErrorStatus(err error) (int, ErrorResponse) {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.status, ErrorResponse{Error: k.message, Code: k.code}
		}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: "internal error", Code: "INTERNAL"}
}

// BindingError describes a request that failed to bind or validate.
func BindingError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return ErrorResponse{
			Error: "invalid request: field " + fe.Field() + " failed " + fe.Tag(),
			Code:  "INVALID_REQUEST",
		}
	}
	return ErrorResponse{Error: "invalid request", Code: "INVALID_REQUEST"}
}
