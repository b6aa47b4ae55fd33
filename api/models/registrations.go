package models

import (
	"time"

	"github.com/alex-pricope/festival-results/storage"
)

type RegisterRequest struct {
	ProgramID string `json:"programId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
	TeamID    string `json:"teamId" binding:"required"`
}

type RegistrationWindowRequest struct {
	OpensAt  time.Time `json:"opensAt" binding:"required"`
	ClosesAt time.Time `json:"closesAt" binding:"required,gtfield=OpensAt"`
}

type RegistrationWindowResponse struct {
	OpensAt  *time.Time `json:"opensAt,omitempty"`
	ClosesAt *time.Time `json:"closesAt,omitempty"`
	Open     bool       `json:"open"`
}

func TransformWindowFromStorage(w storage.RegistrationWindow, open bool) RegistrationWindowResponse {
	res := RegistrationWindowResponse{Open: open}
	if !w.OpensAt.IsZero() {
		opens := w.OpensAt
		res.OpensAt = &opens
	}
	if !w.ClosesAt.IsZero() {
		closes := w.ClosesAt
		res.ClosesAt = &closes
	}
	return res
}

type CreateReplacementRequest struct {
	ProgramID    string `json:"programId" binding:"required"`
	OldStudentID string `json:"oldStudentId" binding:"required"`
	NewStudentID string `json:"newStudentId" binding:"required,nefield=OldStudentID"`
	TeamID       string `json:"teamId" binding:"required"`
	Reason       string `json:"reason"`
}

type DecisionRequest struct {
	Outcome string `json:"outcome" binding:"required,outcome"`
}

type AssignRequest struct {
	ProgramID string `json:"programId" binding:"required"`
	JuryID    string `json:"juryId" binding:"required"`
}
