package models

import (
	"time"

	"github.com/alex-pricope/festival-results/storage"
)

type EntryRequest struct {
	Position    int    `json:"position" binding:"required,min=1,max=3"`
	CandidateID string `json:"candidateId" binding:"required"`
	Grade       string `json:"grade" binding:"omitempty,grade"`
}

type PenaltyRequest struct {
	Target   string `json:"target" binding:"required,penalty_target"`
	TargetID string `json:"targetId" binding:"required"`
	Points   int    `json:"points" binding:"required,gt=0"`
	Reason   string `json:"reason"`
}

type SubmitResultRequest struct {
	ProgramID string           `json:"programId" binding:"required"`
	Entries   []EntryRequest   `json:"entries" binding:"required,len=3,dive"`
	Penalties []PenaltyRequest `json:"penalties" binding:"omitempty,dive"`
}

type UpdateResultRequest struct {
	Entries   []EntryRequest   `json:"entries" binding:"required,len=3,dive"`
	Penalties []PenaltyRequest `json:"penalties" binding:"omitempty,dive"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ResultResponse struct {
	ID          string                `json:"id"`
	ProgramID   string                `json:"programId"`
	Section     string                `json:"section"`
	SubmittedBy string                `json:"submittedBy"`
	Status      string                `json:"status"`
	Entries     []storage.ResultEntry `json:"entries"`
	Penalties   []storage.Penalty     `json:"penalties"`
	SubmittedAt time.Time             `json:"submittedAt"`
	DecidedAt   *time.Time            `json:"decidedAt,omitempty"`
	UpdatedAt   *time.Time            `json:"updatedAt,omitempty"`
}

// ToEntries converts request entries; a missing grade means none.
func ToEntries(in []EntryRequest) []storage.ResultEntry {
	out := make([]storage.ResultEntry, 0, len(in))
	for _, e := range in {
		grade := storage.Grade(e.Grade)
		if grade == "" {
			grade = storage.GradeNone
		}
		out = append(out, storage.ResultEntry{Position: e.Position, CandidateID: e.CandidateID, Grade: grade})
	}
	return out
}

func ToPenalties(in []PenaltyRequest) []storage.Penalty {
	out := make([]storage.Penalty, 0, len(in))
	for _, p := range in {
		out = append(out, storage.Penalty{
			Target:   storage.PenaltyTarget(p.Target),
			TargetID: p.TargetID,
			Points:   p.Points,
			Reason:   p.Reason,
		})
	}
	return out
}

func TransformResultFromStorage(r *storage.Result) ResultResponse {
	penalties := r.Penalties
	if penalties == nil {
		penalties = []storage.Penalty{}
	}
	return ResultResponse{
		ID:          r.ID,
		ProgramID:   r.ProgramID,
		Section:     string(r.Section),
		SubmittedBy: r.SubmittedBy,
		Status:      string(r.Status),
		Entries:     r.Entries,
		Penalties:   penalties,
		SubmittedAt: r.SubmittedAt,
		DecidedAt:   r.DecidedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
