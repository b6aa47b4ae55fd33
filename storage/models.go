package storage

import "time"

type Section string

const (
	SectionSingle Section = "single"
	SectionGroup  Section = "group"
)

type ResultStatus string

const (
	StatusPending  ResultStatus = "pending"
	StatusApproved ResultStatus = "approved"
	StatusRejected ResultStatus = "rejected"
)

type Grade string

const (
	GradeA    Grade = "A"
	GradeB    Grade = "B"
	GradeC    Grade = "C"
	GradeNone Grade = "none"
)

type PenaltyTarget string

const (
	PenaltyTargetStudent PenaltyTarget = "student"
	PenaltyTargetTeam    PenaltyTarget = "team"
)

type Program struct {
	ID             string  `dynamodbav:"PK" json:"id"`
	Name           string  `dynamodbav:"Name" json:"name"`
	Section        Section `dynamodbav:"Section" json:"section"`
	Category       string  `dynamodbav:"Category" json:"category"`
	Stage          bool    `dynamodbav:"Stage" json:"stage"`
	CandidateLimit int     `dynamodbav:"CandidateLimit" json:"candidateLimit"` // per team, 0 means unlimited
}

type Team struct {
	ID          string `dynamodbav:"PK" json:"id"`
	Name        string `dynamodbav:"Name" json:"name"`
	Description string `dynamodbav:"Description" json:"description"`
}

type Student struct {
	ID     string `dynamodbav:"PK" json:"id"`
	Name   string `dynamodbav:"Name" json:"name"`
	TeamID string `dynamodbav:"TeamID" json:"teamId"`
	Class  string `dynamodbav:"Class" json:"class"`
}

type Registration struct {
	Key       string    `dynamodbav:"PK" json:"-"` // programID#studentID
	ProgramID string    `dynamodbav:"ProgramID" json:"programId"`
	StudentID string    `dynamodbav:"StudentID" json:"studentId"`
	TeamID    string    `dynamodbav:"TeamID" json:"teamId"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

func RegistrationKey(programID, studentID string) string {
	return programID + "#" + studentID
}

type ResultEntry struct {
	Position    int    `dynamodbav:"Position" json:"position"`
	CandidateID string `dynamodbav:"CandidateID" json:"candidateId"`
	Grade       Grade  `dynamodbav:"Grade" json:"grade"`
	Points      int    `dynamodbav:"Points" json:"points"`
}

type Penalty struct {
	Target   PenaltyTarget `dynamodbav:"Target" json:"target"`
	TargetID string        `dynamodbav:"TargetID" json:"targetId"`
	Points   int           `dynamodbav:"Points" json:"points"`
	Reason   string        `dynamodbav:"Reason" json:"reason"`
}

type Result struct {
	ID          string        `dynamodbav:"PK" json:"id"`
	ProgramID   string        `dynamodbav:"ProgramID" json:"programId"`
	Section     Section       `dynamodbav:"Section" json:"section"`
	SubmittedBy string        `dynamodbav:"SubmittedBy" json:"submittedBy"`
	Status      ResultStatus  `dynamodbav:"Status" json:"status"`
	Entries     []ResultEntry `dynamodbav:"Entries" json:"entries"`
	Penalties   []Penalty     `dynamodbav:"Penalties" json:"penalties"`
	SubmittedAt time.Time     `dynamodbav:"SubmittedAt" json:"submittedAt"`
	DecidedAt   *time.Time    `dynamodbav:"DecidedAt,omitempty" json:"decidedAt,omitempty"`
	UpdatedAt   *time.Time    `dynamodbav:"UpdatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Publication marks the single approved result of a program.
type Publication struct {
	ProgramID string    `dynamodbav:"PK"`
	ResultID  string    `dynamodbav:"ResultID"`
	CreatedAt time.Time `dynamodbav:"CreatedAt"`
}

type Replacement struct {
	ID           string       `dynamodbav:"PK" json:"id"`
	ProgramID    string       `dynamodbav:"ProgramID" json:"programId"`
	OldStudentID string       `dynamodbav:"OldStudentID" json:"oldStudentId"`
	NewStudentID string       `dynamodbav:"NewStudentID" json:"newStudentId"`
	TeamID       string       `dynamodbav:"TeamID" json:"teamId"`
	Reason       string       `dynamodbav:"Reason" json:"reason"`
	Status       ResultStatus `dynamodbav:"Status" json:"status"`
	CreatedAt    time.Time    `dynamodbav:"CreatedAt" json:"createdAt"`
	DecidedAt    *time.Time   `dynamodbav:"DecidedAt,omitempty" json:"decidedAt,omitempty"`
}

type Assignment struct {
	Key       string    `dynamodbav:"PK" json:"-"` // programID#juryID
	ProgramID string    `dynamodbav:"ProgramID" json:"programId"`
	JuryID    string    `dynamodbav:"JuryID" json:"juryId"`
	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"createdAt"`
}

func AssignmentKey(programID, juryID string) string {
	return programID + "#" + juryID
}

type RegistrationWindow struct {
	OpensAt  time.Time `dynamodbav:"OpensAt" json:"opensAt"`
	ClosesAt time.Time `dynamodbav:"ClosesAt" json:"closesAt"`
}

// IsOpen reports whether t falls in [OpensAt, ClosesAt).
func (w RegistrationWindow) IsOpen(t time.Time) bool {
	if w.OpensAt.IsZero() || w.ClosesAt.IsZero() {
		return false
	}
	return !t.Before(w.OpensAt) && t.Before(w.ClosesAt)
}
