package models

import (
	"github.com/alex-pricope/festival-results/storage"
)

type ProgramCreateRequest struct {
	ID             string `json:"id"`
	Name           string `json:"name" binding:"required"`
	Section        string `json:"section" binding:"required,section"`
	Category       string `json:"category"`
	Stage          bool   `json:"stage"`
	CandidateLimit int    `json:"candidateLimit" binding:"min=0"`
}

type ProgramUpdateRequest struct {
	Name           string `json:"name" binding:"required"`
	Section        string `json:"section" binding:"required,section"`
	Category       string `json:"category"`
	Stage          bool   `json:"stage"`
	CandidateLimit int    `json:"candidateLimit" binding:"min=0"`
}

type TeamCreateRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type TeamUpdateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type StudentCreateRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name" binding:"required"`
	TeamID string `json:"teamId" binding:"required"`
	Class  string `json:"class"`
}

type StudentUpdateRequest struct {
	Name   string `json:"name" binding:"required"`
	TeamID string `json:"teamId" binding:"required"`
	Class  string `json:"class"`
}

func ProgramFromCreate(id string, req ProgramCreateRequest) *storage.Program {
	return &storage.Program{
		ID:             id,
		Name:           req.Name,
		Section:        storage.Section(req.Section),
		Category:       req.Category,
		Stage:          req.Stage,
		CandidateLimit: req.CandidateLimit,
	}
}

func ProgramFromUpdate(id string, req ProgramUpdateRequest) *storage.Program {
	return &storage.Program{
		ID:             id,
		Name:           req.Name,
		Section:        storage.Section(req.Section),
		Category:       req.Category,
		Stage:          req.Stage,
		CandidateLimit: req.CandidateLimit,
	}
}
