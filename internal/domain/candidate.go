package domain

import (
	"context"
	"errors"
)

// MsgDuplicateEmail is the fixed message returned when a candidate with the
// same email is already stored. Clients match on it, do not reword.
const MsgDuplicateEmail = "The email already exists in the database"

// ErrUniqueViolation is returned by repository implementations when an insert
// hits the unique email constraint. The usecase translates it to a Conflict.
var ErrUniqueViolation = errors.New("unique constraint violation")

type Candidate struct {
	ID              int64            `json:"id"`
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone,omitempty"`
	Address         string           `json:"address,omitempty"`
	Educations      []Education      `json:"educations"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	Resumes         []Resume         `json:"resumes"`
}

// NewCandidate is the unvalidated submission payload. Field order matters:
// the validator reports the first violated field, top to bottom.
type NewCandidate struct {
	FirstName       string           `json:"firstName" validate:"required,min=2,max=100,valid_name"`
	LastName        string           `json:"lastName" validate:"required,min=2,max=100,valid_name"`
	Email           string           `json:"email" validate:"required,valid_email"`
	Phone           string           `json:"phone" validate:"omitempty,valid_phone"`
	Address         string           `json:"address" validate:"omitempty,max=100"`
	Educations      []Education      `json:"educations"`
	WorkExperiences []WorkExperience `json:"workExperiences"`
	CV              *Resume          `json:"cv"`
}

type Education struct {
	Institution string  `json:"institution"`
	Title       string  `json:"title"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

type WorkExperience struct {
	Company     string  `json:"company"`
	Position    string  `json:"position"`
	Description string  `json:"description,omitempty"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
}

type Resume struct {
	FilePath string `json:"filePath"`
	FileType string `json:"fileType"`
}

// CandidateRepository is the persistence boundary. Lookups return (nil, nil)
// when no record matches.
type CandidateRepository interface {
	Insert(ctx context.Context, candidate *Candidate) error
	GetByEmail(ctx context.Context, email string) (*Candidate, error)
	GetByID(ctx context.Context, id int64) (*Candidate, error)
}

type CandidateUsecase interface {
	AddCandidate(ctx context.Context, input *NewCandidate) (*Candidate, error)
	GetCandidate(ctx context.Context, id int64) (*Candidate, error)
}
