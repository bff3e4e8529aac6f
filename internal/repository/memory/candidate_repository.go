// Package memory holds the in-memory reference implementation of the
// candidate repository. It backs the test suites; it is not thread-safe and
// is not meant to stand in for Postgres in production.
package memory

import (
	"context"

	"go-ats-backend/internal/domain"
)

type candidateRepository struct {
	candidates []*domain.Candidate
	nextID     int64
}

func NewCandidateRepository() domain.CandidateRepository {
	return &candidateRepository{nextID: 1}
}

func (r *candidateRepository) Insert(_ context.Context, candidate *domain.Candidate) error {
	for _, c := range r.candidates {
		if c.Email == candidate.Email {
			return domain.ErrUniqueViolation
		}
	}
	candidate.ID = r.nextID
	r.nextID++

	stored := *candidate
	r.candidates = append(r.candidates, &stored)
	return nil
}

func (r *candidateRepository) GetByEmail(_ context.Context, email string) (*domain.Candidate, error) {
	for _, c := range r.candidates {
		if c.Email == email {
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}

func (r *candidateRepository) GetByID(_ context.Context, id int64) (*domain.Candidate, error) {
	for _, c := range r.candidates {
		if c.ID == id {
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}
