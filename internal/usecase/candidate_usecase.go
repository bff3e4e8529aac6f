package usecase

import (
	"context"
	"errors"

	"go-ats-backend/internal/domain"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) AddCandidate(ctx context.Context, input *domain.NewCandidate) (*domain.Candidate, error) {
	// Validation: first violated field wins, message is fixed per field
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(validation.FirstMessage(err))
	}

	// Pre-check before hitting the insert path. The unique constraint in the
	// store still covers the race between this lookup and the insert.
	existing, err := u.repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.Conflict(domain.MsgDuplicateEmail)
	}

	candidate := normalize(input)
	if err := u.repo.Insert(ctx, candidate); err != nil {
		if errors.Is(err, domain.ErrUniqueViolation) {
			// Lost the race: another insert landed between lookup and insert
			return nil, apperror.Conflict(domain.MsgDuplicateEmail)
		}
		return nil, err
	}

	return candidate, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id int64) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

// normalize maps a submission to its stored shape: sub-record slices default
// to empty, the single optional CV becomes a singleton resumes slice.
func normalize(input *domain.NewCandidate) *domain.Candidate {
	candidate := &domain.Candidate{
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Email:           input.Email,
		Phone:           input.Phone,
		Address:         input.Address,
		Educations:      input.Educations,
		WorkExperiences: input.WorkExperiences,
		Resumes:         []domain.Resume{},
	}
	if candidate.Educations == nil {
		candidate.Educations = []domain.Education{}
	}
	if candidate.WorkExperiences == nil {
		candidate.WorkExperiences = []domain.WorkExperience{}
	}
	if input.CV != nil {
		candidate.Resumes = append(candidate.Resumes, *input.CV)
	}
	return candidate
}
