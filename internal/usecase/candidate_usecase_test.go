package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"go-ats-backend/internal/domain"
	"go-ats-backend/internal/usecase"
	"go-ats-backend/pkg/apperror"
	"go-ats-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) Insert(ctx context.Context, candidate *domain.Candidate) error {
	return m.Called(ctx, candidate).Error(0)
}

func (m *MockCandidateRepo) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Candidate), args.Error(1)
}

func newUsecase(repo domain.CandidateRepository) domain.CandidateUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	return usecase.NewCandidateUsecase(repo, validate)
}

func validInput() *domain.NewCandidate {
	return &domain.NewCandidate{
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "juan.perez@example.com",
	}
}

func TestAddCandidateValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(in *domain.NewCandidate)
		wantMsg string
	}{
		{"Missing firstName", func(in *domain.NewCandidate) { in.FirstName = "" }, "Invalid name"},
		{"Missing lastName", func(in *domain.NewCandidate) { in.LastName = "" }, "Invalid name"},
		{"Missing email", func(in *domain.NewCandidate) { in.Email = "" }, "Invalid email"},
		{"FirstName too short", func(in *domain.NewCandidate) { in.FirstName = "A" }, "Invalid name"},
		{"FirstName too long", func(in *domain.NewCandidate) { in.FirstName = strings.Repeat("a", 101) }, "Invalid name"},
		{"FirstName with digits", func(in *domain.NewCandidate) { in.FirstName = "Juan3" }, "Invalid name"},
		{"Email without at sign", func(in *domain.NewCandidate) { in.Email = "emailinvalido.com" }, "Invalid email"},
		{"Email without extension", func(in *domain.NewCandidate) { in.Email = "juan@example" }, "Invalid email"},
		{"Phone with wrong prefix", func(in *domain.NewCandidate) { in.Phone = "512345678" }, "Invalid phone"},
		{"Phone too short", func(in *domain.NewCandidate) { in.Phone = "61234567" }, "Invalid phone"},
		{"Address too long", func(in *domain.NewCandidate) { in.Address = strings.Repeat("x", 101) }, "Invalid address"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// No expectations: the repository must not be touched on
			// validation failures.
			mockRepo := new(MockCandidateRepo)
			uc := newUsecase(mockRepo)

			in := validInput()
			tc.mutate(in)

			_, err := uc.AddCandidate(context.Background(), in)
			assert.Error(t, err)
			assert.EqualError(t, err, tc.wantMsg)

			var appErr *apperror.AppError
			assert.True(t, errors.As(err, &appErr))
			assert.Equal(t, http.StatusBadRequest, appErr.Code)

			mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
		})
	}
}

func TestAddCandidateFirstViolationWins(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := newUsecase(mockRepo)

	// firstName and email are both invalid; firstName is checked first
	in := validInput()
	in.FirstName = "A"
	in.Email = "broken"

	_, err := uc.AddCandidate(context.Background(), in)
	assert.EqualError(t, err, "Invalid name")
}

func TestAddCandidateSuccess(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := newUsecase(mockRepo)

	in := validInput()
	in.Phone = "612345678"
	in.Address = "Calle Mayor 1"

	mockRepo.On("GetByEmail", mock.Anything, in.Email).Return(nil, nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
		c := args.Get(1).(*domain.Candidate)
		c.ID = 1
	})

	candidate, err := uc.AddCandidate(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), candidate.ID)
	assert.Equal(t, "Juan", candidate.FirstName)
	assert.Equal(t, "juan.perez@example.com", candidate.Email)
	mockRepo.AssertExpectations(t)
}

func TestAddCandidateNormalization(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := newUsecase(mockRepo)

	in := validInput()
	in.CV = &domain.Resume{FilePath: "uploads/juan.pdf", FileType: "application/pdf"}

	mockRepo.On("GetByEmail", mock.Anything, in.Email).Return(nil, nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(nil).Run(func(args mock.Arguments) {
		c := args.Get(1).(*domain.Candidate)
		// Absent sub-records become empty slices, the CV a singleton
		assert.NotNil(t, c.Educations)
		assert.Empty(t, c.Educations)
		assert.NotNil(t, c.WorkExperiences)
		assert.Empty(t, c.WorkExperiences)
		assert.Len(t, c.Resumes, 1)
		assert.Equal(t, "uploads/juan.pdf", c.Resumes[0].FilePath)
	})

	_, err := uc.AddCandidate(context.Background(), in)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestAddCandidateDuplicateEmail(t *testing.T) {
	t.Run("Rejected by the pre-insert lookup", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := newUsecase(mockRepo)

		in := validInput()
		mockRepo.On("GetByEmail", mock.Anything, in.Email).Return(&domain.Candidate{ID: 1, Email: in.Email}, nil)

		_, err := uc.AddCandidate(context.Background(), in)
		assert.EqualError(t, err, "The email already exists in the database")

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusConflict, appErr.Code)

		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Rejected by the unique constraint on an insert race", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := newUsecase(mockRepo)

		in := validInput()
		mockRepo.On("GetByEmail", mock.Anything, in.Email).Return(nil, nil)
		mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Candidate")).
			Return(domain.ErrUniqueViolation)

		_, err := uc.AddCandidate(context.Background(), in)
		assert.EqualError(t, err, "The email already exists in the database")
	})
}

func TestAddCandidateRepositoryErrorPropagates(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := newUsecase(mockRepo)

	in := validInput()
	repoErr := errors.New("connection refused")
	mockRepo.On("GetByEmail", mock.Anything, in.Email).Return(nil, nil)
	mockRepo.On("Insert", mock.Anything, mock.AnythingOfType("*domain.Candidate")).Return(repoErr)

	_, err := uc.AddCandidate(context.Background(), in)
	assert.ErrorIs(t, err, repoErr)
}

func TestGetCandidate(t *testing.T) {
	t.Run("Returns the stored record", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := newUsecase(mockRepo)

		stored := &domain.Candidate{ID: 7, FirstName: "Juan", LastName: "Pérez", Email: "juan.perez@example.com"}
		mockRepo.On("GetByID", mock.Anything, int64(7)).Return(stored, nil)

		candidate, err := uc.GetCandidate(context.Background(), 7)
		assert.NoError(t, err)
		assert.Equal(t, stored, candidate)
	})

	t.Run("Not found when absent", func(t *testing.T) {
		mockRepo := new(MockCandidateRepo)
		uc := newUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

		_, err := uc.GetCandidate(context.Background(), 99)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Candidate not found")
	})
}
