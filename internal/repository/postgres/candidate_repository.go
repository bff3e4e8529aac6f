package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-ats-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

const dateLayout = "2006-01-02"

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) Insert(ctx context.Context, candidate *domain.Candidate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// 1. Insert core candidate row, fetch assigned id
	insertQuery := `
		INSERT INTO candidates (first_name, last_name, email, phone, address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err = tx.QueryRow(ctx, insertQuery,
		candidate.FirstName, candidate.LastName, candidate.Email,
		candidate.Phone, candidate.Address,
	).Scan(&candidate.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: %s", domain.ErrUniqueViolation, pgErr.ConstraintName)
		}
		return fmt.Errorf("failed to insert candidate: %w", err)
	}

	// 2. Educations
	eduInsert := `
		INSERT INTO educations (candidate_id, institution, title, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5)`
	for _, edu := range candidate.Educations {
		start, end := parseDates(edu.StartDate, edu.EndDate)
		_, err := tx.Exec(ctx, eduInsert, candidate.ID, edu.Institution, edu.Title, start, end)
		if err != nil {
			return fmt.Errorf("failed to insert education: %w", err)
		}
	}

	// 3. Work experiences
	weInsert := `
		INSERT INTO work_experiences (candidate_id, company, position, description, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	for _, we := range candidate.WorkExperiences {
		start, end := parseDates(we.StartDate, we.EndDate)
		_, err := tx.Exec(ctx, weInsert, candidate.ID, we.Company, we.Position, we.Description, start, end)
		if err != nil {
			return fmt.Errorf("failed to insert work exp: %w", err)
		}
	}

	// 4. Resumes (singleton or empty after normalization)
	cvInsert := `INSERT INTO resumes (candidate_id, file_path, file_type) VALUES ($1, $2, $3)`
	for _, cv := range candidate.Resumes {
		if _, err := tx.Exec(ctx, cvInsert, candidate.ID, cv.FilePath, cv.FileType); err != nil {
			return fmt.Errorf("failed to insert resume: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *candidateRepository) GetByEmail(ctx context.Context, email string) (*domain.Candidate, error) {
	query := `SELECT id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, '')
	          FROM candidates WHERE email = $1`
	return r.getOne(ctx, query, email)
}

func (r *candidateRepository) GetByID(ctx context.Context, id int64) (*domain.Candidate, error) {
	query := `SELECT id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, '')
	          FROM candidates WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *candidateRepository) getOne(ctx context.Context, query string, arg any) (*domain.Candidate, error) {
	var c domain.Candidate
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.loadChildren(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepository) loadChildren(ctx context.Context, c *domain.Candidate) error {
	c.Educations = []domain.Education{}
	c.WorkExperiences = []domain.WorkExperience{}
	c.Resumes = []domain.Resume{}

	eduQuery := `SELECT institution, title, start_date, end_date
	             FROM educations WHERE candidate_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, eduQuery, c.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch educations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.Education
		var start, end *time.Time
		if err := rows.Scan(&e.Institution, &e.Title, &start, &end); err != nil {
			return err
		}
		e.StartDate, e.EndDate = formatDates(start, end)
		c.Educations = append(c.Educations, e)
	}

	weQuery := `SELECT company, position, COALESCE(description, ''), start_date, end_date
	            FROM work_experiences WHERE candidate_id = $1 ORDER BY id`
	weRows, err := r.db.Query(ctx, weQuery, c.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch work exp: %w", err)
	}
	defer weRows.Close()

	for weRows.Next() {
		var w domain.WorkExperience
		var start, end *time.Time
		if err := weRows.Scan(&w.Company, &w.Position, &w.Description, &start, &end); err != nil {
			return err
		}
		w.StartDate, w.EndDate = formatDates(start, end)
		c.WorkExperiences = append(c.WorkExperiences, w)
	}

	cvQuery := `SELECT file_path, file_type FROM resumes WHERE candidate_id = $1 ORDER BY id`
	cvRows, err := r.db.Query(ctx, cvQuery, c.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch resumes: %w", err)
	}
	defer cvRows.Close()

	for cvRows.Next() {
		var cv domain.Resume
		if err := cvRows.Scan(&cv.FilePath, &cv.FileType); err != nil {
			return err
		}
		c.Resumes = append(c.Resumes, cv)
	}

	return nil
}

func parseDates(startDate string, endDate *string) (*time.Time, *time.Time) {
	var start, end *time.Time
	if startDate != "" {
		if t, err := time.Parse(dateLayout, startDate); err == nil {
			start = &t
		}
	}
	if endDate != nil && *endDate != "" {
		if t, err := time.Parse(dateLayout, *endDate); err == nil {
			end = &t
		}
	}
	return start, end
}

func formatDates(start, end *time.Time) (string, *string) {
	var startStr string
	var endStr *string
	if start != nil {
		startStr = start.Format(dateLayout)
	}
	if end != nil {
		s := end.Format(dateLayout)
		endStr = &s
	}
	return startStr, endStr
}
