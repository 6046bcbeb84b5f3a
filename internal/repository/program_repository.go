package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/amara-health/his-api/internal/models"
)

// ProgramRepository handles persistence of health programs.
type ProgramRepository struct {
	db *sqlx.DB
}

// NewProgramRepository constructs the repository.
func NewProgramRepository(db *sqlx.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// Create persists a new program and fills in its generated id.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	const query = `INSERT INTO programs (name, description) VALUES ($1, $2) RETURNING id`
	if err := r.db.GetContext(ctx, &program.ID, query, program.Name, program.Description); err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	return nil
}

// ExistsByName reports whether a program with the exact name exists.
// This is a pre-check only; the unique constraint on programs.name remains
// the final arbiter under concurrency.
func (r *ProgramRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	const query = `SELECT 1 FROM programs WHERE name = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, name); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check program name: %w", err)
	}
	return true, nil
}

// FindByID returns a program by its primary key.
func (r *ProgramRepository) FindByID(ctx context.Context, id int64) (*models.Program, error) {
	const query = `SELECT id, name, description FROM programs WHERE id = $1`
	var program models.Program
	if err := r.db.GetContext(ctx, &program, query, id); err != nil {
		return nil, err
	}
	return &program, nil
}

// List returns all programs, unfiltered.
func (r *ProgramRepository) List(ctx context.Context) ([]models.Program, error) {
	const query = `SELECT id, name, description FROM programs ORDER BY id`
	programs := []models.Program{}
	if err := r.db.SelectContext(ctx, &programs, query); err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	return programs, nil
}

// IsUniqueViolation reports whether err stems from a unique constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
