package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/amara-health/his-api/internal/models"
)

// EnrollmentRepository handles persistence of enrollments.
type EnrollmentRepository struct {
	db *sqlx.DB
}

// NewEnrollmentRepository constructs the repository.
func NewEnrollmentRepository(db *sqlx.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create persists a new enrollment record and fills in its generated id.
func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *models.Enrollment) error {
	const query = `INSERT INTO enrollments (client_id, program_id, enrollment_date, notes)
        VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &enrollment.ID, query,
		enrollment.ClientID, enrollment.ProgramID, enrollment.EnrollmentDate, enrollment.Notes); err != nil {
		return fmt.Errorf("create enrollment: %w", err)
	}
	return nil
}

// ListDetailByClient returns every enrollment for a client joined to its
// program, oldest first.
func (r *EnrollmentRepository) ListDetailByClient(ctx context.Context, clientID int64) ([]models.EnrollmentDetail, error) {
	const query = `SELECT e.id, e.client_id, e.program_id, e.enrollment_date, e.notes,
        p.name AS program_name
        FROM enrollments e
        JOIN programs p ON p.id = e.program_id
        WHERE e.client_id = $1
        ORDER BY e.id`
	enrollments := []models.EnrollmentDetail{}
	if err := r.db.SelectContext(ctx, &enrollments, query, clientID); err != nil {
		return nil, fmt.Errorf("list client enrollments: %w", err)
	}
	return enrollments, nil
}
