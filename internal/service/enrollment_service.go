package service

import (
	"context"
	"database/sql"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/amara-health/his-api/internal/models"
	appErrors "github.com/amara-health/his-api/pkg/errors"
)

const maxEnrollmentNotesLen = 500

type enrollmentRepository interface {
	Create(ctx context.Context, enrollment *models.Enrollment) error
}

type programReader interface {
	FindByID(ctx context.Context, id int64) (*models.Program, error)
}

type clientReader interface {
	FindByID(ctx context.Context, id int64) (*models.Client, error)
}

// EnrollClientRequest describes enrollment creation input. The client id
// comes from the request path, not the body.
type EnrollClientRequest struct {
	ProgramID int64  `json:"program_id" validate:"required"`
	Notes     string `json:"notes"`
}

// EnrollmentService orchestrates enrolling clients into programs.
type EnrollmentService struct {
	repo      enrollmentRepository
	programs  programReader
	clients   clientReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs EnrollmentService.
func NewEnrollmentService(repo enrollmentRepository, programs programReader, clients clientReader, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{repo: repo, programs: programs, clients: clients, validator: validate, logger: logger}
}

// Enroll registers a client into a program. Both the client and the program
// must exist; the enrollment date is always the current server date and any
// caller-supplied value is ignored. Re-enrolling a client in the same
// program creates a new history row.
func (s *EnrollmentService) Enroll(ctx context.Context, clientID int64, req EnrollClientRequest) (*models.Enrollment, *models.Program, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "program_id is required")
	}

	if _, err := s.clients.FindByID(ctx, clientID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "client not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load client")
	}

	program, err := s.programs.FindByID(ctx, req.ProgramID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "program not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load program")
	}

	enrollment := &models.Enrollment{
		ClientID:       clientID,
		ProgramID:      req.ProgramID,
		EnrollmentDate: models.Today(),
		Notes:          truncate(req.Notes, maxEnrollmentNotesLen),
	}
	if err := s.repo.Create(ctx, enrollment); err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create enrollment")
	}

	s.logger.Info("client enrolled",
		zap.Int64("client_id", clientID),
		zap.Int64("program_id", program.ID),
		zap.Int64("enrollment_id", enrollment.ID))
	return enrollment, program, nil
}
