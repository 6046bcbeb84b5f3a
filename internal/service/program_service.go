package service

import (
	"context"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/amara-health/his-api/internal/models"
	"github.com/amara-health/his-api/internal/repository"
	appErrors "github.com/amara-health/his-api/pkg/errors"
)

// Program names are 3-100 characters of letters, digits, spaces and hyphens.
var programNamePattern = regexp.MustCompile(`^[A-Za-z0-9 -]{3,100}$`)

const (
	maxProgramDescriptionLen = 200
	programListCacheKey      = "programs:list"
)

type programRepository interface {
	Create(ctx context.Context, program *models.Program) error
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]models.Program, error)
}

// CreateProgramRequest describes program creation input.
type CreateProgramRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// ProgramService orchestrates program creation and listing.
type ProgramService struct {
	repo      programRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProgramService constructs ProgramService.
func NewProgramService(repo programRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *ProgramService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Create validates and persists a new program. Descriptions beyond the
// column limit are truncated, not rejected. Name uniqueness is pre-checked
// here, but the database constraint stays authoritative: a constraint
// violation surfaces as the same duplicate-name error.
func (s *ProgramService) Create(ctx context.Context, req CreateProgramRequest) (*models.Program, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "program name is required")
	}
	if !programNamePattern.MatchString(req.Name) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "program name must be 3-100 letters, digits, spaces or hyphens")
	}

	exists, err := s.repo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate program name")
	}
	if exists {
		return nil, appErrors.Clone(appErrors.ErrValidation, "program name already exists")
	}

	program := &models.Program{
		Name:        req.Name,
		Description: truncate(req.Description, maxProgramDescriptionLen),
	}
	if err := s.repo.Create(ctx, program); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "program name already exists")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create program")
	}

	if err := s.cache.Invalidate(ctx, programListCacheKey); err != nil {
		s.logger.Warn("program list cache invalidation failed", zap.Error(err))
	}

	s.logger.Info("program created", zap.Int64("program_id", program.ID), zap.String("name", program.Name))
	return program, nil
}

// List returns all programs, served from cache when enabled.
func (s *ProgramService) List(ctx context.Context) ([]models.Program, error) {
	var cached []models.Program
	if hit, err := s.cache.Get(ctx, programListCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	programs, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list programs")
	}

	if err := s.cache.Set(ctx, programListCacheKey, programs, 0); err != nil {
		s.logger.Warn("program list cache write failed", zap.Error(err))
	}

	return programs, nil
}

// truncate silently caps a string at max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
