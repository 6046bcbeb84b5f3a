package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/amara-health/his-api/internal/models"
	appErrors "github.com/amara-health/his-api/pkg/errors"
)

const (
	maxClientNameLen   = 50
	maxContactInfoLen  = 100
	minSearchTermLen   = 2
	defaultSearchLimit = 50
)

type clientRepository interface {
	Create(ctx context.Context, client *models.Client) error
	FindByID(ctx context.Context, id int64) (*models.Client, error)
	Search(ctx context.Context, term string, limit int) ([]models.ClientSearchResult, error)
}

type enrollmentReader interface {
	ListDetailByClient(ctx context.Context, clientID int64) ([]models.EnrollmentDetail, error)
}

// RegisterClientRequest describes client registration input.
type RegisterClientRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
	ContactInfo string `json:"contact_info"`
}

// ClientService orchestrates client registration, search and profiles.
type ClientService struct {
	repo        clientRepository
	enrollments enrollmentReader
	searchLimit int
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewClientService constructs ClientService.
func NewClientService(repo clientRepository, enrollments enrollmentReader, searchLimit int, validate *validator.Validate, logger *zap.Logger) *ClientService {
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{repo: repo, enrollments: enrollments, searchLimit: searchLimit, validator: validate, logger: logger}
}

// Register validates and persists a new client. Names are trimmed before
// storage; contact info is silently truncated. Two clients with identical
// names and birth date are both accepted.
func (s *ClientService) Register(ctx context.Context, req RegisterClientRequest) (*models.Client, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "first_name, last_name and date_of_birth are required")
	}

	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)
	if firstName == "" || lastName == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "first_name and last_name must not be blank")
	}
	if len([]rune(firstName)) > maxClientNameLen || len([]rune(lastName)) > maxClientNameLen {
		return nil, appErrors.Clone(appErrors.ErrValidation, "names must be at most 50 characters")
	}

	dob, err := models.ParseDate(req.DateOfBirth)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "date_of_birth must be a valid YYYY-MM-DD date")
	}

	client := &models.Client{
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dob,
		ContactInfo: truncate(req.ContactInfo, maxContactInfoLen),
	}
	if err := s.repo.Create(ctx, client); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register client")
	}

	s.logger.Info("client registered", zap.Int64("client_id", client.ID))
	return client, nil
}

// Search finds clients by case-insensitive substring match on first or last
// name. The term must be at least two characters; results are capped.
func (s *ClientService) Search(ctx context.Context, term string) ([]models.ClientSearchResult, error) {
	if len([]rune(term)) < minSearchTermLen {
		return nil, appErrors.Clone(appErrors.ErrValidation, "search term must be at least 2 characters")
	}

	results, err := s.repo.Search(ctx, term, s.searchLimit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to search clients")
	}

	for i := range results {
		results[i].Name = results[i].FirstName + " " + results[i].LastName
	}
	return results, nil
}

// Profile returns the client together with every enrollment joined to its
// program. A client without enrollments yields an empty programs array.
func (s *ClientService) Profile(ctx context.Context, id int64) (*models.ClientProfile, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "client not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load client")
	}

	enrollments, err := s.enrollments.ListDetailByClient(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}

	programs := make([]models.ProgramEnrollment, 0, len(enrollments))
	for _, e := range enrollments {
		programs = append(programs, models.ProgramEnrollment{
			ProgramID:      e.ProgramID,
			ProgramName:    e.ProgramName,
			EnrollmentDate: e.EnrollmentDate,
			Notes:          e.Notes,
		})
	}

	return &models.ClientProfile{
		ID:          client.ID,
		FirstName:   client.FirstName,
		LastName:    client.LastName,
		DateOfBirth: client.DateOfBirth,
		ContactInfo: client.ContactInfo,
		Programs:    programs,
	}, nil
}
