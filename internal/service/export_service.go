package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/amara-health/his-api/internal/models"
	appErrors "github.com/amara-health/his-api/pkg/errors"
	"github.com/amara-health/his-api/pkg/export"
)

type profileReader interface {
	Profile(ctx context.Context, id int64) (*models.ClientProfile, error)
}

// ExportDocument is a rendered download.
type ExportDocument struct {
	Payload     []byte
	ContentType string
	Filename    string
}

// ExportService renders client profiles as downloadable documents.
type ExportService struct {
	profiles  profileReader
	exporters map[string]export.Exporter
	logger    *zap.Logger
}

// NewExportService constructs ExportService with CSV and PDF renderers.
func NewExportService(profiles profileReader, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		profiles: profiles,
		exporters: map[string]export.Exporter{
			"csv": export.NewCSVExporter(),
			"pdf": export.NewPDFExporter(),
		},
		logger: logger,
	}
}

// ExportProfile renders the client's enrollment history in the requested
// format.
func (s *ExportService) ExportProfile(ctx context.Context, clientID int64, format string) (*ExportDocument, error) {
	exporter, ok := s.exporters[strings.ToLower(format)]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	profile, err := s.profiles.Profile(ctx, clientID)
	if err != nil {
		return nil, err
	}

	table := export.Table{
		Title:   fmt.Sprintf("Client Profile - %s %s", profile.FirstName, profile.LastName),
		Headers: []string{"Program ID", "Program", "Enrollment Date", "Notes"},
	}
	for _, p := range profile.Programs {
		table.Rows = append(table.Rows, map[string]string{
			"Program ID":      strconv.FormatInt(p.ProgramID, 10),
			"Program":         p.ProgramName,
			"Enrollment Date": p.EnrollmentDate.String(),
			"Notes":           p.Notes,
		})
	}

	payload, err := exporter.Render(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}

	s.logger.Info("profile exported", zap.Int64("client_id", clientID), zap.String("format", format))
	return &ExportDocument{
		Payload:     payload,
		ContentType: exporter.ContentType(),
		Filename:    fmt.Sprintf("client-%d-profile.%s", clientID, exporter.FileExtension()),
	}, nil
}
