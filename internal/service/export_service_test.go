package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amara-health/his-api/internal/models"
	appErrors "github.com/amara-health/his-api/pkg/errors"
)

type mockProfileReader struct {
	profile *models.ClientProfile
	err     error
}

func (m *mockProfileReader) Profile(ctx context.Context, id int64) (*models.ClientProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

func TestExportServiceCSV(t *testing.T) {
	enrolled, err := models.ParseDate("2024-03-01")
	require.NoError(t, err)
	reader := &mockProfileReader{profile: &models.ClientProfile{
		ID: 1, FirstName: "Jane", LastName: "Smith",
		Programs: []models.ProgramEnrollment{
			{ProgramID: 3, ProgramName: "Malaria", EnrollmentDate: enrolled, Notes: "initial"},
		},
	}}
	svc := NewExportService(reader, zap.NewNop())

	doc, err := svc.ExportProfile(context.Background(), 1, "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", doc.ContentType)
	assert.Equal(t, "client-1-profile.csv", doc.Filename)
	body := string(doc.Payload)
	assert.True(t, strings.HasPrefix(body, "Program ID,Program,Enrollment Date,Notes"))
	assert.Contains(t, body, "3,Malaria,2024-03-01,initial")
}

func TestExportServicePDF(t *testing.T) {
	reader := &mockProfileReader{profile: &models.ClientProfile{ID: 1, FirstName: "Jane", LastName: "Smith"}}
	svc := NewExportService(reader, zap.NewNop())

	doc, err := svc.ExportProfile(context.Background(), 1, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.True(t, strings.HasPrefix(string(doc.Payload), "%PDF"))
}

func TestExportServiceUnknownFormat(t *testing.T) {
	svc := NewExportService(&mockProfileReader{}, zap.NewNop())

	_, err := svc.ExportProfile(context.Background(), 1, "xlsx")
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestExportServiceProfileErrorPassthrough(t *testing.T) {
	reader := &mockProfileReader{err: appErrors.Clone(appErrors.ErrNotFound, "client not found")}
	svc := NewExportService(reader, zap.NewNop())

	_, err := svc.ExportProfile(context.Background(), 1, "csv")
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}
