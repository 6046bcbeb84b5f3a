package service

import (
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amara-health/his-api/internal/models"
	appErrors "github.com/amara-health/his-api/pkg/errors"
)

type mockClientRepo struct {
	clients map[int64]models.Client
	nextID  int64
	created *models.Client
	results []models.ClientSearchResult
	lastQ   string
	lastLim int
}

func (m *mockClientRepo) Create(ctx context.Context, client *models.Client) error {
	if m.clients == nil {
		m.clients = make(map[int64]models.Client)
	}
	m.nextID++
	client.ID = m.nextID
	m.clients[client.ID] = *client
	m.created = client
	return nil
}

func (m *mockClientRepo) FindByID(ctx context.Context, id int64) (*models.Client, error) {
	if c, ok := m.clients[id]; ok {
		return &c, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockClientRepo) Search(ctx context.Context, term string, limit int) ([]models.ClientSearchResult, error) {
	m.lastQ = term
	m.lastLim = limit
	return m.results, nil
}

type mockEnrollmentReader struct {
	details map[int64][]models.EnrollmentDetail
}

func (m *mockEnrollmentReader) ListDetailByClient(ctx context.Context, clientID int64) ([]models.EnrollmentDetail, error) {
	return m.details[clientID], nil
}

func newClientService(repo *mockClientRepo, enrollments *mockEnrollmentReader) *ClientService {
	if enrollments == nil {
		enrollments = &mockEnrollmentReader{}
	}
	return NewClientService(repo, enrollments, 50, validator.New(), zap.NewNop())
}

func TestClientServiceRegister(t *testing.T) {
	repo := &mockClientRepo{}
	svc := newClientService(repo, nil)

	client, err := svc.Register(context.Background(), RegisterClientRequest{
		FirstName:   "  Jane ",
		LastName:    "Smith",
		DateOfBirth: "1990-01-01",
		ContactInfo: "jane@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), client.ID)
	assert.Equal(t, "Jane", client.FirstName, "names are trimmed before storage")
	assert.Equal(t, "1990-01-01", client.DateOfBirth.String())
}

func TestClientServiceRegisterMissingFields(t *testing.T) {
	svc := newClientService(&mockClientRepo{}, nil)

	_, err := svc.Register(context.Background(), RegisterClientRequest{FirstName: "Jane"})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestClientServiceRegisterInvalidDate(t *testing.T) {
	svc := newClientService(&mockClientRepo{}, nil)

	for _, dob := range []string{"1990-02-30", "01/01/1990", "1990-13-01", "not-a-date"} {
		_, err := svc.Register(context.Background(), RegisterClientRequest{
			FirstName:   "Jane",
			LastName:    "Smith",
			DateOfBirth: dob,
		})
		require.Error(t, err, "dob %q should be rejected", dob)
		assert.Equal(t, 400, appErrors.FromError(err).Status)
	}
}

func TestClientServiceRegisterNameTooLong(t *testing.T) {
	svc := newClientService(&mockClientRepo{}, nil)

	_, err := svc.Register(context.Background(), RegisterClientRequest{
		FirstName:   strings.Repeat("a", 51),
		LastName:    "Smith",
		DateOfBirth: "1990-01-01",
	})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestClientServiceRegisterTruncatesContactInfo(t *testing.T) {
	repo := &mockClientRepo{}
	svc := newClientService(repo, nil)

	_, err := svc.Register(context.Background(), RegisterClientRequest{
		FirstName:   "Jane",
		LastName:    "Smith",
		DateOfBirth: "1990-01-01",
		ContactInfo: strings.Repeat("c", 150),
	})
	require.NoError(t, err)
	assert.Len(t, repo.created.ContactInfo, 100)
}

func TestClientServiceSearchTermTooShort(t *testing.T) {
	svc := newClientService(&mockClientRepo{}, nil)

	for _, q := range []string{"", "a"} {
		_, err := svc.Search(context.Background(), q)
		require.Error(t, err, "term %q should be rejected", q)
		assert.Equal(t, 400, appErrors.FromError(err).Status)
	}
}

func TestClientServiceSearch(t *testing.T) {
	repo := &mockClientRepo{results: []models.ClientSearchResult{
		{ID: 1, FirstName: "Jane", LastName: "Smith"},
	}}
	svc := newClientService(repo, nil)

	results, err := svc.Search(context.Background(), "ja")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Jane Smith", results[0].Name)
	assert.Equal(t, "ja", repo.lastQ)
	assert.Equal(t, 50, repo.lastLim)
}

func TestClientServiceProfileNotFound(t *testing.T) {
	svc := newClientService(&mockClientRepo{}, nil)

	_, err := svc.Profile(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, 404, appErrors.FromError(err).Status)
}

func TestClientServiceProfileWithoutEnrollments(t *testing.T) {
	repo := &mockClientRepo{clients: map[int64]models.Client{
		1: {ID: 1, FirstName: "Jane", LastName: "Smith"},
	}}
	svc := newClientService(repo, nil)

	profile, err := svc.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, profile.Programs, "programs must be an empty array, not null")
	assert.Len(t, profile.Programs, 0)
}

func TestClientServiceProfileWithEnrollments(t *testing.T) {
	dob, err := models.ParseDate("1985-05-15")
	require.NoError(t, err)
	repo := &mockClientRepo{clients: map[int64]models.Client{
		1: {ID: 1, FirstName: "Jane", LastName: "Smith", DateOfBirth: dob},
	}}
	enrolled, err := models.ParseDate("2024-03-01")
	require.NoError(t, err)
	enrollments := &mockEnrollmentReader{details: map[int64][]models.EnrollmentDetail{
		1: {{
			Enrollment:  models.Enrollment{ID: 7, ClientID: 1, ProgramID: 3, EnrollmentDate: enrolled, Notes: "initial"},
			ProgramName: "Malaria",
		}},
	}}
	svc := newClientService(repo, enrollments)

	profile, err := svc.Profile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "1985-05-15", profile.DateOfBirth.String())
	require.Len(t, profile.Programs, 1)
	assert.Equal(t, int64(3), profile.Programs[0].ProgramID)
	assert.Equal(t, "Malaria", profile.Programs[0].ProgramName)
	assert.Equal(t, "2024-03-01", profile.Programs[0].EnrollmentDate.String())
}
