package service

import (
	"context"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amara-health/his-api/internal/models"
	appErrors "github.com/amara-health/his-api/pkg/errors"
)

type mockProgramRepo struct {
	programs  map[string]models.Program
	createErr error
	nextID    int64
	created   *models.Program
}

func (m *mockProgramRepo) Create(ctx context.Context, program *models.Program) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.programs == nil {
		m.programs = make(map[string]models.Program)
	}
	m.nextID++
	program.ID = m.nextID
	m.programs[program.Name] = *program
	m.created = program
	return nil
}

func (m *mockProgramRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	_, ok := m.programs[name]
	return ok, nil
}

func (m *mockProgramRepo) List(ctx context.Context) ([]models.Program, error) {
	list := []models.Program{}
	for _, p := range m.programs {
		list = append(list, p)
	}
	return list, nil
}

func TestProgramServiceCreate(t *testing.T) {
	repo := &mockProgramRepo{}
	svc := NewProgramService(repo, nil, validator.New(), zap.NewNop())

	program, err := svc.Create(context.Background(), CreateProgramRequest{Name: "Malaria", Description: "Prevention"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), program.ID)
	assert.Equal(t, "Malaria", program.Name)
	assert.Equal(t, "Prevention", program.Description)
}

func TestProgramServiceCreateDuplicateName(t *testing.T) {
	repo := &mockProgramRepo{programs: map[string]models.Program{"Malaria": {ID: 1, Name: "Malaria"}}}
	svc := NewProgramService(repo, nil, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateProgramRequest{Name: "Malaria"})
	require.Error(t, err)
	assert.Equal(t, 400, appErrors.FromError(err).Status)
}

func TestProgramServiceCreateInvalidName(t *testing.T) {
	svc := NewProgramService(&mockProgramRepo{}, nil, validator.New(), zap.NewNop())

	for _, name := range []string{"", "ab", "bad_name!", strings.Repeat("x", 101)} {
		_, err := svc.Create(context.Background(), CreateProgramRequest{Name: name})
		require.Error(t, err, "name %q should be rejected", name)
		assert.Equal(t, 400, appErrors.FromError(err).Status)
	}
}

func TestProgramServiceCreateTruncatesDescription(t *testing.T) {
	repo := &mockProgramRepo{}
	svc := NewProgramService(repo, nil, validator.New(), zap.NewNop())

	long := strings.Repeat("d", 250)
	program, err := svc.Create(context.Background(), CreateProgramRequest{Name: "TB Care", Description: long})
	require.NoError(t, err)
	assert.Len(t, program.Description, 200)
}

func TestProgramServiceCreateUniqueViolation(t *testing.T) {
	// The pre-check can miss a concurrent insert; the constraint error must
	// surface as the same duplicate-name 400.
	repo := &mockProgramRepo{createErr: &pq.Error{Code: "23505"}}
	svc := NewProgramService(repo, nil, validator.New(), zap.NewNop())

	_, err := svc.Create(context.Background(), CreateProgramRequest{Name: "Malaria"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "already exists")
}

func TestProgramServiceList(t *testing.T) {
	repo := &mockProgramRepo{programs: map[string]models.Program{"HIV": {ID: 1, Name: "HIV"}}}
	svc := NewProgramService(repo, nil, validator.New(), zap.NewNop())

	programs, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 1)
	assert.Equal(t, "HIV", programs[0].Name)
}
