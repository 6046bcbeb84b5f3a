package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/amara-health/his-api/internal/models"
)

func TestEnrollmentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO enrollments (client_id, program_id, enrollment_date, notes)")).
		WithArgs(int64(1), int64(3), sqlmock.AnyArg(), "initial").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	enrollment := &models.Enrollment{ClientID: 1, ProgramID: 3, EnrollmentDate: models.Today(), Notes: "initial"}
	require.NoError(t, repo.Create(context.Background(), enrollment))
	require.Equal(t, int64(7), enrollment.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryListDetailByClient(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "client_id", "program_id", "enrollment_date", "notes", "program_name"}).
		AddRow(int64(7), int64(1), int64(3), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "initial", "Malaria")
	mock.ExpectQuery(regexp.QuoteMeta("JOIN programs p ON p.id = e.program_id")).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	enrollments, err := repo.ListDetailByClient(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	require.Equal(t, "Malaria", enrollments[0].ProgramName)
	require.Equal(t, "2024-03-01", enrollments[0].EnrollmentDate.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentRepositoryListDetailByClientEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewEnrollmentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN programs p ON p.id = e.program_id")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_id", "program_id", "enrollment_date", "notes", "program_name"}))

	enrollments, err := repo.ListDetailByClient(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, enrollments)
	require.Len(t, enrollments, 0)
	require.NoError(t, mock.ExpectationsWereMet())
}
