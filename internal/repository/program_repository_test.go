package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/amara-health/his-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestProgramRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO programs (name, description) VALUES ($1, $2) RETURNING id")).
		WithArgs("Malaria", "Prevention").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	program := &models.Program{Name: "Malaria", Description: "Prevention"}
	require.NoError(t, repo.Create(context.Background(), program))
	require.Equal(t, int64(1), program.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramRepositoryExistsByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM programs WHERE name = $1 LIMIT 1")).
		WithArgs("Malaria").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(1))

	exists, err := repo.ExistsByName(context.Background(), "Malaria")
	require.NoError(t, err)
	require.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM programs WHERE name = $1 LIMIT 1")).
		WithArgs("HIV").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}))

	exists, err = repo.ExistsByName(context.Background(), "HIV")
	require.NoError(t, err)
	require.False(t, exists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProgramRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewProgramRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "description"}).
		AddRow(int64(1), "Malaria", "Prevention").
		AddRow(int64(2), "TB", "")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, description FROM programs ORDER BY id")).
		WillReturnRows(rows)

	programs, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, programs, 2)
	require.Equal(t, "Malaria", programs[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	require.True(t, IsUniqueViolation(&pq.Error{Code: "23505"}))
	require.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	require.False(t, IsUniqueViolation(errors.New("plain error")))
}
