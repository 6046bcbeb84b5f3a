package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/amara-health/his-api/internal/models"
)

// ClientRepository handles persistence of clients.
type ClientRepository struct {
	db *sqlx.DB
}

// NewClientRepository constructs the repository.
func NewClientRepository(db *sqlx.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create persists a new client and fills in its generated id.
func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	const query = `INSERT INTO clients (first_name, last_name, date_of_birth, contact_info)
        VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.GetContext(ctx, &client.ID, query,
		client.FirstName, client.LastName, client.DateOfBirth, client.ContactInfo); err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// FindByID returns a client by its primary key.
func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*models.Client, error) {
	const query = `SELECT id, first_name, last_name, date_of_birth, contact_info FROM clients WHERE id = $1`
	var client models.Client
	if err := r.db.GetContext(ctx, &client, query, id); err != nil {
		return nil, err
	}
	return &client, nil
}

// Search returns clients whose first or last name contains the term,
// case-insensitively, capped at limit rows.
func (r *ClientRepository) Search(ctx context.Context, term string, limit int) ([]models.ClientSearchResult, error) {
	const query = `SELECT id, first_name, last_name, date_of_birth FROM clients
        WHERE LOWER(first_name) LIKE $1 OR LOWER(last_name) LIKE $1
        ORDER BY id LIMIT $2`
	pattern := "%" + strings.ToLower(term) + "%"
	results := []models.ClientSearchResult{}
	if err := r.db.SelectContext(ctx, &results, query, pattern, limit); err != nil {
		return nil, fmt.Errorf("search clients: %w", err)
	}
	return results, nil
}
