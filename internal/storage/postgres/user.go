package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"spkio/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

// CreateAnonymous inserts a fresh anonymous user and returns it with
// the backend-assigned id.
func (s *UserStore) CreateAnonymous(ctx context.Context) (*domain.User, error) {
	query := `
		INSERT INTO users (name)
		VALUES ($1)
		RETURNING id, name, created_at`

	var user domain.User
	if err := s.db.GetContext(ctx, &user, query, domain.AnonymousName); err != nil {
		return nil, err
	}
	return &user, nil
}

// Get returns the user by id, or (nil, nil) when none exists.
func (s *UserStore) Get(ctx context.Context, id string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, name, created_at FROM users WHERE id = $1`

	err := s.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
