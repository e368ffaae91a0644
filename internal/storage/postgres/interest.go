package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"spkio/internal/domain"
)

type InterestMarkStore struct {
	db *sqlx.DB
}

func NewInterestMarkStore(db *sqlx.DB) *InterestMarkStore {
	return &InterestMarkStore{db: db}
}

// Get returns the mark for the pair, or (nil, nil) when none exists.
func (s *InterestMarkStore) Get(ctx context.Context, userID, talkID string) (*domain.InterestMark, error) {
	var mark domain.InterestMark
	query := `
		SELECT id, user_id, talk_id, created_at
		FROM user_talks
		WHERE user_id = $1 AND talk_id = $2`

	err := s.db.GetContext(ctx, &mark, query, userID, talkID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

func (s *InterestMarkStore) ListByUser(ctx context.Context, userID string) ([]domain.InterestMark, error) {
	var marks []domain.InterestMark
	query := `
		SELECT id, user_id, talk_id, created_at
		FROM user_talks
		WHERE user_id = $1
		ORDER BY created_at`

	err := s.db.SelectContext(ctx, &marks, query, userID)
	return marks, err
}

// Insert creates the mark for the pair. A concurrent insert of the
// same pair hits the unique constraint; the conflict arm turns that
// into "return the row that won", so the pair converges to one mark.
func (s *InterestMarkStore) Insert(ctx context.Context, userID, talkID string) (*domain.InterestMark, error) {
	query := `
		INSERT INTO user_talks (user_id, talk_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, talk_id) DO NOTHING
		RETURNING id, user_id, talk_id, created_at`

	var mark domain.InterestMark
	err := s.db.GetContext(ctx, &mark, query, userID, talkID)
	if err == sql.ErrNoRows {
		existing, err := s.Get(ctx, userID, talkID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, sql.ErrNoRows
		}
		return existing, nil
	}
	if err != nil {
		return nil, err
	}
	return &mark, nil
}

// Delete removes the mark for the pair; deleting a nonexistent pair
// is a successful no-op.
func (s *InterestMarkStore) Delete(ctx context.Context, userID, talkID string) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM user_talks WHERE user_id = $1 AND talk_id = $2",
		userID, talkID,
	)
	return err
}
