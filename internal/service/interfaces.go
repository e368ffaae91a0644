package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"spkio/internal/domain"
)

// SnapshotSource fetches the read-only agenda snapshot from the
// conference backend. Response ordering is not relied upon.
type SnapshotSource interface {
	FetchTalks(ctx context.Context) ([]domain.Talk, error)
	FetchSpeakers(ctx context.Context) ([]domain.Speaker, error)
}

// InterestMarkStore is the user_talks relation. Get returns (nil, nil)
// when no mark exists; absence is not an error. Delete of a
// nonexistent pair is a successful no-op.
type InterestMarkStore interface {
	Get(ctx context.Context, userID, talkID string) (*domain.InterestMark, error)
	ListByUser(ctx context.Context, userID string) ([]domain.InterestMark, error)
	Insert(ctx context.Context, userID, talkID string) (*domain.InterestMark, error)
	Delete(ctx context.Context, userID, talkID string) error
}

type UserStore interface {
	CreateAnonymous(ctx context.Context) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
}

// ChangePublisher emits interest-change events for other consumers
// (and other devices of the same user) to react to with a re-read.
type ChangePublisher interface {
	PublishChange(ctx context.Context, change domain.InterestChange) error
	Close() error
}
