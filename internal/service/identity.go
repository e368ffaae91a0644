package service

import (
	"context"
	"fmt"
	"log/slog"

	"spkio/internal/domain"
	"spkio/internal/state"
)

// IdentityService provisions the acting user: an existing identity is
// reused, otherwise an anonymous user is created once and cached for
// the rest of the session.
type IdentityService struct {
	users  UserStore
	state  *state.Container
	logger *slog.Logger
}

func NewIdentityService(users UserStore, container *state.Container, logger *slog.Logger) *IdentityService {
	return &IdentityService{
		users:  users,
		state:  container,
		logger: logger,
	}
}

// EnsureUser returns the cached user or creates an anonymous one.
func (s *IdentityService) EnsureUser(ctx context.Context) (*domain.User, error) {
	if user := s.state.User(); user != nil {
		return user, nil
	}

	user, err := s.users.CreateAnonymous(ctx)
	if err != nil {
		return nil, fmt.Errorf("create anonymous user: %w", err)
	}

	s.state.SetUser(user)
	s.logger.Info("anonymous user created", "user_id", user.ID)
	return user, nil
}
