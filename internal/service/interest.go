package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"spkio/internal/domain"
	"spkio/internal/state"
)

type pairKey struct {
	userID string
	talkID string
}

// InterestService reconciles the user's interest set against the
// user_talks relation. The relation table is the source of truth; the
// local set in the state container is a cache that is updated only
// after a confirmed remote write, so a failed write leaves the
// observable state exactly as it was.
type InterestService struct {
	marks     InterestMarkStore
	state     *state.Container
	publisher ChangePublisher
	logger    *slog.Logger

	mu       sync.Mutex
	inFlight map[pairKey]struct{}
}

func NewInterestService(
	marks InterestMarkStore,
	container *state.Container,
	publisher ChangePublisher,
	logger *slog.Logger,
) *InterestService {
	return &InterestService{
		marks:     marks,
		state:     container,
		publisher: publisher,
		logger:    logger,
		inFlight:  make(map[pairKey]struct{}),
	}
}

// IsInterested reports whether a mark exists for the pair. Before the
// first reload every pair reads as unmarked. Returns false when no
// user is identified.
func (s *InterestService) IsInterested(userID, talkID string) bool {
	if userID == "" {
		return false
	}
	mark, ok := s.state.Mark(talkID)
	return ok && mark.UserID == userID
}

// MarkInterested creates the mark for the pair if none exists. Calling
// it again for an already-marked pair returns the existing mark and
// performs no remote write.
func (s *InterestService) MarkInterested(ctx context.Context, userID, talkID string) (*domain.InterestMark, error) {
	if userID == "" {
		return nil, domain.ErrNoUser
	}

	if mark, ok := s.state.Mark(talkID); ok && mark.UserID == userID {
		return &mark, nil
	}

	// Existence check before insert: the backend uniqueness constraint
	// on (user_id, talk_id) is a backstop, not the primary guard.
	existing, err := s.marks.Get(ctx, userID, talkID)
	if err != nil {
		return nil, fmt.Errorf("check existing mark: %w", err)
	}
	if existing != nil {
		s.state.PutMark(*existing)
		return existing, nil
	}

	mark, err := s.marks.Insert(ctx, userID, talkID)
	if err != nil {
		return nil, fmt.Errorf("insert mark: %w", err)
	}

	s.state.PutMark(*mark)
	s.publishChange(ctx, "create", userID, talkID)

	s.logger.Debug("talk marked interesting", "user_id", userID, "talk_id", talkID)
	return mark, nil
}

// UnmarkInterested deletes the mark for the pair. Unmarking an
// unmarked pair is a no-op, not a failure.
func (s *InterestService) UnmarkInterested(ctx context.Context, userID, talkID string) error {
	if userID == "" {
		return domain.ErrNoUser
	}

	if _, ok := s.state.Mark(talkID); !ok {
		existing, err := s.marks.Get(ctx, userID, talkID)
		if err != nil {
			return fmt.Errorf("check existing mark: %w", err)
		}
		if existing == nil {
			return nil
		}
	}

	if err := s.marks.Delete(ctx, userID, talkID); err != nil {
		return fmt.Errorf("delete mark: %w", err)
	}

	s.state.RemoveMark(talkID)
	s.publishChange(ctx, "delete", userID, talkID)

	s.logger.Debug("talk unmarked", "user_id", userID, "talk_id", talkID)
	return nil
}

// Toggle marks the pair when unmarked and unmarks it when marked. It
// is not atomic across clients; overlapping toggles for the same pair
// from this process are rejected with ErrToggleInFlight so a slow
// write cannot interleave with a second one.
func (s *InterestService) Toggle(ctx context.Context, userID, talkID string) error {
	if userID == "" {
		return domain.ErrNoUser
	}

	key := pairKey{userID: userID, talkID: talkID}
	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		return domain.ErrToggleInFlight
	}
	s.inFlight[key] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	if s.IsInterested(userID, talkID) {
		return s.UnmarkInterested(ctx, userID, talkID)
	}
	_, err := s.MarkInterested(ctx, userID, talkID)
	return err
}

// Reload fetches the user's full interest set and replaces the local
// one wholesale. This is the reaction to a change notification; it
// never merges, so marks removed elsewhere disappear here too.
func (s *InterestService) Reload(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrNoUser
	}

	marks, err := s.marks.ListByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("list marks: %w", err)
	}

	s.state.ReplaceInterest(marks)
	s.logger.Debug("interest set reloaded", "user_id", userID, "marks", len(marks))
	return nil
}

// InterestedTalks returns the user's marked talks grouped per day,
// derived from the current schedule and interest set.
func (s *InterestService) InterestedTalks(userID string) map[domain.DayKey][]domain.Talk {
	byDay := make(map[domain.DayKey][]domain.Talk, len(domain.DayKeys()))
	for _, key := range domain.DayKeys() {
		byDay[key] = []domain.Talk{}
	}

	sched := s.state.Schedule()
	if sched == nil || userID == "" {
		return byDay
	}

	for _, key := range domain.DayKeys() {
		for _, talk := range sched.ByDay[key] {
			if s.IsInterested(userID, talk.ID) {
				byDay[key] = append(byDay[key], talk)
			}
		}
	}
	return byDay
}

func (s *InterestService) publishChange(ctx context.Context, action, userID, talkID string) {
	if s.publisher == nil {
		return
	}
	change := domain.InterestChange{
		Action:    action,
		UserID:    userID,
		TalkID:    talkID,
		Timestamp: time.Now().UTC(),
	}
	if err := s.publisher.PublishChange(ctx, change); err != nil {
		// The write itself succeeded; a lost notification only delays
		// reconciliation until the next reload.
		s.logger.Warn("failed to publish interest change",
			"action", action,
			"talk_id", talkID,
			"error", err,
		)
	}
}
