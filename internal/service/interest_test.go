package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"spkio/internal/domain"
	"spkio/internal/schedule"
	"spkio/internal/service/mocks"
	"spkio/internal/state"
)

type InterestServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	marks     *mocks.MockInterestMarkStore
	publisher *mocks.MockChangePublisher
	container *state.Container

	service *InterestService
	logger  *slog.Logger
}

func (s *InterestServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.marks = mocks.NewMockInterestMarkStore(s.ctrl)
	s.publisher = mocks.NewMockChangePublisher(s.ctrl)
	s.container = state.New()

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	s.service = NewInterestService(s.marks, s.container, s.publisher, s.logger)
}

func (s *InterestServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInterestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InterestServiceTestSuite))
}

func (s *InterestServiceTestSuite) TestMarkThenUnmark() {
	ctx := context.Background()
	mark := &domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"}

	s.False(s.service.IsInterested("u1", "t1"))

	s.marks.EXPECT().Get(ctx, "u1", "t1").Return(nil, nil)
	s.marks.EXPECT().Insert(ctx, "u1", "t1").Return(mark, nil)
	s.publisher.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil)

	created, err := s.service.MarkInterested(ctx, "u1", "t1")
	s.NoError(err)
	s.Equal("m1", created.ID)
	s.True(s.service.IsInterested("u1", "t1"))

	s.marks.EXPECT().Delete(ctx, "u1", "t1").Return(nil)
	s.publisher.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil)

	s.NoError(s.service.UnmarkInterested(ctx, "u1", "t1"))
	s.False(s.service.IsInterested("u1", "t1"))
}

func (s *InterestServiceTestSuite) TestMarkInterested_IdempotentLocally() {
	ctx := context.Background()
	mark := &domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"}

	s.marks.EXPECT().Get(ctx, "u1", "t1").Return(nil, nil)
	s.marks.EXPECT().Insert(ctx, "u1", "t1").Return(mark, nil)
	s.publisher.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil)

	first, err := s.service.MarkInterested(ctx, "u1", "t1")
	s.NoError(err)

	// second call must not touch the store
	second, err := s.service.MarkInterested(ctx, "u1", "t1")
	s.NoError(err)
	s.Equal(first.ID, second.ID)
}

func (s *InterestServiceTestSuite) TestMarkInterested_RemoteMarkAdopted() {
	ctx := context.Background()
	existing := &domain.InterestMark{ID: "m9", UserID: "u1", TalkID: "t1"}

	// pair is marked on the backend but not cached yet: no insert
	s.marks.EXPECT().Get(ctx, "u1", "t1").Return(existing, nil)

	mark, err := s.service.MarkInterested(ctx, "u1", "t1")
	s.NoError(err)
	s.Equal("m9", mark.ID)
	s.True(s.service.IsInterested("u1", "t1"))
}

func (s *InterestServiceTestSuite) TestMarkInterested_InsertFailureLeavesStateUnchanged() {
	ctx := context.Background()

	s.marks.EXPECT().Get(ctx, "u1", "t1").Return(nil, nil)
	s.marks.EXPECT().Insert(ctx, "u1", "t1").Return(nil, errors.New("backend rejected"))

	_, err := s.service.MarkInterested(ctx, "u1", "t1")
	s.Error(err)
	s.Contains(err.Error(), "insert mark")
	s.False(s.service.IsInterested("u1", "t1"))
}

func (s *InterestServiceTestSuite) TestUnmarkInterested_NoopWhenUnmarked() {
	ctx := context.Background()

	s.marks.EXPECT().Get(ctx, "u1", "t1").Return(nil, nil)

	s.NoError(s.service.UnmarkInterested(ctx, "u1", "t1"))
}

func (s *InterestServiceTestSuite) TestUnmarkInterested_DeleteFailureKeepsMark() {
	ctx := context.Background()
	s.container.PutMark(domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"})

	s.marks.EXPECT().Delete(ctx, "u1", "t1").Return(errors.New("connection reset"))

	err := s.service.UnmarkInterested(ctx, "u1", "t1")
	s.Error(err)
	s.True(s.service.IsInterested("u1", "t1"), "failed delete must not flip local state")
}

func (s *InterestServiceTestSuite) TestToggle_TwiceReturnsToOriginalState() {
	ctx := context.Background()
	mark := &domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"}

	s.marks.EXPECT().Get(ctx, "u1", "t1").Return(nil, nil)
	s.marks.EXPECT().Insert(ctx, "u1", "t1").Return(mark, nil)
	s.publisher.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil)

	s.NoError(s.service.Toggle(ctx, "u1", "t1"))
	s.True(s.service.IsInterested("u1", "t1"))

	s.marks.EXPECT().Delete(ctx, "u1", "t1").Return(nil)
	s.publisher.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil)

	s.NoError(s.service.Toggle(ctx, "u1", "t1"))
	s.False(s.service.IsInterested("u1", "t1"))
}

func (s *InterestServiceTestSuite) TestToggle_RejectsOverlappingPair() {
	ctx := context.Background()
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	s.marks.EXPECT().Get(ctx, "u1", "t1").DoAndReturn(
		func(context.Context, string, string) (*domain.InterestMark, error) {
			close(entered)
			<-release
			return nil, nil
		},
	)
	s.marks.EXPECT().Insert(ctx, "u1", "t1").Return(
		&domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"}, nil,
	)
	s.publisher.EXPECT().PublishChange(ctx, gomock.Any()).Return(nil)

	go func() {
		done <- s.service.Toggle(ctx, "u1", "t1")
	}()

	<-entered
	err := s.service.Toggle(ctx, "u1", "t1")
	s.ErrorIs(err, domain.ErrToggleInFlight)

	close(release)
	s.NoError(<-done)
}

func (s *InterestServiceTestSuite) TestReload_ReplacesWholeSet() {
	ctx := context.Background()
	s.container.PutMark(domain.InterestMark{ID: "stale", UserID: "u1", TalkID: "t9"})

	s.marks.EXPECT().ListByUser(ctx, "u1").Return([]domain.InterestMark{
		{ID: "m1", UserID: "u1", TalkID: "t1"},
	}, nil)

	s.NoError(s.service.Reload(ctx, "u1"))
	s.True(s.service.IsInterested("u1", "t1"))
	s.False(s.service.IsInterested("u1", "t9"), "stale mark must not survive a reload")
}

func (s *InterestServiceTestSuite) TestNoUserIdentified() {
	ctx := context.Background()

	s.False(s.service.IsInterested("", "t1"))

	_, err := s.service.MarkInterested(ctx, "", "t1")
	s.ErrorIs(err, domain.ErrNoUser)
	s.ErrorIs(s.service.UnmarkInterested(ctx, "", "t1"), domain.ErrNoUser)
	s.ErrorIs(s.service.Toggle(ctx, "", "t1"), domain.ErrNoUser)
	s.ErrorIs(s.service.Reload(ctx, ""), domain.ErrNoUser)
}

func (s *InterestServiceTestSuite) TestPublisherNil() {
	ctx := context.Background()
	service := NewInterestService(s.marks, s.container, nil, s.logger)

	s.marks.EXPECT().Get(ctx, "u1", "t1").Return(nil, nil)
	s.marks.EXPECT().Insert(ctx, "u1", "t1").Return(
		&domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"}, nil,
	)

	_, err := service.MarkInterested(ctx, "u1", "t1")
	s.NoError(err)
	s.True(service.IsInterested("u1", "t1"))
}

func (s *InterestServiceTestSuite) TestPublishFailureDoesNotFailWrite() {
	ctx := context.Background()

	s.marks.EXPECT().Get(ctx, "u1", "t1").Return(nil, nil)
	s.marks.EXPECT().Insert(ctx, "u1", "t1").Return(
		&domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"}, nil,
	)
	s.publisher.EXPECT().PublishChange(ctx, gomock.Any()).Return(errors.New("broker down"))

	_, err := s.service.MarkInterested(ctx, "u1", "t1")
	s.NoError(err)
	s.True(s.service.IsInterested("u1", "t1"))
}

func (s *InterestServiceTestSuite) TestInterestedTalks_GroupedPerDay() {
	ctx := context.Background()

	talks := []domain.Talk{
		{ID: "t1", Day: "monday", Time: "10:00", Title: "A"},
		{ID: "t2", Day: "monday", Time: "11:00", Title: "B"},
		{ID: "t3", Day: "friday", Time: "09:00", Title: "C"},
	}
	s.container.SetSnapshot(schedule.Aggregate(talks), nil)

	s.marks.EXPECT().ListByUser(ctx, "u1").Return([]domain.InterestMark{
		{ID: "m1", UserID: "u1", TalkID: "t1"},
		{ID: "m3", UserID: "u1", TalkID: "t3"},
	}, nil)
	s.NoError(s.service.Reload(ctx, "u1"))

	byDay := s.service.InterestedTalks("u1")
	s.Len(byDay[domain.DayMon], 1)
	s.Equal("t1", byDay[domain.DayMon][0].ID)
	s.Len(byDay[domain.DayFri], 1)
	s.Empty(byDay[domain.DayTue])
}

func (s *InterestServiceTestSuite) TestInterestedTalks_EmptyBeforeSnapshot() {
	byDay := s.service.InterestedTalks("u1")
	for _, key := range domain.DayKeys() {
		s.Empty(byDay[key])
	}
}
