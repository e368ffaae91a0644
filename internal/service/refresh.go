package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"spkio/internal/domain"
	"spkio/internal/schedule"
	"spkio/internal/state"
)

// RefreshService loads a full talk/speaker snapshot from the backend,
// aggregates it into day buckets and installs the result. A refresh
// is all-or-nothing: the previous snapshot stays visible until the
// new one is completely aggregated.
type RefreshService struct {
	source SnapshotSource
	state  *state.Container
	logger *slog.Logger
}

func NewRefreshService(source SnapshotSource, container *state.Container, logger *slog.Logger) *RefreshService {
	return &RefreshService{
		source: source,
		state:  container,
		logger: logger,
	}
}

func (s *RefreshService) Refresh(ctx context.Context) (*domain.RefreshStats, error) {
	startTime := time.Now()

	talks, err := s.source.FetchTalks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch talks: %w", err)
	}

	speakers, err := s.source.FetchSpeakers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch speakers: %w", err)
	}

	sched := schedule.Aggregate(talks)

	stats := &domain.RefreshStats{
		Fetched:  len(talks),
		Speakers: len(speakers),
	}
	for _, talk := range talks {
		switch {
		case talk.ID == "" || talk.Title == "":
			stats.Malformed++
			s.logger.Warn("malformed talk excluded from day buckets",
				"talk_id", talk.ID,
				"title", talk.Title,
			)
		case !talk.Scheduled():
			stats.Unscheduled++
			s.logger.Warn("talk has unrecognized day",
				"talk_id", talk.ID,
				"day", talk.Day,
			)
		default:
			stats.Bucketed++
		}
	}

	s.state.SetSnapshot(sched, speakers)

	stats.Duration = time.Since(startTime)

	s.logger.Info("agenda refreshed",
		"fetched", stats.Fetched,
		"bucketed", stats.Bucketed,
		"unscheduled", stats.Unscheduled,
		"malformed", stats.Malformed,
		"speakers", stats.Speakers,
		"duration", stats.Duration,
	)

	return stats, nil
}
