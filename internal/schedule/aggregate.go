package schedule

import (
	"sort"

	"spkio/internal/domain"
)

// Schedule is one fully-aggregated snapshot of the agenda. It is
// rebuilt from scratch on every load and never patched in place.
type Schedule struct {
	// ByDay holds the per-day buckets, sorted by time ascending.
	// Talks with an unrecognized day appear in no bucket.
	ByDay map[domain.DayKey][]domain.Talk

	// Flat holds every input talk in original order, used for lookup
	// by id (talk detail) regardless of bucketing.
	Flat []domain.Talk
}

// Aggregate partitions talks into day buckets and keeps a flat copy.
//
// Bucketing rules:
//   - a talk lands in the bucket of its recognized weekday; anything
//     else (missing day, typo, non-conference day) is left out of
//     ByDay entirely but stays in Flat,
//   - talks missing an id or title are treated as malformed and kept
//     out of ByDay as well,
//   - within a bucket, order is ascending by time; a missing time
//     sorts after all present times; equal (and missing) times keep
//     their input order.
func Aggregate(talks []domain.Talk) *Schedule {
	byDay := make(map[domain.DayKey][]domain.Talk, len(domain.DayKeys()))
	for _, key := range domain.DayKeys() {
		byDay[key] = []domain.Talk{}
	}

	flat := make([]domain.Talk, len(talks))
	copy(flat, talks)

	for _, talk := range talks {
		if talk.ID == "" || talk.Title == "" {
			continue
		}
		key, ok := domain.DayKeyFor(talk.Day)
		if !ok {
			continue
		}
		byDay[key] = append(byDay[key], talk)
	}

	for key := range byDay {
		sortBucket(byDay[key])
	}

	return &Schedule{ByDay: byDay, Flat: flat}
}

func sortBucket(bucket []domain.Talk) {
	sort.SliceStable(bucket, func(i, j int) bool {
		a, b := bucket[i].Time, bucket[j].Time
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})
}

// TalkByID looks a talk up in the flat view.
func (s *Schedule) TalkByID(id string) (domain.Talk, bool) {
	for _, talk := range s.Flat {
		if talk.ID == id {
			return talk, true
		}
	}
	return domain.Talk{}, false
}
