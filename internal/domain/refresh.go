package domain

import "time"

// RefreshStats holds statistics about one agenda refresh.
type RefreshStats struct {
	Fetched     int
	Bucketed    int
	Unscheduled int
	Malformed   int
	Speakers    int
	Duration    time.Duration
}
