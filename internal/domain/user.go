package domain

import "time"

const AnonymousName = "Anonymous"

type User struct {
	ID          string    `db:"id"`
	DisplayName string    `db:"name"`
	CreatedAt   time.Time `db:"created_at"`
}

// InterestMark is one row of the user_talks relation: the user marked
// the talk as interesting. At most one row exists per (user, talk).
type InterestMark struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	TalkID    string    `db:"talk_id"`
	CreatedAt time.Time `db:"created_at"`
}

// InterestChange is the change-feed payload emitted after a mark or
// unmark. Consumers treat it as "something changed, re-read" and issue
// a full reload for the user rather than applying it as a delta.
type InterestChange struct {
	Action    string    `json:"action"` // "create" or "delete"
	UserID    string    `json:"user_id"`
	TalkID    string    `json:"talk_id"`
	Timestamp time.Time `json:"timestamp"`
}
