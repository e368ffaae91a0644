package state

import (
	"sync"

	"spkio/internal/domain"
	"spkio/internal/schedule"
)

// Container is the process-wide holder of the loaded agenda: the
// current schedule snapshot, the speaker directory, the identified
// user and that user's interest set. Screens read from it; only the
// refresh and interest operations write to it, and writes always
// install complete replacements, never partial merges.
type Container struct {
	mu       sync.RWMutex
	schedule *schedule.Schedule
	speakers []domain.Speaker
	user     *domain.User
	interest map[string]domain.InterestMark // keyed by talk id
}

func New() *Container {
	return &Container{
		interest: make(map[string]domain.InterestMark),
	}
}

// SetSnapshot installs a freshly aggregated schedule and speaker list.
func (c *Container) SetSnapshot(sched *schedule.Schedule, speakers []domain.Speaker) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedule = sched
	c.speakers = speakers
}

// Schedule returns the current snapshot, nil before the first refresh.
func (c *Container) Schedule() *schedule.Schedule {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.schedule
}

func (c *Container) Speakers() []domain.Speaker {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.speakers
}

func (c *Container) SetUser(user *domain.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user
}

func (c *Container) User() *domain.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// ReplaceInterest swaps the whole interest set for the given marks.
// Stale local entries disappear here after an external removal.
func (c *Container) ReplaceInterest(marks []domain.InterestMark) {
	next := make(map[string]domain.InterestMark, len(marks))
	for _, mark := range marks {
		next[mark.TalkID] = mark
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interest = next
}

func (c *Container) PutMark(mark domain.InterestMark) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interest[mark.TalkID] = mark
}

func (c *Container) RemoveMark(talkID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.interest, talkID)
}

func (c *Container) Mark(talkID string) (domain.InterestMark, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	mark, ok := c.interest[talkID]
	return mark, ok
}

func (c *Container) Marks() []domain.InterestMark {
	c.mu.RLock()
	defer c.mu.RUnlock()
	marks := make([]domain.InterestMark, 0, len(c.interest))
	for _, mark := range c.interest {
		marks = append(marks, mark)
	}
	return marks
}
