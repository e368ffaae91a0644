package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spkio/internal/domain"
	"spkio/internal/schedule"
)

func TestContainer_SnapshotReplacement(t *testing.T) {
	c := New()

	assert.Nil(t, c.Schedule())

	first := schedule.Aggregate([]domain.Talk{
		{ID: "t1", Day: "monday", Time: "10:00", Title: "First"},
	})
	c.SetSnapshot(first, []domain.Speaker{{ID: "s1", Name: "Ada"}})

	require.NotNil(t, c.Schedule())
	assert.Len(t, c.Schedule().Flat, 1)
	assert.Len(t, c.Speakers(), 1)

	second := schedule.Aggregate(nil)
	c.SetSnapshot(second, nil)

	assert.Empty(t, c.Schedule().Flat)
	assert.Empty(t, c.Speakers())
}

func TestContainer_ReplaceInterestDropsStaleEntries(t *testing.T) {
	c := New()
	c.PutMark(domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"})
	c.PutMark(domain.InterestMark{ID: "m2", UserID: "u1", TalkID: "t2"})

	c.ReplaceInterest([]domain.InterestMark{
		{ID: "m2", UserID: "u1", TalkID: "t2"},
		{ID: "m3", UserID: "u1", TalkID: "t3"},
	})

	_, ok := c.Mark("t1")
	assert.False(t, ok, "externally removed mark must not survive a reload")
	_, ok = c.Mark("t2")
	assert.True(t, ok)
	_, ok = c.Mark("t3")
	assert.True(t, ok)
	assert.Len(t, c.Marks(), 2)
}

func TestContainer_PutAndRemoveMark(t *testing.T) {
	c := New()

	c.PutMark(domain.InterestMark{ID: "m1", UserID: "u1", TalkID: "t1"})
	mark, ok := c.Mark("t1")
	require.True(t, ok)
	assert.Equal(t, "m1", mark.ID)

	c.RemoveMark("t1")
	_, ok = c.Mark("t1")
	assert.False(t, ok)

	// removing an absent mark is a no-op
	c.RemoveMark("t1")
}
