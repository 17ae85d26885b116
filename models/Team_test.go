package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpisodeScoresApply(t *testing.T) {
	scores := EpisodeScores{}

	scores.Apply(1, 5)
	scores.Apply(1, 3)
	assert.Equal(t, 8, scores[1])

	// Entries that net back to zero disappear, so incremental updates and a
	// rebuild from the event history agree
	scores.Apply(1, -8)
	_, exists := scores[1]
	assert.False(t, exists)
}

func TestEpisodeScoresLatest(t *testing.T) {
	assert.Equal(t, 0, EpisodeScores{}.Latest())

	scores := EpisodeScores{1: 10, 3: 7, 2: 20}
	assert.Equal(t, 7, scores.Latest())

	scores.Apply(3, -7)
	assert.Equal(t, 20, scores.Latest())
}

func TestStringListContains(t *testing.T) {
	list := StringList{"a", "b"}
	assert.True(t, list.Contains("a"))
	assert.False(t, list.Contains("c"))
	assert.False(t, StringList{}.Contains("a"))
}
