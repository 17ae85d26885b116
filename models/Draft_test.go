package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrentTurnTeamLinear(t *testing.T) {
	draft := Draft{DraftOrder: StringList{"a", "b", "c"}}

	want := []string{"a", "b", "c", "a", "b", "c"}
	for pick, teamID := range want {
		draft.CurrentPick = pick
		assert.Equal(t, teamID, draft.CurrentTurnTeam(DraftFormatLinear), "pick %d", pick)
	}
}

func TestCurrentTurnTeamSnake(t *testing.T) {
	draft := Draft{DraftOrder: StringList{"a", "b", "c"}}

	// Passes alternate direction: a,b,c then c,b,a then a,b,c again
	want := []string{"a", "b", "c", "c", "b", "a", "a", "b", "c"}
	for pick, teamID := range want {
		draft.CurrentPick = pick
		assert.Equal(t, teamID, draft.CurrentTurnTeam(DraftFormatSnake), "pick %d", pick)
	}
}

func TestCurrentTurnTeamTwoTeamsSnake(t *testing.T) {
	draft := Draft{DraftOrder: StringList{"a", "b"}}

	want := []string{"a", "b", "b", "a", "a", "b", "b", "a"}
	for pick, teamID := range want {
		draft.CurrentPick = pick
		assert.Equal(t, teamID, draft.CurrentTurnTeam(DraftFormatSnake), "pick %d", pick)
	}
}

func TestCurrentTurnTeamEmptyOrder(t *testing.T) {
	draft := Draft{}
	assert.Equal(t, "", draft.CurrentTurnTeam(DraftFormatSnake))
	assert.Equal(t, "", draft.CurrentTurnTeam(DraftFormatLinear))
}

func TestTotalPicks(t *testing.T) {
	draft := Draft{DraftOrder: StringList{"a", "b", "c", "d"}}
	assert.Equal(t, 20, draft.TotalPicks(5))
	assert.Equal(t, 4, draft.TotalPicks(1))
}

func TestSnakeEveryTeamPicksEqually(t *testing.T) {
	draft := Draft{DraftOrder: StringList{"a", "b", "c", "d"}}
	limit := 5

	counts := make(map[string]int)
	for pick := 0; pick < draft.TotalPicks(limit); pick++ {
		draft.CurrentPick = pick
		counts[draft.CurrentTurnTeam(DraftFormatSnake)]++
	}

	for _, teamID := range draft.DraftOrder {
		assert.Equal(t, limit, counts[teamID], "team %s", teamID)
	}
}
