package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"api/database"
	"api/logging"
	"api/metrics"
)

// standingsCacheTTL keeps standings hot during live scoring without letting
// them drift far from the authoritative totals
const standingsCacheTTL = 30 * time.Second

func standingsCacheKey(kind, leagueID string) string {
	return fmt.Sprintf("standings:%s:%s", kind, leagueID)
}

// cacheGetStandings loads a cached standings payload into out.
// Returns false on miss or when the cache is unavailable.
func cacheGetStandings(kind, leagueID string, out interface{}) bool {
	if database.Redis == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	payload, err := database.Redis.Get(ctx, standingsCacheKey(kind, leagueID)).Bytes()
	if err != nil {
		metrics.CacheMisses.Inc()
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		metrics.CacheMisses.Inc()
		return false
	}
	metrics.CacheHits.Inc()
	return true
}

// cacheSetStandings stores a standings payload. Failures are logged only.
func cacheSetStandings(kind, leagueID string, value interface{}) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	if err := database.Redis.Set(ctx, standingsCacheKey(kind, leagueID), payload, standingsCacheTTL).Err(); err != nil {
		logging.Log.Debugf("failed to cache %s standings for league %s: %v", kind, leagueID, err)
	}
}

// InvalidateStandingsCache drops every cached standings view of a league.
// Called after any write that affects points or rosters.
func InvalidateStandingsCache(leagueID string) {
	if database.Redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	keys := []string{
		standingsCacheKey("teams", leagueID),
		standingsCacheKey("contestants", leagueID),
	}
	if err := database.Redis.Del(ctx, keys...).Err(); err != nil {
		logging.Log.Debugf("failed to invalidate standings cache for league %s: %v", leagueID, err)
	}
}
