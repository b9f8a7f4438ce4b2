package calculator

import (
	"sort"

	"github.com/mmynk/gamenight/internal/models"
)

// Standing is a player's place in the ranking.
type Standing struct {
	Position int // 1-based
	Player   *models.Player
}

// GroupStats summarizes the whole group.
type GroupStats struct {
	Players       int
	TotalPoints   int
	TotalGames    int
	AveragePoints float64
}

// Ranking orders players by total points, highest first. Ties keep nick order.
func Ranking(players []*models.Player) []Standing {
	sorted := make([]*models.Player, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].TotalPoints != sorted[j].TotalPoints {
			return sorted[i].TotalPoints > sorted[j].TotalPoints
		}
		return sorted[i].Nick < sorted[j].Nick
	})

	standings := make([]Standing, len(sorted))
	for i, p := range sorted {
		standings[i] = Standing{Position: i + 1, Player: p}
	}
	return standings
}

// Top returns at most n leading standings.
func Top(standings []Standing, n int) []Standing {
	if n < 0 {
		n = 0
	}
	if len(standings) <= n {
		return standings
	}
	return standings[:n]
}

// Stats computes group totals. AveragePoints is 0 for an empty group.
func Stats(players []*models.Player) GroupStats {
	stats := GroupStats{Players: len(players)}
	for _, p := range players {
		stats.TotalPoints += p.TotalPoints
		stats.TotalGames += p.GamesPlayed
	}
	if stats.Players > 0 {
		stats.AveragePoints = float64(stats.TotalPoints) / float64(stats.Players)
	}
	return stats
}
