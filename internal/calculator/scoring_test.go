package calculator

import "testing"

func TestPokerPoints(t *testing.T) {
	tests := []struct {
		name string
		in   PokerResult
		want int
	}{
		{"winner of four with tokens", PokerResult{Tokens: 10, MoneyCommitted: 5, FinalPosition: 1, TotalPlayers: 4}, 40 + 20 - 5},
		{"last place no tokens", PokerResult{Tokens: 0, MoneyCommitted: 0, FinalPosition: 4, TotalPlayers: 4}, 10},
		{"defaults", PokerResult{FinalPosition: 1, TotalPlayers: 1}, 10},
		{"clamped at zero", PokerResult{Tokens: 0, MoneyCommitted: 100, FinalPosition: 1, TotalPlayers: 2}, 0},
		{"position beyond table size", PokerResult{FinalPosition: 5, TotalPlayers: 2}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PokerPoints(tt.in); got != tt.want {
				t.Errorf("PokerPoints(%+v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestPokerPoints_Monotonic(t *testing.T) {
	for players := 1; players <= 6; players++ {
		for pos := 1; pos <= players; pos++ {
			for money := 0; money <= 60; money += 7 {
				prev := -1
				for tokens := 0; tokens <= 40; tokens++ {
					got := PokerPoints(PokerResult{Tokens: tokens, MoneyCommitted: money, FinalPosition: pos, TotalPlayers: players})
					if got < 0 {
						t.Fatalf("negative points %d", got)
					}
					if got < prev {
						t.Fatalf("points decreased with tokens: %d -> %d (tokens=%d)", prev, got, tokens)
					}
					prev = got
				}
			}

			for tokens := 0; tokens <= 40; tokens += 5 {
				prev := int(^uint(0) >> 1)
				for money := 0; money <= 100; money++ {
					got := PokerPoints(PokerResult{Tokens: tokens, MoneyCommitted: money, FinalPosition: pos, TotalPlayers: players})
					if got > prev {
						t.Fatalf("points increased with money committed: %d -> %d (money=%d)", prev, got, money)
					}
					prev = got
				}
			}
		}
	}
}

func TestBowlingPoints(t *testing.T) {
	tests := []struct {
		name string
		in   BowlingResult
		want int
	}{
		// 300 / (2+1) = 100 -> 1000, position 1 of 3 -> 30
		{"three-player winner", BowlingResult{PointsScored: 300, GamesPlayed: 2, FinalPosition: 1, TotalPlayers: 3}, 1030},
		// 250 / 4 = 62 (floor) -> 620, position 2 of 2 -> 10
		{"floors the average", BowlingResult{PointsScored: 250, GamesPlayed: 3, FinalPosition: 2, TotalPlayers: 2}, 630},
		{"no games played keeps position bonus", BowlingResult{PointsScored: 500, GamesPlayed: 0, FinalPosition: 1, TotalPlayers: 2}, 20},
		{"clamped at zero", BowlingResult{PointsScored: 0, GamesPlayed: 1, FinalPosition: 9, TotalPlayers: 2}, 0},
		{"negative score floors down", BowlingResult{PointsScored: -1, GamesPlayed: 1, FinalPosition: 1, TotalPlayers: 1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BowlingPoints(tt.in); got != tt.want {
				t.Errorf("BowlingPoints(%+v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestBilliardsPoints(t *testing.T) {
	tests := []struct {
		name string
		in   BilliardsResult
		want int
	}{
		{"won three of five", BilliardsResult{GamesWon: 3, GamesPlayed: 5}, 30},
		{"won all", BilliardsResult{GamesWon: 4, GamesPlayed: 4}, 40},
		{"more wins than games wraps", BilliardsResult{GamesWon: 7, GamesPlayed: 4}, 20},
		{"negative wins clamp", BilliardsResult{GamesWon: -3, GamesPlayed: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BilliardsPoints(tt.in); got != tt.want {
				t.Errorf("BilliardsPoints(%+v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestBilliardsPoints_NoGamesPlayed(t *testing.T) {
	for won := -5; won <= 20; won++ {
		if got := BilliardsPoints(BilliardsResult{GamesWon: won, GamesPlayed: 0}); got != 0 {
			t.Errorf("BilliardsPoints(won=%d, played=0) = %d, want 0", won, got)
		}
	}
}
