package calculator

// PokerResult holds one player's poker night inputs.
// Callers substitute 0 for missing counts and 1 for missing position/table size.
type PokerResult struct {
	Tokens         int
	MoneyCommitted int
	FinalPosition  int
	TotalPlayers   int
}

// BowlingResult holds one player's bowling night inputs.
type BowlingResult struct {
	PointsScored  int
	GamesPlayed   int
	FinalPosition int
	TotalPlayers  int
}

// BilliardsResult holds one player's billiards night inputs.
type BilliardsResult struct {
	GamesWon    int
	GamesPlayed int
}

// positionBonus awards 10 points per player finishing behind this one, plus 10.
func positionBonus(finalPosition, totalPlayers int) int {
	return (totalPlayers - finalPosition + 1) * 10
}

// PokerPoints computes points = (totalPlayers - finalPosition + 1) × 10 + tokens × 2 - moneyCommitted,
// clamped at zero.
func PokerPoints(r PokerResult) int {
	points := positionBonus(r.FinalPosition, r.TotalPlayers) + r.Tokens*2 - r.MoneyCommitted
	return max(points, 0)
}

// BowlingPoints computes the game bonus floor(pointsScored / (gamesPlayed + 1)) × 10
// (zero when no games were played) plus the position bonus, clamped at zero.
//
// The denominator is gamesPlayed+1, not gamesPlayed. Existing scores depend on it.
func BowlingPoints(r BowlingResult) int {
	gameBonus := 0
	if r.GamesPlayed > 0 {
		gameBonus = floorDiv(r.PointsScored, r.GamesPlayed+1) * 10
	}
	return max(gameBonus+positionBonus(r.FinalPosition, r.TotalPlayers), 0)
}

// BilliardsPoints computes (gamesWon mod (gamesPlayed + 1)) × 10, zero when no
// games were played, clamped at zero.
func BilliardsPoints(r BilliardsResult) int {
	if r.GamesPlayed <= 0 {
		return 0
	}
	return max((r.GamesWon%(r.GamesPlayed+1))*10, 0)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
