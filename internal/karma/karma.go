// Package karma derives the client-side tier label from a karma score.
// The thresholds mirror the ones the product has always displayed; the
// score itself is owned by the backend.
package karma

// Level is the display tier for a karma score.
type Level string

const (
	Starter  Level = "Starter"
	Bronze   Level = "Bronze"
	Silver   Level = "Silver"
	Gold     Level = "Gold"
	Platinum Level = "Platinum"
)

// Tier describes the level a score falls into and the distance to the next.
type Tier struct {
	// Level is the current tier label.
	Level Level
	// Next is the tier above, or empty at Platinum.
	Next Level
	// PointsNeeded is how many points remain until Next; 0 at Platinum.
	PointsNeeded int
}

// Tier breakpoints. A band spans [floor, next floor).
const (
	bronzeFloor   = 50
	silverFloor   = 100
	goldFloor     = 250
	platinumFloor = 500
)

// TierOf maps a karma score to its tier.
func TierOf(score int) Tier {
	switch {
	case score >= platinumFloor:
		return Tier{Level: Platinum}
	case score >= goldFloor:
		return Tier{Level: Gold, Next: Platinum, PointsNeeded: platinumFloor - score}
	case score >= silverFloor:
		return Tier{Level: Silver, Next: Gold, PointsNeeded: goldFloor - score}
	case score >= bronzeFloor:
		return Tier{Level: Bronze, Next: Silver, PointsNeeded: silverFloor - score}
	default:
		return Tier{Level: Starter, Next: Bronze, PointsNeeded: bronzeFloor - score}
	}
}

// Progress returns how far the score has advanced through its current band,
// in [0, 1]. A negative score reads as an empty bar; at or above Platinum
// the bar is full.
func Progress(score int) float64 {
	switch {
	case score < 0:
		return 0
	case score < bronzeFloor:
		return float64(score) / bronzeFloor
	case score < silverFloor:
		return float64(score-bronzeFloor) / (silverFloor - bronzeFloor)
	case score < goldFloor:
		return float64(score-silverFloor) / (goldFloor - silverFloor)
	case score < platinumFloor:
		return float64(score-goldFloor) / (platinumFloor - goldFloor)
	default:
		return 1
	}
}
