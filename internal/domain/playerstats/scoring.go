package playerstats

import "math"

const (
	passingYardsPerPoint   = 25.0
	rushingYardsPerPoint   = 10.0
	receivingYardsPerPoint = 10.0

	passingTDPoints   = 4.0
	rushingTDPoints   = 6.0
	receivingTDPoints = 6.0
	receptionPoints   = 1.0

	interceptionPenalty = 2.0
	fumbleLostPenalty   = 2.0
)

// CalculateFantasyPoints scores a stat line with the fixed PPR formula and
// rounds half away from zero to two decimals.
func CalculateFantasyPoints(s StatLine) float64 {
	points := float64(s.PassingYards)/passingYardsPerPoint +
		float64(s.PassingTDs)*passingTDPoints -
		float64(s.PassingInts)*interceptionPenalty +
		float64(s.RushingYards)/rushingYardsPerPoint +
		float64(s.RushingTDs)*rushingTDPoints +
		float64(s.ReceivingYards)/receivingYardsPerPoint +
		float64(s.ReceivingTDs)*receivingTDPoints +
		float64(s.Receptions)*receptionPoints -
		float64(s.FumblesLost)*fumbleLostPenalty

	return RoundPoints(points)
}

// RoundPoints rounds to two decimals, half away from zero.
func RoundPoints(v float64) float64 {
	return math.Round(v*100) / 100
}
