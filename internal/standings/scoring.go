package standings

import (
	"fmt"
	"strings"
)

// WinThreshold is the midpoint of the points scale. A player is credited with a win
// when the points awarded for a match exceed it.
const WinThreshold = 12.5

type setScore struct {
	own, opponent int
}

// pointsTable awards points by exact set score from the player's own perspective.
// It is not symmetric and is not derived from a formula.
var pointsTable = map[setScore]float64{
	{2, 0}: 25,
	{2, 1}: 20,
	{1, 2}: 10,
	{0, 2}: 5,
}

// PointsFor returns the points awarded to a side that won ownSets against oppSets.
// Any score outside the table, ties included, is worth nothing.
func PointsFor(ownSets, oppSets int) float64 {
	return pointsTable[setScore{ownSets, oppSets}]
}

// legendOrder lists the table rows from best to worst result.
var legendOrder = []setScore{{2, 0}, {2, 1}, {1, 2}, {0, 2}}

// ScoringLegend describes the points table in one line, e.g. for table footers.
func ScoringLegend() string {
	parts := make([]string, len(legendOrder))
	for i, s := range legendOrder {
		parts[i] = fmt.Sprintf("%d:%d - %.2f pts", s.own, s.opponent, pointsTable[s])
	}
	return "Scoring: " + strings.Join(parts, " | ")
}
