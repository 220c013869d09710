package game

import "math"

const (
	// MaxEval bounds every evaluation, far inside the ±Inf search sentinels.
	MaxEval = 1e9
	// CaptureEval is returned when player 0's hook sits on a positive fish.
	CaptureEval = MaxEval / 2
)

// Weights tunes EvaluateOpportunity.
type Weights struct {
	Score       float64 // Weight of the score differential
	Opportunity float64 // Weight of the best single-fish opportunity
	Decay       float64 // Exponential decay of a fish's value per step of distance
}

var DefaultWeights = Weights{
	Score:       1,
	Opportunity: 0.5,
	Decay:       0.5,
}

func MakeEvaluator(w Weights) Evaluate {
	return func(s State) float64 {
		return evaluate(w, s)
	}
}

// EvaluateOpportunity scores the point differential plus the best fish within reach of player 0.
var EvaluateOpportunity = MakeEvaluator(DefaultWeights)

func evaluate(w Weights, s State) float64 {
	p0, p1 := s.Scores()
	base := float64(p0 - p1)

	hook, _ := s.HookPositions()
	width := s.Width()
	best := 0.0
	for id, pos := range s.FishPositions() {
		value := s.FishValue(id)
		d := ToroidalDistance(hook, pos, width)
		if d == 0 {
			if value > 0 {
				return CaptureEval + float64(value)
			}
			continue
		}
		// Negative contributions never beat the zero baseline
		if opportunity := float64(value) * math.Exp(-w.Decay*float64(d)); opportunity > best {
			best = opportunity
		}
	}

	return clamp(w.Score*base + w.Opportunity*best)
}

// EvaluateNearest is the point differential minus the distance from player 0's hook to the nearest fish.
func EvaluateNearest(s State) float64 {
	p0, p1 := s.Scores()
	hook, _ := s.HookPositions()
	width := s.Width()

	nearest := -1
	for _, pos := range s.FishPositions() {
		if d := ToroidalDistance(hook, pos, width); nearest < 0 || d < nearest {
			nearest = d
		}
	}
	if nearest < 0 {
		nearest = 0
	}
	return clamp(float64(p0 - p1 - nearest))
}

// ToroidalDistance is the Manhattan distance on a board that wraps
// horizontally every width columns. A non-positive width disables wrapping.
func ToroidalDistance(a, b Position, width int) int {
	dx := abs(a.X - b.X)
	if width > 0 {
		dx %= width
		dx = min(dx, width-dx)
	}
	return dx + abs(a.Y-b.Y)
}

func clamp(v float64) float64 {
	return math.Max(-MaxEval, math.Min(MaxEval, v))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
