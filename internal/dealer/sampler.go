package dealer

import (
	"math/rand/v2"

	"github.com/sotaro-w/pfdojo/internal/hand"
	"github.com/sotaro-w/pfdojo/internal/ranges"
)

// Sampler draws hand notations with an adaptive bias toward borderline
// hands. The bias grows with the player's running accuracy: a struggling
// player sees more clear-cut spots, an improving one sees more close calls.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler using the given random source.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// Ramp boundaries for the borderline-draw probability.
const (
	rampFloor   = 0.30 // accuracy 0
	rampMid     = 0.50 // accuracy 50
	rampHigh    = 0.70 // accuracy 70
	rampCeiling = 0.85 // accuracy 100
)

// BorderlineProbability maps a running accuracy percentage (0-100) to the
// probability of drawing from the pooled borderline tables. Three linear
// segments: 0.30→0.50 below 50, 0.50→0.70 up to 70, 0.70→0.85 up to 100.
func BorderlineProbability(accuracy float64) float64 {
	switch {
	case accuracy <= 0:
		return rampFloor
	case accuracy < 50:
		return rampFloor + accuracy*(rampMid-rampFloor)/50
	case accuracy < 70:
		return rampMid + (accuracy-50)*(rampHigh-rampMid)/20
	case accuracy < 100:
		return rampHigh + (accuracy-70)*(rampCeiling-rampHigh)/30
	default:
		return rampCeiling
	}
}

// maxObviousRetries caps the rejection loop for obvious hands. Together with
// the 50% accept roll this under-represents trivial hands without ever
// excluding them.
const maxObviousRetries = 5

// Sample draws a hand notation for the given running accuracy.
func (s *Sampler) Sample(accuracy float64) hand.Notation {
	if s.rng.Float64() < BorderlineProbability(accuracy) {
		pool := ranges.AllBorderline()
		return pool[s.rng.IntN(len(pool))]
	}
	return s.sampleGrid()
}

// sampleGrid draws uniformly from the 13x13 grid, suited or offsuit at even
// odds off the diagonal, rejecting obvious hands up to the retry cap.
func (s *Sampler) sampleGrid() hand.Notation {
	var n hand.Notation
	for attempts := 1; ; attempts++ {
		i := s.rng.IntN(len(hand.Ranks))
		j := s.rng.IntN(len(hand.Ranks))
		n = hand.Make(i, j, s.rng.Float64() < 0.5)

		if !ranges.IsObvious(n) || s.rng.Float64() < 0.5 || attempts >= maxObviousRetries {
			return n
		}
	}
}
