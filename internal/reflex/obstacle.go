// Package reflex implements the obstacle-reaction engine: weighted obstacle
// generation, the reaction window state machine and the run controller that
// keeps score and lives.
package reflex

import "github.com/vovakirdan/blindrace/internal/core"

// ObstacleKind identifies where an obstacle comes from.
type ObstacleKind int

const (
	ObstacleLeft ObstacleKind = iota
	ObstacleRight
	ObstacleCenter
	ObstacleAbove
	ObstacleBonus
)

// ObstacleKinds lists every kind in selection order.
var ObstacleKinds = []ObstacleKind{ObstacleLeft, ObstacleRight, ObstacleCenter, ObstacleAbove, ObstacleBonus}

// DirectionalWeight is the selection weight of each directional kind.
const DirectionalWeight = 24

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleLeft:
		return "Left"
	case ObstacleRight:
		return "Right"
	case ObstacleCenter:
		return "Center"
	case ObstacleAbove:
		return "Above"
	case ObstacleBonus:
		return "Bonus"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the kind is one of the four dodgeable ones.
func (k ObstacleKind) IsDirectional() bool {
	return k >= ObstacleLeft && k <= ObstacleAbove
}

// RequiredAction returns the single action that answers this kind.
// An obstacle from the left is dodged by moving right, and vice versa.
func (k ObstacleKind) RequiredAction() core.Action {
	switch k {
	case ObstacleLeft:
		return core.ActionDodgeLeft
	case ObstacleRight:
		return core.ActionDodgeRight
	case ObstacleCenter:
		return core.ActionDodgeCenter
	case ObstacleAbove:
		return core.ActionDodgeAbove
	case ObstacleBonus:
		return core.ActionBreak
	default:
		return core.ActionNone
	}
}

// Pan returns the stereo placement of the kind's cue.
func (k ObstacleKind) Pan() core.Pan {
	switch k {
	case ObstacleLeft:
		return core.PanLeft
	case ObstacleRight:
		return core.PanRight
	default:
		return core.PanCenter
	}
}

// Cue returns the sound cue announcing the kind.
func (k ObstacleKind) Cue() string {
	switch k {
	case ObstacleLeft:
		return core.CueLeft
	case ObstacleRight:
		return core.CueRight
	case ObstacleCenter:
		return core.CueCenter
	case ObstacleAbove:
		return core.CueAbove
	default:
		return core.CueBonus
	}
}

// RandSource is the randomness the generator draws from. *rand.Rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

// Generator draws obstacle kinds by weight. Draws are independent.
type Generator struct {
	rng     RandSource
	weights [5]int
	total   int
}

// NewGenerator creates a generator where each directional kind weighs
// DirectionalWeight and the bonus box weighs bonusWeight. Negative bonus
// weights are treated as zero.
func NewGenerator(rng RandSource, bonusWeight int) *Generator {
	if bonusWeight < 0 {
		bonusWeight = 0
	}
	g := &Generator{
		rng:     rng,
		weights: [5]int{DirectionalWeight, DirectionalWeight, DirectionalWeight, DirectionalWeight, bonusWeight},
	}
	for _, w := range g.weights {
		g.total += w
	}
	return g
}

// Next draws one obstacle kind.
func (g *Generator) Next() ObstacleKind {
	r := g.rng.Intn(g.total)
	for i, w := range g.weights {
		if r < w {
			return ObstacleKinds[i]
		}
		r -= w
	}
	// Unreachable with a well-behaved source
	return ObstacleBonus
}

// Weight returns the selection weight of a kind.
func (g *Generator) Weight(k ObstacleKind) int {
	if k < ObstacleLeft || k > ObstacleBonus {
		return 0
	}
	return g.weights[k]
}

// TotalWeight returns the sum of all weights.
func (g *Generator) TotalWeight() int {
	return g.total
}
