// Package environments implements stationary multi-armed bandits
package environments

import (
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
	"gonum.org/v1/gonum/floats"
)

// arms holds the fixed expected reward of every action
type arms struct {
	means []float64
}

func newArms(means []float64) (arms, error) {
	if len(means) < 2 {
		return arms{}, core.ConfigurationError("bandit needs at least 2 actions, got %d", len(means))
	}
	if floats.Max(means) == floats.Min(means) {
		return arms{}, core.ConfigurationError("all %d actions have the same mean %v", len(means), means[0])
	}
	return arms{means: util.CopyFloatSlice(means)}, nil
}

func (a arms) NumActions() int {
	return len(a.means)
}

// OptimalAction returns the action with the highest mean, the lowest
// index on ties
func (a arms) OptimalAction() int {
	return floats.MaxIdx(a.means)
}

// Means returns a copy of the expected reward of every action
func (a arms) Means() []float64 {
	return util.CopyFloatSlice(a.means)
}

func (a arms) validAction(action int) error {
	if action < 0 || action >= len(a.means) {
		return core.InvalidActionError(action, len(a.means))
	}
	return nil
}
