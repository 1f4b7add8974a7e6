package core

import "golang.org/x/exp/rand"

// Policy selects actions from its current value estimates and updates
// them from observed rewards
type Policy interface {
	PickAction(*StepContext) int
	Update(int, float64)
	// Values returns a copy of the current value estimates
	Values() []float64
}

type PolicyConstructor interface {
	// NewPolicy creates a fresh policy over the given number of actions.
	// The source is owned by the policy for its lifetime.
	NewPolicy(int, rand.Source) (Policy, error)
}
