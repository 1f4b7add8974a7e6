package core

import (
	"context"

	"golang.org/x/exp/rand"
)

// Environment is a stationary bandit. Act samples a reward for the
// given action, independently of all previous calls.
type Environment interface {
	NumActions() int
	Act(int) (float64, error)
	// OptimalAction returns the action with the highest expected reward
	OptimalAction() int
}

type EnvironmentConstructor interface {
	// NewEnvironment creates a new environment with the given instance number.
	NewEnvironment(int, rand.Source) (Environment, error)
}

type RepetitionContext struct {
	Context    context.Context
	Experiment string
	Repetition int
	Horizon    int
}

func NewRepetitionContext(ctx context.Context, experiment string, repetition, horizon int) *RepetitionContext {
	return &RepetitionContext{
		Context:    ctx,
		Experiment: experiment,
		Repetition: repetition,
		Horizon:    horizon,
	}
}

type StepContext struct {
	Step int
	*RepetitionContext
}
