package policies

import (
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
)

// EGreedyPolicy exploits the greedy action with probability 1-ε and
// otherwise picks uniformly among the other actions. The greedy action
// is never chosen by the exploration branch.
type EGreedyPolicy struct {
	sampleAverage
	numActions int
	epsilon    float64
	rand       *rand.Rand
}

var _ core.Policy = &EGreedyPolicy{}

func NewEGreedyPolicy(numActions int, epsilon float64, src rand.Source) (*EGreedyPolicy, error) {
	if err := checkActions(numActions); err != nil {
		return nil, err
	}
	if err := checkEpsilon(epsilon); err != nil {
		return nil, err
	}
	return &EGreedyPolicy{
		sampleAverage: newSampleAverage(numActions),
		numActions:    numActions,
		epsilon:       epsilon,
		rand:          rand.New(src),
	}, nil
}

func checkEpsilon(epsilon float64) error {
	if !(epsilon >= 0 && epsilon <= 1) {
		return core.ConfigurationError("epsilon must be in [0, 1], got %v", epsilon)
	}
	return nil
}

// ActionProbabilities returns the probability of selecting each action
// under the current estimates
func (e *EGreedyPolicy) ActionProbabilities(epsilon float64) []float64 {
	probs := make([]float64, e.numActions)
	explore := epsilon / float64(e.numActions-1)
	for i := range probs {
		probs[i] = explore
	}
	probs[greedy(e.q)] = 1 - epsilon
	return probs
}

// SelectAction samples an action for the given ε
func (e *EGreedyPolicy) SelectAction(epsilon float64) int {
	best := greedy(e.q)
	if e.rand.Float64() >= epsilon {
		return best
	}
	// Uniform over the remaining actions, skipping the greedy one
	i := e.rand.Intn(e.numActions - 1)
	if i >= best {
		i++
	}
	return i
}

func (e *EGreedyPolicy) PickAction(_ *core.StepContext) int {
	return e.SelectAction(e.epsilon)
}

func (e *EGreedyPolicy) Update(action int, reward float64) {
	e.update(action, reward)
}

type EGreedyPolicyConstructor struct {
	Epsilon float64
}

var _ core.PolicyConstructor = &EGreedyPolicyConstructor{}

func NewEGreedyPolicyConstructor(epsilon float64) *EGreedyPolicyConstructor {
	return &EGreedyPolicyConstructor{
		Epsilon: epsilon,
	}
}

func (e *EGreedyPolicyConstructor) NewPolicy(numActions int, src rand.Source) (core.Policy, error) {
	return NewEGreedyPolicy(numActions, e.Epsilon, src)
}
