package policies

import (
	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
)

// RandomPolicy picks uniformly among all actions. It still keeps sample
// averages so its estimates can be inspected.
type RandomPolicy struct {
	sampleAverage
	rand *rand.Rand
}

var _ core.Policy = &RandomPolicy{}

func NewRandomPolicy(numActions int, src rand.Source) (*RandomPolicy, error) {
	if err := checkActions(numActions); err != nil {
		return nil, err
	}
	return &RandomPolicy{
		sampleAverage: newSampleAverage(numActions),
		rand:          rand.New(src),
	}, nil
}

func (r *RandomPolicy) PickAction(_ *core.StepContext) int {
	return r.rand.Intn(len(r.q))
}

func (r *RandomPolicy) Update(action int, reward float64) {
	r.update(action, reward)
}

type RandomPolicyConstructor struct{}

var _ core.PolicyConstructor = &RandomPolicyConstructor{}

func (r *RandomPolicyConstructor) NewPolicy(numActions int, src rand.Source) (core.Policy, error) {
	return NewRandomPolicy(numActions, src)
}
