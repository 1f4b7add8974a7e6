package policies

import (
	"github.com/zeu5/bandit-testing/core"
	"github.com/zeu5/bandit-testing/util"
	"golang.org/x/exp/rand"
)

// OptimisticPolicy is a greedy policy whose estimates start at an
// optimistic initial value and move towards observed rewards with a
// fixed step size
type OptimisticPolicy struct {
	q            []float64
	learningRate float64
}

var _ core.Policy = &OptimisticPolicy{}

func NewOptimisticPolicy(numActions int, initialValue, learningRate float64) (*OptimisticPolicy, error) {
	if err := checkActions(numActions); err != nil {
		return nil, err
	}
	if !(learningRate > 0 && learningRate <= 1) {
		return nil, core.ConfigurationError("learning rate must be in (0, 1], got %v", learningRate)
	}
	q := make([]float64, numActions)
	for i := range q {
		q[i] = initialValue
	}
	return &OptimisticPolicy{
		q:            q,
		learningRate: learningRate,
	}, nil
}

func (o *OptimisticPolicy) SelectAction() int {
	return greedy(o.q)
}

func (o *OptimisticPolicy) PickAction(_ *core.StepContext) int {
	return o.SelectAction()
}

func (o *OptimisticPolicy) Update(action int, reward float64) {
	o.q[action] += o.learningRate * (reward - o.q[action])
}

func (o *OptimisticPolicy) Values() []float64 {
	return util.CopyFloatSlice(o.q)
}

type OptimisticPolicyConstructor struct {
	InitialValue float64
	LearningRate float64
}

var _ core.PolicyConstructor = &OptimisticPolicyConstructor{}

func NewOptimisticPolicyConstructor(initialValue, learningRate float64) *OptimisticPolicyConstructor {
	return &OptimisticPolicyConstructor{
		InitialValue: initialValue,
		LearningRate: learningRate,
	}
}

func (o *OptimisticPolicyConstructor) NewPolicy(numActions int, _ rand.Source) (core.Policy, error) {
	return NewOptimisticPolicy(numActions, o.InitialValue, o.LearningRate)
}
