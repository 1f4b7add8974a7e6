package policies

import (
	"math"

	"github.com/zeu5/bandit-testing/core"
	"golang.org/x/exp/rand"
)

// UCBPolicy picks the action with the highest upper confidence bound
// Q[a] + c*sqrt(ln(t)/N[a]). Actions that were never tried have an
// infinite bound, so every action is tried once before any exploitation.
type UCBPolicy struct {
	sampleAverage
	c float64
}

var _ core.Policy = &UCBPolicy{}

func NewUCBPolicy(numActions int, c float64) (*UCBPolicy, error) {
	if err := checkActions(numActions); err != nil {
		return nil, err
	}
	if !(c >= 0) || math.IsInf(c, 1) {
		return nil, core.ConfigurationError("confidence coefficient must be finite and >= 0, got %v", c)
	}
	return &UCBPolicy{
		sampleAverage: newSampleAverage(numActions),
		c:             c,
	}, nil
}

// Scores returns the upper confidence bound of every action at timestep t
func (u *UCBPolicy) Scores(c float64, t int) []float64 {
	// ln(t) <= 0 for t <= 1, the bonus is dropped there
	logT := 0.0
	if t > 1 {
		logT = math.Log(float64(t))
	}
	scores := make([]float64, len(u.q))
	for a := range scores {
		if u.n[a] == 0 {
			scores[a] = math.Inf(1)
			continue
		}
		scores[a] = u.q[a] + c*math.Sqrt(logT/float64(u.n[a]))
	}
	return scores
}

func (u *UCBPolicy) SelectAction(c float64, t int) int {
	return greedy(u.Scores(c, t))
}

func (u *UCBPolicy) PickAction(step *core.StepContext) int {
	return u.SelectAction(u.c, step.Step)
}

func (u *UCBPolicy) Update(action int, reward float64) {
	u.update(action, reward)
}

type UCBPolicyConstructor struct {
	C float64
}

var _ core.PolicyConstructor = &UCBPolicyConstructor{}

func NewUCBPolicyConstructor(c float64) *UCBPolicyConstructor {
	return &UCBPolicyConstructor{
		C: c,
	}
}

func (u *UCBPolicyConstructor) NewPolicy(numActions int, _ rand.Source) (core.Policy, error) {
	return NewUCBPolicy(numActions, u.C)
}
