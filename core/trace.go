package core

type Step struct {
	Action int
	Reward float64
	// Optimal is set when Action was the environment's optimal action
	Optimal bool
}

// Trace is the ordered record of one repetition
type Trace struct {
	steps []Step
}

func NewTrace(horizon int) *Trace {
	return &Trace{
		steps: make([]Step, 0, horizon),
	}
}

func (t *Trace) AddStep(s Step) {
	t.steps = append(t.steps, s)
}

func (t *Trace) Step(i int) Step {
	return t.steps[i]
}

func (t *Trace) Len() int {
	return len(t.steps)
}

func (t *Trace) Last() Step {
	return t.steps[len(t.steps)-1]
}

// Rewards returns the rewards of the trace in timestep order
func (t *Trace) Rewards() []float64 {
	out := make([]float64, len(t.steps))
	for i, s := range t.steps {
		out[i] = s.Reward
	}
	return out
}
