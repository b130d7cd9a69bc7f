package driver

import (
	"math/rand"

	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// CountingEnv is a deterministic environment whose observations count
// steps. Episode e, step s observes e*100 + s, so every observation in a
// run is distinct. Used by tests and the demo collector.
type CountingEnv struct {
	stepsPerEpisode int
	step            int
	episode         int
	started         bool
}

// NewCountingEnv creates an environment whose episodes last exactly
// stepsPerEpisode transitions.
func NewCountingEnv(stepsPerEpisode int) *CountingEnv {
	if stepsPerEpisode < 1 {
		stepsPerEpisode = 1
	}
	return &CountingEnv{stepsPerEpisode: stepsPerEpisode}
}

// Reset implements Environment.
func (e *CountingEnv) Reset() TimeStep {
	if e.started {
		e.episode++
	}
	e.started = true
	e.step = 0
	return TimeStep{
		Kind:        replayv1.StepKind_STEP_KIND_FIRST,
		Observation: e.observation(),
		Discount:    1,
	}
}

// Step implements Environment.
func (e *CountingEnv) Step(action int32) TimeStep {
	e.step++

	kind := replayv1.StepKind_STEP_KIND_MID
	discount := 1.0
	if e.step >= e.stepsPerEpisode {
		kind = replayv1.StepKind_STEP_KIND_LAST
		discount = 0
	}

	return TimeStep{
		Kind:        kind,
		Observation: e.observation(),
		Reward:      1,
		Discount:    discount,
	}
}

func (e *CountingEnv) observation() float32 {
	return float32(e.episode*100 + e.step)
}

// RandomPolicy draws actions uniformly from [0, numActions).
type RandomPolicy struct {
	numActions int
	rng        *rand.Rand
}

// NewRandomPolicy creates a uniform random policy over numActions actions.
func NewRandomPolicy(numActions int, rng *rand.Rand) *RandomPolicy {
	if numActions < 1 {
		numActions = 1
	}
	return &RandomPolicy{numActions: numActions, rng: rng}
}

// Action implements Policy.
func (p *RandomPolicy) Action(ts TimeStep) int32 {
	return int32(p.rng.Intn(p.numActions))
}
