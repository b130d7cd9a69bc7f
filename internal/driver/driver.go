package driver

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/replaybridge/internal/replay"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// TimeStep is what an environment returns: the current observation together
// with the reward and discount earned by the transition that produced it.
type TimeStep struct {
	Kind        replayv1.StepKind
	Observation float32
	Reward      float64
	Discount    float64
}

// IsLast reports whether the time step terminates an episode.
func (ts TimeStep) IsLast() bool {
	return ts.Kind == replayv1.StepKind_STEP_KIND_LAST
}

// Environment is the minimal surface the driver needs. Environments are
// external collaborators; this package only carries the small test/demo
// implementations the collection loop itself requires.
type Environment interface {
	Reset() TimeStep
	Step(action int32) TimeStep
}

// Policy chooses an action for a time step.
type Policy interface {
	Action(ts TimeStep) int32
}

// Observer consumes the step stream the driver emits.
type Observer interface {
	Observe(step *replayv1.Step) error
}

// Config bounds a driver run. Zero values mean unbounded.
type Config struct {
	// MaxSteps bounds the number of environment transitions. Episode
	// boundary steps do not count.
	MaxSteps int
	// MaxEpisodes bounds the number of completed episodes.
	MaxEpisodes int
}

// Driver runs an environment/policy loop and feeds every step to its
// observers. For each transition it emits one step carrying the observation
// acted on and the reward earned; when an episode ends it emits one
// additional LAST-kind step so observers can detect the boundary, then
// resets the environment.
type Driver struct {
	env       Environment
	policy    Policy
	observers []Observer
	cfg       Config
	logger    zerolog.Logger
}

// New creates a driver.
func New(env Environment, policy Policy, observers []Observer, cfg Config, logger zerolog.Logger) *Driver {
	return &Driver{
		env:       env,
		policy:    policy,
		observers: observers,
		cfg:       cfg,
		logger:    logger.With().Str("component", "driver").Logger(),
	}
}

// Run executes the loop until a bound is reached, an observer fails, or ctx
// is cancelled. It returns the number of counted transitions and completed
// episodes.
func (d *Driver) Run(ctx context.Context) (steps, episodes int, err error) {
	ts := d.env.Reset()

	for d.withinBounds(steps, episodes) {
		if err := ctx.Err(); err != nil {
			return steps, episodes, err
		}

		if ts.IsLast() {
			boundary := replay.NewStep(
				replayv1.StepKind_STEP_KIND_LAST,
				replay.ScalarObservation(ts.Observation),
				0, ts.Reward, ts.Discount,
			)
			if err := d.emit(boundary); err != nil {
				return steps, episodes, err
			}
			episodes++
			ts = d.env.Reset()
			continue
		}

		action := d.policy.Action(ts)
		next := d.env.Step(action)

		step := replay.NewStep(
			ts.Kind,
			replay.ScalarObservation(ts.Observation),
			action, next.Reward, next.Discount,
		)
		if err := d.emit(step); err != nil {
			return steps, episodes, err
		}
		steps++
		ts = next
	}

	d.logger.Debug().
		Int("steps", steps).
		Int("episodes", episodes).
		Msg("Driver run complete")

	return steps, episodes, nil
}

func (d *Driver) withinBounds(steps, episodes int) bool {
	if d.cfg.MaxSteps > 0 && steps >= d.cfg.MaxSteps {
		return false
	}
	if d.cfg.MaxEpisodes > 0 && episodes >= d.cfg.MaxEpisodes {
		return false
	}
	return true
}

func (d *Driver) emit(step *replayv1.Step) error {
	for _, o := range d.observers {
		if err := o.Observe(step); err != nil {
			return err
		}
	}
	return nil
}
