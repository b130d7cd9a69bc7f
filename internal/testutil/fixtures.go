package testutil

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// ScalarStep builds a mid-episode step observing a single value.
func ScalarStep(value float32) *replayv1.Step {
	return StepOfKind(replayv1.StepKind_STEP_KIND_MID, value)
}

// StepOfKind builds a step of the given kind observing a single value.
func StepOfKind(kind replayv1.StepKind, value float32) *replayv1.Step {
	return &replayv1.Step{
		Kind: kind,
		Observation: &replayv1.Tensor{
			Data:  []float32{value},
			Shape: []int32{},
		},
		Reward:      1,
		Discount:    1,
		CollectedAt: timestamppb.Now(),
	}
}

// Episode builds a complete episode: FIRST, n-2 MID steps, LAST. The
// observations count up from base.
func Episode(base float32, length int) []*replayv1.Step {
	steps := make([]*replayv1.Step, length)
	for i := range steps {
		kind := replayv1.StepKind_STEP_KIND_MID
		switch {
		case i == 0:
			kind = replayv1.StepKind_STEP_KIND_FIRST
		case i == length-1:
			kind = replayv1.StepKind_STEP_KIND_LAST
		}
		steps[i] = StepOfKind(kind, base+float32(i))
	}
	return steps
}
