package replay

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// ScalarObservation wraps a single value as a rank-0 tensor.
func ScalarObservation(value float32) *replayv1.Tensor {
	return &replayv1.Tensor{
		Data:  []float32{value},
		Shape: []int32{},
	}
}

// NewStep builds a step with the collection timestamp set.
func NewStep(kind replayv1.StepKind, observation *replayv1.Tensor, action int32, reward, discount float64) *replayv1.Step {
	return &replayv1.Step{
		Kind:        kind,
		Observation: observation,
		Action:      action,
		Reward:      reward,
		Discount:    discount,
		CollectedAt: timestamppb.Now(),
	}
}

// IsBoundary reports whether the step terminates an episode.
func IsBoundary(step *replayv1.Step) bool {
	return step.GetKind() == replayv1.StepKind_STEP_KIND_LAST
}
