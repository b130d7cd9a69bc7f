package testutil

import (
	"math/rand"

	"github.com/rs/zerolog"

	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// Observation extracts the scalar observation carried by a step.
func Observation(step *replayv1.Step) float32 {
	return step.GetObservation().GetData()[0]
}
