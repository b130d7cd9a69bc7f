package observer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/replaybridge/internal/replay"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// ErrNoTables is returned when an observer is constructed without any
// target table.
var ErrNoTables = errors.New("observer requires at least one table")

// TableEntry targets one table with a windowing policy: every window of
// SequenceLength consecutive steps, advancing by Stride, becomes one item.
type TableEntry struct {
	Table          string
	SequenceLength int
	// Stride between window starts. Zero defaults to 1 (fully overlapping
	// windows).
	Stride int
}

// TrajectoryObserver bridges a step stream into replay tables as
// overlapping sequence items. One writer is kept per episode: the observer
// detects episode boundaries (LAST steps) and ends the writer sequence
// there, so no item ever spans two episodes.
type TrajectoryObserver struct {
	ctx      context.Context
	client   replay.Client
	entries  []TableEntry
	priority float64
	maxLen   int

	writer      replay.Writer
	cachedSteps int

	logger zerolog.Logger
}

// NewTrajectoryObserver validates the table entries and creates the
// observer. Items are registered with priority 1; use the replay server's
// priority mutation to rescore them later.
func NewTrajectoryObserver(ctx context.Context, client replay.Client, entries []TableEntry, logger zerolog.Logger) (*TrajectoryObserver, error) {
	if len(entries) == 0 {
		return nil, ErrNoTables
	}

	maxLen := 0
	normalized := make([]TableEntry, len(entries))
	for i, e := range entries {
		if e.Table == "" {
			return nil, fmt.Errorf("table name must not be empty (entry %d)", i)
		}
		if e.SequenceLength <= 0 {
			return nil, fmt.Errorf("sequence length must be positive, got %d (table %s)", e.SequenceLength, e.Table)
		}
		if e.Stride < 0 {
			return nil, fmt.Errorf("stride must not be negative, got %d (table %s)", e.Stride, e.Table)
		}
		if e.Stride == 0 {
			e.Stride = 1
		}
		if e.SequenceLength > maxLen {
			maxLen = e.SequenceLength
		}
		normalized[i] = e
	}

	return &TrajectoryObserver{
		ctx:      ctx,
		client:   client,
		entries:  normalized,
		priority: 1.0,
		maxLen:   maxLen,
		logger:   logger.With().Str("component", "trajectory_observer").Logger(),
	}, nil
}

// Observe appends the step to the current episode's writer and registers
// every window that completes at this step.
func (o *TrajectoryObserver) Observe(step *replayv1.Step) error {
	if o.writer == nil {
		w, err := o.client.NewWriter(o.ctx, o.maxLen)
		if err != nil {
			return fmt.Errorf("opening writer: %w", err)
		}
		o.writer = w
		o.cachedSteps = 0
	}

	if err := o.writer.Append(step); err != nil {
		return fmt.Errorf("appending step: %w", err)
	}
	o.cachedSteps++

	for _, e := range o.entries {
		if o.cachedSteps < e.SequenceLength {
			continue
		}
		if (o.cachedSteps-e.SequenceLength)%e.Stride != 0 {
			continue
		}
		if err := o.writer.CreateItem(e.Table, e.SequenceLength, o.priority); err != nil {
			return fmt.Errorf("creating item in %s: %w", e.Table, err)
		}
	}

	if replay.IsBoundary(step) {
		return o.endEpisode()
	}
	return nil
}

// Flush flushes the open writer, if any.
func (o *TrajectoryObserver) Flush() error {
	if o.writer == nil {
		return nil
	}
	return o.writer.Flush()
}

// Close ends the current episode's writer. The observer may be reused
// afterwards; the next step opens a fresh writer.
func (o *TrajectoryObserver) Close() error {
	if o.writer == nil {
		return nil
	}
	return o.endEpisode()
}

func (o *TrajectoryObserver) endEpisode() error {
	err := o.writer.Close()
	o.writer = nil
	o.cachedSteps = 0
	if err != nil {
		return fmt.Errorf("closing writer: %w", err)
	}
	return nil
}
