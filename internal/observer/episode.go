package observer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/replaybridge/internal/replay"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// ErrEpisodeTooLong is returned when an episode outgrows the observer's
// maximum sequence length and partial episodes are not bypassed.
var ErrEpisodeTooLong = errors.New("episode exceeds max sequence length")

// EpisodeOption configures an EpisodeObserver.
type EpisodeOption func(*EpisodeObserver)

// WithBypassPartialEpisodes drops episodes longer than the maximum sequence
// length instead of failing the run. Dropped episodes produce no items.
func WithBypassPartialEpisodes() EpisodeOption {
	return func(o *EpisodeObserver) {
		o.bypass = true
	}
}

// EpisodeObserver bridges a step stream into a replay table as one item per
// complete episode. The item is registered when the boundary (LAST) step
// arrives and carries the observer's current priority.
type EpisodeObserver struct {
	ctx      context.Context
	client   replay.Client
	table    string
	maxLen   int
	priority float64
	bypass   bool

	writer      replay.Writer
	cachedSteps int
	overflowed  bool

	episodesWritten int64
	episodesDropped int64

	logger zerolog.Logger
}

// NewEpisodeObserver validates its arguments and creates the observer.
// maxSequenceLength bounds the number of steps a single episode may append,
// including the boundary step.
func NewEpisodeObserver(ctx context.Context, client replay.Client, table string, maxSequenceLength int, priority float64, logger zerolog.Logger, opts ...EpisodeOption) (*EpisodeObserver, error) {
	if table == "" {
		return nil, errors.New("table name must not be empty")
	}
	if maxSequenceLength <= 0 {
		return nil, fmt.Errorf("max sequence length must be positive, got %d", maxSequenceLength)
	}
	if err := replay.ValidatePriority(priority); err != nil {
		return nil, err
	}

	o := &EpisodeObserver{
		ctx:      ctx,
		client:   client,
		table:    table,
		maxLen:   maxSequenceLength,
		priority: priority,
		logger:   logger.With().Str("component", "episode_observer").Str("table", table).Logger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// Observe appends the step to the current episode. On the boundary step it
// registers one item spanning the whole episode and resets for the next.
func (o *EpisodeObserver) Observe(step *replayv1.Step) error {
	if o.overflowed {
		// Episode is being dropped; wait for its boundary.
		if replay.IsBoundary(step) {
			o.overflowed = false
		}
		return nil
	}

	if o.cachedSteps >= o.maxLen {
		if !o.bypass {
			return fmt.Errorf("%w: more than %d steps", ErrEpisodeTooLong, o.maxLen)
		}

		o.episodesDropped++
		o.logger.Warn().
			Int("max_sequence_length", o.maxLen).
			Int64("episodes_dropped", o.episodesDropped).
			Msg("Dropping over-length episode")

		o.overflowed = true
		o.cachedSteps = 0
		if o.writer != nil {
			err := o.writer.Close()
			o.writer = nil
			if err != nil {
				return fmt.Errorf("discarding writer: %w", err)
			}
		}
		if replay.IsBoundary(step) {
			o.overflowed = false
		}
		return nil
	}

	if o.writer == nil {
		w, err := o.client.NewWriter(o.ctx, o.maxLen)
		if err != nil {
			return fmt.Errorf("opening writer: %w", err)
		}
		o.writer = w
	}

	if err := o.writer.Append(step); err != nil {
		return fmt.Errorf("appending step: %w", err)
	}
	o.cachedSteps++

	if !replay.IsBoundary(step) {
		return nil
	}

	if err := o.writer.CreateItem(o.table, o.cachedSteps, o.priority); err != nil {
		return fmt.Errorf("creating episode item: %w", err)
	}
	o.episodesWritten++

	err := o.writer.Close()
	o.writer = nil
	o.cachedSteps = 0
	if err != nil {
		return fmt.Errorf("closing writer: %w", err)
	}
	return nil
}

// UpdatePriority changes the priority used for subsequently written
// episodes.
func (o *EpisodeObserver) UpdatePriority(priority float64) error {
	if err := replay.ValidatePriority(priority); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

// Priority returns the priority applied to the next completed episode.
func (o *EpisodeObserver) Priority() float64 { return o.priority }

// CachedSteps returns the number of steps appended for the in-progress
// episode.
func (o *EpisodeObserver) CachedSteps() int { return o.cachedSteps }

// EpisodesWritten returns the number of complete episodes turned into items.
func (o *EpisodeObserver) EpisodesWritten() int64 { return o.episodesWritten }

// EpisodesDropped returns the number of over-length episodes discarded under
// the bypass policy.
func (o *EpisodeObserver) EpisodesDropped() int64 { return o.episodesDropped }

// Flush flushes the open writer, if any.
func (o *EpisodeObserver) Flush() error {
	if o.writer == nil {
		return nil
	}
	return o.writer.Flush()
}

// Close discards any partial episode and releases the writer. Partial steps
// never become items; only boundary steps complete an episode.
func (o *EpisodeObserver) Close() error {
	if o.writer == nil {
		return nil
	}
	err := o.writer.Close()
	o.writer = nil
	o.cachedSteps = 0
	return err
}
