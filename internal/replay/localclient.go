package replay

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/replaybridge/internal/replay/table"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// LocalClient is an in-process Client backed directly by a table registry.
// It is the local-server mode: tests and single-process collectors use it to
// exercise the same write/flush surface the gRPC client exposes.
type LocalClient struct {
	mu       sync.Mutex
	registry *table.Registry
	writers  []*localWriter
	closed   bool
	logger   zerolog.Logger
}

// NewLocalClient creates a client over the given registry.
func NewLocalClient(registry *table.Registry, logger zerolog.Logger) *LocalClient {
	return &LocalClient{
		registry: registry,
		logger:   logger.With().Str("component", "local_client").Logger(),
	}
}

// NewWriter implements Client.
func (c *LocalClient) NewWriter(ctx context.Context, maxSequenceLength int) (Writer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}
	if maxSequenceLength <= 0 {
		return nil, fmt.Errorf("max sequence length must be positive, got %d", maxSequenceLength)
	}

	w := &localWriter{
		id:       uuid.New().String(),
		ctx:      ctx,
		registry: c.registry,
		maxLen:   maxSequenceLength,
		logger:   c.logger.With().Str("component", "local_writer").Logger(),
	}
	c.writers = append(c.writers, w)

	c.logger.Debug().
		Str("writer_id", w.id).
		Int("max_sequence_length", maxSequenceLength).
		Msg("Opened writer")

	return w, nil
}

// MutatePriorities implements Client.
func (c *LocalClient) MutatePriorities(ctx context.Context, tableName string, updates map[string]float64, deletes []string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClientClosed
	}
	c.mu.Unlock()

	t, err := c.registry.Get(tableName)
	if err != nil {
		return err
	}

	updated, deleted, err := t.MutatePriorities(updates, deletes)
	if err != nil {
		return err
	}

	c.logger.Debug().
		Str("table", tableName).
		Int("updated", updated).
		Int("deleted", deleted).
		Msg("Mutated priorities")

	return nil
}

// Close implements Client. Writers opened from the client are closed too.
func (c *LocalClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for _, w := range c.writers {
		_ = w.Close()
	}
	c.writers = nil
	return nil
}

// localWriter writes items straight into registry tables. It keeps a
// sliding window of the last maxLen appended steps.
type localWriter struct {
	id       string
	ctx      context.Context
	registry *table.Registry
	maxLen   int

	history      []*replayv1.Step
	appended     int64
	itemsCreated int64
	closed       bool

	logger zerolog.Logger
}

// Append implements Writer.
func (w *localWriter) Append(step *replayv1.Step) error {
	if w.closed {
		return ErrWriterClosed
	}

	w.history = append(w.history, step)
	if len(w.history) > w.maxLen {
		w.history = w.history[1:]
	}
	w.appended++

	return nil
}

// CreateItem implements Writer.
func (w *localWriter) CreateItem(tableName string, numSteps int, priority float64) error {
	if w.closed {
		return ErrWriterClosed
	}
	if err := ValidatePriority(priority); err != nil {
		return err
	}
	if numSteps <= 0 {
		return fmt.Errorf("num steps must be positive, got %d", numSteps)
	}
	if numSteps > w.maxLen {
		return fmt.Errorf("%w: %d > %d", ErrItemTooLong, numSteps, w.maxLen)
	}
	if numSteps > len(w.history) {
		return fmt.Errorf("%w: %d > %d", ErrNotEnoughSteps, numSteps, len(w.history))
	}

	t, err := w.registry.Get(tableName)
	if err != nil {
		return err
	}

	// Snapshot the window; the history slice keeps sliding.
	window := make([]*replayv1.Step, numSteps)
	copy(window, w.history[len(w.history)-numSteps:])

	if _, err := t.Insert(w.ctx, window, priority); err != nil {
		return err
	}
	w.itemsCreated++

	return nil
}

// Flush implements Writer. Local inserts are synchronous, so there is
// nothing pending.
func (w *localWriter) Flush() error {
	if w.closed {
		return ErrWriterClosed
	}
	return nil
}

// Close implements Writer.
func (w *localWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.history = nil

	w.logger.Debug().
		Str("writer_id", w.id).
		Int64("steps_appended", w.appended).
		Int64("items_created", w.itemsCreated).
		Msg("Writer closed")

	return nil
}
