package replay

import (
	"context"
	"errors"
	"math"

	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

var (
	// ErrWriterClosed is returned when appending to or flushing a closed writer.
	ErrWriterClosed = errors.New("replay writer is closed")
	// ErrClientClosed is returned when a closed client is used.
	ErrClientClosed = errors.New("replay client is closed")
	// ErrItemTooLong is returned when an item would span more steps than the
	// writer's maximum sequence length.
	ErrItemTooLong = errors.New("item exceeds writer max sequence length")
	// ErrNotEnoughSteps is returned when an item references more steps than
	// have been appended.
	ErrNotEnoughSteps = errors.New("item references more steps than appended")
	// ErrInvalidPriority is returned for negative, NaN or infinite priorities.
	ErrInvalidPriority = errors.New("priority must be a finite non-negative number")
)

// ValidatePriority rejects priorities the replay server would refuse.
func ValidatePriority(priority float64) error {
	if priority < 0 || math.IsNaN(priority) || math.IsInf(priority, 0) {
		return ErrInvalidPriority
	}
	return nil
}

// Writer stages a sequence of steps and registers items over windows of
// that sequence. It keeps only the most recent maxSequenceLength steps, so
// items can reference at most that many.
//
// Writers are not safe for concurrent use.
type Writer interface {
	// Append stages one step at the end of the sequence.
	Append(step *replayv1.Step) error

	// CreateItem registers an item in the named table spanning the last
	// numSteps appended steps.
	CreateItem(table string, numSteps int, priority float64) error

	// Flush pushes staged work to the server where the implementation
	// supports it; full acknowledgment of the sequence happens at Close.
	Flush() error

	// Close flushes and ends the sequence. A closed writer cannot be reused.
	Close() error
}

// Client is the narrow surface through which trajectories reach the replay
// server: open writers, adjust item priorities, nothing else. The server's
// storage and sampling machinery stays behind this interface.
type Client interface {
	// NewWriter opens a writer whose items may span up to
	// maxSequenceLength steps.
	NewWriter(ctx context.Context, maxSequenceLength int) (Writer, error)

	// MutatePriorities updates and deletes item priorities in a table.
	MutatePriorities(ctx context.Context, table string, updates map[string]float64, deletes []string) error

	// Close releases the client. Writers opened from it are invalidated.
	Close() error
}
