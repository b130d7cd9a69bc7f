package table

// RateLimiter gates inserts and samples on a table based on its current
// size. Tables block the caller until the limiter admits the operation.
type RateLimiter interface {
	// CanInsert reports whether n items may be inserted at the given size.
	CanInsert(size, n int) bool

	// CanSample reports whether n items may be sampled at the given size.
	CanSample(size, n int) bool

	// MinSizeToSample returns the minimum table size before any sampling
	// is admitted.
	MinSizeToSample() int

	// Name returns a short identifier for logging and table info.
	Name() string
}

// MinSizeLimiter admits samples only once the table holds at least min
// items. Inserts are never blocked.
type MinSizeLimiter struct {
	min int
}

// NewMinSizeLimiter creates a limiter that holds back sampling until the
// table has min items.
func NewMinSizeLimiter(min int) *MinSizeLimiter {
	if min < 1 {
		min = 1
	}
	return &MinSizeLimiter{min: min}
}

func (l *MinSizeLimiter) CanInsert(size, n int) bool { return true }

func (l *MinSizeLimiter) CanSample(size, n int) bool { return size >= l.min }

func (l *MinSizeLimiter) MinSizeToSample() int { return l.min }

func (l *MinSizeLimiter) Name() string { return "min_size" }

// QueueLimiter gives a table queue behavior: inserts block while the table
// is at capacity and samples block while it is empty.
type QueueLimiter struct {
	capacity int
}

// NewQueueLimiter creates a limiter for a bounded queue of the given
// capacity.
func NewQueueLimiter(capacity int) *QueueLimiter {
	if capacity < 1 {
		capacity = 1
	}
	return &QueueLimiter{capacity: capacity}
}

func (l *QueueLimiter) CanInsert(size, n int) bool { return size+n <= l.capacity }

func (l *QueueLimiter) CanSample(size, n int) bool { return size >= 1 }

func (l *QueueLimiter) MinSizeToSample() int { return 1 }

func (l *QueueLimiter) Name() string { return "queue" }
