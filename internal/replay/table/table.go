package table

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

var (
	// ErrTableClosed is returned when operations are attempted on a closed table.
	ErrTableClosed = errors.New("replay table is closed")
	// ErrInvalidPriority is returned for negative or NaN priorities.
	ErrInvalidPriority = errors.New("priority must be a finite non-negative number")
	// ErrUnknownTable is returned by the registry for unregistered table names.
	ErrUnknownTable = errors.New("unknown replay table")
)

// Item is a single sampleable entry: a window of steps with a priority.
type Item struct {
	ID           string
	Steps        []*replayv1.Step
	Priority     float64
	TimesSampled int
	InsertedAt   time.Time
}

// Config describes a table.
type Config struct {
	Name    string
	Sampler Selector
	Remover Selector
	// MaxSize bounds the number of live items; the remover evicts beyond it.
	MaxSize int
	// MaxTimesSampled evicts an item after it has been sampled this many
	// times. Zero means unlimited.
	MaxTimesSampled int
	RateLimiter     RateLimiter
	// Rand is used for selector draws. A nil value falls back to a
	// time-seeded source.
	Rand   *rand.Rand
	Logger zerolog.Logger
}

// Table is an in-process replay table: the local-server counterpart of the
// external replay service. Inserts and samples are admitted by the table's
// rate limiter; Sample blocks until a draw is allowed.
type Table struct {
	mu   sync.Mutex
	cond *sync.Cond

	name            string
	items           map[string]*Item
	sampler         Selector
	remover         Selector
	maxSize         int
	maxTimesSampled int
	limiter         RateLimiter
	rng             *rand.Rand
	closed          bool

	// Statistics
	totalInserted int64
	totalSampled  int64
	totalEvicted  int64

	logger zerolog.Logger
}

// Stats holds a snapshot of table counters.
type Stats struct {
	Name            string
	CurrentSize     int
	MaxSize         int
	MaxTimesSampled int
	Sampler         string
	Remover         string
	MinSizeToSample int
	TotalInserted   int64
	TotalSampled    int64
	TotalEvicted    int64
}

// New creates a table from the given config.
func New(cfg Config) *Table {
	if cfg.Sampler == nil {
		cfg.Sampler = NewUniformSelector()
	}
	if cfg.Remover == nil {
		cfg.Remover = NewFifoSelector()
	}
	if cfg.RateLimiter == nil {
		cfg.RateLimiter = NewMinSizeLimiter(1)
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 10000 // Default capacity
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	t := &Table{
		name:            cfg.Name,
		items:           make(map[string]*Item),
		sampler:         cfg.Sampler,
		remover:         cfg.Remover,
		maxSize:         cfg.MaxSize,
		maxTimesSampled: cfg.MaxTimesSampled,
		limiter:         cfg.RateLimiter,
		rng:             cfg.Rand,
		logger:          cfg.Logger.With().Str("component", "replay_table").Str("table", cfg.Name).Logger(),
	}
	t.cond = sync.NewCond(&t.mu)
	return t
}

// NewQueue creates a bounded FIFO table: items are sampled exactly once, in
// insertion order, and inserts block while the queue is full.
func NewQueue(name string, capacity int, logger zerolog.Logger) *Table {
	return New(Config{
		Name:            name,
		Sampler:         NewFifoSelector(),
		Remover:         NewFifoSelector(),
		MaxSize:         capacity,
		MaxTimesSampled: 1,
		RateLimiter:     NewQueueLimiter(capacity),
		Logger:          logger,
	})
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Insert adds an item over the given steps, blocking while the rate limiter
// refuses the insert (queue tables at capacity). It returns the new item ID.
func (t *Table) Insert(ctx context.Context, steps []*replayv1.Step, priority float64) (string, error) {
	if err := validatePriority(priority); err != nil {
		return "", err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for !t.closed && !t.limiter.CanInsert(len(t.items), 1) {
		if err := t.waitLocked(ctx); err != nil {
			return "", err
		}
	}
	if t.closed {
		return "", ErrTableClosed
	}

	item := &Item{
		ID:         uuid.New().String(),
		Steps:      steps,
		Priority:   priority,
		InsertedAt: time.Now(),
	}
	t.items[item.ID] = item
	t.sampler.Insert(item.ID, priority)
	t.remover.Insert(item.ID, priority)
	t.totalInserted++

	// Evict beyond capacity using the remover's ordering.
	for len(t.items) > t.maxSize {
		victim, ok := t.remover.Select(t.rng)
		if !ok {
			break
		}
		t.removeLocked(victim)
		t.totalEvicted++
		t.logger.Debug().
			Str("item_id", victim).
			Int64("evicted_total", t.totalEvicted).
			Msg("Table full, evicting item")
	}

	t.cond.Broadcast()
	return item.ID, nil
}

// Sample draws n items, blocking on each draw until the rate limiter admits
// it. Returned items are snapshots; mutating them does not affect the table.
func (t *Table) Sample(ctx context.Context, n int) ([]*Item, error) {
	result := make([]*Item, 0, n)

	t.mu.Lock()
	defer t.mu.Unlock()

	for len(result) < n {
		for !t.closed && !t.canSampleLocked(1) {
			if err := t.waitLocked(ctx); err != nil {
				return result, err
			}
		}
		if t.closed {
			return result, ErrTableClosed
		}

		item, err := t.sampleOneLocked()
		if err != nil {
			return result, err
		}
		result = append(result, item)
	}

	return result, nil
}

// CanSample reports whether n draws would currently be admitted without
// blocking.
func (t *Table) CanSample(n int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed || n <= 0 {
		return false
	}
	return t.canSampleLocked(n)
}

// MutatePriorities applies priority updates and deletions. Updates for
// unknown items are ignored; deletes of unknown items are not counted.
func (t *Table) MutatePriorities(updates map[string]float64, deletes []string) (updated, deleted int, err error) {
	for _, priority := range updates {
		if err := validatePriority(priority); err != nil {
			return 0, 0, err
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, 0, ErrTableClosed
	}

	for id, priority := range updates {
		item, ok := t.items[id]
		if !ok {
			continue
		}
		item.Priority = priority
		t.sampler.Update(id, priority)
		t.remover.Update(id, priority)
		updated++
	}

	for _, id := range deletes {
		if _, ok := t.items[id]; !ok {
			continue
		}
		t.removeLocked(id)
		deleted++
	}

	if updated > 0 || deleted > 0 {
		t.logger.Debug().
			Int("updated", updated).
			Int("deleted", deleted).
			Msg("Mutated priorities")
		t.cond.Broadcast()
	}

	return updated, deleted, nil
}

// Size returns the number of live items.
func (t *Table) Size() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.items)
}

// Stats returns a snapshot of table counters.
func (t *Table) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Stats{
		Name:            t.name,
		CurrentSize:     len(t.items),
		MaxSize:         t.maxSize,
		MaxTimesSampled: t.maxTimesSampled,
		Sampler:         t.sampler.Name(),
		Remover:         t.remover.Name(),
		MinSizeToSample: t.limiter.MinSizeToSample(),
		TotalInserted:   t.totalInserted,
		TotalSampled:    t.totalSampled,
		TotalEvicted:    t.totalEvicted,
	}
}

// Close closes the table and wakes all blocked callers.
func (t *Table) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	t.cond.Broadcast()

	t.logger.Info().
		Int64("total_inserted", t.totalInserted).
		Int64("total_sampled", t.totalSampled).
		Int64("total_evicted", t.totalEvicted).
		Msg("Table closed")

	return nil
}

// canSampleLocked checks the limiter plus the remaining sample budget under
// max_times_sampled.
func (t *Table) canSampleLocked(n int) bool {
	size := len(t.items)
	if size == 0 {
		return false
	}
	if !t.limiter.CanSample(size, n) {
		return false
	}
	if t.maxTimesSampled > 0 {
		budget := 0
		for _, item := range t.items {
			budget += t.maxTimesSampled - item.TimesSampled
			if budget >= n {
				return true
			}
		}
		return false
	}
	return true
}

func (t *Table) sampleOneLocked() (*Item, error) {
	id, ok := t.sampler.Select(t.rng)
	if !ok {
		return nil, ErrTableClosed
	}

	item := t.items[id]
	item.TimesSampled++
	t.totalSampled++

	snapshot := &Item{
		ID:           item.ID,
		Steps:        item.Steps,
		Priority:     item.Priority,
		TimesSampled: item.TimesSampled,
		InsertedAt:   item.InsertedAt,
	}

	if t.maxTimesSampled > 0 && item.TimesSampled >= t.maxTimesSampled {
		t.removeLocked(id)
	}

	// Wake inserters blocked on a full queue.
	t.cond.Broadcast()

	return snapshot, nil
}

func (t *Table) removeLocked(id string) {
	delete(t.items, id)
	t.sampler.Delete(id)
	t.remover.Delete(id)
}

// waitLocked blocks on the table condition until broadcast or ctx
// cancellation. The mutex must be held.
func (t *Table) waitLocked(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			// Take the lock so the broadcast cannot fire before Wait has
			// parked the waiter; an unlocked broadcast can be lost.
			t.mu.Lock()
			t.cond.Broadcast()
			t.mu.Unlock()
		case <-done:
		}
	}()

	t.cond.Wait()
	close(done)
	return ctx.Err()
}

func validatePriority(priority float64) error {
	if priority < 0 || math.IsNaN(priority) || math.IsInf(priority, 0) {
		return ErrInvalidPriority
	}
	return nil
}

// Registry manages the set of tables served by a replay server.
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
	logger zerolog.Logger
}

// NewRegistry creates an empty table registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		tables: make(map[string]*Table),
		logger: logger.With().Str("component", "table_registry").Logger(),
	}
}

// Register adds a table. Registering a duplicate name replaces nothing and
// returns an error.
func (r *Registry) Register(t *Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tables[t.Name()]; exists {
		return errors.New("table already registered: " + t.Name())
	}
	r.tables[t.Name()] = t

	r.logger.Debug().
		Str("table", t.Name()).
		Int("total_tables", len(r.tables)).
		Msg("Registered table")

	return nil
}

// Get retrieves a table by name.
func (r *Registry) Get(name string) (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[name]
	if !ok {
		return nil, ErrUnknownTable
	}
	return t, nil
}

// Tables returns a copy of the registered tables keyed by name.
func (r *Registry) Tables() map[string]*Table {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*Table, len(r.tables))
	for name, t := range r.tables {
		result[name] = t
	}
	return result
}

// CloseAll closes every registered table.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, t := range r.tables {
		if err := t.Close(); err != nil {
			r.logger.Error().
				Err(err).
				Str("table", name).
				Msg("Failed to close table")
		}
	}
	r.tables = make(map[string]*Table)
	return nil
}
