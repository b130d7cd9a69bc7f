package table

import (
	"math"
	"math/rand"
)

// Selector picks item IDs from a table. Tables use one selector to choose
// items for sampling and another to choose items for eviction, so both are
// kept in sync on every insert and delete.
//
// Selectors are not safe for concurrent use; the owning table serializes
// access.
type Selector interface {
	// Insert registers a new item with the given priority.
	Insert(id string, priority float64)

	// Update changes the priority of an existing item. Unknown IDs are
	// ignored.
	Update(id string, priority float64)

	// Delete removes an item. Unknown IDs are ignored.
	Delete(id string)

	// Select returns an item ID, or false if the selector is empty.
	Select(rng *rand.Rand) (string, bool)

	// Len returns the number of registered items.
	Len() int

	// Name returns a short identifier for logging and table info.
	Name() string
}

// FifoSelector selects items in insertion order.
type FifoSelector struct {
	ids     []string
	present map[string]bool
}

// NewFifoSelector creates a selector that always picks the oldest item.
func NewFifoSelector() *FifoSelector {
	return &FifoSelector{present: make(map[string]bool)}
}

func (s *FifoSelector) Insert(id string, priority float64) {
	s.ids = append(s.ids, id)
	s.present[id] = true
}

func (s *FifoSelector) Update(id string, priority float64) {
	// Priority has no effect on insertion order.
}

func (s *FifoSelector) Delete(id string) {
	if !s.present[id] {
		return
	}
	delete(s.present, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
}

func (s *FifoSelector) Select(rng *rand.Rand) (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[0], true
}

func (s *FifoSelector) Len() int { return len(s.ids) }

func (s *FifoSelector) Name() string { return "fifo" }

// LifoSelector selects items in reverse insertion order.
type LifoSelector struct {
	fifo FifoSelector
}

// NewLifoSelector creates a selector that always picks the newest item.
func NewLifoSelector() *LifoSelector {
	return &LifoSelector{fifo: FifoSelector{present: make(map[string]bool)}}
}

func (s *LifoSelector) Insert(id string, priority float64) { s.fifo.Insert(id, priority) }
func (s *LifoSelector) Update(id string, priority float64) {}
func (s *LifoSelector) Delete(id string)                   { s.fifo.Delete(id) }

func (s *LifoSelector) Select(rng *rand.Rand) (string, bool) {
	if len(s.fifo.ids) == 0 {
		return "", false
	}
	return s.fifo.ids[len(s.fifo.ids)-1], true
}

func (s *LifoSelector) Len() int { return s.fifo.Len() }

func (s *LifoSelector) Name() string { return "lifo" }

// UniformSelector selects items uniformly at random.
type UniformSelector struct {
	ids   []string
	index map[string]int
}

// NewUniformSelector creates a selector where every item is equally likely.
func NewUniformSelector() *UniformSelector {
	return &UniformSelector{index: make(map[string]int)}
}

func (s *UniformSelector) Insert(id string, priority float64) {
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
}

func (s *UniformSelector) Update(id string, priority float64) {}

func (s *UniformSelector) Delete(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	s.ids[i] = s.ids[last]
	s.index[s.ids[i]] = i
	s.ids = s.ids[:last]
	delete(s.index, id)
}

func (s *UniformSelector) Select(rng *rand.Rand) (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	return s.ids[rng.Intn(len(s.ids))], true
}

func (s *UniformSelector) Len() int { return len(s.ids) }

func (s *UniformSelector) Name() string { return "uniform" }

// PrioritizedSelector selects items with probability proportional to
// priority raised to a fixed exponent. Items with zero priority are never
// selected while any item has positive priority.
type PrioritizedSelector struct {
	exponent   float64
	ids        []string
	index      map[string]int
	priorities []float64
}

// NewPrioritizedSelector creates a priority-weighted selector.
func NewPrioritizedSelector(exponent float64) *PrioritizedSelector {
	return &PrioritizedSelector{
		exponent: exponent,
		index:    make(map[string]int),
	}
}

func (s *PrioritizedSelector) Insert(id string, priority float64) {
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.priorities = append(s.priorities, priority)
}

func (s *PrioritizedSelector) Update(id string, priority float64) {
	if i, ok := s.index[id]; ok {
		s.priorities[i] = priority
	}
}

func (s *PrioritizedSelector) Delete(id string) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.ids) - 1
	s.ids[i] = s.ids[last]
	s.priorities[i] = s.priorities[last]
	s.index[s.ids[i]] = i
	s.ids = s.ids[:last]
	s.priorities = s.priorities[:last]
	delete(s.index, id)
}

func (s *PrioritizedSelector) Select(rng *rand.Rand) (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}

	total := 0.0
	for _, p := range s.priorities {
		total += s.weight(p)
	}
	if total <= 0 {
		// All priorities are zero; fall back to a uniform draw so a
		// fully-deprioritized table can still drain.
		return s.ids[rng.Intn(len(s.ids))], true
	}

	target := rng.Float64() * total
	for i, p := range s.priorities {
		target -= s.weight(p)
		if target < 0 {
			return s.ids[i], true
		}
	}
	// Floating point slack; return the last item.
	return s.ids[len(s.ids)-1], true
}

func (s *PrioritizedSelector) weight(priority float64) float64 {
	if priority <= 0 {
		return 0
	}
	if s.exponent == 1.0 {
		return priority
	}
	return math.Pow(priority, s.exponent)
}

func (s *PrioritizedSelector) Len() int { return len(s.ids) }

func (s *PrioritizedSelector) Name() string { return "prioritized" }
