package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/replaybridge/internal/testutil"
)

func TestFifoSelector_Order(t *testing.T) {
	s := NewFifoSelector()
	rng := testutil.NewTestRNG(1)

	s.Insert("a", 1)
	s.Insert("b", 1)
	s.Insert("c", 1)

	id, ok := s.Select(rng)
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	// Selection does not remove
	id, ok = s.Select(rng)
	assert.True(t, ok)
	assert.Equal(t, "a", id)

	s.Delete("a")
	id, ok = s.Select(rng)
	assert.True(t, ok)
	assert.Equal(t, "b", id)
	assert.Equal(t, 2, s.Len())
}

func TestFifoSelector_DeleteMiddle(t *testing.T) {
	s := NewFifoSelector()
	rng := testutil.NewTestRNG(1)

	s.Insert("a", 1)
	s.Insert("b", 1)
	s.Insert("c", 1)

	s.Delete("b")
	assert.Equal(t, 2, s.Len())

	id, _ := s.Select(rng)
	assert.Equal(t, "a", id)
	s.Delete("a")

	id, _ = s.Select(rng)
	assert.Equal(t, "c", id)

	// Deleting an unknown ID is a no-op
	s.Delete("zzz")
	assert.Equal(t, 1, s.Len())
}

func TestFifoSelector_Empty(t *testing.T) {
	s := NewFifoSelector()
	rng := testutil.NewTestRNG(1)

	_, ok := s.Select(rng)
	assert.False(t, ok)
}

func TestLifoSelector_Order(t *testing.T) {
	s := NewLifoSelector()
	rng := testutil.NewTestRNG(1)

	s.Insert("a", 1)
	s.Insert("b", 1)
	s.Insert("c", 1)

	id, ok := s.Select(rng)
	assert.True(t, ok)
	assert.Equal(t, "c", id)

	s.Delete("c")
	id, _ = s.Select(rng)
	assert.Equal(t, "b", id)
}

func TestUniformSelector_CoversAllItems(t *testing.T) {
	s := NewUniformSelector()
	rng := testutil.NewTestRNG(42)

	ids := []string{"a", "b", "c"}
	for _, id := range ids {
		s.Insert(id, 1)
	}

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		id, ok := s.Select(rng)
		assert.True(t, ok)
		counts[id]++
	}

	// Comparing against 200 to avoid flakiness
	for _, id := range ids {
		assert.Greater(t, counts[id], 200, "id %s undersampled", id)
	}
}

func TestUniformSelector_DeleteKeepsIndexConsistent(t *testing.T) {
	s := NewUniformSelector()
	rng := testutil.NewTestRNG(42)

	for _, id := range []string{"a", "b", "c", "d"} {
		s.Insert(id, 1)
	}

	// Delete from the middle; the swap-with-last must keep every
	// remaining ID reachable.
	s.Delete("b")
	assert.Equal(t, 3, s.Len())

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		id, _ := s.Select(rng)
		assert.NotEqual(t, "b", id)
		seen[id] = true
	}
	assert.Len(t, seen, 3)
}

func TestPrioritizedSelector_SkipsZeroPriority(t *testing.T) {
	s := NewPrioritizedSelector(1.0)
	rng := testutil.NewTestRNG(7)

	s.Insert("zero", 0)
	s.Insert("one", 1)
	s.Insert("two", 2)

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		id, ok := s.Select(rng)
		assert.True(t, ok)
		counts[id]++
	}

	assert.Equal(t, 0, counts["zero"])
	assert.Greater(t, counts["one"], 250)
	assert.Greater(t, counts["two"], 600)
}

func TestPrioritizedSelector_Update(t *testing.T) {
	s := NewPrioritizedSelector(1.0)
	rng := testutil.NewTestRNG(7)

	s.Insert("a", 1)
	s.Insert("b", 1)

	// Deprioritize a; only b should be drawn afterwards.
	s.Update("a", 0)
	for i := 0; i < 100; i++ {
		id, _ := s.Select(rng)
		assert.Equal(t, "b", id)
	}
}

func TestPrioritizedSelector_AllZeroFallsBackToUniform(t *testing.T) {
	s := NewPrioritizedSelector(1.0)
	rng := testutil.NewTestRNG(7)

	s.Insert("a", 0)
	s.Insert("b", 0)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, ok := s.Select(rng)
		assert.True(t, ok)
		seen[id] = true
	}
	assert.Len(t, seen, 2)
}

func TestPrioritizedSelector_Exponent(t *testing.T) {
	s := NewPrioritizedSelector(2.0)
	rng := testutil.NewTestRNG(7)

	s.Insert("one", 1)
	s.Insert("three", 3)

	counts := make(map[string]int)
	for i := 0; i < 1000; i++ {
		id, _ := s.Select(rng)
		counts[id]++
	}

	// Weights are 1 and 9, so "three" should take roughly 90% of draws.
	assert.Greater(t, counts["three"], 800)
}
