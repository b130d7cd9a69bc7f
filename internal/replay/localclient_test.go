package replay

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/replaybridge/internal/replay/table"
	"github.com/mitchelldurbincs/replaybridge/internal/testutil"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

func stepsOf(value float32) []*replayv1.Step {
	return []*replayv1.Step{testutil.ScalarStep(value)}
}

func newTestRegistry(t *testing.T, tables ...*table.Table) *table.Registry {
	t.Helper()
	registry := table.NewRegistry(testutil.NopLogger())
	for _, tbl := range tables {
		require.NoError(t, registry.Register(tbl))
	}
	t.Cleanup(func() { _ = registry.CloseAll() })
	return registry
}

func TestLocalWriter_QueueRoundTrip(t *testing.T) {
	queue := table.NewQueue("queue", 3, testutil.NopLogger())
	registry := newTestRegistry(t, queue)

	client := NewLocalClient(registry, testutil.NopLogger())
	defer client.Close()

	ctx := context.Background()
	w, err := client.NewWriter(ctx, 1)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 3; i++ {
		require.NoError(t, w.Append(testutil.ScalarStep(float32(i))))
		require.NoError(t, w.CreateItem("queue", 1, 1.0))
	}
	require.NoError(t, w.Flush())

	for i := 0; i < 3; i++ {
		items, err := queue.Sample(ctx, 1)
		require.NoError(t, err)
		require.Len(t, items, 1)
		require.Len(t, items[0].Steps, 1)
		assert.Equal(t, float32(i), testutil.Observation(items[0].Steps[0]))
	}
	assert.False(t, queue.CanSample(1))
}

func TestLocalWriter_SlidingWindow(t *testing.T) {
	tbl := table.NewQueue("queue", 10, testutil.NopLogger())
	registry := newTestRegistry(t, tbl)

	client := NewLocalClient(registry, testutil.NopLogger())
	defer client.Close()

	ctx := context.Background()
	w, err := client.NewWriter(ctx, 3)
	require.NoError(t, err)
	defer w.Close()

	// Appending past the window drops the oldest steps.
	for i := 0; i < 5; i++ {
		require.NoError(t, w.Append(testutil.ScalarStep(float32(i))))
	}
	require.NoError(t, w.CreateItem("queue", 3, 1.0))

	items, err := tbl.Sample(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items[0].Steps, 3)
	for i, step := range items[0].Steps {
		assert.Equal(t, float32(2+i), testutil.Observation(step))
	}
}

func TestLocalWriter_ShorterItemUsesWindowTail(t *testing.T) {
	tbl := table.NewQueue("queue", 10, testutil.NopLogger())
	registry := newTestRegistry(t, tbl)

	client := NewLocalClient(registry, testutil.NopLogger())
	defer client.Close()

	ctx := context.Background()
	w, err := client.NewWriter(ctx, 4)
	require.NoError(t, err)
	defer w.Close()

	for i := 0; i < 4; i++ {
		require.NoError(t, w.Append(testutil.ScalarStep(float32(i))))
	}
	require.NoError(t, w.CreateItem("queue", 2, 1.0))

	items, err := tbl.Sample(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items[0].Steps, 2)
	assert.Equal(t, float32(2), testutil.Observation(items[0].Steps[0]))
	assert.Equal(t, float32(3), testutil.Observation(items[0].Steps[1]))
}

func TestLocalWriter_CreateItemValidation(t *testing.T) {
	tbl := table.NewQueue("queue", 10, testutil.NopLogger())
	registry := newTestRegistry(t, tbl)

	client := NewLocalClient(registry, testutil.NopLogger())
	defer client.Close()

	w, err := client.NewWriter(context.Background(), 2)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Append(testutil.ScalarStep(0)))

	assert.Error(t, w.CreateItem("queue", 0, 1.0))
	assert.ErrorIs(t, w.CreateItem("queue", 3, 1.0), ErrItemTooLong)
	assert.ErrorIs(t, w.CreateItem("queue", 2, 1.0), ErrNotEnoughSteps)
	assert.ErrorIs(t, w.CreateItem("queue", 1, -1), ErrInvalidPriority)
	assert.ErrorIs(t, w.CreateItem("missing", 1, 1.0), table.ErrUnknownTable)
}

func TestLocalWriter_Closed(t *testing.T) {
	registry := newTestRegistry(t, table.NewQueue("queue", 10, testutil.NopLogger()))
	client := NewLocalClient(registry, testutil.NopLogger())
	defer client.Close()

	w, err := client.NewWriter(context.Background(), 2)
	require.NoError(t, err)

	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Append(testutil.ScalarStep(0)), ErrWriterClosed)
	assert.ErrorIs(t, w.CreateItem("queue", 1, 1.0), ErrWriterClosed)
	assert.ErrorIs(t, w.Flush(), ErrWriterClosed)
	assert.NoError(t, w.Close())
}

func TestLocalClient_CloseInvalidatesWriters(t *testing.T) {
	registry := newTestRegistry(t, table.NewQueue("queue", 10, testutil.NopLogger()))
	client := NewLocalClient(registry, testutil.NopLogger())

	w, err := client.NewWriter(context.Background(), 2)
	require.NoError(t, err)
	require.NoError(t, w.Append(testutil.ScalarStep(0)))

	require.NoError(t, client.Close())
	assert.ErrorIs(t, w.Append(testutil.ScalarStep(1)), ErrWriterClosed)
	assert.ErrorIs(t, w.CreateItem("queue", 1, 1.0), ErrWriterClosed)
	assert.ErrorIs(t, w.Flush(), ErrWriterClosed)
}

func TestLocalClient_NewWriterValidation(t *testing.T) {
	registry := newTestRegistry(t)
	client := NewLocalClient(registry, testutil.NopLogger())

	_, err := client.NewWriter(context.Background(), 0)
	assert.Error(t, err)

	require.NoError(t, client.Close())
	_, err = client.NewWriter(context.Background(), 1)
	assert.ErrorIs(t, err, ErrClientClosed)
	assert.ErrorIs(t, client.MutatePriorities(context.Background(), "queue", nil, nil), ErrClientClosed)
}

func TestLocalClient_MutatePriorities(t *testing.T) {
	tbl := table.New(table.Config{
		Name:        "prioritized",
		Sampler:     table.NewPrioritizedSelector(1.0),
		Remover:     table.NewFifoSelector(),
		MaxSize:     100,
		RateLimiter: table.NewMinSizeLimiter(1),
		Rand:        testutil.NewTestRNG(7),
		Logger:      testutil.NopLogger(),
	})
	registry := newTestRegistry(t, tbl)

	client := NewLocalClient(registry, testutil.NopLogger())
	defer client.Close()

	ctx := context.Background()
	idA, err := tbl.Insert(ctx, stepsOf(0), 1.0)
	require.NoError(t, err)
	idB, err := tbl.Insert(ctx, stepsOf(1), 1.0)
	require.NoError(t, err)

	require.NoError(t, client.MutatePriorities(ctx, "prioritized", map[string]float64{idA: 0}, nil))

	items, err := tbl.Sample(ctx, 100)
	require.NoError(t, err)
	for _, item := range items {
		assert.Equal(t, idB, item.ID)
	}

	require.NoError(t, client.MutatePriorities(ctx, "prioritized", nil, []string{idB}))
	assert.Equal(t, 1, tbl.Size())

	assert.ErrorIs(t, client.MutatePriorities(ctx, "missing", nil, nil), table.ErrUnknownTable)
}

func TestValidatePriority(t *testing.T) {
	assert.NoError(t, ValidatePriority(0))
	assert.NoError(t, ValidatePriority(1.5))
	assert.ErrorIs(t, ValidatePriority(-1), ErrInvalidPriority)
	assert.ErrorIs(t, ValidatePriority(math.NaN()), ErrInvalidPriority)
	assert.ErrorIs(t, ValidatePriority(math.Inf(1)), ErrInvalidPriority)
}
