package observer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/replaybridge/internal/driver"
	"github.com/mitchelldurbincs/replaybridge/internal/replay"
	"github.com/mitchelldurbincs/replaybridge/internal/replay/table"
	"github.com/mitchelldurbincs/replaybridge/internal/testutil"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

type createdItem struct {
	table    string
	numSteps int
	priority float64
}

type fakeWriter struct {
	maxLen    int
	appends   int
	items     []createdItem
	flushes   int
	closed    bool
	appendErr error
}

func (w *fakeWriter) Append(step *replayv1.Step) error {
	if w.appendErr != nil {
		return w.appendErr
	}
	w.appends++
	return nil
}

func (w *fakeWriter) CreateItem(tableName string, numSteps int, priority float64) error {
	w.items = append(w.items, createdItem{tableName, numSteps, priority})
	return nil
}

func (w *fakeWriter) Flush() error {
	w.flushes++
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

type fakeClient struct {
	writers   []*fakeWriter
	writerErr error
	appendErr error
}

func (c *fakeClient) NewWriter(ctx context.Context, maxSequenceLength int) (replay.Writer, error) {
	if c.writerErr != nil {
		return nil, c.writerErr
	}
	w := &fakeWriter{maxLen: maxSequenceLength, appendErr: c.appendErr}
	c.writers = append(c.writers, w)
	return w, nil
}

func (c *fakeClient) MutatePriorities(ctx context.Context, tableName string, updates map[string]float64, deletes []string) error {
	return nil
}

func (c *fakeClient) Close() error { return nil }

func (c *fakeClient) totalAppends() int {
	total := 0
	for _, w := range c.writers {
		total += w.appends
	}
	return total
}

func (c *fakeClient) allItems() []createdItem {
	var items []createdItem
	for _, w := range c.writers {
		items = append(items, w.items...)
	}
	return items
}

func (c *fakeClient) itemsFor(tableName string) []createdItem {
	var items []createdItem
	for _, item := range c.allItems() {
		if item.table == tableName {
			items = append(items, item)
		}
	}
	return items
}

// runDriver collects from a counting environment with episodes of
// stepsPerEpisode transitions until maxSteps transitions are reached.
func runDriver(t *testing.T, obs driver.Observer, stepsPerEpisode, maxSteps int) (int, int) {
	t.Helper()
	env := driver.NewCountingEnv(stepsPerEpisode)
	policy := driver.NewRandomPolicy(2, testutil.NewTestRNG(1))
	d := driver.New(env, policy, []driver.Observer{obs}, driver.Config{MaxSteps: maxSteps}, testutil.NopLogger())
	steps, episodes, err := d.Run(context.Background())
	require.NoError(t, err)
	return steps, episodes
}

func TestNewTrajectoryObserver_Validation(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{}
	logger := testutil.NopLogger()

	_, err := NewTrajectoryObserver(ctx, client, nil, logger)
	assert.ErrorIs(t, err, ErrNoTables)

	_, err = NewTrajectoryObserver(ctx, client, []TableEntry{{Table: "", SequenceLength: 2}}, logger)
	assert.Error(t, err)

	_, err = NewTrajectoryObserver(ctx, client, []TableEntry{{Table: "t", SequenceLength: 0}}, logger)
	assert.Error(t, err)

	_, err = NewTrajectoryObserver(ctx, client, []TableEntry{{Table: "t", SequenceLength: 2, Stride: -1}}, logger)
	assert.Error(t, err)
}

func TestTrajectoryObserver_OverlappingWindows(t *testing.T) {
	client := &fakeClient{}
	obs, err := NewTrajectoryObserver(context.Background(), client,
		[]TableEntry{{Table: "t", SequenceLength: 2, Stride: 1}}, testutil.NopLogger())
	require.NoError(t, err)
	defer obs.Close()

	// Episodes of 3 transitions emit 4 steps each (boundary included).
	// 4 counted steps span one full episode plus the opening step of the
	// next, so 5 steps reach the observer across 2 writers.
	steps, episodes := runDriver(t, obs, 3, 4)
	assert.Equal(t, 4, steps)
	assert.Equal(t, 1, episodes)

	assert.Len(t, client.writers, 2)
	assert.Equal(t, 5, client.totalAppends())

	// Windows complete at steps 2, 3 and 4 of the first episode.
	items := client.allItems()
	require.Len(t, items, 3)
	for _, item := range items {
		assert.Equal(t, "t", item.table)
		assert.Equal(t, 2, item.numSteps)
		assert.Equal(t, 1.0, item.priority)
	}
}

func TestTrajectoryObserver_Stride(t *testing.T) {
	client := &fakeClient{}
	obs, err := NewTrajectoryObserver(context.Background(), client,
		[]TableEntry{{Table: "t", SequenceLength: 2, Stride: 2}}, testutil.NopLogger())
	require.NoError(t, err)
	defer obs.Close()

	runDriver(t, obs, 3, 4)

	assert.Len(t, client.writers, 2)
	assert.Equal(t, 5, client.totalAppends())

	// Stride 2 keeps only the windows ending at steps 2 and 4.
	assert.Len(t, client.allItems(), 2)
}

func TestTrajectoryObserver_MultiTable(t *testing.T) {
	client := &fakeClient{}
	obs, err := NewTrajectoryObserver(context.Background(), client, []TableEntry{
		{Table: "short", SequenceLength: 2},
		{Table: "long", SequenceLength: 3},
	}, testutil.NopLogger())
	require.NoError(t, err)
	defer obs.Close()

	runDriver(t, obs, 3, 4)

	assert.Len(t, client.writers, 2)
	assert.Equal(t, 5, client.totalAppends())

	// The writer window must fit the longest entry.
	for _, w := range client.writers {
		assert.Equal(t, 3, w.maxLen)
	}

	shortItems := client.itemsFor("short")
	longItems := client.itemsFor("long")
	assert.Len(t, shortItems, 3)
	assert.Len(t, longItems, 2)
	for _, item := range shortItems {
		assert.Equal(t, 2, item.numSteps)
	}
	for _, item := range longItems {
		assert.Equal(t, 3, item.numSteps)
	}
}

func TestTrajectoryObserver_WindowsDoNotSpanEpisodes(t *testing.T) {
	client := &fakeClient{}
	obs, err := NewTrajectoryObserver(context.Background(), client,
		[]TableEntry{{Table: "t", SequenceLength: 2}}, testutil.NopLogger())
	require.NoError(t, err)
	defer obs.Close()

	// Episodes of 1 transition emit 2 steps each; 3 counted transitions
	// cover two full episodes plus the opening step of a third.
	runDriver(t, obs, 1, 3)

	// Each episode gets its own writer, and each 2-step episode completes
	// exactly one window.
	assert.Len(t, client.writers, 3)
	assert.Len(t, client.allItems(), 2)
	for _, w := range client.writers[:2] {
		assert.True(t, w.closed)
	}
}

func TestTrajectoryObserver_CloseEndsEpisode(t *testing.T) {
	client := &fakeClient{}
	obs, err := NewTrajectoryObserver(context.Background(), client,
		[]TableEntry{{Table: "t", SequenceLength: 2}}, testutil.NopLogger())
	require.NoError(t, err)

	require.NoError(t, obs.Observe(testutil.StepOfKind(replayv1.StepKind_STEP_KIND_FIRST, 0)))
	require.Len(t, client.writers, 1)

	require.NoError(t, obs.Close())
	assert.True(t, client.writers[0].closed)

	// Reusable after Close; the next step opens a fresh writer.
	require.NoError(t, obs.Observe(testutil.StepOfKind(replayv1.StepKind_STEP_KIND_FIRST, 1)))
	assert.Len(t, client.writers, 2)
	require.NoError(t, obs.Close())
}

func TestTrajectoryObserver_Flush(t *testing.T) {
	client := &fakeClient{}
	obs, err := NewTrajectoryObserver(context.Background(), client,
		[]TableEntry{{Table: "t", SequenceLength: 2}}, testutil.NopLogger())
	require.NoError(t, err)
	defer obs.Close()

	// Flush without an open writer is a no-op.
	require.NoError(t, obs.Flush())

	require.NoError(t, obs.Observe(testutil.ScalarStep(0)))
	require.NoError(t, obs.Flush())
	assert.Equal(t, 1, client.writers[0].flushes)
}

func TestTrajectoryObserver_PropagatesWriterErrors(t *testing.T) {
	wantErr := errors.New("connection lost")

	client := &fakeClient{writerErr: wantErr}
	obs, err := NewTrajectoryObserver(context.Background(), client,
		[]TableEntry{{Table: "t", SequenceLength: 2}}, testutil.NopLogger())
	require.NoError(t, err)

	assert.ErrorIs(t, obs.Observe(testutil.ScalarStep(0)), wantErr)

	client = &fakeClient{appendErr: wantErr}
	obs, err = NewTrajectoryObserver(context.Background(), client,
		[]TableEntry{{Table: "t", SequenceLength: 2}}, testutil.NopLogger())
	require.NoError(t, err)

	assert.ErrorIs(t, obs.Observe(testutil.ScalarStep(0)), wantErr)
}

func TestTrajectoryObserver_EndToEnd(t *testing.T) {
	queue := table.NewQueue("t", 10, testutil.NopLogger())
	registry := table.NewRegistry(testutil.NopLogger())
	require.NoError(t, registry.Register(queue))
	defer registry.CloseAll()

	client := replay.NewLocalClient(registry, testutil.NopLogger())
	defer client.Close()

	obs, err := NewTrajectoryObserver(context.Background(), client,
		[]TableEntry{{Table: "t", SequenceLength: 2}}, testutil.NopLogger())
	require.NoError(t, err)
	defer obs.Close()

	runDriver(t, obs, 3, 3)

	// Steps 0,1,2 were appended; windows [0,1] and [1,2] became items.
	items, err := queue.Sample(context.Background(), 2)
	require.NoError(t, err)

	first := items[0].Steps
	require.Len(t, first, 2)
	assert.Equal(t, float32(0), testutil.Observation(first[0]))
	assert.Equal(t, float32(1), testutil.Observation(first[1]))

	second := items[1].Steps
	require.Len(t, second, 2)
	assert.Equal(t, float32(1), testutil.Observation(second[0]))
	assert.Equal(t, float32(2), testutil.Observation(second[1]))

	assert.False(t, queue.CanSample(1))
}
