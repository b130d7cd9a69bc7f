package replayserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/mitchelldurbincs/replaybridge/internal/grpc/replayclient"
	"github.com/mitchelldurbincs/replaybridge/internal/replay/table"
	"github.com/mitchelldurbincs/replaybridge/internal/testutil"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

const bufSize = 1024 * 1024

func setupTestServer(t *testing.T, tables ...*table.Table) (*grpc.ClientConn, *table.Registry) {
	t.Helper()

	registry := table.NewRegistry(testutil.NopLogger())
	for _, tbl := range tables {
		require.NoError(t, registry.Register(tbl))
	}

	lis := bufconn.Listen(bufSize)
	grpcServer := grpc.NewServer()
	replayv1.RegisterReplayServiceServer(grpcServer, NewServer(registry, testutil.NopLogger()))

	go func() {
		_ = grpcServer.Serve(lis)
	}()

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		grpcServer.Stop()
		_ = registry.CloseAll()
	})

	return conn, registry
}

func TestInsertAndSampleRoundTrip(t *testing.T) {
	conn, _ := setupTestServer(t, table.NewQueue("queue", 10, testutil.NopLogger()))

	client := replayclient.New(conn, testutil.NopLogger())
	ctx := context.Background()

	w, err := client.NewWriter(ctx, 1)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.Append(testutil.ScalarStep(float32(i))))
		require.NoError(t, w.CreateItem("queue", 1, 1.0))
	}
	require.NoError(t, w.Close())

	items, err := client.Sample(ctx, "queue", 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, "queue", item.GetTable())
		assert.Equal(t, int32(1), item.GetTimesSampled())
		require.Len(t, item.GetSteps(), 1)
		assert.Equal(t, float32(i), testutil.Observation(item.GetSteps()[0]))
	}

	info, err := client.TableInfo(ctx, "queue")
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.GetTotalInserted())
	assert.Equal(t, int64(3), info.GetTotalSampled())
	assert.Equal(t, int64(0), info.GetCurrentSize())
}

func TestInsertStream_SlidingWindow(t *testing.T) {
	conn, registry := setupTestServer(t, table.NewQueue("queue", 10, testutil.NopLogger()))

	client := replayclient.New(conn, testutil.NopLogger())
	ctx := context.Background()

	w, err := client.NewWriter(ctx, 2)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NoError(t, w.Append(testutil.ScalarStep(float32(i))))
	}
	require.NoError(t, w.CreateItem("queue", 2, 1.0))
	require.NoError(t, w.Close())

	tbl, err := registry.Get("queue")
	require.NoError(t, err)
	items, err := tbl.Sample(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items[0].Steps, 2)
	assert.Equal(t, float32(2), testutil.Observation(items[0].Steps[0]))
	assert.Equal(t, float32(3), testutil.Observation(items[0].Steps[1]))
}

func TestInsertStream_CreateItemErrors(t *testing.T) {
	conn, _ := setupTestServer(t, table.NewQueue("queue", 10, testutil.NopLogger()))
	rpc := replayv1.NewReplayServiceClient(conn)
	ctx := context.Background()

	cases := []struct {
		name string
		item *replayv1.CreateItem
		code codes.Code
	}{
		{"zero steps", &replayv1.CreateItem{Table: "queue", NumSteps: 0, Priority: 1}, codes.InvalidArgument},
		{"beyond window", &replayv1.CreateItem{Table: "queue", NumSteps: 5, Priority: 1}, codes.InvalidArgument},
		{"beyond history", &replayv1.CreateItem{Table: "queue", NumSteps: 2, Priority: 1}, codes.InvalidArgument},
		{"unknown table", &replayv1.CreateItem{Table: "missing", NumSteps: 1, Priority: 1}, codes.NotFound},
		{"bad priority", &replayv1.CreateItem{Table: "queue", NumSteps: 1, Priority: -1}, codes.InvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stream, err := rpc.InsertStream(ctx)
			require.NoError(t, err)

			require.NoError(t, stream.Send(&replayv1.InsertRequest{
				Payload: &replayv1.InsertRequest_Start{
					Start: &replayv1.StartSequence{MaxSequenceLength: 2},
				},
			}))
			require.NoError(t, stream.Send(&replayv1.InsertRequest{
				Payload: &replayv1.InsertRequest_Append{Append: testutil.ScalarStep(0)},
			}))
			// Send may or may not observe the abort; the status comes
			// from CloseAndRecv.
			_ = stream.Send(&replayv1.InsertRequest{
				Payload: &replayv1.InsertRequest_CreateItem{CreateItem: tc.item},
			})

			_, err = stream.CloseAndRecv()
			require.Error(t, err)
			assert.Equal(t, tc.code, status.Code(err))
		})
	}
}

func TestInsertStream_StartMustComeFirst(t *testing.T) {
	conn, _ := setupTestServer(t, table.NewQueue("queue", 10, testutil.NopLogger()))
	rpc := replayv1.NewReplayServiceClient(conn)

	stream, err := rpc.InsertStream(context.Background())
	require.NoError(t, err)

	require.NoError(t, stream.Send(&replayv1.InsertRequest{
		Payload: &replayv1.InsertRequest_Append{Append: testutil.ScalarStep(0)},
	}))
	_ = stream.Send(&replayv1.InsertRequest{
		Payload: &replayv1.InsertRequest_Start{
			Start: &replayv1.StartSequence{MaxSequenceLength: 2},
		},
	})

	_, err = stream.CloseAndRecv()
	require.Error(t, err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestInsertStream_ReportsCounts(t *testing.T) {
	conn, _ := setupTestServer(t, table.NewQueue("queue", 10, testutil.NopLogger()))
	rpc := replayv1.NewReplayServiceClient(conn)

	stream, err := rpc.InsertStream(context.Background())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, stream.Send(&replayv1.InsertRequest{
			Payload: &replayv1.InsertRequest_Append{Append: testutil.ScalarStep(float32(i))},
		}))
	}
	require.NoError(t, stream.Send(&replayv1.InsertRequest{
		Payload: &replayv1.InsertRequest_CreateItem{
			CreateItem: &replayv1.CreateItem{Table: "queue", NumSteps: 3, Priority: 1},
		},
	}))

	resp, err := stream.CloseAndRecv()
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.GetStepsAppended())
	assert.Equal(t, int64(1), resp.GetItemsCreated())
}

func TestSample_Errors(t *testing.T) {
	conn, _ := setupTestServer(t, table.NewQueue("queue", 10, testutil.NopLogger()))
	rpc := replayv1.NewReplayServiceClient(conn)
	ctx := context.Background()

	stream, err := rpc.Sample(ctx, &replayv1.SampleRequest{Table: "missing", NumSamples: 1})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.NotFound, status.Code(err))

	stream, err = rpc.Sample(ctx, &replayv1.SampleRequest{Table: "queue", NumSamples: 0})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestSample_HonorsDeadline(t *testing.T) {
	conn, _ := setupTestServer(t, table.NewQueue("queue", 10, testutil.NopLogger()))
	rpc := replayv1.NewReplayServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	stream, err := rpc.Sample(ctx, &replayv1.SampleRequest{Table: "queue", NumSamples: 1})
	require.NoError(t, err)
	_, err = stream.Recv()
	assert.Equal(t, codes.DeadlineExceeded, status.Code(err))
}

func TestSample_BlocksUntilInsert(t *testing.T) {
	conn, registry := setupTestServer(t, table.NewQueue("queue", 10, testutil.NopLogger()))
	client := replayclient.New(conn, testutil.NopLogger())

	type result struct {
		items []*replayv1.SampledItem
		err   error
	}
	done := make(chan result, 1)
	go func() {
		items, err := client.Sample(context.Background(), "queue", 1)
		done <- result{items, err}
	}()

	select {
	case <-done:
		t.Fatal("sample from an empty table should block")
	case <-time.After(50 * time.Millisecond):
	}

	tbl, err := registry.Get("queue")
	require.NoError(t, err)
	_, err = tbl.Insert(context.Background(), []*replayv1.Step{testutil.ScalarStep(7)}, 1.0)
	require.NoError(t, err)

	select {
	case r := <-done:
		require.NoError(t, r.err)
		require.Len(t, r.items, 1)
		assert.Equal(t, float32(7), testutil.Observation(r.items[0].GetSteps()[0]))
	case <-time.After(2 * time.Second):
		t.Fatal("blocked sample did not resume after insert")
	}
}

func TestMutatePriorities(t *testing.T) {
	tbl := table.New(table.Config{
		Name:        "prioritized",
		Sampler:     table.NewPrioritizedSelector(1.0),
		Remover:     table.NewFifoSelector(),
		MaxSize:     100,
		RateLimiter: table.NewMinSizeLimiter(1),
		Rand:        testutil.NewTestRNG(7),
		Logger:      testutil.NopLogger(),
	})
	conn, _ := setupTestServer(t, tbl)
	rpc := replayv1.NewReplayServiceClient(conn)
	ctx := context.Background()

	idA, err := tbl.Insert(ctx, []*replayv1.Step{testutil.ScalarStep(0)}, 1.0)
	require.NoError(t, err)
	idB, err := tbl.Insert(ctx, []*replayv1.Step{testutil.ScalarStep(1)}, 1.0)
	require.NoError(t, err)

	resp, err := rpc.MutatePriorities(ctx, &replayv1.MutatePrioritiesRequest{
		Table:   "prioritized",
		Updates: map[string]float64{idA: 0, "missing": 2},
		Deletes: []string{idB},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.GetUpdated())
	assert.Equal(t, int32(1), resp.GetDeleted())
	assert.Equal(t, 1, tbl.Size())

	_, err = rpc.MutatePriorities(ctx, &replayv1.MutatePrioritiesRequest{Table: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = rpc.MutatePriorities(ctx, &replayv1.MutatePrioritiesRequest{
		Table:   "prioritized",
		Updates: map[string]float64{idA: -1},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestGetTableInfo(t *testing.T) {
	conn, _ := setupTestServer(t, table.NewQueue("queue", 5, testutil.NopLogger()))
	rpc := replayv1.NewReplayServiceClient(conn)

	resp, err := rpc.GetTableInfo(context.Background(), &replayv1.GetTableInfoRequest{Table: "queue"})
	require.NoError(t, err)

	info := resp.GetInfo()
	assert.Equal(t, "queue", info.GetName())
	assert.Equal(t, int64(5), info.GetMaxSize())
	assert.Equal(t, int64(1), info.GetMaxTimesSampled())
	assert.Equal(t, "fifo", info.GetSampler())
	assert.Equal(t, "fifo", info.GetRemover())

	_, err = rpc.GetTableInfo(context.Background(), &replayv1.GetTableInfoRequest{Table: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))
}
