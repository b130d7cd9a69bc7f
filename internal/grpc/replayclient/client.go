package replayclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mitchelldurbincs/replaybridge/internal/replay"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// Client is a replay.Client backed by the ReplayService gRPC API.
type Client struct {
	mu      sync.Mutex
	conn    *grpc.ClientConn
	ownConn bool
	rpc     replayv1.ReplayServiceClient
	closed  bool
	logger  zerolog.Logger
}

// Dial connects to a replay server and returns a client that owns the
// connection.
func Dial(ctx context.Context, target string, logger zerolog.Logger) (*Client, error) {
	conn, err := grpc.DialContext(ctx, target,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dialing replay server %s: %w", target, err)
	}

	c := New(conn, logger)
	c.ownConn = true
	return c, nil
}

// New wraps an existing connection. The caller keeps ownership of conn.
func New(conn *grpc.ClientConn, logger zerolog.Logger) *Client {
	return &Client{
		conn:   conn,
		rpc:    replayv1.NewReplayServiceClient(conn),
		logger: logger.With().Str("component", "replay_client").Logger(),
	}
}

// NewWriter implements replay.Client.
func (c *Client) NewWriter(ctx context.Context, maxSequenceLength int) (replay.Writer, error) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return nil, replay.ErrClientClosed
	}
	if maxSequenceLength <= 0 {
		return nil, fmt.Errorf("max sequence length must be positive, got %d", maxSequenceLength)
	}

	stream, err := c.rpc.InsertStream(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening insert stream: %w", err)
	}

	start := &replayv1.InsertRequest{
		Payload: &replayv1.InsertRequest_Start{
			Start: &replayv1.StartSequence{
				MaxSequenceLength: int32(maxSequenceLength),
			},
		},
	}
	if err := stream.Send(start); err != nil {
		return nil, fmt.Errorf("starting sequence: %w", err)
	}

	return &grpcWriter{
		stream: stream,
		maxLen: maxSequenceLength,
		logger: c.logger.With().Str("component", "grpc_writer").Logger(),
	}, nil
}

// MutatePriorities implements replay.Client.
func (c *Client) MutatePriorities(ctx context.Context, table string, updates map[string]float64, deletes []string) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return replay.ErrClientClosed
	}

	_, err := c.rpc.MutatePriorities(ctx, &replayv1.MutatePrioritiesRequest{
		Table:   table,
		Updates: updates,
		Deletes: deletes,
	})
	return err
}

// TableInfo fetches a table's configuration and counters.
func (c *Client) TableInfo(ctx context.Context, table string) (*replayv1.TableInfo, error) {
	resp, err := c.rpc.GetTableInfo(ctx, &replayv1.GetTableInfoRequest{Table: table})
	if err != nil {
		return nil, err
	}
	return resp.Info, nil
}

// Sample draws n items from a table.
func (c *Client) Sample(ctx context.Context, table string, n int) ([]*replayv1.SampledItem, error) {
	stream, err := c.rpc.Sample(ctx, &replayv1.SampleRequest{
		Table:      table,
		NumSamples: int32(n),
	})
	if err != nil {
		return nil, err
	}

	items := make([]*replayv1.SampledItem, 0, n)
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return items, nil
		}
		if err != nil {
			return items, err
		}
		items = append(items, resp.Item)
	}
}

// Close implements replay.Client.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.ownConn {
		return c.conn.Close()
	}
	return nil
}

// grpcWriter sends writer commands over one insert stream. Server-side
// rejections surface on the next Send or on Close, matching the
// asynchronous nature of the stream.
type grpcWriter struct {
	stream replayv1.ReplayService_InsertStreamClient
	maxLen int

	appended     int64
	itemsCreated int64
	closed       bool

	logger zerolog.Logger
}

// Append implements replay.Writer.
func (w *grpcWriter) Append(step *replayv1.Step) error {
	if w.closed {
		return replay.ErrWriterClosed
	}

	req := &replayv1.InsertRequest{
		Payload: &replayv1.InsertRequest_Append{Append: step},
	}
	if err := w.send(req); err != nil {
		return fmt.Errorf("appending step: %w", err)
	}
	w.appended++
	return nil
}

// CreateItem implements replay.Writer.
func (w *grpcWriter) CreateItem(table string, numSteps int, priority float64) error {
	if w.closed {
		return replay.ErrWriterClosed
	}
	if err := replay.ValidatePriority(priority); err != nil {
		return err
	}
	if numSteps <= 0 {
		return fmt.Errorf("num steps must be positive, got %d", numSteps)
	}
	if numSteps > w.maxLen {
		return fmt.Errorf("%w: %d > %d", replay.ErrItemTooLong, numSteps, w.maxLen)
	}
	if int64(numSteps) > w.appended {
		return fmt.Errorf("%w: %d > %d", replay.ErrNotEnoughSteps, numSteps, w.appended)
	}

	req := &replayv1.InsertRequest{
		Payload: &replayv1.InsertRequest_CreateItem{
			CreateItem: &replayv1.CreateItem{
				Table:    table,
				NumSteps: int32(numSteps),
				Priority: priority,
			},
		},
	}
	if err := w.send(req); err != nil {
		return fmt.Errorf("creating item in %s: %w", table, err)
	}
	w.itemsCreated++
	return nil
}

// send translates a failed Send into the server's status error. gRPC
// reports stream aborts as io.EOF on Send; the real status comes from
// CloseAndRecv.
func (w *grpcWriter) send(req *replayv1.InsertRequest) error {
	err := w.stream.Send(req)
	if err == nil {
		return nil
	}
	w.closed = true
	if _, recvErr := w.stream.CloseAndRecv(); recvErr != nil && !errors.Is(recvErr, io.EOF) {
		return recvErr
	}
	return err
}

// Flush implements replay.Writer. The stream has no per-message ack;
// pending work is acknowledged at Close.
func (w *grpcWriter) Flush() error {
	if w.closed {
		return replay.ErrWriterClosed
	}
	return nil
}

// Close implements replay.Writer.
func (w *grpcWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	resp, err := w.stream.CloseAndRecv()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("closing insert stream: %w", err)
	}

	if resp != nil {
		w.logger.Debug().
			Int64("steps_appended", resp.StepsAppended).
			Int64("items_created", resp.ItemsCreated).
			Msg("Writer closed")
	}
	return nil
}
