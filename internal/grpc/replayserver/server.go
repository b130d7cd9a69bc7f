package replayserver

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mitchelldurbincs/replaybridge/internal/replay/table"
	replayv1 "github.com/mitchelldurbincs/replaybridge/pkg/api/replay/v1"
)

// defaultMaxSequenceLength caps writer windows for streams that never send
// a StartSequence message.
const defaultMaxSequenceLength = 1000

// Server implements the ReplayService gRPC API over a table registry.
type Server struct {
	replayv1.UnimplementedReplayServiceServer

	registry *table.Registry
	logger   zerolog.Logger

	// Metrics
	totalStreams      int64
	totalItemsCreated int64
	totalSampled      int64
}

// NewServer creates a replay service over the given registry.
func NewServer(registry *table.Registry, logger zerolog.Logger) *Server {
	return &Server{
		registry: registry,
		logger:   logger.With().Str("component", "replay_server").Logger(),
	}
}

// InsertStream consumes one writer sequence: appended steps interleaved
// with item registrations over the most recent steps.
func (s *Server) InsertStream(stream replayv1.ReplayService_InsertStreamServer) error {
	ctx := stream.Context()
	atomic.AddInt64(&s.totalStreams, 1)

	maxLen := defaultMaxSequenceLength
	var history []*replayv1.Step
	var appended, created int64

	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			s.logger.Debug().
				Int64("steps_appended", appended).
				Int64("items_created", created).
				Msg("Insert stream completed")
			return stream.SendAndClose(&replayv1.InsertStreamResponse{
				StepsAppended: appended,
				ItemsCreated:  created,
			})
		}
		if err != nil {
			return err
		}

		switch payload := req.Payload.(type) {
		case *replayv1.InsertRequest_Start:
			if appended > 0 {
				return status.Error(codes.InvalidArgument, "start must precede any appended step")
			}
			if n := int(payload.Start.MaxSequenceLength); n > 0 {
				maxLen = n
			}

		case *replayv1.InsertRequest_Append:
			history = append(history, payload.Append)
			if len(history) > maxLen {
				history = history[1:]
			}
			appended++

		case *replayv1.InsertRequest_CreateItem:
			if err := s.createItem(ctx, payload.CreateItem, history, maxLen); err != nil {
				return err
			}
			created++
			atomic.AddInt64(&s.totalItemsCreated, 1)

		default:
			return status.Error(codes.InvalidArgument, "empty insert request")
		}
	}
}

func (s *Server) createItem(ctx context.Context, ci *replayv1.CreateItem, history []*replayv1.Step, maxLen int) error {
	numSteps := int(ci.NumSteps)
	if numSteps <= 0 {
		return status.Error(codes.InvalidArgument, "num_steps must be positive")
	}
	if numSteps > maxLen {
		return status.Errorf(codes.InvalidArgument, "num_steps %d exceeds max sequence length %d", numSteps, maxLen)
	}
	if numSteps > len(history) {
		return status.Errorf(codes.InvalidArgument, "num_steps %d exceeds appended history %d", numSteps, len(history))
	}

	t, err := s.registry.Get(ci.Table)
	if err != nil {
		return statusFromTableError(err)
	}

	window := make([]*replayv1.Step, numSteps)
	copy(window, history[len(history)-numSteps:])

	if _, err := t.Insert(ctx, window, ci.Priority); err != nil {
		return statusFromTableError(err)
	}
	return nil
}

// Sample streams back the requested number of items, blocking on the
// table's rate limiter between draws.
func (s *Server) Sample(req *replayv1.SampleRequest, stream replayv1.ReplayService_SampleServer) error {
	if req.NumSamples <= 0 {
		return status.Error(codes.InvalidArgument, "num_samples must be positive")
	}

	t, err := s.registry.Get(req.Table)
	if err != nil {
		return statusFromTableError(err)
	}

	ctx := stream.Context()
	for i := int32(0); i < req.NumSamples; i++ {
		items, err := t.Sample(ctx, 1)
		if err != nil {
			return statusFromTableError(err)
		}

		item := items[0]
		resp := &replayv1.SampleResponse{
			Item: &replayv1.SampledItem{
				ItemId:       item.ID,
				Table:        req.Table,
				Priority:     item.Priority,
				TimesSampled: int32(item.TimesSampled),
				Steps:        item.Steps,
			},
		}
		if err := stream.Send(resp); err != nil {
			return err
		}
		atomic.AddInt64(&s.totalSampled, 1)
	}

	return nil
}

// MutatePriorities applies priority updates and deletions to a table.
func (s *Server) MutatePriorities(ctx context.Context, req *replayv1.MutatePrioritiesRequest) (*replayv1.MutatePrioritiesResponse, error) {
	t, err := s.registry.Get(req.Table)
	if err != nil {
		return nil, statusFromTableError(err)
	}

	updated, deleted, err := t.MutatePriorities(req.Updates, req.Deletes)
	if err != nil {
		return nil, statusFromTableError(err)
	}

	s.logger.Debug().
		Str("table", req.Table).
		Int("updated", updated).
		Int("deleted", deleted).
		Msg("Mutated priorities")

	return &replayv1.MutatePrioritiesResponse{
		Updated: int32(updated),
		Deleted: int32(deleted),
	}, nil
}

// GetTableInfo reports a table's configuration and counters.
func (s *Server) GetTableInfo(ctx context.Context, req *replayv1.GetTableInfoRequest) (*replayv1.GetTableInfoResponse, error) {
	t, err := s.registry.Get(req.Table)
	if err != nil {
		return nil, statusFromTableError(err)
	}

	stats := t.Stats()
	return &replayv1.GetTableInfoResponse{
		Info: &replayv1.TableInfo{
			Name:            stats.Name,
			CurrentSize:     int64(stats.CurrentSize),
			MaxSize:         int64(stats.MaxSize),
			MaxTimesSampled: int64(stats.MaxTimesSampled),
			Sampler:         stats.Sampler,
			Remover:         stats.Remover,
			MinSizeToSample: int64(stats.MinSizeToSample),
			TotalInserted:   stats.TotalInserted,
			TotalSampled:    stats.TotalSampled,
			TotalEvicted:    stats.TotalEvicted,
		},
	}, nil
}

// statusFromTableError maps table errors onto gRPC status codes.
func statusFromTableError(err error) error {
	switch {
	case errors.Is(err, table.ErrUnknownTable):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, table.ErrInvalidPriority):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, table.ErrTableClosed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
