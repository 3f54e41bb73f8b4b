package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/safeforhall/internal/metrics"
	pb "github.com/mmynk/safeforhall/pkg/proto"
)

type callKey struct{}

// call collects what inner interceptors learn about an RPC so the logging
// interceptor, which runs outermost, can report it.
type call struct {
	operatorID string
}

func noteOperator(ctx context.Context, userID string) {
	if c, ok := ctx.Value(callKey{}).(*call); ok {
		c.operatorID = userID
	}
}

// LoggingInterceptor returns a Connect interceptor that logs every RPC with its
// procedure, operator, duration and the event or resident it touched. Include
// commands also carry their outcome label.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			c := &call{}
			ctx = context.WithValue(ctx, callKey{}, c)

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if c.operatorID != "" {
				attrs = append(attrs, "operator_id", c.operatorID)
			}
			attrs = append(attrs, requestAttrs(req.Any())...)
			if err == nil {
				attrs = append(attrs, responseAttrs(resp.Any())...)
			}
			if _, ok := req.Any().(*pb.IncludeResidentsRequest); ok && connect.CodeOf(err) != connect.CodeUnauthenticated {
				attrs = append(attrs, "outcome", metrics.IncludeOutcome(err))
			}

			if err == nil {
				logger.Info("Call completed", attrs...)
				return resp, nil
			}
			var connectErr *connect.Error
			if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal {
				attrs = append(attrs, "code", connectErr.Code().String(), "error", connectErr.Message())
				logger.Warn("Call rejected", attrs...)
			} else {
				attrs = append(attrs, "error", err)
				logger.Error("Call failed", attrs...)
			}
			return resp, err
		}
	}
}

func requestAttrs(msg any) []any {
	switch m := msg.(type) {
	case *pb.IncludeResidentsRequest:
		return []any{"args", m.Args}
	case *pb.GetEventRequest:
		return []any{"event_id", m.EventId}
	case *pb.ExportRosterRequest:
		return []any{"event_id", m.EventId}
	case *pb.ListPersonEventsRequest:
		return []any{"room", m.Room}
	case *pb.AddPersonRequest:
		return []any{"room", m.GetPerson().GetRoom()}
	}
	return nil
}

func responseAttrs(msg any) []any {
	switch m := msg.(type) {
	case *pb.IncludeResidentsResponse:
		return []any{"event_id", m.GetEvent().GetId(), "residents", m.GetEvent().GetResidentCount()}
	case *pb.AddEventResponse:
		return []any{"event_id", m.GetEvent().GetId()}
	case *pb.AddPersonResponse:
		return []any{"person_id", m.GetPerson().GetId()}
	case *pb.ListEventsResponse:
		return []any{"events", len(m.Events)}
	}
	return nil
}
