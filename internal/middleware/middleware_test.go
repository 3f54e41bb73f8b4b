package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mmynk/safeforhall/internal/auth"
	"github.com/mmynk/safeforhall/internal/membership"
	"github.com/mmynk/safeforhall/internal/metrics"
	"github.com/mmynk/safeforhall/internal/models"
	pb "github.com/mmynk/safeforhall/pkg/proto"
	"github.com/mmynk/safeforhall/pkg/proto/protoconnect"
)

// stubEvents answers IncludeResidents with a fixed event, or with err when set.
type stubEvents struct {
	protoconnect.UnimplementedEventServiceHandler
	err error
}

func (s *stubEvents) IncludeResidents(ctx context.Context, req *connect.Request[pb.IncludeResidentsRequest]) (*connect.Response[pb.IncludeResidentsResponse], error) {
	if s.err != nil {
		return nil, s.err
	}
	return connect.NewResponse(&pb.IncludeResidentsResponse{
		Message: "Alex Yeoh added to event Movie Night",
		Event:   &pb.Event{Id: "event-1", ResidentCount: 1},
	}), nil
}

type harness struct {
	client  protoconnect.EventServiceClient
	logs    *bytes.Buffer
	metrics *metrics.Metrics
	jwt     *auth.JWTManager
}

func newHarness(t *testing.T, svc *stubEvents) harness {
	t.Helper()

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, nil))
	m := metrics.New(prometheus.NewRegistry())
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)

	path, handler := protoconnect.NewEventServiceHandler(svc, connect.WithInterceptors(
		LoggingInterceptor(logger),
		MetricsInterceptor(m),
		RequireAuth(jwtManager),
	))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return harness{
		client:  protoconnect.NewEventServiceClient(http.DefaultClient, server.URL),
		logs:    logs,
		metrics: m,
		jwt:     jwtManager,
	}
}

func (h harness) include(t *testing.T, token string) error {
	t.Helper()
	req := connect.NewRequest(&pb.IncludeResidentsRequest{Args: "1 r/E417"})
	if token != "" {
		req.Header().Set("Authorization", "Bearer "+token)
	}
	_, err := h.client.IncludeResidents(context.Background(), req)
	return err
}

func (h harness) token(t *testing.T) (string, string) {
	t.Helper()
	user := models.NewUser("warden@example.com", "Warden", "hash")
	token, err := h.jwt.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return token, user.ID
}

// lastEntry decodes the most recent JSON log line.
func (h harness) lastEntry(t *testing.T) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(h.logs.String()), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("failed to decode log line %q: %v", lines[len(lines)-1], err)
	}
	return entry
}

func expectField(t *testing.T, entry map[string]any, key string, want any) {
	t.Helper()
	if got := fmt.Sprint(entry[key]); got != fmt.Sprint(want) {
		t.Errorf("log field %s = %q, want %q", key, got, fmt.Sprint(want))
	}
}

func TestLoggingInterceptor_IncludeCompleted(t *testing.T) {
	h := newHarness(t, &stubEvents{})
	token, userID := h.token(t)

	if err := h.include(t, token); err != nil {
		t.Fatalf("IncludeResidents failed: %v", err)
	}

	entry := h.lastEntry(t)
	expectField(t, entry, "level", "INFO")
	expectField(t, entry, "msg", "Call completed")
	expectField(t, entry, "procedure", protoconnect.EventServiceIncludeResidentsProcedure)
	expectField(t, entry, "operator_id", userID)
	expectField(t, entry, "args", "1 r/E417")
	expectField(t, entry, "event_id", "event-1")
	expectField(t, entry, "residents", 1)
	expectField(t, entry, "outcome", metrics.OutcomeOK)
}

func TestLoggingInterceptor_IncludeRejected(t *testing.T) {
	h := newHarness(t, &stubEvents{
		err: connect.NewError(connect.CodeFailedPrecondition, membership.ErrCapacityExceeded),
	})
	token, _ := h.token(t)

	if err := h.include(t, token); connect.CodeOf(err) != connect.CodeFailedPrecondition {
		t.Fatalf("expected FailedPrecondition, got %v", err)
	}

	entry := h.lastEntry(t)
	expectField(t, entry, "level", "WARN")
	expectField(t, entry, "msg", "Call rejected")
	expectField(t, entry, "code", "failed_precondition")
	expectField(t, entry, "outcome", metrics.OutcomeCapacity)
	if _, ok := entry["event_id"]; ok {
		t.Error("rejected include must not log an event id")
	}
}

func TestUnauthenticatedCallsAreLoggedAndCounted(t *testing.T) {
	h := newHarness(t, &stubEvents{})

	if err := h.include(t, ""); connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}

	entry := h.lastEntry(t)
	expectField(t, entry, "msg", "Call rejected")
	expectField(t, entry, "code", "unauthenticated")
	if _, ok := entry["operator_id"]; ok {
		t.Error("unauthenticated call must not carry an operator")
	}
	if _, ok := entry["outcome"]; ok {
		t.Error("unauthenticated include never ran, so it has no outcome")
	}

	count := testutil.CollectAndCount(h.metrics.RPCDuration)
	if count != 1 {
		t.Fatalf("expected 1 latency series, got %d", count)
	}
	if n := testutil.ToFloat64(h.metrics.Includes.WithLabelValues(metrics.OutcomeOK)); n != 0 {
		t.Errorf("unauthenticated call must not count as an include, got %v", n)
	}
}
