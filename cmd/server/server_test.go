package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mmynk/safeforhall/internal/config"
	"github.com/mmynk/safeforhall/internal/storage/sqlite"
	pb "github.com/mmynk/safeforhall/pkg/proto"
	"github.com/mmynk/safeforhall/pkg/proto/protoconnect"
)

func setupServer(t *testing.T, requireAuth bool) *httptest.Server {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "hall.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	cfg := config.Default()
	cfg.RequireAuth = requireAuth
	cfg.JWTSecret = "test-secret"
	cfg.TokenTTL = time.Hour

	server := httptest.NewServer(newHandler(cfg, store, prometheus.NewRegistry()))
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})
	return server
}

func bearer(token string) connect.ClientOption {
	return connect.WithInterceptors(connect.UnaryInterceptorFunc(func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}))
}

func TestRequireAuth(t *testing.T) {
	server := setupServer(t, true)
	ctx := context.Background()

	events := protoconnect.NewEventServiceClient(http.DefaultClient, server.URL)
	_, err := events.ListEvents(ctx, connect.NewRequest(&pb.ListEventsRequest{}))
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) || connectErr.Code() != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated without token, got %v", err)
	}

	authClient := protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL)
	reg, err := authClient.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Email:       "warden@example.com",
		DisplayName: "Warden",
		Password:    "correct horse",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	login, err := authClient.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email:    "Warden@Example.com",
		Password: "correct horse",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Msg.User.Id != reg.Msg.User.Id {
		t.Errorf("login returned user %s, want %s", login.Msg.User.Id, reg.Msg.User.Id)
	}

	authed := protoconnect.NewEventServiceClient(http.DefaultClient, server.URL, bearer(login.Msg.Token))
	if _, err := authed.ListEvents(ctx, connect.NewRequest(&pb.ListEventsRequest{})); err != nil {
		t.Fatalf("ListEvents with token failed: %v", err)
	}

	forged := protoconnect.NewEventServiceClient(http.DefaultClient, server.URL, bearer(login.Msg.Token+"x"))
	_, err = forged.ListEvents(ctx, connect.NewRequest(&pb.ListEventsRequest{}))
	if !errors.As(err, &connectErr) || connectErr.Code() != connect.CodeUnauthenticated {
		t.Errorf("expected Unauthenticated for bad signature, got %v", err)
	}
}

func TestRejectedCallsAreCounted(t *testing.T) {
	server := setupServer(t, true)

	events := protoconnect.NewEventServiceClient(http.DefaultClient, server.URL)
	_, err := events.IncludeResidents(context.Background(), connect.NewRequest(&pb.IncludeResidentsRequest{Args: "1 r/E417"}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated without token, got %v", err)
	}

	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read metrics: %v", err)
	}

	want := `safeforhall_rpc_duration_seconds_count{code="unauthenticated",procedure="/safeforhall.v1.EventService/IncludeResidents"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("metrics output missing %q", want)
	}
	if strings.Contains(string(body), `safeforhall_include_commands_total{`) {
		t.Error("rejected call must not be counted as an include command")
	}
}

func TestOpenServerAndMetrics(t *testing.T) {
	server := setupServer(t, false)
	ctx := context.Background()

	persons := protoconnect.NewPersonServiceClient(http.DefaultClient, server.URL)
	events := protoconnect.NewEventServiceClient(http.DefaultClient, server.URL)

	_, err := persons.AddPerson(ctx, connect.NewRequest(&pb.AddPersonRequest{Person: &pb.Person{
		Name: "Alex Yeoh", Room: "E417", Phone: "87438807", Email: "alexyeoh@example.com", Faculty: "SOC",
	}}))
	if err != nil {
		t.Fatalf("AddPerson failed: %v", err)
	}
	_, err = events.AddEvent(ctx, connect.NewRequest(&pb.AddEventRequest{
		Name: "Movie Night", Date: "20-10-2021", Time: "2000", Venue: "Lounge", Capacity: 2,
	}))
	if err != nil {
		t.Fatalf("AddEvent failed: %v", err)
	}
	if _, err := events.IncludeResidents(ctx, connect.NewRequest(&pb.IncludeResidentsRequest{Args: "1 r/E417"})); err != nil {
		t.Fatalf("IncludeResidents failed: %v", err)
	}

	resp, err := http.Get(server.URL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read metrics: %v", err)
	}

	for _, want := range []string{
		`safeforhall_include_commands_total{outcome="ok"} 1`,
		`safeforhall_residents_included_total 1`,
		`safeforhall_rpc_duration_seconds_count{code="ok",procedure="/safeforhall.v1.EventService/IncludeResidents"} 1`,
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestCORSPreflight(t *testing.T) {
	server := setupServer(t, false)

	req, err := http.NewRequest(http.MethodOptions, server.URL+"/"+protoconnect.EventServiceName+"/ListEvents", nil)
	if err != nil {
		t.Fatalf("NewRequest failed: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("OPTIONS failed: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Access-Control-Allow-Headers"), "Authorization") {
		t.Error("expected Authorization in allowed headers")
	}
}
