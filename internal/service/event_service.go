package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/safeforhall/internal/export"
	"github.com/mmynk/safeforhall/internal/membership"
	"github.com/mmynk/safeforhall/internal/metrics"
	"github.com/mmynk/safeforhall/internal/models"
	"github.com/mmynk/safeforhall/internal/resident"
	"github.com/mmynk/safeforhall/internal/storage"
	pb "github.com/mmynk/safeforhall/pkg/proto"
	"github.com/mmynk/safeforhall/pkg/proto/protoconnect"
)

var _ protoconnect.EventServiceHandler = (*EventService)(nil)

// EventService implements the Connect EventService.
type EventService struct {
	protoconnect.UnimplementedEventServiceHandler
	store   storage.Store
	metrics *metrics.Metrics
}

// NewEventService creates a new EventService with the given storage backend.
func NewEventService(store storage.Store, m *metrics.Metrics) *EventService {
	return &EventService{store: store, metrics: m}
}

// AddEvent creates an event with an empty resident list.
func (s *EventService) AddEvent(ctx context.Context, req *connect.Request[pb.AddEventRequest]) (*connect.Response[pb.AddEventResponse], error) {
	slog.Info("AddEvent request received", "name", req.Msg.Name, "capacity", req.Msg.Capacity)

	event := &models.Event{
		Name:      req.Msg.Name,
		Date:      req.Msg.Date,
		Time:      req.Msg.Time,
		Venue:     req.Msg.Venue,
		Capacity:  int(req.Msg.Capacity),
		Residents: resident.Empty(),
	}
	if err := validateSchedule(event); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateEvent(ctx, event); err != nil {
		slog.Error("AddEvent failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Event created", "event_id", event.ID)
	return connect.NewResponse(&pb.AddEventResponse{Event: toProtoEvent(*event)}), nil
}

func validateSchedule(event *models.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if _, err := time.Parse(resident.DateLayout, event.Date); err != nil {
		return fmt.Errorf("date must be DD-MM-YYYY, got %q", event.Date)
	}
	if _, err := time.Parse("1504", event.Time); err != nil {
		return fmt.Errorf("time must be HHMM, got %q", event.Time)
	}
	return nil
}

// ListEvents returns events in the order include indexes refer to.
func (s *EventService) ListEvents(ctx context.Context, req *connect.Request[pb.ListEventsRequest]) (*connect.Response[pb.ListEventsResponse], error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		slog.Error("ListEvents failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("ListEvents successful", "count", len(events))
	return connect.NewResponse(&pb.ListEventsResponse{Events: toProtoEvents(events)}), nil
}

// GetEvent returns an event with its residents decoded from the storage form.
func (s *EventService) GetEvent(ctx context.Context, req *connect.Request[pb.GetEventRequest]) (*connect.Response[pb.GetEventResponse], error) {
	event, err := s.getEvent(ctx, req.Msg.EventId)
	if err != nil {
		return nil, err
	}

	residents := make([]*pb.Resident, 0, event.Residents.Len())
	for _, rec := range event.Residents.Records() {
		residents = append(residents, toProtoResident(rec))
	}
	return connect.NewResponse(&pb.GetEventResponse{
		Event:     toProtoEvent(*event),
		Residents: residents,
	}), nil
}

// IncludeResidents runs the include command, e.g. args "1 r/A101, A102".
func (s *EventService) IncludeResidents(ctx context.Context, req *connect.Request[pb.IncludeResidentsRequest]) (*connect.Response[pb.IncludeResidentsResponse], error) {
	slog.Info("IncludeResidents request received", "args", req.Msg.Args)

	res, err := s.include(ctx, req.Msg.Args)
	added := 0
	if res != nil {
		added = len(res.Added)
	}
	s.metrics.ObserveInclude(added, err)
	if err != nil {
		cerr := includeError(err)
		if cerr.Code() == connect.CodeInternal {
			slog.Error("IncludeResidents failed", "args", req.Msg.Args, "error", err)
		}
		return nil, cerr
	}

	slog.Info("Residents included",
		"event_id", res.Event.ID,
		"added", added,
		"unvaccinated", res.Event.Residents.NumUnvaccinated(),
	)
	return connect.NewResponse(&pb.IncludeResidentsResponse{
		Message: res.Message,
		Event:   toProtoEvent(res.Event),
	}), nil
}

func (s *EventService) include(ctx context.Context, args string) (*membership.Result, error) {
	cmd, err := membership.ParseInclude(args)
	if err != nil {
		return nil, err
	}
	return cmd.Execute(ctx, s.store)
}

// ExportRoster renders the event's residents as an .xlsx workbook.
func (s *EventService) ExportRoster(ctx context.Context, req *connect.Request[pb.ExportRosterRequest]) (*connect.Response[pb.ExportRosterResponse], error) {
	event, err := s.getEvent(ctx, req.Msg.EventId)
	if err != nil {
		return nil, err
	}

	data, err := export.Roster(*event)
	if err != nil {
		slog.Error("ExportRoster failed", "event_id", event.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Roster exported", "event_id", event.ID, "residents", event.Residents.Len(), "bytes", len(data))
	return connect.NewResponse(&pb.ExportRosterResponse{
		Filename: export.RosterFilename(*event),
		Content:  data,
	}), nil
}

func (s *EventService) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.store.GetEvent(ctx, eventID)
	if errors.Is(err, storage.ErrEventNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		slog.Error("GetEvent failed", "event_id", eventID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	return event, nil
}
