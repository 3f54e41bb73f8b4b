package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/safeforhall/internal/storage"
	pb "github.com/mmynk/safeforhall/pkg/proto"
	"github.com/mmynk/safeforhall/pkg/proto/protoconnect"
)

var _ protoconnect.PersonServiceHandler = (*PersonService)(nil)

// PersonService implements the Connect PersonService.
type PersonService struct {
	protoconnect.UnimplementedPersonServiceHandler
	store storage.Store
}

// NewPersonService creates a new PersonService with the given storage backend.
func NewPersonService(store storage.Store) *PersonService {
	return &PersonService{store: store}
}

// AddPerson registers a new resident.
func (s *PersonService) AddPerson(ctx context.Context, req *connect.Request[pb.AddPersonRequest]) (*connect.Response[pb.AddPersonResponse], error) {
	person, err := fromProtoPerson(req.Msg.Person)
	if err != nil {
		slog.Warn("AddPerson rejected", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	slog.Info("AddPerson request received", "name", person.Name, "room", person.Room)

	if err := s.store.CreatePerson(ctx, person); err != nil {
		if errors.Is(err, storage.ErrDuplicatePerson) {
			return nil, connect.NewError(connect.CodeAlreadyExists, err)
		}
		slog.Error("AddPerson failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Person added", "person_id", person.ID)
	return connect.NewResponse(&pb.AddPersonResponse{Person: toProtoPerson(*person)}), nil
}

// ListPersons returns every resident ordered by room.
func (s *PersonService) ListPersons(ctx context.Context, req *connect.Request[pb.ListPersonsRequest]) (*connect.Response[pb.ListPersonsResponse], error) {
	persons, err := s.store.ListPersons(ctx)
	if err != nil {
		slog.Error("ListPersons failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*pb.Person, len(persons))
	for i, p := range persons {
		out[i] = toProtoPerson(p)
	}
	slog.Info("ListPersons successful", "count", len(out))
	return connect.NewResponse(&pb.ListPersonsResponse{Persons: out}), nil
}

// ListPersonEvents returns the events the resident in the given room attends.
func (s *PersonService) ListPersonEvents(ctx context.Context, req *connect.Request[pb.ListPersonEventsRequest]) (*connect.Response[pb.ListPersonEventsResponse], error) {
	slog.Info("ListPersonEvents request received", "room", req.Msg.Room)

	person, err := s.store.FindPersonByRoom(ctx, req.Msg.Room)
	if errors.Is(err, storage.ErrPersonNotFound) {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if err != nil {
		slog.Error("ListPersonEvents failed", "room", req.Msg.Room, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	events, err := s.store.ListEvents(ctx)
	if err != nil {
		slog.Error("ListPersonEvents failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := []*pb.Event{}
	for _, e := range events {
		if e.HasResident(*person) {
			out = append(out, toProtoEvent(e))
		}
	}
	return connect.NewResponse(&pb.ListPersonEventsResponse{Events: out}), nil
}
