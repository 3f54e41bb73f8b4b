package service

import (
	"errors"

	"github.com/mmynk/safeforhall/internal/models"
	"github.com/mmynk/safeforhall/internal/resident"
	pb "github.com/mmynk/safeforhall/pkg/proto"
)

func toProtoPerson(p models.Person) *pb.Person {
	return &pb.Person{
		Id:                 p.ID,
		Name:               p.Name,
		Room:               p.Room,
		Phone:              p.Phone,
		Email:              p.Email,
		Vaccinated:         p.Vaccinated,
		Faculty:            p.Faculty,
		LastFetDate:        p.LastFetDate.String(),
		LastCollectionDate: p.LastCollectionDate.String(),
		CreatedAt:          p.CreatedAt,
	}
}

func toProtoResident(rec resident.Record) *pb.Resident {
	return &pb.Resident{
		Name:               rec.Name,
		Room:               rec.Room,
		Phone:              rec.Phone,
		Email:              rec.Email,
		Vaccinated:         rec.Vaccinated,
		Faculty:            rec.Faculty,
		LastFetDate:        rec.LastFetDate.String(),
		LastCollectionDate: rec.LastCollectionDate.String(),
	}
}

// fromProtoPerson converts and validates a person from a request. Empty dates
// mean "not set".
func fromProtoPerson(p *pb.Person) (*models.Person, error) {
	if p == nil {
		return nil, errors.New("person is required")
	}
	fet, err := optionalDate(p.LastFetDate)
	if err != nil {
		return nil, err
	}
	collection, err := optionalDate(p.LastCollectionDate)
	if err != nil {
		return nil, err
	}

	person := &models.Person{
		Name:               p.Name,
		Room:               p.Room,
		Phone:              p.Phone,
		Email:              p.Email,
		Vaccinated:         p.Vaccinated,
		Faculty:            p.Faculty,
		LastFetDate:        fet,
		LastCollectionDate: collection,
	}
	if err := person.Validate(); err != nil {
		return nil, err
	}
	return person, nil
}

func optionalDate(s string) (resident.Date, error) {
	if s == "" {
		return resident.Date{}, nil
	}
	return resident.ParseDate(s)
}

func toProtoEvent(e models.Event) *pb.Event {
	return &pb.Event{
		Id:                e.ID,
		Name:              e.Name,
		Date:              e.Date,
		Time:              e.Time,
		Venue:             e.Venue,
		Capacity:          int32(e.Capacity),
		ResidentsDisplay:  e.Residents.Display(),
		ResidentsStorage:  e.Residents.Storage(),
		ResidentCount:     int32(e.Residents.Len()),
		UnvaccinatedCount: int32(e.Residents.NumUnvaccinated()),
		CreatedAt:         e.CreatedAt,
	}
}

func toProtoEvents(events []models.Event) []*pb.Event {
	out := make([]*pb.Event, len(events))
	for i, e := range events {
		out[i] = toProtoEvent(e)
	}
	return out
}
