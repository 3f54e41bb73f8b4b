package resident

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the DD-MM-YYYY layout used for record dates.
const DateLayout = "02-01-2006"

// Labels of the seven labelled record fields, in storage order. The name field
// comes first and carries no label.
var recordLabels = [...]string{
	"Room",
	"Phone",
	"Email",
	"Vaccinated",
	"Faculty",
	"Last Fet Date",
	"Last Collection Date",
}

const recordFields = len(recordLabels) + 1

// Date is an optional calendar date. The zero value means "not set".
type Date struct {
	t time.Time
}

// NewDate returns a set date for the given day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses DD-MM-YYYY or the not-set sentinel.
func ParseDate(s string) (Date, error) {
	if strings.EqualFold(s, Sentinel) {
		return Date{}, nil
	}
	if !datePattern.MatchString(s) {
		return Date{}, fmt.Errorf("%w: bad date %q", ErrFormat, s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad date %q", ErrFormat, s)
	}
	return Date{t: t}, nil
}

// IsSet reports whether the date carries a value.
func (d Date) IsSet() bool { return !d.t.IsZero() }

// Time returns the date at midnight UTC, or the zero time when not set.
func (d Date) Time() time.Time { return d.t }

func (d Date) String() string {
	if !d.IsSet() {
		return Sentinel
	}
	return d.t.Format(DateLayout)
}

// Record is the decoded form of one storage-form entry.
type Record struct {
	Name               string
	Room               string
	Phone              string
	Email              string
	Vaccinated         bool
	Faculty            string
	LastFetDate        Date
	LastCollectionDate Date
}

// String encodes the record in canonical storage syntax.
func (r Record) String() string {
	vacc := "F"
	if r.Vaccinated {
		vacc = "T"
	}
	return fmt.Sprintf("%s; Room: %s; Phone: %s; Email: %s; Vaccinated: %s; Faculty: %s; "+
		"Last Fet Date: %s; Last Collection Date: %s",
		r.Name, r.Room, r.Phone, r.Email, vacc, r.Faculty, r.LastFetDate, r.LastCollectionDate)
}

// Validate checks every field against the record grammar.
func (r Record) Validate() error {
	switch {
	case !IsName(r.Name):
		return fmt.Errorf("%w: bad name %q", ErrFormat, r.Name)
	case !IsRoom(r.Room):
		return fmt.Errorf("%w: bad room %q", ErrFormat, r.Room)
	case !IsPhone(r.Phone):
		return fmt.Errorf("%w: bad phone %q", ErrFormat, r.Phone)
	case !IsEmail(r.Email):
		return fmt.Errorf("%w: bad email %q", ErrFormat, r.Email)
	case !IsFaculty(r.Faculty):
		return fmt.Errorf("%w: bad faculty %q", ErrFormat, r.Faculty)
	}
	return nil
}

// SameResident reports whether two records describe the same person. Identity
// is the pair of room and name, compared without case.
func (r Record) SameResident(other Record) bool {
	return strings.EqualFold(r.Room, other.Room) && strings.EqualFold(r.Name, other.Name)
}

// DecodeRecord parses one serialized record.
func DecodeRecord(token string) (Record, error) {
	fields := strings.Split(token, ";")
	if len(fields) != recordFields {
		return Record{}, fmt.Errorf("%w: record has %d fields, want %d", ErrFormat, len(fields), recordFields)
	}

	var values [recordFields - 1]string
	for i, label := range recordLabels {
		key, value, ok := strings.Cut(fields[i+1], ":")
		if !ok || !sameLabel(key, label) {
			return Record{}, fmt.Errorf("%w: expected field %q, got %q", ErrFormat, label, strings.TrimSpace(fields[i+1]))
		}
		values[i] = strings.TrimSpace(value)
	}

	if !vaccPattern.MatchString(values[3]) {
		return Record{}, fmt.Errorf("%w: bad vaccination status %q", ErrFormat, values[3])
	}
	fet, err := ParseDate(values[5])
	if err != nil {
		return Record{}, err
	}
	collection, err := ParseDate(values[6])
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		Name:               strings.TrimSpace(fields[0]),
		Room:               values[0],
		Phone:              values[1],
		Email:              values[2],
		Vaccinated:         strings.EqualFold(values[3], "T"),
		Faculty:            values[4],
		LastFetDate:        fet,
		LastCollectionDate: collection,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// DecodeStorage parses a storage form. The sentinel yields no records.
func DecodeStorage(input string) ([]Record, error) {
	tokens, err := storageTokens(input)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(tokens))
	for _, token := range tokens {
		rec, err := DecodeRecord(token)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// EncodeStorage renders records in canonical storage form.
func EncodeStorage(records []Record) string {
	if len(records) == 0 {
		return Sentinel
	}
	parts := make([]string, len(records))
	for i, rec := range records {
		parts[i] = rec.String()
	}
	return strings.Join(parts, ", ")
}

// ValidateStorage returns nil when input is a well-formed storage form.
func ValidateStorage(input string) error {
	_, err := DecodeStorage(input)
	return err
}

// IsValidStorage reports whether input is a well-formed storage form.
func IsValidStorage(input string) bool {
	return ValidateStorage(input) == nil
}

func storageTokens(input string) ([]string, error) {
	if strings.TrimSpace(input) == Sentinel {
		return nil, nil
	}
	tokens, ok := splitTokens(input)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFormat, input)
	}
	return tokens, nil
}
