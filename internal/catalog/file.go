package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/codr1/bizpulse/internal/models"
)

type fileDocument struct {
	Locations []locationDoc `yaml:"locations"`
}

type periodDoc struct {
	AllTime   float64 `yaml:"all_time"`
	LastWeek  float64 `yaml:"last_week"`
	LastMonth float64 `yaml:"last_month"`
}

type dailyBookingDoc struct {
	Day   string  `yaml:"day"`
	Hours float64 `yaml:"hours"`
}

type locationDoc struct {
	ID            string            `yaml:"id"`
	Name          string            `yaml:"name"`
	City          string            `yaml:"city"`
	TotalHours    float64           `yaml:"total_hours"`
	Revenue       periodDoc         `yaml:"revenue"`
	HoursBooked   periodDoc         `yaml:"hours_booked"`
	DailyBookings []dailyBookingDoc `yaml:"daily_bookings"`
}

// LoadFile reads a YAML catalogue from path.
func LoadFile(path string) (*Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading catalog file: %w", err)
	}
	m, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return m, nil
}

// Decode parses a YAML catalogue and validates it.
func Decode(r io.Reader) (*Memory, error) {
	var doc fileDocument
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("error parsing catalog: %w", err)
	}

	locations := make([]models.Location, 0, len(doc.Locations))
	for _, entry := range doc.Locations {
		loc, err := entry.toModel()
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}
	return NewMemory(locations)
}

// Encode writes locations in the format Decode reads.
func Encode(w io.Writer, locations []models.Location) error {
	doc := fileDocument{Locations: make([]locationDoc, 0, len(locations))}
	for _, loc := range locations {
		doc.Locations = append(doc.Locations, locationDocFromModel(loc))
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("error encoding catalog: %w", err)
	}
	return encoder.Close()
}

func (d locationDoc) toModel() (models.Location, error) {
	bookings := make([]models.DailyBooking, 0, len(d.DailyBookings))
	for _, booking := range d.DailyBookings {
		day, ok := models.ParseWeekday(booking.Day)
		if !ok {
			return models.Location{}, fmt.Errorf("location %s: unknown weekday %q", d.ID, booking.Day)
		}
		bookings = append(bookings, models.DailyBooking{Day: day, Hours: booking.Hours})
	}

	return models.Location{
		ID:            d.ID,
		Name:          d.Name,
		City:          d.City,
		TotalHours:    d.TotalHours,
		Revenue:       models.PeriodMetrics(d.Revenue),
		HoursBooked:   models.PeriodMetrics(d.HoursBooked),
		DailyBookings: bookings,
	}, nil
}

func locationDocFromModel(loc models.Location) locationDoc {
	bookings := make([]dailyBookingDoc, 0, len(loc.DailyBookings))
	for _, booking := range loc.DailyBookings {
		bookings = append(bookings, dailyBookingDoc{Day: booking.Day.String(), Hours: booking.Hours})
	}
	return locationDoc{
		ID:            loc.ID,
		Name:          loc.Name,
		City:          loc.City,
		TotalHours:    loc.TotalHours,
		Revenue:       periodDoc(loc.Revenue),
		HoursBooked:   periodDoc(loc.HoursBooked),
		DailyBookings: bookings,
	}
}
