package models

import (
	"fmt"
	"sort"
	"strings"
)

// Weekday is a day of the booking week. The zero value is Monday.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const DaysPerWeek = 7

var weekdayLabels = [DaysPerWeek]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var weekdayNames = [DaysPerWeek]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Weekdays returns the days in Monday-first order.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

// String returns the short label ("Mon").
func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayLabels[d]
}

// Name returns the full English name ("Monday").
func (d Weekday) Name() string {
	if !d.Valid() {
		return d.String()
	}
	return weekdayNames[d]
}

// ParseWeekday accepts short labels and full names, case-insensitively.
func ParseWeekday(value string) (Weekday, bool) {
	value = strings.TrimSpace(value)
	for i := range weekdayLabels {
		if strings.EqualFold(value, weekdayLabels[i]) || strings.EqualFold(value, weekdayNames[i]) {
			return Weekday(i), true
		}
	}
	return 0, false
}

// PeriodMetrics holds one metric over the three reporting periods.
type PeriodMetrics struct {
	AllTime   float64
	LastWeek  float64
	LastMonth float64
}

type DailyBooking struct {
	Day   Weekday
	Hours float64
}

// Location is a bookable site. TotalHours is stored as reported and is not
// derived from DailyBookings.
type Location struct {
	ID            string
	Name          string
	City          string
	TotalHours    float64
	Revenue       PeriodMetrics
	HoursBooked   PeriodMetrics
	DailyBookings []DailyBooking
}

// Validate checks the shape invariants: an id, a name, and exactly seven
// non-negative daily bookings in Monday-first order.
func (l Location) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("location %s: name is required", l.ID)
	}
	if l.TotalHours < 0 {
		return fmt.Errorf("location %s: total hours must not be negative", l.ID)
	}
	if len(l.DailyBookings) != DaysPerWeek {
		return fmt.Errorf("location %s: expected %d daily bookings, got %d", l.ID, DaysPerWeek, len(l.DailyBookings))
	}
	for i, booking := range l.DailyBookings {
		if booking.Day != Weekday(i) {
			return fmt.Errorf("location %s: daily booking %d is %s, want %s", l.ID, i, booking.Day, Weekday(i))
		}
		if booking.Hours < 0 {
			return fmt.Errorf("location %s: %s hours must not be negative", l.ID, booking.Day)
		}
	}
	return nil
}

// WeeklyHours sums the daily bookings.
func (l Location) WeeklyHours() float64 {
	total := 0.0
	for _, booking := range l.DailyBookings {
		total += booking.Hours
	}
	return total
}

// Clone returns a deep copy.
func (l Location) Clone() Location {
	cloned := l
	if l.DailyBookings != nil {
		cloned.DailyBookings = make([]DailyBooking, len(l.DailyBookings))
		copy(cloned.DailyBookings, l.DailyBookings)
	}
	return cloned
}

type SortOrder string

const (
	SortDescending SortOrder = "desc"
	SortAscending  SortOrder = "asc"
)

// ParseSortOrder maps an empty value to SortDescending.
func ParseSortOrder(raw string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortDescending:
		return SortDescending, nil
	case SortAscending:
		return SortAscending, nil
	default:
		return "", fmt.Errorf("invalid sort order %q", raw)
	}
}

func (o SortOrder) Label() string {
	if o == SortAscending {
		return "Lowest Hours First"
	}
	return "Highest Hours First"
}

// SortByTotalHours returns a sorted copy of locations; the input is untouched.
func SortByTotalHours(locations []Location, order SortOrder) []Location {
	sorted := make([]Location, len(locations))
	copy(sorted, locations)
	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortAscending {
			return sorted[i].TotalHours < sorted[j].TotalHours
		}
		return sorted[i].TotalHours > sorted[j].TotalHours
	})
	return sorted
}
