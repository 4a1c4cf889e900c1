package catalog

import "github.com/codr1/bizpulse/internal/models"

// NewStatic returns the compiled-in catalogue.
func NewStatic() *Memory {
	m, err := NewMemory(staticLocations())
	if err != nil {
		panic("static catalogue is invalid: " + err.Error())
	}
	return m
}

func week(mon, tue, wed, thu, fri, sat, sun float64) []models.DailyBooking {
	hours := []float64{mon, tue, wed, thu, fri, sat, sun}
	bookings := make([]models.DailyBooking, 0, models.DaysPerWeek)
	for i, day := range models.Weekdays() {
		bookings = append(bookings, models.DailyBooking{Day: day, Hours: hours[i]})
	}
	return bookings
}

func staticLocations() []models.Location {
	return []models.Location{
		{
			ID:            "1",
			Name:          "Downtown Hub",
			City:          "New York",
			TotalHours:    1250,
			Revenue:       models.PeriodMetrics{AllTime: 150000, LastWeek: 3200, LastMonth: 12500},
			HoursBooked:   models.PeriodMetrics{AllTime: 1250, LastWeek: 45, LastMonth: 180},
			DailyBookings: week(8, 12, 10, 15, 18, 22, 14),
		},
		{
			ID:            "2",
			Name:          "Westside Studio",
			City:          "Los Angeles",
			TotalHours:    980,
			Revenue:       models.PeriodMetrics{AllTime: 98000, LastWeek: 2100, LastMonth: 9200},
			HoursBooked:   models.PeriodMetrics{AllTime: 980, LastWeek: 30, LastMonth: 120},
			DailyBookings: week(6, 8, 12, 10, 14, 20, 18),
		},
		{
			ID:            "3",
			Name:          "North Point",
			City:          "Chicago",
			TotalHours:    850,
			Revenue:       models.PeriodMetrics{AllTime: 82000, LastWeek: 1800, LastMonth: 7500},
			HoursBooked:   models.PeriodMetrics{AllTime: 850, LastWeek: 25, LastMonth: 110},
			DailyBookings: week(5, 7, 8, 12, 15, 18, 10),
		},
		{
			ID:            "4",
			Name:          "Tech Park",
			City:          "San Francisco",
			TotalHours:    1100,
			Revenue:       models.PeriodMetrics{AllTime: 135000, LastWeek: 2900, LastMonth: 11000},
			HoursBooked:   models.PeriodMetrics{AllTime: 1100, LastWeek: 40, LastMonth: 160},
			DailyBookings: week(10, 14, 16, 14, 12, 8, 6),
		},
		{
			ID:            "5",
			Name:          "Harbor View",
			City:          "Seattle",
			TotalHours:    720,
			Revenue:       models.PeriodMetrics{AllTime: 65000, LastWeek: 1500, LastMonth: 6200},
			HoursBooked:   models.PeriodMetrics{AllTime: 720, LastWeek: 20, LastMonth: 95},
			DailyBookings: week(4, 6, 9, 11, 13, 16, 12),
		},
	}
}
