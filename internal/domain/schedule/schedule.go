package schedule

import (
	"time"

	"github.com/BruksfildServices01/agenda-pro/internal/domain/availability"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
)

const ClockLayout = "15:04"

// Weekday converte para a convenção da agenda: segunda = 0 ... domingo = 6.
func Weekday(date time.Time) int {
	return (int(date.Weekday()) + 6) % 7
}

func ValidWeekday(d int) bool {
	return d >= 0 && d <= 6
}

// ParseClock valida um horário de parede "HH:MM".
func ParseClock(hm string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, hm)
	if err != nil {
		return time.Time{}, httperr.ErrInvalid("invalid_time")
	}
	return t, nil
}

func ValidateWorkingHours(weekday int, start, end string) error {
	if !ValidWeekday(weekday) {
		return httperr.ErrInvalid("invalid_weekday")
	}

	s, err := ParseClock(start)
	if err != nil {
		return err
	}
	e, err := ParseClock(end)
	if err != nil {
		return err
	}

	if !s.Before(e) {
		return httperr.ErrInvalid("invalid_time_range")
	}
	return nil
}

// Combine ancora um horário de parede na data informada, no timezone da data.
func Combine(date time.Time, hm string) (time.Time, error) {
	t, err := ParseClock(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), nil
}

// Window devolve o expediente [start, end) do dia.
func Window(date time.Time, start, end string) (availability.Interval, error) {
	ws, err := Combine(date, start)
	if err != nil {
		return availability.Interval{}, err
	}
	we, err := Combine(date, end)
	if err != nil {
		return availability.Interval{}, err
	}
	return availability.Interval{Start: ws, End: we}, nil
}

// DayBounds devolve [00:00, 00:00 do dia seguinte) no timezone da data.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}

// ValidateBlock exige fim depois do início e início estritamente no futuro.
func ValidateBlock(start, end, now time.Time) error {
	if !(availability.Interval{Start: start, End: end}).Valid() {
		return httperr.ErrInvalid("invalid_time_range")
	}
	if !start.After(now) {
		return httperr.ErrInvalid("block_in_past")
	}
	return nil
}
