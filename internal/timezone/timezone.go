package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolve o timezone informado, caindo no padrão quando inválido.
func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDateIn interpreta "YYYY-MM-DD" como meia-noite no timezone informado.
func ParseDateIn(tz, date string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", date, Location(tz))
}

// ParseDateTimeIn aceita RFC3339 ou "YYYY-MM-DD HH:MM" (hora local do timezone).
func ParseDateTimeIn(tz, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(Location(tz)), nil
	}
	return time.ParseInLocation("2006-01-02 15:04", value, Location(tz))
}
