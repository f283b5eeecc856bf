package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DayStartUTC retorna o início do dia (00:00:00) em UTC para a data informada.
// Todas as agregações diárias usam UTC como fuso de referência.
func DayStartUTC(date time.Time) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// DayIntervalUTC retorna o intervalo semiaberto [início do dia, início do dia seguinte)
func DayIntervalUTC(date time.Time) (time.Time, time.Time) {
	start := DayStartUTC(date)
	return start, start.AddDate(0, 0, 1)
}
