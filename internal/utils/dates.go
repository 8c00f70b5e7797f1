package utils

import (
	"errors"
	"math"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
}

// ParseDate принимает ISO-дату с временем или без ("2006-01-02").
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("пустая дата")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New("неверный формат даты: " + s)
}

// ParseDatePtr — как ParseDate, но для опционального поля.
func ParseDatePtr(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// YearsBetween — количество лет с одним знаком после запятой (для плиток).
func YearsBetween(from *time.Time, to time.Time) *float64 {
	if from == nil || from.IsZero() {
		return nil
	}
	years := to.Sub(*from).Hours() / 24 / 365.2425
	v := math.Round(years*10) / 10
	return &v
}
