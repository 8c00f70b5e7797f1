package utils

import (
	"fmt"
	"sort"
	"time"

	"workshelf/internal/models"
)

type interval struct {
	start time.Time
	end   time.Time
}

// TotalExperienceMonths считает суммарный стаж в полных календарных месяцах.
// Пересекающиеся и смежные периоды склеиваются, чтобы параллельные работы
// не считались дважды. Для текущих позиций (end_date == nil) берётся now.
func TotalExperienceMonths(exps []models.Experience, now time.Time) int {
	ranges := make([]interval, 0, len(exps))
	for _, e := range exps {
		if e.StartDate.IsZero() {
			continue
		}
		end := now
		if e.EndDate != nil && !e.EndDate.IsZero() {
			end = *e.EndDate
		}
		start := e.StartDate
		// Защита от кривых данных: start позже end — меняем местами.
		if end.Before(start) {
			start, end = end, start
		}
		ranges = append(ranges, interval{start: start, end: end})
	}

	if len(ranges) == 0 {
		return 0
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].start.Before(ranges[j].start)
	})

	merged := make([]interval, 0, len(ranges))
	merged = append(merged, ranges[0])
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if !r.start.After(last.end) {
			if r.end.After(last.end) {
				last.end = r.end
			}
			continue
		}
		merged = append(merged, r)
	}

	total := 0
	for _, m := range merged {
		months := (m.end.Year()-m.start.Year())*12 + int(m.end.Month()) - int(m.start.Month())
		if m.end.Day() < m.start.Day() {
			months--
		}
		if months > 0 {
			total += months
		}
	}
	return total
}

// FormatExperienceLabel — текст для плитки: "7 mo", "2.4 years", "12 years".
func FormatExperienceLabel(totalMonths int, yearsLabel string) string {
	if totalMonths <= 0 {
		return "0 " + yearsLabel
	}
	if totalMonths < 12 {
		return fmt.Sprintf("%d mo", totalMonths)
	}
	years := float64(totalMonths) / 12
	if years < 10 {
		return fmt.Sprintf("%.1f %s", years, yearsLabel)
	}
	return fmt.Sprintf("%.0f %s", years, yearsLabel)
}
