package utils

import (
	"testing"
	"time"

	"workshelf/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestTotalExperienceMonths_Overlap(t *testing.T) {
	// Два пересекающихся периода должны склеиться в один.
	exps := []models.Experience{
		{StartDate: date(2020, 1, 1), EndDate: datePtr(2020, 6, 1)},
		{StartDate: date(2020, 3, 1), EndDate: datePtr(2020, 12, 1)},
	}

	got := TotalExperienceMonths(exps, date(2024, 1, 1))
	if got != 11 {
		t.Fatalf("пересекающиеся периоды: ожидалось 11 месяцев, получено %d", got)
	}
}

func TestTotalExperienceMonths_DisjointWithOngoing(t *testing.T) {
	// Раздельные периоды складываются, открытый закрывается на now.
	now := date(2022, 1, 1)
	exps := []models.Experience{
		{StartDate: date(2019, 1, 1), EndDate: datePtr(2020, 1, 1)},
		{StartDate: date(2021, 1, 1), IsCurrent: true},
	}

	got := TotalExperienceMonths(exps, now)
	if got != 24 {
		t.Fatalf("раздельные периоды: ожидалось 24 месяца, получено %d", got)
	}
}

func TestTotalExperienceMonths_PartialMonth(t *testing.T) {
	// Неполный последний месяц не засчитывается.
	exps := []models.Experience{
		{StartDate: date(2020, 1, 15), EndDate: datePtr(2020, 3, 10)},
	}

	got := TotalExperienceMonths(exps, date(2024, 1, 1))
	if got != 1 {
		t.Fatalf("неполный месяц: ожидался 1 месяц, получено %d", got)
	}
}

func TestTotalExperienceMonths_SingleShortStint(t *testing.T) {
	exps := []models.Experience{
		{StartDate: date(2020, 5, 1), EndDate: datePtr(2020, 5, 20)},
	}

	if got := TotalExperienceMonths(exps, date(2024, 1, 1)); got != 0 {
		t.Fatalf("короткий период внутри месяца: ожидалось 0, получено %d", got)
	}
}

func TestTotalExperienceMonths_TouchingRanges(t *testing.T) {
	// Смежные периоды (конец == начало) не создают разрыв.
	exps := []models.Experience{
		{StartDate: date(2020, 1, 1), EndDate: datePtr(2020, 6, 1)},
		{StartDate: date(2020, 6, 1), EndDate: datePtr(2021, 1, 1)},
	}

	if got := TotalExperienceMonths(exps, date(2024, 1, 1)); got != 12 {
		t.Fatalf("смежные периоды: ожидалось 12 месяцев, получено %d", got)
	}
}

func TestTotalExperienceMonths_NestedRange(t *testing.T) {
	// Вложенный период ничего не добавляет.
	exps := []models.Experience{
		{StartDate: date(2018, 1, 1), EndDate: datePtr(2020, 1, 1)},
		{StartDate: date(2018, 6, 1), EndDate: datePtr(2019, 6, 1)},
	}

	if got := TotalExperienceMonths(exps, date(2024, 1, 1)); got != 24 {
		t.Fatalf("вложенный период: ожидалось 24 месяца, получено %d", got)
	}
}

func TestTotalExperienceMonths_SwappedDates(t *testing.T) {
	// Перепутанные даты меняются местами, а не ломают расчёт.
	exps := []models.Experience{
		{StartDate: date(2021, 1, 1), EndDate: datePtr(2020, 1, 1)},
	}

	if got := TotalExperienceMonths(exps, date(2024, 1, 1)); got != 12 {
		t.Fatalf("перепутанные даты: ожидалось 12 месяцев, получено %d", got)
	}
}

func TestTotalExperienceMonths_Empty(t *testing.T) {
	if got := TotalExperienceMonths(nil, date(2024, 1, 1)); got != 0 {
		t.Fatalf("пустой список: ожидалось 0, получено %d", got)
	}
	// Записи без даты начала пропускаются.
	exps := []models.Experience{{EndDate: datePtr(2020, 1, 1)}}
	if got := TotalExperienceMonths(exps, date(2024, 1, 1)); got != 0 {
		t.Fatalf("запись без даты начала: ожидалось 0, получено %d", got)
	}
}

func TestFormatExperienceLabel(t *testing.T) {
	cases := []struct {
		months int
		want   string
	}{
		{0, "0 years"},
		{7, "7 mo"},
		{29, "2.4 years"},
		{144, "12 years"},
	}
	for _, c := range cases {
		if got := FormatExperienceLabel(c.months, "years"); got != c.want {
			t.Errorf("FormatExperienceLabel(%d) = %q, ожидалось %q", c.months, got, c.want)
		}
	}
}
