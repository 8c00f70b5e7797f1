package services

import (
	"context"
	"testing"
	"time"

	"workshelf/internal/models"
)

// Заглушка списка опыта для плитки профиля.
type stubExperienceLister struct {
	items []*models.Experience
}

func (s *stubExperienceLister) ListByProfile(_ context.Context, _ int64) ([]*models.Experience, error) {
	return s.items, nil
}

func tileDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tileDatePtr(y int, m time.Month, d int) *time.Time {
	t := tileDate(y, m, d)
	return &t
}

func newTileService(items []*models.Experience) *ProfileService {
	users := newMockUserRepo()
	users.profiles[1] = &models.Profile{ID: 10, UserID: 1, DisplayName: "Alex"}
	return NewProfileService(&mockProfileRepo{users: users}, &stubExperienceLister{items: items}, 1_500_000)
}

func TestProfileTile_ExperienceLabelYears(t *testing.T) {
	service := newTileService([]*models.Experience{
		{StartDate: tileDate(2018, time.January, 1), EndDate: tileDatePtr(2020, time.January, 1)},
	})

	tile, err := service.Tile(context.Background(), 1)
	if err != nil {
		t.Fatalf("ошибка сборки плитки: %v", err)
	}
	if tile.YearsTotal == nil || *tile.YearsTotal != 2.0 {
		t.Fatalf("ожидалось 2.0 года стажа, получено %v", tile.YearsTotal)
	}
	if tile.ExperienceLabel != "2.0 years" {
		t.Fatalf("ожидалась подпись %q, получено %q", "2.0 years", tile.ExperienceLabel)
	}
}

func TestProfileTile_ExperienceLabelMonths(t *testing.T) {
	service := newTileService([]*models.Experience{
		{StartDate: tileDate(2021, time.January, 1), EndDate: tileDatePtr(2021, time.August, 1)},
	})

	tile, err := service.Tile(context.Background(), 1)
	if err != nil {
		t.Fatalf("ошибка сборки плитки: %v", err)
	}
	if tile.ExperienceLabel != "7 mo" {
		t.Fatalf("ожидалась подпись %q, получено %q", "7 mo", tile.ExperienceLabel)
	}
}

func TestProfileTile_ExperienceLabelEmpty(t *testing.T) {
	service := newTileService(nil)

	tile, err := service.Tile(context.Background(), 1)
	if err != nil {
		t.Fatalf("ошибка сборки плитки: %v", err)
	}
	if tile.YearsTotal != nil {
		t.Fatalf("без опыта суммарный стаж не заполняется, получено %v", *tile.YearsTotal)
	}
	if tile.ExperienceLabel != "0 years" {
		t.Fatalf("ожидалась подпись %q, получено %q", "0 years", tile.ExperienceLabel)
	}
}
