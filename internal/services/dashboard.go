package services

import (
	"context"
	"workshelf/internal/models"
)

type DashboardRepo interface {
	ListTabs(ctx context.Context) ([]*models.DashboardTab, error)
	ListTilesByTab(ctx context.Context, tabID int64) ([]*models.DashboardTile, error)
}

type DashboardService struct {
	repo DashboardRepo
}

func NewDashboardService(repo DashboardRepo) *DashboardService {
	return &DashboardService{repo: repo}
}

// Config собирает вкладки с плитками в один ответ, плитки группируются
// по ключу вкладки в порядке position.
func (s *DashboardService) Config(ctx context.Context) (*models.DashboardConfig, error) {
	tabs, err := s.repo.ListTabs(ctx)
	if err != nil {
		return nil, err
	}

	cfg := &models.DashboardConfig{
		Tabs:       make([]models.DashboardTabView, 0, len(tabs)),
		TilesByTab: make(map[string][]models.DashboardTileView, len(tabs)),
	}
	for _, tab := range tabs {
		cfg.Tabs = append(cfg.Tabs, models.DashboardTabView{
			Key:   tab.Key,
			Label: tab.Label,
			Icon:  tab.Icon,
		})
		tiles, err := s.repo.ListTilesByTab(ctx, tab.ID)
		if err != nil {
			return nil, err
		}
		views := make([]models.DashboardTileView, 0, len(tiles))
		for _, t := range tiles {
			views = append(views, models.DashboardTileView{
				Category:    t.Category,
				Description: t.Description,
				Icon:        t.Icon,
			})
		}
		cfg.TilesByTab[tab.Key] = views
	}
	return cfg, nil
}
