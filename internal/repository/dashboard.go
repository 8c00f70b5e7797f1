package repository

import (
	"context"
	"workshelf/internal/logger"
	"workshelf/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DashboardRepository struct {
	db *pgxpool.Pool
}

func NewDashboardRepository(db *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) ListTabs(ctx context.Context) ([]*models.DashboardTab, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, key, label, icon, position
		FROM dashboard_tabs
		ORDER BY position ASC
	`)
	if err != nil {
		logger.Log.Error("Ошибка выборки вкладок дашборда (repo)", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var out []*models.DashboardTab
	for rows.Next() {
		var t models.DashboardTab
		if err := rows.Scan(&t.ID, &t.Key, &t.Label, &t.Icon, &t.Position); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *DashboardRepository) ListTilesByTab(ctx context.Context, tabID int64) ([]*models.DashboardTile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, tab_id, category, description, icon, position
		FROM dashboard_tiles
		WHERE tab_id = $1
		ORDER BY position ASC
	`, tabID)
	if err != nil {
		logger.Log.Error("Ошибка выборки плиток дашборда (repo)", zap.Error(err), zap.Int64("tab_id", tabID))
		return nil, err
	}
	defer rows.Close()

	var out []*models.DashboardTile
	for rows.Next() {
		var t models.DashboardTile
		if err := rows.Scan(&t.ID, &t.TabID, &t.Category, &t.Description, &t.Icon, &t.Position); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}
