package models

type DashboardTab struct {
	ID       int64   `json:"id"`
	Key      string  `json:"key"`
	Label    string  `json:"label"`
	Icon     *string `json:"icon"`
	Position int     `json:"order"`
}

type DashboardTile struct {
	ID          int64   `json:"id"`
	TabID       int64   `json:"tab_id"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
	Position    int     `json:"order"`
}

type DashboardTabView struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Icon  *string `json:"icon"`
}

type DashboardTileView struct {
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
}

// DashboardConfig — конфигурация вкладок и плиток дашборда.
type DashboardConfig struct {
	Tabs       []DashboardTabView             `json:"tabs"`
	TilesByTab map[string][]DashboardTileView `json:"tiles_by_tab"`
}
