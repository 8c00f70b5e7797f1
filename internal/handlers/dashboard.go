package handlers

import (
	"net/http"

	"workshelf/internal/logger"
	"workshelf/internal/services"
	helpers "workshelf/internal/utils/helpers"

	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Config godoc
// @Summary Конфигурация вкладок и плиток дашборда
// @Tags dashboard
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.DashboardConfig
// @Router /api/dashboard [get]
func (h *DashboardHandler) Config(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.dashboardService.Config(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка чтения конфигурации дашборда", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить конфигурацию дашборда")
		return
	}
	helpers.JSON(w, http.StatusOK, cfg)
}
