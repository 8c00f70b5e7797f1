package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"workshelf/internal/logger"
	"workshelf/internal/middleware"
	"workshelf/internal/models"
	"workshelf/internal/services"
	helpers "workshelf/internal/utils/helpers"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type ExperienceHandler struct {
	experienceService *services.ExperienceService
	profileService    *services.ProfileService
}

func NewExperienceHandler(experienceService *services.ExperienceService, profileService *services.ProfileService) *ExperienceHandler {
	return &ExperienceHandler{
		experienceService: experienceService,
		profileService:    profileService,
	}
}

// ownProfileID читает profileId из пути и проверяет владение.
func (h *ExperienceHandler) ownProfileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return 0, false
	}
	profileID, err := strconv.ParseInt(mux.Vars(r)["profileId"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Неверный id профиля")
		return 0, false
	}
	if err := h.profileService.OwnsProfile(r.Context(), userID, profileID); err != nil {
		if errors.Is(err, services.ErrNotOwner) {
			helpers.Error(w, http.StatusForbidden, err.Error())
		} else {
			helpers.Error(w, http.StatusNotFound, err.Error())
		}
		return 0, false
	}
	return profileID, true
}

// List godoc
// @Summary Опыт работы с задачами и технологиями
// @Tags experience
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.Experience
// @Router /api/profile/{profileId}/experiences [get]
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	exps, err := h.experienceService.List(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения опыта", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить опыт")
		return
	}
	helpers.JSON(w, http.StatusOK, exps)
}

// Save godoc
// @Summary Создание или обновление опыта
// @Description ID > 0 в теле означает обновление существующей записи.
// @Tags experience
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body models.SaveExperienceRequest true "Данные опыта"
// @Success 200 {object} models.Experience
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/profile/{profileId}/experiences [post]
func (h *ExperienceHandler) Save(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var req models.SaveExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	exp, err := h.experienceService.Save(r.Context(), profileID, &req)
	if err != nil {
		if errors.Is(err, services.ErrExperienceInvalid) {
			helpers.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Log.Error("Ошибка сохранения опыта", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, exp)
}

// Delete godoc
// @Summary Удаление опыта
// @Tags experience
// @Security ApiKeyAuth
// @Param id path int true "ID опыта"
// @Success 204 "Опыт удалён"
// @Router /api/profile/experiences/{id} [delete]
func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}
	profileID, err := h.profileService.ProfileIDForUser(r.Context(), userID)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, err.Error())
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Неверный id")
		return
	}
	if err := h.experienceService.Delete(r.Context(), profileID, id); err != nil {
		logger.Log.Error("Ошибка удаления опыта", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось удалить опыт")
		return
	}
	helpers.NoContent(w)
}

// TechnologySuggestions godoc
// @Summary Каталог технологий для автодополнения
// @Tags experience
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} string
// @Router /api/profile/tech/suggest [get]
func (h *ExperienceHandler) TechnologySuggestions(w http.ResponseWriter, r *http.Request) {
	names, err := h.experienceService.TechnologySuggestions(r.Context())
	if err != nil {
		logger.Log.Error("Ошибка чтения каталога технологий", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить технологии")
		return
	}
	helpers.JSON(w, http.StatusOK, names)
}
