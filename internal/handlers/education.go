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

type EducationHandler struct {
	educationService *services.EducationService
	profileService   *services.ProfileService
}

func NewEducationHandler(educationService *services.EducationService, profileService *services.ProfileService) *EducationHandler {
	return &EducationHandler{
		educationService: educationService,
		profileService:   profileService,
	}
}

// ownProfileID читает profileId из пути и проверяет владение.
func (h *EducationHandler) ownProfileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
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
// @Summary Образование профиля
// @Tags education
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.Education
// @Router /api/profile/{profileId}/educations [get]
func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	items, err := h.educationService.List(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения образования", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить образование")
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}

// Create godoc
// @Summary Добавление образования
// @Tags education
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body models.SaveEducationRequest true "Данные образования"
// @Success 201 {object} models.Education
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/profile/{profileId}/educations [post]
func (h *EducationHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var req models.SaveEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	edu, err := h.educationService.Create(r.Context(), profileID, &req)
	if err != nil {
		if errors.Is(err, services.ErrEducationInvalid) {
			helpers.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Log.Error("Ошибка добавления образования", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, edu)
}

// Update godoc
// @Summary Обновление образования
// @Tags education
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param id path int true "ID записи"
// @Param input body models.SaveEducationRequest true "Данные образования"
// @Success 200 {object} models.Education
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/profile/{profileId}/educations/{id} [put]
func (h *EducationHandler) Update(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Неверный id")
		return
	}
	var req models.SaveEducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	edu, err := h.educationService.Update(r.Context(), profileID, id, &req)
	if err != nil {
		if errors.Is(err, services.ErrEducationInvalid) {
			helpers.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Log.Error("Ошибка обновления образования", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, edu)
}

// Delete godoc
// @Summary Удаление образования
// @Tags education
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Param id path int true "ID записи"
// @Success 204 "Запись удалена"
// @Router /api/profile/{profileId}/educations/{id} [delete]
func (h *EducationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Неверный id")
		return
	}
	if err := h.educationService.Delete(r.Context(), profileID, id); err != nil {
		logger.Log.Error("Ошибка удаления образования", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось удалить запись")
		return
	}
	helpers.NoContent(w)
}
