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

type UserHandler struct {
	authService    *services.AuthService
	profileService *services.ProfileService
}

func NewUserHandler(authService *services.AuthService, profileService *services.ProfileService) *UserHandler {
	return &UserHandler{
		authService:    authService,
		profileService: profileService,
	}
}

// UpdateProfile godoc
// @Summary Частичное обновление профиля
// @Tags profile
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body models.UpdateProfileRequest true "Изменяемые поля"
// @Success 200 {object} models.Profile
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 413 {string} string "Аватар слишком большой"
// @Router /api/users/profile [put]
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Ошибка декодирования JSON в UpdateProfile", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	profile, err := h.profileService.Update(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAvatarTooLarge):
			helpers.Error(w, http.StatusRequestEntityTooLarge, err.Error())
		case errors.Is(err, services.ErrProfileNotFound):
			helpers.Error(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Error("Ошибка обновления профиля", zap.Error(err))
			helpers.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	helpers.JSON(w, http.StatusOK, profile)
}

// DeleteAvatar godoc
// @Summary Удаление аватара профиля
// @Tags profile
// @Security ApiKeyAuth
// @Success 204 "Аватар удалён"
// @Router /api/users/avatar [delete]
func (h *UserHandler) DeleteAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	if err := h.profileService.ClearAvatar(r.Context(), userID); err != nil {
		logger.Log.Error("Ошибка удаления аватара", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось удалить аватар")
		return
	}
	helpers.NoContent(w)
}

// ProfileOptions godoc
// @Summary Допустимые значения enum-полей профиля
// @Tags profile
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.ProfileOptions
// @Router /api/users/profile-options [get]
func (h *UserHandler) ProfileOptions(w http.ResponseWriter, r *http.Request) {
	helpers.JSON(w, http.StatusOK, h.profileService.Options())
}

// UserByEmail godoc
// @Summary Поиск карточки пользователя по email
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param email query string true "Email пользователя"
// @Success 200 {object} models.UserProfileCard
// @Failure 404 {string} string "Пользователь не найден"
// @Router /api/users/by-email [get]
func (h *UserHandler) UserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		helpers.Error(w, http.StatusBadRequest, "Не указан email")
		return
	}

	card, err := h.authService.GetUserCardByEmail(r.Context(), email)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, card)
}

// UserByID godoc
// @Summary Карточка пользователя по id
// @Tags users
// @Security ApiKeyAuth
// @Produce json
// @Param id path int true "ID пользователя"
// @Success 200 {object} models.UserProfileCard
// @Failure 404 {string} string "Пользователь не найден"
// @Router /api/users/{id} [get]
func (h *UserHandler) UserByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Неверный id")
		return
	}

	card, err := h.authService.GetUserCardByID(r.Context(), id)
	if err != nil {
		helpers.Error(w, http.StatusNotFound, err.Error())
		return
	}
	helpers.JSON(w, http.StatusOK, card)
}

// ProfileTile godoc
// @Summary Сводка профиля: возраст и стаж
// @Tags dashboard
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.ProfileTileResponse
// @Failure 404 {string} string "Профиль не найден"
// @Router /api/users/tiles/profile [get]
func (h *UserHandler) ProfileTile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	tile, err := h.profileService.Tile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			helpers.Error(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Log.Error("Ошибка сборки плитки профиля", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить сводку профиля")
		return
	}
	helpers.JSON(w, http.StatusOK, tile)
}
