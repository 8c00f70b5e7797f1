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

type ReviewHandler struct {
	reviewService  *services.ReviewService
	profileService *services.ProfileService
}

func NewReviewHandler(reviewService *services.ReviewService, profileService *services.ProfileService) *ReviewHandler {
	return &ReviewHandler{
		reviewService:  reviewService,
		profileService: profileService,
	}
}

// ownProfileID читает profileId из пути и проверяет владение.
func (h *ReviewHandler) ownProfileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
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
// @Summary Отзывы работодателей
// @Tags reviews
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.Review
// @Router /api/profile/{profileId}/reviews [get]
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	reviews, err := h.reviewService.List(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения отзывов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить отзывы")
		return
	}
	helpers.JSON(w, http.StatusOK, reviews)
}

// Create godoc
// @Summary Добавление отзыва
// @Tags reviews
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body models.CreateReviewRequest true "Данные отзыва"
// @Success 201 {object} models.Review
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/profile/{profileId}/reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var req models.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	review, err := h.reviewService.Create(r.Context(), profileID, &req)
	if err != nil {
		if errors.Is(err, services.ErrReviewInvalid) {
			helpers.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Log.Error("Ошибка добавления отзыва", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	helpers.JSON(w, http.StatusCreated, review)
}

// Delete godoc
// @Summary Удаление отзыва
// @Tags reviews
// @Security ApiKeyAuth
// @Param id path int true "ID отзыва"
// @Success 204 "Отзыв удалён"
// @Router /api/profile/reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.reviewService.Delete(r.Context(), profileID, id); err != nil {
		logger.Log.Error("Ошибка удаления отзыва", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось удалить отзыв")
		return
	}
	helpers.NoContent(w)
}
