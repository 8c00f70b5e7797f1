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

type CertificationHandler struct {
	certificationService *services.CertificationService
	profileService       *services.ProfileService
}

func NewCertificationHandler(certificationService *services.CertificationService, profileService *services.ProfileService) *CertificationHandler {
	return &CertificationHandler{
		certificationService: certificationService,
		profileService:       profileService,
	}
}

// ownProfileID читает profileId из пути и проверяет владение.
func (h *CertificationHandler) ownProfileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
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
// @Summary Сертификаты профиля
// @Tags certifications
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.Certification
// @Router /api/profile/{profileId}/certifications [get]
func (h *CertificationHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	certs, err := h.certificationService.List(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения сертификатов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить сертификаты")
		return
	}
	helpers.JSON(w, http.StatusOK, certs)
}

// Create godoc
// @Summary Добавление метаданных сертификата
// @Tags certifications
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body models.CreateCertificationRequest true "Метаданные сертификата"
// @Success 201 {object} models.Certification
// @Failure 400 {string} string "Ошибка валидации"
// @Router /api/profile/{profileId}/certifications [post]
func (h *CertificationHandler) Create(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var req models.CreateCertificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	cert, err := h.certificationService.Create(r.Context(), profileID, &req)
	if err != nil {
		if errors.Is(err, services.ErrCertificationInvalid) {
			helpers.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Log.Error("Ошибка добавления сертификата", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось сохранить сертификат")
		return
	}
	helpers.JSON(w, http.StatusCreated, cert)
}

// Delete godoc
// @Summary Удаление сертификата
// @Tags certifications
// @Security ApiKeyAuth
// @Param id path int true "ID сертификата"
// @Success 204 "Сертификат удалён"
// @Router /api/profile/certifications/{id} [delete]
func (h *CertificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.certificationService.Delete(r.Context(), profileID, id); err != nil {
		logger.Log.Error("Ошибка удаления сертификата", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось удалить сертификат")
		return
	}
	helpers.NoContent(w)
}
