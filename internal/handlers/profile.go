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

// ProfileHandler отдаёт и перезаписывает дочерние коллекции своего профиля.
type ProfileHandler struct {
	profileService    *services.ProfileService
	collectionService *services.CollectionService
}

func NewProfileHandler(profileService *services.ProfileService, collectionService *services.CollectionService) *ProfileHandler {
	return &ProfileHandler{
		profileService:    profileService,
		collectionService: collectionService,
	}
}

// ownProfileID читает profileId из пути и проверяет владение:
// чужой профиль — 403, несуществующий — 404.
func (h *ProfileHandler) ownProfileID(w http.ResponseWriter, r *http.Request) (int64, bool) {
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

// About godoc
// @Summary Текст "обо мне"
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {object} map[string]*string
// @Router /api/profile/{profileId}/about [get]
func (h *ProfileHandler) About(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	about, err := h.profileService.GetAbout(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения about", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить описание")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]*string{"about": about})
}

type aboutRequest struct {
	About *string `json:"about"`
}

// UpdateAbout godoc
// @Summary Обновление текста "обо мне"
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body aboutRequest true "Новый текст"
// @Success 200 {object} map[string]*string
// @Router /api/profile/{profileId}/about [put]
func (h *ProfileHandler) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var req aboutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := h.profileService.SetAbout(r.Context(), profileID, req.About); err != nil {
		logger.Log.Error("Ошибка записи about", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось сохранить описание")
		return
	}
	helpers.JSON(w, http.StatusOK, map[string]*string{"about": req.About})
}

// Skills godoc
// @Summary Навыки профиля
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.Skill
// @Router /api/profile/{profileId}/skills [get]
func (h *ProfileHandler) Skills(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	skills, err := h.collectionService.ListSkills(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения навыков", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить навыки")
		return
	}
	helpers.JSON(w, http.StatusOK, skills)
}

// ReplaceSkills godoc
// @Summary Полная замена списка навыков
// @Description После запроса в профиле остаётся ровно присланный список.
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body []models.SkillInput true "Полный список навыков"
// @Success 200 {array} models.Skill
// @Failure 400 {string} string "Невалидный JSON"
// @Router /api/profile/{profileId}/skills [put]
func (h *ProfileHandler) ReplaceSkills(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var inputs []models.SkillInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := h.collectionService.ReplaceSkills(r.Context(), profileID, inputs); err != nil {
		logger.Log.Error("Ошибка замены навыков", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось сохранить навыки")
		return
	}
	skills, err := h.collectionService.ListSkills(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения навыков после замены", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить навыки")
		return
	}
	helpers.JSON(w, http.StatusOK, skills)
}

// DeleteSkill godoc
// @Summary Удаление одного навыка
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Param id path int true "ID навыка"
// @Success 204 "Навык удалён"
// @Failure 400 {string} string "Неверный id"
// @Router /api/profile/{profileId}/skills/{id} [delete]
func (h *ProfileHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		helpers.Error(w, http.StatusBadRequest, "Неверный id")
		return
	}
	if err := h.collectionService.DeleteSkill(r.Context(), profileID, id); err != nil {
		logger.Log.Error("Ошибка удаления навыка", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось удалить навык")
		return
	}
	helpers.NoContent(w)
}

// Languages godoc
// @Summary Языки профиля
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.Language
// @Router /api/profile/{profileId}/languages [get]
func (h *ProfileHandler) Languages(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	langs, err := h.collectionService.ListLanguages(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения языков", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить языки")
		return
	}
	helpers.JSON(w, http.StatusOK, langs)
}

// ReplaceLanguages godoc
// @Summary Полная замена списка языков
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body []models.LanguageInput true "Полный список языков"
// @Success 200 {array} models.Language
// @Router /api/profile/{profileId}/languages [put]
func (h *ProfileHandler) ReplaceLanguages(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var inputs []models.LanguageInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := h.collectionService.ReplaceLanguages(r.Context(), profileID, inputs); err != nil {
		logger.Log.Error("Ошибка замены языков", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось сохранить языки")
		return
	}
	langs, err := h.collectionService.ListLanguages(r.Context(), profileID)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить языки")
		return
	}
	helpers.JSON(w, http.StatusOK, langs)
}

// Contacts godoc
// @Summary Контакты профиля
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.ContactMethod
// @Router /api/profile/{profileId}/contacts [get]
func (h *ProfileHandler) Contacts(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	contacts, err := h.collectionService.ListContacts(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения контактов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить контакты")
		return
	}
	helpers.JSON(w, http.StatusOK, contacts)
}

// ReplaceContacts godoc
// @Summary Полная замена списка контактов
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body []models.ContactMethodInput true "Полный список контактов"
// @Success 200 {array} models.ContactMethod
// @Router /api/profile/{profileId}/contacts [put]
func (h *ProfileHandler) ReplaceContacts(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var inputs []models.ContactMethodInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := h.collectionService.ReplaceContacts(r.Context(), profileID, inputs); err != nil {
		logger.Log.Error("Ошибка замены контактов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось сохранить контакты")
		return
	}
	contacts, err := h.collectionService.ListContacts(r.Context(), profileID)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить контакты")
		return
	}
	helpers.JSON(w, http.StatusOK, contacts)
}

// Highlights godoc
// @Summary Хайлайты профиля
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.ProfileHighlight
// @Router /api/profile/{profileId}/highlights [get]
func (h *ProfileHandler) Highlights(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	items, err := h.collectionService.ListHighlights(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения хайлайтов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить хайлайты")
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}

// ReplaceHighlights godoc
// @Summary Полная замена хайлайтов
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body []models.ProfileHighlightInput true "Полный список хайлайтов"
// @Success 200 {array} models.ProfileHighlight
// @Router /api/profile/{profileId}/highlights [put]
func (h *ProfileHandler) ReplaceHighlights(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var inputs []models.ProfileHighlightInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := h.collectionService.ReplaceHighlights(r.Context(), profileID, inputs); err != nil {
		logger.Log.Error("Ошибка замены хайлайтов", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось сохранить хайлайты")
		return
	}
	items, err := h.collectionService.ListHighlights(r.Context(), profileID)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить хайлайты")
		return
	}
	helpers.JSON(w, http.StatusOK, items)
}

// Hobbies godoc
// @Summary Хобби профиля
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Produce json
// @Success 200 {array} models.Hobby
// @Router /api/profile/{profileId}/hobbies [get]
func (h *ProfileHandler) Hobbies(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	hobbies, err := h.collectionService.ListHobbies(r.Context(), profileID)
	if err != nil {
		logger.Log.Error("Ошибка чтения хобби", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить хобби")
		return
	}
	helpers.JSON(w, http.StatusOK, hobbies)
}

// ReplaceHobbies godoc
// @Summary Полная замена списка хобби
// @Tags profile
// @Security ApiKeyAuth
// @Param profileId path int true "ID профиля"
// @Accept json
// @Produce json
// @Param input body []models.HobbyInput true "Полный список хобби"
// @Success 200 {array} models.Hobby
// @Router /api/profile/{profileId}/hobbies [put]
func (h *ProfileHandler) ReplaceHobbies(w http.ResponseWriter, r *http.Request) {
	profileID, ok := h.ownProfileID(w, r)
	if !ok {
		return
	}
	var inputs []models.HobbyInput
	if err := json.NewDecoder(r.Body).Decode(&inputs); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	if err := h.collectionService.ReplaceHobbies(r.Context(), profileID, inputs); err != nil {
		logger.Log.Error("Ошибка замены хобби", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось сохранить хобби")
		return
	}
	hobbies, err := h.collectionService.ListHobbies(r.Context(), profileID)
	if err != nil {
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить хобби")
		return
	}
	helpers.JSON(w, http.StatusOK, hobbies)
}
