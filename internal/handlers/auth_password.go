package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"workshelf/internal/logger"
	"workshelf/internal/middleware"
	"workshelf/internal/services"
	helpers "workshelf/internal/utils/helpers"

	"go.uber.org/zap"
)

type PasswordHandler struct {
	passwordService *services.PasswordService
	authService     *services.AuthService
	env             string
}

func NewPasswordHandler(passwordService *services.PasswordService, authService *services.AuthService, env string) *PasswordHandler {
	return &PasswordHandler{
		passwordService: passwordService,
		authService:     authService,
		env:             env,
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type forgotPasswordResponse struct {
	Message     string `json:"message"`
	DevResetURL string `json:"dev_reset_url,omitempty"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type changeEmailRequest struct {
	NewEmail string `json:"new_email"`
	Password string `json:"password"`
}

// maskEmail прячет локальную часть адреса в логах.
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}

// ForgotPassword godoc
// @Summary Запрос на сброс пароля
// @Description Ответ одинаковый вне зависимости от того, существует ли email.
// @Tags auth
// @Accept json
// @Produce json
// @Param input body forgotPasswordRequest true "Email аккаунта"
// @Success 200 {object} forgotPasswordResponse
// @Failure 400 {string} string "Невалидный JSON"
// @Router /api/auth/forgot-password [post]
func (h *PasswordHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	logger.Log.Info("Запрос сброса пароля", zap.String("email", maskEmail(req.Email)))

	resetLink, err := h.passwordService.RequestReset(r.Context(), req.Email)
	if err != nil {
		// Сюда попадают только инфраструктурные ошибки, клиенту их не показываем.
		logger.Log.Error("Ошибка запроса сброса пароля", zap.Error(err))
	}

	resp := &forgotPasswordResponse{
		Message: "Если такой аккаунт существует, письмо со ссылкой отправлено",
	}
	if h.env == "dev" {
		resp.DevResetURL = resetLink
	}
	helpers.JSON(w, http.StatusOK, resp)
}

// ResetPassword godoc
// @Summary Установка нового пароля по токену из письма
// @Tags auth
// @Accept json
// @Produce json
// @Param input body resetPasswordRequest true "Токен и новый пароль"
// @Success 200 {string} string "Пароль обновлён"
// @Failure 400 {string} string "Неверный или использованный токен"
// @Failure 410 {string} string "Токен истёк"
// @Router /api/auth/reset-password [post]
func (h *PasswordHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	err := h.passwordService.ResetPassword(r.Context(), req.Token, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTokenExpired):
			helpers.Error(w, http.StatusGone, err.Error())
		case errors.Is(err, services.ErrTokenInvalid), errors.Is(err, services.ErrPasswordTooShort):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Error("Ошибка сброса пароля", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Не удалось сбросить пароль")
		}
		return
	}

	helpers.JSON(w, http.StatusOK, "Пароль обновлён")
}

// ChangePassword godoc
// @Summary Смена пароля по старому паролю
// @Tags auth
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body changePasswordRequest true "Старый и новый пароли"
// @Success 200 {string} string "Пароль обновлён"
// @Failure 400 {string} string "Новый пароль слишком короткий"
// @Failure 401 {string} string "Старый пароль не совпадает"
// @Router /api/auth/change-password [post]
func (h *PasswordHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	err := h.authService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordTooShort):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			helpers.Error(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			helpers.Error(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Error("Ошибка смены пароля", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Не удалось сменить пароль")
		}
		return
	}

	helpers.JSON(w, http.StatusOK, "Пароль обновлён")
}

// ChangeEmail godoc
// @Summary Смена email с подтверждением паролем
// @Tags auth
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body changeEmailRequest true "Новый email и текущий пароль"
// @Success 200 {string} string "Email обновлён"
// @Failure 401 {string} string "Пароль не совпадает"
// @Failure 409 {string} string "Email уже используется"
// @Router /api/auth/change-email [post]
func (h *PasswordHandler) ChangeEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	var req changeEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	err := h.authService.ChangeEmail(r.Context(), userID, req.NewEmail, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			helpers.Error(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, services.ErrEmailInUse):
			helpers.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			helpers.Error(w, http.StatusNotFound, err.Error())
		default:
			logger.Log.Error("Ошибка смены email", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Не удалось сменить email")
		}
		return
	}

	helpers.JSON(w, http.StatusOK, "Email обновлён")
}
