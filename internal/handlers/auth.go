package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"workshelf/internal/logger"
	"workshelf/internal/middleware"
	"workshelf/internal/models"
	"workshelf/internal/services"
	"workshelf/internal/utils"
	helpers "workshelf/internal/utils/helpers"

	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *services.AuthService
	jwtSecret   string
	accessTTL   time.Duration
}

func NewAuthHandler(authService *services.AuthService, jwtSecret string, accessTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		jwtSecret:   jwtSecret,
		accessTTL:   accessTTL,
	}
}

type registerRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string               `json:"access_token"`
	User        *models.UserResponse `json:"user"`
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body registerRequest true "Данные регистрации"
// @Success 201 {object} loginResponse
// @Failure 400 {string} string "Ошибка валидации"
// @Failure 409 {string} string "Email уже используется"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Ошибка декодирования JSON в Register", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}
	logger.Log.Info("Регистрация пользователя", zap.String("email", req.Email))

	user, profile, err := h.authService.RegisterUser(r.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailInUse):
			helpers.Error(w, http.StatusConflict, err.Error())
		case errors.Is(err, services.ErrPasswordTooShort):
			helpers.Error(w, http.StatusBadRequest, err.Error())
		default:
			logger.Log.Error("Ошибка регистрации пользователя", zap.Error(err))
			helpers.Error(w, http.StatusInternalServerError, "Не удалось зарегистрировать пользователя")
		}
		return
	}

	accessToken, err := utils.GenerateToken(h.jwtSecret, user.ID, h.accessTTL)
	if err != nil {
		logger.Log.Error("Ошибка генерации токена после регистрации", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось зарегистрировать пользователя")
		return
	}

	helpers.JSON(w, http.StatusCreated, &loginResponse{
		AccessToken: accessToken,
		User: &models.UserResponse{
			ID:      user.ID,
			Email:   user.Email,
			Profile: profile,
		},
	})
}

// Login godoc
// @Summary Авторизация пользователя
// @Tags auth
// @Accept json
// @Produce json
// @Param input body loginRequest true "Данные для входа"
// @Success 200 {object} loginResponse
// @Failure 401 {string} string "Неверный email или пароль"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Log.Warn("Ошибка декодирования JSON в Login", zap.Error(err))
		helpers.Error(w, http.StatusBadRequest, "Невалидный JSON")
		return
	}

	accessToken, user, profile, err := h.authService.LoginUser(r.Context(), req.Email, req.Password, h.jwtSecret, h.accessTTL)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.Error(w, http.StatusUnauthorized, err.Error())
			return
		}
		logger.Log.Error("Ошибка входа", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось выполнить вход")
		return
	}

	helpers.JSON(w, http.StatusOK, &loginResponse{
		AccessToken: accessToken,
		User: &models.UserResponse{
			ID:      user.ID,
			Email:   user.Email,
			Profile: profile,
		},
	})
}

// Me godoc
// @Summary Текущий пользователь с профилем
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} models.UserResponse
// @Failure 401 {string} string "Не авторизован"
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.Error(w, http.StatusUnauthorized, "Не авторизован")
		return
	}

	user, profile, err := h.authService.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			helpers.Error(w, http.StatusNotFound, err.Error())
			return
		}
		logger.Log.Error("Ошибка получения пользователя", zap.Error(err))
		helpers.Error(w, http.StatusInternalServerError, "Не удалось получить пользователя")
		return
	}

	helpers.JSON(w, http.StatusOK, &models.UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Profile: profile,
	})
}
