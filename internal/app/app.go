package app

import (
	"strconv"
	"time"

	"workshelf/internal/config"
	"workshelf/internal/db"
	"workshelf/internal/handlers"
	"workshelf/internal/repository"
	"workshelf/internal/routes"
	"workshelf/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	passwordResetRepo := repository.NewPasswordResetRepository(conn)
	profileRepo := repository.NewProfileRepository(conn)
	skillRepo := repository.NewSkillRepository(conn)
	languageRepo := repository.NewLanguageRepository(conn)
	contactRepo := repository.NewContactRepository(conn)
	highlightRepo := repository.NewHighlightRepository(conn)
	hobbyRepo := repository.NewHobbyRepository(conn)
	experienceRepo := repository.NewExperienceRepository(conn)
	educationRepo := repository.NewEducationRepository(conn)
	certificationRepo := repository.NewCertificationRepository(conn)
	reviewRepo := repository.NewReviewRepository(conn)
	dashboardRepo := repository.NewDashboardRepository(conn)

	accessTTL, err := time.ParseDuration(cfg.AccessTokenTTL)
	if err != nil {
		accessTTL = 15 * time.Minute
	}
	resetTTLMin, err := strconv.Atoi(cfg.PasswordResetTTLMin)
	if err != nil || resetTTLMin <= 0 {
		resetTTLMin = 30
	}
	avatarMaxBytes, err := strconv.ParseInt(cfg.AvatarMaxBytes, 10, 64)
	if err != nil {
		avatarMaxBytes = 1_500_000
	}

	// Сервисы
	emailService := services.NewEmailService(cfg)
	authService := services.NewAuthService(userRepo, profileRepo)
	passwordService := services.NewPasswordService(
		passwordResetRepo,
		emailService,
		cfg.FrontendURL,
		time.Duration(resetTTLMin)*time.Minute,
	)
	profileService := services.NewProfileService(profileRepo, experienceRepo, avatarMaxBytes)
	collectionService := services.NewCollectionService(skillRepo, languageRepo, contactRepo, highlightRepo, hobbyRepo)
	experienceService := services.NewExperienceService(experienceRepo)
	educationService := services.NewEducationService(educationRepo)
	certificationService := services.NewCertificationService(certificationRepo)
	reviewService := services.NewReviewService(reviewRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecret, accessTTL)
	passwordHandler := handlers.NewPasswordHandler(passwordService, authService, cfg.Env)
	userHandler := handlers.NewUserHandler(authService, profileService)
	profileHandler := handlers.NewProfileHandler(profileService, collectionService)
	experienceHandler := handlers.NewExperienceHandler(experienceService, profileService)
	educationHandler := handlers.NewEducationHandler(educationService, profileService)
	certificationHandler := handlers.NewCertificationHandler(certificationService, profileService)
	reviewHandler := handlers.NewReviewHandler(reviewService, profileService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Воркеры отправки почты
	for i := 0; i < 3; i++ {
		services.StartEmailWorker(emailService)
	}

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(
		router,
		cfg.JWTSecret,
		authHandler,
		passwordHandler,
		userHandler,
		profileHandler,
		experienceHandler,
		educationHandler,
		certificationHandler,
		reviewHandler,
		dashboardHandler,
	)

	return router, nil
}
