package routes

import (
	"workshelf/internal/handlers"
	"workshelf/internal/middleware"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	passwordHandler *handlers.PasswordHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	experienceHandler *handlers.ExperienceHandler,
	educationHandler *handlers.EducationHandler,
	certificationHandler *handlers.CertificationHandler,
	reviewHandler *handlers.ReviewHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/forgot-password", passwordHandler.ForgotPassword).Methods("POST")
	api.HandleFunc("/auth/reset-password", passwordHandler.ResetPassword).Methods("POST")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth(jwtSecret))

	protected.HandleFunc("/auth/me", authHandler.Me).Methods("GET")
	protected.HandleFunc("/auth/change-password", passwordHandler.ChangePassword).Methods("POST")
	protected.HandleFunc("/auth/change-email", passwordHandler.ChangeEmail).Methods("POST")

	protected.HandleFunc("/users/profile", userHandler.UpdateProfile).Methods("PUT")
	protected.HandleFunc("/users/avatar", userHandler.DeleteAvatar).Methods("DELETE")
	protected.HandleFunc("/users/profile-options", userHandler.ProfileOptions).Methods("GET")
	protected.HandleFunc("/users/by-email", userHandler.UserByEmail).Methods("GET")
	protected.HandleFunc("/users/tiles/profile", userHandler.ProfileTile).Methods("GET")
	protected.HandleFunc("/users/{id:[0-9]+}", userHandler.UserByID).Methods("GET")

	// Удаление по id записи: профиль выводится из владельца строки.
	protected.HandleFunc("/profile/experiences/{id:[0-9]+}", experienceHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/profile/certifications/{id:[0-9]+}", certificationHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/profile/reviews/{id:[0-9]+}", reviewHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/profile/tech/suggest", experienceHandler.TechnologySuggestions).Methods("GET")

	// Коллекции конкретного профиля, доступ только владельцу.
	profileRoutes := protected.PathPrefix("/profile/{profileId:[0-9]+}").Subrouter()
	profileRoutes.HandleFunc("/about", profileHandler.About).Methods("GET")
	profileRoutes.HandleFunc("/about", profileHandler.UpdateAbout).Methods("PUT")
	profileRoutes.HandleFunc("/skills", profileHandler.Skills).Methods("GET")
	profileRoutes.HandleFunc("/skills", profileHandler.ReplaceSkills).Methods("PUT")
	profileRoutes.HandleFunc("/skills/{id:[0-9]+}", profileHandler.DeleteSkill).Methods("DELETE")
	profileRoutes.HandleFunc("/languages", profileHandler.Languages).Methods("GET")
	profileRoutes.HandleFunc("/languages", profileHandler.ReplaceLanguages).Methods("PUT")
	profileRoutes.HandleFunc("/contacts", profileHandler.Contacts).Methods("GET")
	profileRoutes.HandleFunc("/contacts", profileHandler.ReplaceContacts).Methods("PUT")
	profileRoutes.HandleFunc("/highlights", profileHandler.Highlights).Methods("GET")
	profileRoutes.HandleFunc("/highlights", profileHandler.ReplaceHighlights).Methods("PUT")
	profileRoutes.HandleFunc("/hobbies", profileHandler.Hobbies).Methods("GET")
	profileRoutes.HandleFunc("/hobbies", profileHandler.ReplaceHobbies).Methods("PUT")

	profileRoutes.HandleFunc("/experiences", experienceHandler.List).Methods("GET")
	profileRoutes.HandleFunc("/experiences", experienceHandler.Save).Methods("POST")

	profileRoutes.HandleFunc("/educations", educationHandler.List).Methods("GET")
	profileRoutes.HandleFunc("/educations", educationHandler.Create).Methods("POST")
	profileRoutes.HandleFunc("/educations/{id:[0-9]+}", educationHandler.Update).Methods("PUT")
	profileRoutes.HandleFunc("/educations/{id:[0-9]+}", educationHandler.Delete).Methods("DELETE")

	profileRoutes.HandleFunc("/certifications", certificationHandler.List).Methods("GET")
	profileRoutes.HandleFunc("/certifications", certificationHandler.Create).Methods("POST")

	profileRoutes.HandleFunc("/reviews", reviewHandler.List).Methods("GET")
	profileRoutes.HandleFunc("/reviews", reviewHandler.Create).Methods("POST")

	protected.HandleFunc("/dashboard", dashboardHandler.Config).Methods("GET")
}
