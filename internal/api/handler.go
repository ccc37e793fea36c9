package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/organizo-app/organizo/internal/config"
	"github.com/organizo-app/organizo/internal/db"
	"github.com/organizo-app/organizo/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db            *gorm.DB
	repositories  *db.Repositories
	authService   *services.AuthService
	tokens        *services.TokenService
	validate      *validator.Validate
	location      *time.Location
	mediaRoot     string
	mediaURL      string
	loginThrottle *loginThrottle
}

func NewHandler(database *gorm.DB, cfg config.Config, location *time.Location) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:            database,
		repositories:  repositories,
		authService:   services.NewAuthService(repositories.Users),
		tokens:        services.NewTokenService(cfg.SecretKey, cfg.TokenTTL),
		validate:      validator.New(),
		location:      location,
		mediaRoot:     cfg.MediaRoot,
		mediaURL:      cfg.MediaURL,
		loginThrottle: newLoginThrottle(loginFailureLimit, loginFailureWindow),
	}
}
