package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/bharanipt/bike-rental-backend/internal/api"
	"github.com/bharanipt/bike-rental-backend/internal/auth"
	"github.com/bharanipt/bike-rental-backend/internal/bike"
	"github.com/bharanipt/bike-rental-backend/internal/booking"
	"github.com/bharanipt/bike-rental-backend/internal/file"
	"github.com/bharanipt/bike-rental-backend/internal/pkg/storage"
	"github.com/bharanipt/bike-rental-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	TokenTTL     time.Duration
	BcryptCost   int
	UploadDir    string
	Logger       *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	JWTManager  *auth.JWTManager
	BikeService bike.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher, cfg.Logger)

	// Bike Module
	bikeRepo := bike.NewPgxRepository(cfg.DBPool)
	bikeService := bike.NewService(bikeRepo, cfg.Logger)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, cfg.Logger)

	// File Module
	localStorage, err := storage.NewLocalStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("init local storage: %w", err)
	}
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, localStorage, cfg.Logger)

	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		UserService:    userService,
		BikeService:    bikeService,
		BookingService: bookingService,
		FileService:    fileService,
		JWTManager:     jwtManager,
		Logger:         cfg.Logger,
	})

	return &Container{
		Router:      router,
		JWTManager:  jwtManager,
		BikeService: bikeService,
	}, nil
}
