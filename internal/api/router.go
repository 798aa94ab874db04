package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bharanipt/bike-rental-backend/internal/auth"
	"github.com/bharanipt/bike-rental-backend/internal/bike"
	bikeHttp "github.com/bharanipt/bike-rental-backend/internal/bike/http"
	"github.com/bharanipt/bike-rental-backend/internal/booking"
	bookingHttp "github.com/bharanipt/bike-rental-backend/internal/booking/http"
	"github.com/bharanipt/bike-rental-backend/internal/file"
	fileHttp "github.com/bharanipt/bike-rental-backend/internal/file/http"
	"github.com/bharanipt/bike-rental-backend/internal/user"
	userHttp "github.com/bharanipt/bike-rental-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction   bool
	ProdOrigins    string
	UserService    user.Service
	BikeService    bike.Service
	BookingService booking.Service
	FileService    file.Service
	JWTManager     *auth.JWTManager
	Logger         *zap.Logger
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, logging, recovery) and registers routes
// for each module under /api.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173",
			"http://localhost:3000",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	bikeHandler := bikeHttp.NewHandler(cfg.BikeService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Bike rental backend"})
	})

	apiGroup := r.Group("/api")
	{
		userHttp.RegisterRoutes(apiGroup, userHandler, authMiddleware)
		bikeHttp.RegisterRoutes(apiGroup, bikeHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(apiGroup, bookingHandler, authMiddleware)
		fileHttp.RegisterRoutes(apiGroup, fileHandler, authMiddleware, adminMiddleware)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
