package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	api_utils "github.com/ethanbaker/api/pkg/utils"
	"github.com/ethanbaker/sparky/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	health_module "github.com/ethanbaker/sparky/internal/api/modules/health"
	tutor_module "github.com/ethanbaker/sparky/internal/api/modules/tutor"
)

// NewEngine builds the gin engine with middleware and every module's routes.
// Modules must be initialized separately
func NewEngine(cfg *utils.Config) *gin.Engine {
	// Add app level settings/routes
	engine := gin.Default()
	engine.NoRoute(api_utils.NoRouteHandler)

	// Add trusted proxies
	engine.SetTrustedProxies(nil)

	// Add CORS using gin-contrib/cors (https://github.com/gin-contrib/cors for documentation)
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.GetWithDefault("CORS_ALLOWED_ORIGINS", "*"), ","),
		AllowMethods:     []string{"OPTIONS", "GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Tutor routes live at the root, operational routes under '/api'
	tutor_module.RegisterRoutes(&engine.RouterGroup)
	health_module.RegisterRoutes(engine.Group("/api"))

	return engine
}

// Start initializes the modules and serves until ctx is cancelled
func Start(ctx context.Context, cfg *utils.Config) {
	// Initialized configuration settings
	port := cfg.GetWithDefault("API_PORT", "5000")

	if err := tutor_module.Init(ctx, cfg); err != nil {
		log.Fatal("[API-MAIN]: Failed to initialize tutor module: ", err)
	}
	defer tutor_module.Shutdown()

	server := &http.Server{
		Addr:    ":" + port,
		Handler: NewEngine(cfg),
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("[API-MAIN]: Error during shutdown: %v", err)
		}
	}()

	// Then after performing initial setup, start the server
	log.Printf("[API-MAIN]: Listening on port %s", port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("[API-MAIN]: Failed to start server: ", err)
	}

	log.Println("[API-MAIN]: Server stopped")
}
