package bootstrap

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/vibe-code-assistant/internal/api/http"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/service"
)

type RouterDeps struct {
	ServiceName       string
	Version           string
	DB                *pgxpool.Pool
	Projects          *service.ProjectService
	Logger            *zap.Logger
	AllowedOrigins    []string
	StaticDir         string
	DownloadRateLimit float64
	DownloadBurst     int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Logger))
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB)
	healthHandler.RegisterRoutes(r)

	routes.RegisterAPI(r, routes.APIDeps{
		Projects:          dep.Projects,
		Logger:            dep.Logger,
		DownloadRateLimit: dep.DownloadRateLimit,
		DownloadBurst:     dep.DownloadBurst,
	})

	mountUI(r, dep.StaticDir)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader, "Content-Disposition"}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// mountUI serves the single-page form shell at / when dir holds an index.html.
func mountUI(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}

	r.GET("/", func(c *gin.Context) { c.File(index) })
	r.StaticFS("/static", gin.Dir(dir, false))
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
}
