package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/api/http/middleware"
	projecthttp "github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/http"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/service"
)

type APIDeps struct {
	Projects          *service.ProjectService
	Logger            *zap.Logger
	DownloadRateLimit float64
	DownloadBurst     int
}

// RegisterAPI mounts the project builder API under /api.
func RegisterAPI(r *gin.Engine, dep APIDeps) {
	api := r.Group("/api")

	var downloadMW []gin.HandlerFunc
	if dep.DownloadRateLimit > 0 {
		downloadMW = append(downloadMW, middleware.NewRateLimiter(dep.DownloadRateLimit, dep.DownloadBurst).Middleware())
	}

	projecthttp.New(dep.Projects, dep.Logger).Register(api, downloadMW...)
}
