package http

import (
	"sort"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
	log *zap.Logger
}

func New(svc *service.ProjectService, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{svc: svc, log: log}
}

// renderReq is the body accepted by generate and download.
type renderReq struct {
	Project *domain.ProjectInput `json:"project"`
}

type createResp struct {
	Success bool                  `json:"success"`
	Project *domain.ProjectConfig `json:"project"`
	Message string                `json:"message"`
}

type planResp struct {
	Success bool   `json:"success"`
	Plan    string `json:"plan"`
}

type errorResp struct {
	Error string `json:"error"`
}

// summary is the input digest attached to failure logs.
func summary(cfg domain.ProjectConfig) []zap.Field {
	categories := make([]string, 0, len(cfg.TechStack))
	for k := range cfg.TechStack {
		categories = append(categories, k)
	}
	sort.Strings(categories)

	return []zap.Field{
		zap.String("title", cfg.Title),
		zap.String("project_type", cfg.ProjectType),
		zap.String("timeline", cfg.Timeline),
		zap.Strings("tech_categories", categories),
		zap.Int("feature_count", len(cfg.Features)),
	}
}
