package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/metrics"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/planner"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/repository"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/scaffold"
)

// Repository is the persistence store for configurations.
type Repository interface {
	Create(ctx context.Context, cfg *domain.ProjectConfig) error
	GetByID(ctx context.Context, id int64) (*domain.ProjectConfig, error)
	List(ctx context.Context) ([]domain.ProjectConfig, error)
}

// Cache is an optional read-through cache in front of the Repository.
// Get returns repository.ErrCacheMiss for absent entries.
type Cache interface {
	Get(ctx context.Context, id int64) (*domain.ProjectConfig, error)
	Set(ctx context.Context, cfg *domain.ProjectConfig) error
}

type Options struct {
	Cache       Cache
	Planner     *planner.Planner
	ScratchRoot string
	Logger      *zap.Logger
}

// ProjectService handles project configuration storage, plan generation and
// scaffold packaging
type ProjectService struct {
	repo        Repository
	cache       Cache
	planner     *planner.Planner
	scratchRoot string
	log         *zap.Logger
}

// NewProjectService creates a new project service
func NewProjectService(repo Repository, opts Options) *ProjectService {
	s := &ProjectService{
		repo:        repo,
		cache:       opts.Cache,
		planner:     opts.Planner,
		scratchRoot: opts.ScratchRoot,
		log:         opts.Logger,
	}
	if s.planner == nil {
		s.planner = planner.New()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Create validates and stores a submitted configuration.
func (s *ProjectService) Create(ctx context.Context, in domain.ProjectInput) (*domain.ProjectConfig, error) {
	cfg := in.Config()
	if err := domain.Validate(cfg); err != nil {
		return nil, err
	}
	if cfg.Title == "" {
		cfg.Title = domain.DefaultTitle
	}
	cfg.GitHubUsername = ""

	if err := s.repo.Create(ctx, &cfg); err != nil {
		return nil, err
	}
	metrics.ProjectsCreated.Inc()
	s.log.Info("project created",
		zap.Int64("id", cfg.ID),
		zap.String("project_type", cfg.ProjectType),
		zap.String("timeline", cfg.Timeline),
	)

	s.cachePut(ctx, &cfg)
	return &cfg, nil
}

// Get returns the stored configuration or domain.ErrNotFound.
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.ProjectConfig, error) {
	if s.cache != nil {
		cfg, err := s.cache.Get(ctx, id)
		switch {
		case err == nil:
			metrics.CacheRequests.WithLabelValues("hit").Inc()
			return cfg, nil
		case errors.Is(err, repository.ErrCacheMiss):
			metrics.CacheRequests.WithLabelValues("miss").Inc()
		default:
			metrics.CacheRequests.WithLabelValues("error").Inc()
			s.log.Warn("project cache read failed", zap.Int64("id", id), zap.Error(err))
		}
	}

	cfg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cachePut(ctx, cfg)
	return cfg, nil
}

// List returns all stored configurations, newest first.
func (s *ProjectService) List(ctx context.Context) ([]domain.ProjectConfig, error) {
	return s.repo.List(ctx)
}

// GeneratePlan renders the markdown plan. Absent enumerated fields take render
// defaults; illegal values fail validation.
func (s *ProjectService) GeneratePlan(cfg domain.ProjectConfig) (string, error) {
	cfg = cfg.WithRenderDefaults()
	if err := domain.Validate(cfg); err != nil {
		return "", err
	}

	plan := s.planner.Generate(cfg)
	metrics.PlansGenerated.WithLabelValues(cfg.ProjectType).Inc()
	s.log.Debug("plan generated",
		zap.String("project_type", cfg.ProjectType),
		zap.String("timeline", cfg.Timeline),
		zap.Int("bytes", len(plan)),
	)
	return plan, nil
}

// BuildArchive renders the plan, materializes the scaffold in a scratch
// directory and returns it zipped. The scratch directory is gone when this returns.
func (s *ProjectService) BuildArchive(cfg domain.ProjectConfig) (*scaffold.Bundle, error) {
	cfg = cfg.WithRenderDefaults()
	plan, err := s.GeneratePlan(cfg)
	if err != nil {
		return nil, err
	}

	bundle, err := scaffold.Build(cfg, plan, s.scratchRoot)
	if err != nil {
		metrics.ArchivesBuilt.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.ArchivesBuilt.WithLabelValues("success").Inc()
	metrics.ArchiveSize.Observe(float64(len(bundle.Data)))
	s.log.Info("archive built",
		zap.String("filename", bundle.Filename),
		zap.Int("bytes", len(bundle.Data)),
	)
	return bundle, nil
}

func (s *ProjectService) cachePut(ctx context.Context, cfg *domain.ProjectConfig) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, cfg); err != nil {
		s.log.Warn("project cache write failed", zap.Int64("id", cfg.ID), zap.Error(err))
	}
}
