package service

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/planner"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/repository"
)

type memRepo struct {
	mu      sync.Mutex
	nextID  int64
	items   []domain.ProjectConfig
	gets    int
	failErr error
}

func (r *memRepo) Create(_ context.Context, cfg *domain.ProjectConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failErr != nil {
		return r.failErr
	}
	r.nextID++
	cfg.ID = r.nextID
	cfg.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg.UpdatedAt = cfg.CreatedAt
	r.items = append(r.items, *cfg)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*domain.ProjectConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	for i := range r.items {
		if r.items[i].ID == id {
			cfg := r.items[i]
			return &cfg, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memRepo) List(_ context.Context) ([]domain.ProjectConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ProjectConfig, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		out = append(out, r.items[i])
	}
	return out, nil
}

func validInput() domain.ProjectInput {
	return domain.ProjectInput{
		Title:       "Todo App",
		ProjectType: domain.ProjectTypeFullstack,
		Timeline:    domain.Timeline1Week,
		Difficulty:  domain.DifficultyBeginner,
		TechStack:   domain.TechStack{domain.CategoryFrontend: {"React"}},
		Features:    []string{"User Authentication"},
		RepoName:    "todo-app",
	}
}

func fixedPlanner() *planner.Planner {
	return planner.New(planner.WithClock(func() time.Time {
		return time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	}))
}

func TestCreate_StoresWithDefaults(t *testing.T) {
	repo := &memRepo{}
	svc := NewProjectService(repo, Options{})

	in := validInput()
	in.Title = ""
	in.GitHubUsername = "octocat"

	cfg, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.ID)
	assert.Equal(t, domain.DefaultTitle, cfg.Title)
	assert.True(t, cfg.IncludeReadme)
	assert.False(t, cfg.IncludeLicense)
	assert.True(t, cfg.IncludeGitignore)
	assert.Equal(t, "github", cfg.DeploymentPlatform)
	assert.Empty(t, cfg.GitHubUsername)
	assert.Len(t, repo.items, 1)
}

func TestCreate_ValidationFailureStoresNothing(t *testing.T) {
	repo := &memRepo{}
	svc := NewProjectService(repo, Options{})

	in := validInput()
	in.Timeline = "2months"

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "Invalid timeline: 2months", err.Error())
	assert.Empty(t, repo.items)
}

func TestCreate_MissingFieldReportedFirst(t *testing.T) {
	svc := NewProjectService(&memRepo{}, Options{})

	in := validInput()
	in.ProjectType = "desktop"
	in.Difficulty = ""

	_, err := svc.Create(context.Background(), in)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: difficulty", err.Error())
}

func TestCreate_RepositoryError(t *testing.T) {
	repo := &memRepo{failErr: errors.New("connection refused")}
	svc := NewProjectService(repo, Options{})

	_, err := svc.Create(context.Background(), validInput())
	require.Error(t, err)
	assert.False(t, domain.IsValidation(err))
}

func TestGet_NotFound(t *testing.T) {
	svc := NewProjectService(&memRepo{}, Options{})

	_, err := svc.Get(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet_ReadThroughCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &memRepo{}
	svc := NewProjectService(repo, Options{Cache: repository.NewProjectCache(client, time.Minute)})
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, 0, repo.gets, "create should have populated the cache")

	mr.FlushAll()
	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 1, repo.gets)

	_, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.gets)
}

func TestGet_CacheDownFallsBackToRepository(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &memRepo{}
	svc := NewProjectService(repo, Options{Cache: repository.NewProjectCache(client, time.Minute)})
	ctx := context.Background()

	created, err := svc.Create(ctx, validInput())
	require.NoError(t, err)

	mr.Close()
	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 1, repo.gets)
}

func TestList_NewestFirst(t *testing.T) {
	svc := NewProjectService(&memRepo{}, Options{})
	ctx := context.Background()

	for _, title := range []string{"first", "second"} {
		in := validInput()
		in.Title = title
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].Title)
	assert.Equal(t, "first", items[1].Title)
}

func TestGeneratePlan_AppliesRenderDefaults(t *testing.T) {
	svc := NewProjectService(&memRepo{}, Options{Planner: fixedPlanner()})

	plan, err := svc.GeneratePlan(domain.ProjectConfig{Title: "Partial"})
	require.NoError(t, err)
	assert.Contains(t, plan, "# Partial")
	assert.Contains(t, plan, "**Type:** Fullstack")
	assert.Contains(t, plan, "(7 days)")
	assert.Contains(t, plan, "*Generated by Vibe Code Assistant on 2024-03-05*")
}

func TestGeneratePlan_RejectsIllegalValues(t *testing.T) {
	svc := NewProjectService(&memRepo{}, Options{})

	_, err := svc.GeneratePlan(domain.ProjectConfig{ProjectType: "desktop"})
	require.Error(t, err)
	assert.Equal(t, "Invalid project type: desktop", err.Error())
}

func TestBuildArchive(t *testing.T) {
	svc := NewProjectService(&memRepo{}, Options{
		Planner:     fixedPlanner(),
		ScratchRoot: t.TempDir(),
	})

	cfg := validInput().Config()
	cfg.RepoName = "My Cool App!"

	bundle, err := svc.BuildArchive(cfg)
	require.NoError(t, err)
	assert.Equal(t, "my-cool-app.zip", bundle.Filename)

	zr, err := zip.NewReader(bytes.NewReader(bundle.Data), int64(len(bundle.Data)))
	require.NoError(t, err)

	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["README.md"])
	assert.True(t, names["frontend/package.json"])
	assert.True(t, names[".env.example"])
	assert.False(t, names["LICENSE"])
}

func TestBuildArchive_InvalidConfig(t *testing.T) {
	svc := NewProjectService(&memRepo{}, Options{ScratchRoot: t.TempDir()})

	_, err := svc.BuildArchive(domain.ProjectConfig{Timeline: "forever"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}
