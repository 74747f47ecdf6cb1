package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

// ProjectRepository persists project configurations in Postgres. The tech stack
// and feature list are stored as JSON text and decoded on read.
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const selectColumns = `id, title, description, project_type, timeline, difficulty, tech_stack, features,
       deployment_platform, repo_name, include_readme, include_license, include_gitignore,
       created_at, updated_at`

// Create inserts cfg in its own transaction and fills in ID, CreatedAt and UpdatedAt.
// Any failure rolls the transaction back.
func (r *ProjectRepository) Create(ctx context.Context, cfg *domain.ProjectConfig) error {
	techJSON, featuresJSON, err := encodeLists(cfg)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	const q = `
INSERT INTO project_configs (
	title, description, project_type, timeline, difficulty, tech_stack, features,
	deployment_platform, repo_name, include_readme, include_license, include_gitignore
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, created_at, updated_at;
`
	err = tx.QueryRowContext(ctx, q,
		cfg.Title,
		cfg.Description,
		cfg.ProjectType,
		cfg.Timeline,
		cfg.Difficulty,
		techJSON,
		featuresJSON,
		cfg.DeploymentPlatform,
		cfg.RepoName,
		cfg.IncludeReadme,
		cfg.IncludeLicense,
		cfg.IncludeGitignore,
	).Scan(&cfg.ID, &cfg.CreatedAt, &cfg.UpdatedAt)
	if err != nil {
		return wrapPQ("insert project config", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID returns domain.ErrNotFound when no row has the id.
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.ProjectConfig, error) {
	q := `SELECT ` + selectColumns + ` FROM project_configs WHERE id = $1;`

	cfg, err := scanConfig(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, wrapPQ("get project config", err)
	}
	return cfg, nil
}

// List returns all configurations, newest first.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.ProjectConfig, error) {
	q := `SELECT ` + selectColumns + ` FROM project_configs ORDER BY created_at DESC, id DESC;`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, wrapPQ("list project configs", err)
	}
	defer rows.Close()

	out := make([]domain.ProjectConfig, 0, 16)
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConfig(row rowScanner) (*domain.ProjectConfig, error) {
	var (
		cfg                    domain.ProjectConfig
		title, description     sql.NullString
		techJSON, featuresJSON sql.NullString
		platform, repoName     sql.NullString
	)
	err := row.Scan(
		&cfg.ID,
		&title,
		&description,
		&cfg.ProjectType,
		&cfg.Timeline,
		&cfg.Difficulty,
		&techJSON,
		&featuresJSON,
		&platform,
		&repoName,
		&cfg.IncludeReadme,
		&cfg.IncludeLicense,
		&cfg.IncludeGitignore,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg.Title = title.String
	cfg.Description = description.String
	cfg.DeploymentPlatform = platform.String
	cfg.RepoName = repoName.String

	cfg.TechStack = domain.TechStack{}
	if techJSON.Valid && techJSON.String != "" {
		if err := json.Unmarshal([]byte(techJSON.String), &cfg.TechStack); err != nil {
			return nil, fmt.Errorf("decode tech_stack for project %d: %w", cfg.ID, err)
		}
	}
	cfg.Features = []string{}
	if featuresJSON.Valid && featuresJSON.String != "" {
		if err := json.Unmarshal([]byte(featuresJSON.String), &cfg.Features); err != nil {
			return nil, fmt.Errorf("decode features for project %d: %w", cfg.ID, err)
		}
	}
	return &cfg, nil
}

func encodeLists(cfg *domain.ProjectConfig) (string, string, error) {
	stack := cfg.TechStack
	if stack == nil {
		stack = domain.TechStack{}
	}
	features := cfg.Features
	if features == nil {
		features = []string{}
	}

	techJSON, err := json.Marshal(stack)
	if err != nil {
		return "", "", fmt.Errorf("encode tech_stack: %w", err)
	}
	featuresJSON, err := json.Marshal(features)
	if err != nil {
		return "", "", fmt.Errorf("encode features: %w", err)
	}
	return string(techJSON), string(featuresJSON), nil
}

// wrapPQ adds the Postgres error code to driver errors.
func wrapPQ(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s (pq %s): %w", op, pgErr.Code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
