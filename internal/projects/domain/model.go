package domain

import "time"

// ProjectConfig is a submitted project configuration. It is storage-agnostic and
// shared by the repository, planner, scaffold and HTTP layers.
type ProjectConfig struct {
	ID                 int64     `json:"id,omitempty" yaml:"id,omitempty"`
	Title              string    `json:"title" yaml:"title"`
	Description        string    `json:"description" yaml:"description"`
	ProjectType        string    `json:"project_type" yaml:"project_type"`
	Timeline           string    `json:"timeline" yaml:"timeline"`
	Difficulty         string    `json:"difficulty" yaml:"difficulty"`
	TechStack          TechStack `json:"tech_stack" yaml:"tech_stack"`
	Features           []string  `json:"features" yaml:"features"`
	DeploymentPlatform string    `json:"deployment_platform" yaml:"deployment_platform"`
	RepoName           string    `json:"repo_name" yaml:"repo_name"`
	IncludeReadme      bool      `json:"include_readme" yaml:"include_readme"`
	IncludeLicense     bool      `json:"include_license" yaml:"include_license"`
	IncludeGitignore   bool      `json:"include_gitignore" yaml:"include_gitignore"`
	CreatedAt          time.Time `json:"created_at" yaml:"-"`
	UpdatedAt          time.Time `json:"updated_at" yaml:"-"`

	// GitHubUsername is only used when rendering; it is never persisted.
	GitHubUsername string `json:"github_username,omitempty" yaml:"github_username,omitempty"`
}

// TechStack maps a category (frontend, backend, database, tools) to the
// technologies picked for it, in selection order.
type TechStack map[string][]string

// Get returns the technologies for a category. A nil stack is allowed.
func (ts TechStack) Get(category string) []string {
	if ts == nil {
		return nil
	}
	return ts[category]
}

// Has reports whether name was selected under category. Matching is exact and case-sensitive.
func (ts TechStack) Has(category, name string) bool {
	for _, t := range ts.Get(category) {
		if t == name {
			return true
		}
	}
	return false
}

// HasAny reports whether any of names was selected under category.
func (ts TechStack) HasAny(category string, names ...string) bool {
	for _, n := range names {
		if ts.Has(category, n) {
			return true
		}
	}
	return false
}

// ProjectInput is the client-submitted body. Pointer booleans let an absent flag
// fall back to its default instead of false.
type ProjectInput struct {
	Title              string    `json:"title" yaml:"title"`
	Description        string    `json:"description" yaml:"description"`
	ProjectType        string    `json:"project_type" yaml:"project_type"`
	Timeline           string    `json:"timeline" yaml:"timeline"`
	Difficulty         string    `json:"difficulty" yaml:"difficulty"`
	TechStack          TechStack `json:"tech_stack" yaml:"tech_stack"`
	Features           []string  `json:"features" yaml:"features"`
	DeploymentPlatform string    `json:"deployment_platform" yaml:"deployment_platform"`
	RepoName           string    `json:"repo_name" yaml:"repo_name"`
	GitHubUsername     string    `json:"github_username" yaml:"github_username"`
	IncludeReadme      *bool     `json:"include_readme" yaml:"include_readme"`
	IncludeLicense     *bool     `json:"include_license" yaml:"include_license"`
	IncludeGitignore   *bool     `json:"include_gitignore" yaml:"include_gitignore"`
}

// Config converts the input into a ProjectConfig with field defaults applied.
// Enumerated fields are copied as-is; callers validate them.
func (in ProjectInput) Config() ProjectConfig {
	cfg := ProjectConfig{
		Title:              in.Title,
		Description:        in.Description,
		ProjectType:        in.ProjectType,
		Timeline:           in.Timeline,
		Difficulty:         in.Difficulty,
		TechStack:          in.TechStack,
		Features:           in.Features,
		DeploymentPlatform: in.DeploymentPlatform,
		RepoName:           in.RepoName,
		GitHubUsername:     in.GitHubUsername,
		IncludeReadme:      boolOr(in.IncludeReadme, true),
		IncludeLicense:     boolOr(in.IncludeLicense, false),
		IncludeGitignore:   boolOr(in.IncludeGitignore, true),
	}
	if cfg.TechStack == nil {
		cfg.TechStack = TechStack{}
	}
	if cfg.Features == nil {
		cfg.Features = []string{}
	}
	if cfg.DeploymentPlatform == "" {
		cfg.DeploymentPlatform = DefaultDeploymentPlatform
	}
	return cfg
}

// WithRenderDefaults fills absent enumerated fields with the values used when a
// plan is rendered from a partial configuration.
func (c ProjectConfig) WithRenderDefaults() ProjectConfig {
	if c.ProjectType == "" {
		c.ProjectType = ProjectTypeFullstack
	}
	if c.Timeline == "" {
		c.Timeline = Timeline1Week
	}
	if c.Difficulty == "" {
		c.Difficulty = DifficultyIntermediate
	}
	return c
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
