// Package planner renders a project configuration into a markdown project plan.
// Everything here is a pure function of its inputs except the timestamps
// supplied by the Planner's clock.
package planner

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

const (
	noTechPlaceholder    = "- *No specific technologies selected*"
	noFeaturePlaceholder = "- *No specific features selected*"
)

// Planner assembles plans. The zero value is not usable; use New.
type Planner struct {
	now             func() time.Time
	defaultUsername string
}

type Option func(*Planner)

// WithClock overrides the time source used for the Created line and footer.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) { p.now = now }
}

// WithDefaultUsername sets the GitHub username used when a configuration has none.
func WithDefaultUsername(username string) Option {
	return func(p *Planner) {
		if username != "" {
			p.defaultUsername = username
		}
	}
}

func New(opts ...Option) *Planner {
	p := &Planner{
		now:             time.Now,
		defaultUsername: domain.DefaultGitHubUsername,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate assembles the plan for cfg. The day count always comes from cfg.Timeline.
func (p *Planner) Generate(cfg domain.ProjectConfig) string {
	now := p.now()

	title := orDefault(cfg.Title, domain.DefaultTitle)
	description := orDefault(cfg.Description, domain.DefaultDescription)
	repoName := orDefault(cfg.RepoName, domain.DefaultRepoName)
	username := orDefault(cfg.GitHubUsername, p.defaultUsername)
	platform := orDefault(cfg.DeploymentPlatform, domain.DefaultDeploymentPlatform)
	days := domain.TimelineDays(cfg.Timeline)

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "## 📋 Project Overview\n%s\n\n", description)

	b.WriteString("## 🎯 Project Details\n")
	fmt.Fprintf(&b, "- **Type:** %s\n", Humanize(cfg.ProjectType))
	fmt.Fprintf(&b, "- **Timeline:** %s (%d days)\n", Humanize(cfg.Timeline), days)
	fmt.Fprintf(&b, "- **Difficulty:** %s\n", Humanize(cfg.Difficulty))
	fmt.Fprintf(&b, "- **Created:** %s\n\n", now.Format("2006-01-02 15:04"))

	b.WriteString("## 🛠️ Tech Stack\n")
	fmt.Fprintf(&b, "### Frontend\n%s\n\n", formatTechList(cfg.TechStack.Get(domain.CategoryFrontend)))
	fmt.Fprintf(&b, "### Backend\n%s\n\n", formatTechList(cfg.TechStack.Get(domain.CategoryBackend)))
	fmt.Fprintf(&b, "### Database & Storage\n%s\n\n", formatTechList(cfg.TechStack.Get(domain.CategoryDatabase)))
	fmt.Fprintf(&b, "### Tools & DevOps\n%s\n\n", formatTechList(cfg.TechStack.Get(domain.CategoryTools)))

	fmt.Fprintf(&b, "## ✨ Features\n%s\n\n", formatFeatureList(cfg.Features))

	b.WriteString("## 🚀 Deployment\n")
	fmt.Fprintf(&b, "- **Platform:** %s\n", Humanize(platform))
	fmt.Fprintf(&b, "- **Repository:** https://github.com/%s/%s\n", username, repoName)
	fmt.Fprintf(&b, "- **Include README:** %s\n", yesNo(cfg.IncludeReadme))
	fmt.Fprintf(&b, "- **Include License:** %s\n", yesNo(cfg.IncludeLicense))
	fmt.Fprintf(&b, "- **Include .gitignore:** %s\n\n", yesNo(cfg.IncludeGitignore))

	fmt.Fprintf(&b, "## 📅 Development Timeline\n%s", RenderTimeline(days, cfg.ProjectType, cfg.Difficulty))
	fmt.Fprintf(&b, "## 📁 Project Structure\n```\n%s\n```\n\n", RenderStructure(cfg.ProjectType, repoName))
	fmt.Fprintf(&b, "## 🚀 Getting Started\n%s\n", RenderGettingStarted(cfg.TechStack, cfg.ProjectType, username, repoName))

	b.WriteString("---\n")
	fmt.Fprintf(&b, "*Generated by Vibe Code Assistant on %s*\n", now.Format("2006-01-02"))
	return b.String()
}

// Humanize formats an enumerated value for display: underscores become spaces
// and words are title-cased.
func Humanize(v string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(v, "_", " "))
}

func formatTechList(items []string) string {
	if len(items) == 0 {
		return noTechPlaceholder
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- " + it
	}
	return strings.Join(lines, "\n")
}

func formatFeatureList(items []string) string {
	if len(items) == 0 {
		return noFeaturePlaceholder
	}
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "- ✅ " + it
	}
	return strings.Join(lines, "\n")
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
