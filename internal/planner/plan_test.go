package planner

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

func fixedClock() func() time.Time {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestGenerate_BasicPlan(t *testing.T) {
	p := New(WithClock(fixedClock()))
	cfg := domain.ProjectConfig{
		Title:       "Test Project",
		Description: "A test project",
		ProjectType: "frontend",
		Timeline:    "1week",
		Difficulty:  "beginner",
		TechStack: domain.TechStack{
			"frontend": {"React"},
			"backend":  {},
			"database": {},
			"tools":    {},
		},
		Features:      []string{"Authentication"},
		RepoName:      "test-project",
		IncludeReadme: true,
	}

	plan := p.Generate(cfg)

	assert.True(t, strings.HasPrefix(plan, "# Test Project\n"))
	assert.Contains(t, plan, "A test project")
	assert.Contains(t, plan, "- **Type:** Frontend\n")
	assert.Contains(t, plan, "(7 days)")
	assert.Contains(t, plan, "- **Difficulty:** Beginner\n")
	assert.Contains(t, plan, "- React\n")
	assert.Contains(t, plan, "- ✅ Authentication")
	assert.Contains(t, plan, "📅 Development Timeline")
	assert.Contains(t, plan, "🚀 Getting Started")
	assert.Contains(t, plan, "### Planning & Setup (Day 1-1)")
	assert.Contains(t, plan, "### Testing & Polish (Day 8-8)")
	assert.Contains(t, plan, "- **Repository:** https://github.com/yourusername/test-project\n")
	assert.Contains(t, plan, "- **Include README:** Yes\n")
	assert.Contains(t, plan, "- **Include License:** No\n")
	assert.Contains(t, plan, "- **Created:** 2025-03-14 09:30\n")
	assert.True(t, strings.HasSuffix(plan, "*Generated by Vibe Code Assistant on 2025-03-14*\n"))
}

func TestGenerate_Placeholders(t *testing.T) {
	p := New(WithClock(fixedClock()))
	plan := p.Generate(domain.ProjectConfig{
		ProjectType: "backend",
		Timeline:    "2weeks",
		Difficulty:  "advanced",
		TechStack: domain.TechStack{
			"backend":  {"Python", "Flask"},
			"database": {"PostgreSQL"},
		},
	})

	assert.Contains(t, plan, "# Untitled Project\n")
	assert.Contains(t, plan, "No description provided")
	assert.Contains(t, plan, "- **Type:** Backend\n")
	assert.Contains(t, plan, "### Frontend\n- *No specific technologies selected*\n")
	assert.Contains(t, plan, "### Tools & DevOps\n- *No specific technologies selected*\n")
	assert.Contains(t, plan, "## ✨ Features\n- *No specific features selected*\n")
	assert.Contains(t, plan, "- **Platform:** Github\n")
	assert.Contains(t, plan, "my-project")
}

func TestGenerate_SectionOrder(t *testing.T) {
	plan := New(WithClock(fixedClock())).Generate(domain.ProjectConfig{
		ProjectType: "fullstack", Timeline: "weekend", Difficulty: "expert",
	})

	sections := []string{
		"## 📋 Project Overview",
		"## 🎯 Project Details",
		"## 🛠️ Tech Stack",
		"## ✨ Features",
		"## 🚀 Deployment",
		"## 📅 Development Timeline",
		"## 📁 Project Structure",
		"## 🚀 Getting Started",
		"*Generated by Vibe Code Assistant",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(plan, s)
		assert.Greater(t, idx, last, s)
		last = idx
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	p := New(WithClock(fixedClock()), WithDefaultUsername("octo"))
	cfg := domain.ProjectConfig{
		Title:       "Same",
		ProjectType: "fullstack",
		Timeline:    "3months",
		Difficulty:  "expert",
		TechStack:   domain.TechStack{"frontend": {"Vue.js"}, "backend": {"Node.js"}},
		Features:    []string{"Admin Panel", "File Upload"},
	}

	first := p.Generate(cfg)
	assert.Equal(t, first, p.Generate(cfg))
	assert.Contains(t, first, "https://github.com/octo/my-project")
}

func TestGenerate_DayCountFollowsTimeline(t *testing.T) {
	p := New(WithClock(fixedClock()))
	plan := p.Generate(domain.ProjectConfig{ProjectType: "fullstack", Timeline: "open", Difficulty: "beginner"})
	assert.Contains(t, plan, "(0 days)")
	assert.Contains(t, plan, "### Testing & Polish (Day 4-4)")
}

func TestHumanize(t *testing.T) {
	assert.Equal(t, "Fullstack", Humanize("fullstack"))
	assert.Equal(t, "Github Pages", Humanize("github_pages"))
	assert.Equal(t, "Intermediate", Humanize("intermediate"))
}
