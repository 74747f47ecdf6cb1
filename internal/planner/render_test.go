package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

func TestRenderStructure(t *testing.T) {
	full := RenderStructure("fullstack", "demo")
	assert.True(t, strings.HasPrefix(full, "📁 demo/\n"))
	assert.Contains(t, full, "📁 frontend/")
	assert.Contains(t, full, "📁 database/")

	assert.Contains(t, RenderStructure("frontend", "demo"), "📁 styles/")
	assert.Contains(t, RenderStructure("backend", "demo"), "📁 controllers/")

	assert.Equal(t, full, RenderStructure("", "demo"))
	assert.Equal(t, full, RenderStructure("mobile", "demo"))
}

func TestRenderGettingStarted(t *testing.T) {
	t.Run("react and flask on fullstack", func(t *testing.T) {
		stack := domain.TechStack{
			"frontend": {"React"},
			"backend":  {"Flask"},
		}
		out := RenderGettingStarted(stack, "fullstack", "octo", "demo")
		assert.True(t, strings.HasPrefix(out, "1. Clone the repository:\n"))
		assert.Contains(t, out, "git clone https://github.com/octo/demo.git\n")
		assert.Contains(t, out, "2. Set up frontend:\n")
		assert.Contains(t, out, "   npm start\n")
		assert.Contains(t, out, "3. Set up backend:\n")
		assert.Contains(t, out, "pip install -r requirements.txt\n")
		assert.True(t, strings.HasSuffix(out, "6. Open your browser to the frontend URL\n"))
	})

	t.Run("vue and node", func(t *testing.T) {
		stack := domain.TechStack{
			"frontend": {"Vue.js"},
			"backend":  {"Node.js"},
		}
		out := RenderGettingStarted(stack, "fullstack", "octo", "demo")
		assert.Contains(t, out, "npm run dev\n")
		assert.NotContains(t, out, "python -m venv")
	})

	t.Run("unknown technologies fall back to placeholders", func(t *testing.T) {
		stack := domain.TechStack{
			"frontend": {"Svelte"},
			"backend":  {"Go"},
		}
		out := RenderGettingStarted(stack, "fullstack", "octo", "demo")
		assert.Contains(t, out, "# Follow the specific setup instructions for your chosen frontend\n")
		assert.Contains(t, out, "# Follow the specific setup instructions for your chosen backend\n")
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		stack := domain.TechStack{"frontend": {"react"}}
		out := RenderGettingStarted(stack, "frontend", "octo", "demo")
		assert.Contains(t, out, "chosen frontend")
		assert.NotContains(t, out, "npm start")
	})

	t.Run("project type gates the steps", func(t *testing.T) {
		stack := domain.TechStack{
			"frontend": {"React"},
			"backend":  {"Python"},
		}
		front := RenderGettingStarted(stack, "frontend", "octo", "demo")
		assert.Contains(t, front, "2. Set up frontend:")
		assert.NotContains(t, front, "3. Set up backend:")

		back := RenderGettingStarted(stack, "backend", "octo", "demo")
		assert.NotContains(t, back, "2. Set up frontend:")
		assert.Contains(t, back, "3. Set up backend:")
	})

	t.Run("empty lists skip the steps", func(t *testing.T) {
		out := RenderGettingStarted(domain.TechStack{}, "fullstack", "octo", "demo")
		assert.NotContains(t, out, "Set up frontend")
		assert.NotContains(t, out, "Set up backend")
		assert.Contains(t, out, "4. Set up environment variables")
	})
}
