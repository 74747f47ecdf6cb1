package planner

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"
)

// RenderGettingStarted emits the numbered setup steps for a stack. Step numbers
// are fixed, so a skipped frontend or backend step leaves a gap.
func RenderGettingStarted(stack domain.TechStack, projectType, username, repoName string) string {
	var b strings.Builder

	b.WriteString("1. Clone the repository:\n")
	b.WriteString("   ```bash\n")
	fmt.Fprintf(&b, "   git clone https://github.com/%s/%s.git\n", username, repoName)
	fmt.Fprintf(&b, "   cd %s\n", repoName)
	b.WriteString("   ```\n\n")

	frontend := stack.Get(domain.CategoryFrontend)
	if (projectType == domain.ProjectTypeFullstack || projectType == domain.ProjectTypeFrontend) && len(frontend) > 0 {
		b.WriteString("2. Set up frontend:\n")
		b.WriteString("   ```bash\n")
		switch {
		case stack.Has(domain.CategoryFrontend, "React"):
			b.WriteString("   cd frontend\n   npm install\n   npm start\n")
		case stack.Has(domain.CategoryFrontend, "Vue.js"):
			b.WriteString("   cd frontend\n   npm install\n   npm run dev\n")
		default:
			b.WriteString("   # Follow the specific setup instructions for your chosen frontend\n")
		}
		b.WriteString("   ```\n\n")
	}

	backend := stack.Get(domain.CategoryBackend)
	if (projectType == domain.ProjectTypeFullstack || projectType == domain.ProjectTypeBackend) && len(backend) > 0 {
		b.WriteString("3. Set up backend:\n")
		b.WriteString("   ```bash\n")
		switch {
		case stack.HasAny(domain.CategoryBackend, "Python", "Flask"):
			b.WriteString("   cd backend\n")
			b.WriteString("   python -m venv venv\n")
			b.WriteString("   source venv/bin/activate  # On Windows: venv\\Scripts\\activate\n")
			b.WriteString("   pip install -r requirements.txt\n")
			b.WriteString("   python app.py\n")
		case stack.Has(domain.CategoryBackend, "Node.js"):
			b.WriteString("   cd backend\n   npm install\n   npm start\n")
		default:
			b.WriteString("   # Follow the specific setup instructions for your chosen backend\n")
		}
		b.WriteString("   ```\n\n")
	}

	b.WriteString("4. Set up environment variables (copy .env.example to .env)\n")
	b.WriteString("5. Start development servers\n")
	b.WriteString("6. Open your browser to the frontend URL\n")
	return b.String()
}
