package planner

import "github.com/GoSim-25-26J-441/vibe-code-assistant/internal/projects/domain"

const fullstackTree = `├── 📁 frontend/
│   ├── 📄 package.json
│   ├── 📁 src/
│   │   ├── 📁 components/
│   │   ├── 📁 pages/
│   │   └── 📁 assets/
│   └── 📄 index.html
├── 📁 backend/
│   ├── 📄 app.py / server.js
│   ├── 📄 requirements.txt / package.json
│   ├── 📁 models/
│   ├── 📁 routes/
│   └── 📁 utils/
├── 📁 database/
│   └── 📄 migrations/
├── 📄 docker-compose.yml
├── 📄 .env.example
├── 📄 .gitignore
├── 📄 README.md
└── 📄 LICENSE`

const frontendTree = `├── 📁 src/
│   ├── 📁 components/
│   ├── 📁 pages/
│   ├── 📁 assets/
│   └── 📁 styles/
├── 📄 package.json
├── 📄 vite.config.js / webpack.config.js
├── 📄 .gitignore
├── 📄 README.md
├── 📄 index.html
└── 📄 LICENSE`

const backendTree = `├── 📁 src/
│   ├── 📁 controllers/
│   ├── 📁 models/
│   ├── 📁 routes/
│   ├── 📁 middleware/
│   └── 📁 utils/
├── 📄 package.json / requirements.txt
├── 📄 server.js / app.py
├── 📄 .env.example
├── 📄 .gitignore
├── 📄 README.md
├── 📄 dockerfile
└── 📄 LICENSE`

var trees = map[string]string{
	domain.ProjectTypeFullstack: fullstackTree,
	domain.ProjectTypeFrontend:  frontendTree,
	domain.ProjectTypeBackend:   backendTree,
}

// RenderStructure returns the canned directory diagram for projectType rooted at
// repoName. Unknown types get the fullstack diagram.
func RenderStructure(projectType, repoName string) string {
	tree, ok := trees[projectType]
	if !ok {
		tree = fullstackTree
	}
	return "📁 " + repoName + "/\n" + tree
}
