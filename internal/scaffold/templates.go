package scaffold

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>My App</title>
</head>
<body>
    <div id="root"></div>
</body>
</html>`

const gitignoreTemplate = `# Dependencies
node_modules/
__pycache__/
*.pyc
*.pyo
*.pyd
.Python
env/
venv/
.venv/

# Environment variables
.env
.env.local
.env.development.local
.env.test.local
.env.production.local

# IDE files
.vscode/
.idea/
*.swp
*.swo

# OS files
.DS_Store
Thumbs.db

# Logs
logs/
*.log
npm-debug.log*
yarn-debug.log*
yarn-error.log*

# Build outputs
build/
dist/
`

const mitLicense = `MIT License

Copyright (c) 2025

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

const envExample = `# Environment Configuration
NODE_ENV=development
PORT=3000
DATABASE_URL=sqlite:///database.db

# API Keys
API_KEY=your_api_key_here

# External Services
STRIPE_SECRET_KEY=sk_test_...
STRIPE_PUBLISHABLE_KEY=pk_test_...
`

var pythonRequirements = []string{"flask==2.3.3", "flask-cors==4.0.0", "python-dotenv==1.0.0"}

// packageManifest is the subset of package.json the generators write.
type packageManifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private,omitempty"`
	Main            string            `json:"main,omitempty"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func frontendManifest(react bool) packageManifest {
	m := packageManifest{
		Name:            "frontend",
		Version:         "0.1.0",
		Private:         true,
		Scripts:         map[string]string{},
		Dependencies:    map[string]string{},
		DevDependencies: map[string]string{},
	}
	if react {
		m.Scripts["start"] = "react-scripts start"
		m.Scripts["build"] = "react-scripts build"
		m.Scripts["test"] = "react-scripts test"
		m.Dependencies["react"] = "^18.2.0"
		m.Dependencies["react-dom"] = "^18.2.0"
		m.DevDependencies["react-scripts"] = "5.0.1"
	}
	return m
}

func nodeBackendManifest() packageManifest {
	return packageManifest{
		Name:    "backend",
		Version: "1.0.0",
		Main:    "server.js",
		Scripts: map[string]string{
			"start": "node server.js",
			"dev":   "nodemon server.js",
		},
		Dependencies: map[string]string{
			"express": "^4.18.2",
			"cors":    "^2.8.5",
			"dotenv":  "^16.3.1",
		},
		DevDependencies: map[string]string{
			"nodemon": "^3.0.1",
		},
	}
}
