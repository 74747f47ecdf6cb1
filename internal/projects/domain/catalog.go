package domain

// DefaultTechStacks is the suggested technology catalog served to the UI.
// Submitted stacks are not checked against it.
func DefaultTechStacks() TechStack {
	return TechStack{
		CategoryFrontend: {
			"React", "Vue.js", "Angular", "Svelte", "Next.js", "Nuxt.js",
			"HTML/CSS/JS", "TypeScript", "Tailwind CSS", "Bootstrap", "Material UI",
		},
		CategoryBackend: {
			"Node.js", "Express", "Python", "Flask", "Django", "FastAPI",
			"Ruby on Rails", "Spring Boot", "Laravel", "ASP.NET", "Go", "Rust",
		},
		CategoryDatabase: {
			"PostgreSQL", "MySQL", "MongoDB", "SQLite", "Redis", "Firebase",
			"Supabase", "GraphQL", "Elasticsearch",
		},
		CategoryTools: {
			"Docker", "Git", "GitHub Actions", "Jest", "Cypress", "Webpack",
			"Vite", "Ollama", "OpenAI API",
		},
	}
}

// DefaultFeatures is the suggested feature list served to the UI.
func DefaultFeatures() []string {
	return []string{
		"Authentication (OAuth, JWT, sessions)",
		"Admin Panel",
		"AI Integration (ChatGPT, local models)",
		"Real-time features (WebSockets)",
		"CRUD Operations",
		"Analytics & Statistics",
		"File Upload",
		"Payment Integration",
	}
}
