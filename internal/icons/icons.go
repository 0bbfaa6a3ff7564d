// Package icons resolves free-text technology names to Simple Icons CDN URLs.
package icons

import (
	"fmt"
	"strings"
)

// CDNTemplate is the icon URL format; the slug is interpolated and the white
// variant is always requested.
const CDNTemplate = "https://cdn.simpleicons.org/%s/white"

// aliases maps human-entered names to Simple Icons slugs. Lookups are case
// sensitive.
var aliases = map[string]string{
	// Languages
	"Python": "python", "JavaScript": "javascript", "Javascript": "javascript",
	"Java": "java", "Java.": "java", "C": "c", "C++": "cplusplus", "C#": "csharp",
	"HTML": "html5", "CSS": "css3", "TypeScript": "typescript",
	"Go": "go", "Rust": "rust", "Ruby": "ruby", "PHP": "php", "Swift": "swift", "Kotlin": "kotlin",

	// Frameworks
	"React": "react", "React.js": "react", "Reactjs": "react", "React Native": "react",
	"Next.js": "nextdotjs", "Node.js": "nodedotjs", "Vue": "vuedotjs", "Angular": "angular",
	"FastAPI": "fastapi", "Flask": "flask", "Django": "django", "Express": "express",
	"Tailwind": "tailwindcss", "TailwindCSS": "tailwindcss",
	"LangChain": "langchain", "LangGraph": "langchain",

	// Databases
	"PostgreSQL": "postgresql", "PostgreSQL (SQL)": "postgresql", "MongoDB": "mongodb",
	"MySQL": "mysql", "SQLite": "sqlite", "Redis": "redis", "Prisma": "prisma",

	// Cloud & DevOps
	"Docker": "docker", "Kubernetes": "kubernetes", "AWS": "amazonaws",
	"Vercel": "vercel", "Render": "render", "Neon": "neon", "Firebase": "firebase",
	"Supabase": "supabase", "Heroku": "heroku", "Linux": "linux",

	// Tools
	"VS Code": "visualstudiocode", "Git": "git", "GitHub": "github", "Github": "github",
	"Jupyter": "jupyter", "Jupyter Notebook": "jupyter", "Google Colab": "googlecolab",
	"Canva": "canva", "Notion": "notion", "Figma": "figma",

	// APIs & Auth
	"JWT": "jsonwebtokens", "REST APIs": "fastapi", "APIs": "fastapi",
	"Authentication": "auth0", "Google OAuth": "google", "OAuth": "auth0", "GraphQL": "graphql",

	// AI/ML
	"TensorFlow": "tensorflow", "PyTorch": "pytorch", "OpenAI": "openai",
	"Streamlit": "streamlit", "LLM Integration": "openai", "Prompt Engineering": "openai",
}

// Clean normalizes a technology name: surrounding whitespace and one trailing
// period are removed, and anything from the first "/" or "(" on is dropped.
func Clean(name string) string {
	clean := strings.TrimSpace(name)
	clean = strings.TrimSuffix(clean, ".")
	if before, _, found := strings.Cut(clean, "/"); found {
		clean = strings.TrimSpace(before)
	}
	if before, _, found := strings.Cut(clean, "("); found {
		clean = strings.TrimSpace(before)
	}
	return clean
}

// Slug returns the icon slug for name, trying the trimmed name before the
// cleaned one.
func Slug(name string) (string, bool) {
	if slug, ok := aliases[strings.TrimSpace(name)]; ok {
		return slug, true
	}
	slug, ok := aliases[Clean(name)]
	return slug, ok
}

// Resolve returns the icon URL for name. ok is false for unknown technologies;
// callers render the name as text instead of a broken image.
func Resolve(name string) (url string, ok bool) {
	slug, ok := Slug(name)
	if !ok {
		return "", false
	}
	return URL(slug), true
}

// URL builds the CDN URL for a slug.
func URL(slug string) string {
	return fmt.Sprintf(CDNTemplate, slug)
}

// Aliases returns a copy of the alias table.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}
