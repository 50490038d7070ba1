package services

// Vocabulary holds the keyword lists the extractors match against. Kept
// as data rather than inline literals so tests can substitute minimal
// lists. Iteration order of Skills and JobTitles is significant: it
// decides output order and tie-breaks.
type Vocabulary struct {
	Skills       []string
	JobTitles    []string
	RoleKeywords []string
}

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Skills:       knownSkills,
		JobTitles:    knownJobTitles,
		RoleKeywords: roleKeywords,
	}
}

var knownSkills = []string{
	"React", "TypeScript", "JavaScript", "Node.js", "NodeJs", "Python", "Java",
	"C++", "C#", "Go", "Rust", "Swift", "Kotlin", "Ruby", "PHP", "SQL", "MySQL",
	"PostgreSQL", "MongoDB", "Redis", "Docker", "Kubernetes", "AWS", "Azure",
	"GCP", "Firebase", "Git", "GraphQL", "REST", "HTML", "CSS", "SASS", "LESS",
	"Tailwind", "Bootstrap", "Material UI", "Next.js", "Vue.js", "Angular",
	"Svelte", "Express", "Django", "Flask", "Spring", "Laravel", "Rails",
	"Flutter", "React Native", "TDD", "CI/CD", "Agile", "Scrum", "Figma",
	"Photoshop", "Machine Learning", "AI", "Data Science", "DevOps",
	"Microservices", "REST API", "ESS", "jQuery", "Yelp API", "Spotify API",
	"OAuth", "EmailJS", "Front-end", "Back-end", "Full-stack",
	"Agile software development", "Test driven development",
	"Code structure and architecture", "Front-end and back-end web",
}

var knownJobTitles = []string{
	"Software Engineer", "Frontend Developer", "Backend Developer",
	"Full Stack Developer", "Web Developer", "Mobile Developer",
	"Data Scientist", "Data Engineer", "DevOps Engineer", "Cloud Engineer",
	"Machine Learning Engineer", "QA Engineer", "Product Manager",
	"UX Designer", "UI Designer", "Technical Support", "System Administrator",
	"Database Administrator", "Network Engineer", "Security Engineer",
	"Solutions Architect", "Technical Lead", "Engineering Manager",
	"Junior Web Developer", "Senior Developer", "Technical Support Assistant",
}

var roleKeywords = []string{
	"developer", "engineer", "assistant", "manager", "lead", "designer", "analyst",
}
