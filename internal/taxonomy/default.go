package taxonomy

// defaultEntries mirrors the built-in skills database. Canonical names use
// the same spelling as the analyzer tables and the job catalog.
var defaultEntries = []Entry{
	// Programming languages
	{"Python", []string{"python", "django", "flask", "fastapi", "pandas", "numpy", "scikit-learn", "tensorflow", "pytorch"}},
	{"JavaScript", []string{"javascript", "js", "node.js", "express.js", "react", "angular", "vue.js", "jquery"}},
	{"Java", []string{"java", "spring", "spring boot", "hibernate", "maven", "gradle"}},
	{"C++", []string{"c++", "cpp", "stl", "boost"}},
	{"C#", []string{"c#", "asp.net", ".net", "entity framework"}},
	{"PHP", []string{"php", "laravel", "symfony", "wordpress"}},
	{"Ruby", []string{"ruby", "rails", "sinatra"}},
	{"Go", []string{"go", "golang"}},
	{"Rust", []string{"rust"}},

	// Web technologies
	{"HTML", []string{"html", "html5", "xhtml"}},
	{"CSS", []string{"css", "css3", "sass", "scss", "less", "bootstrap", "tailwind"}},
	{"SQL", []string{"sql", "mysql", "postgresql", "sqlite", "oracle", "mongodb", "redis"}},

	// Cloud and DevOps
	{"AWS", []string{"aws", "amazon web services", "ec2", "s3", "lambda", "rds"}},
	{"Azure", []string{"azure", "microsoft azure"}},
	{"Google Cloud", []string{"gcp", "google cloud", "google cloud platform"}},
	{"Docker", []string{"docker", "containerization"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"Jenkins", []string{"jenkins", "ci/cd"}},
	{"Git", []string{"git", "github", "gitlab", "bitbucket"}},

	// Tools
	{"JIRA", []string{"jira", "atlassian"}},
	{"Confluence", []string{"confluence"}},
	{"Slack", []string{"slack"}},
	{"Trello", []string{"trello"}},
	{"Figma", []string{"figma"}},
	{"Adobe Photoshop", []string{"photoshop", "adobe photoshop"}},
	{"Adobe Illustrator", []string{"illustrator", "adobe illustrator"}},

	// Data science
	{"Machine Learning", []string{"machine learning", "ml", "ai", "artificial intelligence"}},
	{"Deep Learning", []string{"deep learning", "neural networks"}},
	{"Data Analysis", []string{"data analysis", "data analytics"}},
	{"Tableau", []string{"tableau"}},
	{"Power BI", []string{"power bi", "powerbi"}},
	{"Excel", []string{"excel", "microsoft excel"}},

	// Methodologies
	{"Agile", []string{"agile", "scrum", "kanban", "sprint"}},
	{"DevOps", []string{"devops"}},
	{"Microservices", []string{"microservices"}},
	{"GraphQL", []string{"graphql"}},
	{"REST API", []string{"rest", "rest api", "api"}},

	// Other
	{"Cybersecurity", []string{"cybersecurity", "security", "penetration testing", "ethical hacking"}},
	{"Blockchain", []string{"blockchain", "ethereum", "bitcoin"}},
	{"IoT", []string{"iot", "internet of things"}},
	{"Mobile Development", []string{"android", "ios", "react native", "flutter", "xamarin"}},
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t, err := New(defaultEntries)
	if err != nil {
		panic("taxonomy: invalid built-in table: " + err.Error())
	}
	return t
}
