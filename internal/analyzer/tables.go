package analyzer

// Demand tier names, in precedence order.
const (
	TierHigh     = "High Demand"
	TierMedium   = "Medium Demand"
	TierEmerging = "Emerging"
	TierStandard = "Standard"
)

// Market trend buckets.
const (
	TrendHot       = "hot_skills"
	TrendGrowing   = "growing_demand"
	TrendStable    = "stable_skills"
	TrendDeclining = "declining_skills"
)

// OtherCategory collects skills that no category table claims.
const OtherCategory = "Other"

// Category is a named group of skills. Categories are checked in order.
type Category struct {
	Name   string
	Skills []string
}

// ComplementRule recommends Suggest when every skill in Has is present and
// Lacks is absent.
type ComplementRule struct {
	Has      []string
	Lacks    string
	Type     string
	Suggest  []string
	Priority string
	Reason   string
}

// GapRule flags an area. Frontend and backend indicators are evaluated as a
// pair; the DevOps rule fires when none of its indicators are present.
type GapRule struct {
	Area       string
	Indicators []string
	Missing    []string
	Impact     string
}

// Tables holds every static table the analyzer consults. Build it with
// DefaultTables and share it read-only.
type Tables struct {
	Categories []Category

	HighDemand   []string
	MediumDemand []string
	Emerging     []string

	HighDemandPick int
	EmergingPick   int

	Complements []ComplementRule

	Frontend GapRule
	Backend  GapRule
	DevOps   GapRule

	Growing []string
	Stable  []string

	BreakdownLanguages  []string
	BreakdownTools      []string
	BreakdownSoftSkills []string
}

// DefaultTables returns the built-in category, demand, trend and rule tables.
func DefaultTables() Tables {
	return Tables{
		Categories: []Category{
			{"Programming Languages", []string{"Python", "JavaScript", "Java", "C++", "C#", "PHP", "Ruby", "Go", "Rust", "Swift", "Kotlin"}},
			{"Web Technologies", []string{"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express.js", "Django", "Flask", "FastAPI"}},
			{"Databases", []string{"SQL", "MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQLite"}},
			{"Cloud & DevOps", []string{"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "Git", "GitHub", "GitLab"}},
			{"Data Science", []string{"Machine Learning", "Deep Learning", "Pandas", "NumPy", "TensorFlow", "PyTorch", "Scikit-learn"}},
			{"Design Tools", []string{"Figma", "Adobe Photoshop", "Adobe Illustrator", "Sketch", "InVision"}},
			{"Business Tools", []string{"Excel", "Tableau", "Power BI", "JIRA", "Confluence", "Slack", "Trello"}},
			{"Methodologies", []string{"Agile", "Scrum", "Kanban", "DevOps", "CI/CD", "REST API", "GraphQL"}},
		},

		HighDemand:   []string{"Python", "JavaScript", "React", "AWS", "Docker", "Machine Learning", "SQL", "Git", "Node.js", "Django", "Flask"},
		MediumDemand: []string{"Java", "C++", "Angular", "Vue.js", "MongoDB", "Azure", "Kubernetes", "TensorFlow", "PyTorch", "Figma", "Tableau"},
		Emerging:     []string{"Rust", "Go", "FastAPI", "GraphQL", "Blockchain", "IoT", "Cybersecurity"},

		HighDemandPick: 3,
		EmergingPick:   2,

		Complements: []ComplementRule{
			{
				Has:      []string{"Python"},
				Lacks:    "Machine Learning",
				Type:     "Data Science",
				Suggest:  []string{"Machine Learning", "Pandas", "NumPy"},
				Priority: "Medium",
				Reason:   "Python is excellent for data science and machine learning.",
			},
			{
				Has:      []string{"JavaScript"},
				Lacks:    "React",
				Type:     "Frontend Development",
				Suggest:  []string{"React", "Node.js"},
				Priority: "Medium",
				Reason:   "JavaScript skills can be extended to modern frontend frameworks.",
			},
			{
				Has:      []string{"SQL", "Python"},
				Lacks:    "Data Analysis",
				Type:     "Data Analysis",
				Suggest:  []string{"Data Analysis", "Tableau", "Power BI"},
				Priority: "Medium",
				Reason:   "Combine SQL and Python for comprehensive data analysis capabilities.",
			},
		},

		Frontend: GapRule{
			Area:       "Frontend Development",
			Indicators: []string{"HTML", "CSS", "JavaScript", "React", "Angular"},
			Missing:    []string{"HTML", "CSS", "JavaScript"},
			Impact:     "Limits ability to create user interfaces",
		},
		Backend: GapRule{
			Area:       "Backend Development",
			Indicators: []string{"Python", "Java", "Node.js", "PHP", "Ruby"},
			Missing:    []string{"Python", "Node.js", "SQL"},
			Impact:     "Limits ability to build complete applications",
		},
		DevOps: GapRule{
			Area:       "DevOps",
			Indicators: []string{"Docker", "AWS", "Git", "Jenkins"},
			Missing:    []string{"Git", "Docker", "AWS"},
			Impact:     "Important for modern software development practices",
		},

		Growing: []string{"Machine Learning", "Docker", "Kubernetes", "React", "Python"},
		Stable:  []string{"SQL", "JavaScript", "Java", "Git"},

		BreakdownLanguages:  []string{"Python", "JavaScript", "Java", "C++", "C#", "PHP", "Ruby", "Go", "Rust"},
		BreakdownTools:      []string{"Git", "Docker", "AWS", "JIRA", "Figma", "Tableau"},
		BreakdownSoftSkills: []string{"Agile", "Scrum", "Leadership", "Communication"},
	}
}
