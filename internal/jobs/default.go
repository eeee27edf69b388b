package jobs

// DefaultCatalog returns the built-in job catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultCategories())
	if err != nil {
		panic("jobs: invalid built-in catalog: " + err.Error())
	}
	return c
}

func defaultCategories() []Category {
	return []Category{
		{
			Name: "Software Development",
			Profiles: []Profile{
				{
					Title:           "Frontend Developer",
					RequiredSkills:  []string{"HTML", "CSS", "JavaScript", "React", "Angular", "Vue.js"},
					PreferredSkills: []string{"TypeScript", "Sass", "Bootstrap", "Tailwind", "Webpack"},
					ExperienceLevel: "2-5 years",
					SalaryRange:     "$60,000 - $120,000",
					Description:     "Build responsive and interactive user interfaces using modern web technologies.",
				},
				{
					Title:           "Backend Developer",
					RequiredSkills:  []string{"Python", "Java", "Node.js", "SQL", "REST API"},
					PreferredSkills: []string{"Django", "Flask", "Spring Boot", "Express.js", "MongoDB"},
					ExperienceLevel: "3-7 years",
					SalaryRange:     "$70,000 - $140,000",
					Description:     "Develop server-side logic and APIs for web applications.",
				},
				{
					Title:           "Full Stack Developer",
					RequiredSkills:  []string{"HTML", "CSS", "JavaScript", "Python", "SQL", "REST API"},
					PreferredSkills: []string{"React", "Node.js", "Django", "Flask", "MongoDB"},
					ExperienceLevel: "3-8 years",
					SalaryRange:     "$80,000 - $150,000",
					Description:     "Handle both frontend and backend development for complete web applications.",
				},
				{
					Title:           "Mobile Developer",
					RequiredSkills:  []string{"JavaScript", "React Native", "Flutter", "Android", "iOS"},
					PreferredSkills: []string{"Java", "Swift", "Kotlin", "Objective-C", "Firebase"},
					ExperienceLevel: "2-6 years",
					SalaryRange:     "$65,000 - $130,000",
					Description:     "Develop mobile applications for iOS and Android platforms.",
				},
				{
					Title:           "DevOps Engineer",
					RequiredSkills:  []string{"Docker", "Kubernetes", "AWS", "Git", "Jenkins"},
					PreferredSkills: []string{"Azure", "Google Cloud", "Terraform", "Ansible", "Linux"},
					ExperienceLevel: "3-8 years",
					SalaryRange:     "$80,000 - $160,000",
					Description:     "Manage infrastructure, deployment, and operational processes.",
				},
			},
		},
		{
			Name: "Data & Analytics",
			Profiles: []Profile{
				{
					Title:           "Data Scientist",
					RequiredSkills:  []string{"Python", "Machine Learning", "Pandas", "NumPy", "SQL"},
					PreferredSkills: []string{"TensorFlow", "PyTorch", "Scikit-learn", "Tableau", "Power BI"},
					ExperienceLevel: "3-7 years",
					SalaryRange:     "$90,000 - $160,000",
					Description:     "Analyze complex data sets and build predictive models.",
				},
				{
					Title:           "Data Analyst",
					RequiredSkills:  []string{"SQL", "Excel", "Data Analysis", "Tableau", "Power BI"},
					PreferredSkills: []string{"Python", "Pandas", "R", "Google Analytics", "A/B Testing"},
					ExperienceLevel: "1-5 years",
					SalaryRange:     "$50,000 - $100,000",
					Description:     "Collect, analyze, and visualize data to drive business decisions.",
				},
				{
					Title:           "Business Analyst",
					RequiredSkills:  []string{"Excel", "SQL", "Data Analysis", "Agile", "JIRA"},
					PreferredSkills: []string{"Tableau", "Power BI", "Python", "R", "Business Intelligence"},
					ExperienceLevel: "2-6 years",
					SalaryRange:     "$60,000 - $110,000",
					Description:     "Bridge the gap between business needs and technical solutions.",
				},
				{
					Title:           "Machine Learning Engineer",
					RequiredSkills:  []string{"Python", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch"},
					PreferredSkills: []string{"Scikit-learn", "AWS", "Docker", "Kubernetes", "MLOps"},
					ExperienceLevel: "3-8 years",
					SalaryRange:     "$100,000 - $180,000",
					Description:     "Build and deploy machine learning models at scale.",
				},
			},
		},
		{
			Name: "Design & Creative",
			Profiles: []Profile{
				{
					Title:           "UI/UX Designer",
					RequiredSkills:  []string{"Figma", "Adobe Photoshop", "Adobe Illustrator", "User Research", "Prototyping"},
					PreferredSkills: []string{"Sketch", "InVision", "Framer", "Design Systems", "Accessibility"},
					ExperienceLevel: "2-6 years",
					SalaryRange:     "$60,000 - $120,000",
					Description:     "Create intuitive and engaging user experiences through design.",
				},
				{
					Title:           "Graphic Designer",
					RequiredSkills:  []string{"Adobe Photoshop", "Adobe Illustrator", "Adobe InDesign", "Typography", "Color Theory"},
					PreferredSkills: []string{"Figma", "Sketch", "Canva", "Brand Identity", "Print Design"},
					ExperienceLevel: "1-5 years",
					SalaryRange:     "$40,000 - $80,000",
					Description:     "Create visual content for various media and platforms.",
				},
				{
					Title:           "Product Designer",
					RequiredSkills:  []string{"Figma", "User Research", "Prototyping", "Design Systems", "User Testing"},
					PreferredSkills: []string{"Adobe Creative Suite", "Sketch", "InVision", "Design Thinking", "Agile"},
					ExperienceLevel: "3-7 years",
					SalaryRange:     "$70,000 - $140,000",
					Description:     "Design products that solve user problems and meet business goals.",
				},
			},
		},
		{
			Name: "Management",
			Profiles: []Profile{
				{
					Title:           "Project Manager",
					RequiredSkills:  []string{"Agile", "Scrum", "JIRA", "Project Planning", "Risk Management"},
					PreferredSkills: []string{"PMP", "Prince2", "Microsoft Project", "Stakeholder Management", "Budgeting"},
					ExperienceLevel: "5-10 years",
					SalaryRange:     "$80,000 - $150,000",
					Description:     "Lead project teams and ensure successful delivery of projects.",
				},
				{
					Title:           "Product Manager",
					RequiredSkills:  []string{"Product Strategy", "User Research", "Agile", "Data Analysis", "Stakeholder Management"},
					PreferredSkills: []string{"A/B Testing", "SQL", "Tableau", "Roadmapping", "Go-to-Market Strategy"},
					ExperienceLevel: "4-8 years",
					SalaryRange:     "$90,000 - $160,000",
					Description:     "Define product vision and lead product development teams.",
				},
				{
					Title:           "Engineering Manager",
					RequiredSkills:  []string{"Technical Leadership", "Team Management", "Agile", "Code Review", "Architecture"},
					PreferredSkills: []string{"Python", "Java", "JavaScript", "System Design", "Mentoring"},
					ExperienceLevel: "6-12 years",
					SalaryRange:     "$120,000 - $200,000",
					Description:     "Lead engineering teams and drive technical excellence.",
				},
			},
		},
	}
}
