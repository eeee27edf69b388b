package types

import "time"

// Contact holds the first email and phone number found in a résumé
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ParsedResume is the structured record extracted from one document
type ParsedResume struct {
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
	Contact    Contact  `json:"contact"`
	RawText    string   `json:"raw_text"`
	FilePath   string   `json:"file_path"`
}

// Recommendation is a single skill-development suggestion
type Recommendation struct {
	Type     string   `json:"type"`
	Skills   []string `json:"skills"`
	Priority string   `json:"priority"`
	Reason   string   `json:"reason"`
}

// SkillGap flags a missing functional area
type SkillGap struct {
	Area    string   `json:"area"`
	Missing []string `json:"missing"`
	Impact  string   `json:"impact"`
}

// SkillsAnalysis represents the categorised and scored view of a skill set
type SkillsAnalysis struct {
	TotalSkills     int                 `json:"total_skills"`
	Categories      map[string][]string `json:"categories"`
	CategoryOrder   []string            `json:"-"` // table order, "Other" last
	DemandAnalysis  map[string]int      `json:"demand_analysis"`
	Recommendations []Recommendation    `json:"recommendations"`
	SkillGaps       []SkillGap          `json:"skill_gaps"`
	MarketTrends    map[string][]string `json:"market_trends"`
}

// SkillGapSet splits skills into required and preferred buckets
type SkillGapSet struct {
	Required  []string `json:"required"`
	Preferred []string `json:"preferred"`
}

// JobMatch is one scored catalog entry
type JobMatch struct {
	Title           string      `json:"title"`
	Category        string      `json:"category"`
	MatchScore      float64     `json:"match_score"`
	RequiredSkills  []string    `json:"required_skills"`
	PreferredSkills []string    `json:"preferred_skills"`
	ExperienceLevel string      `json:"experience_level"`
	SalaryRange     string      `json:"salary_range"`
	Description     string      `json:"description"`
	MatchedSkills   SkillGapSet `json:"matched_skills"`
	MissingSkills   SkillGapSet `json:"missing_skills"`
}

// JobSummary is the catalog listing view of a job profile
type JobSummary struct {
	Title           string `json:"title"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	ExperienceLevel string `json:"experience_level"`
	SalaryRange     string `json:"salary_range"`
}

// SkillBreakdown groups skills by kind
type SkillBreakdown struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
	Tools           []string `json:"tools"`
	Languages       []string `json:"languages"`
}

// AnalysisReport is the combined result of one analysis request
type AnalysisReport struct {
	ID             string         `json:"id"`
	Filename       string         `json:"filename"`
	UploadTime     time.Time      `json:"upload_time"`
	ResumeData     ParsedResume   `json:"resume_data"`
	SkillsAnalysis SkillsAnalysis `json:"skills_analysis"`
	JobMatches     []JobMatch     `json:"job_matches"`
	SkillScore     float64        `json:"skill_score"`
	SkillBreakdown SkillBreakdown `json:"skill_breakdown"`
}

// SkillProfile is the analysis of an explicit skill list (no document)
type SkillProfile struct {
	Skills         []string       `json:"skills"`
	SkillsAnalysis SkillsAnalysis `json:"skills_analysis"`
	JobMatches     []JobMatch     `json:"job_matches"`
	SkillScore     float64        `json:"skill_score"`
	SkillBreakdown SkillBreakdown `json:"skill_breakdown"`
}
