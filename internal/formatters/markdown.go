package formatters

import (
	"fmt"
	"strings"

	"resumatch/internal/taxonomy"
	"resumatch/internal/types"
)

// ReportMarkdownFormatter handles markdown formatting for analysis reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	report, err := asReport(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	fmt.Fprintf(&output, "# Resume Analysis: %s\n\n", report.Filename)
	fmt.Fprintf(&output, "**ID:** `%s`  \n", report.ID)
	fmt.Fprintf(&output, "**Analyzed:** %s\n\n", report.UploadTime.Format("2006-01-02 15:04:05 MST"))

	output.WriteString("## Contact\n\n")
	fmt.Fprintf(&output, "- **Email:** %s\n", orNone(report.ResumeData.Contact.Email))
	fmt.Fprintf(&output, "- **Phone:** %s\n\n", orNone(report.ResumeData.Contact.Phone))

	writeMarkdownList(&output, "## Education", report.ResumeData.Education)
	writeMarkdownList(&output, "## Experience", report.ResumeData.Experience)

	writeAnalysisMarkdown(&output, report.SkillsAnalysis, report.SkillScore)
	writeMatchesMarkdown(&output, report.JobMatches)

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return typeReport
}

// ProfileMarkdownFormatter handles markdown formatting for skill profiles
type ProfileMarkdownFormatter struct{}

func (pmf *ProfileMarkdownFormatter) Format(data any) (string, error) {
	profile, err := asProfile(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString("# Skill Profile\n\n")
	fmt.Fprintf(&output, "**Skills:** %s\n\n", joinOrNone(profile.Skills))

	writeAnalysisMarkdown(&output, profile.SkillsAnalysis, profile.SkillScore)
	writeMatchesMarkdown(&output, profile.JobMatches)

	return output.String(), nil
}

func (pmf *ProfileMarkdownFormatter) SupportedType() string {
	return typeProfile
}

// MatchesMarkdownFormatter handles markdown formatting for job match lists
type MatchesMarkdownFormatter struct{}

func (mmf *MatchesMarkdownFormatter) Format(data any) (string, error) {
	matches, ok := data.([]types.JobMatch)
	if !ok {
		return "", fmt.Errorf("expected []JobMatch, got %T", data)
	}

	var output strings.Builder
	writeMatchesMarkdown(&output, matches)
	return output.String(), nil
}

func (mmf *MatchesMarkdownFormatter) SupportedType() string {
	return typeMatches
}

// GapsMarkdownFormatter handles markdown formatting for skill gaps
type GapsMarkdownFormatter struct{}

func (gmf *GapsMarkdownFormatter) Format(data any) (string, error) {
	gaps, err := asGapReport(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	fmt.Fprintf(&output, "# Skill Gaps: %s\n\n", gaps.Title)
	writeMarkdownList(&output, "## Missing Required", gaps.MissingSkills.Required)
	writeMarkdownList(&output, "## Missing Preferred", gaps.MissingSkills.Preferred)
	return output.String(), nil
}

func (gmf *GapsMarkdownFormatter) SupportedType() string {
	return typeGaps
}

// JobsMarkdownFormatter handles markdown formatting for the job catalog
type JobsMarkdownFormatter struct{}

func (jmf *JobsMarkdownFormatter) Format(data any) (string, error) {
	jobs, ok := data.([]types.JobSummary)
	if !ok {
		return "", fmt.Errorf("expected []JobSummary, got %T", data)
	}

	var output strings.Builder
	output.WriteString("# Jobs\n\n")
	order, grouped := groupJobs(jobs)
	for _, category := range order {
		fmt.Fprintf(&output, "## %s\n\n", category)
		output.WriteString("| Title | Experience | Salary |\n|---|---|---|\n")
		for _, job := range grouped[category] {
			fmt.Fprintf(&output, "| %s | %s | %s |\n", job.Title, job.ExperienceLevel, job.SalaryRange)
		}
		output.WriteString("\n")
	}
	return output.String(), nil
}

func (jmf *JobsMarkdownFormatter) SupportedType() string {
	return typeJobs
}

// SkillsMarkdownFormatter handles markdown formatting for taxonomy entries
type SkillsMarkdownFormatter struct{}

func (smf *SkillsMarkdownFormatter) Format(data any) (string, error) {
	entries, ok := data.([]taxonomy.Entry)
	if !ok {
		return "", fmt.Errorf("expected []taxonomy.Entry, got %T", data)
	}

	var output strings.Builder
	output.WriteString("# Skills\n\n| Skill | Variants |\n|---|---|\n")
	for _, e := range entries {
		fmt.Fprintf(&output, "| %s | %s |\n", e.Canonical, strings.Join(e.Variants, ", "))
	}
	return output.String(), nil
}

func (smf *SkillsMarkdownFormatter) SupportedType() string {
	return typeSkills
}

func writeAnalysisMarkdown(output *strings.Builder, a types.SkillsAnalysis, score float64) {
	output.WriteString("## Skills Analysis\n\n")
	fmt.Fprintf(output, "**Total skills:** %d  \n", a.TotalSkills)
	fmt.Fprintf(output, "**Skill score:** %.1f/100\n\n", score)

	if len(a.Categories) > 0 {
		output.WriteString("| Category | Skills |\n|---|---|\n")
		for _, category := range categoryOrder(a) {
			fmt.Fprintf(output, "| %s | %s |\n", category, strings.Join(a.Categories[category], ", "))
		}
		output.WriteString("\n")
	}

	if len(a.Recommendations) > 0 {
		output.WriteString("### Recommendations\n\n")
		for _, rec := range a.Recommendations {
			fmt.Fprintf(output, "- **%s** (%s priority): %s. %s\n", rec.Type, rec.Priority, strings.Join(rec.Skills, ", "), rec.Reason)
		}
		output.WriteString("\n")
	}

	if len(a.SkillGaps) > 0 {
		output.WriteString("### Skill Gaps\n\n")
		for _, gap := range a.SkillGaps {
			fmt.Fprintf(output, "- **%s** (%s impact): %s\n", gap.Area, gap.Impact, strings.Join(gap.Missing, ", "))
		}
		output.WriteString("\n")
	}

	if len(a.MarketTrends) > 0 {
		output.WriteString("### Market Trends\n\n")
		for _, trend := range sortedKeys(a.MarketTrends) {
			fmt.Fprintf(output, "- **%s:** %s\n", trend, joinOrNone(a.MarketTrends[trend]))
		}
		output.WriteString("\n")
	}
}

func writeMatchesMarkdown(output *strings.Builder, matches []types.JobMatch) {
	output.WriteString("## Job Matches\n\n")
	if len(matches) == 0 {
		output.WriteString("No matching jobs found.\n")
		return
	}
	output.WriteString("| Title | Category | Match | Missing Required |\n|---|---|---|---|\n")
	for _, m := range matches {
		fmt.Fprintf(output, "| %s | %s | %.1f%% | %s |\n", m.Title, m.Category, m.MatchScore, joinOrNone(m.MissingSkills.Required))
	}
	output.WriteString("\n")
}

func writeMarkdownList(output *strings.Builder, heading string, items []string) {
	output.WriteString(heading)
	output.WriteString("\n\n")
	if len(items) == 0 {
		output.WriteString("_None_\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(output, "- %s\n", item)
	}
	output.WriteString("\n")
}
