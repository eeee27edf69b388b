package formatters

import (
	"fmt"
	"strings"

	"resumatch/internal/taxonomy"
	"resumatch/internal/types"
)

// ReportTextFormatter handles text formatting for analysis reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	report, err := asReport(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder

	output.WriteString("=== RESUME ANALYSIS ===\n")
	fmt.Fprintf(&output, "ID: %s\n", report.ID)
	fmt.Fprintf(&output, "File: %s\n", report.Filename)
	fmt.Fprintf(&output, "Analyzed: %s\n\n", report.UploadTime.Format("2006-01-02 15:04:05 MST"))

	output.WriteString("=== CONTACT ===\n")
	fmt.Fprintf(&output, "Email: %s\n", orNone(report.ResumeData.Contact.Email))
	fmt.Fprintf(&output, "Phone: %s\n\n", orNone(report.ResumeData.Contact.Phone))

	writeTextList(&output, "=== EDUCATION ===", report.ResumeData.Education)
	writeTextList(&output, "=== EXPERIENCE ===", report.ResumeData.Experience)

	writeAnalysisText(&output, report.SkillsAnalysis, report.SkillScore, report.SkillBreakdown)
	writeMatchesText(&output, report.JobMatches)

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return typeReport
}

// ProfileTextFormatter handles text formatting for skill profiles
type ProfileTextFormatter struct{}

func (ptf *ProfileTextFormatter) Format(data any) (string, error) {
	profile, err := asProfile(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	output.WriteString("=== SKILL PROFILE ===\n")
	fmt.Fprintf(&output, "Skills: %s\n\n", joinOrNone(profile.Skills))

	writeAnalysisText(&output, profile.SkillsAnalysis, profile.SkillScore, profile.SkillBreakdown)
	writeMatchesText(&output, profile.JobMatches)

	return output.String(), nil
}

func (ptf *ProfileTextFormatter) SupportedType() string {
	return typeProfile
}

// MatchesTextFormatter handles text formatting for job match lists
type MatchesTextFormatter struct{}

func (mtf *MatchesTextFormatter) Format(data any) (string, error) {
	matches, ok := data.([]types.JobMatch)
	if !ok {
		return "", fmt.Errorf("expected []JobMatch, got %T", data)
	}

	var output strings.Builder
	writeMatchesText(&output, matches)
	return output.String(), nil
}

func (mtf *MatchesTextFormatter) SupportedType() string {
	return typeMatches
}

// GapsTextFormatter handles text formatting for skill gaps
type GapsTextFormatter struct{}

func (gtf *GapsTextFormatter) Format(data any) (string, error) {
	gaps, err := asGapReport(data)
	if err != nil {
		return "", err
	}

	var output strings.Builder
	fmt.Fprintf(&output, "=== SKILL GAPS: %s ===\n", gaps.Title)
	fmt.Fprintf(&output, "Missing required: %s\n", joinOrNone(gaps.MissingSkills.Required))
	fmt.Fprintf(&output, "Missing preferred: %s\n", joinOrNone(gaps.MissingSkills.Preferred))
	return output.String(), nil
}

func (gtf *GapsTextFormatter) SupportedType() string {
	return typeGaps
}

// JobsTextFormatter handles text formatting for the job catalog
type JobsTextFormatter struct{}

func (jtf *JobsTextFormatter) Format(data any) (string, error) {
	jobs, ok := data.([]types.JobSummary)
	if !ok {
		return "", fmt.Errorf("expected []JobSummary, got %T", data)
	}

	var output strings.Builder
	order, grouped := groupJobs(jobs)
	for _, category := range order {
		fmt.Fprintf(&output, "%s:\n", category)
		for _, job := range grouped[category] {
			fmt.Fprintf(&output, "  - %s (%s, %s)\n", job.Title, job.ExperienceLevel, job.SalaryRange)
		}
	}
	return output.String(), nil
}

func (jtf *JobsTextFormatter) SupportedType() string {
	return typeJobs
}

// SkillsTextFormatter handles text formatting for taxonomy entries
type SkillsTextFormatter struct{}

func (stf *SkillsTextFormatter) Format(data any) (string, error) {
	entries, ok := data.([]taxonomy.Entry)
	if !ok {
		return "", fmt.Errorf("expected []taxonomy.Entry, got %T", data)
	}

	var output strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&output, "%s: %s\n", e.Canonical, strings.Join(e.Variants, ", "))
	}
	return output.String(), nil
}

func (stf *SkillsTextFormatter) SupportedType() string {
	return typeSkills
}

// OverlapsTextFormatter lists variant collisions, one per line
type OverlapsTextFormatter struct{}

func (otf *OverlapsTextFormatter) Format(data any) (string, error) {
	overlaps, ok := data.([]taxonomy.Overlap)
	if !ok {
		return "", fmt.Errorf("expected []taxonomy.Overlap, got %T", data)
	}
	if len(overlaps) == 0 {
		return "No overlapping variants.\n", nil
	}

	var output strings.Builder
	for _, o := range overlaps {
		fmt.Fprintf(&output, "- %s\n", o)
	}
	return output.String(), nil
}

func (otf *OverlapsTextFormatter) SupportedType() string {
	return typeOverlaps
}

func writeAnalysisText(output *strings.Builder, a types.SkillsAnalysis, score float64, breakdown types.SkillBreakdown) {
	output.WriteString("=== SKILLS ANALYSIS ===\n")
	fmt.Fprintf(output, "Total skills: %d\n", a.TotalSkills)
	fmt.Fprintf(output, "Skill score: %.1f/100\n\n", score)

	for _, category := range categoryOrder(a) {
		fmt.Fprintf(output, "%s: %s\n", category, strings.Join(a.Categories[category], ", "))
	}
	if len(a.Categories) > 0 {
		output.WriteString("\n")
	}

	if len(a.DemandAnalysis) > 0 {
		output.WriteString("Demand:\n")
		for _, level := range sortedKeys(a.DemandAnalysis) {
			fmt.Fprintf(output, "  %s: %d\n", level, a.DemandAnalysis[level])
		}
		output.WriteString("\n")
	}

	fmt.Fprintf(output, "Technical: %s\n", joinOrNone(breakdown.TechnicalSkills))
	fmt.Fprintf(output, "Tools: %s\n\n", joinOrNone(breakdown.Tools))

	if len(a.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, rec := range a.Recommendations {
			fmt.Fprintf(output, "%d. %s [%s]\n", i+1, rec.Type, rec.Priority)
			fmt.Fprintf(output, "   Skills: %s\n", strings.Join(rec.Skills, ", "))
			fmt.Fprintf(output, "   Reason: %s\n", rec.Reason)
		}
		output.WriteString("\n")
	}

	if len(a.SkillGaps) > 0 {
		output.WriteString("=== SKILL GAPS ===\n")
		for _, gap := range a.SkillGaps {
			fmt.Fprintf(output, "- %s (%s impact): missing %s\n", gap.Area, gap.Impact, strings.Join(gap.Missing, ", "))
		}
		output.WriteString("\n")
	}
}

func writeMatchesText(output *strings.Builder, matches []types.JobMatch) {
	output.WriteString("=== JOB MATCHES ===\n")
	if len(matches) == 0 {
		output.WriteString("No matching jobs found.\n")
		return
	}
	for i, m := range matches {
		fmt.Fprintf(output, "%d. %s (%s) - %.1f%%\n", i+1, m.Title, m.Category, m.MatchScore)
		fmt.Fprintf(output, "   Experience: %s | Salary: %s\n", m.ExperienceLevel, m.SalaryRange)
		fmt.Fprintf(output, "   Matched: %s\n", joinOrNone(append(append([]string{}, m.MatchedSkills.Required...), m.MatchedSkills.Preferred...)))
		fmt.Fprintf(output, "   Missing required: %s\n", joinOrNone(m.MissingSkills.Required))
	}
}

func writeTextList(output *strings.Builder, heading string, items []string) {
	output.WriteString(heading)
	output.WriteString("\n")
	if len(items) == 0 {
		output.WriteString("None found\n\n")
		return
	}
	for _, item := range items {
		fmt.Fprintf(output, "- %s\n", item)
	}
	output.WriteString("\n")
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
