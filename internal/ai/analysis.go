package ai

import (
	"regexp"
	"strconv"
	"strings"
)

// ResumeAnalysis is the structured outcome of analyzing resume text.
// The JSON tags match what the analysis prompt asks the model for.
type ResumeAnalysis struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Achievements    []string `json:"achievements"`
	Improvements    []string `json:"improvements"`
	ATSScore        int      `json:"ats_score"`
}

func (a *ResumeAnalysis) clamp() {
	if a.ATSScore < 0 {
		a.ATSScore = 0
	}
	if a.ATSScore > 100 {
		a.ATSScore = 100
	}
	if a.ExperienceYears < 0 {
		a.ExperienceYears = 0
	}
}

// knownSkills is the keyword list the offline analyzer scans for.
var knownSkills = []string{
	"python", "java", "javascript", "typescript", "go", "golang", "rust", "c++", "c#",
	"ruby", "php", "kotlin", "swift", "scala", "sql", "html", "css",
	"react", "angular", "vue", "node.js", "nodejs", "django", "flask", "fastapi",
	"spring", "rails", ".net", "express",
	"postgresql", "postgres", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
	"docker", "kubernetes", "terraform", "ansible", "jenkins", "git", "ci/cd",
	"aws", "azure", "gcp", "cloud", "linux", "microservices", "rest", "graphql", "grpc",
	"machine learning", "deep learning", "data science", "nlp", "pandas", "tensorflow",
	"pytorch", "agile", "scrum", "leadership", "communication", "project management",
	"testing", "selenium", "security", "devops",
}

var (
	yearsPattern  = regexp.MustCompile(`(\d{1,2})\+?\s*(?:years?|yrs?)`)
	numberPattern = regexp.MustCompile(`\d+\s*%|\$\s*\d|\d+x\b`)
	emailPattern  = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

// achievementMarkers are verbs that usually open an accomplishment
// bullet; lines starting with one are surfaced as achievements.
var achievementMarkers = []string{
	"led", "built", "launched", "improved", "reduced", "increased", "designed",
	"delivered", "migrated", "automated", "optimized", "mentored", "managed",
	"implemented", "developed", "created", "shipped",
}

// AnalyzeResumeOffline produces a deterministic analysis from the text
// alone. It backs the upload path whenever no model is available.
func AnalyzeResumeOffline(text string) *ResumeAnalysis {
	lower := strings.ToLower(text)

	analysis := &ResumeAnalysis{
		Skills:       []string{},
		Achievements: []string{},
		Improvements: []string{},
	}

	seen := make(map[string]struct{})
	for _, skill := range knownSkills {
		if strings.Contains(lower, skill) {
			if _, dup := seen[skill]; !dup {
				seen[skill] = struct{}{}
				analysis.Skills = append(analysis.Skills, skill)
			}
		}
	}

	// The largest "N years" mention approximates total experience.
	for _, match := range yearsPattern.FindAllStringSubmatch(lower, -1) {
		if years, err := strconv.Atoi(match[1]); err == nil && years > analysis.ExperienceYears && years <= 50 {
			analysis.ExperienceYears = years
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimLeft(strings.TrimSpace(line), "-*• \t")
		lowerLine := strings.ToLower(trimmed)
		for _, marker := range achievementMarkers {
			if strings.HasPrefix(lowerLine, marker+" ") {
				if len(trimmed) > 20 && len(analysis.Achievements) < 5 {
					analysis.Achievements = append(analysis.Achievements, trimmed)
				}
				break
			}
		}
	}

	if !emailPattern.MatchString(text) {
		analysis.Improvements = append(analysis.Improvements, "Add contact details including an email address")
	}
	if !numberPattern.MatchString(text) {
		analysis.Improvements = append(analysis.Improvements, "Quantify achievements with numbers (percentages, revenue, team size)")
	}
	if len(analysis.Skills) < 5 {
		analysis.Improvements = append(analysis.Improvements, "List more of the technologies and tools you have worked with")
	}
	if len(text) < 800 {
		analysis.Improvements = append(analysis.Improvements, "Expand the resume with more detail on roles and projects")
	}

	analysis.ATSScore = offlineATSScore(analysis, text)
	return analysis
}

// offlineATSScore grades the resume on keyword coverage, measurable
// results and overall substance. Never returns more than 95.
func offlineATSScore(a *ResumeAnalysis, text string) int {
	score := 35

	skillPoints := len(a.Skills) * 4
	if skillPoints > 30 {
		skillPoints = 30
	}
	score += skillPoints

	if a.ExperienceYears > 0 {
		score += 10
	}
	if len(a.Achievements) > 0 {
		score += 10
	}
	if numberPattern.MatchString(text) {
		score += 5
	}
	if emailPattern.MatchString(text) {
		score += 5
	}

	if score > 95 {
		score = 95
	}
	return score
}
