package processor

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"career-ai-go/internal/types"
)

// Domain names used in malformed-response errors and logs.
const (
	domainResumeAnalysis = "resume-analysis"
	domainSkills         = "skills"
	domainCareerPaths    = "career-paths"
	domainLearningPaths  = "learning-paths"
	domainChat           = "chat"
)

// NormalizeResumeAnalysis extracts the JSON object from a raw completion
// reply, decodes it, and validates the five-category analysis shape.
func NormalizeResumeAnalysis(raw string) (*types.ResumeAnalysis, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, newMalformedError(domainResumeAnalysis, "no JSON object in reply", nil)
	}

	var result types.ResumeAnalysis
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, newMalformedError(domainResumeAnalysis, "JSON decode failed", err)
	}

	if err := ValidateResumeAnalysis(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateResumeAnalysis checks the analysis shape invariant: every
// collection present and non-empty. Partial acceptance is not permitted.
func ValidateResumeAnalysis(result *types.ResumeAnalysis) error {
	if len(result.Categories) == 0 {
		return newMalformedError(domainResumeAnalysis, "missing or empty categories", nil)
	}
	if len(result.Keywords) == 0 {
		return newMalformedError(domainResumeAnalysis, "missing or empty keywords", nil)
	}
	if len(result.Suggestions) == 0 {
		return newMalformedError(domainResumeAnalysis, "missing or empty suggestions", nil)
	}
	return nil
}

// NormalizeSkillsAssessment extracts, decodes and validates a skills
// assessment reply.
func NormalizeSkillsAssessment(raw string) (*types.SkillsAssessment, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, newMalformedError(domainSkills, "no JSON object in reply", nil)
	}

	var result types.SkillsAssessment
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, newMalformedError(domainSkills, "JSON decode failed", err)
	}

	if err := ValidateSkillsAssessment(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateSkillsAssessment checks both skill collections are non-empty.
func ValidateSkillsAssessment(result *types.SkillsAssessment) error {
	if len(result.Skills) == 0 {
		return newMalformedError(domainSkills, "missing or empty skills", nil)
	}
	if len(result.RadarSkills) == 0 {
		return newMalformedError(domainSkills, "missing or empty radarSkills", nil)
	}
	return nil
}

// NormalizeCareerPaths extracts, decodes and validates a career path
// reply. Missing path ids are synthesized as "path-{index}" and a missing
// requiredSkills collection defaults to empty, but a path without timeline
// phases rejects the whole set.
func NormalizeCareerPaths(raw string) (*types.CareerPathSet, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, newMalformedError(domainCareerPaths, "no JSON object in reply", nil)
	}

	var result types.CareerPathSet
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, newMalformedError(domainCareerPaths, "JSON decode failed", err)
	}

	for i := range result.Paths {
		if result.Paths[i].ID == "" {
			result.Paths[i].ID = fmt.Sprintf("path-%d", i)
		}
		if result.Paths[i].RequiredSkills == nil {
			result.Paths[i].RequiredSkills = []string{}
		}
	}

	if err := ValidateCareerPaths(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateCareerPaths checks the path set shape: non-empty path list and a
// non-empty timeline on every path.
func ValidateCareerPaths(result *types.CareerPathSet) error {
	if len(result.Paths) == 0 {
		return newMalformedError(domainCareerPaths, "missing or empty paths", nil)
	}
	for i, path := range result.Paths {
		if len(path.Timeline) == 0 {
			return newMalformedError(domainCareerPaths, fmt.Sprintf("path %d (%s) has no timeline", i, path.ID), nil)
		}
	}
	return nil
}

// NormalizeLearningPaths extracts, decodes and validates a learning path
// reply. Ids and the skills collection are default-filled; a path without
// courses rejects the whole set.
func NormalizeLearningPaths(raw string) (*types.LearningPathSet, error) {
	jsonStr := extractJSON(raw)
	if jsonStr == "" {
		return nil, newMalformedError(domainLearningPaths, "no JSON object in reply", nil)
	}

	var result types.LearningPathSet
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, newMalformedError(domainLearningPaths, "JSON decode failed", err)
	}

	for i := range result.Paths {
		if result.Paths[i].ID == "" {
			result.Paths[i].ID = fmt.Sprintf("path-%d", i)
		}
		if result.Paths[i].Skills == nil {
			result.Paths[i].Skills = []string{}
		}
	}

	if err := ValidateLearningPaths(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateLearningPaths checks the path set shape: non-empty path list and
// a non-empty course list on every path.
func ValidateLearningPaths(result *types.LearningPathSet) error {
	if len(result.Paths) == 0 {
		return newMalformedError(domainLearningPaths, "missing or empty paths", nil)
	}
	for i, path := range result.Paths {
		if len(path.Courses) == 0 {
			return newMalformedError(domainLearningPaths, fmt.Sprintf("path %d (%s) has no courses", i, path.ID), nil)
		}
	}
	return nil
}

var fencedJSONRe = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")

// extractJSON pulls the JSON object out of a completion reply. It first
// tries a fenced ```json block, then falls back to a balanced-brace scan
// from the first '{'. Returns "" when no complete object is found.
func extractJSON(text string) string {
	matches := fencedJSONRe.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.Index(text, "{")
	if start == -1 {
		return ""
	}

	level := 0
	for i := start; i < len(text); i++ {
		if text[i] == '{' {
			level++
		} else if text[i] == '}' {
			level--
			if level == 0 {
				return strings.TrimSpace(text[start : i+1])
			}
		}
	}
	return ""
}
