package processor

import "fmt"

// Per-domain truncation caps (runes) applied before embedding user text
// into a prompt, and the cap on resume text echoed back to the caller.
const (
	AnalysisPromptLimit = 8000
	SkillsPromptLimit   = 6000
	CareerPromptLimit   = 4000
	ResumeEchoLimit     = 15000
)

// ChatSystemPrompt establishes the advisor persona for the chat endpoint.
const ChatSystemPrompt = `You are CareerAI, a friendly and knowledgeable AI career advisor. You help users with:
- Resume review and improvement tips
- Skill assessment and gap analysis
- Career path recommendations
- Learning path and course suggestions
- Interview preparation and networking advice

Be concise, actionable, and supportive. Use bullet points and formatting when helpful.`

const resumeAnalysisSchema = `{
  "overallScore": <number 0-100>,
  "categories": [
    {
      "name": "ATS Compatibility",
      "score": <0-100>,
      "status": "good" | "warning" | "critical",
      "feedback": "<brief feedback string>"
    },
    {
      "name": "Keyword Optimization",
      "score": <0-100>,
      "status": "good" | "warning" | "critical",
      "feedback": "<brief feedback string>"
    },
    {
      "name": "Impact Statements",
      "score": <0-100>,
      "status": "good" | "warning" | "critical",
      "feedback": "<brief feedback string>"
    },
    {
      "name": "Formatting & Structure",
      "score": <0-100>,
      "status": "good" | "warning" | "critical",
      "feedback": "<brief feedback string>"
    },
    {
      "name": "Skills Alignment",
      "score": <0-100>,
      "status": "good" | "warning" | "critical",
      "feedback": "<brief feedback string>"
    }
  ],
  "keywords": ["<skill1>", "<skill2>", "..."],
  "suggestions": ["<actionable suggestion 1>", "<suggestion 2>", "..."]
}`

// BuildResumeAnalysisPrompt embeds the resume text (truncated to the
// analysis cap) under the fixed five-category schema.
func BuildResumeAnalysisPrompt(resumeText string) string {
	return fmt.Sprintf(`Analyze this resume text and return a JSON object with exactly this structure (no markdown, no code blocks, just raw JSON):
%s

Resume text:
---
%s
---
Return ONLY the JSON object.`, resumeAnalysisSchema, truncateRunes(resumeText, AnalysisPromptLimit))
}

// BuildSkillsPrompt asks for a skill assessment grounded on the resume
// text, or for representative sample data when no text is supplied.
func BuildSkillsPrompt(resumeText string) string {
	if resumeText == "" {
		return `Return default skill assessment JSON: { "skills": [{ "name": "JavaScript", "level": 88, "category": "Technical", "trend": "up" }, ... ], "radarSkills": [{ "label": "Frontend", "value": 85 }, ... ] }. Include 12 skills across Technical, Soft Skills, Domain. Include 6 radar skills.`
	}
	return fmt.Sprintf(`Based on this resume, assess the person's skills. Return JSON: { "skills": [{ "name": string, "level": 0-100, "category": "Technical"|"Soft Skills"|"Domain", "trend": "up"|"stable"|"gap" }], "radarSkills": [{ "label": string, "value": 0-100 }] }. Use categories: Frontend, Backend, Data Science, DevOps, Design, Leadership for radarSkills.

Resume:
---
%s
---

Return ONLY valid JSON, no markdown.`, truncateRunes(resumeText, SkillsPromptLimit))
}

// BuildCareerPathsPrompt asks for three personalized career paths, or for
// sample paths when no resume text is supplied.
func BuildCareerPathsPrompt(resumeText string) string {
	if resumeText == "" {
		return `Return 3 sample career paths as JSON. Use structure: { "paths": [{ "id", "title", "match", "salary", "growth", "locations", "description", "requiredSkills", "timeline" }] }`
	}
	return fmt.Sprintf(`Based on this resume, suggest 3 personalized career paths. Return JSON: { "paths": [{ "id": "slug", "title": string, "match": 0-100, "salary": string, "growth": string, "locations": string, "description": string, "requiredSkills": string[], "timeline": [{ "phase": string, "duration": string, "tasks": string[] }] }] }. Each path has 3 timeline phases.

Resume:
---
%s
---

Return ONLY valid JSON.`, truncateRunes(resumeText, CareerPromptLimit))
}

// BuildLearningPathsPrompt asks for three learning paths toward the given
// career goal, or for sample paths when no goal is supplied. The goal is
// embedded verbatim; no truncation is applied.
func BuildLearningPathsPrompt(careerGoal string) string {
	if careerGoal == "" {
		return `Return 3 sample learning paths as JSON with courses. Structure: { "paths": [{ "id", "title", "description", "totalCourses", "completedCourses", "estimatedTime", "skills", "courses" }] }

Return ONLY valid JSON.`
	}
	return fmt.Sprintf(`Suggest 3 personalized learning paths for career goal: "%s". Return JSON: { "paths": [{ "id", "title", "description", "totalCourses", "completedCourses", "estimatedTime", "skills", "courses": [{ "title", "provider", "duration", "rating", "status", "progress" }] }] }. Use status: "completed", "in-progress", or "locked".

Return ONLY valid JSON.`, careerGoal)
}

// TruncateForEcho caps resume text for echoing back in API responses.
func TruncateForEcho(text string) string {
	return truncateRunes(text, ResumeEchoLimit)
}

// truncateRunes caps s at limit runes. The cap is rune-based so that a
// multi-byte character is never split mid-sequence.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
