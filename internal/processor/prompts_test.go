package processor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumeAnalysisPrompt_TruncatesResume(t *testing.T) {
	long := strings.Repeat("résumé ", 2000) // 14000 runes
	prompt := BuildResumeAnalysisPrompt(long)

	assert.Contains(t, prompt, truncateRunes(long, AnalysisPromptLimit))
	assert.NotContains(t, prompt, long)
	assert.Contains(t, prompt, "ATS Compatibility")
	assert.Contains(t, prompt, "Return ONLY the JSON object.")
}

func TestBuildResumeAnalysisPrompt_ShortTextEmbeddedWhole(t *testing.T) {
	prompt := BuildResumeAnalysisPrompt("Python Java")
	assert.Contains(t, prompt, "Python Java")
}

func TestBuildSkillsPrompt_EmptyRequestsSampleData(t *testing.T) {
	prompt := BuildSkillsPrompt("")
	assert.Contains(t, prompt, "default skill assessment")
	assert.NotContains(t, prompt, "Resume:")
}

func TestBuildSkillsPrompt_TruncatesAtSkillsLimit(t *testing.T) {
	long := strings.Repeat("x", SkillsPromptLimit+500)
	prompt := BuildSkillsPrompt(long)

	assert.Contains(t, prompt, strings.Repeat("x", SkillsPromptLimit))
	assert.NotContains(t, prompt, strings.Repeat("x", SkillsPromptLimit+1))
}

func TestBuildCareerPathsPrompt_EmptyRequestsSampleData(t *testing.T) {
	prompt := BuildCareerPathsPrompt("")
	assert.Contains(t, prompt, "3 sample career paths")
}

func TestBuildCareerPathsPrompt_TruncatesAtCareerLimit(t *testing.T) {
	long := strings.Repeat("y", CareerPromptLimit+100)
	prompt := BuildCareerPathsPrompt(long)

	assert.Contains(t, prompt, strings.Repeat("y", CareerPromptLimit))
	assert.NotContains(t, prompt, strings.Repeat("y", CareerPromptLimit+1))
}

func TestBuildLearningPathsPrompt_GoalEmbeddedVerbatim(t *testing.T) {
	prompt := BuildLearningPathsPrompt("Staff Engineer")
	assert.Contains(t, prompt, `career goal: "Staff Engineer"`)

	sample := BuildLearningPathsPrompt("")
	assert.Contains(t, sample, "3 sample learning paths")
}

func TestTruncateRunes_MultiByteSafe(t *testing.T) {
	s := "héllo wörld"
	out := truncateRunes(s, 6)
	assert.Equal(t, "héllo ", out)
	assert.Equal(t, s, truncateRunes(s, 100))
	assert.Equal(t, s, truncateRunes(s, len([]rune(s))))
}

func TestTruncateForEcho(t *testing.T) {
	long := strings.Repeat("a", ResumeEchoLimit+1)
	assert.Len(t, TruncateForEcho(long), ResumeEchoLimit)
	assert.Equal(t, "short", TruncateForEcho("short"))
}
