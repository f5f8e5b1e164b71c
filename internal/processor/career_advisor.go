package processor

import (
	"context"
	"log"
	"os"
	"strings"

	"career-ai-go/internal/llm"
	"career-ai-go/internal/types"
)

// Generation parameters per advisory domain. Lower temperatures for the
// scoring domains keep the JSON shape stable; chat runs warmer.
const (
	analysisTemperature = 0.3
	analysisMaxTokens   = 1000

	skillsTemperature = 0.4
	skillsMaxTokens   = 800

	careerTemperature = 0.5
	careerMaxTokens   = 1200

	learningTemperature = 0.5
	learningMaxTokens   = 1500

	chatTemperature = 0.7
	chatMaxTokens   = 500
)

// Chat replies for the degraded states. Chat has no structured fallback,
// so these strings are the whole degraded behavior.
const (
	ChatMsgNoAPIKey = "AI chat requires a Groq API key. Add GROQ_API_KEY to your .env file. Get your key at https://console.groq.com"
	ChatMsgError    = "Sorry, I encountered an error. Please check your Groq API key and try again."
	ChatMsgEmpty    = "I couldn't generate a response. Please try again."
)

// CareerAdvisor orchestrates the advisory domains: build the prompt, call
// the completion endpoint, normalize the reply, and substitute static
// fallback content when any step fails. Methods never return errors;
// degraded operation is part of the contract.
type CareerAdvisor struct {
	client CompletionClient
	logger *log.Logger
}

type AdvisorOption func(*CareerAdvisor)

// WithAdvisorLogger sets a custom logger.
func WithAdvisorLogger(logger *log.Logger) AdvisorOption {
	return func(a *CareerAdvisor) {
		a.logger = logger
	}
}

func NewCareerAdvisor(client CompletionClient, options ...AdvisorOption) *CareerAdvisor {
	a := &CareerAdvisor{
		client: client,
		logger: log.New(os.Stderr, "[CareerAdvisor] ", log.LstdFlags),
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

// AnalyzeResume scores a resume against the five fixed review categories.
func (a *CareerAdvisor) AnalyzeResume(ctx context.Context, resumeText string) *types.ResumeAnalysis {
	if !a.client.IsAvailable() {
		a.logger.Printf("domain=%s no API key configured, using fallback", domainResumeAnalysis)
		return FallbackResumeAnalysis()
	}

	raw, err := a.client.Complete(ctx, BuildResumeAnalysisPrompt(resumeText), analysisTemperature, analysisMaxTokens)
	if err != nil {
		a.logger.Printf("domain=%s completion failed: %v, using fallback", domainResumeAnalysis, err)
		return FallbackResumeAnalysis()
	}

	analysis, err := NormalizeResumeAnalysis(raw)
	if err != nil {
		a.logger.Printf("domain=%s malformed reply: %v, using fallback", domainResumeAnalysis, err)
		return FallbackResumeAnalysis()
	}
	return analysis
}

// AssessSkills evaluates skill levels from a resume. An empty resumeText
// requests a generic sample assessment instead of a personalized one.
func (a *CareerAdvisor) AssessSkills(ctx context.Context, resumeText string) *types.SkillsAssessment {
	if !a.client.IsAvailable() {
		a.logger.Printf("domain=%s no API key configured, using fallback", domainSkills)
		return FallbackSkillsAssessment()
	}

	raw, err := a.client.Complete(ctx, BuildSkillsPrompt(resumeText), skillsTemperature, skillsMaxTokens)
	if err != nil {
		a.logger.Printf("domain=%s completion failed: %v, using fallback", domainSkills, err)
		return FallbackSkillsAssessment()
	}

	assessment, err := NormalizeSkillsAssessment(raw)
	if err != nil {
		a.logger.Printf("domain=%s malformed reply: %v, using fallback", domainSkills, err)
		return FallbackSkillsAssessment()
	}
	return assessment
}

// SuggestCareerPaths proposes three career paths, personalized when a
// resume is supplied.
func (a *CareerAdvisor) SuggestCareerPaths(ctx context.Context, resumeText string) *types.CareerPathSet {
	if !a.client.IsAvailable() {
		a.logger.Printf("domain=%s no API key configured, using fallback", domainCareerPaths)
		return FallbackCareerPaths()
	}

	raw, err := a.client.Complete(ctx, BuildCareerPathsPrompt(resumeText), careerTemperature, careerMaxTokens)
	if err != nil {
		a.logger.Printf("domain=%s completion failed: %v, using fallback", domainCareerPaths, err)
		return FallbackCareerPaths()
	}

	paths, err := NormalizeCareerPaths(raw)
	if err != nil {
		a.logger.Printf("domain=%s malformed reply: %v, using fallback", domainCareerPaths, err)
		return FallbackCareerPaths()
	}
	return paths
}

// CurateLearningPaths assembles course-based learning paths, optionally
// oriented toward a stated career goal.
func (a *CareerAdvisor) CurateLearningPaths(ctx context.Context, careerGoal string) *types.LearningPathSet {
	if !a.client.IsAvailable() {
		a.logger.Printf("domain=%s no API key configured, using fallback", domainLearningPaths)
		return FallbackLearningPaths()
	}

	raw, err := a.client.Complete(ctx, BuildLearningPathsPrompt(careerGoal), learningTemperature, learningMaxTokens)
	if err != nil {
		a.logger.Printf("domain=%s completion failed: %v, using fallback", domainLearningPaths, err)
		return FallbackLearningPaths()
	}

	paths, err := NormalizeLearningPaths(raw)
	if err != nil {
		a.logger.Printf("domain=%s malformed reply: %v, using fallback", domainLearningPaths, err)
		return FallbackLearningPaths()
	}
	return paths
}

// Chat runs one turn of the advisory conversation. The system prompt is
// prepended to the caller's history; degraded states return canned
// guidance text rather than an error.
func (a *CareerAdvisor) Chat(ctx context.Context, messages []types.ChatMessage) string {
	if !a.client.IsAvailable() {
		a.logger.Printf("domain=%s no API key configured", domainChat)
		return ChatMsgNoAPIKey
	}

	history := make([]llm.ChatCompletionMessage, 0, len(messages)+1)
	history = append(history, llm.ChatCompletionMessage{Role: types.RoleSystem, Content: ChatSystemPrompt})
	for _, m := range messages {
		history = append(history, llm.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	reply, err := a.client.ChatCompletion(ctx, history, chatTemperature, chatMaxTokens)
	if err != nil {
		a.logger.Printf("domain=%s completion failed: %v", domainChat, err)
		return ChatMsgError
	}
	if strings.TrimSpace(reply) == "" {
		return ChatMsgEmpty
	}
	return reply
}
