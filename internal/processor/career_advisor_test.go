package processor

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"career-ai-go/internal/llm"
	"career-ai-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCompletionClient struct {
	available   bool
	reply       string
	err         error
	lastPrompt  string
	lastHistory []llm.ChatCompletionMessage
	calls       int
}

func (s *stubCompletionClient) IsAvailable() bool { return s.available }

func (s *stubCompletionClient) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.reply, s.err
}

func (s *stubCompletionClient) ChatCompletion(ctx context.Context, messages []llm.ChatCompletionMessage, temperature float64, maxTokens int) (string, error) {
	s.calls++
	s.lastHistory = messages
	return s.reply, s.err
}

func newTestAdvisor(client CompletionClient) *CareerAdvisor {
	return NewCareerAdvisor(client, WithAdvisorLogger(log.New(io.Discard, "", 0)))
}

func TestAnalyzeResume_NoCredentialUsesFallback(t *testing.T) {
	client := &stubCompletionClient{available: false}
	advisor := newTestAdvisor(client)

	result := advisor.AnalyzeResume(context.Background(), "Python Java")

	assert.True(t, result.UsedFallback)
	assert.Equal(t, 72, result.OverallScore)
	assert.Zero(t, client.calls, "no upstream call without a credential")
}

func TestAnalyzeResume_UpstreamErrorUsesFallback(t *testing.T) {
	client := &stubCompletionClient{available: true, err: &llm.UpstreamError{StatusCode: 503}}
	advisor := newTestAdvisor(client)

	result := advisor.AnalyzeResume(context.Background(), "Python Java")

	assert.True(t, result.UsedFallback)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyzeResume_MalformedReplyUsesFallback(t *testing.T) {
	client := &stubCompletionClient{available: true, reply: "I am not JSON"}
	advisor := newTestAdvisor(client)

	result := advisor.AnalyzeResume(context.Background(), "Python Java")

	assert.True(t, result.UsedFallback)
}

func TestAnalyzeResume_ValidReplyPassedThrough(t *testing.T) {
	client := &stubCompletionClient{
		available: true,
		reply:     `{"overallScore": 91, "categories": [{"name": "ATS Compatibility", "score": 95, "status": "good", "feedback": "fine"}], "keywords": ["Go"], "suggestions": ["keep going"]}`,
	}
	advisor := newTestAdvisor(client)

	result := advisor.AnalyzeResume(context.Background(), "Go engineer resume")

	assert.False(t, result.UsedFallback)
	assert.Equal(t, 91, result.OverallScore)
	assert.Contains(t, client.lastPrompt, "Go engineer resume")
}

func TestAssessSkills_FallbackPaths(t *testing.T) {
	for name, client := range map[string]*stubCompletionClient{
		"unavailable": {available: false},
		"error":       {available: true, err: errors.New("boom")},
		"malformed":   {available: true, reply: `{"skills": []}`},
	} {
		t.Run(name, func(t *testing.T) {
			advisor := newTestAdvisor(client)
			result := advisor.AssessSkills(context.Background(), "resume")
			assert.Len(t, result.Skills, 12)
			assert.Len(t, result.RadarSkills, 6)
		})
	}
}

func TestSuggestCareerPaths_ValidReply(t *testing.T) {
	client := &stubCompletionClient{
		available: true,
		reply:     `{"paths": [{"id": "sre", "title": "SRE", "match": 77, "timeline": [{"phase": "Foundation", "duration": "0-3 months", "tasks": ["learn k8s"]}]}]}`,
	}
	advisor := newTestAdvisor(client)

	result := advisor.SuggestCareerPaths(context.Background(), "resume text")

	require.Len(t, result.Paths, 1)
	assert.Equal(t, "sre", result.Paths[0].ID)
}

func TestSuggestCareerPaths_MalformedUsesFallback(t *testing.T) {
	client := &stubCompletionClient{available: true, reply: `{"paths": [{"id": "x", "timeline": []}]}`}
	advisor := newTestAdvisor(client)

	result := advisor.SuggestCareerPaths(context.Background(), "")

	require.Len(t, result.Paths, 3)
	assert.Equal(t, "fullstack", result.Paths[0].ID)
}

func TestCurateLearningPaths_UnavailableUsesFallback(t *testing.T) {
	advisor := newTestAdvisor(&stubCompletionClient{available: false})

	result := advisor.CurateLearningPaths(context.Background(), "ML Engineer")

	require.Len(t, result.Paths, 3)
	assert.Equal(t, "cloud", result.Paths[0].ID)
}

func TestChat_NoCredentialReturnsGuidance(t *testing.T) {
	advisor := newTestAdvisor(&stubCompletionClient{available: false})

	reply := advisor.Chat(context.Background(), []types.ChatMessage{{Role: types.RoleUser, Content: "hi"}})

	assert.Equal(t, ChatMsgNoAPIKey, reply)
}

func TestChat_ErrorAndEmptyReplies(t *testing.T) {
	advisor := newTestAdvisor(&stubCompletionClient{available: true, err: errors.New("boom")})
	assert.Equal(t, ChatMsgError, advisor.Chat(context.Background(), []types.ChatMessage{{Role: types.RoleUser, Content: "hi"}}))

	advisor = newTestAdvisor(&stubCompletionClient{available: true, reply: "   "})
	assert.Equal(t, ChatMsgEmpty, advisor.Chat(context.Background(), []types.ChatMessage{{Role: types.RoleUser, Content: "hi"}}))
}

func TestChat_PrependsSystemPrompt(t *testing.T) {
	client := &stubCompletionClient{available: true, reply: "Here are some tips."}
	advisor := newTestAdvisor(client)

	history := []types.ChatMessage{
		{Role: types.RoleUser, Content: "how do I improve my resume?"},
		{Role: types.RoleAssistant, Content: "quantify your impact"},
		{Role: types.RoleUser, Content: "anything else?"},
	}
	reply := advisor.Chat(context.Background(), history)

	assert.Equal(t, "Here are some tips.", reply)
	require.Len(t, client.lastHistory, 4)
	assert.Equal(t, types.RoleSystem, client.lastHistory[0].Role)
	assert.Equal(t, ChatSystemPrompt, client.lastHistory[0].Content)
	assert.Equal(t, "anything else?", client.lastHistory[3].Content)
}
