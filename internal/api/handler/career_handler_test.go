package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"testing"

	"career-ai-go/internal/api/handler"
	"career-ai-go/internal/api/router"
	"career-ai-go/internal/config"
	"career-ai-go/internal/llm"
	"career-ai-go/internal/parser"
	"career-ai-go/internal/processor"
	"career-ai-go/internal/types"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEngine wires the full route table against an advisor with no
// credential, so every AI feature serves deterministic fallback data.
func newTestEngine(t *testing.T) *server.Hertz {
	t.Helper()

	cfg, err := config.LoadConfig("nonexistent.yaml")
	require.NoError(t, err)
	cfg.LLM.APIKey = ""

	discard := log.New(io.Discard, "", 0)

	extractor, err := parser.NewResumeTextExtractor(context.Background(), parser.WithExtractorLogger(discard))
	require.NoError(t, err)

	client := llm.NewGroqCompletionClient(cfg.LLM, llm.WithCompletionLogger(discard))
	advisor := processor.NewCareerAdvisor(client, processor.WithAdvisorLogger(discard))

	h := server.New()
	router.RegisterRoutes(h, handler.NewCareerHandler(cfg, extractor, advisor))
	return h
}

func multipartFile(t *testing.T, fieldName, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldName, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func decodeJSON(t *testing.T, body []byte, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
}

func TestResumeAnalyze_TxtUploadReturnsFallbackAnalysis(t *testing.T) {
	engine := newTestEngine(t)

	body, contentType := multipartFile(t, "file", "resume.txt", "text/plain", []byte("Python Java"))
	resp := ut.PerformRequest(engine.Engine, "POST", "/api/v1/resume/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
	require.Equal(t, http.StatusOK, resp.Code, "body: %s", resp.Body.String())

	var result handler.ResumeAnalyzeResponse
	decodeJSON(t, resp.Body.Bytes(), &result)

	assert.True(t, result.UsedFallback)
	assert.Equal(t, 72, result.OverallScore)
	assert.Len(t, result.Categories, 5)
	assert.Equal(t, "Python Java", result.ResumeText)
}

func TestResumeAnalyze_TxtSuffixOverridesDeclaredType(t *testing.T) {
	engine := newTestEngine(t)

	body, contentType := multipartFile(t, "file", "resume.txt", "application/octet-stream", []byte("plain content"))
	resp := ut.PerformRequest(engine.Engine, "POST", "/api/v1/resume/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
	assert.Equal(t, http.StatusOK, resp.Code, "body: %s", resp.Body.String())
}

func TestResumeAnalyze_NoFile(t *testing.T) {
	engine := newTestEngine(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("other", "value"))
	require.NoError(t, writer.Close())

	resp := ut.PerformRequest(engine.Engine, "POST", "/api/v1/resume/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: writer.FormDataContentType()},
	)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), handler.MsgNoFile)
}

func TestResumeAnalyze_InvalidType(t *testing.T) {
	engine := newTestEngine(t)

	body, contentType := multipartFile(t, "file", "photo.png", "image/png", []byte{0x89, 0x50, 0x4e, 0x47})
	resp := ut.PerformRequest(engine.Engine, "POST", "/api/v1/resume/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), handler.MsgInvalidType)
}

func TestResumeAnalyze_FileTooLarge(t *testing.T) {
	engine := newTestEngine(t)

	oversized := bytes.Repeat([]byte("a"), int(config.DefaultMaxUploadBytes)+1)
	body, contentType := multipartFile(t, "file", "big.txt", "text/plain", oversized)
	resp := ut.PerformRequest(engine.Engine, "POST", "/api/v1/resume/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "5MB")
}

func TestResumeAnalyze_WhitespaceOnlyText(t *testing.T) {
	engine := newTestEngine(t)

	body, contentType := multipartFile(t, "file", "blank.txt", "text/plain", []byte("   \n\t  "))
	resp := ut.PerformRequest(engine.Engine, "POST", "/api/v1/resume/analyze",
		&ut.Body{Body: body, Len: body.Len()},
		ut.Header{Key: "Content-Type", Value: contentType},
	)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), handler.MsgNoText)
}

func TestSkills_GetAndPostReturnFallbackShape(t *testing.T) {
	engine := newTestEngine(t)

	for _, req := range []struct {
		method, url string
		body        *ut.Body
		headers     []ut.Header
	}{
		{method: "GET", url: "/api/v1/skills?resumeText=Python"},
		{
			method: "POST", url: "/api/v1/skills",
			body:    &ut.Body{Body: strings.NewReader(`{"resumeText": "Python"}`), Len: len(`{"resumeText": "Python"}`)},
			headers: []ut.Header{{Key: "Content-Type", Value: "application/json"}},
		},
	} {
		resp := ut.PerformRequest(engine.Engine, req.method, req.url, req.body, req.headers...)
		require.Equal(t, http.StatusOK, resp.Code)

		var result types.SkillsAssessment
		decodeJSON(t, resp.Body.Bytes(), &result)
		assert.Len(t, result.Skills, 12)
		assert.Len(t, result.RadarSkills, 6)
	}
}

func TestCareerPaths_ReturnsThreeFallbackPaths(t *testing.T) {
	engine := newTestEngine(t)

	resp := ut.PerformRequest(engine.Engine, "GET", "/api/v1/career-paths", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result types.CareerPathSet
	decodeJSON(t, resp.Body.Bytes(), &result)
	require.Len(t, result.Paths, 3)
	assert.Equal(t, "fullstack", result.Paths[0].ID)
	assert.Equal(t, "frontend-lead", result.Paths[1].ID)
	assert.Equal(t, "ml-engineer", result.Paths[2].ID)
	for _, path := range result.Paths {
		assert.Len(t, path.Timeline, 3)
	}
}

func TestLearningPaths_ReturnsFallbackPaths(t *testing.T) {
	engine := newTestEngine(t)

	resp := ut.PerformRequest(engine.Engine, "GET", "/api/v1/learning-paths?careerGoal=ML%20Engineer", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result types.LearningPathSet
	decodeJSON(t, resp.Body.Bytes(), &result)
	require.Len(t, result.Paths, 3)
	assert.Equal(t, "cloud", result.Paths[0].ID)
	assert.NotEmpty(t, result.Paths[0].Courses)
}

func TestChat_NoCredentialGuidance(t *testing.T) {
	engine := newTestEngine(t)

	payload := `{"messages": [{"role": "assistant", "content": "hi"}, {"role": "user", "content": "help me"}]}`
	resp := ut.PerformRequest(engine.Engine, "POST", "/api/v1/chat",
		&ut.Body{Body: strings.NewReader(payload), Len: len(payload)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "GROQ_API_KEY")
}

func TestChat_ValidationErrors(t *testing.T) {
	engine := newTestEngine(t)

	cases := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{"empty messages", `{"messages": []}`, handler.MsgMessagesRequired},
		{"missing messages", `{}`, handler.MsgMessagesRequired},
		{"not json", `garbage`, handler.MsgMessagesRequired},
		{"last not user", `{"messages": [{"role": "user", "content": "hi"}, {"role": "assistant", "content": "hello"}]}`, handler.MsgLastNotUser},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := ut.PerformRequest(engine.Engine, "POST", "/api/v1/chat",
				&ut.Body{Body: strings.NewReader(tc.payload), Len: len(tc.payload)},
				ut.Header{Key: "Content-Type", Value: "application/json"},
			)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, resp.Body.String(), tc.wantMsg)
		})
	}
}

func TestDebug_ReportsCredentialPresence(t *testing.T) {
	engine := newTestEngine(t)

	resp := ut.PerformRequest(engine.Engine, "GET", "/api/v1/debug", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var result map[string]bool
	decodeJSON(t, resp.Body.Bytes(), &result)
	assert.False(t, result["hasOpenAI"])
}

func TestHealth(t *testing.T) {
	engine := newTestEngine(t)

	resp := ut.PerformRequest(engine.Engine, "GET", "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "ok")
}

func TestRequestIDHeaderEchoed(t *testing.T) {
	engine := newTestEngine(t)

	resp := ut.PerformRequest(engine.Engine, "GET", "/api/v1/health", nil,
		ut.Header{Key: "X-Request-ID", Value: "client-supplied-id"},
	)
	assert.Equal(t, "client-supplied-id", resp.Header().Get("X-Request-ID"))

	resp = ut.PerformRequest(engine.Engine, "GET", "/api/v1/health", nil)
	assert.NotEmpty(t, resp.Header().Get("X-Request-ID"), "generated when absent")
}
