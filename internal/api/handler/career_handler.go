package handler

import (
	"context"
	"io"
	"strings"

	"career-ai-go/internal/config"
	"career-ai-go/internal/logger"
	"career-ai-go/internal/parser"
	"career-ai-go/internal/processor"
	"career-ai-go/internal/types"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// Client-facing error messages for the resume upload endpoint.
const (
	MsgNoFile         = "No file provided. Please upload a PDF, DOCX, or TXT file."
	MsgInvalidType    = "Invalid file type. Supports PDF, DOCX, and TXT only."
	MsgFileTooLarge   = "File too large. Maximum size is 5MB."
	MsgNoText         = "Could not extract text from the file. Ensure it's a valid PDF, DOCX, or TXT."
	MsgAnalysisFailed = "Analysis failed. Please try a different file."

	MsgMessagesRequired = "Messages array is required"
	MsgLastNotUser      = "Last message must be from user"
)

// CareerHandler serves the advisory API. It owns the text extractor and
// the advisor; both are safe for concurrent use, so one handler instance
// serves all requests.
type CareerHandler struct {
	cfg       *config.Config
	extractor *parser.ResumeTextExtractor
	advisor   *processor.CareerAdvisor
}

func NewCareerHandler(cfg *config.Config, extractor *parser.ResumeTextExtractor, advisor *processor.CareerAdvisor) *CareerHandler {
	return &CareerHandler{
		cfg:       cfg,
		extractor: extractor,
		advisor:   advisor,
	}
}

// ResumeAnalyzeResponse is the upload endpoint's payload: the analysis
// plus the extracted text echoed back (capped) so the client can feed it
// to the other endpoints.
type ResumeAnalyzeResponse struct {
	types.ResumeAnalysis
	ResumeText string `json:"resumeText"`
}

// ChatRequest is the chat endpoint's request body.
type ChatRequest struct {
	Messages []types.ChatMessage `json:"messages"`
}

// HandleResumeAnalyze accepts a multipart resume upload, extracts its
// text, and returns the analysis. All rejection paths are 400s with a
// client-facing message.
func (h *CareerHandler) HandleResumeAnalyze(c context.Context, ctx *app.RequestContext) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(consts.StatusBadRequest, utils.H{"message": MsgNoFile})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if !allowedUpload(mimeType, fileHeader.Filename) {
		ctx.JSON(consts.StatusBadRequest, utils.H{"message": MsgInvalidType})
		return
	}

	if fileHeader.Size > h.cfg.Upload.MaxSizeBytes {
		ctx.JSON(consts.StatusBadRequest, utils.H{"message": MsgFileTooLarge})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Ctx(c).Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to open uploaded file")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"message": MsgAnalysisFailed})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Ctx(c).Error().Err(err).Str("filename", fileHeader.Filename).Msg("failed to read uploaded file")
		ctx.JSON(consts.StatusInternalServerError, utils.H{"message": MsgAnalysisFailed})
		return
	}

	text, err := h.extractor.ExtractText(c, data, mimeType, fileHeader.Filename)
	if err != nil {
		logger.Ctx(c).Warn().Err(err).Str("filename", fileHeader.Filename).Msg("text extraction failed")
		ctx.JSON(consts.StatusBadRequest, utils.H{"message": parser.UserMessage(err)})
		return
	}
	if strings.TrimSpace(text) == "" {
		ctx.JSON(consts.StatusBadRequest, utils.H{"message": MsgNoText})
		return
	}

	analysis := h.advisor.AnalyzeResume(c, text)
	if analysis.UsedFallback {
		logger.Ctx(c).Warn().Str("filename", fileHeader.Filename).Msg("resume analysis returned fallback result")
	}

	ctx.JSON(consts.StatusOK, ResumeAnalyzeResponse{
		ResumeAnalysis: *analysis,
		ResumeText:     processor.TruncateForEcho(text),
	})
}

// HandleSkillsGet serves GET /skills with resumeText as a query param.
func (h *CareerHandler) HandleSkillsGet(c context.Context, ctx *app.RequestContext) {
	resumeText := ctx.Query("resumeText")
	ctx.JSON(consts.StatusOK, h.advisor.AssessSkills(c, resumeText))
}

// HandleSkillsPost serves POST /skills with resumeText in a JSON body.
// A missing or malformed body degrades to the generic assessment.
func (h *CareerHandler) HandleSkillsPost(c context.Context, ctx *app.RequestContext) {
	var req struct {
		ResumeText string `json:"resumeText"`
	}
	_ = ctx.BindJSON(&req)
	ctx.JSON(consts.StatusOK, h.advisor.AssessSkills(c, req.ResumeText))
}

// HandleCareerPathsGet serves GET /career-paths.
func (h *CareerHandler) HandleCareerPathsGet(c context.Context, ctx *app.RequestContext) {
	resumeText := ctx.Query("resumeText")
	ctx.JSON(consts.StatusOK, h.advisor.SuggestCareerPaths(c, resumeText))
}

// HandleCareerPathsPost serves POST /career-paths.
func (h *CareerHandler) HandleCareerPathsPost(c context.Context, ctx *app.RequestContext) {
	var req struct {
		ResumeText string `json:"resumeText"`
	}
	_ = ctx.BindJSON(&req)
	ctx.JSON(consts.StatusOK, h.advisor.SuggestCareerPaths(c, req.ResumeText))
}

// HandleLearningPathsGet serves GET /learning-paths.
func (h *CareerHandler) HandleLearningPathsGet(c context.Context, ctx *app.RequestContext) {
	careerGoal := ctx.Query("careerGoal")
	ctx.JSON(consts.StatusOK, h.advisor.CurateLearningPaths(c, careerGoal))
}

// HandleLearningPathsPost serves POST /learning-paths.
func (h *CareerHandler) HandleLearningPathsPost(c context.Context, ctx *app.RequestContext) {
	var req struct {
		CareerGoal string `json:"careerGoal"`
	}
	_ = ctx.BindJSON(&req)
	ctx.JSON(consts.StatusOK, h.advisor.CurateLearningPaths(c, req.CareerGoal))
}

// HandleChat validates the conversation history and runs one chat turn.
func (h *CareerHandler) HandleChat(c context.Context, ctx *app.RequestContext) {
	var req ChatRequest
	_ = ctx.BindJSON(&req)

	if len(req.Messages) == 0 {
		ctx.JSON(consts.StatusBadRequest, utils.H{"message": MsgMessagesRequired})
		return
	}
	if req.Messages[len(req.Messages)-1].Role != types.RoleUser {
		ctx.JSON(consts.StatusBadRequest, utils.H{"message": MsgLastNotUser})
		return
	}

	reply := h.advisor.Chat(c, req.Messages)
	ctx.JSON(consts.StatusOK, utils.H{"message": reply})
}

// HandleDebug reports whether a completion credential is configured. It
// never exposes the key itself.
func (h *CareerHandler) HandleDebug(c context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, utils.H{"hasOpenAI": strings.TrimSpace(h.cfg.LLM.APIKey) != ""})
}

// allowedUpload applies the upload type gate: one of the three accepted
// MIME types, or a .txt extension regardless of the declared type.
func allowedUpload(mimeType, filename string) bool {
	switch mimeType {
	case parser.MIMEPDF, parser.MIMEDocx, parser.MIMEText:
		return true
	}
	return strings.HasSuffix(filename, ".txt")
}
