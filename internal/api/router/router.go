package router

import (
	"context"

	"career-ai-go/internal/api/handler"
	"career-ai-go/internal/logger"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/gofrs/uuid/v5"
)

const requestIDHeader = "X-Request-ID"

// RegisterRoutes registers the advisory API under /api/v1.
func RegisterRoutes(h *server.Hertz, careerHandler *handler.CareerHandler) {
	h.Use(RequestID())
	h.Use(AccessLog())

	api := h.Group("/api/v1")

	api.POST("/resume/analyze", careerHandler.HandleResumeAnalyze)

	api.GET("/skills", careerHandler.HandleSkillsGet)
	api.POST("/skills", careerHandler.HandleSkillsPost)

	api.GET("/career-paths", careerHandler.HandleCareerPathsGet)
	api.POST("/career-paths", careerHandler.HandleCareerPathsPost)

	api.GET("/learning-paths", careerHandler.HandleLearningPathsGet)
	api.POST("/learning-paths", careerHandler.HandleLearningPathsPost)

	api.POST("/chat", careerHandler.HandleChat)

	api.GET("/debug", careerHandler.HandleDebug)

	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}

// RequestID assigns a UUIDv7 request ID when the client did not send one,
// and echoes it on the response.
func RequestID() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		requestID := string(ctx.GetHeader(requestIDHeader))
		if requestID == "" {
			if id, err := uuid.NewV7(); err == nil {
				requestID = id.String()
			}
		}
		ctx.Response.Header.Set(requestIDHeader, requestID)
		ctx.Set("request_id", requestID)

		reqLogger := logger.Logger.With().Str("request_id", requestID).Logger()
		ctx.Next(reqLogger.WithContext(c))
	}
}

// AccessLog logs one line per request on the way in and out.
func AccessLog() app.HandlerFunc {
	return func(c context.Context, ctx *app.RequestContext) {
		hlog.CtxInfof(c, "Request: %s %s", string(ctx.Method()), string(ctx.Path()))
		ctx.Next(c)
		hlog.CtxInfof(c, "Response: status %d", ctx.Response.StatusCode())
	}
}
