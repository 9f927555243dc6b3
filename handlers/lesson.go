package handlers

import (
	"net/http"
	"strings"

	"github.com/Luciano655dev/HobbyASAP/extract"
	"github.com/Luciano655dev/HobbyASAP/llm"
	"github.com/Luciano655dev/HobbyASAP/logger"
	"github.com/Luciano655dev/HobbyASAP/middleware"
	"github.com/Luciano655dev/HobbyASAP/models"
	"github.com/Luciano655dev/HobbyASAP/prompt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	lessonTemperature = 0.0
	lessonMaxTokens   = 2800
)

// LessonRequest is the lesson generation payload.
type LessonRequest struct {
	Hobby    string            `json:"hobby"`
	Level    string            `json:"level"`
	Kind     models.LessonKind `json:"kind"`
	Topic    string            `json:"topic"`
	Language string            `json:"language"`
}

// HandleLesson creates one masterclass or in-depth lesson.
func (h *Handlers) HandleLesson(c *gin.Context) {
	var req LessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid JSON body.")
		return
	}

	if strings.TrimSpace(req.Hobby) == "" {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Hobby is required.")
		return
	}
	if !models.ValidLessonKind(req.Kind) {
		respondError(c, http.StatusBadRequest, CodeInvalidInput,
			`Kind must be "masterclass" or "inDepth".`)
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Topic is required.")
		return
	}

	budgetResult := h.gate.Check(c.Request.Context())
	if !budgetResult.Allowed {
		respondError(c, http.StatusTooManyRequests, CodeBudgetExceeded, budgetExceededMessage)
		return
	}

	level := prompt.NormalizeLevel(req.Level)
	lang := prompt.NormalizeLanguage(req.Language)

	completion, err := h.completer.ChatCompletion(c.Request.Context(), llm.Request{
		SystemPrompt: prompt.System(lang),
		UserPrompt: prompt.Lesson(prompt.LessonParams{
			Hobby: req.Hobby,
			Level: level,
			Kind:  req.Kind,
			Topic: req.Topic,
		}),
		Temperature: lessonTemperature,
		MaxTokens:   lessonMaxTokens,
	})
	if err != nil {
		logger.Get().Error("lesson completion failed",
			zap.String("hobby", req.Hobby),
			zap.String("topic", req.Topic),
			zap.Error(err))
		respondError(c, http.StatusInternalServerError, CodeUpstreamFailure,
			"Something went wrong generating the lesson.")
		return
	}

	h.gate.RecordUsage(c.Request.Context(), budgetResult.DayKey, completion.TokensUsed)
	middleware.ObserveTokens(completion.TokensUsed)

	lesson, exErr := extract.Lesson(completion.Content)
	if exErr != nil {
		logger.Get().Error("lesson extraction failed",
			zap.String("hobby", req.Hobby),
			zap.String("topic", req.Topic),
			zap.String("reason", string(exErr.Reason)),
			zap.String("detail", exErr.Detail),
			zap.String("raw", completion.Content))
		respondError(c, http.StatusInternalServerError, extractionCode(exErr),
			"AI response did not contain a valid lesson. Try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"lesson": lesson})
}
