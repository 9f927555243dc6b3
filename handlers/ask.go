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
	askTemperature = 0.3
	askMaxTokens   = 800
)

// AskRequest is the question-answering payload. The server is stateless, so
// the caller supplies the plan (required) plus any lessons and prior Q&A the
// answer should draw on.
type AskRequest struct {
	Question string           `json:"question"`
	Plan     *models.Plan     `json:"plan"`
	Lessons  []models.Lesson  `json:"lessons"`
	History  []models.QAItem  `json:"history"`
	Language string           `json:"language"`
}

// HandleAsk answers a question using only the supplied plan context.
func (h *Handlers) HandleAsk(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid JSON body.")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "A non-empty question is required.")
		return
	}
	if req.Plan == nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput,
			"No plan context provided. Generate a plan first, then ask a question about it.")
		return
	}

	budgetResult := h.gate.Check(c.Request.Context())
	if !budgetResult.Allowed {
		respondError(c, http.StatusTooManyRequests, CodeBudgetExceeded, budgetExceededMessage)
		return
	}

	lang := prompt.NormalizeLanguage(req.Language)

	completion, err := h.completer.ChatCompletion(c.Request.Context(), llm.Request{
		SystemPrompt: prompt.AskSystem(lang),
		UserPrompt:   prompt.Ask(req.Question, req.Plan, req.Lessons, req.History),
		Temperature:  askTemperature,
		MaxTokens:    askMaxTokens,
	})
	if err != nil {
		logger.Get().Error("ask completion failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, CodeUpstreamFailure,
			"Something went wrong answering your question.")
		return
	}

	h.gate.RecordUsage(c.Request.Context(), budgetResult.DayKey, completion.TokensUsed)
	middleware.ObserveTokens(completion.TokensUsed)

	answer, exErr := extract.Answer(completion.Content)
	if exErr != nil {
		logger.Get().Error("answer extraction failed",
			zap.String("reason", string(exErr.Reason)),
			zap.String("detail", exErr.Detail),
			zap.String("raw", completion.Content))
		respondError(c, http.StatusInternalServerError, extractionCode(exErr),
			"The AI did not return a usable answer. Try again or rephrase your question.")
		return
	}

	var inDepthTopic any
	if answer.InDepthTopic != "" {
		inDepthTopic = answer.InDepthTopic
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":       answer.Answer,
		"tasks":        answer.Tasks,
		"inDepthTopic": inDepthTopic,
	})
}
