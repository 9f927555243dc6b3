package handlers

import (
	"net/http"
	"strings"

	"github.com/Luciano655dev/HobbyASAP/extract"
	"github.com/Luciano655dev/HobbyASAP/llm"
	"github.com/Luciano655dev/HobbyASAP/logger"
	"github.com/Luciano655dev/HobbyASAP/middleware"
	"github.com/Luciano655dev/HobbyASAP/prompt"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	generateTemperature = 0.0
	generateMaxTokens   = 2800
)

// GenerateRequest is the plan generation payload.
type GenerateRequest struct {
	Hobby    string `json:"hobby"`
	Level    string `json:"level"`
	Language string `json:"language"`
}

// HandleGenerate creates a learning plan for a hobby/level pair.
func (h *Handlers) HandleGenerate(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid JSON body.")
		return
	}

	if strings.TrimSpace(req.Hobby) == "" {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Hobby is required.")
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
		UserPrompt:   prompt.Plan(req.Hobby, level),
		Temperature:  generateTemperature,
		MaxTokens:    generateMaxTokens,
	})
	if err != nil {
		logger.Get().Error("plan completion failed",
			zap.String("hobby", req.Hobby),
			zap.Error(err))
		respondError(c, http.StatusInternalServerError, CodeUpstreamFailure,
			"Something went wrong generating the plan.")
		return
	}

	// The tokens are spent whether or not the output parses.
	h.gate.RecordUsage(c.Request.Context(), budgetResult.DayKey, completion.TokensUsed)
	middleware.ObserveTokens(completion.TokensUsed)

	plan, exErr := extract.Plan(completion.Content)
	if exErr != nil {
		logger.Get().Error("plan extraction failed",
			zap.String("hobby", req.Hobby),
			zap.String("reason", string(exErr.Reason)),
			zap.String("detail", exErr.Detail),
			zap.String("raw", completion.Content))
		respondError(c, http.StatusInternalServerError, extractionCode(exErr),
			"AI response did not contain a valid plan. Try again or try a simpler hobby name.")
		return
	}

	// Best-effort prompt counter; never surfaced to the user.
	if h.counters != nil {
		if _, err := h.counters.Incr(c.Request.Context(), promptsKey); err != nil {
			logger.Get().Warn("failed to increment prompts counter", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}
