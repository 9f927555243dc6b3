package handlers

import (
	"net/http"

	"github.com/Luciano655dev/HobbyASAP/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MetricsRequest selects which global counter to bump.
type MetricsRequest struct {
	Type string `json:"type" binding:"required"`
}

// HandleMetricsIncrement bumps the prompts or users counter. With no counter
// store configured this is a successful no-op so clients never treat
// analytics as a failure.
func (h *Handlers) HandleMetricsIncrement(c *gin.Context) {
	var req MetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidInput, "Invalid JSON body.")
		return
	}

	if h.counters == nil {
		c.JSON(http.StatusOK, gin.H{"ok": true, "disabled": true})
		return
	}

	var key string
	switch req.Type {
	case "prompt":
		key = promptsKey
	case "newUser":
		key = usersKey
	default:
		respondError(c, http.StatusBadRequest, CodeInvalidInput,
			`Type must be "prompt" or "newUser".`)
		return
	}

	if _, err := h.counters.Incr(c.Request.Context(), key); err != nil {
		logger.Get().Error("failed to increment metrics counter",
			zap.String("key", key),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// HandleMetricsGet returns the global prompt and user counters.
func (h *Handlers) HandleMetricsGet(c *gin.Context) {
	if h.counters == nil {
		c.JSON(http.StatusOK, gin.H{"prompts": 0, "users": 0, "disabled": true})
		return
	}

	var prompts, users int64
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		prompts, err = h.counters.Get(ctx, promptsKey)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = h.counters.Get(ctx, usersKey)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Get().Error("failed to load metrics counters", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"prompts": 0,
			"users":   0,
			"error":   "Failed to load metrics",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompts": prompts, "users": users})
}

// HandleHealth is the liveness probe.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
