package http

import (
	"encoding/json"
	"net/http"

	"scenario2050/internal/features/scenario/application"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScenarioHandler holds the narrative service.
type ScenarioHandler struct {
	narrativeService application.NarrativeService
	logger           *zap.Logger
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(narrativeService application.NarrativeService, logger *zap.Logger) *ScenarioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioHandler{
		narrativeService: narrativeService,
		logger:           logger,
	}
}

// GenerateHandler handles narrative generation. The body is an unvalidated
// scenario config; whatever arrives is normalized, and the response is always
// 200 with some narrative text. Numbers stay json.Number so an out-of-range
// literal reaches the normalizer as that one field instead of failing the body.
func (h *ScenarioHandler) GenerateHandler(c *gin.Context) {
	var raw map[string]any
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		h.logger.Debug("unreadable scenario body", zap.Error(err))
	}
	if raw == nil {
		raw = map[string]any{}
	}

	result := h.narrativeService.Generate(c.Request.Context(), raw)
	c.JSON(http.StatusOK, result)
}

// Register mounts the scenario routes on r.
func (h *ScenarioHandler) Register(r gin.IRouter) {
	r.POST("/generate", h.GenerateHandler)
}
