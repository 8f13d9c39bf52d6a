package http

import (
	"errors"
	"net/http"

	"scenario2050/internal/config"
	"scenario2050/internal/features/speech/application"
	"scenario2050/internal/features/speech/domain"

	"github.com/gin-gonic/gin"
)

// SpeechHandler holds the speech service.
type SpeechHandler struct {
	speechService application.SpeechService
}

// NewSpeechHandler creates a new SpeechHandler.
func NewSpeechHandler(speechService application.SpeechService) *SpeechHandler {
	return &SpeechHandler{speechService: speechService}
}

// SynthesizeHandler handles text-to-speech requests.
// The credential is checked before the body is read, so an unconfigured
// server answers 501 whatever was sent.
func (h *SpeechHandler) SynthesizeHandler(c *gin.Context) {
	if !h.speechService.Available() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "missing " + config.EnvElevenLabsKey + " for TTS generation"})
		return
	}

	var req domain.SynthesisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.speechService.Synthesize(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Register mounts the speech routes on r.
func (h *SpeechHandler) Register(r gin.IRouter) {
	r.POST("/tts", h.SynthesizeHandler)
}

func statusFor(err error) int {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		return http.StatusNotImplemented
	case errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.As(err, &upstream) && upstream.Status >= 400:
		return upstream.Status
	}
	return http.StatusBadGateway
}
