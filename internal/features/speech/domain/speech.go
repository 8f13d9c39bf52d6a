package domain

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxChars is the longest text handed to the speech backend.
	MaxChars = 1500
	// minSentenceCut is the earliest position at which a cut on a period is
	// preferred over a hard cut.
	minSentenceCut = 200
	// Ellipsis marks a hard cut in the middle of a sentence.
	Ellipsis = "..."

	// MimeType is the encoding of every synthesized payload.
	MimeType = "audio/mpeg"
	// MaxErrorBody bounds how much of an upstream error body is kept.
	MaxErrorBody = 2048
)

var (
	// ErrNotConfigured means no speech credential is available.
	ErrNotConfigured = errors.New("speech synthesis is not configured")
	// ErrBadRequest means the request was rejected before any backend call.
	ErrBadRequest = errors.New("bad request")
)

// UpstreamError is a non-success answer from the speech backend.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("TTS request failed with status %d", e.Status)
	}
	return e.Body
}

// SynthesisRequest is the body of a speech request.
type SynthesisRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
	VoiceID  string `json:"voiceId,omitempty"`
}

// SynthesisResult carries the encoded audio.
type SynthesisResult struct {
	AudioBase64 string `json:"audioBase64"`
	MimeType    string `json:"mimeType"`
}

// Truncate fits text into MaxChars characters. Longer text is cut after the
// last period in the first MaxChars characters when that period sits at least
// minSentenceCut characters in; otherwise the first MaxChars characters are
// kept and Ellipsis is appended.
func Truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxChars {
		return text
	}
	head := string(runes[:MaxChars])
	if i := lastPeriod(runes[:MaxChars]); i >= minSentenceCut {
		return string(runes[:i+1])
	}
	return head + Ellipsis
}

// lastPeriod returns the rune index of the last '.' or -1.
func lastPeriod(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == '.' {
			return i
		}
	}
	return -1
}

// BoundBody trims an upstream error body to MaxErrorBody bytes without
// splitting a UTF-8 sequence.
func BoundBody(body []byte) string {
	if len(body) <= MaxErrorBody {
		return strings.TrimSpace(string(body))
	}
	cut := MaxErrorBody
	for cut > 0 && body[cut]&0xC0 == 0x80 {
		cut--
	}
	return strings.TrimSpace(string(body[:cut]))
}
