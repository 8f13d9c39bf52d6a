package application

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"scenario2050/internal/config"
	configdomain "scenario2050/internal/features/config/domain"
	"scenario2050/internal/features/speech/domain"
	"scenario2050/internal/features/speech/infrastructure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeTTS struct {
	audio []byte
	err   error
	reqs  []infrastructure.TTSRequest
}

func (f *fakeTTS) Synthesize(_ context.Context, req infrastructure.TTSRequest) ([]byte, error) {
	f.reqs = append(f.reqs, req)
	return f.audio, f.err
}

func newService(tts *fakeTTS, env config.MapEnvironment) (SpeechService, *int) {
	created := 0
	factory := func(string) (infrastructure.TTSClient, error) {
		created++
		return tts, nil
	}
	return NewSpeechService(factory, env, configdomain.DefaultAppConfig(), nil), &created
}

func withKey() config.MapEnvironment {
	return config.MapEnvironment{config.EnvElevenLabsKey: "xi-test"}
}

func TestSynthesize_EmptyTextIsBadRequest(t *testing.T) {
	tts := &fakeTTS{}
	svc, created := newService(tts, withKey())

	_, err := svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: "", Language: "en"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
	assert.Zero(t, *created)
	assert.Empty(t, tts.reqs)
}

func TestSynthesize_MissingCredentialIsNotConfigured(t *testing.T) {
	tts := &fakeTTS{}
	svc, created := newService(tts, config.MapEnvironment{})

	_, err := svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: "hello", Language: "en"})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	assert.Zero(t, *created)
	assert.False(t, svc.Available())
}

func TestSynthesize_Success(t *testing.T) {
	tts := &fakeTTS{audio: []byte("ID3-mp3-bytes")}
	svc, _ := newService(tts, withKey())

	res, err := svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: "Hello 2050.", Language: "en"})
	require.NoError(t, err)

	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("ID3-mp3-bytes")), res.AudioBase64)
	assert.Equal(t, "audio/mpeg", res.MimeType)
	require.Len(t, tts.reqs, 1)
	assert.Equal(t, "Hello 2050.", tts.reqs[0].Text)
	assert.Equal(t, "21m00Tcm4TlvDq8ikWAM", tts.reqs[0].VoiceID)
	assert.Empty(t, tts.reqs[0].Model)
	assert.True(t, svc.Available())
}

func TestSynthesize_VoiceSelection(t *testing.T) {
	env := withKey()
	env[config.EnvElevenLabsVoiceID] = "env-voice"

	tts := &fakeTTS{audio: []byte("a")}
	svc, _ := newService(tts, env)

	_, err := svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: "x", VoiceID: "caller-voice"})
	require.NoError(t, err)
	_, err = svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: "x"})
	require.NoError(t, err)

	require.Len(t, tts.reqs, 2)
	assert.Equal(t, "caller-voice", tts.reqs[0].VoiceID)
	assert.Equal(t, "env-voice", tts.reqs[1].VoiceID)
}

func TestSynthesize_GermanUsesMultilingualModel(t *testing.T) {
	tts := &fakeTTS{audio: []byte("a")}
	svc, _ := newService(tts, withKey())

	_, err := svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: "Hallo.", Language: "de"})
	require.NoError(t, err)
	assert.Equal(t, "eleven_multilingual_v2", tts.reqs[0].Model)
}

func TestSynthesize_TruncatesBeforeCall(t *testing.T) {
	tts := &fakeTTS{audio: []byte("a")}
	svc, _ := newService(tts, withKey())

	long := strings.Repeat("Sentence number one goes here. ", 100)
	_, err := svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: long})
	require.NoError(t, err)

	sent := tts.reqs[0].Text
	assert.LessOrEqual(t, len(sent), domain.MaxChars)
	assert.True(t, strings.HasSuffix(sent, "."))
	assert.Equal(t, domain.Truncate(long), sent)
}

func TestSynthesize_LogsTruncationInCharacters(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	tts := &fakeTTS{audio: []byte("a")}
	factory := func(string) (infrastructure.TTSClient, error) { return tts, nil }
	svc := NewSpeechService(factory, withKey(), configdomain.DefaultAppConfig(), zap.New(core))

	long := strings.Repeat("ü", domain.MaxChars+10)
	_, err := svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: long})
	require.NoError(t, err)

	entries := logs.FilterMessage("tts text truncated").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, domain.MaxChars+10, fields["from"])
	assert.EqualValues(t, domain.MaxChars+len(domain.Ellipsis), fields["to"])
}

func TestSynthesize_PropagatesUpstreamError(t *testing.T) {
	tts := &fakeTTS{err: &domain.UpstreamError{Status: 429, Body: "quota exceeded"}}
	svc, _ := newService(tts, withKey())

	_, err := svc.Synthesize(context.Background(), domain.SynthesisRequest{Text: "hi"})
	var upstream *domain.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, 429, upstream.Status)
}
