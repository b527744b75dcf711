package observe

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"weather-dashboard/pkg/logger"
)

type capturedEvents struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (c *capturedEvents) beforeSend(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, event)
	return nil
}

func (c *capturedEvents) all() []*sentry.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*sentry.Event(nil), c.events...)
}

func newTestHook(t *testing.T) (*SentryHook, *capturedEvents) {
	t.Helper()
	captured := &capturedEvents{}
	hook, err := NewSentryHook(SentryOptions{
		AppZone:    "test",
		AppName:    "weather-dashboard",
		BeforeSend: captured.beforeSend,
	})
	require.NoError(t, err)
	return hook, captured
}

func TestSentryHook_ForwardsErrorEntries(t *testing.T) {
	hook, captured := newTestHook(t)
	l := logger.NewZapLogger(logger.Options{AppName: "weather-dashboard", AppEnv: "test"}, &bytes.Buffer{}, hook)

	l.Error(errors.New("open-meteo unreachable"), map[string]any{"latitude": "52.52"})

	events := captured.all()
	require.Len(t, events, 1)
	event := events[0]
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "open-meteo unreachable", event.Message)
	assert.Equal(t, "test", event.Environment)
	assert.Equal(t, "weather-dashboard", event.Extra["AppName"])
	assert.Equal(t, "open-meteo unreachable", event.Extra["Error"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "open-meteo unreachable", event.Exception[0].Value)
}

func TestSentryHook_IgnoresLowerLevels(t *testing.T) {
	hook, captured := newTestHook(t)
	l := logger.NewZapLogger(logger.Options{}, hook)

	l.Debug("debug")
	l.Info("info")
	l.Warning("warning")

	assert.Empty(t, captured.all())
}

func TestSentryHook_WriteToleratesGarbage(t *testing.T) {
	hook, captured := newTestHook(t)

	n, err := hook.Write([]byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, len("not json"), n)

	payload := []byte(`{"level":"loud","msg":"x"}`)
	n, err = hook.Write(payload)
	require.NoError(t, err)
	assert.Equal(t, len(payload), n)

	assert.Empty(t, captured.all())
}

func TestSentryHook_MapLevel(t *testing.T) {
	h := &SentryHook{}
	assert.Equal(t, sentry.LevelError, h.mapLevel(zapcore.ErrorLevel))
	assert.Equal(t, sentry.LevelWarning, h.mapLevel(zapcore.WarnLevel))
	assert.Equal(t, sentry.LevelInfo, h.mapLevel(zapcore.InfoLevel))
	assert.Equal(t, sentry.LevelDebug, h.mapLevel(zapcore.DebugLevel))
	assert.Equal(t, sentry.LevelFatal, h.mapLevel(zapcore.FatalLevel))
}
