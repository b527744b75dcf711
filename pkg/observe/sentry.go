package observe

import (
	"encoding/json"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"weather-dashboard/pkg/logger"
)

const (
	_sentryMaxErrorDepth int           = 9
	_sentryFlushTimeout  time.Duration = 5 * time.Second
)

type SentryOptions struct {
	DSN     string
	AppZone string
	AppName string
	Debug   bool

	// BeforeSend is passed through to the sentry client.
	BeforeSend func(*sentry.Event, *sentry.EventHint) *sentry.Event
}

// SentryHook is an io.Writer for the JSON log stream. Error, panic and fatal
// entries are forwarded to Sentry; everything else is ignored.
type SentryHook struct {
	appZone string
	appName string
	hub     *sentry.Hub
	l       *logger.Logger
}

func NewSentryHook(opts SentryOptions) (*SentryHook, error) {
	client, err := sentry.NewClient(sentry.ClientOptions{
		AttachStacktrace: true,
		Debug:            opts.Debug,
		Dsn:              opts.DSN,
		Environment:      opts.AppZone,
		MaxErrorDepth:    _sentryMaxErrorDepth,
		ServerName:       opts.AppName,
		BeforeSend:       opts.BeforeSend,
	})
	if err != nil {
		return nil, errors.Wrap(err, "init sentry client")
	}

	return &SentryHook{
		appZone: opts.AppZone,
		appName: opts.AppName,
		hub:     sentry.NewHub(client, sentry.NewScope()),
	}, nil
}

func (*SentryHook) mapLevel(zl zapcore.Level) sentry.Level {
	switch zl {
	case zapcore.InfoLevel:
		return sentry.LevelInfo
	case zapcore.WarnLevel:
		return sentry.LevelWarning
	case zapcore.ErrorLevel:
		return sentry.LevelError
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return sentry.LevelFatal
	}
	return sentry.LevelDebug
}

type logEntry struct {
	Level      string `json:"level"`
	CallerFile string `json:"caller_file"`
	CallerLine int    `json:"caller_line"`
	CallerFunc string `json:"caller_func"`
	Stack      string `json:"stack"`
	Message    string `json:"msg"`
	Error      string `json:"error"`
	Timestamp  string `json:"timestamp"`
}

func (h *SentryHook) Write(p []byte) (int, error) {
	var entry logEntry
	if err := json.Unmarshal(p, &entry); err != nil {
		h.report(errors.Wrap(err, "[SentryHook] decode log entry"))
		return len(p), nil
	}

	level, err := zapcore.ParseLevel(entry.Level)
	if err != nil {
		h.report(errors.Wrap(err, "[SentryHook] parse zap level"))
		return len(p), nil
	}
	if level < zapcore.ErrorLevel || entry.Message == "" {
		return len(p), nil
	}

	h.hub.CaptureEvent(h.buildEvent(level, entry))

	return len(p), nil
}

func (h *SentryHook) buildEvent(level zapcore.Level, entry logEntry) *sentry.Event {
	event := sentry.NewEvent()
	event.Environment = h.appZone
	event.Level = h.mapLevel(level)
	event.Message = entry.Message
	if ts, err := time.ParseInLocation(logger.TimeLayout, entry.Timestamp, time.UTC); err == nil {
		event.Timestamp = ts
	}

	event.Extra["AppName"] = h.appName
	event.Extra["Error"] = entry.Error
	event.Extra["CallerFile"] = entry.CallerFile
	event.Extra["CallerLine"] = entry.CallerLine
	event.Extra["CallerFunc"] = entry.CallerFunc
	event.Extra["Stack"] = entry.Stack
	event.Extra["TimeStamp"] = entry.Timestamp

	event.Exception = append(event.Exception, sentry.Exception{
		Type:       entry.Message,
		Value:      entry.Error,
		Stacktrace: sentry.NewStacktrace(),
	})

	return event
}

// report logs hook failures without re-entering the hook when no logger is set.
func (h *SentryHook) report(err error) {
	if h.l != nil {
		h.l.Warning(err.Error())
	}
}

// Flush waits for buffered events to be delivered.
func (h *SentryHook) Flush() bool {
	return h.hub.Flush(_sentryFlushTimeout)
}

func (h *SentryHook) SetLogger(l *logger.Logger) {
	if l != nil {
		h.l = l
	}
}
