package logger

import (
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp format of every log entry.
const TimeLayout = "2006-01-02T15-04-05.000"

// Logger is a thin structured-logging facade over zap. Every entry carries
// the application name, zone and the calling function.
type Logger struct {
	appEnv  string
	appName string
	l       *zap.Logger
}

// Options configures NewZapLogger. Zero values mean debug level in UTC.
type Options struct {
	AppName  string
	AppEnv   string
	Level    string
	Location *time.Location
}

func NewZapLogger(opts Options, writers ...io.Writer) *Logger {
	location := opts.Location
	if location == nil {
		location = time.UTC
	}

	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = timeEncoder(TimeLayout, location)
	cfg.TimeKey = "timestamp"

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if len(writers) > 0 {
		syncers = syncers[:0]
		for _, w := range writers {
			syncers = append(syncers, zapcore.AddSync(w))
		}
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg),
		zapcore.NewMultiWriteSyncer(syncers...),
		ParseLevel(opts.Level),
	)

	return &Logger{
		appEnv:  opts.AppEnv,
		appName: opts.AppName,
		l:       zap.New(core),
	}
}

// NewNopLogger returns a Logger that drops every entry.
func NewNopLogger() *Logger {
	return &Logger{l: zap.NewNop()}
}

// ParseLevel maps a level name to a zap level; empty or unknown names mean debug.
func ParseLevel(level string) zapcore.Level {
	if level == "" {
		return zapcore.DebugLevel
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.DebugLevel
	}
	return lvl
}

func (l *Logger) Stop() error {
	return l.l.Sync()
}

func (l *Logger) Error(err error, fields ...map[string]any) {
	l.write(zapcore.ErrorLevel, err.Error(), fields,
		zap.String("error", err.Error()),
		zap.Stack("stack"),
	)
}

func (l *Logger) Info(msg string, fields ...map[string]any) {
	l.write(zapcore.InfoLevel, msg, fields)
}

func (l *Logger) Warning(msg string, fields ...map[string]any) {
	l.write(zapcore.WarnLevel, msg, fields)
}

func (l *Logger) Debug(msg string, fields ...map[string]any) {
	l.write(zapcore.DebugLevel, msg, fields)
}

func (l *Logger) Fatal(msg string, fields ...map[string]any) {
	l.write(zapcore.FatalLevel, msg, fields)
}

// Log writes alternating key/value pairs at info level.
func (l *Logger) Log(keyvals ...any) error {
	l.l.Info("", toZapFields(keyvals)...)
	return nil
}

func (l *Logger) write(level zapcore.Level, msg string, fields []map[string]any, extra ...zap.Field) {
	ce := l.l.Check(level, msg)
	if ce == nil {
		return
	}

	file, line, funcName := getRuntimeParams()
	zf := make([]zap.Field, 0, 5+len(extra))
	zf = append(zf,
		zap.String("app_zone", l.appEnv),
		zap.String("app_name", l.appName),
		zap.String("caller_file", file),
		zap.Int("caller_line", line),
		zap.String("caller_func", funcName),
	)
	zf = append(zf, extra...)
	if len(fields) > 0 {
		zf = append(zf, mapToZapFields(fields[0])...)
	}

	ce.Write(zf...)
}

func toZapFields(keyvals []any) []zap.Field {
	fields := make([]zap.Field, 0, len(keyvals)/2)

	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = "invalid-key"
		}
		fields = append(fields, zap.Any(key, keyvals[i+1]))
	}

	return fields
}

func mapToZapFields(data map[string]any) []zap.Field {
	zapFields := make([]zap.Field, 0, len(data))
	for k, v := range data {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return zapFields
}

// getRuntimeParams reports the caller of the public logging method.
func getRuntimeParams() (file string, line int, funcName string) {
	pc, file, line, ok := runtime.Caller(3)
	if !ok {
		return "not_defined", 0, "not_defined"
	}
	return file, line, runtime.FuncForPC(pc).Name()
}

func timeEncoder(layout string, location *time.Location) zapcore.TimeEncoder {
	return func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		t = t.In(location)
		type appendTimeEncoder interface {
			AppendTimeLayout(time.Time, string)
		}
		if enc, ok := enc.(appendTimeEncoder); ok {
			enc.AppendTimeLayout(t, layout)
			return
		}
		enc.AppendString(t.Format(layout))
	}
}
