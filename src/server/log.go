package server

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	lj "gopkg.in/natefinch/lumberjack.v2"
)

// accessLogger writes one structured line per request. With a log file
// configured it emits JSON to a size-rotated file, otherwise text to
// stderr.
type accessLogger struct {
	logger *slog.Logger
}

func newAccessLogger(file string) *accessLogger {
	if file == "" {
		return &accessLogger{logger: slog.New(slog.NewTextHandler(os.Stderr, nil))}
	}
	w := &lj.Logger{Filename: file, MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: true}
	return &accessLogger{logger: slog.New(slog.NewJSONHandler(w, nil))}
}

func (l *accessLogger) wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		l.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote", r.RemoteAddr,
		)
	})
}

// statusRecorder captures the response status for access logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
