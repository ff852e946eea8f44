package httpapi

import (
	"bytes"
	"log"
	"net/http"
	"time"
)

const maxLoggedBodyBytes = 512

const slowRequestThreshold = time.Second

// statusRecorder captures the status code and a truncated copy of the
// response body for the request log.
type statusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten int
	logBody      bytes.Buffer
	truncated    bool
	maxLogBytes  int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(payload []byte) (int, error) {
	if remaining := r.maxLogBytes - r.logBody.Len(); remaining > 0 {
		if len(payload) > remaining {
			r.logBody.Write(payload[:remaining])
			r.truncated = true
		} else {
			r.logBody.Write(payload)
		}
	} else if len(payload) > 0 {
		r.truncated = true
	}

	written, err := r.ResponseWriter.Write(payload)
	r.bytesWritten += written
	return written, err
}

// withRequestLogging logs every request with its status, size and
// duration, and flags slow ones.
func withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			maxLogBytes:    maxLoggedBodyBytes,
		}

		next.ServeHTTP(recorder, r)

		elapsed := time.Since(start)
		log.Printf("httpapi: %s %s -> %d (%d bytes, %s)",
			r.Method, r.URL.Path, recorder.statusCode, recorder.bytesWritten, elapsed)
		if recorder.statusCode >= http.StatusInternalServerError {
			log.Printf("httpapi: error body: %s%s", recorder.logBody.String(), truncationMark(recorder.truncated))
		}
		if elapsed > slowRequestThreshold {
			log.Printf("httpapi: slow request: %s %s took %s", r.Method, r.URL.Path, elapsed)
		}
	})
}

func truncationMark(truncated bool) string {
	if truncated {
		return "..."
	}
	return ""
}
