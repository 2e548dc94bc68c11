package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"warn", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l := NewWithOutput("production", tt.level, &bytes.Buffer{})
			if got := l.Logger.GetLevel(); got != tt.want {
				t.Errorf("level = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithError_Nil(t *testing.T) {
	l := NewWithOutput("production", "info", &bytes.Buffer{})
	if l.WithError(nil) != l.Entry {
		t.Error("expected base entry for nil error")
	}
	if got := l.WithError(errors.New("boom")).Data["error"]; got != "boom" {
		t.Errorf("error field = %v, want boom", got)
	}
}

func TestMiddleware_LogsStatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("production", "info", &buf)

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest("GET", "/healthz", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("expected echoed request id, got %q", got)
	}

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
	}
	if line["req_id"] != "req-123" {
		t.Errorf("req_id = %v, want req-123", line["req_id"])
	}
	if line["status"] != float64(http.StatusTeapot) {
		t.Errorf("status = %v, want 418", line["status"])
	}
	if line["level"] != "warning" {
		t.Errorf("level = %v, want warning", line["level"])
	}
}

func TestRequestID_MintsWhenMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	id := RequestID(req)
	if id == "" {
		t.Fatal("expected minted request id")
	}
	if RequestID(req) != id {
		t.Error("expected the minted id to be stable for the request")
	}
}
