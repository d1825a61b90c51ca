package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dtroode/recommendme-server/internal/logger"
)

func TestLogging_Handle(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantMsg    string
		wantStatus string
	}{
		{name: "ok", status: http.StatusOK, wantMsg: "HTTP request completed", wantStatus: "status=200"},
		{name: "client error", status: http.StatusBadRequest, wantMsg: "HTTP request completed", wantStatus: "status=400"},
		{name: "server error", status: http.StatusInternalServerError, wantMsg: "HTTP request failed", wantStatus: "status=500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf, 0)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			rec := httptest.NewRecorder()
			NewLogging(lg).Handle(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/queries", nil))

			out := buf.String()
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, out, tt.wantMsg)
			assert.Contains(t, out, tt.wantStatus)
			assert.Contains(t, out, "path=/queries")
		})
	}
}

func TestLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf, 0)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hi"))
	})

	NewLogging(lg).Handle(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "bytes=2")
}
