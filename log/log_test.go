package log

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := slog.New(slog.NewJSONHandler(buf, nil))

	h := RequestLogger(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/orders", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "/api/orders", line["path"])
	assert.EqualValues(t, 502, line["status"])
}

func TestInterceptorLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	l := InterceptorLogger(slog.New(slog.NewJSONHandler(buf, nil)))
	l.Log(context.Background(), logging.LevelWarn, "finished call", "grpc.code", "OK")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "OK", line["grpc.code"])
}
