package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

func getHealth(checks map[string]Check) (*httptest.ResponseRecorder, map[string]string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", NewHealthHandler(checks).GetHealth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestGetHealth(t *testing.T) {
	ok := func(context.Context) error { return nil }

	w, body := getHealth(map[string]Check{"database": ok, "redis": ok})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "connected", body["redis"])
}

func TestGetHealth_NoBackends(t *testing.T) {
	w, body := getHealth(nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestGetHealth_Disconnected(t *testing.T) {
	w, body := getHealth(map[string]Check{
		"database": func(context.Context) error { return nil },
		"redis":    func(context.Context) error { return errors.New("dial tcp: connection refused") },
	})

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "disconnected", body["redis"])
}
