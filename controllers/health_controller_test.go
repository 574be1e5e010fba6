package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	err error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	return f.err
}

func newHealthRouter(p Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", NewHealthController(p).Health)
	return router
}

func TestHealthOK(t *testing.T) {
	router := newHealthRouter(&fakePinger{})

	w := doJSON(router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "ok", resp["status"])
	require.NotEmpty(t, resp["timestamp"])
}

func TestHealthStoreUnavailable(t *testing.T) {
	router := newHealthRouter(&fakePinger{err: errors.New("redis ping: connection refused")})

	w := doJSON(router, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "unavailable")
}
