package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dualzone/config"
	"dualzone/shared/timezone"
	"dualzone/transport/http/middleware"
)

func newMiddleware(t *testing.T, header string) (*timezone.Context, middleware.Timezone) {
	t.Helper()

	tz, err := timezone.New("UTC")
	require.NoError(t, err)
	require.NoError(t, tz.SetCurrent(timezone.Name("Europe/Brussels")))

	cfg := &config.Config{}
	cfg.App.TimezoneHeader = header

	return tz, middleware.NewTimezoneMiddleware(tz, cfg)
}

func captureZone(got **timezone.Context) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, _ = timezone.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestTimezoneWithoutHeaderUsesShared(t *testing.T) {
	tz, mw := newMiddleware(t, "")

	var got *timezone.Context

	rec := httptest.NewRecorder()
	mw.Timezone(captureZone(&got)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Same(t, tz, got)
}

func TestTimezoneHeaderDerivesRequestZone(t *testing.T) {
	tz, mw := newMiddleware(t, "X-User-Timezone")

	var got *timezone.Context

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-User-Timezone", "Asia/Tokyo")

	rec := httptest.NewRecorder()
	mw.Timezone(captureZone(&got)).ServeHTTP(rec, req)

	require.NotNil(t, got)
	assert.Equal(t, "Asia/Tokyo", got.Current().String())
	assert.Equal(t, "UTC", got.Storage().String())
	assert.Equal(t, "Europe/Brussels", tz.Current().String())
}

func TestTimezoneQueryParameter(t *testing.T) {
	_, mw := newMiddleware(t, "")

	var got *timezone.Context

	rec := httptest.NewRecorder()
	mw.Timezone(captureZone(&got)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?tz=%2B05:30", nil))

	require.NotNil(t, got)
	assert.Equal(t, "+05:30", got.Current().String())
}

func TestTimezoneInvalidHeader(t *testing.T) {
	tz, mw := newMiddleware(t, "")

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Timezone", "Not/AZone")

	rec := httptest.NewRecorder()
	mw.Timezone(next).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "Not/AZone")
	assert.Equal(t, "Europe/Brussels", tz.Current().String())
}
