package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func tagMiddleware(tag string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Order", tag)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	routes := []Route{
		{
			Path:        "/v1/ping",
			Method:      http.MethodGet,
			Handler:     http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) }),
			Middlewares: []func(http.Handler) http.Handler{tagMiddleware("route")},
		},
	}

	var seenPaths []string
	rt := New(WithRoutes(Instrument(routes, func(path string) func(http.Handler) http.Handler {
		seenPaths = append(seenPaths, path)
		return tagMiddleware("instrument")
	})...))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"instrument", "route"}, rec.Header().Values("X-Order"))
	assert.Equal(t, []string{"/v1/ping"}, seenPaths)
	assert.Len(t, routes[0].Middlewares, 1)
}

func TestRouter_NotFound(t *testing.T) {
	rt := New()

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
