package controller_test

import (
	"net/http"
	"net/http/httptest"
	"newsroom/pkg/controller"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func TestProfiler(t *testing.T) {
	r := chi.NewRouter()
	r.Mount("/debug", controller.Profiler())

	for _, path := range []string{"/debug/pprof/", "/debug/pprof/cmdline", "/debug/pprof/heap"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
