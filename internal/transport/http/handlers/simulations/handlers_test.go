package simulationshandler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"folha/internal/domain/simulations"
)

func TestRoutesRequireAuthentication(t *testing.T) {
	r := chi.NewRouter()
	NewHandler(simulations.NewService(simulations.NewStore(nil))).RegisterRoutes(r)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/simulacoes/"},
		{http.MethodPost, "/simulacoes/"},
		{http.MethodGet, "/simulacoes/abc"},
		{http.MethodDelete, "/simulacoes/abc"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, rec.Code)
		}
	}
}
