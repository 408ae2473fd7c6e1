package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/tabuada-lambda/internal/middlewares"
)

func TestCorsMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("AllowedOrigin", func(t *testing.T) {
		h := middlewares.NewCorsMiddleware([]string{"https://tabuada.example.com"})(ok)

		req := httptest.NewRequest(http.MethodGet, "/students", nil)
		req.Header.Set("Origin", "https://tabuada.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "https://tabuada.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("UnknownOrigin", func(t *testing.T) {
		h := middlewares.NewCorsMiddleware([]string{"https://tabuada.example.com"})(ok)

		req := httptest.NewRequest(http.MethodGet, "/students", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Wildcard", func(t *testing.T) {
		h := middlewares.NewCorsMiddleware(nil)(ok)

		req := httptest.NewRequest(http.MethodGet, "/students", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})
}
