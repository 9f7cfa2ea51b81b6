package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const sessionIDParam = "session_id"

// routePattern шаблон маршрута chi, чтобы id сессий не попадали в метки и логи как отдельные пути.
// Заполняется роутером, поэтому читать его нужно после next.ServeHTTP.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
		return rc.RoutePattern()
	}
	return "unknown"
}

func sessionID(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		return rc.URLParam(sessionIDParam)
	}
	return ""
}
