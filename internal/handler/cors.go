package handler

import (
	"net/http"
	"strings"

	"mission-api/internal/config"

	"github.com/zeromicro/go-zero/rest"
)

const (
	corsAllowMethods = "GET, POST"
	corsAllowHeaders = "Content-Type, Authorization"
)

// RunOptions returns the server options implied by cfg. CORS is only
// installed when origins are configured.
func RunOptions(cfg config.Config) []rest.RunOption {
	if !cfg.CorsEnabled() {
		return nil
	}
	return []rest.RunOption{
		rest.WithCustomCors(narrowCorsHeaders, corsNotAllowed, corsOrigins(cfg.Cors.Origins)...),
	}
}

// narrowCorsHeaders restricts the methods and headers advertised to
// origins that were allowed. Credentials are never allowed.
func narrowCorsHeaders(header http.Header) {
	if header.Get("Access-Control-Allow-Origin") == "" {
		return
	}
	header.Set("Access-Control-Allow-Methods", corsAllowMethods)
	header.Set("Access-Control-Allow-Headers", corsAllowHeaders)
	header.Del("Access-Control-Allow-Credentials")
}

func corsNotAllowed(w http.ResponseWriter) {
	narrowCorsHeaders(w.Header())
}

func corsOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
