package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/recellhq/recell-backend/api/responses"
	"github.com/recellhq/recell-backend/pkg/config"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
	"github.com/recellhq/recell-backend/pkg/logger"
)

type rateLimiterStore interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// SubmitRateLimit applies a per-IP fixed window limit on pickup submissions.
// Limiter outages fail open so Redis downtime never blocks intake.
func SubmitRateLimit(cfg config.IntakeConfig, limiter rateLimiterStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || cfg.SubmitIPLimit <= 0 || cfg.SubmitWindow <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			scope := "pickups:submit:" + clientIP(r)
			allowed, count, err := limiter.FixedWindowAllow(r.Context(), scope, cfg.SubmitIPLimit, cfg.SubmitWindow)
			if err != nil {
				if logg != nil {
					logg.Error(r.Context(), "rate limit check failed", err)
				}
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				if logg != nil {
					ctx := logg.WithFields(r.Context(), map[string]any{"scope": scope, "count": count})
					logg.Warn(ctx, "submission rate limit exceeded")
				}
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeRateLimit, "too many submissions, try again later"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); forwarded != "" {
		if idx := strings.Index(forwarded, ","); idx >= 0 {
			forwarded = forwarded[:idx]
		}
		return strings.TrimSpace(forwarded)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
