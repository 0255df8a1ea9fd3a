package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/recellhq/recell-backend/api/responses"
	pkgerrors "github.com/recellhq/recell-backend/pkg/errors"
	"github.com/recellhq/recell-backend/pkg/logger"
)

type pinger interface {
	Ping(context.Context) error
}

// Liveness reports that the process is up.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"status": "ok"})
	}
}

// Readiness verifies the database and cache before declaring the service
// ready for traffic.
func Readiness(database, cache pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		checks := map[string]string{}
		if database != nil {
			if err := database.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "database unavailable"))
				return
			}
			checks["database"] = "ok"
		}
		if cache != nil {
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "cache unavailable"))
				return
			}
			checks["cache"] = "ok"
		}

		responses.WriteSuccess(w, checks)
	}
}
