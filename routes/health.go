/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"net/http"

	"github.com/flamego/flamego"
)

// HealthChecker reports whether a backing service is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Healthz reports liveness and database reachability.
func Healthz(c flamego.Context, checker HealthChecker) {
	if err := checker.Ping(c.Request().Context()); err != nil {
		logger.Error("Health check failed", "error", err)
		writeJSON(c, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})

		return
	}

	writeJSON(c, http.StatusOK, map[string]string{"status": "ok"})
}
