/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/flamego"
)

// UserIDHeader carries the caller identity set by the authenticating proxy.
const UserIDHeader = "X-User-ID"

// UserID identifies the owner of reports for the current request.
type UserID string

func requestUserID(c flamego.Context) string {
	return strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
}

// RequireUser rejects requests without a user identity and maps the UserID
// for downstream handlers.
func RequireUser(c flamego.Context) {
	userID := requestUserID(c)
	if userID == "" {
		logAccessDenied(c, "missing_user_id", http.StatusUnauthorized)
		writeError(c, http.StatusUnauthorized, "Authentication required", errUserIDMissing)

		return
	}

	c.Map(UserID(userID))
	c.Next()
}

// NoCacheHeaders disables caching for API responses and blocks indexing.
func NoCacheHeaders() flamego.Handler {
	return func(c flamego.Context) {
		header := c.ResponseWriter().Header()
		header.Set("X-Robots-Tag", "noindex, nofollow, noarchive, nosnippet")

		if c.Request().Method == http.MethodGet || c.Request().Method == http.MethodHead {
			header.Set("Cache-Control", "no-store, max-age=0")
			header.Set("Pragma", "no-cache")
			header.Set("Expires", "0")
		}

		c.Next()
	}
}
