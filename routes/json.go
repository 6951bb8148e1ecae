/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"

	"github.com/flamego/flamego"
)

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(c flamego.Context, status int, v any) {
	c.ResponseWriter().Header().Set("Content-Type", "application/json")
	c.ResponseWriter().WriteHeader(status)

	if err := json.NewEncoder(c.ResponseWriter()).Encode(v); err != nil {
		logger.Error("Error encoding response", "path", c.Request().URL.Path, "error", err)
	}
}

// writeError sends a JSON error body. Server errors keep the cause in the
// log only.
func writeError(c flamego.Context, status int, message string, err error) {
	body := errorResponse{Message: message}

	if err != nil {
		if status >= 500 {
			logger.Error(message, "path", c.Request().URL.Path, "status", status, "error", err)
		} else {
			body.Error = err.Error()
		}
	}

	writeJSON(c, status, body)
}
