/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package assistant

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

var (
	// ErrNotConfigured is returned when a model client is missing settings.
	ErrNotConfigured = errors.New("assistant is not configured")
	// ErrUnsupportedFileType is returned for uploads the extractor cannot read.
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrFileTooLarge is returned for uploads above MaxUploadBytes.
	ErrFileTooLarge = errors.New("file exceeds maximum size")
	// ErrNoJSON is returned when the model reply contains no usable JSON.
	ErrNoJSON = errors.New("failed to extract valid JSON from model response")
	// ErrInvalidAPIKey is returned when the provider rejects the API key.
	ErrInvalidAPIKey = errors.New("invalid Gemini API key")
	// ErrQuotaExceeded is returned when the provider rate limits the request.
	ErrQuotaExceeded = errors.New("gemini API quota exceeded")
	// ErrContentBlocked is returned when safety filters block the request.
	ErrContentBlocked = errors.New("content was blocked by safety filters")
)

// classifyError maps provider failures onto the sentinels above. Errors it
// does not recognise are returned unchanged.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
		}
	}

	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "api key"), strings.Contains(msg, "api_key_invalid"):
		return fmt.Errorf("%w: %w", ErrInvalidAPIKey, err)
	case strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"), strings.Contains(msg, "resource_exhausted"):
		return fmt.Errorf("%w: %w", ErrQuotaExceeded, err)
	case strings.Contains(msg, "safety"):
		return fmt.Errorf("%w: %w", ErrContentBlocked, err)
	}

	return err
}
