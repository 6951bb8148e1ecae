// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOllamaStreaming(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || !req.Stream || req.Model != "test-model" || len(req.Messages) != 2 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"Hello \"}}]}\n"))
		_, _ = w.Write([]byte(": keep-alive\n"))
		_, _ = w.Write([]byte("data: not-json\n"))
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"world\"}}]}\n"))
		_, _ = w.Write([]byte("data: [DONE]\n"))
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"ignored\"}}]}\n"))
	}))
	defer server.Close()

	o, err := NewOllama(server.URL+"/", "test-model")
	if err != nil {
		t.Fatalf("NewOllama failed: %v", err)
	}

	var streamed string
	if err := o.StreamChat(context.Background(), "system", "user", func(chunk string) error {
		streamed += chunk
		return nil
	}); err != nil {
		t.Fatalf("StreamChat failed: %v", err)
	}

	if streamed != "Hello world" {
		t.Fatalf("expected streamed output, got %q", streamed)
	}
}

func TestOllamaErrors(t *testing.T) {
	t.Parallel()

	if _, err := NewOllama("", "model"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data: {\"error\":{\"message\":\"model not found\"}}\n"))
	}))
	defer server.Close()

	o, _ := NewOllama(server.URL, "missing")

	err := o.StreamChat(context.Background(), "s", "u", func(string) error { return nil })
	if err == nil {
		t.Fatal("expected stream error")
	}

	stop := errors.New("client went away")

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"x\"}}]}\n"))
	}))
	defer failing.Close()

	o, _ = NewOllama(failing.URL, "m")
	if err := o.StreamChat(context.Background(), "s", "u", func(string) error { return stop }); !errors.Is(err, stop) {
		t.Fatalf("expected callback error, got %v", err)
	}

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer broken.Close()

	o, _ = NewOllama(broken.URL, "m")
	if err := o.StreamChat(context.Background(), "s", "u", func(string) error { return nil }); err == nil {
		t.Fatal("expected status error")
	}
}
