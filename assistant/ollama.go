/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package assistant

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// OpenAI-compatible request/response structures
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Stream      bool          `json:"stream,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatChoice struct {
	Message chatMessage `json:"message"`
	Delta   chatMessage `json:"delta,omitempty"` // For streaming responses
}

type chatResponse struct {
	Choices []chatChoice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Ollama streams chat completions from an OpenAI-compatible endpoint such
// as Ollama's /v1/chat/completions.
type Ollama struct {
	url    string
	model  string
	client *http.Client
}

// NewOllama returns a chat client for the server at url.
func NewOllama(url, model string) (*Ollama, error) {
	if url == "" || model == "" {
		return nil, fmt.Errorf("%w: OLLAMA_URL and OLLAMA_MODEL must be set", ErrNotConfigured)
	}

	return &Ollama{
		url:   strings.TrimSuffix(url, "/"),
		model: model,
		client: &http.Client{
			Timeout: 300 * time.Second, // 5 minutes for streaming
		},
	}, nil
}

// StreamChat sends one system and one user message and calls onChunk for
// each piece of streamed text. An error from onChunk stops the stream.
func (o *Ollama) StreamChat(ctx context.Context, system, user string, onChunk func(string) error) error {
	reqBody := chatRequest{
		Model:       o.model,
		Stream:      true,
		Temperature: 0.5,
		MaxTokens:   400,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	endpoint := o.url + "/v1/chat/completions"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call chat endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("chat endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	reader := bufio.NewReader(resp.Body)

	for {
		line, err := reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read stream: %w", err)
		}

		done, chunkErr := o.handleLine(strings.TrimSpace(string(line)), onChunk)
		if chunkErr != nil {
			return chunkErr
		}

		if done || errors.Is(err, io.EOF) {
			return nil
		}
	}
}

// handleLine processes one SSE line and reports whether the stream ended.
func (o *Ollama) handleLine(line string, onChunk func(string) error) (bool, error) {
	data, ok := strings.CutPrefix(line, "data: ")
	if !ok {
		return false, nil
	}

	if data == "[DONE]" {
		return true, nil
	}

	var chatResp chatResponse
	if err := json.Unmarshal([]byte(data), &chatResp); err != nil {
		logger.Debug("Skipping malformed stream chunk", "error", err)
		return false, nil
	}

	if chatResp.Error != nil {
		return false, fmt.Errorf("chat endpoint error: %s", chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return false, nil
	}

	if content := chatResp.Choices[0].Delta.Content; content != "" {
		return false, onChunk(content)
	}

	return false, nil
}
