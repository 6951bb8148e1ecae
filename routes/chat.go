/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/google/uuid"

	"github.com/humaidq/vitalsense/assistant"
	"github.com/humaidq/vitalsense/trend"
)

const chatFailureMessage = "Unable to generate chatbot reply at this time."

type chatRequest struct {
	ReportID string `json:"reportId"`
	Message  string `json:"message"`
}

// eventStream writes Server-Sent Events and flushes after each one.
type eventStream struct {
	w http.ResponseWriter
}

func newEventStream(c flamego.Context) *eventStream {
	w := c.ResponseWriter()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	return &eventStream{w: w}
}

func (s *eventStream) send(event, data string) {
	if event != "" {
		s.w.Write([]byte("event: " + event + "\n"))
	}

	escapedData := strings.ReplaceAll(data, "\n", "\ndata: ")
	s.w.Write([]byte("data: " + escapedData + "\n\n"))

	if flusher, ok := s.w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// ChatAboutReport answers a question about one report, streaming the reply
// as "chunk" events followed by "done". Failures after the stream starts are
// sent as an "error" event.
func ChatAboutReport(c flamego.Context, user UserID, store ReportStore, analyzer trend.Analyzer, ai *Assistant) {
	var req chatRequest
	if err := json.NewDecoder(c.Request().Body().ReadCloser()).Decode(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.ReportID == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "reportId and message are required", nil)
		return
	}

	id, err := uuid.Parse(req.ReportID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "Invalid report id", errInvalidReportID)
		return
	}

	if assistant.OutOfScope(req.Message) {
		stream := newEventStream(c)
		stream.send("chunk", assistant.OutOfScopeReply)
		stream.send("done", "")

		return
	}

	if ai == nil || ai.Chat == nil {
		writeError(c, http.StatusServiceUnavailable, "Report chat is not configured", errNotConfigured)
		return
	}

	ctx := c.Request().Context()

	report, err := store.GetReport(ctx, string(user), id)
	if err != nil {
		writeStoreError(c, err, "Failed to load report")
		return
	}

	recent, err := store.RecentReports(ctx, string(user), chatReportLimit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "Failed to load reports", err)
		return
	}

	summary := doctorSummary(c, ai, recent, trend.AbnormalFindings(recent))
	if summary == nil {
		summary = []string{}
	}

	system, prompt, err := assistant.ChatPrompts(assistant.NewChatContext(*report, recent, analyzer, summary), req.Message)
	if err != nil {
		writeError(c, http.StatusInternalServerError, chatFailureMessage, err)
		return
	}

	stream := newEventStream(c)

	err = ai.Chat.StreamChat(ctx, system, prompt, func(chunk string) error {
		stream.send("chunk", chunk)
		return nil
	})
	if err != nil {
		logger.Error("Error streaming chat reply", "report_id", id, "error", err)
		stream.send("error", chatFailureMessage)

		return
	}

	stream.send("done", "")
}

type generalChatRequest struct {
	Message string `json:"message"`
}

// ChatGeneral answers a general health question from verified public health
// sources. The reply is collected in full so the disclaimer can be checked,
// and is returned as {"reply": ...}. Model failures fall back to a fixed
// reply rather than an error status.
func ChatGeneral(c flamego.Context, ai *Assistant) {
	var req generalChatRequest
	if err := json.NewDecoder(c.Request().Body().ReadCloser()).Decode(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "message is required", nil)
		return
	}

	if ai == nil || ai.Chat == nil {
		writeJSON(c, http.StatusOK, map[string]string{"reply": assistant.GeneralUnavailableReply})
		return
	}

	system, prompt := assistant.GeneralPrompts(req.Message)

	var reply strings.Builder

	err := ai.Chat.StreamChat(c.Request().Context(), system, prompt, func(chunk string) error {
		reply.WriteString(chunk)
		return nil
	})
	if err != nil {
		logger.Error("Error answering general health question", "error", err)
		writeJSON(c, http.StatusOK, map[string]string{"reply": assistant.GeneralUnverifiedReply})

		return
	}

	writeJSON(c, http.StatusOK, map[string]string{"reply": assistant.FinishGeneralReply(reply.String())})
}
