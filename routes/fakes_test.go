// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/flamego/flamego"
	"github.com/google/uuid"

	"github.com/humaidq/vitalsense/assistant"
	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/db"
	"github.com/humaidq/vitalsense/knowledge"
	"github.com/humaidq/vitalsense/trend"
)

const testUser = "user-1"

var errFakeFailure = errors.New("fake failure")

type fakeStore struct {
	mu      sync.Mutex
	reports []biomarker.Report
	err     error
}

func (s *fakeStore) add(userID string, date time.Time, results ...biomarker.TestResult) biomarker.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := biomarker.Report{
		ID:         uuid.New(),
		UserID:     userID,
		ReportDate: date,
		Results:    results,
	}
	s.reports = append(s.reports, r)

	return r
}

func (s *fakeStore) CreateReport(_ context.Context, report *biomarker.Report) error {
	if s.err != nil {
		return s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	report.ID = uuid.New()
	report.ProcessedAt = time.Now().UTC()
	report.CreatedAt = report.ProcessedAt
	s.reports = append(s.reports, *report)

	return nil
}

func (s *fakeStore) owned(userID string) []biomarker.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []biomarker.Report
	for _, r := range s.reports {
		if r.UserID == userID {
			out = append(out, r)
		}
	}

	return out
}

func (s *fakeStore) ListReports(_ context.Context, userID string) ([]biomarker.Report, error) {
	if s.err != nil {
		return nil, s.err
	}

	out := s.owned(userID)
	slices.SortStableFunc(out, func(a, b biomarker.Report) int { return b.ReportDate.Compare(a.ReportDate) })

	return out, nil
}

func (s *fakeStore) ListReportsChronological(_ context.Context, userID string) ([]biomarker.Report, error) {
	if s.err != nil {
		return nil, s.err
	}

	out := s.owned(userID)
	slices.SortStableFunc(out, func(a, b biomarker.Report) int { return a.ReportDate.Compare(b.ReportDate) })

	return out, nil
}

func (s *fakeStore) RecentReports(ctx context.Context, userID string, n int) ([]biomarker.Report, error) {
	out, err := s.ListReports(ctx, userID)
	if err != nil {
		return nil, err
	}

	if len(out) > n {
		out = out[:n]
	}

	return out, nil
}

func (s *fakeStore) GetReport(_ context.Context, userID string, id uuid.UUID) (*biomarker.Report, error) {
	if s.err != nil {
		return nil, s.err
	}

	for _, r := range s.owned(userID) {
		if r.ID == id {
			return &r, nil
		}
	}

	return nil, db.ErrReportNotFound
}

func (s *fakeStore) DeleteReport(_ context.Context, userID string, id uuid.UUID) error {
	if s.err != nil {
		return s.err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, r := range s.reports {
		if r.ID == id && r.UserID == userID {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			return nil
		}
	}

	return db.ErrReportNotFound
}

type fakeExtractor struct {
	raw      []biomarker.RawResult
	err      error
	mimeType string
	size     int
}

func (e *fakeExtractor) ExtractResults(_ context.Context, data []byte, mimeType string) ([]biomarker.RawResult, error) {
	e.mimeType = mimeType
	e.size = len(data)

	return e.raw, e.err
}

type fakeExplainer struct {
	err     error
	profile assistant.Profile
}

func (e *fakeExplainer) Explain(_ context.Context, result biomarker.TestResult, kc knowledge.Context, profile assistant.Profile) (assistant.Explanation, error) {
	e.profile = profile
	if e.err != nil {
		return assistant.Explanation{}, e.err
	}

	return assistant.Explanation{
		Explanation:              result.TestName + " explained with " + kc.BiomarkerInfo,
		DietarySuggestions:       []string{"eat greens"},
		LifestyleRecommendations: []string{"walk daily"},
	}, nil
}

type fakeSummarizer struct {
	bullets []string
	err     error
}

func (s *fakeSummarizer) DoctorSummary(context.Context, []biomarker.Report, []trend.AbnormalFinding) ([]string, error) {
	return s.bullets, s.err
}

type fakeChat struct {
	chunks []string
	err    error
	system string
	user   string
}

func (c *fakeChat) StreamChat(_ context.Context, system, user string, onChunk func(string) error) error {
	c.system = system
	c.user = user

	for _, chunk := range c.chunks {
		if err := onChunk(chunk); err != nil {
			return err
		}
	}

	return c.err
}

type fakeContexts struct{}

func (fakeContexts) Context(_ context.Context, testName string) knowledge.Context {
	return knowledge.Context{
		BiomarkerInfo: "info about " + testName,
		NutritionInfo: "nutrition for " + testName,
	}
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

func newTestApp(store ReportStore, ai *Assistant, pinger HealthChecker) *flamego.Flame {
	f := flamego.New()
	f.MapTo(store, (*ReportStore)(nil))
	f.MapTo(fakeContexts{}, (*ContextProvider)(nil))
	f.MapTo(pinger, (*HealthChecker)(nil))
	f.Map(trend.Analyzer{})
	f.Map(ai)
	Register(f)

	return f
}

func serve(t *testing.T, f *flamego.Flame, method, target string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	req.Header.Set(UserIDHeader, testUser)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}

func day(n int) time.Time {
	return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()

	if rec.Code != want {
		t.Fatalf("unexpected status: got %d, want %d (body %q)", rec.Code, want, rec.Body.String())
	}
}

func assertErrorMessage(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()

	var payload errorResponse
	if err := decodeJSON(rec, &payload); err != nil {
		t.Fatalf("failed decoding error response: %v", err)
	}

	if payload.Message != want {
		t.Fatalf("unexpected error message: got %q, want %q", payload.Message, want)
	}
}

func decodeJSON(rec *httptest.ResponseRecorder, v any) error {
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		return errors.New("unexpected content type " + ct)
	}

	return json.NewDecoder(rec.Body).Decode(v)
}

func newRequestWithoutUser(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func recordRequest(f *flamego.Flame, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.ServeHTTP(rec, req)

	return rec
}
