/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
)

// Register mounts the JSON API on f. Collaborators are resolved through
// flamego injection: ReportStore, ContextProvider, HealthChecker,
// trend.Analyzer and *Assistant must be mapped before serving.
func Register(f *flamego.Flame) {
	f.Get("/healthz", Healthz)

	f.Group("/api", func() {
		f.Group("/reports", func() {
			f.Post("/upload", UploadReport)
			f.Get("", ListReports)
			f.Get("/{id}", GetReport)
			f.Delete("/{id}", DeleteReport)
		})

		f.Group("/trends", func() {
			f.Get("", ListTrends)
			f.Get("/summary/doctor", GetDoctorSummary)
			f.Get("/{testName}", GetTrend)
			f.Get("/{testName}/chart", GetTrendChart)
		})

		f.Group("/biomarkers", func() {
			f.Get("/details", GetBiomarkerDetails)
			f.Get("/abnormal", ListAbnormalBiomarkers)
		})

		f.Post("/chat/report", ChatAboutReport)
		f.Post("/chat/general", ChatGeneral)
	}, RequireUser, NoCacheHeaders())

	f.NotFound(func(c flamego.Context) {
		writeError(c, http.StatusNotFound, "Not found", nil)
	})
}
