/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/vitalsense/biomarker"
	"github.com/humaidq/vitalsense/trend"
)

// chartAxisPadding widens the y axis around the reference range.
const chartAxisPadding = 0.1

// renderTrendChart draws series as a line chart. The reference range of the
// latest point is drawn when it parses.
func renderTrendChart(series trend.Series) ([]byte, error) {
	points := series.Points
	latest := points[len(points)-1]

	xAxis := make([]string, 0, len(points))
	yData := make([]opts.LineData, 0, len(points))
	dataMin, dataMax := points[0].Value, points[0].Value

	for _, p := range points {
		xAxis = append(xAxis, p.Date.Format("Jan 2, 2006"))
		yData = append(yData, opts.LineData{Value: p.Value})

		dataMin = min(dataMin, p.Value)
		dataMax = max(dataMax, p.Value)
	}

	ref, hasRange := biomarker.ParseRange(latest.ReferenceRange)

	var yAxisMin, yAxisMax interface{}

	if hasRange && ref.Bounded() && !ref.Inverted() {
		padding := (*ref.Max - *ref.Min) * chartAxisPadding
		yAxisMin = min(*ref.Min-padding, dataMin-(dataMax-dataMin)*0.05)
		yAxisMax = max(*ref.Max+padding, dataMax+(dataMax-dataMin)*0.05)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: series.TestName,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: latest.Unit,
			Min:  yAxisMin,
			Max:  yAxisMax,
		}),
	)

	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(true),
		}),
		charts.WithMarkPointNameTypeItemOpts(
			opts.MarkPointNameTypeItem{Name: "Max", Type: "max"},
			opts.MarkPointNameTypeItem{Name: "Min", Type: "min"},
		),
		charts.WithMarkLineNameTypeItemOpts(
			opts.MarkLineNameTypeItem{Name: "Average", Type: "average"},
		),
	}

	if markLines := referenceMarkLines(ref, hasRange); len(markLines) > 0 {
		seriesOpts = append(seriesOpts, func(s *charts.SingleSeries) {
			s.MarkLines = &opts.MarkLines{
				Data: markLines,
				MarkLineStyle: opts.MarkLineStyle{
					Symbol: []string{"none", "none"},
					LineStyle: &opts.LineStyle{
						Color: "rgba(128, 128, 128, 0.6)",
						Type:  "dashed",
						Width: 1.5,
					},
				},
			}
		})
	}

	line.SetXAxis(xAxis).
		AddSeries(series.TestName, yData).
		SetSeriesOptions(seriesOpts...)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func referenceMarkLines(ref biomarker.Range, ok bool) []interface{} {
	if !ok {
		return nil
	}

	var items []interface{}
	if ref.Min != nil {
		items = append(items, opts.MarkLineNameYAxisItem{Name: "Ref Min", YAxis: *ref.Min})
	}

	if ref.Max != nil {
		items = append(items, opts.MarkLineNameYAxisItem{Name: "Ref Max", YAxis: *ref.Max})
	}

	return items
}
