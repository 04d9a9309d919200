// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/mwestlake/pulseboard/models"
)

// GetWeekStart returns the Monday of t's ISO week as YYYY-MM-DD.
// Sunday belongs to the week that started six days earlier, never the
// following Monday.
func GetWeekStart(t time.Time) string {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return monday.Format("2006-01-02")
}

// fieldAverage computes the arithmetic mean over responses where the
// field is present, rounded to 2 decimal places. Returns nil when no
// response carries the field. A zero average is a real value and is
// reported as such.
func fieldAverage(responses []models.SurveyResponse, get func(*models.SurveyResponse) *float64) *float64 {
	sum := 0.0
	count := 0
	for i := range responses {
		if v := get(&responses[i]); v != nil {
			sum += *v
			count++
		}
	}
	if count == 0 {
		return nil
	}

	avg := math.Round(sum/float64(count)*100) / 100
	return &avg
}

// ratingColor classifies a higher-is-better average into a color tier.
// Thresholds are exclusive: exactly 1.5 is orange, not red.
func ratingColor(avg *float64) string {
	if avg == nil {
		return models.ColorNone
	}
	switch {
	case *avg < 1.5:
		return models.ColorRed
	case *avg < 2.5:
		return models.ColorOrange
	case *avg < 3.5:
		return models.ColorBlue
	default:
		return models.ColorGreen
	}
}

// loadColor classifies the lower-is-better resourcing load average.
// Thresholds are inclusive: exactly 1.5 is green, not blue.
func loadColor(avg *float64) string {
	if avg == nil {
		return models.ColorNone
	}
	switch {
	case *avg <= 1.5:
		return models.ColorGreen
	case *avg <= 2.5:
		return models.ColorBlue
	case *avg <= 3.5:
		return models.ColorOrange
	default:
		return models.ColorRed
	}
}

// ComputeWeekReport builds per-client aggregates for one week. Only
// active clients appear; a client with no responses that week is
// omitted entirely. Each of the six metrics is averaged independently,
// so one response can contribute to some fields and not others.
func ComputeWeekReport(ds *models.Dataset, week string) []models.ClientWeekReport {
	reports := []models.ClientWeekReport{}
	for _, c := range ds.Clients {
		if !c.Active {
			continue
		}

		var matched []models.SurveyResponse
		for _, r := range ds.Responses {
			if r.ClientID == c.ID && r.WeekStart == week {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 {
			continue
		}

		stats := make(map[string]models.MetricStat, len(models.MetricFields))
		for _, f := range models.MetricFields {
			avg := fieldAverage(matched, f.Get)
			color := ratingColor(avg)
			if f.LowerIsBetter {
				color = loadColor(avg)
			}
			stats[f.Name] = models.MetricStat{Avg: avg, Color: color}
		}

		reports = append(reports, models.ClientWeekReport{
			ClientID:      c.ID,
			Name:          c.Name,
			ResponseCount: len(matched),
			Metrics:       stats,
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		return strings.ToLower(reports[i].Name) < strings.ToLower(reports[j].Name)
	})

	return reports
}

// AvailableWeeks returns the distinct week keys across all responses,
// most recent first. Plain string comparison is enough because the
// YYYY-MM-DD format orders lexicographically.
func AvailableWeeks(ds *models.Dataset) []string {
	seen := make(map[string]struct{})
	weeks := []string{}
	for _, r := range ds.Responses {
		if _, ok := seen[r.WeekStart]; ok {
			continue
		}
		seen[r.WeekStart] = struct{}{}
		weeks = append(weeks, r.WeekStart)
	}

	sort.Sort(sort.Reverse(sort.StringSlice(weeks)))
	return weeks
}
