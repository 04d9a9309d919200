// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateClientRequest: name
  - UpdateClientRequest: name?, active?
  - SubmitSurveyRequest: email, responses
  - SurveyEntry: client_id plus six optional metric ratings

# Response Types

Types for JSON responses:

  - ClientSummary: id, name
  - SuccessResponse: success
  - SubmitSurveyResponse: success, count
  - DashboardResponse: week, clients
  - ClientWeekReport: client_id, name, response_count, metrics
  - MetricStat: avg, color
  - AnnotatedResponse: a stored response plus client_name
  - WeekStats: weekly admin counters
  - ErrorResponse: error

# Domain Types

Internal data structures:

  - Client: team record with soft-delete flag
  - SurveyResponse: immutable weekly submission
  - Dataset: the whole persisted document (clients, responses, id counters)

# Metric Fields

The six survey metrics are registered in MetricFields with their JSON
key, polarity, and accessor:

	objective_clarity  higher is better
	next_week_plan     higher is better
	resourcing_load    lower is better
	momentum           higher is better
	quality            higher is better
	organic_growth     higher is better

# Color Tiers

Averages classify into one of:

	ColorRed    = "red"
	ColorOrange = "orange"
	ColorBlue   = "blue"
	ColorGreen  = "green"
	ColorNone   = "none"
*/
package models
