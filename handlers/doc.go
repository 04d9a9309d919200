// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Pulseboard API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - ClientHandler: Client CRUD with soft delete
  - SurveyHandler: Bulk weekly survey submission
  - DashboardHandler: Weekly aggregates and available weeks
  - AdminHandler: Annotated response listing and weekly stats

Handlers are created via constructor functions that accept a store.Store
and Config:

	clientHandler := handlers.NewClientHandler(st, cfg)

# Client Lifecycle

Clients are created active, can be renamed or deactivated, and are
never hard-deleted:

	POST   /api/clients      → Create (409 on case-insensitive duplicate)
	PUT    /api/clients/{id} → Update (name and/or active)
	DELETE /api/clients/{id} → Delete (soft, idempotent)

# Survey Flow

One submission carries ratings for many clients:

	POST /api/survey → Submit ({email, responses:[{client_id, ...}]})

Each entry becomes an immutable SurveyResponse bucketed into the
current week.

# Aggregation

The reporting engine is implemented in report.go:

	reports := handlers.ComputeWeekReport(ds, week)

For each active client with responses that week, each of the six
metrics is averaged independently over its present values (rounded to
2 decimals) and classified into a color tier. Five metrics score
higher-is-better (red < 1.5 ≤ orange < 2.5 ≤ blue < 3.5 ≤ green);
resourcing load scores lower-is-better (green ≤ 1.5 < blue ≤ 2.5 <
orange ≤ 3.5 < red). A nil average maps to "none".

Week bucketing:

	week := handlers.GetWeekStart(time.Now())

returns the Monday of the ISO week as YYYY-MM-DD; Sundays map to the
Monday six days earlier.
*/
package handlers
