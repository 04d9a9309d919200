// Copyright (c) 2026 Maya Westlake.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics defines the Prometheus collectors for the server.

# Collectors

Registered on the default registry via promauto:

  - pulseboard_http_requests_total{method, path, status}
  - pulseboard_http_request_duration_seconds{method, path}

The path label is the registered route pattern, never the raw request
path, so label cardinality stays bounded.

# Exposition

Handler returns the promhttp handler for GET /metrics:

	mux.Handle("GET /metrics", metrics.Handler())
*/
package metrics
