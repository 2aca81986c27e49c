// Package middleware provides the HTTP middleware shared by every route:
// request tracing, optional bearer-token authentication and Prometheus
// request metrics.
package middleware
