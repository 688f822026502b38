// Package fetch centralizes the fetch-or-fallback loading policy that the
// dashboards and admin panels share. Each panel used to hardcode its own
// fallback dataset inline; this keeps the policy in one testable place and
// makes "fetch failed" distinguishable from "no data".
package fetch

import (
	"context"

	"servicehub_backend/internal/logger"
)

// WithFallback runs fetchFn and returns its result. When fetchFn fails and
// fallback data is provided, the fallback is returned with fromFallback
// set so callers can label the data as substituted rather than real. With
// no fallback the error propagates unchanged.
func WithFallback[T any](ctx context.Context, fetchFn func(context.Context) ([]T, error), fallback []T) (data []T, fromFallback bool, err error) {
	data, err = fetchFn(ctx)
	if err == nil {
		return data, false, nil
	}
	if fallback == nil {
		return nil, false, err
	}
	logger.CtxWarn(ctx, "list fetch failed, serving fallback dataset", "error", err.Error(), "fallback_size", len(fallback))
	return fallback, true, nil
}
