package cache

import (
	"context"
	"fmt"
	"log/slog"
)

// SafeInvalidatePattern safely invalidates cache pattern with logging
func SafeInvalidatePattern(ctx context.Context, helper *CacheHelper, pattern string) {
	if err := helper.InvalidatePattern(ctx, pattern); err != nil {
		slog.ErrorContext(ctx, "Failed to invalidate cache pattern",
			"error", err,
			"pattern", pattern)
	}
}

// SafeDelete safely deletes cache keys with logging
func SafeDelete(ctx context.Context, helper *CacheHelper, keys ...string) {
	if err := helper.Delete(ctx, keys...); err != nil {
		slog.ErrorContext(ctx, "Failed to delete cache keys",
			"error", err,
			"keys", keys)
	}
}

// InvalidateApplicantCache invalidates applicant and report caches after a
// status update for the user identified by regno.
func InvalidateApplicantCache(ctx context.Context, cm *CacheManager, regno string) {
	SafeDelete(ctx, cm.Applicant, fmt.Sprintf("regno:%s", regno))
	SafeInvalidatePattern(ctx, cm.Applicant, "list:*")
	SafeInvalidatePattern(ctx, cm.Report, "*")
	SafeInvalidatePattern(ctx, cm.Stats, "dashboard:*")
}

// InvalidateMeetingCache invalidates meeting-related caches for a user
func InvalidateMeetingCache(ctx context.Context, cm *CacheManager, userID uint) {
	SafeInvalidatePattern(ctx, cm.Applicant, "list:*")
	SafeInvalidatePattern(ctx, cm.Stats, fmt.Sprintf("meetings:%d:*", userID))
}
