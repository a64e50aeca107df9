package logger

import (
	"context"
	"log/slog"
)

// Safe* helpers log through the global logger and never panic when it
// has not been initialized, so drivers and gateways can log
// unconditionally.

func base() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

func SafeInfo(msg string, args ...any) {
	base().Info(msg, args...)
}

func SafeWarn(msg string, args ...any) {
	base().Warn(msg, args...)
}

func SafeError(msg string, args ...any) {
	base().Error(msg, args...)
}

func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	NewContextLogger(base()).WithContext(ctx).InfoContext(ctx, msg, args...)
}

func SafeWarnContext(ctx context.Context, msg string, args ...any) {
	NewContextLogger(base()).WithContext(ctx).WarnContext(ctx, msg, args...)
}

func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	NewContextLogger(base()).WithContext(ctx).ErrorContext(ctx, msg, args...)
}
