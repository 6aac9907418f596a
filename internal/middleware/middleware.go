package middleware

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// HandlerFunc handles one line of console input
type HandlerFunc func(ctx context.Context, input string) error

// MiddlewareFunc wraps a HandlerFunc
type MiddlewareFunc func(next HandlerFunc) HandlerFunc

// Chain applies middlewares so that the first one listed runs outermost
func Chain(h HandlerFunc, middlewares ...MiddlewareFunc) HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// Logging logs every handled input with its duration and outcome
func Logging(logger *zap.Logger) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, input string) error {
			start := time.Now()
			err := next(ctx, input)

			fields := []zap.Field{
				zap.String("input", input),
				zap.Duration("duration", time.Since(start)),
			}
			if err != nil {
				logger.Warn("Command failed", append(fields, zap.Error(err))...)
				return err
			}
			logger.Debug("Command handled", fields...)
			return nil
		}
	}
}

// Recover turns a panic in a handler into an error so the console keeps running
func Recover(logger *zap.Logger) MiddlewareFunc {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, input string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from panic in handler",
						zap.String("input", input),
						zap.Any("panic", r),
						zap.Stack("stack"),
					)
					err = fmt.Errorf("internal error handling %q: %v", input, r)
				}
			}()
			return next(ctx, input)
		}
	}
}
