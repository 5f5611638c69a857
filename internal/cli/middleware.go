package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

const msgInternalError = "Произошла ошибка. Пожалуйста, попробуйте позже."

// actionFunc is one menu action.
type actionFunc func(ctx context.Context) error

// withLogging logs every action with its duration.
func withLogging(logger *zap.Logger, name string, next actionFunc) actionFunc {
	return func(ctx context.Context) error {
		start := time.Now()

		err := next(ctx)

		fields := []zap.Field{
			zap.String("action", name),
			zap.Duration("duration", time.Since(start)),
		}

		if err != nil && !errors.Is(err, ErrInputClosed) {
			fields = append(fields, zap.Error(err))
			logger.Error("action error", fields...)
		} else {
			logger.Info("action handled", fields...)
		}

		return err
	}
}

// withRecovery turns a panic into a message for the user, so the menu keeps running.
func withRecovery(logger *zap.Logger, out io.Writer, name string, next actionFunc) actionFunc {
	return func(ctx context.Context) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.String("action", name),
					zap.Any("panic", r),
					zap.Stack("stack"),
				)
				fmt.Fprintln(out, msgInternalError)
				err = nil
			}
		}()

		return next(ctx)
	}
}
