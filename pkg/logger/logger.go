// Package logger holds the process-wide zap logger behind a small stable
// facade. The field helpers cover the value types handlers and services log;
// they are kept as a set even when individual ones are momentarily unused, so
// call sites never import zap directly.
package logger

import (
	"go.uber.org/zap"
)

// Log is the package-wide logger. It is a no-op until Initialize is called.
var Log = zap.NewNop()

func Initialize() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}

	Log = logger

	return nil
}

func String(key, value string) zap.Field {
	return zap.String(key, value)
}

func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func Int64(key string, value int64) zap.Field {
	return zap.Int64(key, value)
}

func Float64(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}

func Error(err error) zap.Field {
	return zap.Error(err)
}
