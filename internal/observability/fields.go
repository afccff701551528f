package observability

import (
	"time"

	"go.uber.org/zap"
)

// Field aliases so callers do not import zap directly.

func String(key, value string) zap.Field { return zap.String(key, value) }

func Int(key string, value int) zap.Field { return zap.Int(key, value) }

func Float64(key string, value float64) zap.Field { return zap.Float64(key, value) }

func Bool(key string, value bool) zap.Field { return zap.Bool(key, value) }

func Duration(key string, value time.Duration) zap.Field { return zap.Duration(key, value) }

func Any(key string, value interface{}) zap.Field { return zap.Any(key, value) }

func Error(err error) zap.Field { return zap.Error(err) }
