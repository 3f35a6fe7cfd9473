package logger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGorm(level string) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLoggerWithConfig(zap.New(core), 0.1, level), logs
}

func sqlOf(s string) func() (string, int64) {
	return func() (string, int64) { return s, 1 }
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, gormLevel("silent"))
	assert.Equal(t, gormlogger.Error, gormLevel("error"))
	assert.Equal(t, gormlogger.Warn, gormLevel("warn"))
	assert.Equal(t, gormlogger.Info, gormLevel("debug"))
	assert.Equal(t, gormlogger.Warn, gormLevel(""))
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := context.WithValue(context.Background(), RequestIDKey, "req-9")

	t.Run("error is logged with request id", func(t *testing.T) {
		l, logs := newObservedGorm("warn")
		l.Trace(ctx, time.Now(), sqlOf("INSERT"), errors.New("boom"))

		require.Equal(t, 1, logs.Len())
		e := logs.All()[0]
		assert.Equal(t, zapcore.ErrorLevel, e.Level)
		assert.Equal(t, "req-9", e.ContextMap()["request_id"])
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, logs := newObservedGorm("warn")
		l.Trace(ctx, time.Now(), sqlOf("SELECT"), gorm.ErrRecordNotFound)

		assert.Equal(t, 0, logs.Len())
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, logs := newObservedGorm("warn")
		l.Trace(ctx, time.Now().Add(-time.Second), sqlOf("SELECT"), nil)

		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	})

	t.Run("info traces every statement and truncates", func(t *testing.T) {
		l, logs := newObservedGorm("info")
		l.Trace(ctx, time.Now(), sqlOf(strings.Repeat("x", 2000)), nil)

		require.Equal(t, 1, logs.Len())
		fields := logs.All()[0].ContextMap()
		assert.Equal(t, true, fields["sql_truncated"])
		assert.Len(t, fields["sql"], maxSQLLength+3)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		l, logs := newObservedGorm("silent")
		l.Trace(ctx, time.Now(), sqlOf("SELECT"), errors.New("boom"))

		assert.Equal(t, 0, logs.Len())
	})
}
