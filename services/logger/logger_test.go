package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

func TestNewLevels(t *testing.T) {
	z, err := New("prod", "debug")
	require.NoError(t, err)
	assert.True(t, z.Core().Enabled(zapcore.DebugLevel))

	z, err = New("dev", "bogus")
	require.NoError(t, err)
	assert.False(t, z.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, z.Core().Enabled(zapcore.InfoLevel))
}

func TestGormLoggerLogModeCopies(t *testing.T) {
	base := NewGormLogger(NewNopZap())
	silent := base.LogMode(gormlogger.Silent)

	assert.Equal(t, gormlogger.Warn, base.LogLevel)
	assert.Equal(t, gormlogger.Silent, silent.(*GormLogger).LogLevel)
}
