package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvlgrid/internal/logger"
)

func TestNew(t *testing.T) {
	lggr, err := logger.New(zapcore.InfoLevel)
	require.NoError(t, err)
	assert.Empty(t, lggr.Name())
	assert.Equal(t, "cost", lggr.Named("cost").Name())
}

func TestParseLevel(t *testing.T) {
	lvl, err := logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestObserved(t *testing.T) {
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)
	lggr.Debugw("hidden", "xy", "(0,0)")
	lggr.Named("bfs").Infow("answer", "steps", 22)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "answer", entries[0].Message)
	assert.Equal(t, "bfs", entries[0].LoggerName)
	assert.EqualValues(t, 22, entries[0].ContextMap()["steps"])
}

func TestNop(t *testing.T) {
	lggr := logger.Nop()
	lggr.Errorf("discarded %d", 1)
	assert.Equal(t, "x", lggr.Named("x").Name())
	_ = logger.Test(t)
}
