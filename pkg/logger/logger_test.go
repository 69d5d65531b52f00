package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreGlobal snapshots L's configuration and restores it after the test.
func restoreGlobal(t *testing.T) {
	t.Helper()
	level := L.Logger.GetLevel()
	formatter := L.Logger.Formatter
	out := L.Logger.Out
	t.Cleanup(func() {
		L.Logger.SetLevel(level)
		L.Logger.Formatter = formatter
		L.Logger.SetOutput(out)
	})
}

func TestNewLogger(t *testing.T) {
	l := newLogger()

	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	formatter, ok := l.Formatter.(*logrus.TextFormatter)
	require.True(t, ok)
	assert.Equal(t, time.RFC3339Nano, formatter.TimestampFormat)
	assert.True(t, formatter.FullTimestamp)
}

func TestGetLogger(t *testing.T) {
	t.Run("falls back to global", func(t *testing.T) {
		entry := G(context.Background())
		assert.Equal(t, L.Logger, entry.Logger)
	})

	t.Run("uses context logger", func(t *testing.T) {
		custom := logrus.NewEntry(logrus.New()).WithField("component", "catalog")
		ctx := WithLogger(context.Background(), custom)

		entry := G(ctx)
		assert.Equal(t, custom.Logger, entry.Logger)
		assert.Equal(t, "catalog", entry.Data["component"])
	})
}

func TestSetLogLevel(t *testing.T) {
	restoreGlobal(t)

	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	assert.Error(t, SetLogLevel("chatty"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())
}

func TestSetLogFormat(t *testing.T) {
	restoreGlobal(t)

	SetLogFormat("json")
	assert.IsType(t, &logrus.JSONFormatter{}, L.Logger.Formatter)

	SetLogFormat("anything-else")
	assert.IsType(t, &logrus.TextFormatter{}, L.Logger.Formatter)
}

func TestConfigure(t *testing.T) {
	restoreGlobal(t)

	var buf bytes.Buffer
	L.Logger.SetOutput(&buf)

	require.NoError(t, Configure("info", "json"))
	G(context.Background()).WithField("path", "/tmp/x").Info("settings file not present")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "settings file not present", record["message"])
	assert.Equal(t, "info", record["logLevel"])
	assert.Equal(t, "/tmp/x", record["path"])
	assert.Contains(t, record, "timestamp")

	require.NoError(t, Configure("", "text"))
	assert.Equal(t, logrus.InfoLevel, L.Logger.GetLevel())

	assert.Error(t, Configure("nope", "text"))
}
