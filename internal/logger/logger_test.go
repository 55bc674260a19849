package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_Levels(t *testing.T) {
	defer Setup("info", os.Stdout)

	cases := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"verbose": logrus.InfoLevel,
	}
	for level, want := range cases {
		Setup(level, &bytes.Buffer{})
		assert.Equal(t, want, logrus.GetLevel(), level)
	}
}

func TestWithContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", os.Stdout)

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-42")
	WithContext(ctx).WithField("room_id", 7).WithError(errors.New("boom")).Info("room created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry["request_id"])
	assert.Equal(t, float64(7), entry["room_id"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "room created", entry["msg"])
}

func TestWithContext_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)
	defer Setup("info", os.Stdout)

	WithContext(context.Background()).WithFields(map[string]interface{}{"count": 10}).Info("seeded")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasID := entry["request_id"]
	assert.False(t, hasID)
	assert.Equal(t, float64(10), entry["count"])
}
