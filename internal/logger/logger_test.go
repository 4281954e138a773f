package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer

	_, isConsole := writer("", "debug", &buf).(zerolog.ConsoleWriter)
	assert.True(t, isConsole)

	assert.Same(t, &buf, writer("", "release", &buf))
	assert.Same(t, &buf, writer("json", "debug", &buf))

	_, isConsole = writer("console", "release", &buf).(zerolog.ConsoleWriter)
	assert.True(t, isConsole)
}

func TestSetup_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	Setup("warn", "json", "release")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	Setup("nonsense", "json", "release")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
