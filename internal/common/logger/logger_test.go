package logger

import (
	"bytes"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SetupWriter(&buf, "WARNING"))

	log := logging.MustGetLogger("logger_test")
	log.Info("hidden")
	log.Warning("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "logger_test")
}

func TestSetupWriter_InvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	err := SetupWriter(&buf, "LOUD")
	assert.Error(t, err)
}

func TestSetupWriter_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SetupWriter(&buf, ""))

	log := logging.MustGetLogger("logger_test")
	log.Debug("debug line")
	log.Info("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}
