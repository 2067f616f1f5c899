package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("development", &buf)
	logger.Debug().Msg("loaded entries")
	assert.Contains(t, buf.String(), "loaded entries")

	buf.Reset()
	logger = Setup("production", &buf)
	logger.Debug().Msg("hidden")
	logger.Info().Str("file", "week45.csv").Msg("converted")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "converted")
	assert.Contains(t, buf.String(), "week45.csv")
}
