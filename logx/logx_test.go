package logx_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lathegears/logx"
)

func TestLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"warn":    zerolog.WarnLevel,
		" error ": zerolog.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logx.Level(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logx.Level("loud")
	assert.Error(t, err)
}

func TestNew_FilteringAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := logx.New(&buf, "solve", zerolog.WarnLevel)

	l.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Int("k", 2).Msg("shown")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "solve", line["component"])
	assert.Equal(t, "shown", line["message"])
	assert.EqualValues(t, 2, line["k"])
	assert.Contains(t, line, "time")
}

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	l := logx.Console(&buf, "watch", zerolog.DebugLevel)
	l.Debug().Str("file", "lathe.yaml").Msg("changed")
	assert.Contains(t, buf.String(), "changed")
	assert.Contains(t, buf.String(), "file=lathe.yaml")
}
