package logger

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	closeFn, err := Init(Options{Level: "warn", Format: "json", Output: path})
	require.NoError(t, err)

	log.Info().Msg("dropped")
	log.Warn().Str("entity", "author").Msg("kept")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), `"entity":"author"`)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInit_InvalidLevelFallsBackToInfo(t *testing.T) {
	closeFn, err := Init(Options{Level: "verbose", Output: "stderr"})
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestInit_BadPath(t *testing.T) {
	_, err := Init(Options{Output: filepath.Join(t.TempDir(), "missing", "dir", "app.log")})
	assert.Error(t, err)
}

func TestFromContext(t *testing.T) {
	assert.Same(t, &log.Logger, FromContext(context.Background()))

	var buf bytes.Buffer
	l := zerolog.New(&buf).With().Str("request_id", "req-1").Logger()
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Warn().Msg("hello")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
}
