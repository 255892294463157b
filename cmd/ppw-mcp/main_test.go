package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"ppw/internal/config"
)

func TestNewPipeline(t *testing.T) {
	t.Run("defaults leave optional adapters off", func(t *testing.T) {
		pipeline, closeFn, err := newPipeline(config.DefaultConfig(), zap.NewNop())
		require.NoError(t, err)
		assert.Nil(t, pipeline.Publisher)
		assert.Nil(t, pipeline.History)
		assert.NoError(t, closeFn())
	})

	t.Run("publish endpoint wires the publisher", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Publish.Endpoint = "localhost:9000"
		cfg.Publish.AccessKey = "minio"
		cfg.Publish.SecretKey = "minio123"
		cfg.Publish.UseSSL = false

		pipeline, closeFn, err := newPipeline(cfg, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, pipeline.Publisher)
		assert.NoError(t, closeFn())
	})

	t.Run("incomplete publish config fails", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Publish.Endpoint = "localhost:9000"

		_, _, err := newPipeline(cfg, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("history path opens the database", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.History.Path = filepath.Join(t.TempDir(), "history.db")

		pipeline, closeFn, err := newPipeline(cfg, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, pipeline.History)
		assert.NoError(t, closeFn())
	})
}

func TestRun_InvalidConfigReturnsError(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PPW_TIMEOUT", "soon")

	err := run("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PPW_TIMEOUT")
}
