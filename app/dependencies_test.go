package app

import (
	"testing"

	"github.com/hmendez/bookshelf-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNewDependencies(t *testing.T) {
	logger := zaptest.NewLogger(t)

	cfg := config.New()
	deps := NewDependencies(cfg, logger)
	require.NotNil(t, deps)

	assert.Same(t, cfg, deps.Config)
	assert.Same(t, logger, deps.Logger)
}

func TestClose(t *testing.T) {
	deps := NewDependencies(config.New(), zaptest.NewLogger(t))
	assert.NoError(t, deps.Close())

	t.Run("nil logger", func(t *testing.T) {
		deps := &Dependencies{}
		assert.NoError(t, deps.Close())
	})
}
