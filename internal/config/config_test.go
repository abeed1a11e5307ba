package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obscurecat64/quackcc/internal/config"
)

func TestFromEnvDefaults(t *testing.T) {
	opts, err := config.FromEnv()
	require.NoError(t, err)
	assert.False(t, opts.Annotate)
	assert.Equal(t, 16, opts.MaxArrayDims)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("QUACKCC_ANNOTATE", "true")
	t.Setenv("QUACKCC_MAX_ARRAY_DIMS", "4")

	opts, err := config.FromEnv()
	require.NoError(t, err)
	assert.True(t, opts.Annotate)
	assert.Equal(t, 4, opts.MaxArrayDims)
}
