package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/taskshow/internal/infrastructure/config"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 144, cfg.Cards.Count)
	assert.Equal(t, 10, cfg.Fire.PoolSize)
}

func TestLoadConfig_Directory(t *testing.T) {
	cfg, err := loadConfig("configs")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Display, cfg.Display)

	_, err = loadConfig(t.TempDir())
	assert.Error(t, err)
}
