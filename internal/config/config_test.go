package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	scaferrors "github.com/stageplayjs/create-stageplay-app/internal/errors"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "npm", cfg.PackageManager)
	assert.False(t, cfg.SkipInstall)
	assert.False(t, cfg.SkipBuild)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadOverrides(t *testing.T) {
	resetViper(t)
	SetDefaults()

	viper.Set("package_manager", "pnpm")
	viper.Set("skip_install", true)
	viper.Set("log_level", "debug")
	viper.Set("log_format", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pnpm", cfg.PackageManager)
	assert.True(t, cfg.SkipInstall)
	assert.False(t, cfg.SkipBuild)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadRejectsUnknownPackageManager(t *testing.T) {
	resetViper(t)
	SetDefaults()

	viper.Set("package_manager", "cargo")

	_, err := Load()
	require.Error(t, err)

	var se *scaferrors.ScaffoldError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, scaferrors.KindConfig, se.Kind)
	assert.Contains(t, err.Error(), "cargo")
}

func TestLoadTrimsPackageManager(t *testing.T) {
	resetViper(t)
	SetDefaults()

	viper.Set("package_manager", "  yarn  ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "yarn", cfg.PackageManager)
}

func TestLoadRejectsBadLogFormat(t *testing.T) {
	resetViper(t)
	SetDefaults()

	viper.Set("log_format", "xml")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log format")
}
