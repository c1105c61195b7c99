// Package config provides configuration management for create-stageplay-app
// using Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// Configuration sources, highest priority first: command-line flags, environment
// variables with the CREATE_STAGEPLAY_ prefix, and a .create-stageplay.yml file
// in the working directory. Every option has a default, so the tool works with
// no configuration at all.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/stageplayjs/create-stageplay-app/internal/errors"
)

// Config holds the tool-level options that shape a scaffolding run.
type Config struct {
	PackageManager string `yaml:"package_manager"`
	SkipInstall    bool   `yaml:"skip_install"`
	SkipBuild      bool   `yaml:"skip_build"`
	LogLevel       string `yaml:"log_level"`
	LogFormat      string `yaml:"log_format"`
}

// Package managers the orchestrator knows how to drive. All of them accept
// `install` and `run <script>` with npm-compatible semantics.
var allowedPackageManagers = map[string]bool{
	"npm":  true,
	"pnpm": true,
	"yarn": true,
	"bun":  true,
}

// SetDefaults registers the default values with viper. Called once during
// CLI initialization, before flags are bound.
func SetDefaults() {
	viper.SetDefault("package_manager", "npm")
	viper.SetDefault("skip_install", false)
	viper.SetDefault("skip_build", false)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
}

// Load materializes the configuration from viper's merged sources.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError("E_CONFIG_PARSE", err.Error())
	}

	// Viper's Unmarshal does not see keys bound only through BindPFlag, so
	// read the scalar options explicitly.
	if viper.IsSet("package_manager") {
		config.PackageManager = viper.GetString("package_manager")
	}
	if viper.IsSet("skip_install") {
		config.SkipInstall = viper.GetBool("skip_install")
	}
	if viper.IsSet("skip_build") {
		config.SkipBuild = viper.GetBool("skip_build")
	}
	if viper.IsSet("log_level") {
		config.LogLevel = viper.GetString("log_level")
	}
	if viper.IsSet("log_format") {
		config.LogFormat = viper.GetString("log_format")
	}

	if config.PackageManager == "" {
		config.PackageManager = "npm"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig rejects option values that would make the run misbehave in
// confusing ways, before any filesystem or subprocess work starts.
func validateConfig(config *Config) error {
	pm := strings.TrimSpace(config.PackageManager)
	if !allowedPackageManagers[pm] {
		return errors.NewConfigError("E_CONFIG_PM",
			"unsupported package manager "+pm+" (supported: npm, pnpm, yarn, bun)")
	}
	config.PackageManager = pm

	switch config.LogFormat {
	case "text", "json":
	default:
		return errors.NewConfigError("E_CONFIG_LOG_FORMAT",
			"log format must be \"text\" or \"json\", got "+config.LogFormat)
	}

	return nil
}
