// Package cmd provides the command-line interface for create-stageplay-app.
//
// Configuration System:
//
//	Options can be supplied through multiple sources with clear precedence:
//	1. Command-line flags (--package-manager, --skip-install, etc.) - highest priority
//	2. CREATE_STAGEPLAY_CONFIG_FILE environment variable - custom config file path
//	3. Individual environment variables (CREATE_STAGEPLAY_PACKAGE_MANAGER, etc.)
//	4. Configuration files (.create-stageplay.yml) - lowest priority
//
// The pipeline is fixed: resolve the project name, refuse an occupied target
// path, write the starter files, then run the package manager's install and
// build steps inside the new project. Any failure terminates the run with a
// non-zero exit; nothing is retried and partial writes are not rolled back.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/stageplayjs/create-stageplay-app/internal/builder"
	"github.com/stageplayjs/create-stageplay-app/internal/config"
	scaferrors "github.com/stageplayjs/create-stageplay-app/internal/errors"
	"github.com/stageplayjs/create-stageplay-app/internal/logging"
	"github.com/stageplayjs/create-stageplay-app/internal/project"
	"github.com/stageplayjs/create-stageplay-app/internal/scaffold"
	"github.com/stageplayjs/create-stageplay-app/internal/ui"
)

var cfgFile string

// newRunner builds the subprocess runner; swapped out in tests.
var newRunner = func() builder.Runner {
	return &builder.ExecRunner{}
}

// rootCmd is the whole tool: one positional argument, the project name.
var rootCmd = &cobra.Command{
	Use:   "create-stageplay-app <project-name>",
	Short: "Scaffold a new stageplay browser project",
	Long: `create-stageplay-app generates a ready-to-run browser project wired to the
stageplay library: an HTML entry document with an import map, a starter
scene module, a webpack configuration, and a package.json declaring the
build/watch/start/dev scripts. It then installs dependencies and produces
an initial bundle.

Examples:
  create-stageplay-app my-show                    # scaffold, install, build
  create-stageplay-app my-show --skip-install     # scaffold only, no subprocesses
  create-stageplay-app my-show --package-manager pnpm

The target directory must not exist; an occupied path is refused before
anything is written.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCreate,
}

// Execute runs the root command. Errors have already been printed when it
// returns; the caller only decides the exit code.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is .create-stageplay.yml, can also use CREATE_STAGEPLAY_CONFIG_FILE env var)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "log format (text, json)")

	rootCmd.Flags().String("package-manager", "npm", "package manager used for install and build (npm, pnpm, yarn, bun)")
	rootCmd.Flags().Bool("skip-install", false, "write the starter files but skip dependency installation")
	rootCmd.Flags().Bool("skip-build", false, "write the starter files but skip the initial build")

	bindFlags(rootCmd)
}

// initConfig initializes viper from the config file and environment.
// Priority for the file itself: --config flag, then the
// CREATE_STAGEPLAY_CONFIG_FILE environment variable, then a
// .create-stageplay.yml in the current directory.
func initConfig() {
	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("CREATE_STAGEPLAY_CONFIG_FILE"); envConfigFile != "" {
		viper.SetConfigFile(envConfigFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".create-stageplay")
	}

	viper.SetEnvPrefix("CREATE_STAGEPLAY")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// A missing or malformed config file degrades to defaults.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})

	spec, err := project.Resolve(args)
	if err != nil {
		if scaferrors.IsUsage(err) {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
		}
		return err
	}

	if err := project.CheckAvailable(spec.Dir); err != nil {
		return err
	}

	orch := builder.New(newRunner(), builder.Options{
		PackageManager: cfg.PackageManager,
		SkipInstall:    cfg.SkipInstall,
		SkipBuild:      cfg.SkipBuild,
	}, logger)
	orch.Progress = cmd.OutOrStdout()

	// Fail on a missing package manager before anything is written.
	if err := orch.Preflight(); err != nil {
		return err
	}

	generator := scaffold.NewGenerator(logger)
	generator.Progress = cmd.OutOrStdout()

	if _, err := generator.Emit(cmd.Context(), spec); err != nil {
		return err
	}

	if _, err := orch.Run(cmd.Context(), spec); err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), ui.SuccessBanner(spec.Name))

	return nil
}
