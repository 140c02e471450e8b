// Package commands implements the CLI commands for confy.
package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	confyerrors "github.com/rust-cli/confy/internal/errors"
	"github.com/rust-cli/confy/internal/logging"
)

const version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("confy version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// initConfig wires environment defaults for the tool's own settings:
// CONFY_LOG_FORMAT and CONFY_LOG_FILE are honored when the
// corresponding flags are not given.
func initConfig() {
	viper.SetEnvPrefix("CONFY")
	viper.AutomaticEnv()

	viper.SetDefault("log_format", string(logging.FormatText))
	viper.SetDefault("log_file", "")
}

var rootCmd = &cobra.Command{
	Use:   "confy",
	Short: "Inspect and edit confy-managed configuration files",
	Long: `confy inspects and edits configuration files managed by the confy
library. Files live in the platform config directory (~/.config/<app>/
on Linux) and hold one human-editable document per logical config name.

Loading a configuration that does not exist yet provisions it with an
empty document, matching the library's auto-provision behavior.`,
	Example: `  # Where does my-app's default config live?
  confy path my-app

  # Show the whole document
  confy show my-app

  # Read and write individual keys
  confy get my-app server.port
  confy set my-app server.port 8080

  # Fuzzy-pick one of my-app's config files
  confy browse my-app`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return confyerrors.NewUserError(
			errors.New("cannot use --quiet and --verbose together"),
			"pass either --quiet or --verbose, not both")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		level = logging.LevelFromVerbosity(verbosity)
	}

	format := logFormat
	if format == "" {
		format = viper.GetString("log_format")
	}
	file := logFile
	if file == "" {
		file = viper.GetString("log_file")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(format) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return confyerrors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	slog.SetDefault(slog.New(handler))

	return nil
}

// Execute runs the root command and reports its error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)

		var exitErr *confyerrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, "Suggestion:", exitErr.Suggestion)
		}
	}
	return err
}
