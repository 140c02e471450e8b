package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rust-cli/confy"
)

// setConfigName holds the value of the --name flag for set.
var setConfigName string

func init() {
	setCmd.Flags().StringVar(&setConfigName, "name", "", "logical config name (default: default-config)")
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <app> <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a single value in a configuration document and persist it.

Supports dot notation for nested keys; intermediate tables are created
as needed. Values parse as bool, integer, or float before falling back
to string. The document is provisioned first if it does not exist.`,
	Example: `  # Set a top-level key
  confy set my-app comfy true

  # Set a nested key in a named config
  confy set my-app server.port 8080 --name servers

See Also: confy get, confy show`,
	Args: cobra.ExactArgs(3),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	appName, key, raw := args[0], args[1], args[2]

	path, err := confy.ConfigurationFilePath(appName, setConfigName)
	if err != nil {
		return err
	}

	doc, err := confy.LoadPath[map[string]any](path)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}

	value := parseScalar(raw)
	if err := setKey(doc, key, value); err != nil {
		return err
	}

	if err := confy.SavePath(path, doc); err != nil {
		return err
	}
	slog.Debug("saved configuration", "app", appName, "path", path)

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, value)
	return nil
}
