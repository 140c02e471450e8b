package commands

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/rust-cli/confy"
	confyerrors "github.com/rust-cli/confy/internal/errors"
)

// getConfigName holds the value of the --name flag for get.
var getConfigName string

func init() {
	getCmd.Flags().StringVar(&getConfigName, "name", "", "logical config name (default: default-config)")
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <app> <key>",
	Short: "Get a configuration value",
	Long: `Get a single value from a configuration document.

Supports dot notation for nested keys. Array values are printed one per
line.`,
	Example: `  # Read a top-level key
  confy get my-app comfy

  # Read a nested key from a named config
  confy get my-app server.port --name servers

See Also: confy set, confy show`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	appName, key := args[0], args[1]

	path, err := confy.ConfigurationFilePath(appName, getConfigName)
	if err != nil {
		return err
	}

	doc, err := confy.LoadPath[map[string]any](path)
	if err != nil {
		return err
	}

	val, err := lookupKey(doc, key)
	if err != nil {
		if errors.Is(err, confyerrors.ErrUnknownKey) {
			return confyerrors.NewUserError(err,
				fmt.Sprintf("Run 'confy show %s' to list available keys", appName))
		}
		return err
	}

	switch v := val.(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(cmd.OutOrStdout(), item)
		}
	default:
		fmt.Fprintln(cmd.OutOrStdout(), v)
	}

	return nil
}
