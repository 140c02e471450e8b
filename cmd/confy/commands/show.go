package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rust-cli/confy"
)

// showJSON holds the value of the --json flag.
var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <app> [name]",
	Short: "Show a configuration document",
	Long: `Load a configuration document and print it as YAML (or JSON with
--json).

Loading provisions an empty document when the file does not exist yet,
the same way the library does for applications.`,
	Example: `  # Show my-app's default config
  confy show my-app

  # Show a named config as JSON
  confy show my-app servers --json

See Also: confy get, confy path`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	configName := ""
	if len(args) == 2 {
		configName = args[1]
	}

	path, err := confy.ConfigurationFilePath(args[0], configName)
	if err != nil {
		return err
	}
	slog.Debug("loading configuration", "app", args[0], "path", path)

	doc, err := confy.LoadPath[map[string]any](path)
	if err != nil {
		return err
	}
	if doc == nil {
		doc = map[string]any{}
	}

	var data []byte
	if showJSON {
		data, err = json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return errors.Wrap(err, "rendering document as JSON")
		}
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "rendering document as YAML")
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
