package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rust-cli/confy"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path <app> [name]",
	Short: "Print the resolved configuration file path",
	Long: `Print the path a configuration resolves to, without touching the
filesystem. The file and its directories may not exist yet.`,
	Example: `  # Default config of my-app
  confy path my-app

  # A named config
  confy path my-app servers

See Also: confy show, confy browse`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPath,
}

func runPath(cmd *cobra.Command, args []string) error {
	configName := ""
	if len(args) == 2 {
		configName = args[1]
	}

	path, err := confy.ConfigurationFilePath(args[0], configName)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
