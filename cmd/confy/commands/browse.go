package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/rust-cli/confy"
	"github.com/rust-cli/confy/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(browseCmd)
}

var browseCmd = &cobra.Command{
	Use:   "browse <app>",
	Short: "Interactively pick one of an application's config files",
	Long: `List the configuration files of an application and fuzzy-pick one to
print. Requires a terminal.`,
	Example: `  confy browse my-app

See Also: confy show, confy path`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	// Resolve the app directory off the default document's path.
	defaultPath, err := confy.ConfigurationFilePath(args[0], "")
	if err != nil {
		return err
	}
	dir := filepath.Dir(defaultPath)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(cmd.OutOrStdout(), "No configuration found for %s.\n", args[0])
			return nil
		}
		return errors.Wrap(err, "listing config directory")
	}

	var files []string
	for _, e := range entries {
		if e.Type().IsRegular() {
			files = append(files, e.Name())
		}
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No configuration found for %s.\n", args[0])
		return nil
	}

	idx, err := fuzzyfinder.Find(
		files,
		func(i int) string {
			return files[i]
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			data, err := fileutil.ReadFileWithLimit(filepath.Join(dir, files[i]))
			if err != nil {
				return fmt.Sprintf("error: %v", err)
			}
			return string(data)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil
		}
		return errors.Wrap(err, "interactive selection failed")
	}

	data, err := fileutil.ReadFileWithLimit(filepath.Join(dir, files[idx]))
	if err != nil {
		return errors.Wrap(err, "reading selected file")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", filepath.Join(dir, files[idx]), data)
	return nil
}
