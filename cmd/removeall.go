package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-pathkit/internal/fsys"
)

var removeallCmd = &cobra.Command{
	Use:   "removeall <path>",
	Short: "Remove a path and everything beneath it",
	Long: `Remove the named path. Directories are removed depth-first together
with their contents. The number of filesystem entries removed is
reported, directories included. A missing path is not an error.

Examples:
  pathkit removeall ./build
  pathkit removeall /tmp/staging-3f9a2c`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runRemoveall(args[0]); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(removeallCmd)
}

func runRemoveall(path string) error {
	count, err := fsys.RemoveAll(fsys.NewOSFileSystem(), path)
	if fsys.IsNotFound(err) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("removed %d entries before failing: %w", count, err)
	}
	if !quiet {
		fmt.Printf("removed %d entries\n", count)
	}
	return nil
}
