package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-pathkit/internal/paths"
)

var (
	// Global output flags only
	verbose      bool
	quiet        bool
	outputFormat string
	pathStyle    string
)

var rootCmd = &cobra.Command{
	Use:   "pathkit",
	Short: "Portable path algebra and atomic file materialization",
	Long: `pathkit is a cross-platform command-line tool for decomposing paths,
allocating collision-free temporary files, writing files atomically,
and identifying file formats by their magic bytes.

Path operations are pure string algebra: they never touch the disk,
and both POSIX and Windows path grammars are available on any host.

Commands:
  decompose   Break a path into its structural components
  tempfile    Allocate a unique temporary file, directory, or name
  write       Write stdin to a file atomically
  removeall   Remove a path and everything beneath it
  identify    Identify a file's format from its leading bytes
  config      Show the effective tool configuration`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Only global output control flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table, json)")
	rootCmd.PersistentFlags().StringVar(&pathStyle, "style", "native", "path grammar (native, posix, windows)")
}

// selectedStyle resolves the --style flag to a path grammar.
func selectedStyle() (paths.Style, error) {
	switch pathStyle {
	case "native":
		return paths.Native, nil
	case "posix":
		return paths.Posix, nil
	case "windows":
		return paths.Windows, nil
	}
	return paths.Style{}, fmt.Errorf("unknown path style %q (want native, posix, or windows)", pathStyle)
}
