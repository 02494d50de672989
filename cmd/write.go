package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/output"
	"github.com/deploymenttheory/go-pathkit/internal/tempfiles"
)

var (
	// Output file options (write-specific)
	writeExecutable bool
)

var writeCmd = &cobra.Command{
	Use:   "write <path>",
	Short: "Write stdin to a file atomically",
	Long: `Read standard input to completion, then publish it at the given path
with a single atomic rename. A reader of the path never observes a
partially written file, and a crash mid-write leaves at most a stray
temporary next to the destination.

Examples:
  # Write a config file without a torn-read window
  generate-config | pathkit write /etc/myapp/config.yaml

  # Install a downloaded binary
  curl -fsSL https://example.com/tool | pathkit write ~/bin/tool --executable`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runWrite(args[0]); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().BoolVarP(&writeExecutable, "executable", "x", false, "mark the resulting file executable")
}

func runWrite(path string) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	filesystem := fsys.NewOSFileSystem()
	allocator := tempfiles.NewAllocator(filesystem)

	buffer, err := output.Create(filesystem, allocator, path, int64(len(data)), writeExecutable)
	if err != nil {
		return err
	}
	defer buffer.Discard()

	copy(buffer.Bytes(), data)
	if err := buffer.Commit(output.KeepSize); err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("wrote %d bytes to %s\n", len(data), path)
	}
	return nil
}
