package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/magic"
)

var identifyCmd = &cobra.Command{
	Use:   "identify <path>...",
	Short: "Identify a file's format from its leading bytes",
	Long: `Classify files by magic number. Recognizes ELF objects, Mach-O
binaries, COFF and PE/COFF images, ar archives, and LLVM bitcode.

Examples:
  pathkit identify /usr/bin/ls
  pathkit identify build/*.o`,

	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runIdentify(args); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(identifyCmd)
}

func runIdentify(targets []string) error {
	filesystem := fsys.NewOSFileSystem()

	for _, target := range targets {
		kind, err := magic.IdentifyFile(filesystem, target)
		if err != nil {
			return fmt.Errorf("identifying %q: %w", target, err)
		}
		fmt.Printf("%s: %s\n", target, kind)
	}
	return nil
}
