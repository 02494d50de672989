package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/tempfiles"
	"github.com/deploymenttheory/go-pathkit/internal/types"
)

var (
	// Entity selection (tempfile-specific)
	tempfileDir      bool
	tempfileNameOnly bool

	// Naming options (tempfile-specific)
	tempfilePrefix   string
	tempfileSuffix   string
	tempfileTemplate string
)

var tempfileCmd = &cobra.Command{
	Use:   "tempfile",
	Short: "Allocate a unique temporary file, directory, or name",
	Long: `Allocate a collision-free entity in the temporary directory and print
its path. Percent signs in a template are replaced with random
hexadecimal symbols until an unused name is found.

Examples:
  # Create a temporary file
  pathkit tempfile --prefix build --suffix o

  # Create a temporary directory
  pathkit tempfile --dir --prefix staging

  # Reserve a name without creating anything
  pathkit tempfile --name --template 'probe-%%%%%%.sock'`,

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTempfile(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(tempfileCmd)

	// Entity selection
	tempfileCmd.Flags().BoolVar(&tempfileDir, "dir", false, "create a directory instead of a file")
	tempfileCmd.Flags().BoolVar(&tempfileNameOnly, "name", false, "generate an unused name without creating it")

	// Naming options
	tempfileCmd.Flags().StringVar(&tempfilePrefix, "prefix", "pathkit", "name prefix")
	tempfileCmd.Flags().StringVar(&tempfileSuffix, "suffix", "", "name suffix (file extension, without the dot)")
	tempfileCmd.Flags().StringVar(&tempfileTemplate, "template", "", "explicit template with % placeholders (overrides prefix/suffix)")

	tempfileCmd.MarkFlagsMutuallyExclusive("dir", "name")
	tempfileCmd.MarkFlagsMutuallyExclusive("dir", "suffix")
}

func runTempfile() error {
	style, err := selectedStyle()
	if err != nil {
		return err
	}

	allocator := tempfiles.NewAllocator(fsys.NewOSFileSystem(), tempfiles.WithStyle(style))

	switch {
	case tempfileDir:
		path, err := allocator.CreateUniqueDirectory(tempfilePrefix)
		if err != nil {
			return err
		}
		fmt.Println(path)

	case tempfileNameOnly && tempfileTemplate != "":
		path, err := allocator.CreateUniqueName(tempfileTemplate)
		if err != nil {
			return err
		}
		fmt.Println(path)

	case tempfileNameOnly:
		path, err := allocator.CreateTemporaryName(tempfilePrefix, tempfileSuffix)
		if err != nil {
			return err
		}
		fmt.Println(path)

	case tempfileTemplate != "":
		file, path, err := allocator.CreateUniqueFile(tempfileTemplate, types.OwnerRead|types.OwnerWrite)
		if err != nil {
			return err
		}
		file.Close()
		fmt.Println(path)

	default:
		file, path, err := allocator.CreateTemporaryFile(tempfilePrefix, tempfileSuffix)
		if err != nil {
			return err
		}
		file.Close()
		fmt.Println(path)
	}

	if verbose {
		fmt.Printf("temp directory: %s\n", allocator.TempDirectory())
	}
	return nil
}
