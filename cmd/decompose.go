package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Component iteration options (decompose-specific)
	decomposeComponents bool
	decomposeReverse    bool
)

var decomposeCmd = &cobra.Command{
	Use:   "decompose <path>",
	Short: "Break a path into its structural components",
	Long: `Decompose a path string into root name, root directory, relative
path, parent path, filename, stem, and extension. The path is never
resolved against the disk.

Examples:
  # Decompose a POSIX path
  pathkit decompose /usr/lib/libfoo.so.1

  # Decompose a Windows path regardless of host platform
  pathkit decompose 'C:\Windows\System32' --style windows

  # Walk the components one per line
  pathkit decompose //net/usr/lib --components`,

	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runDecompose(args[0]); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(decomposeCmd)

	decomposeCmd.Flags().BoolVar(&decomposeComponents, "components", false, "list path components one per line")
	decomposeCmd.Flags().BoolVarP(&decomposeReverse, "reverse", "r", false, "list components last to first")

	decomposeCmd.MarkFlagsMutuallyExclusive("components", "reverse")
}

type decomposition struct {
	Path          string   `json:"path"`
	RootName      string   `json:"root_name"`
	RootDirectory string   `json:"root_directory"`
	RelativePath  string   `json:"relative_path"`
	ParentPath    string   `json:"parent_path"`
	Filename      string   `json:"filename"`
	Stem          string   `json:"stem"`
	Extension     string   `json:"extension"`
	Absolute      bool     `json:"absolute"`
	Components    []string `json:"components"`
}

func runDecompose(path string) error {
	style, err := selectedStyle()
	if err != nil {
		return err
	}

	if decomposeComponents || decomposeReverse {
		components := style.Components(path)
		if decomposeReverse {
			for i := len(components) - 1; i >= 0; i-- {
				fmt.Println(components[i])
			}
		} else {
			for _, component := range components {
				fmt.Println(component)
			}
		}
		return nil
	}

	d := decomposition{
		Path:          path,
		RootName:      style.RootName(path),
		RootDirectory: style.RootDirectory(path),
		RelativePath:  style.RelativePath(path),
		ParentPath:    style.ParentPath(path),
		Filename:      style.Filename(path),
		Stem:          style.Stem(path),
		Extension:     style.Extension(path),
		Absolute:      style.IsAbsolute(path),
		Components:    style.Components(path),
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(d)
	}

	fmt.Printf("path:           %s\n", d.Path)
	fmt.Printf("root name:      %s\n", d.RootName)
	fmt.Printf("root directory: %s\n", d.RootDirectory)
	fmt.Printf("relative path:  %s\n", d.RelativePath)
	fmt.Printf("parent path:    %s\n", d.ParentPath)
	fmt.Printf("filename:       %s\n", d.Filename)
	fmt.Printf("stem:           %s\n", d.Stem)
	fmt.Printf("extension:      %s\n", d.Extension)
	fmt.Printf("absolute:       %v\n", d.Absolute)
	return nil
}
