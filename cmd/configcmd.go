package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-pathkit/internal/config"
	"github.com/deploymenttheory/go-pathkit/internal/fsys"
	"github.com/deploymenttheory/go-pathkit/internal/tempfiles"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective tool configuration",
	Long: `Print the configuration pathkit resolved from its config file,
environment variables (PATHKIT_ prefix), and built-in defaults,
along with the temporary directory those settings select.`,

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConfig(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	options := []tempfiles.Option{}
	if cfg.TempDir != "" {
		options = append(options, tempfiles.WithTempDir(cfg.TempDir))
	}
	allocator := tempfiles.NewAllocator(fsys.NewOSFileSystem(), options...)

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{
			"temp_dir":            allocator.TempDirectory(),
			"default_file_mode":   fmt.Sprintf("%#o", cfg.DefaultFileMode),
			"identify_read_limit": cfg.IdentifyReadLimit,
			"prefer_native_slash": cfg.PreferNativeSlash,
		})
	}

	fmt.Printf("temp directory:      %s\n", allocator.TempDirectory())
	fmt.Printf("default file mode:   %#o\n", cfg.DefaultFileMode)
	fmt.Printf("identify read limit: %d\n", cfg.IdentifyReadLimit)
	fmt.Printf("prefer native slash: %v\n", cfg.PreferNativeSlash)
	return nil
}
