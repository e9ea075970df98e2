// internal/cli/root.go
package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mattn/go-shellwords"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/arc-language/shenv"
	"github.com/arc-language/shenv/pkg/core"
	"github.com/arc-language/shenv/pkg/env"
	"github.com/arc-language/shenv/pkg/platform"
)

var (
	cfgFile        string
	manifestPath   string
	storeDir       string
	triple         string
	extraClangArgs string
	debug          bool
	config         *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shenv",
	Short: "Development shell environment for Rust projects",
	Long: `shenv - development shell environment for Rust projects

Reads rust-toolchain.toml and a shenv.yaml manifest, resolves native
libraries from the Nix store and prints the environment a shell needs
to build and run the project.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shenv/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&manifestPath, "manifest", "m", core.DefaultManifest, "project manifest")
	rootCmd.PersistentFlags().StringVar(&storeDir, "store-dir", "", "Nix store directory to scan")
	rootCmd.PersistentFlags().StringVar(&triple, "triple", "", `toolchain host triple, Nix system, or "host"`)
	rootCmd.PersistentFlags().StringVar(&extraClangArgs, "extra-clang-args", "", "additional arguments appended to BINDGEN_EXTRA_CLANG_ARGS")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(envCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(toolchainCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if storeDir != "" {
		config.StoreDir = storeDir
	}
	if triple != "" {
		config.Triple = triple
	}
	if debug {
		config.Debug = true
	}
}

// newResolver builds a resolver from the loaded config and the toolchain
// locations found in the process environment.
func newResolver() (*shenv.Resolver, error) {
	t, err := platform.ResolveTriple(config.Triple)
	if err != nil {
		return nil, fmt.Errorf("resolving triple: %w", err)
	}
	config.Triple = t

	home, err := homedir.Dir()
	if err != nil {
		return nil, fmt.Errorf("locating home directory: %w", err)
	}

	return shenv.New(config, env.ResolveLocations(os.LookupEnv, home))
}

// loadManifest reads the project manifest. Only an absent default manifest
// is tolerated; it yields an empty manifest next to rust-toolchain.toml.
func loadManifest(cmd *cobra.Command) (*core.Manifest, error) {
	m, err := core.LoadManifest(manifestPath)
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("manifest") {
		m, err = core.ParseManifest(nil)
	}
	if err != nil {
		return nil, err
	}

	if extraClangArgs != "" {
		args, err := shellwords.Parse(extraClangArgs)
		if err != nil {
			return nil, fmt.Errorf("parsing --extra-clang-args: %w", err)
		}
		m.IncludeExtra = append(m.IncludeExtra, args...)
	}
	return m, nil
}

// tripleFor picks the manifest's triple, then the configured one
func tripleFor(m *core.Manifest) string {
	if m.Triple != "" {
		return m.Triple
	}
	if config.Triple != "" {
		return config.Triple
	}
	return env.DefaultTriple
}
