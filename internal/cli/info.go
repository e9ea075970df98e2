// internal/cli/info.go
package cli

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/arc-language/shenv/pkg/env"
	"github.com/arc-language/shenv/pkg/platform"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show information about the host",
	Long:  `Display the detected platform, the Nix store and the toolchain locations.`,
	Args:  cobra.NoArgs,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	// Detect platform
	plat, err := platform.Detect(config.StoreDir)
	if err != nil {
		return fmt.Errorf("detecting platform: %w", err)
	}

	home, err := homedir.Dir()
	if err != nil {
		return fmt.Errorf("locating home directory: %w", err)
	}
	loc := env.ResolveLocations(os.LookupEnv, home)

	// Display info
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Platform: %s/%s\n", plat.OS, plat.Arch)
	fmt.Fprintf(out, "System: %s\n", plat.System)
	fmt.Fprintf(out, "Triple: %s\n", plat.Triple)
	fmt.Fprintf(out, "Store: %s (present: %v)\n", config.StoreDir, plat.HasStore)
	fmt.Fprintf(out, "Nix: %v\n", plat.HasNix)
	fmt.Fprintf(out, "Cargo home: %s\n", loc.CargoHome)
	fmt.Fprintf(out, "Rustup home: %s\n", loc.RustupHome)
	if config.IndexPath != "" {
		fmt.Fprintf(out, "Index: %s\n", config.IndexPath)
	}
	if config.RegistryDir != "" {
		fmt.Fprintf(out, "Registry: %s\n", config.RegistryDir)
	}

	return nil
}
