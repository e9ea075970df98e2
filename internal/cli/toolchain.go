// internal/cli/toolchain.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var toolchainCmd = &cobra.Command{
	Use:   "toolchain [path]",
	Short: "Show the pinned toolchain",
	Long:  `Read a rust-toolchain.toml (default: the one next to the manifest) and display it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runToolchain,
}

func runToolchain(cmd *cobra.Command, args []string) error {
	var path string
	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}
	path = m.ToolchainPath()
	if len(args) == 1 {
		path = args[0]
	}

	r, err := newResolver()
	if err != nil {
		return err
	}

	desc, err := r.Toolchain(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Channel: %s\n", desc.Channel)
	fmt.Fprintf(out, "Kind: %s\n", desc.Kind())
	if date, ok := desc.Dated(); ok {
		fmt.Fprintf(out, "Date: %s\n", date.Format("2006-01-02"))
	}
	if desc.Profile != "" {
		fmt.Fprintf(out, "Profile: %s\n", desc.Profile)
	}
	if len(desc.Components) > 0 {
		fmt.Fprintf(out, "Components: %s\n", strings.Join(desc.Components, ", "))
	}
	if len(desc.Targets) > 0 {
		fmt.Fprintf(out, "Targets: %s\n", strings.Join(desc.Targets, ", "))
	}
	fmt.Fprintf(out, "Bin: %s\n", r.Locations().ToolchainBin(desc.Channel, tripleFor(m)))

	return nil
}
