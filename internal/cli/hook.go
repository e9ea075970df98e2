// internal/cli/hook.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/shenv/pkg/env"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Print the shell startup hook",
	Long: `Print only the PATH exports for the cargo bin directory and the pinned
toolchain. No packages are resolved.`,
	Args: cobra.NoArgs,
	RunE: runHook,
}

func runHook(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	r, err := newResolver()
	if err != nil {
		return err
	}

	desc, err := r.Toolchain(m.ToolchainPath())
	if err != nil {
		return err
	}

	hook := env.NewAssembler(r.Locations(), tripleFor(m)).Hook(desc.Channel)
	if err := env.ValidateHook(hook); err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), hook)
	return err
}
