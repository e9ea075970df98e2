// internal/cli/resolve.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/shenv/pkg/core"
	"github.com/arc-language/shenv/pkg/env"
)

var (
	showLibs bool
	findLib  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [package...]",
	Short: "Show where packages resolve to",
	Long: `Resolve package names against the manifest's packages, the index and
the Nix store, and display the resulting handles.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVarP(&showLibs, "libs", "l", false, "list shared libraries in each package")
	resolveCmd.Flags().StringVar(&findLib, "find", "", "locate a library by name across the resolved packages")
}

func runResolve(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	r, err := newResolver()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	handles := make([]core.Handle, 0, len(args))
	for _, name := range args {
		h, err := r.Resolve(cmd.Context(), m, name)
		if err != nil {
			return err
		}
		handles = append(handles, h)

		fmt.Fprintf(out, "Package: %s\n", h.Name)
		if h.Version != "" {
			fmt.Fprintf(out, "Version: %s\n", h.Version)
		}
		if h.Output != "" {
			fmt.Fprintf(out, "Output: %s\n", h.Output)
		}
		fmt.Fprintf(out, "Root: %s\n", h.Root)

		if showLibs {
			for _, lib := range env.Libraries(h) {
				fmt.Fprintf(out, "  %s\n", lib.Path)
			}
		}
	}

	if findLib != "" {
		lib := env.FindLibrary(handles, findLib)
		if lib == nil {
			return fmt.Errorf("library %s not found in %d packages", findLib, len(handles))
		}
		fmt.Fprintf(out, "Found: %s\n", lib.Path)
	}

	return nil
}
