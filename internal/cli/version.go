// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "shenv version %s\n", rootCmd.Version)
		fmt.Fprintln(out, "Development shell environment for Rust projects")
		fmt.Fprintln(out, "https://github.com/arc-language/shenv")
	},
}
