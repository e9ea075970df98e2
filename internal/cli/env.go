// internal/cli/env.go
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var envFormat string

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the shell environment",
	Long: `Resolve the manifest and print the assembled environment.

Formats:
  sh       export statements followed by the shell hook (eval "$(shenv env)")
  environ  KEY=VALUE lines
  yaml     a YAML mapping of every variable`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	envCmd.Flags().StringVarP(&envFormat, "format", "f", "sh", "output format (sh, environ, yaml)")
}

func runEnv(cmd *cobra.Command, args []string) error {
	m, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	r, err := newResolver()
	if err != nil {
		return err
	}

	snap, err := r.Build(cmd.Context(), m)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch envFormat {
	case "sh", "":
		return snap.WriteShell(out)
	case "environ":
		_, err := fmt.Fprintln(out, strings.Join(snap.Environ(), "\n"))
		return err
	case "yaml":
		return snap.WriteYAML(out)
	default:
		return fmt.Errorf("unknown format %q (want sh, environ or yaml)", envFormat)
	}
}
