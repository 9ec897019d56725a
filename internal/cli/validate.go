package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/module"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "validate [path]",
		Aliases: []string{"check"},
		Short:   "Validate a module stream YAML document",
		Long: `Load every subdocument in the given file into a ModuleIndex and
report any parse or validation failures.

Examples:
  modulemd-validate validate ./bash.yaml
  modulemd-validate validate --strict=false ./bash.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := module.NewIndex()
			failures, err := idx.UpdateFromFile(args[0], strictFlag())
			if err != nil {
				return fmt.Errorf("reading %q: %w", args[0], err)
			}
			for _, f := range failures {
				fmt.Fprintf(cmd.OutOrStdout(), "FAIL [%s]: %v\n", f.Info.Doctype, f.Err)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%d subdocument(s) failed validation", len(failures))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%q is valid (%d module(s))\n", args[0], len(idx.ModuleNames()))
			return nil
		},
	}
	return cmd
}
