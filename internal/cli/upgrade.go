package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/defaults"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/module"
)

func newUpgradeCmd() *cobra.Command {
	var to uint64

	cmd := &cobra.Command{
		Use:   "upgrade [path]",
		Short: "Upgrade every stream in a file to a target mdversion and its defaults to the latest",
		Long: `Load a file, upgrade every module stream it contains to the requested
mdversion and every Defaults document to the latest Defaults mdversion,
and print the result to stdout.

Examples:
  modulemd-validate upgrade --to 3 ./bash.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx := module.NewIndex()
			failures, err := idx.UpdateFromFile(args[0], strictFlag())
			if err != nil {
				return fmt.Errorf("reading %q: %w", args[0], err)
			}
			if len(failures) > 0 {
				return fmt.Errorf("%q has %d unreadable subdocument(s); fix them before upgrading", args[0], len(failures))
			}
			if err := idx.UpgradeStreams(to); err != nil {
				return fmt.Errorf("upgrading streams: %w", err)
			}
			if err := idx.UpgradeDefaults(defaults.LatestMDVersion); err != nil {
				return fmt.Errorf("upgrading defaults: %w", err)
			}
			out, err := idx.DumpToString()
			if err != nil {
				return fmt.Errorf("emitting upgraded document: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&to, "to", 3, "target mdversion for module streams")
	return cmd
}
