package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/merge"
	"github.com/fedora-modularity/libmodulemd-sub004/pkg/modulemd/module"
)

func newMergeCmd() *cobra.Command {
	var priorities []int
	var override bool
	var strictDefaultStreams bool

	cmd := &cobra.Command{
		Use:   "merge [path...]",
		Short: "Merge several module index files into one",
		Long: `Load each given file into its own ModuleIndex, pair it with the
--priority value at the same position (defaulting to 0 for any file
without one), and merge them in listed order into a single document
printed to stdout.

Examples:
  modulemd-validate merge base.yaml override.yaml --priority 0 --priority 1
  modulemd-validate merge base.yaml override.yaml --priority 0 --priority 1 --override`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			merger := merge.New()
			for i, path := range args {
				idx := module.NewIndex()
				failures, err := idx.UpdateFromFile(path, strictFlag())
				if err != nil {
					return fmt.Errorf("reading %q: %w", path, err)
				}
				if len(failures) > 0 {
					return fmt.Errorf("%q has %d unreadable subdocument(s); fix them before merging", path, len(failures))
				}
				priority := 0
				if i < len(priorities) {
					priority = priorities[i]
				}
				merger.AddIndex(idx, priority)
			}

			resolved, err := merger.Resolve(override, strictDefaultStreams)
			if err != nil {
				return fmt.Errorf("merging: %w", err)
			}
			out, err := resolved.DumpToString()
			if err != nil {
				return fmt.Errorf("emitting merged document: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&priorities, "priority", nil, "priority for the file at the same position (repeatable)")
	cmd.Flags().BoolVar(&override, "override", false, "break equal-priority conflicts in favor of the later-listed file")
	cmd.Flags().BoolVar(&strictDefaultStreams, "strict-default-streams", true, "fail on an equal-priority default_stream conflict instead of dropping it")
	return cmd
}
