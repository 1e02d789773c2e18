package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/rootscan/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

var listMatchFlags []string
var listDirsFlag bool
var listHashFlag bool
var listSkipTestsFlag bool
var listParallelFlag int

const listLongDescription = `Scan the loading roots and list the resources found under them.

Patterns are shell globs matched against the full resource name and against
its last element, so "*.class" matches com/example/App.class.`

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [roots...]",
		Short: "List the resources under the loading roots",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := rootSets(args)
			if err != nil {
				return err
			}

			records, err := workflow.Collect(cmd.Context(), domain.CollectArgs{
				ScanArgs:    domain.ScanArgs{Sets: sets},
				Patterns:    listMatchFlags,
				IncludeDirs: listDirsFlag,
				Fingerprint: listHashFlag,
				SkipTests:   listSkipTestsFlag,
				Parallel:    listParallelFlag,
			})
			if err != nil {
				return err
			}

			return ui.DisplayResources(records)
		},
	}
	cmd.Flags().StringArrayVarP(&listMatchFlags, "match", "m", nil, "only list resources matching the glob (can be repeated)")
	cmd.Flags().BoolVar(&listDirsFlag, "dirs", false, "include directory entries")
	cmd.Flags().BoolVar(&listHashFlag, "hash", false, "read every resource and show its size and xxh3 hash")
	cmd.Flags().BoolVar(&listSkipTestsFlag, "skip-tests", false, "ignore target/test-classes directories")
	cmd.Flags().IntVarP(&listParallelFlag, "parallel", "p", 0, "number of root sets scanned at once (0 means all)")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
