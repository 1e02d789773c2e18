package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/rootscan/internal/domain"
	m "github.com/mouse-blink/rootscan/internal/model"
)

// indexCmd represents the index command.
var indexCmd = newIndexCmd()

var indexDBFlag string
var indexMatchFlags []string
var indexParallelFlag int

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index [roots...]",
		Short: "Fingerprint the resources and store them in a SQLite catalog",
		Long: `Scan the loading roots, hash the content of every resource with xxh3 and
write the results to a SQLite catalog, one row per root set and resource.
Re-indexing a root set updates the rows in place.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			sets, err := rootSets(args)
			if err != nil {
				return err
			}

			db := m.Path(indexDBFlag)

			store, err := openCatalog(db)
			if err != nil {
				return err
			}

			defer func() {
				if closeErr := store.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("failed to close catalog: %w", closeErr)
				}
			}()

			count, err := workflow.Index(cmd.Context(), domain.CollectArgs{
				ScanArgs: domain.ScanArgs{Sets: sets},
				Patterns: indexMatchFlags,
				Parallel: indexParallelFlag,
			}, store)
			if err != nil {
				return err
			}

			return ui.DisplayIndexed(count, db)
		},
	}
	cmd.Flags().StringVar(&indexDBFlag, "db", ".rootscan/catalog.db", "path of the SQLite catalog")
	cmd.Flags().StringArrayVarP(&indexMatchFlags, "match", "m", nil, "only index resources matching the glob (can be repeated)")
	cmd.Flags().IntVarP(&indexParallelFlag, "parallel", "p", 0, "number of root sets scanned at once (0 means all)")

	return cmd
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
