// Package cmd provides the root command and CLI setup for rootscan.
package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/rootscan/internal/adapter"
	"github.com/mouse-blink/rootscan/internal/controller"
	"github.com/mouse-blink/rootscan/internal/domain"
	m "github.com/mouse-blink/rootscan/internal/model"
)

const argsSetName = "args"

var logger *log.Logger
var fsAdapter adapter.SourceFSAdapter
var scanner *domain.Scanner
var workflow domain.Workflow
var ui controller.UI
var openCatalog = adapter.NewCatalogStore

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "rootscan"})
	ui = controller.NewUI(rootCmd)
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	scanner = domain.NewScanner(fsAdapter, domain.WithLogger(logger))
	workflow = domain.NewWorkflow(scanner)
}

var configFlag string
var setFlags []string
var verboseFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rootscan [roots...]",
		Short: "Shared resource scanner for loading roots",
		Long: `rootscan walks the directories and archives of a set of loading roots once
and shares what it finds between every interested consumer.

Loading roots can be given as:
  - file:/srv/app/classes/                  a directory
  - jar:file:/srv/lib/a.jar                 a whole archive
  - jar:file:/srv/app.war!/WEB-INF/classes/  an offset inside an archive
  - /srv/app/classes                        a plain path

Without a subcommand the resolved sources and their offsets are shown.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logger.SetLevel(log.DebugLevel)
			}
		},
		RunE: func(_ *cobra.Command, args []string) error {
			sets, err := rootSets(args)
			if err != nil {
				return err
			}

			sources, err := workflow.Sources(domain.ScanArgs{Sets: sets})
			if err != nil {
				return err
			}

			return ui.DisplaySources(sources)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML file with named root sets")
	cmd.PersistentFlags().StringArrayVarP(&setFlags, "set", "s", nil, "root set from the config file to use (can be repeated, default all)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// rootSets combines the positional roots, as one set, with the sets selected
// from the config file.
func rootSets(args []string) ([]m.RootSet, error) {
	var sets []m.RootSet

	if len(args) > 0 {
		sets = append(sets, m.RootSet{Name: argsSetName, Roots: args})
	}

	if configFlag != "" {
		fromFile, err := adapter.ParseRootSetFile(m.Path(configFlag))
		if err != nil {
			return nil, err
		}

		selected, err := selectSets(fromFile, setFlags)
		if err != nil {
			return nil, err
		}

		sets = append(sets, selected...)
	} else if len(setFlags) > 0 {
		return nil, fmt.Errorf("--set requires --config")
	}

	if len(sets) == 0 {
		return nil, fmt.Errorf("no loading roots given")
	}

	return sets, nil
}

func selectSets(sets []m.RootSet, names []string) ([]m.RootSet, error) {
	if len(names) == 0 {
		return sets, nil
	}

	var out []m.RootSet

	for _, name := range names {
		i := slices.IndexFunc(sets, func(s m.RootSet) bool { return s.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("unknown root set %q", name)
		}

		out = append(out, sets[i])
	}

	return out, nil
}
