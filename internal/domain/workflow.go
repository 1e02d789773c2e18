package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/rootscan/internal/adapter"
	m "github.com/mouse-blink/rootscan/internal/model"
)

// ScanArgs names the root sets a command works on.
type ScanArgs struct {
	Sets []m.RootSet
}

// CollectArgs configures a collecting scan.
type CollectArgs struct {
	ScanArgs
	Patterns    []string
	IncludeDirs bool
	Fingerprint bool
	SkipTests   bool
	// Parallel bounds how many root sets are scanned at once. Zero means no
	// limit.
	Parallel int
}

// Workflow defines the operations the CLI runs on top of the scanner.
type Workflow interface {
	Sources(args ScanArgs) ([]m.SourceSummary, error)
	Collect(ctx context.Context, args CollectArgs) ([]m.CatalogRecord, error)
	Index(ctx context.Context, args CollectArgs, store adapter.CatalogStore) (int, error)
}

type workflow struct {
	scanner *Scanner
}

// NewWorkflow creates a new Workflow backed by scanner.
func NewWorkflow(scanner *Scanner) Workflow {
	return &workflow{scanner: scanner}
}

// Sources resolves every root set without notifying any listener.
func (w *workflow) Sources(args ScanArgs) ([]m.SourceSummary, error) {
	var summaries []m.SourceSummary

	for _, set := range args.Sets {
		sources, err := w.scanner.Scan(RootSetKey(set.Roots), set.Roots, false)
		if err != nil {
			return nil, fmt.Errorf("root set %s: %w", set.Name, err)
		}

		for _, src := range sources {
			summaries = append(summaries, src.Summary())
		}
	}

	return summaries, nil
}

// Collect scans the root sets concurrently, one collecting listener per set,
// and returns every recorded resource.
func (w *workflow) Collect(ctx context.Context, args CollectArgs) ([]m.CatalogRecord, error) {
	results := make([][]m.CatalogRecord, len(args.Sets))

	g, ctx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		g.SetLimit(args.Parallel)
	}

	for i, set := range args.Sets {
		i, set := i, set

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			records, err := w.collectSet(set, args)
			if err != nil {
				return fmt.Errorf("root set %s: %w", set.Name, err)
			}

			results[i] = records

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []m.CatalogRecord
	for _, records := range results {
		all = append(all, records...)
	}

	sortRecords(all)

	return all, nil
}

// collectSet restricts a fresh listener to the sources of set, so a scan of
// another set that happens to pick it up from the registry delivers nothing.
func (w *workflow) collectSet(set m.RootSet, args CollectArgs) ([]m.CatalogRecord, error) {
	id := RootSetKey(set.Roots)

	sources, err := w.scanner.Scan(id, set.Roots, false)
	if err != nil {
		return nil, err
	}

	paths := make([]m.Path, 0, len(sources))
	for _, src := range sources {
		paths = append(paths, src.Path)
	}

	if len(paths) == 0 {
		return nil, nil
	}

	collector, err := NewCollectingListener(CollectOptions{
		Kind:              m.InterestOnce,
		Sources:           paths,
		Patterns:          args.Patterns,
		IncludeDirs:       args.IncludeDirs,
		Fingerprint:       args.Fingerprint,
		SkipTestResources: args.SkipTests,
	})
	if err != nil {
		return nil, err
	}

	w.scanner.Register(collector)

	if _, err := w.scanner.Scan(id, set.Roots, true); err != nil {
		return nil, err
	}

	records := collector.Records()
	for i := range records {
		records[i].RootSet = set.Name
	}

	return records, nil
}

// Index collects fingerprints and saves them to store.
func (w *workflow) Index(ctx context.Context, args CollectArgs, store adapter.CatalogStore) (int, error) {
	args.Fingerprint = true

	records, err := w.Collect(ctx, args)
	if err != nil {
		return 0, err
	}

	if err := store.SaveRecords(records); err != nil {
		return 0, fmt.Errorf("failed to save catalog: %w", err)
	}

	return len(records), nil
}
