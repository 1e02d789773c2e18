package domain

import (
	"fmt"
	"io"
	"path"
	"sort"
	"sync"

	"github.com/zeebo/xxh3"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// CollectOptions configures a CollectingListener.
type CollectOptions struct {
	// Kind is the interest returned for accepted sources. Defaults to ONCE.
	Kind m.InterestKind
	// Sources restricts interest to these physical paths. Empty means all.
	Sources []m.Path
	// Patterns are path.Match globs tested against resource names. Empty
	// means every resource matches.
	Patterns []string
	// IncludeDirs records directory entries too.
	IncludeDirs bool
	// Fingerprint reads every matching file and records its size and xxh3
	// hash.
	Fingerprint bool
	// SkipTestResources ignores compiled test output directories.
	SkipTestResources bool
}

// CollectingListener records the resources it is offered. It is safe to
// share between concurrently scanned root sets.
type CollectingListener struct {
	opts    CollectOptions
	sources map[m.Path]struct{}

	mu        sync.Mutex
	records   []m.CatalogRecord
	index     map[string]int
	completed int
}

// NewCollectingListener validates the patterns and builds the listener.
func NewCollectingListener(opts CollectOptions) (*CollectingListener, error) {
	for _, p := range opts.Patterns {
		if _, err := path.Match(p, ""); err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
	}

	if opts.Kind == m.InterestNone {
		opts.Kind = m.InterestOnce
	}

	c := &CollectingListener{
		opts:  opts,
		index: make(map[string]int),
	}

	if len(opts.Sources) > 0 {
		c.sources = make(map[m.Path]struct{}, len(opts.Sources))
		for _, p := range opts.Sources {
			c.sources[p] = struct{}{}
		}
	}

	return c, nil
}

func (c *CollectingListener) Name() string {
	return "collector"
}

func (c *CollectingListener) Interested(res m.InterestingResource) (m.InterestKind, error) {
	if c.opts.SkipTestResources && res.IsTestResources() {
		return m.InterestNone, nil
	}

	if c.sources != nil {
		if _, ok := c.sources[res.Path]; !ok {
			return m.InterestNone, nil
		}
	}

	return c.opts.Kind, nil
}

func (c *CollectingListener) Select(batch []m.ScanResource) ([]m.ScanResource, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var wanted []m.ScanResource

	for _, res := range batch {
		if res.IsDir && !c.opts.IncludeDirs {
			continue
		}

		if !c.matches(res.Name) {
			continue
		}

		c.record(m.CatalogRecord{
			Source: res.Source,
			Offset: res.Offset,
			Name:   res.Name,
			IsDir:  res.IsDir,
		})

		if c.opts.Fingerprint && !res.IsDir {
			wanted = append(wanted, res)
		}
	}

	return wanted, nil
}

func (c *CollectingListener) Deliver(res m.ScanResource, r io.Reader) error {
	if r == nil {
		return nil
	}

	h := xxh3.New()

	n, err := io.Copy(h, r)
	if err != nil {
		return fmt.Errorf("read %s: %w", res.Name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.record(m.CatalogRecord{
		Source: res.Source,
		Offset: res.Offset,
		Name:   res.Name,
		Size:   n,
		Hash:   fmt.Sprintf("%016x", h.Sum64()),
	})

	return nil
}

func (c *CollectingListener) ScanAction(action m.ScanAction) {
	if action != m.ScanComplete {
		return
	}

	c.mu.Lock()
	c.completed++
	c.mu.Unlock()
}

// Records returns what has been collected, ordered by source, offset and name.
func (c *CollectingListener) Records() []m.CatalogRecord {
	c.mu.Lock()
	out := append([]m.CatalogRecord(nil), c.records...)
	c.mu.Unlock()

	sortRecords(out)

	return out
}

// Completed returns how many scan rounds finished with this listener taking
// part.
func (c *CollectingListener) Completed() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.completed
}

func (c *CollectingListener) matches(name string) bool {
	if len(c.opts.Patterns) == 0 {
		return true
	}

	for _, p := range c.opts.Patterns {
		if ok, _ := path.Match(p, name); ok {
			return true
		}

		if ok, _ := path.Match(p, path.Base(name)); ok {
			return true
		}
	}

	return false
}

// record inserts r or, for a resource seen before, fills in its content
// fields. Callers hold c.mu.
func (c *CollectingListener) record(r m.CatalogRecord) {
	key := r.Key()

	if i, ok := c.index[key]; ok {
		if r.Hash != "" {
			c.records[i].Size = r.Size
			c.records[i].Hash = r.Hash
		}

		return
	}

	c.index[key] = len(c.records)
	c.records = append(c.records, r)
}

func sortRecords(records []m.CatalogRecord) {
	sort.Slice(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.RootSet != b.RootSet {
			return a.RootSet < b.RootSet
		}

		if a.Source != b.Source {
			return a.Source < b.Source
		}

		if a.Offset != b.Offset {
			return a.Offset < b.Offset
		}

		return a.Name < b.Name
	})
}
