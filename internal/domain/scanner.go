// Package domain contains the scan engine: loading-root parsing, resource
// sources with their offset groups, traversal, delivery and the cache of
// scanned root sets.
package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/singleflight"

	"github.com/mouse-blink/rootscan/internal/adapter"
	m "github.com/mouse-blink/rootscan/internal/model"
)

// RootSetID identifies one ordered collection of loading roots.
type RootSetID string

// RootSetKey derives a RootSetID from the roots themselves, for callers that
// have no identity of their own. Order matters.
func RootSetKey(roots []string) RootSetID {
	data := []byte(strings.Join(roots, "\x00"))

	return RootSetID(fmt.Sprintf("%x", xxh3.Hash128(data).Bytes()))
}

// rootSetContext is the cached state of one root set.
type rootSetContext struct {
	id      RootSetID
	sources []*ResourceSource

	// roundMu is held for a whole triggered scan.
	roundMu sync.Mutex

	pendingMu sync.Mutex
	pending   []Listener
}

func (c *rootSetContext) addPending(l Listener) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()

	c.pending = append(c.pending, l)
}

func (c *rootSetContext) pendingSnapshot() []Listener {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()

	return slices.Clone(c.pending)
}

// dropPending removes the first n pending listeners; later registrations stay
// queued for the next round.
func (c *rootSetContext) dropPending(n int) {
	c.pendingMu.Lock()
	defer c.pendingMu.Unlock()

	c.pending = slices.Delete(c.pending, 0, n)
}

// Scanner shares one walk of each root set between all registered listeners.
// Root sets are cached for the lifetime of the Scanner unless evicted
// explicitly with Evict or Reset.
type Scanner struct {
	engine *engine
	logger *log.Logger

	mu        sync.Mutex
	listeners []Listener
	contexts  map[RootSetID]*rootSetContext

	building singleflight.Group
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger replaces the default stderr logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// NewScanner constructs a Scanner reading sources through fsAdapter.
func NewScanner(fsAdapter adapter.SourceFSAdapter, opts ...Option) *Scanner {
	s := &Scanner{
		contexts: make(map[RootSetID]*rootSetContext),
		logger: log.NewWithOptions(os.Stderr, log.Options{
			Prefix: "rootscan",
		}),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.engine = &engine{fs: fsAdapter, logger: s.logger}

	return s
}

// Register adds l to the listeners of every future root set and queues it
// for an interest check on the next triggered scan of every cached one.
// Registering the same listener twice has no effect.
func (s *Scanner) Register(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.listeners, l) {
		return
	}

	s.listeners = append(s.listeners, l)

	for _, c := range s.contexts {
		c.addPending(l)
	}
}

// Listeners returns the registered listeners in registration order.
func (s *Scanner) Listeners() []Listener {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.listeners)
}

// Scan returns the sources of the root set id, building them from roots the
// first time the id is seen. When trigger is set, a scan round runs first:
// pending listeners are asked for interest, interested listeners receive the
// resources, and ONCE subscriptions are dropped afterwards.
func (s *Scanner) Scan(id RootSetID, roots []string, trigger bool) ([]*ResourceSource, error) {
	c, err := s.context(id, roots)
	if err != nil {
		return nil, err
	}

	if !trigger {
		return c.sources, nil
	}

	if err := s.round(c); err != nil {
		return nil, err
	}

	return c.sources, nil
}

// Sources returns the cached sources of id without side effects.
func (s *Scanner) Sources(id RootSetID) ([]*ResourceSource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contexts[id]
	if !ok {
		return nil, false
	}

	return c.sources, true
}

// Pending returns the listeners still waiting for an interest check in id.
func (s *Scanner) Pending(id RootSetID) []Listener {
	s.mu.Lock()
	c, ok := s.contexts[id]
	s.mu.Unlock()

	if !ok {
		return nil
	}

	return c.pendingSnapshot()
}

// Evict forgets the cached root set id. The next scan of id rebuilds it and
// asks every registered listener again.
func (s *Scanner) Evict(id RootSetID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.contexts[id]
	delete(s.contexts, id)

	return ok
}

// Reset forgets every cached root set and every registered listener.
func (s *Scanner) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contexts = make(map[RootSetID]*rootSetContext)
	s.listeners = nil
}

// Len returns the number of cached root sets.
func (s *Scanner) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.contexts)
}

func (s *Scanner) lookup(id RootSetID) (*rootSetContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.contexts[id]

	return c, ok
}

// context returns the cached context for id, building it once even when
// several goroutines ask for the same id concurrently.
func (s *Scanner) context(id RootSetID, roots []string) (*rootSetContext, error) {
	if c, ok := s.lookup(id); ok {
		return c, nil
	}

	v, err, _ := s.building.Do(string(id), func() (any, error) {
		if c, ok := s.lookup(id); ok {
			return c, nil
		}

		sources, err := s.resolveSources(roots)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		c := &rootSetContext{
			id:      id,
			sources: sources,
			pending: slices.Clone(s.listeners),
		}
		s.contexts[id] = c

		s.logger.Debug("root set cached", "id", id, "roots", len(roots), "sources", len(sources))

		return c, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*rootSetContext), nil
}

// resolveSources parses roots and merges the ones that name the same
// physical file. Roots that cannot be parsed or do not exist are logged and
// skipped.
func (s *Scanner) resolveSources(roots []string) ([]*ResourceSource, error) {
	byPath := make(map[m.Path]*ResourceSource, len(roots))
	sources := make([]*ResourceSource, 0, len(roots))

	for _, raw := range roots {
		desc, err := ParseRootURL(raw)
		if err != nil {
			if errors.Is(err, ErrUnsupportedLocator) {
				s.logger.Debug("unsupported root skipped", "root", raw)
			} else {
				s.logger.Info("root cannot be parsed", "root", raw, "err", err)
			}

			continue
		}

		path, err := s.engine.fs.Canonical(desc.Path)
		if err != nil {
			return nil, &m.ScanError{Phase: m.PhaseParse, Component: raw, Err: err}
		}

		if existing, ok := byPath[path]; ok {
			declare(existing, desc)

			continue
		}

		info, err := s.engine.fs.FileInfo(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				s.logger.Info("root cannot be found", "path", path)

				continue
			}

			return nil, &m.ScanError{Phase: m.PhaseParse, Component: raw, Err: err}
		}

		src := newResourceSource(path, desc.Container(), info.IsDir())
		declare(src, desc)

		byPath[path] = src
		sources = append(sources, src)
	}

	return sources, nil
}

// declare records the part of src that desc names: its offset, or the whole
// source for a root without one.
func declare(src *ResourceSource, desc m.SourceDescriptor) {
	if desc.HasOffset {
		src.AddOffset(desc.Offset, desc.URL)

		return
	}

	src.AddOffset("", src.URL)
}
