package domain

import (
	"sort"
	"strings"
	"sync"

	m "github.com/mouse-blink/rootscan/internal/model"
)

type subscription struct {
	listener Listener
	kind     m.InterestKind
}

// OffsetGroup holds the listeners that want the entries found under one
// offset of a source.
type OffsetGroup struct {
	Offset string
	Mount  m.Locator

	// mu is shared with the owning source.
	mu   *sync.RWMutex
	subs []subscription
	// nested is set when another offset of the same source extends this one,
	// so an entry under Offset may still belong to a deeper group.
	nested bool
}

// Listeners returns the subscribed listeners in subscription order.
func (g *OffsetGroup) Listeners() []Listener {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Listener, 0, len(g.subs))
	for _, sub := range g.subs {
		out = append(out, sub.listener)
	}

	return out
}

// Kind returns the interest l registered for this group.
func (g *OffsetGroup) Kind(l Listener) m.InterestKind {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.kind(l)
}

func (g *OffsetGroup) kind(l Listener) m.InterestKind {
	for _, sub := range g.subs {
		if sub.listener == l {
			return sub.kind
		}
	}

	return m.InterestNone
}

func (g *OffsetGroup) hasListeners() bool {
	return len(g.subs) > 0
}

func (g *OffsetGroup) subscribed(l Listener) bool {
	return g.kind(l) != m.InterestNone
}

// ResourceSource is one physical directory or archive of a root set, with the
// offsets declared for it and the listeners interested in each offset.
//
// Only a scan round of the owning root set changes groups and subscriptions,
// and it takes the write lock for each change. The exported readers may be
// called from any goroutine while a round runs.
type ResourceSource struct {
	Path        m.Path
	URL         m.Locator
	IsDirectory bool

	mu sync.RWMutex
	// groups is kept sorted by descending offset.
	groups []*OffsetGroup
}

func newResourceSource(path m.Path, url m.Locator, isDirectory bool) *ResourceSource {
	return &ResourceSource{Path: path, URL: url, IsDirectory: isDirectory}
}

// AddOffset declares a mount point inside the source. A leading slash is
// dropped and offsets already declared are ignored.
func (s *ResourceSource) AddOffset(offset string, mount m.Locator) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.addOffset(offset, mount)
}

func (s *ResourceSource) addOffset(offset string, mount m.Locator) {
	offset = strings.TrimPrefix(offset, "/")

	i := sort.Search(len(s.groups), func(i int) bool {
		return s.groups[i].Offset <= offset
	})
	if i < len(s.groups) && s.groups[i].Offset == offset {
		return
	}

	s.groups = append(s.groups, nil)
	copy(s.groups[i+1:], s.groups[i:])
	s.groups[i] = &OffsetGroup{Offset: offset, Mount: mount, mu: &s.mu}

	s.markNested()
}

func (s *ResourceSource) markNested() {
	for _, g := range s.groups {
		g.nested = false

		if g.Offset == "" {
			continue
		}

		for _, other := range s.groups {
			if other != g && len(other.Offset) > len(g.Offset) && strings.HasPrefix(other.Offset, g.Offset) {
				g.nested = true

				break
			}
		}
	}
}

// Groups returns the offset groups in descending offset order.
func (s *ResourceSource) Groups() []*OffsetGroup {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*OffsetGroup(nil), s.groups...)
}

// Group returns the group for offset, if declared.
func (s *ResourceSource) Group(offset string) (*OffsetGroup, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.group(offset)
}

func (s *ResourceSource) group(offset string) (*OffsetGroup, bool) {
	for _, g := range s.groups {
		if g.Offset == offset {
			return g, true
		}
	}

	return nil, false
}

// DeclaredOffsets returns the non-empty offsets in descending order.
func (s *ResourceSource) DeclaredOffsets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []string

	for _, g := range s.groups {
		if g.Offset != "" {
			out = append(out, g.Offset)
		}
	}

	return out
}

// IsTestResources reports whether the source is a compiled test output
// directory.
func (s *ResourceSource) IsTestResources() bool {
	return s.interesting(&OffsetGroup{Mount: s.URL}).IsTestResources()
}

// HasListeners reports whether any offset has at least one subscriber.
func (s *ResourceSource) HasListeners() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.groups {
		if g.hasListeners() {
			return true
		}
	}

	return false
}

type stagedInterest struct {
	group *OffsetGroup
	sub   subscription
}

// ensureDefaultGroup creates the whole-source group with the empty offset
// when no offset has been declared at all. A source reached only through
// offsets keeps just those.
func (s *ResourceSource) ensureDefaultGroup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.groups) == 0 {
		s.addOffset("", s.URL)
	}
}

// checkInterest asks every candidate about every offset without changing any
// subscription, so a failing listener leaves the source untouched.
func (s *ResourceSource) checkInterest(candidates []Listener) ([]stagedInterest, error) {
	s.ensureDefaultGroup()

	var staged []stagedInterest

	for _, l := range candidates {
		name := listenerName(l)

		for _, g := range s.groups {
			if g.subscribed(l) {
				continue
			}

			res := s.interesting(g)

			var kind m.InterestKind

			err := guard(m.PhaseInterest, name, func() error {
				var err error
				kind, err = l.Interested(res)

				return err
			})
			if err != nil {
				return nil, err
			}

			if kind != m.InterestNone {
				staged = append(staged, stagedInterest{group: g, sub: subscription{listener: l, kind: kind}})
			}
		}
	}

	return staged, nil
}

func applyInterest(staged []stagedInterest) {
	for _, st := range staged {
		st.group.mu.Lock()
		st.group.subs = append(st.group.subs, st.sub)
		st.group.mu.Unlock()
	}
}

// AskListeners records which candidates want to hear about each offset. The
// whole-source group with the empty offset is created first if missing.
func (s *ResourceSource) AskListeners(candidates []Listener) error {
	staged, err := s.checkInterest(candidates)
	if err != nil {
		return err
	}

	applyInterest(staged)

	return nil
}

// RemoveSingleFireListeners drops every ONCE subscription.
func (s *ResourceSource) RemoveSingleFireListeners() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.groups {
		kept := g.subs[:0]

		for _, sub := range g.subs {
			if sub.kind != m.InterestOnce {
				kept = append(kept, sub)
			}
		}

		for i := len(kept); i < len(g.subs); i++ {
			g.subs[i] = subscription{}
		}

		g.subs = kept
	}
}

// CollectInUseListeners adds every subscribed listener to acc.
func (s *ResourceSource) CollectInUseListeners(acc *listenerSet) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.groups {
		for _, sub := range g.subs {
			acc.add(sub.listener)
		}
	}
}

// resolve finds the group an archive entry belongs to: the first non-empty
// offset, in descending order, that prefixes name, else the empty offset.
// Among offsets that all prefix the same name the descending order puts the
// longest first, so nested mounts win over their parents.
func (s *ResourceSource) resolve(name string) *OffsetGroup {
	var fallback *OffsetGroup

	for _, g := range s.groups {
		if g.Offset == "" {
			fallback = g

			continue
		}

		if strings.HasPrefix(name, g.Offset) {
			return g
		}
	}

	return fallback
}

// onlyDefaultGroup reports whether the whole-source group is the only one.
func (s *ResourceSource) onlyDefaultGroup() bool {
	return len(s.groups) == 1 && s.groups[0].Offset == ""
}

func (s *ResourceSource) interesting(g *OffsetGroup) m.InterestingResource {
	return m.InterestingResource{
		URL:         g.Mount,
		Offset:      g.Offset,
		Path:        s.Path,
		IsDirectory: s.IsDirectory,
	}
}

// Summary returns a display snapshot of the source.
func (s *ResourceSource) Summary() m.SourceSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary := m.SourceSummary{Path: s.Path, URL: s.URL, IsDirectory: s.IsDirectory}

	for _, g := range s.groups {
		summary.Offsets = append(summary.Offsets, m.OffsetSummary{
			Offset:    g.Offset,
			Mount:     g.Mount,
			Listeners: len(g.subs),
		})
	}

	return summary
}
