package domain

import (
	"fmt"
	"io"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// Listener is implemented by the subsystems that share a scan. The scanner
// keys its bookkeeping on listener values, so implementations must be
// comparable; pointer receivers are the norm.
type Listener interface {
	// Interested is asked once per offset of every source the listener has
	// not been checked against yet.
	Interested(res m.InterestingResource) (m.InterestKind, error)

	// Select receives a batch of discovered resources and returns the ones to
	// deliver. Returning nil skips delivery. The batch is reused after Select
	// returns, copy elements out if they are kept.
	Select(batch []m.ScanResource) ([]m.ScanResource, error)

	// Deliver hands over one selected resource. r is nil for directory
	// entries and is closed as soon as Deliver returns.
	Deliver(res m.ScanResource, r io.Reader) error

	// ScanAction brackets every scan round the listener takes part in.
	ScanAction(action m.ScanAction)
}

type namedListener interface {
	Name() string
}

func listenerName(l Listener) string {
	if n, ok := l.(namedListener); ok {
		return n.Name()
	}

	return fmt.Sprintf("%T", l)
}

// guard runs a listener callback and turns its error, or a panic, into a
// ScanError naming the listener.
func guard(phase m.Phase, component string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &m.ScanError{Phase: phase, Component: component, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if callErr := fn(); callErr != nil {
		return &m.ScanError{Phase: phase, Component: component, Err: callErr}
	}

	return nil
}

// listenerSet is an insertion-ordered set of listeners.
type listenerSet struct {
	order []Listener
	seen  map[Listener]struct{}
}

func newListenerSet() *listenerSet {
	return &listenerSet{seen: make(map[Listener]struct{})}
}

func (s *listenerSet) add(l Listener) {
	if _, ok := s.seen[l]; ok {
		return
	}

	s.seen[l] = struct{}{}
	s.order = append(s.order, l)
}

func (s *listenerSet) addAll(ls []Listener) {
	for _, l := range ls {
		s.add(l)
	}
}

func (s *listenerSet) list() []Listener {
	return s.order
}
