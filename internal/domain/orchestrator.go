package domain

import (
	m "github.com/mouse-blink/rootscan/internal/model"
)

// round runs one triggered scan of c: STARTING, interest checks for pending
// listeners, traversal and delivery, pruning of ONCE subscriptions, COMPLETE.
// A fault anywhere ends the round without the COMPLETE notification.
func (s *Scanner) round(c *rootSetContext) error {
	c.roundMu.Lock()
	defer c.roundMu.Unlock()

	pending := c.pendingSnapshot()

	participants := newListenerSet()
	for _, src := range c.sources {
		src.CollectInUseListeners(participants)
	}

	participants.addAll(pending)

	s.logger.Debug("scan round starting", "id", c.id, "sources", len(c.sources), "listeners", len(participants.list()))

	if err := notify(participants, m.ScanStarting); err != nil {
		return err
	}

	if len(pending) > 0 {
		if err := askForInterest(c.sources, pending); err != nil {
			return err
		}

		c.dropPending(len(pending))
	}

	for _, src := range c.sources {
		if err := s.engine.traverse(src); err != nil {
			return err
		}
	}

	for _, src := range c.sources {
		src.RemoveSingleFireListeners()
	}

	if err := notify(participants, m.ScanComplete); err != nil {
		return err
	}

	s.logger.Debug("scan round complete", "id", c.id)

	return nil
}

// askForInterest checks every pending listener against every source and
// applies the subscriptions only when no listener failed.
func askForInterest(sources []*ResourceSource, pending []Listener) error {
	var staged []stagedInterest

	for _, src := range sources {
		st, err := src.checkInterest(pending)
		if err != nil {
			return err
		}

		staged = append(staged, st...)
	}

	applyInterest(staged)

	return nil
}

// notify tells every listener about action. A listener that panics stops the
// notification and the round.
func notify(listeners *listenerSet, action m.ScanAction) error {
	for _, l := range listeners.list() {
		err := guard(m.PhaseNotify, listenerName(l), func() error {
			l.ScanAction(action)

			return nil
		})
		if err != nil {
			return err
		}
	}

	return nil
}
