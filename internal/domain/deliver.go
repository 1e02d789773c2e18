package domain

import (
	"io"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// flush offers batch to every listener of g and delivers what each selects.
// The first fault stops the round.
func (e *engine) flush(g *OffsetGroup, batch []m.ScanResource) error {
	for _, sub := range g.subs {
		l := sub.listener
		name := listenerName(l)

		var wanted []m.ScanResource

		err := guard(m.PhaseSelect, name, func() error {
			var err error
			wanted, err = l.Select(batch)

			return err
		})
		if err != nil {
			return err
		}

		for _, res := range wanted {
			if err := e.deliver(l, name, res); err != nil {
				return err
			}
		}
	}

	return nil
}

// deliver opens the content of res, hands it to l and closes it again.
// Directory entries have no content and are delivered with a nil reader.
func (e *engine) deliver(l Listener, name string, res m.ScanResource) error {
	if res.IsDir {
		return guard(m.PhaseDeliver, name, func() error {
			return l.Deliver(res, nil)
		})
	}

	stream, err := e.open(res)
	if err != nil {
		return err
	}

	defer func() { _ = stream.Close() }()

	return guard(m.PhaseDeliver, name, func() error {
		return l.Deliver(res, stream)
	})
}

func (e *engine) open(res m.ScanResource) (io.ReadCloser, error) {
	if res.Entry != nil {
		rc, err := res.Entry.Open()
		if err != nil {
			return nil, &m.ScanError{Phase: m.PhaseArchive, Component: string(res.URL), Err: err}
		}

		return rc, nil
	}

	rc, err := e.fs.Open(res.File)
	if err != nil {
		return nil, &m.ScanError{Phase: m.PhaseWalk, Component: string(res.File), Err: err}
	}

	return rc, nil
}
