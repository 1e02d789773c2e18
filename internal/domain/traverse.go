package domain

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mouse-blink/rootscan/internal/adapter"
	m "github.com/mouse-blink/rootscan/internal/model"
)

// BatchCapacity is the number of resources buffered before they are handed to
// the listeners of their offset.
const BatchCapacity = 3000

const hiddenPrefix = "."

// engine walks sources and delivers what it finds.
type engine struct {
	fs     adapter.SourceFSAdapter
	logger *log.Logger
}

// flushFunc hands a full or final batch of one offset group to its listeners.
type flushFunc func(g *OffsetGroup, batch []m.ScanResource) error

// router assigns entries to offset groups and batches them. Entries must
// arrive grouped the way the container stores them; a change of group
// flushes the previous group's batch.
type router struct {
	source *ResourceSource
	single bool
	active *OffsetGroup
	strip  int
	batch  []m.ScanResource
	flush  flushFunc
	routed int
}

func newRouter(src *ResourceSource, flush flushFunc) *router {
	r := &router{source: src, flush: flush}

	if src.onlyDefaultGroup() {
		r.single = true
		r.active = src.groups[0]
	}

	return r
}

// route places the entry called name into the active group, switching groups
// when the entry is outside the active offset. build is only called for
// groups that have listeners.
func (r *router) route(name string, build func(g *OffsetGroup, rel string) m.ScanResource) error {
	if !r.single && r.needsResolve(name) {
		g := r.source.resolve(name)
		if g != r.active {
			if err := r.drain(); err != nil {
				return err
			}

			r.active = g
			r.strip = 0

			if g != nil {
				r.strip = len(g.Offset)
			}
		}
	}

	if r.active == nil || !r.active.hasListeners() {
		return nil
	}

	rel := strings.TrimSuffix(name[r.strip:], "/")
	if rel == "" {
		// the mount point itself
		return nil
	}

	r.batch = append(r.batch, build(r.active, rel))
	r.routed++

	if len(r.batch) >= BatchCapacity {
		return r.drain()
	}

	return nil
}

func (r *router) needsResolve(name string) bool {
	if r.active == nil || r.active.Offset == "" || r.active.nested {
		return true
	}

	return !strings.HasPrefix(name, r.active.Offset)
}

// drain flushes whatever is pending for the active group.
func (r *router) drain() error {
	if len(r.batch) == 0 {
		return nil
	}

	err := r.flush(r.active, r.batch)

	clear(r.batch)
	r.batch = r.batch[:0]

	return err
}

// traverse walks src if anyone listens to it.
func (e *engine) traverse(src *ResourceSource) error {
	if !src.HasListeners() {
		e.logger.Debug("skipping source without listeners", "source", src.URL)

		return nil
	}

	r := newRouter(src, func(g *OffsetGroup, batch []m.ScanResource) error {
		return e.flush(g, batch)
	})

	var err error
	if src.IsDirectory {
		err = e.walkDirectory(src, r)
	} else {
		err = e.walkArchive(src, r)
	}

	if err != nil {
		return err
	}

	e.logger.Debug("source traversed", "source", src.URL, "resources", r.routed)

	return nil
}

// walkDirectory emits files and non-hidden directories depth first. Hidden
// directories are neither emitted nor entered. Symbolic links to directories
// are followed once per target; dangling links and anything that is not a
// regular file or a directory are skipped.
func (e *engine) walkDirectory(src *ResourceSource, r *router) error {
	visited := map[m.Path]bool{src.Path: true}

	if err := e.walkTree(src, r, src.Path, "", visited); err != nil {
		return err
	}

	return r.drain()
}

// walkTree walks dir, naming entries relative to the source root through
// prefix.
func (e *engine) walkTree(src *ResourceSource, r *router, dir m.Path, prefix string, visited map[m.Path]bool) error {
	root := string(dir)

	return e.fs.Walk(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return &m.ScanError{Phase: m.PhaseWalk, Component: path, Err: err}
		}

		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return &m.ScanError{Phase: m.PhaseWalk, Component: path, Err: err}
		}

		name := filepath.ToSlash(filepath.Join(prefix, rel))

		switch mode := d.Type(); {
		case d.IsDir():
			if strings.HasPrefix(d.Name(), hiddenPrefix) {
				return filepath.SkipDir
			}

			return e.emit(src, r, path, name, true)
		case mode&fs.ModeSymlink != 0:
			return e.followLink(src, r, path, name, visited)
		case mode.IsRegular():
			return e.emit(src, r, path, name, false)
		default:
			e.logger.Debug("skipping special file", "path", path, "mode", mode)

			return nil
		}
	})
}

// followLink emits the target of a symbolic link under the link's name and
// walks it when it is a directory not seen before.
func (e *engine) followLink(src *ResourceSource, r *router, path string, name string, visited map[m.Path]bool) error {
	info, err := e.fs.FileInfo(m.Path(path))
	if err != nil {
		e.logger.Debug("skipping unreadable link", "path", path, "err", err)

		return nil
	}

	if !info.IsDir() {
		if !info.Mode().IsRegular() {
			e.logger.Debug("skipping special file", "path", path, "mode", info.Mode())

			return nil
		}

		return e.emit(src, r, path, name, false)
	}

	if strings.HasPrefix(filepath.Base(path), hiddenPrefix) {
		return nil
	}

	if err := e.emit(src, r, path, name, true); err != nil {
		return err
	}

	target, err := e.fs.Canonical(m.Path(path))
	if err != nil {
		return &m.ScanError{Phase: m.PhaseWalk, Component: path, Err: err}
	}

	if visited[target] {
		e.logger.Debug("link target already walked", "path", path, "target", target)

		return nil
	}

	visited[target] = true

	return e.walkTree(src, r, target, name, visited)
}

func (e *engine) emit(src *ResourceSource, r *router, path string, name string, isDir bool) error {
	return r.route(name, func(g *OffsetGroup, rel string) m.ScanResource {
		return m.ScanResource{
			URL:    src.URL,
			Mount:  mountOf(src, g),
			Source: src.Path,
			Offset: g.Offset,
			File:   m.Path(path),
			Name:   rel,
			IsDir:  isDir,
		}
	})
}

// walkArchive iterates the archive entries in stored order.
func (e *engine) walkArchive(src *ResourceSource, r *router) (err error) {
	archive, err := e.fs.OpenArchive(src.Path)
	if err != nil {
		return &m.ScanError{Phase: m.PhaseArchive, Component: string(src.URL), Err: err}
	}

	defer func() {
		if closeErr := archive.Close(); closeErr != nil && err == nil {
			err = &m.ScanError{Phase: m.PhaseArchive, Component: string(src.URL), Err: closeErr}
		}
	}()

	for _, entry := range archive.Entries() {
		isDir := strings.HasSuffix(entry.Name, "/")

		routeErr := r.route(entry.Name, func(g *OffsetGroup, name string) m.ScanResource {
			return m.ScanResource{
				URL:    src.URL,
				Mount:  mountOf(src, g),
				Source: src.Path,
				Offset: g.Offset,
				Entry:  entry,
				Name:   name,
				IsDir:  isDir,
			}
		})
		if routeErr != nil {
			return routeErr
		}
	}

	return r.drain()
}

func mountOf(src *ResourceSource, g *OffsetGroup) m.Locator {
	if g.Mount == src.URL {
		return ""
	}

	return g.Mount
}
