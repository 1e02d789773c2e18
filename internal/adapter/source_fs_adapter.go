// Package adapter contains the infrastructure adapters the scanner relies on:
// filesystem and archive access, the resource catalog store and root-set
// configuration files.
package adapter

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/exp/mmap"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// SourceFSAdapter abstracts the filesystem operations the scan engine needs
// so the traversal logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between directories and archives.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Canonical returns the absolute, symlink-resolved form of path. Two
	// spellings of the same file must yield the same result.
	Canonical(path m.Path) (m.Path, error)

	// Walk traverses the tree under root in lexical order, like filepath.WalkDir.
	Walk(root m.Path, fn fs.WalkDirFunc) error

	// Open opens a regular file for reading.
	Open(path m.Path) (io.ReadCloser, error)

	// OpenArchive opens a zip-structured file for iteration.
	OpenArchive(path m.Path) (Archive, error)
}

// Archive is an opened zip container. Entries are reported in stored order.
type Archive interface {
	Entries() []*zip.File
	Close() error
}

// LocalSourceFSAdapter is the SourceFSAdapter backed by the local disk.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the scanner.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Canonical makes path absolute and resolves symlinks when it exists.
func (a *LocalSourceFSAdapter) Canonical(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.Path(abs), nil
		}

		return "", err
	}

	return m.Path(resolved), nil
}

// Walk visits root and everything below it.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(string(root), fn)
}

// Open opens the file at path.
func (a *LocalSourceFSAdapter) Open(path m.Path) (io.ReadCloser, error) {
	// #nosec G304 - path comes from the walked loading root
	return os.Open(string(path))
}

// OpenArchive maps the archive read-only and reads its central directory.
func (a *LocalSourceFSAdapter) OpenArchive(path m.Path) (Archive, error) {
	reader, err := mmap.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}

	zr, err := zip.NewReader(reader, int64(reader.Len()))
	if err != nil {
		_ = reader.Close()

		return nil, fmt.Errorf("read archive %q: %w", path, err)
	}

	return &mappedArchive{reader: reader, zip: zr}, nil
}

type mappedArchive struct {
	reader *mmap.ReaderAt
	zip    *zip.Reader
}

func (a *mappedArchive) Entries() []*zip.File {
	return a.zip.File
}

func (a *mappedArchive) Close() error {
	return a.reader.Close()
}
