package model

import (
	"archive/zip"
	"errors"
	"net/url"
	"path/filepath"
	"strings"
)

var errNoOrigin = errors.New("resource has neither a file nor an archive entry")

// ScanResource is one entry discovered during a scan. It is only valid for
// the delivery batch that produced it.
type ScanResource struct {
	// URL is the locator of the directory or archive that holds the resource.
	URL Locator
	// Mount is the locator of the offset the resource was found under. It is
	// empty when the resource sits directly under URL.
	Mount Locator
	// Source is the physical path of the directory or archive.
	Source Path
	// Offset is the offset group the resource was routed to.
	Offset string
	// Entry is set when the resource came from an archive.
	Entry *zip.File
	// File is set when the resource came from a directory.
	File Path
	// Name is the slash separated path relative to the offset, e.g.
	// META-INF/web-fragment.xml or com/example.
	Name  string
	IsDir bool
}

// IsArchiveEntry reports whether the resource lives inside an archive.
func (r ScanResource) IsArchiveEntry() bool {
	return r.Entry != nil
}

// ResolvedURL returns the fully qualified locator of the resource.
func (r ScanResource) ResolvedURL() (Locator, error) {
	if r.Entry == nil {
		if r.File == "" {
			return "", &ScanError{Phase: PhaseLocator, Component: string(r.URL), Err: errNoOrigin}
		}

		u := url.URL{Scheme: "file", Path: filepath.ToSlash(string(r.File))}
		if r.IsDir {
			u.Path += "/"
		}

		return Locator(u.String()), nil
	}

	base := r.Mount
	if base == "" {
		base = archiveRoot(r.URL)
	}

	return joinLocator(base, r.Name)
}

// NewOffset appends sub to the locator of the resource's offset. Listeners use
// it to describe a deeper mount point, e.g. a nested archive they found.
func (r ScanResource) NewOffset(sub string) (Locator, error) {
	base := r.Mount
	if base == "" {
		base = r.URL
		if r.Entry != nil {
			base = archiveRoot(r.URL)
		}
	}

	return joinLocator(base, sub)
}

// archiveRoot turns the locator of an archive into the locator of its root
// entry: file:/a.jar becomes jar:file:/a.jar!/.
func archiveRoot(l Locator) Locator {
	s := string(l)
	if !strings.HasPrefix(s, "jar:") {
		s = "jar:" + s
	}

	if !strings.Contains(s, "!") {
		s += "!/"
	}

	return Locator(s)
}

func joinLocator(base Locator, sub string) (Locator, error) {
	s := string(base)
	if !strings.HasSuffix(s, "/") {
		s += "/"
	}

	s += strings.TrimPrefix(sub, "/")

	if _, err := url.Parse(s); err != nil {
		return "", &ScanError{Phase: PhaseLocator, Component: string(base), Err: err}
	}

	return Locator(s), nil
}
