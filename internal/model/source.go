// Package model defines the data structures shared by the scanner, its
// adapters and the CLI.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Locator is a loading-root URL, e.g. file:/srv/app/classes/ or
// jar:file:/srv/app.war!/WEB-INF/classes/.
type Locator string

func (l Locator) String() string {
	return string(l)
}

// IsArchive reports whether the locator uses the jar: form.
func (l Locator) IsArchive() bool {
	return strings.HasPrefix(string(l), "jar:")
}

// SourceDescriptor is the parsed form of one raw loading-root URL.
type SourceDescriptor struct {
	URL  Locator
	Path Path
	// Offset is the mount point declared after the '!' separator, with any
	// leading slash removed. Only meaningful when HasOffset is true.
	Offset    string
	HasOffset bool
}

// Container returns the locator of the directory or archive itself, without
// the offset part.
func (d SourceDescriptor) Container() Locator {
	if !d.HasOffset {
		return d.URL
	}

	s := string(d.URL)
	if i := strings.Index(s, "!"); i >= 0 {
		return Locator(s[:i])
	}

	return d.URL
}

const testResourcesSuffix = "target/test-classes"

// InterestingResource is what a listener sees when it is asked whether it
// cares about one offset of a loading root.
type InterestingResource struct {
	URL         Locator
	Offset      string
	Path        Path
	IsDirectory bool
}

// HasPathSuffix reports whether the physical path ends with suffix, compared
// using forward slashes.
func (r InterestingResource) HasPathSuffix(suffix string) bool {
	return strings.HasSuffix(filepath.ToSlash(string(r.Path)), suffix)
}

// IsTestResources reports whether the resource is a build tool's compiled test
// output directory.
func (r InterestingResource) IsTestResources() bool {
	return r.IsDirectory && r.HasPathSuffix(testResourcesSuffix)
}

// OffsetSummary describes one offset group of a source.
type OffsetSummary struct {
	Offset    string
	Mount     Locator
	Listeners int
}

// SourceSummary is a read-only snapshot of a resource source, used for display.
type SourceSummary struct {
	Path        Path
	URL         Locator
	IsDirectory bool
	Offsets     []OffsetSummary
}

// RootSet is a named, ordered list of raw loading-root URLs.
type RootSet struct {
	Name  string
	Roots []string
}
