// Package controller renders scan results for the command line.
package controller

import (
	m "github.com/mouse-blink/rootscan/internal/model"
)

// UI defines how scan results are shown to the user.
// Implementations can use different output methods (plain tables, styled text).
type UI interface {
	// DisplaySources lists the resolved sources with their offset groups.
	DisplaySources(sources []m.SourceSummary) error
	// DisplayResources lists collected resources.
	DisplayResources(records []m.CatalogRecord) error
	// DisplayIndexed reports how many resources were written to the catalog.
	DisplayIndexed(count int, db m.Path) error
}

func kindOf(isDir bool) string {
	if isDir {
		return "dir"
	}

	return "archive"
}

func offsetLabel(offset string) string {
	if offset == "" {
		return "/"
	}

	return offset
}
