package domain

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/rootscan/internal/model"
)

// ErrUnsupportedLocator is returned for loading roots that are neither a
// filesystem location nor a jar: archive locator.
var ErrUnsupportedLocator = errors.New("unsupported locator")

const (
	jarPrefix       = "jar:"
	filePrefix      = "file:"
	offsetSeparator = "!"
)

// ParseRootURL splits a raw loading-root URL into its physical path and the
// optional offset declared after the '!' separator of a jar: locator.
// Accepted forms:
//   - file:/srv/classes or file:///srv/classes
//   - jar:file:/srv/app.war and jar:file:/srv/app.war!/WEB-INF/classes/
//   - a bare filesystem path, which is converted to a file: locator
//
// The path is made absolute but not checked for existence.
func ParseRootURL(raw string) (m.SourceDescriptor, error) {
	desc := m.SourceDescriptor{URL: m.Locator(raw)}

	rest := raw
	isJar := strings.HasPrefix(rest, jarPrefix)

	if isJar {
		rest = strings.TrimPrefix(rest, jarPrefix)

		if i := strings.Index(rest, offsetSeparator); i >= 0 {
			desc.Offset = strings.TrimPrefix(rest[i+1:], "/")
			desc.HasOffset = true
			rest = rest[:i]
		}
	}

	switch {
	case strings.HasPrefix(rest, filePrefix):
		path, err := fileURLPath(rest)
		if err != nil {
			return m.SourceDescriptor{}, &m.ScanError{Phase: m.PhaseParse, Component: raw, Err: err}
		}

		desc.Path = path
	case isJar || hasScheme(rest):
		return m.SourceDescriptor{}, fmt.Errorf("%w: %s", ErrUnsupportedLocator, raw)
	case rest == "":
		return m.SourceDescriptor{}, &m.ScanError{Phase: m.PhaseParse, Component: raw, Err: errors.New("empty locator")}
	default:
		abs, err := filepath.Abs(rest)
		if err != nil {
			return m.SourceDescriptor{}, &m.ScanError{Phase: m.PhaseParse, Component: raw, Err: err}
		}

		u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
		desc.URL = m.Locator(u.String())
		desc.Path = m.Path(abs)
	}

	return desc, nil
}

func fileURLPath(s string) (m.Path, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", err
	}

	p := u.Path
	if p == "" && u.Opaque != "" {
		// file:relative/dir
		p, err = url.PathUnescape(u.Opaque)
		if err != nil {
			return "", err
		}
	}

	if p == "" {
		return "", errors.New("file locator without a path")
	}

	abs, err := filepath.Abs(filepath.FromSlash(p))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// hasScheme reports whether s starts with a URL scheme such as http:. Single
// letters are left alone so Windows drive letters pass as paths.
func hasScheme(s string) bool {
	i := strings.Index(s, ":")
	if i < 2 {
		return false
	}

	for j, c := range s[:i] {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case j > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}

	return true
}
