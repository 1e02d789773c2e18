package domain

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/rootscan/internal/adapter"
	m "github.com/mouse-blink/rootscan/internal/model"
)

// recordingListener keeps everything the scanner tells it.
type recordingListener struct {
	name   string
	kind   m.InterestKind
	accept func(m.InterestingResource) bool

	mu         sync.Mutex
	interested int
	batches    []int
	selected   []m.ScanResource
	delivered  []string
	contents   map[string]string
	actions    []m.ScanAction
}

func newRecordingListener(name string, kind m.InterestKind) *recordingListener {
	return &recordingListener{name: name, kind: kind, contents: make(map[string]string)}
}

func (r *recordingListener) Name() string {
	return r.name
}

func (r *recordingListener) Interested(res m.InterestingResource) (m.InterestKind, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.interested++

	if r.accept != nil && !r.accept(res) {
		return m.InterestNone, nil
	}

	return r.kind, nil
}

func (r *recordingListener) Select(batch []m.ScanResource) ([]m.ScanResource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.batches = append(r.batches, len(batch))
	kept := append([]m.ScanResource(nil), batch...)
	r.selected = append(r.selected, kept...)

	return kept, nil
}

func (r *recordingListener) Deliver(res m.ScanResource, rd io.Reader) error {
	content := "<dir>"

	if rd != nil {
		data, err := io.ReadAll(rd)
		if err != nil {
			return err
		}

		content = string(data)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.delivered = append(r.delivered, res.Name)
	r.contents[res.Offset+"|"+res.Name] = content

	return nil
}

func (r *recordingListener) ScanAction(action m.ScanAction) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.actions = append(r.actions, action)
}

func (r *recordingListener) names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.selected))
	for _, res := range r.selected {
		out = append(out, res.Name)
	}

	return out
}

func (r *recordingListener) count(action m.ScanAction) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, a := range r.actions {
		if a == action {
			n++
		}
	}

	return n
}

func acceptOffset(offset string) func(m.InterestingResource) bool {
	return func(res m.InterestingResource) bool {
		return res.Offset == offset
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestEngine() *engine {
	return &engine{fs: adapter.NewLocalSourceFSAdapter(), logger: discardLogger()}
}

func newTestScanner() *Scanner {
	return NewScanner(adapter.NewLocalSourceFSAdapter(), WithLogger(discardLogger()))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

type zipEntry struct {
	name    string
	content string
}

// writeZip stores entries in the given order. Names ending in '/' become
// directory entries.
func writeZip(t *testing.T, path string, entries ...zipEntry) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	f, err := os.Create(path)
	require.NoError(t, err)

	zw := zip.NewWriter(f)

	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)

		if e.content != "" {
			_, err = w.Write([]byte(e.content))
			require.NoError(t, err)
		}
	}

	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func jarURL(path string, offset string) string {
	u := "jar:file:" + filepath.ToSlash(path)
	if offset != "" {
		u += "!/" + offset
	}

	return u
}

func fileURL(path string) string {
	return "file:" + filepath.ToSlash(path)
}
