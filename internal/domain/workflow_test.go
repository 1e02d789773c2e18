package domain

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	adaptermocks "github.com/mouse-blink/rootscan/internal/adapter/mocks"
	m "github.com/mouse-blink/rootscan/internal/model"
)

type workflowFixture struct {
	war     string
	classes string
	shared  string
	sets    []m.RootSet
}

func newWorkflowFixture(t *testing.T) workflowFixture {
	t.Helper()

	dir := t.TempDir()
	f := workflowFixture{
		war:     filepath.Join(dir, "app.war"),
		classes: filepath.Join(dir, "classes"),
		shared:  filepath.Join(dir, "shared.jar"),
	}

	writeZip(t, f.war,
		zipEntry{name: "WEB-INF/classes/com/App.class", content: "app"},
		zipEntry{name: "WEB-INF/web.xml", content: "<web-app/>"},
	)
	writeFile(t, filepath.Join(f.classes, "com", "Tool.class"), "tool")
	writeZip(t, f.shared, zipEntry{name: "org/Util.class", content: "util"})

	f.sets = []m.RootSet{
		{Name: "web", Roots: []string{jarURL(f.war, "WEB-INF/classes/"), jarURL(f.shared, "")}},
		{Name: "cli", Roots: []string{fileURL(f.classes), jarURL(f.shared, "")}},
	}

	return f
}

func TestWorkflow_Sources(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := NewWorkflow(newTestScanner())

	summaries, err := wf.Sources(ScanArgs{Sets: f.sets})
	require.NoError(t, err)
	require.Len(t, summaries, 4)

	assert.Equal(t, m.Path(f.war), summaries[0].Path)
	assert.Equal(t, m.Locator(jarURL(f.war, "")), summaries[0].URL)
	require.Len(t, summaries[0].Offsets, 1)
	assert.Equal(t, "WEB-INF/classes/", summaries[0].Offsets[0].Offset)

	assert.Equal(t, m.Path(f.classes), summaries[2].Path)
	assert.True(t, summaries[2].IsDirectory)
}

func TestWorkflow_Collect(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := NewWorkflow(newTestScanner())

	records, err := wf.Collect(context.Background(), CollectArgs{
		ScanArgs: ScanArgs{Sets: f.sets},
		Patterns: []string{"*.class"},
		Parallel: 2,
	})
	require.NoError(t, err)

	type row struct {
		set, source, offset, name string
	}

	var got []row
	for _, r := range records {
		got = append(got, row{r.RootSet, string(r.Source), r.Offset, r.Name})
	}

	want := []row{
		{"cli", f.classes, "", "com/Tool.class"},
		{"cli", f.shared, "", "org/Util.class"},
		{"web", f.war, "WEB-INF/classes/", "com/App.class"},
		{"web", f.shared, "", "org/Util.class"},
	}

	assert.ElementsMatch(t, want, got)
	assert.Equal(t, "cli", records[0].RootSet)
}

func TestWorkflow_CollectRepeatedly(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := NewWorkflow(newTestScanner())

	args := CollectArgs{ScanArgs: ScanArgs{Sets: f.sets[:1]}}

	first, err := wf.Collect(context.Background(), args)
	require.NoError(t, err)

	second, err := wf.Collect(context.Background(), args)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWorkflow_CollectCanceled(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := NewWorkflow(newTestScanner())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := wf.Collect(ctx, CollectArgs{ScanArgs: ScanArgs{Sets: f.sets}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkflow_CollectInvalidPattern(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := NewWorkflow(newTestScanner())

	_, err := wf.Collect(context.Background(), CollectArgs{
		ScanArgs: ScanArgs{Sets: f.sets[:1]},
		Patterns: []string{"[z-"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "root set web")
}

func TestWorkflow_Index(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := NewWorkflow(newTestScanner())
	store := adaptermocks.NewMockCatalogStore(t)

	var saved []m.CatalogRecord
	store.EXPECT().SaveRecords(mock.Anything).RunAndReturn(func(records []m.CatalogRecord) error {
		saved = records
		return nil
	})

	count, err := wf.Index(context.Background(), CollectArgs{ScanArgs: ScanArgs{Sets: f.sets[1:]}}, store)
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	require.Len(t, saved, 2)

	for _, r := range saved {
		assert.Equal(t, "cli", r.RootSet)
		assert.NotEmpty(t, r.Hash)
		assert.Positive(t, r.Size)
	}
}

func TestWorkflow_IndexSaveFailure(t *testing.T) {
	f := newWorkflowFixture(t)
	wf := NewWorkflow(newTestScanner())
	store := adaptermocks.NewMockCatalogStore(t)

	store.EXPECT().SaveRecords(mock.Anything).Return(errors.New("disk full"))

	_, err := wf.Index(context.Background(), CollectArgs{ScanArgs: ScanArgs{Sets: f.sets[1:]}}, store)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save catalog: disk full")
}
