package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/rootscan/internal/adapter"
	adaptermocks "github.com/mouse-blink/rootscan/internal/adapter/mocks"
	"github.com/mouse-blink/rootscan/internal/controller"
	controllermocks "github.com/mouse-blink/rootscan/internal/controller/mocks"
	"github.com/mouse-blink/rootscan/internal/domain"
	domainmocks "github.com/mouse-blink/rootscan/internal/domain/mocks"
	m "github.com/mouse-blink/rootscan/internal/model"
)

// newTestRootCmd builds a fresh command tree writing to a buffer.
func newTestRootCmd(args ...string) (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd(), newIndexCmd())
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	return cmd, &buf
}

// useMocks swaps the package workflow and UI for the duration of the test.
func useMocks(t *testing.T) (*domainmocks.MockWorkflow, *controllermocks.MockUI) {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockUI := controllermocks.NewMockUI(t)

	originalWorkflow, originalUI := workflow, ui
	workflow, ui = mockWorkflow, mockUI

	t.Cleanup(func() {
		workflow, ui = originalWorkflow, originalUI
	})

	return mockWorkflow, mockUI
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "roots.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const testConfig = `
sets:
  web:
    - jar:file:/srv/app.war!/WEB-INF/classes/
    - file:/srv/lib/shared.jar
  cli:
    - file:/srv/cli/classes/
`

func TestRootCmd_DisplaysSources(t *testing.T) {
	mockWorkflow, mockUI := useMocks(t)

	summaries := []m.SourceSummary{{Path: "/srv/classes", URL: "file:/srv/classes", IsDirectory: true}}

	mockWorkflow.EXPECT().Sources(domain.ScanArgs{Sets: []m.RootSet{
		{Name: argsSetName, Roots: []string{"file:/srv/classes", "/srv/lib/a.jar"}},
	}}).Return(summaries, nil)
	mockUI.EXPECT().DisplaySources(summaries).Return(nil)

	cmd, _ := newTestRootCmd("file:/srv/classes", "/srv/lib/a.jar")
	require.NoError(t, cmd.Execute())
}

func TestRootCmd_SourcesError(t *testing.T) {
	mockWorkflow, _ := useMocks(t)

	mockWorkflow.EXPECT().Sources(mock.Anything).Return(nil, errors.New("boom"))

	cmd, _ := newTestRootCmd("/srv/classes")
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestRootCmd_NoRoots(t *testing.T) {
	useMocks(t)

	cmd, _ := newTestRootCmd()
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no loading roots given")
}

func TestRootCmd_ConfigSets(t *testing.T) {
	config := writeConfig(t, testConfig)

	t.Run("uses every set by default", func(t *testing.T) {
		mockWorkflow, mockUI := useMocks(t)

		mockWorkflow.EXPECT().Sources(mock.MatchedBy(func(args domain.ScanArgs) bool {
			return len(args.Sets) == 2 && args.Sets[0].Name == "cli" && args.Sets[1].Name == "web"
		})).Return(nil, nil)
		mockUI.EXPECT().DisplaySources(mock.Anything).Return(nil)

		cmd, _ := newTestRootCmd("--config", config)
		require.NoError(t, cmd.Execute())
	})

	t.Run("selects sets by name and keeps positional roots", func(t *testing.T) {
		mockWorkflow, mockUI := useMocks(t)

		mockWorkflow.EXPECT().Sources(domain.ScanArgs{Sets: []m.RootSet{
			{Name: argsSetName, Roots: []string{"/srv/extra"}},
			{Name: "web", Roots: []string{"jar:file:/srv/app.war!/WEB-INF/classes/", "file:/srv/lib/shared.jar"}},
		}}).Return(nil, nil)
		mockUI.EXPECT().DisplaySources(mock.Anything).Return(nil)

		cmd, _ := newTestRootCmd("-c", config, "--set", "web", "/srv/extra")
		require.NoError(t, cmd.Execute())
	})

	t.Run("unknown set", func(t *testing.T) {
		useMocks(t)

		cmd, _ := newTestRootCmd("-c", config, "-s", "batch")
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown root set "batch"`)
	})

	t.Run("set without config", func(t *testing.T) {
		useMocks(t)

		cmd, _ := newTestRootCmd("-s", "web", "/srv/extra")
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--set requires --config")
	})

	t.Run("missing config file", func(t *testing.T) {
		useMocks(t)

		cmd, _ := newTestRootCmd("-c", filepath.Join(t.TempDir(), "absent.yaml"))
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})
}

func TestRootCmd_VerboseEnablesDebugLogging(t *testing.T) {
	mockWorkflow, mockUI := useMocks(t)

	original := logger.GetLevel()
	t.Cleanup(func() { logger.SetLevel(original) })

	mockWorkflow.EXPECT().Sources(mock.Anything).Return(nil, nil)
	mockUI.EXPECT().DisplaySources(mock.Anything).Return(nil)

	cmd, _ := newTestRootCmd("--verbose", "/srv/classes")
	require.NoError(t, cmd.Execute())

	assert.Equal(t, log.DebugLevel, logger.GetLevel())
}

func TestListCmd_PassesFlags(t *testing.T) {
	mockWorkflow, mockUI := useMocks(t)

	records := []m.CatalogRecord{{RootSet: argsSetName, Source: "/srv/classes", Name: "a.txt"}}

	mockWorkflow.EXPECT().Collect(mock.Anything, mock.MatchedBy(func(args domain.CollectArgs) bool {
		return len(args.Sets) == 1 &&
			assert.ObjectsAreEqual([]string{"*.class", "META-INF/*"}, args.Patterns) &&
			args.IncludeDirs &&
			args.Fingerprint &&
			args.SkipTests &&
			args.Parallel == 2
	})).Return(records, nil)
	mockUI.EXPECT().DisplayResources(records).Return(nil)

	cmd, _ := newTestRootCmd("list", "-m", "*.class", "--match", "META-INF/*", "--dirs", "--hash", "--skip-tests", "-p", "2", "/srv/classes")
	require.NoError(t, cmd.Execute())
}

func TestIndexCmd_WithMocks(t *testing.T) {
	mockWorkflow, mockUI := useMocks(t)
	store := adaptermocks.NewMockCatalogStore(t)

	db := filepath.Join(t.TempDir(), "catalog.db")

	originalOpen := openCatalog
	openCatalog = func(path m.Path) (adapter.CatalogStore, error) {
		assert.Equal(t, m.Path(db), path)
		return store, nil
	}
	t.Cleanup(func() { openCatalog = originalOpen })

	mockWorkflow.EXPECT().Index(mock.Anything, mock.Anything, store).Return(3, nil)
	mockUI.EXPECT().DisplayIndexed(3, m.Path(db)).Return(nil)
	store.EXPECT().Close().Return(nil)

	cmd, _ := newTestRootCmd("index", "--db", db, "/srv/classes")
	require.NoError(t, cmd.Execute())
}

func TestIndexCmd_CloseError(t *testing.T) {
	mockWorkflow, mockUI := useMocks(t)
	store := adaptermocks.NewMockCatalogStore(t)

	originalOpen := openCatalog
	openCatalog = func(m.Path) (adapter.CatalogStore, error) { return store, nil }
	t.Cleanup(func() { openCatalog = originalOpen })

	mockWorkflow.EXPECT().Index(mock.Anything, mock.Anything, store).Return(0, nil)
	mockUI.EXPECT().DisplayIndexed(0, mock.Anything).Return(nil)
	store.EXPECT().Close().Return(errors.New("locked"))

	cmd, _ := newTestRootCmd("index", "/srv/classes")
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to close catalog: locked")
}

// useRealStack wires the real scanner and a plain table UI writing to cmd.
func useRealStack(t *testing.T, cmd *cobra.Command) {
	t.Helper()

	originalWorkflow, originalUI := workflow, ui
	t.Cleanup(func() {
		workflow, ui = originalWorkflow, originalUI
	})

	quiet := log.New(&bytes.Buffer{})
	workflow = domain.NewWorkflow(domain.NewScanner(adapter.NewLocalSourceFSAdapter(), domain.WithLogger(quiet)))
	ui = controller.NewSimpleUI(cmd)
}

func TestListCmd_ScansDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "com", "example"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "com", "example", "App.class"), []byte("app"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("notes"), 0o600))

	cmd, buf := newTestRootCmd("list", "--match", "*.class", dir)
	useRealStack(t, cmd)

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "com/example/App.class")
	assert.NotContains(t, output, "notes.txt")
	assert.Contains(t, output, "1 resources")
}

func TestIndexCmd_WritesCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("alpha"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("beta"), 0o600))

	db := filepath.Join(t.TempDir(), "nested", "catalog.db")

	cmd, buf := newTestRootCmd("index", "--db", db, dir)
	useRealStack(t, cmd)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "Indexed 2 resources")

	store, err := adapter.NewCatalogStore(m.Path(db))
	require.NoError(t, err)
	defer store.Close()

	records, err := store.LoadRecords(argsSetName)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "a.txt", records[0].Name)
	assert.Equal(t, int64(5), records[0].Size)
	assert.NotEmpty(t, records[0].Hash)
}
