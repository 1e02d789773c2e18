package adapter

import (
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/rootscan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore_SaveAndLoad(t *testing.T) {
	store, err := NewCatalogStore(m.Path(filepath.Join(t.TempDir(), "nested", "catalog.db")))
	require.NoError(t, err)

	defer func() { _ = store.Close() }()

	records := []m.CatalogRecord{
		{RootSet: "web", Source: "/srv/app.war", Offset: "WEB-INF/classes/", Name: "com/Foo.class", Size: 3, Hash: "abc"},
		{RootSet: "web", Source: "/srv/app.war", Offset: "WEB-INF/classes/", Name: "com", IsDir: true},
		{RootSet: "other", Source: "/srv/lib.jar", Name: "x.txt", Size: 1, Hash: "def"},
	}

	require.NoError(t, store.SaveRecords(records))

	got, err := store.LoadRecords("web")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "com", got[0].Name)
	assert.True(t, got[0].IsDir)
	assert.Equal(t, "com/Foo.class", got[1].Name)
	assert.Equal(t, int64(3), got[1].Size)
	assert.Equal(t, m.Path("/srv/app.war"), got[1].Source)

	t.Run("saving again updates in place", func(t *testing.T) {
		updated := records[0]
		updated.Hash = "changed"
		require.NoError(t, store.SaveRecords([]m.CatalogRecord{updated}))

		got, err := store.LoadRecords("web")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "changed", got[1].Hash)
	})

	t.Run("unknown root set is empty", func(t *testing.T) {
		got, err := store.LoadRecords("missing")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
