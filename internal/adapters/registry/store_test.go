package registry_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sassy/internal/adapters/registry"
	"go.trai.ch/sassy/internal/core/domain"
	"go.trai.ch/sassy/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, root string) *registry.Store {
	t.Helper()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().DiscoverRoot(gomock.Any()).Return(root, nil).AnyTimes()
	return registry.NewStore(loader)
}

func TestStore_AddNestedFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := newStore(t, root)

	source := filepath.Join(root, "styles", "site.scss")
	css := filepath.Join(root, "styles", "site.css")
	minCSS := filepath.Join(root, "styles", "site.min.css")

	require.NoError(t, store.AddNestedFile(t.Context(), source, minCSS, domain.BuildActionNone))
	require.NoError(t, store.AddNestedFile(t.Context(), source, css, domain.BuildActionContent))

	rec, err := store.Get(source)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.Equal(t, "styles/site.scss", rec.Parent)
	assert.Equal(t, []registry.NestedFile{
		{Path: "styles/site.css", Action: "Content"},
		{Path: "styles/site.min.css", Action: "None"},
	}, rec.Children)

	entries, err := os.ReadDir(domain.DefaultRegistryPath(root))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_AddNestedFileUpdatesAction(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := newStore(t, root)
	source := filepath.Join(root, "a.scss")
	css := filepath.Join(root, "a.css")

	require.NoError(t, store.AddNestedFile(t.Context(), source, css, domain.BuildActionNone))
	require.NoError(t, store.AddNestedFile(t.Context(), source, css, domain.BuildActionContent))

	rec, err := store.Get(source)
	require.NoError(t, err)
	assert.Equal(t, []registry.NestedFile{{Path: "a.css", Action: "Content"}}, rec.Children)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	rec, err := newStore(t, root).Get(filepath.Join(root, "none.scss"))
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestStore_CorruptRecord(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := newStore(t, root)
	source := filepath.Join(root, "a.scss")

	require.NoError(t, store.AddNestedFile(t.Context(), source, filepath.Join(root, "a.css"), domain.BuildActionNone))

	entries, err := os.ReadDir(domain.DefaultRegistryPath(root))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	recordPath := filepath.Join(domain.DefaultRegistryPath(root), entries[0].Name())
	require.NoError(t, os.WriteFile(recordPath, []byte("{not json"), domain.PrivateFilePerm))

	err = store.AddNestedFile(t.Context(), source, filepath.Join(root, "a.min.css"), domain.BuildActionNone)
	assert.ErrorContains(t, err, domain.ErrRegistryUnmarshalFailed.Error())
}

func TestStore_FallsBackToSourceDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().DiscoverRoot(dir).Return("", domain.ErrConfigNotFound).AnyTimes()

	store := registry.NewStore(loader)
	require.NoError(t, store.AddNestedFile(t.Context(), filepath.Join(dir, "a.scss"), filepath.Join(dir, "a.css"), domain.BuildActionNone))

	_, err := os.Stat(domain.DefaultRegistryPath(dir))
	assert.NoError(t, err)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := newStore(t, root)
	source := filepath.Join(root, "a.scss")

	var wg sync.WaitGroup
	for _, name := range []string{"a.css", "a.min.css", "b.css", "c.css"} {
		wg.Go(func() {
			assert.NoError(t, store.AddNestedFile(t.Context(), source, filepath.Join(root, name), domain.BuildActionNone))
		})
	}
	wg.Wait()

	rec, err := store.Get(source)
	require.NoError(t, err)
	assert.Len(t, rec.Children, 4)
}
