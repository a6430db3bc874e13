package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *ConfigStore {
	t.Helper()

	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("not = [valid"), 0600)
	require.NoError(t, err)

	_, err = NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store := newStore(t)

	err := store.Set("drinks.default", "Coffee")
	require.NoError(t, err)

	val, ok := store.Get("drinks.default")
	assert.True(t, ok)
	assert.Equal(t, "Coffee", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := newStore(t)

	_, ok := store.Get("nope")

	assert.False(t, ok)
	assert.Empty(t, store.GetString("nope"))
	assert.Zero(t, store.GetInt("nope"))
	assert.False(t, store.GetBool("nope"))
	assert.Nil(t, store.GetStringSlice("nope"))
}

func TestConfigStore_TypedGetters_WrongType(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("key", true))

	assert.Empty(t, store.GetString("key"))
	assert.Zero(t, store.GetInt("key"))
	assert.Nil(t, store.GetStringSlice("key"))
}

func TestConfigStore_PersistsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("logging.verbose", true))
	require.NoError(t, store.Set("drinks.default", "Tea"))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[logging]")
	assert.Contains(t, string(data), "[drinks]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.True(t, reloaded.GetBool("logging.verbose"))
	assert.Equal(t, "Tea", reloaded.GetString("drinks.default"))
	assert.Equal(t, []string{"drinks.default", "logging.verbose"}, reloaded.Keys())
}

func TestConfigStore_LoadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[logging]
verbose = true

[drinks]
default = "Coffee"
favourites = ["Tea", "Coffee"]
cups = 3
`
	err := os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600)
	require.NoError(t, err)

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	assert.True(t, store.GetBool("logging.verbose"))
	assert.Equal(t, "Coffee", store.GetString("drinks.default"))
	assert.Equal(t, []string{"Tea", "Coffee"}, store.GetStringSlice("drinks.favourites"))
	assert.Equal(t, 3, store.GetInt("drinks.cups"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Set("output.json", true))

	info, err := os.Stat(store.Path())

	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFlattenMap(t *testing.T) {
	nested := map[string]any{
		"a": map[string]any{
			"b": int64(1),
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}

	flat := flattenMap(nested, "")

	assert.Equal(t, map[string]any{"a.b": int64(1), "a.c.d": "x", "e": true}, flat)
}

func TestNestMap(t *testing.T) {
	flat := map[string]any{"a.b": int64(1), "a.c.d": "x", "e": true}

	nested := nestMap(flat)

	assert.Equal(t, flat, flattenMap(nested, ""))
}

func TestNestMap_ValueWinsOverTable(t *testing.T) {
	nested := nestMap(map[string]any{"a": "value", "a.b": "shadowed"})

	assert.Equal(t, "value", nested["a"])
}
