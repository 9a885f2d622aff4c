package resolve

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/confd/content"
	"github.com/0xalexb/confd/logging"

	"github.com/stretchr/testify/require"
)

const libraryJSON = `{
  "The Prestige": {
    "Director": "Christopher Nolan",
    "Year": 2006,
    "Watched": false,
    "Sequel": null,
    "Actors": ["Christian Bale", "Hugh Jackman"]
  }
}`

// writeTree creates files under root. Keys ending in a slash create empty directories.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for name, body := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		if strings.HasSuffix(name, "/") {
			require.NoError(t, os.MkdirAll(path, 0o750))

			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	}
}

func newTestRoot(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	writeTree(t, root, files)

	root, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	return root
}

func defaultRegistry(t *testing.T) *content.Registry {
	t.Helper()

	registry, err := DefaultRegistry()
	require.NoError(t, err)

	return registry
}

func newTestResolver(t *testing.T, root string) *Resolver {
	t.Helper()

	resolver, err := New(root, defaultRegistry(t), logging.Discard())
	require.NoError(t, err)

	return resolver
}
