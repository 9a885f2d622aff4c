package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/confd"
)

func loadFromArgs(t *testing.T, args ...string) (*confd.Settings, error) {
	t.Helper()

	serveCmd := newServeCmd()
	require.NoError(t, serveCmd.ParseFlags(args))

	settingsPath, err := serveCmd.Flags().GetString("settings")
	require.NoError(t, err)

	return loadSettings(settingsPath, serveCmd.Flags())
}

func TestLoadSettings_Defaults(t *testing.T) { //nolint:paralleltest // changes working directory
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, confd.DefaultRoot), 0o750))
	t.Chdir(dir)

	settings, err := loadFromArgs(t)
	require.NoError(t, err)

	assert.Equal(t, confd.DefaultRoot, settings.Root)
	assert.Equal(t, confd.DefaultAddress, settings.Address)
	assert.Equal(t, confd.DefaultLogLevel, settings.LogLevel)
	assert.Equal(t, confd.DefaultAPIPrefix, settings.APIPrefix)
	assert.Equal(t, confd.DefaultRequestTimeout, settings.RequestTimeout)
}

func TestLoadSettings_Layers(t *testing.T) { //nolint:paralleltest // modifies process environment
	fileRoot := t.TempDir()
	flagRoot := t.TempDir()

	settingsFile := filepath.Join(t.TempDir(), "confd.yaml")
	require.NoError(t, os.WriteFile(settingsFile, []byte(
		"root: "+fileRoot+"\naddress: \":7000\"\nlog_level: warn\napi_prefix: /config\n"), 0o600))

	t.Setenv("CONFD_LOG_LEVEL", "debug")
	t.Setenv("CONFD_REQUEST_TIMEOUT", "5s")

	settings, err := loadFromArgs(t, "--settings", settingsFile, "--root", flagRoot)
	require.NoError(t, err)

	assert.Equal(t, flagRoot, settings.Root, "flag beats file")
	assert.Equal(t, ":7000", settings.Address, "file beats default")
	assert.Equal(t, "debug", settings.LogLevel, "environment beats file")
	assert.Equal(t, "/config", settings.APIPrefix)
	assert.Equal(t, "5s", settings.RequestTimeout)
}

func TestLoadSettings_Invalid(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	testCases := []struct {
		name string
		args []string
		err  error
	}{
		{"bad prefix", []string{"--root", root, "--api-prefix", "api"}, confd.ErrInvalidPrefix},
		{"bad level", []string{"--root", root, "--log-level", "loud"}, confd.ErrInvalidLogLevel},
		{"bad timeout", []string{"--root", root, "--request-timeout=-1s"}, confd.ErrInvalidTimeout},
		{"root is a file", []string{"--root", filepath.Join(root, "file")}, confd.ErrRootNotDirectory},
	}

	require.NoError(t, os.WriteFile(filepath.Join(root, "file"), nil, 0o600))

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := loadFromArgs(t, testCase.args...)
			require.ErrorIs(t, err, testCase.err)
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadFromArgs(t, "--settings", filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
