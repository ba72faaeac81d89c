package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	stscli "github.com/akgood/chrome-sts/cli"
	"github.com/akgood/chrome-sts/sts/keys"
	"github.com/akgood/chrome-sts/sts/store"
)

// runSTS drives the real cli app, capturing stdout and returning any error
// instead of letting the exit handler terminate the test process.
func runSTS(t *testing.T, args ...string) (string, error) {
	t.Helper()

	app := stscli.CreateSTSApp()
	app.Action = Run
	app.ExitErrHandler = func(*cli.Context, error) {}

	out := &bytes.Buffer{}
	app.Writer = out

	err := app.Run(append([]string{"testing"}, args...))
	return out.String(), err
}

func readStoreFile(t *testing.T, profileDir string) map[string]store.Entry {
	t.Helper()

	content, err := os.ReadFile(filepath.Join(profileDir, store.Filename))
	require.NoError(t, err)

	entries := map[string]store.Entry{}
	require.NoError(t, json.Unmarshal(content, &entries))
	return entries
}

func TestSetGetRemoveFlow(t *testing.T) {
	profileDir := t.TempDir()

	_, err := runSTS(t, "--profile-dir", profileDir, "--set", "--include-subdomains", "eff.org")
	require.NoError(t, err)

	entries := readStoreFile(t, profileDir)
	key, err := keys.StorageKey("eff.org")
	require.NoError(t, err)
	require.Contains(t, entries, key)
	assert.Equal(t, store.ModeStrict, entries[key].Mode)
	assert.True(t, entries[key].IncludeSubdomains)

	// A subdomain resolves to the superdomain entry.
	out, err := runSTS(t, "--profile-dir", profileDir, "--get", "sub.eff.org")
	require.NoError(t, err)
	assert.Contains(t, out, "eff.org:")
	assert.Contains(t, out, `"include_subdomains": true`)

	// Removing a hostname with no exact entry leaves the store untouched.
	_, err = runSTS(t, "--profile-dir", profileDir, "--remove", "sub.eff.org")
	require.NoError(t, err)
	assert.Contains(t, readStoreFile(t, profileDir), key)

	_, err = runSTS(t, "--profile-dir", profileDir, "--remove", "eff.org")
	require.NoError(t, err)
	assert.Empty(t, readStoreFile(t, profileDir))

	out, err = runSTS(t, "--profile-dir", profileDir, "--get", "eff.org")
	require.NoError(t, err)
	assert.Contains(t, out, "No configuration exists for that site")
}

func TestGetIsTheDefaultAction(t *testing.T) {
	profileDir := t.TempDir()

	out, err := runSTS(t, "--profile-dir", profileDir, "www.example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "www.example.com:")
	assert.Contains(t, out, "No configuration exists for that site")

	// A plain get must not create the store file.
	_, err = os.Stat(filepath.Join(profileDir, store.Filename))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMutuallyExclusiveActions(t *testing.T) {
	profileDir := t.TempDir()

	_, err := runSTS(t, "--profile-dir", profileDir, "--get", "--set", "example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestMissingHostnameArgument(t *testing.T) {
	profileDir := t.TempDir()

	_, err := runSTS(t, "--profile-dir", profileDir, "--get")
	require.Error(t, err)

	_, err = runSTS(t, "--profile-dir", profileDir, "--get", "a.com", "b.com")
	require.Error(t, err)
}

func TestUnknownProfileDirectory(t *testing.T) {
	_, err := runSTS(t, "--profile-dir", filepath.Join(t.TempDir(), "missing"), "--get", "example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile directory")
}

func TestMalformedStoreIsFatal(t *testing.T) {
	profileDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(profileDir, store.Filename), []byte("{not json"), 0o644))

	_, err := runSTS(t, "--profile-dir", profileDir, "--get", "example.com")
	require.Error(t, err)
}
