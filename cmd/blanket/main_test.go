package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/blanket/pkg/adapters/manifest"
	"github.com/aretw0/blanket/pkg/adapters/openmc"
	"github.com/aretw0/blanket/pkg/domain"
)

const groupsYAML = `structures:
  - name: COARSE-3
    bounds: [1.0e-5, 1.0, 1.0e5, 2.0e7]
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

// writeConfig writes a config selecting the coarse test groups and the given store section.
func writeConfig(t *testing.T, store string) string {
	t.Helper()
	dir := t.TempDir()
	groups := filepath.Join(dir, "groups.yaml")
	require.NoError(t, os.WriteFile(groups, []byte(groupsYAML), 0o644))

	cfg := "case:\n  tallies:\n    group_structure: COARSE-3\n" +
		"groups:\n  file: " + groups + "\n" +
		"log:\n  level: error\n" + store
	path := filepath.Join(dir, "blanket.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "blanket version 0.1.0-dev\n", out)
}

func TestRadii(t *testing.T) {
	out, err := run(t, "radii", "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Contains(t, lines[0], "MINOR RADIUS")
	assert.Contains(t, lines[1], "fw_inner")
	assert.Contains(t, lines[1], "188.700658")
	assert.Contains(t, lines[8], "str3_outer")
	assert.Contains(t, lines[8], "vacuum")
}

func TestTallies(t *testing.T) {
	out, err := run(t, "tallies", "--log-level", "error")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 67)
	assert.Equal(t, "1\tTBR channel", lines[0])

	out, err = run(t, "tallies", "--shell", "fw", "--log-level", "error")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines[0], "cell_flux_tally_fw")

	out, err = run(t, "tallies", "--shell", "flibe2", "--log-level", "error")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.Equal(t, "2\tTBR tank", lines[0])
}

func TestGraph(t *testing.T) {
	out, err := run(t, "graph", "--highlight", "flibe1,flibe2", "--log-level", "error")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph LR\n"))
	assert.Contains(t, out, "class flibe1 highlight;")
	assert.Contains(t, out, "class flibe2 highlight;")
}

func TestReport(t *testing.T) {
	out, err := run(t, "report", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "# Blanket model `reference`")
}

func TestValidate(t *testing.T) {
	out, err := run(t, "validate", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, `Case "reference" is valid!`)
}

func TestBuild_ManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "build", "--format", "manifest", "--out", dir, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, `Wrote manifest model "reference"`)

	path := filepath.Join(dir, manifest.FileName)
	require.FileExists(t, path)

	out, err = run(t, "validate", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, `Model "reference" is valid!`)
}

func TestBuild_OpenMCWithoutGroups(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "build", "--out", dir, "--log-level", "error")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownGroupStructure)
	assert.NoFileExists(t, filepath.Join(dir, openmc.MaterialsFile))
}

func TestBuild_OpenMCWithFileStore(t *testing.T) {
	storeDir := t.TempDir()
	cfg := writeConfig(t, "store:\n  backend: file\n  path: "+storeDir+"\n")
	out := t.TempDir()
	textfile := filepath.Join(t.TempDir(), "blanket.prom")

	stdout, err := run(t, "build", "--config", cfg, "--out", out, "--metrics-textfile", textfile)
	require.NoError(t, err)
	assert.Contains(t, stdout, "(8 cells, 67 tallies)")

	for _, f := range []string{openmc.MaterialsFile, openmc.GeometryFile, openmc.SettingsFile, openmc.TalliesFile} {
		assert.FileExists(t, filepath.Join(out, f))
	}

	metrics, err := os.ReadFile(textfile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `blanket_builds_total{result="ok"} 1`)

	stdout, err = run(t, "models", "list", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "reference\n", stdout)

	stdout, err = run(t, "models", "show", "reference", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, stdout, "67 tallies over 13 filters.")

	_, err = run(t, "models", "rm", "reference", "--config", cfg)
	require.NoError(t, err)

	_, err = run(t, "models", "show", "reference", "--config", cfg)
	assert.Error(t, err)
}

func TestBuild_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := writeConfig(t, "store:\n  backend: redis\n  redis:\n    addr: \""+mr.Addr()+"\"\n")

	_, err := run(t, "build", "--config", cfg, "--out", t.TempDir())
	require.NoError(t, err)

	stdout, err := run(t, "models", "list", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "reference\n", stdout)

	// The case lock is released after saving.
	keys := mr.Keys()
	for _, k := range keys {
		assert.False(t, strings.HasPrefix(k, "blanket:lock:"), k)
		assert.NotContains(t, k, "blanket:model:lock:")
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Bad Log Level", []string{"radii", "--log-level", "verbose"}, "verbose"},
		{"Missing Config", []string{"radii", "--config", "does-not-exist.yaml"}, "config file"},
		{"No Store", []string{"models", "list", "--log-level", "error"}, "no model store configured"},
		{"Unknown Format", []string{"build", "--format", "mcnp", "--out", "x", "--log-level", "error"}, "unknown export format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
