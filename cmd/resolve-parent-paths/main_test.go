package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const missing = "beep-boop-parentpaths-hello-world"

// runCLI runs the CLI with an isolated config directory.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// setupProject creates root/package.json, root/README.md and an empty
// root/test directory, returning root.
func setupProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "test"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.md"), []byte("# x"), 0644))
	return root
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd(&bytes.Buffer{}, &bytes.Buffer{})

	assert.Equal(t, "Resolve paths by walking parent directories", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	for _, name := range []string{"dir", "mode", "preset", "format", "verbose", "trace", "version"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
}

func TestHelp(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, flag)

			assert.Equal(t, 0, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "resolve-parent-paths")
			assert.Contains(t, stderr, "--mode")
			assert.Contains(t, stderr, "--dir")
		})
	}
}

func TestVersion(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		t.Run(flag, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, flag)

			assert.Equal(t, 0, code)
			assert.Empty(t, stdout)
			assert.Equal(t, version+"\n", stderr)
		})
	}
}

func TestModes(t *testing.T) {
	root := setupProject(t)
	dir := filepath.Join(root, "test")
	pkg := filepath.Join(root, "package.json")
	readme := filepath.Join(root, "README.md")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "first",
			args: []string{"--mode", "first", "--dir", dir, "package.json", missing},
			want: []string{pkg},
		},
		{
			name: "some",
			args: []string{"--mode", "some", "--dir", dir, "package.json", missing, "README.md"},
			want: []string{pkg, readme},
		},
		{
			name: "all",
			args: []string{"--mode", "all", "--dir", dir, "package.json", "README.md"},
			want: []string{pkg, readme},
		},
		{
			name: "default mode is all",
			args: []string{"--dir", dir, "package.json", "README.md"},
			want: []string{pkg, readme},
		},
		{
			name: "each",
			args: []string{"--mode", "each", "--dir", dir, "package.json", "test"},
			want: []string{pkg, dir},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)

			require.Equal(t, 0, code, stderr)
			assert.Empty(t, stderr)
			assert.Equal(t, tt.want, lines(stdout))
		})
	}
}

func TestAllWithMissingPrintsNothing(t *testing.T) {
	root := setupProject(t)

	code, stdout, stderr := runCLI(t, "--dir", root, "package.json", missing)

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestEachKeepsUnresolvedSlots(t *testing.T) {
	root := setupProject(t)
	pkg := filepath.Join(root, "package.json")

	t.Run("text", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "--mode", "each", "--dir", root, missing, "package.json")
		require.Equal(t, 0, code)
		assert.Equal(t, "\n"+pkg+"\n", stdout)
	})

	t.Run("json", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "--mode", "each", "--format", "json", "--dir", root, "package.json", missing)
		require.Equal(t, 0, code)
		assert.JSONEq(t, `["`+pkg+`", null]`, stdout)
	})

	t.Run("yaml", func(t *testing.T) {
		code, stdout, _ := runCLI(t, "--mode", "each", "-f", "yaml", "--dir", root, "package.json", missing)
		require.Equal(t, 0, code)
		assert.YAMLEq(t, "- "+pkg+"\n- null\n", stdout)
	})
}

func TestEmptyResultJSON(t *testing.T) {
	root := setupProject(t)

	code, stdout, _ := runCLI(t, "--mode", "first", "--format", "json", "--dir", root, missing)
	require.Equal(t, 0, code)
	assert.JSONEq(t, `[]`, stdout)
}

func TestNoPaths(t *testing.T) {
	code, stdout, stderr := runCLI(t, "--mode", "bogus")

	assert.Equal(t, 0, code)
	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect string
	}{
		{
			name:   "invalid mode",
			args:   []string{"--mode", "bogus", "package.json"},
			expect: "Error: invalid option: mode must be one of first, some, all, each. Value: `bogus`\n",
		},
		{
			name:   "invalid format",
			args:   []string{"--format", "xml", "package.json"},
			expect: "Error: invalid format \"xml\" (expected text, json or yaml)\n",
		},
		{
			name:   "unknown preset",
			args:   []string{"--preset", "nope"},
			expect: "Error: preset not found: nope\n",
		},
		{
			name:   "unknown flag",
			args:   []string{"--beep", "package.json"},
			expect: "Error: unknown flag: --beep\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)

			assert.Equal(t, 1, code)
			assert.Empty(t, stdout)
			assert.Equal(t, tt.expect, stderr)
		})
	}
}

func TestPreset(t *testing.T) {
	root := setupProject(t)
	dir := filepath.Join(root, "test")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".parentpaths.yaml"), []byte(`
mode: first
presets:
  node:
    paths: [package.json]
    mode: each
  broken:
    paths: [package.json, 7]
`), 0644))

	t.Run("preset paths and mode", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "--dir", dir, "--preset", "node", missing)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, filepath.Join(root, "package.json")+"\n\n", stdout)
	})

	t.Run("flag mode overrides preset", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "--dir", dir, "-p", "node", "--mode", "some", missing)
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, filepath.Join(root, "package.json")+"\n", stdout)
	})

	t.Run("config default mode", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "--dir", dir, "README.md", "package.json")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, filepath.Join(root, "README.md")+"\n", stdout)
	})

	t.Run("invalid preset paths", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "--dir", dir, "--preset", "broken")
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Error: preset broken: invalid argument")
	})
}

func TestMalformedLocalConfig(t *testing.T) {
	root := setupProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".parentpaths.yaml"), []byte("presets: [\n"), 0644))
	pkg := filepath.Join(root, "package.json")

	t.Run("explicit mode does not read config", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "--mode", "first", "--dir", root, "package.json")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, pkg+"\n", stdout)
	})

	t.Run("default mode reads config", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, "--dir", root, "package.json")
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "failed to parse config file")
	})
}

func TestLocalConfigDirectoryIsIgnored(t *testing.T) {
	root := setupProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".parentpaths.yaml"), 0755))

	code, stdout, stderr := runCLI(t, "--dir", root, "package.json")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, filepath.Join(root, "package.json")+"\n", stdout)
}

func TestTrace(t *testing.T) {
	root := setupProject(t)
	dir := filepath.Join(root, "test")

	code, stdout, stderr := runCLI(t, "--trace", "--mode", "first", "--dir", dir, "package.json")

	require.Equal(t, 0, code)
	assert.Equal(t, filepath.Join(root, "package.json")+"\n", stdout)
	assert.Contains(t, stderr, "[0] "+dir)
	assert.Contains(t, stderr, "[1] "+root)
	assert.Contains(t, stderr, "- package.json")
	assert.Contains(t, stderr, "+ package.json")
}

func TestVerbose(t *testing.T) {
	root := setupProject(t)

	code, _, stderr := runCLI(t, "--verbose", "--mode", "first", "--dir", root, "package.json")

	require.Equal(t, 0, code)
	assert.Contains(t, stderr, "resolving parent paths")
	assert.Contains(t, stderr, "resolved parent paths")
}
