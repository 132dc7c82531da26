package commands_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adamluzsi/strsplit/cmd/strsplit/commands"
	"github.com/adamluzsi/strsplit/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := commands.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRoot_lines(t *testing.T) {
	out, _, err := execute(t, "", "a b c d e")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\nd\ne\n", out)
}

func TestRoot_trailingDelimiter(t *testing.T) {
	out, _, err := execute(t, "", "-d", " ", "-m", "json", "a b c d ")
	require.NoError(t, err)

	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []string{"a", "b", "c", "d", ""}, got)
}

func TestRoot_textDelimiter(t *testing.T) {
	out, _, err := execute(t, "", "--delimiter", ", ", "foo, bar, baz")
	require.NoError(t, err)
	assert.Equal(t, "foo\nbar\nbaz\n", out)
}

func TestRoot_stdin(t *testing.T) {
	out, _, err := execute(t, "key=value\r\nempty=\n", "-c", "=", "-m", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `["key","value"]`, lines[0])
	assert.JSONEq(t, `["empty",""]`, lines[1])
}

func TestRoot_emptyStdin(t *testing.T) {
	out, _, err := execute(t, "")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRoot_emptyLineStdin(t *testing.T) {
	out, _, err := execute(t, "\n", "-m", "json")
	require.NoError(t, err)
	assert.Equal(t, "[\"\"]\n", out)
}

func TestRoot_multipleArguments(t *testing.T) {
	out, _, err := execute(t, "", "a b", "versions", "c")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nversions\nc\n", out)
}

func TestRoot_spans(t *testing.T) {
	out, _, err := execute(t, "", "-c", "é", "-m", "spans", "aébé")
	require.NoError(t, err)
	assert.Equal(t, "0:1 3:4 6:6\n", out)
}

func TestRoot_before(t *testing.T) {
	out, _, err := execute(t, "", "-c", "o", "-m", "before", "hello world", "xyz")
	require.NoError(t, err)
	assert.Equal(t, "hell\nxyz\n", out)
}

func TestRoot_beforeWithoutChar(t *testing.T) {
	_, _, err := execute(t, "", "-m", "before", "hello world")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_invalidChar(t *testing.T) {
	_, _, err := execute(t, "", "-c", "ab", "hello")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRoot_env(t *testing.T) {
	t.Setenv("STRSPLIT_CHAR", "|")
	t.Setenv("STRSPLIT_MODE", "json")

	out, _, err := execute(t, "", "a|b")
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b"]`, out)
}

func TestRoot_configFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strsplit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("delimiter: \"::\"\nmode: json\n"), 0o600))

	out, _, err := execute(t, "", "--config", path, "a::b::")
	require.NoError(t, err)
	assert.JSONEq(t, `["a","b",""]`, out)
}

func TestRoot_debugLogging(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "debug", "a b")
	require.NoError(t, err)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	require.NotEmpty(t, entries)

	last := entries[len(entries)-1]
	assert.Equal(t, "debug", last["level"])
	assert.Equal(t, "input split", last["message"])
	assert.Equal(t, "lines", last["mode"])
	assert.Equal(t, " ", last["delimiter"])
	assert.Equal(t, float64(2), last["elements"])
}

func TestRoot_quietByDefault(t *testing.T) {
	_, stderr, err := execute(t, "", "a b")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "strsplit "+commands.Version+"\n", out)
}
