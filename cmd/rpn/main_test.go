package main

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	var stdout, stderr bytes.Buffer
	err := run(append([]string{"rpn"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	t.Run("arguments", func(t *testing.T) {
		out, _, err := runCLI(t, "", "2 3 *", "1 2")
		require.NoError(t, err)
		assert.Equal(t, "6\n2\n", out)
	})

	t.Run("stdin", func(t *testing.T) {
		out, _, err := runCLI(t, "2 3 +\n\n  \n4 5 *\n")
		require.NoError(t, err)
		assert.Equal(t, "5\n20\n", out)
	})

	t.Run("long stdin line", func(t *testing.T) {
		expr := "1" + strings.Repeat(" 1 +", 20_001)
		require.Greater(t, len(expr), bufio.MaxScanTokenSize)

		out, _, err := runCLI(t, expr+"\n2 3 *\n")
		require.NoError(t, err)
		assert.Equal(t, "20002\n6\n", out)
	})

	t.Run("float", func(t *testing.T) {
		out, _, err := runCLI(t, "", "-t", "float", "4 2 5 * + 1 3 2 * + /")
		require.NoError(t, err)
		assert.Equal(t, "0.5\n", out)
	})

	t.Run("complex", func(t *testing.T) {
		out, _, err := runCLI(t, "", "-t", "complex", "2+1j 7j *")
		require.NoError(t, err)
		assert.Equal(t, "(-7+14i)\n", out)
	})

	t.Run("natural order", func(t *testing.T) {
		out, _, err := runCLI(t, "", "-n", "4 2 -")
		require.NoError(t, err)
		assert.Equal(t, "2\n", out)
	})

	t.Run("failures are reported and counted", func(t *testing.T) {
		out, errOut, err := runCLI(t, "", "1 +", "abc", "3")
		require.ErrorIs(t, err, errFailed)
		assert.Equal(t, "3\n", out)
		assert.Contains(t, errOut, "1 +: stack underflow")
		assert.Contains(t, errOut, "abc: token conversion failed")
	})

	t.Run("strict", func(t *testing.T) {
		_, errOut, err := runCLI(t, "", "-s", "1 2")
		require.ErrorIs(t, err, errFailed)
		assert.Contains(t, errOut, "exactly one value")
	})

	t.Run("help", func(t *testing.T) {
		out, _, err := runCLI(t, "", "-h")
		require.NoError(t, err)
		assert.Contains(t, out, "usage: rpn")
	})

	t.Run("bad flag", func(t *testing.T) {
		_, errOut, err := runCLI(t, "", "-t", "decimal")
		require.Error(t, err)
		assert.Contains(t, errOut, "usage: rpn")
	})

	t.Run("debug logging", func(t *testing.T) {
		_, errOut, err := runCLI(t, "", "-v", "1 2 +")
		require.NoError(t, err)
		assert.Contains(t, errOut, "config loaded")
		assert.Contains(t, errOut, "operator applied")
	})
}

func TestRunOperatorFile(t *testing.T) {
	dir := t.TempDir()

	merged := filepath.Join(dir, "merged.yaml")
	require.NoError(t, os.WriteFile(merged, []byte(`
operators:
  - token: "^"
    starlark: "lambda exp, base: math.pow(base, exp)"
  - token: sqrt
    starlark: math.sqrt
    arity: 1
`), 0o600))

	out, _, err := runCLI(t, "", "-t", "float", "-o", merged, "2 10 ^", "16 sqrt", "2 3 *")
	require.NoError(t, err)
	assert.Equal(t, "1024\n4\n6\n", out)

	replaced := filepath.Join(dir, "replaced.yaml")
	require.NoError(t, os.WriteFile(replaced, []byte(`
overwrite: true
operators:
  - token: neg
    starlark: "lambda a: -a"
`), 0o600))

	out, errOut, err := runCLI(t, "", "-o", replaced, "5 neg", "2 3 +")
	require.ErrorIs(t, err, errFailed)
	assert.Equal(t, "-5\n", out)
	assert.Contains(t, errOut, `token "+"`)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("operators:\n  - token: bad\n    starlark: 'lambda a: a +'\n"), 0o600))

	_, _, err = runCLI(t, "", "-o", broken, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `operator "bad"`)

	t.Setenv("RPN_OPERATORS", filepath.Join(dir, "missing.yaml"))
	_, _, err = runCLI(t, "", "1")
	require.ErrorIs(t, err, os.ErrNotExist)
}
