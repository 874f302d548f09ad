package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geange/langrec/pushdown"
)

const (
	nfaText = `3
0 1 2
4
0 0 a
0 1 a
0 0 b
1 2 b
0
1 2
3 ab aab ba
`
	cnfText = `3 S A B
3
0 S A B
1 A a
1 B b
2 ab ba
`
	pdaText = `3 0 1 2
0
1 2
2 $ (
4
0 1 0 0 1 $
1 1 ( 0 1 (
1 1 ) ( 0
1 2 0 $ 0
2 (()) (()
`
	loopingPDAText = `4 0 1 2 3
0
0
0
4
0 1 0 0 0
1 2 0 0 0
2 3 0 0 0
3 1 0 0 0
1 a
`
	nfaYAML = `kind: fa
states: [0, 1]
initial: 0
finals: [1]
transitions:
  - {from: 0, to: 1, symbol: a}
  - {from: 1, to: 1, symbol: b}
queries: [ab, ba]
`
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestEval(t *testing.T) {
	path := writeFile(t, "nfa.txt", nfaText)

	out, err := run(t, "eval", "-f", path, "--all-paths=false")
	require.NoError(t, err)
	assert.Contains(t, out, "0 -> 0 -> 1 -> 2")
	assert.Contains(t, out, "rejected")
	assert.Equal(t, 2, strings.Count(out, "accepted"))

	out, err = run(t, "eval", "-f", path, "--all-paths", "abab")
	require.NoError(t, err)
	assert.Contains(t, out, "0 -> 0 -> 0 -> 1 -> 2")
	assert.NotContains(t, out, "rejected")
}

func TestEval_YAML(t *testing.T) {
	path := writeFile(t, "nfa.yaml", nfaYAML)

	out, err := run(t, "eval", "-f", path, "--all-paths=false", "--show")
	require.NoError(t, err)
	assert.Contains(t, out, "states: 0 1")
	assert.Contains(t, out, "0 -> 1 -> 1")
	assert.Contains(t, out, "rejected")
}

func TestDeterminize(t *testing.T) {
	path := writeFile(t, "nfa.txt", nfaText)

	out, err := run(t, "determinize", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "DFA:")
	assert.Contains(t, out, "states: 0 1 2\n")
	assert.Contains(t, out, "finals: 2\n")
	assert.Equal(t, 2, strings.Count(out, "accepted"))

	_, err = run(t, "determinize", "-f", path, "--work-limit", "2")
	assert.Error(t, err)
}

func TestMinimize(t *testing.T) {
	path := writeFile(t, "nfa.txt", nfaText)

	out, err := run(t, "minimize", "-f", path)
	require.NoError(t, err)
	before := strings.Index(out, "Before:")
	after := strings.Index(out, "After:")
	require.NotEqual(t, -1, before)
	require.Greater(t, after, before)
	assert.Contains(t, out[after:], "states: 0 1 2\n")
	assert.Equal(t, 2, strings.Count(out[after:], "accepted"))
	assert.Contains(t, out[after:], "rejected")
}

func TestCYK(t *testing.T) {
	path := writeFile(t, "cnf.txt", cnfText)

	out, err := run(t, "cyk", "-f", path, "--start", "S", "--table=false")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "accepted"))
	assert.Contains(t, out, "rejected")

	out, err = run(t, "cyk", "-f", path, "--table", "ab")
	require.NoError(t, err)
	assert.Contains(t, out, "ab:\n")

	_, err = run(t, "cyk", "-f", path, "--start", "SS")
	assert.Error(t, err)
}

func TestPDA(t *testing.T) {
	path := writeFile(t, "pda.txt", pdaText)

	out, err := run(t, "pda", "-f", path, "--max-depth", "100")
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "accepted"))
	assert.Equal(t, 1, strings.Count(out, "rejected"))

	out, err = run(t, "pda", "-f", path, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "accepted")

	looping := writeFile(t, "loop.txt", loopingPDAText)
	_, err = run(t, "pda", "-f", looping, "--max-depth", "50")
	assert.ErrorIs(t, err, pushdown.ErrResourceExhausted)
}

func TestRoot_Errors(t *testing.T) {
	_, err := run(t, "eval", "-f", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	path := writeFile(t, "nfa.txt", nfaText)
	_, err = run(t, "eval", "-f", path, "--format", "xml")
	assert.Error(t, err)

	_, err = run(t, "eval", "-f", path, "--format", "text", "--epsilon", "ab")
	assert.Error(t, err)

	_, err = run(t, "interactive", "--epsilon", "0")
	assert.Error(t, err)
}
