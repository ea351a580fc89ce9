package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dcpgen/catalog"
	"github.com/katalvlaran/dcpgen/quiz"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func lines(s string) []string {
	var out []string
	sc := bufio.NewScanner(strings.NewReader(s))
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}

func TestGenerate(t *testing.T) {
	out, _, err := run(t, "generate", "--seed", "7", "--count", "3")
	require.NoError(t, err)
	got := lines(out)
	require.Len(t, got, 3)
	for _, l := range got {
		assert.NotEmpty(t, l)
	}

	again, _, err := run(t, "generate", "--seed", "7", "--count", "3")
	require.NoError(t, err)
	assert.Equal(t, out, again, "a seed reproduces the batch")
}

func TestGenerate_JSONViolate(t *testing.T) {
	out, _, err := run(t, "generate", "--seed", "11", "-d", "hard", "--violate", "--json", "-n", "2")
	require.NoError(t, err)

	for _, l := range lines(out) {
		var g struct {
			Expression string          `json:"expression"`
			Violated   bool            `json:"violated"`
			Tree       json.RawMessage `json:"tree"`
		}
		require.NoError(t, json.Unmarshal([]byte(l), &g))
		assert.True(t, g.Violated)
		assert.NotEmpty(t, g.Expression)
		assert.Contains(t, string(g.Tree), `"text":`)
	}
}

func TestGenerate_Errors(t *testing.T) {
	_, _, err := run(t, "generate", "--curvature", "wiggly")
	require.Error(t, err)

	_, _, err = run(t, "generate", "--difficulty", "brutal")
	require.ErrorIs(t, err, quiz.ErrUnknownDifficulty)

	_, _, err = run(t, "generate", "--p-term", "2")
	require.Error(t, err)
}

func TestQuiz(t *testing.T) {
	out, _, err := run(t, "quiz", "--seed", "3", "-n", "4")
	require.NoError(t, err)
	require.Contains(t, out, "\nAnswers:\n")

	parts := strings.SplitN(out, "\nAnswers:\n", 2)
	assert.Len(t, lines(parts[0]), 4)
	answers := lines(parts[1])
	require.Len(t, answers, 4)
	for _, l := range answers {
		_, ans, ok := strings.Cut(l, ". ")
		require.True(t, ok)
		assert.Contains(t, []string{"convex", "concave", "non-DCP"}, ans)
	}
}

func TestQuiz_JSONFixedKind(t *testing.T) {
	out, _, err := run(t, "quiz", "--seed", "5", "-k", "non-dcp", "-d", "Hard", "-n", "2", "--json")
	require.NoError(t, err)

	for _, l := range lines(out) {
		var ex quiz.Exercise
		require.NoError(t, json.Unmarshal([]byte(l), &ex))
		assert.Equal(t, "non-DCP", ex.Answer)
		assert.Equal(t, quiz.Hard, ex.Difficulty)
		assert.NotEmpty(t, ex.ID)
	}
}

func TestCatalog(t *testing.T) {
	out, _, err := run(t, "catalog")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, out, "quad_over_lin")
	assert.Len(t, lines(out), catalog.Default().Len()+1)

	out, _, err = run(t, "catalog", "--yaml")
	require.NoError(t, err)
	assert.Equal(t, string(catalog.DefaultTable()), out)
}

func TestMetricsDump(t *testing.T) {
	_, errOut, err := run(t, "--metrics", "generate", "--seed", "1", "-n", "5")
	require.NoError(t, err)
	assert.Contains(t, errOut, "dcpgen_generator_trees_total 5")
	assert.Contains(t, errOut, "dcpgen_generator_tree_depth_bucket")
}
