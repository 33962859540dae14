package cli

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/crosswordbuilder/internal/api"
	"github.com/mcoot/crosswordbuilder/internal/factory"
	"github.com/mcoot/crosswordbuilder/internal/testutil"
)

func startServer(t *testing.T) (*httptest.Server, *factory.TestApp) {
	t.Helper()
	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestWordList(t.Context()))
	return serve(t, app), app
}

func serve(t *testing.T, app *factory.TestApp) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:           testutil.NopLogger(),
		PuzzleController: app.PuzzleController,
		Dictionary:       app.DictionaryService,
	}))
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, serverURL string, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--server", serverURL}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestHealth(t *testing.T) {
	srv, _ := startServer(t)

	out, err := run(t, srv.URL, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Status: ok")
	assert.Contains(t, out, "Word list: 8 words")

	_, err = run(t, srv.URL, "health", "--require-word-list")
	assert.NoError(t, err)
}

func TestHealthRequireWordList(t *testing.T) {
	srv := serve(t, factory.NewTestApp())

	out, err := run(t, srv.URL, "health")
	require.NoError(t, err)
	assert.Contains(t, out, "Word list: not loaded")

	_, err = run(t, srv.URL, "health", "--require-word-list")
	assert.ErrorIs(t, err, errWordListNotLoaded)
}

func TestPuzzleLifecycle(t *testing.T) {
	srv, app := startServer(t)
	app.MockRandom.QueueString("PUZZLE000001")

	out, err := run(t, srv.URL, "puzzle", "create", "Names", "--word", "jacob:Patriarch")
	require.NoError(t, err)
	assert.Contains(t, out, "Puzzle: Names (PUZZLE000001)")
	assert.Contains(t, out, "Placed JACOB across at (0, 0)")

	out, err = run(t, srv.URL, "puzzle", "add", "PUZZLE000001", "john", "Gospel")
	require.NoError(t, err)
	assert.Contains(t, out, "Placed JOHN down at (0, 0)")
	assert.Contains(t, out, "score 2.500")

	out, err = run(t, srv.URL, "puzzle", "get", "PUZZLE000001")
	require.NoError(t, err)
	assert.Contains(t, out, "  JACOB\n  O....\n")
	assert.Contains(t, out, "Across:\n  1. Patriarch (5)\n")
	assert.Contains(t, out, "Down:\n  1. Gospel (4)\n")

	out, err = run(t, srv.URL, "puzzle", "render", "PUZZLE000001")
	require.NoError(t, err)
	assert.Contains(t, out, "|JACOB|\n|O████|")

	out, err = run(t, srv.URL, "puzzle", "render", "--html", "PUZZLE000001")
	require.NoError(t, err)
	assert.Contains(t, out, `<table class="xword">`)

	out, err = run(t, srv.URL, "--output", "json", "puzzle", "list")
	require.NoError(t, err)
	var list PuzzleList
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list.Puzzles, 1)
	assert.Equal(t, 2, list.Puzzles[0].WordCount)

	out, err = run(t, srv.URL, "puzzle", "delete", "PUZZLE000001")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted puzzle PUZZLE000001")

	out, err = run(t, srv.URL, "puzzle", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No puzzles")
}

func TestPuzzleBuildFromWordList(t *testing.T) {
	srv, app := startServer(t)
	app.MockRandom.QueueString("PUZZLE000001")

	_, err := run(t, srv.URL, "puzzle", "create", "Fill")
	require.NoError(t, err)

	out, err := run(t, srv.URL, "-o", "json", "puzzle", "build", "PUZZLE000001", "--from-word-list", "--limit", "3")
	require.NoError(t, err)

	var result BuildResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 3, len(result.Placed)+len(result.Skipped))
	assert.Equal(t, "JACOB", result.Placed[0].Text)
}

func TestPuzzleBuildFlagsUnlistedWords(t *testing.T) {
	srv, app := startServer(t)
	app.MockRandom.QueueString("PUZZLE000001")

	_, err := run(t, srv.URL, "puzzle", "create", "Mixed")
	require.NoError(t, err)

	out, err := run(t, srv.URL, "puzzle", "build", "PUZZLE000001", "-w", "jacob", "-w", "jinx")
	require.NoError(t, err)
	assert.Contains(t, out, "Not on word list: JINX\n")
}

func TestPuzzleBuildRequiresWords(t *testing.T) {
	srv, _ := startServer(t)

	_, err := run(t, srv.URL, "puzzle", "build", "PUZZLE000001")
	assert.ErrorContains(t, err, "--from-word-list")
}

func TestAPIErrorsSurface(t *testing.T) {
	srv, _ := startServer(t)

	_, err := run(t, srv.URL, "puzzle", "get", "MISSING")
	assert.ErrorContains(t, err, "PUZZLE_NOT_FOUND")
}

const solvePlan = `title: Pets
strategy: as-given
words:
  - word: cat
    clue: Feline
  - word: dog
  - word: toe
`

func TestSolveLocally(t *testing.T) {
	path := testutil.WriteFile(t, "pets.yaml", solvePlan)

	// no server needed
	out, err := run(t, "http://127.0.0.1:1", "solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Pets (As given)\n+---+\n|CAT|\n|██O|\n|██E|\n+---+\nScore: 1.800\n")
	assert.Contains(t, out, "Skipped (1): dog")
	assert.Contains(t, out, "  1. Feline (3)")
}

func TestSolveJSON(t *testing.T) {
	path := testutil.WriteFile(t, "pets.yaml", solvePlan)

	out, err := run(t, "http://127.0.0.1:1", "-o", "json", "solve", path)
	require.NoError(t, err)

	var result SolveResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "Pets", result.Title)
	require.Len(t, result.Placed, 2)
	assert.Equal(t, "TOE", result.Placed[1].Text)
	assert.Equal(t, 2, result.Placed[1].Number)
	assert.True(t, strings.HasPrefix(result.Grid, "+---+"))
}

func TestSolveStrategyOverride(t *testing.T) {
	path := testutil.WriteFile(t, "pets.yaml", solvePlan)

	_, err := run(t, "http://127.0.0.1:1", "solve", "--strategy", "sideways", path)
	assert.ErrorContains(t, err, "invalid build strategy")
}

func TestSolveBadPlan(t *testing.T) {
	path := testutil.WriteFile(t, "bad.yaml", "title: ''\n")

	_, err := run(t, "http://127.0.0.1:1", "solve", path)
	assert.ErrorContains(t, err, "invalid plan")
}

func TestParseWordFlags(t *testing.T) {
	assert.Equal(t, []WordEntry{
		{Word: "owl", Clue: "Night hunter"},
		{Word: "cat"},
		{Word: "eel", Clue: "Fish: slippery"},
	}, parseWordFlags([]string{"owl: Night hunter", "cat", "eel:Fish: slippery"}))
}
