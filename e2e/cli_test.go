package e2e_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/crosswordbuilder/internal/api"
	"github.com/mcoot/crosswordbuilder/internal/factory"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "xword-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/xword")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// testServer manages a real HTTP server for e2e tests
type testServer struct {
	server   *http.Server
	addr     string
	shutdown func()
}

func startTestServer(t *testing.T) *testServer {
	t.Helper()

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// Create application
	projectRoot := findProjectRoot(t)
	app, err := factory.New(t.Context(), factory.Config{
		WordListPath: filepath.Join(projectRoot, "data/words.txt"),
		Logger:       logger,
	})
	require.NoError(t, err)

	server := &http.Server{
		Addr: addr,
		Handler: api.NewRouter(api.RouterConfig{
			Logger:           logger,
			PuzzleController: app.PuzzleController,
			Dictionary:       app.DictionaryService,
		}),
	}

	// Start server
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			t.Logf("server error: %v", err)
		}
	}()

	// Wait for server to be ready
	serverURL := "http://" + addr
	waitForServer(t, serverURL+"/api/v1/health")

	return &testServer{
		server: server,
		addr:   serverURL,
		shutdown: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = server.Shutdown(ctx)
			_ = app.Close()
		},
	}
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type wordResponse struct {
	Number      int    `json:"number"`
	Orientation string `json:"orientation"`
	X           int    `json:"x"`
	Y           int    `json:"y"`
	Text        string `json:"text"`
	Clue        string `json:"clue"`
}

type puzzleResponse struct {
	ID    string         `json:"id"`
	Title string         `json:"title"`
	Words []wordResponse `json:"words"`
	Rows  []string       `json:"rows"`
	Score *float64       `json:"score"`
}

type buildResponse struct {
	Puzzle  puzzleResponse `json:"puzzle"`
	Placed  []wordResponse `json:"placed"`
	Skipped []struct {
		Word string `json:"word"`
	} `json:"skipped"`
}

type addWordResponse struct {
	Puzzle puzzleResponse `json:"puzzle"`
	Placed wordResponse   `json:"placed"`
}

type listResponse struct {
	Puzzles []struct {
		ID        string `json:"id"`
		WordCount int    `json:"word_count"`
	} `json:"puzzles"`
}

type healthResponse struct {
	Status        string `json:"status"`
	WordListReady bool   `json:"word_list_ready"`
	WordCount     int    `json:"word_count"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.WordListReady)
	assert.Equal(t, 40, resp.WordCount)
}

func TestCLI_PuzzleFlow(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	// Create seeded with one word
	output, err := cli.run("puzzle", "create", "Names", "--word", "jacob:Patriarch")
	require.NoError(t, err, "output: %s", output)

	var created buildResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))
	id := created.Puzzle.ID
	require.Len(t, id, 12)
	require.Len(t, created.Placed, 1)
	assert.Equal(t, "across", created.Placed[0].Orientation)

	// Add a crossing word
	output, err = cli.run("puzzle", "add", id, "john", "Gospel")
	require.NoError(t, err, "output: %s", output)

	var added addWordResponse
	require.NoError(t, json.Unmarshal([]byte(output), &added))
	assert.Equal(t, wordResponse{Number: 1, Orientation: "down", X: 0, Y: 0, Text: "JOHN", Clue: "Gospel"}, added.Placed)
	require.NotNil(t, added.Puzzle.Score)
	assert.InDelta(t, 2.5, *added.Puzzle.Score, 1e-9)

	// Get reflects both words
	output, err = cli.run("puzzle", "get", id)
	require.NoError(t, err, "output: %s", output)

	var got puzzleResponse
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, []string{"JACOB", "O....", "H....", "N...."}, got.Rows)

	// Render as text
	output, err = cli.run("puzzle", "render", id)
	require.NoError(t, err, "output: %s", output)
	assert.True(t, strings.HasPrefix(output, "+-----+\n|JACOB|\n"), output)

	// List then delete
	output, err = cli.run("puzzle", "list")
	require.NoError(t, err, "output: %s", output)

	var list listResponse
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	require.Len(t, list.Puzzles, 1)
	assert.Equal(t, 2, list.Puzzles[0].WordCount)

	output, err = cli.run("puzzle", "delete", id)
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Equal(t, "Deleted puzzle "+id, msg.Message)

	_, err = cli.run("puzzle", "get", id)
	assert.Error(t, err, "should not find puzzle after delete")
}

func TestCLI_NoValidPlacement(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("puzzle", "create", "Pets", "--word", "cat")
	require.NoError(t, err, "output: %s", output)

	var created buildResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	// a one-row grid offers no crossing for DOG
	output, err = cli.run("puzzle", "add", created.Puzzle.ID, "dog")
	assert.Error(t, err)
	assert.Contains(t, output, "NO_VALID_PLACEMENT")
}

func TestCLI_BuildFromWordList(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("puzzle", "create", "Fill")
	require.NoError(t, err, "output: %s", output)

	var created buildResponse
	require.NoError(t, json.Unmarshal([]byte(output), &created))

	output, err = cli.run("puzzle", "build", created.Puzzle.ID, "--from-word-list", "--limit", "10", "--strategy", "longest-first")
	require.NoError(t, err, "output: %s", output)

	var built buildResponse
	require.NoError(t, json.Unmarshal([]byte(output), &built))
	assert.Len(t, built.Placed, len(built.Puzzle.Words))
	assert.Equal(t, 10, len(built.Placed)+len(built.Skipped))
	// longest-first puts a five-letter word down first
	assert.Len(t, built.Placed[0].Text, 5)
}

func TestCLI_Solve(t *testing.T) {
	cli := newCLIRunner(t, "http://127.0.0.1:1")

	planPath := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(planPath, []byte(`title: Pets
words:
  - word: cat
  - word: dog
  - word: toe
`), 0o600))

	output, err := cli.run("solve", planPath)
	require.NoError(t, err, "output: %s", output)

	var result struct {
		Strategy string         `json:"strategy"`
		Grid     string         `json:"grid"`
		Placed   []wordResponse `json:"placed"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, "as-given", result.Strategy)
	assert.Len(t, result.Placed, 2)
	assert.Contains(t, result.Grid, "|CAT|")
}

func TestCLI_ErrorHandling(t *testing.T) {
	ts := startTestServer(t)
	defer ts.shutdown()

	cli := newCLIRunner(t, ts.addr)

	output, err := cli.run("puzzle", "get", "INVALID")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")

	output, err = cli.run("puzzle", "create", "   ")
	assert.Error(t, err)
	assert.Contains(t, output, "INVALID_TITLE")
}
