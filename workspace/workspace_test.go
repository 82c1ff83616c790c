package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/plain/config"
	"github.com/dhamidi/plain/syntax"
)

func newWorkspace(t *testing.T, root string) *Workspace {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.LSP.ReportPartial = true
	w, err := New(root, cfg)
	require.NoError(t, err)
	return w
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScanAllMatchesPatterns(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.plain"), "a Number has a Factorial.\n")
	writeFile(t, filepath.Join(root, "nested", "deep", "b.plain"), "it is 1.\n")
	writeFile(t, filepath.Join(root, "notes.txt"), "ignored entirely\n")

	w := newWorkspace(t, root)
	require.NoError(t, w.ScanAll())

	assert.Equal(t, []string{
		filepath.Join(root, "a.plain"),
		filepath.Join(root, "nested", "deep", "b.plain"),
	}, w.Paths())

	doc := w.GetFile(filepath.Join(root, "a.plain"))
	require.NotNil(t, doc)
	require.Len(t, doc.Analysis, 1)
	require.Len(t, doc.Analysis[0].Clauses, 1)
	assert.True(t, doc.Analysis[0].Clauses[0].Complete())
	assert.Empty(t, w.Problems(doc))
}

func TestUnknownWordsAreProblems(t *testing.T) {
	w := newWorkspace(t, t.TempDir())
	doc := w.Analyze("x.plain", []byte("a Number\nhas a florp.\n"))

	assert.Empty(t, doc.Analysis)
	problems := w.Problems(doc)
	require.Len(t, problems, 1)
	p := problems[0]
	assert.Equal(t, SeverityError, p.Severity)
	assert.Equal(t, 2, p.Start.Line)
	assert.Equal(t, 7, p.Start.Column)
	assert.Equal(t, 13, p.End.Column)
	assert.Contains(t, p.Message, `unknown word "florp"`)
}

func TestPartialClausesAreWarnings(t *testing.T) {
	w := newWorkspace(t, t.TempDir())
	doc := w.Analyze("x.plain", []byte("it it.\n"))

	problems := doc.Problems(true)
	require.Len(t, problems, 1)
	assert.Equal(t, SeverityWarning, problems[0].Severity)
	assert.Equal(t, syntax.Position{Offset: 3, Line: 1, Column: 4}, problems[0].Start)
	assert.Equal(t, 7, problems[0].End.Column)

	assert.Empty(t, doc.Problems(false))
}

func TestClauseTooLongIsAnError(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Parser.MaxTokens = 2
	w, err := New(t.TempDir(), cfg)
	require.NoError(t, err)

	doc := w.Analyze("x.plain", []byte("a Number has a Factorial.\n"))
	var tooLong *syntax.ClauseTooLongError
	require.ErrorAs(t, doc.Err, &tooLong)
	assert.Len(t, doc.Problems(false), 1)
}

func TestClauseAt(t *testing.T) {
	w := newWorkspace(t, t.TempDir())
	doc := w.Analyze("x.plain", []byte("if the Number is 0,\n\tthe Factorial is 1.\n"))

	clause, ok := doc.ClauseAt(syntax.Position{Line: 2, Column: 6})
	require.True(t, ok)
	assert.Equal(t, "the Factorial is 1.", clause.Tree().String())

	clause, ok = doc.ClauseAt(syntax.Position{Line: 1, Column: 1})
	require.True(t, ok)
	assert.Equal(t, "if the Number is 0,", clause.Tree().String())

	_, ok = doc.ClauseAt(syntax.Position{Line: 5, Column: 1})
	assert.False(t, ok)
}

func TestRemoveFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.plain")
	writeFile(t, path, "it is 1.\n")

	w := newWorkspace(t, root)
	require.NoError(t, w.ScanFile(path))
	require.NotNil(t, w.GetFile(path))

	w.RemoveFile(path)
	assert.Nil(t, w.GetFile(path))
}

func TestMatches(t *testing.T) {
	root := t.TempDir()
	w := newWorkspace(t, root)

	assert.True(t, w.Matches(filepath.Join(root, "x.plain")))
	assert.True(t, w.Matches(filepath.Join(root, "a", "b", "x.plain")))
	assert.False(t, w.Matches(filepath.Join(root, "x.txt")))
}

// waitFor skips events for intermediate states, such as a file that was
// created but not yet written.
func waitFor(t *testing.T, events <-chan Event, path string, done func(Event) bool) Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case e, ok := <-events:
			require.True(t, ok, "events closed before %s", path)
			if e.Path == path && done(e) {
				return e
			}
		case <-timeout:
			t.Fatalf("no event for %s", path)
		}
	}
}

func TestWatcherReanalyzesChangedFiles(t *testing.T) {
	root := t.TempDir()
	w := newWorkspace(t, root)

	watcher, err := NewWatcher(w)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, watcher.Start(ctx))
	defer watcher.Stop()

	path := filepath.Join(root, "a.plain")
	writeFile(t, path, "it is 1.\n")
	e := waitFor(t, watcher.Events(), path, func(e Event) bool {
		return e.Document != nil && len(e.Document.Analysis) == 1
	})
	assert.Equal(t, "it is 1.", e.Document.Analysis[0].Clauses[0].Tree().String())

	require.NoError(t, os.Remove(path))
	waitFor(t, watcher.Events(), path, func(e Event) bool { return e.Document == nil })
	assert.Nil(t, w.GetFile(path))
}

func TestWatcherStopClosesEvents(t *testing.T) {
	w := newWorkspace(t, t.TempDir())
	watcher, err := NewWatcher(w)
	require.NoError(t, err)
	require.NoError(t, watcher.Start(context.Background()))
	require.NoError(t, watcher.Stop())

	select {
	case _, ok := <-watcher.Events():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("events not closed")
	}
}
