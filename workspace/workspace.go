// Package workspace keeps the analysis of every plain-English document
// under a root directory.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/plain/config"
	"github.com/dhamidi/plain/discourse"
	"github.com/dhamidi/plain/lexer"
	"github.com/dhamidi/plain/syntax"
	"github.com/dhamidi/plain/vocabulary"
)

type Workspace struct {
	mu            sync.RWMutex
	rootDir       string
	patterns      []string
	reportPartial bool
	vocab         *vocabulary.Vocabulary
	tokenizer     *lexer.Tokenizer
	parser        *syntax.Parser
	files         map[string]*Document
	log           commonlog.Logger
}

// Document is the analysis of one file. Analysis is empty when the file
// has unknown words or could not be parsed.
type Document struct {
	Path     string
	Content  []byte
	Unknown  []*lexer.Error
	Analysis []syntax.SentenceAnalysis
	Err      error
}

func New(rootDir string, cfg *config.Config) (*Workspace, error) {
	vocab, err := cfg.Vocabulary()
	if err != nil {
		return nil, fmt.Errorf("build vocabulary: %w", err)
	}
	log := commonlog.GetLogger("plain.workspace")
	return &Workspace{
		rootDir:       rootDir,
		patterns:      cfg.Workspace.Patterns,
		reportPartial: cfg.LSP.ReportPartial,
		vocab:         vocab,
		tokenizer:     lexer.New(vocab),
		parser:        syntax.NewParser(vocab, syntax.WithMaxTokens(cfg.Parser.MaxTokens)),
		files:         make(map[string]*Document),
		log:           log,
	}, nil
}

func (w *Workspace) RootDir() string {
	return w.rootDir
}

func (w *Workspace) Vocabulary() *vocabulary.Vocabulary {
	return w.vocab
}

// Matches reports whether path is a document of this workspace.
func (w *Workspace) Matches(path string) bool {
	rel, err := filepath.Rel(w.rootDir, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range w.patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ScanAll analyzes every file under the root that matches a pattern.
func (w *Workspace) ScanAll() error {
	fsys := os.DirFS(w.rootDir)
	seen := make(map[string]bool)
	for _, pattern := range w.patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("glob %q: %w", pattern, err)
		}
		for _, m := range matches {
			path := filepath.Join(w.rootDir, filepath.FromSlash(m))
			if seen[path] {
				continue
			}
			seen[path] = true
			if err := w.ScanFile(path); err != nil {
				w.log.Warningf("scan %s: %s", path, err)
			}
		}
	}
	return nil
}

func (w *Workspace) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	w.UpdateFile(path, content)
	return nil
}

func (w *Workspace) UpdateFile(path string, content []byte) *Document {
	doc := w.Analyze(path, content)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.files[path] = doc
	w.log.Debugf("analyzed %s: %d unknown words", path, len(doc.Unknown))
	return doc
}

func (w *Workspace) RemoveFile(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.files, path)
}

func (w *Workspace) GetFile(path string) *Document {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.files[path]
}

// Paths lists the analyzed documents in sorted order.
func (w *Workspace) Paths() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Analyze tokenizes and parses content without storing the result.
func (w *Workspace) Analyze(path string, content []byte) *Document {
	doc := &Document{Path: path, Content: content}
	tokens, errs := w.tokenizer.Scan(string(content))
	if len(errs) > 0 {
		doc.Unknown = errs
		return doc
	}
	doc.Analysis, doc.Err = w.parser.Analyze(discourse.Segment(tokens))
	return doc
}

func (w *Workspace) Problems(doc *Document) []Problem {
	return doc.Problems(w.reportPartial)
}

type Severity int

const (
	SeverityError Severity = iota + 1
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Problem is a located finding in a document. End is exclusive.
type Problem struct {
	Start    syntax.Position
	End      syntax.Position
	Severity Severity
	Message  string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s: %s", p.Start, p.Severity, p.Message)
}

// Problems lists unknown words, parse failures and, if partial is set,
// phrases left unattached in their clause.
func (d *Document) Problems(partial bool) []Problem {
	var problems []Problem
	for _, e := range d.Unknown {
		problems = append(problems, Problem{
			Start:    e.Pos,
			End:      advance(e.Pos, e.Text),
			Severity: SeverityError,
			Message:  e.Err.Error(),
		})
	}
	if d.Err != nil {
		start := syntax.Position{Line: 1, Column: 1}
		problems = append(problems, Problem{Start: start, End: start, Severity: SeverityError, Message: d.Err.Error()})
	}
	if !partial {
		return problems
	}
	for _, sentence := range d.Analysis {
		for _, clause := range sentence.Clauses {
			for _, tree := range clause.Forest[1:] {
				problems = append(problems, Problem{
					Start:    syntax.Leftmost(tree).Pos,
					End:      End(tree),
					Severity: SeverityWarning,
					Message:  fmt.Sprintf("%q does not attach to %q", tree.String(), clause.Tree().String()),
				})
			}
		}
	}
	return problems
}

// End returns the position just past the last token of tree.
func End(tree *syntax.Constituency) syntax.Position {
	last := syntax.Rightmost(tree)
	return advance(last.Pos, last.Head.String())
}

func advance(pos syntax.Position, text string) syntax.Position {
	return syntax.Position{
		Offset: pos.Offset + len(text),
		Line:   pos.Line,
		Column: pos.Column + utf8.RuneCountInString(text),
	}
}

// ClauseAt returns the clause whose tokens span pos, if any.
func (d *Document) ClauseAt(pos syntax.Position) (syntax.ClauseAnalysis, bool) {
	for _, sentence := range d.Analysis {
		for _, clause := range sentence.Clauses {
			start := syntax.Leftmost(clause.Forest[0]).Pos
			end := End(clause.Forest[len(clause.Forest)-1])
			if !before(pos, start) && before(pos, end) {
				return clause, true
			}
		}
	}
	return syntax.ClauseAnalysis{}, false
}

func before(a, b syntax.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
