package lexer

import (
	"fmt"
	"regexp"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/plain/syntax"
)

var (
	stringPattern = regexp.MustCompile(`"(?:[^"\\]|\\.)*"`)
	quotedPattern = regexp.MustCompile(`^("(?:[^"\\]|\\.)*")(,|\.|:)?$`)
	numberPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(,|\.|:)?$`)
	wordPattern   = regexp.MustCompile(`^(?P<stem>[A-Z]?[a-z]+(-[a-z]+)*)(?P<punctuation>,|\.|:|'|'s)?$`)

	stemIndex        = wordPattern.SubexpIndex("stem")
	punctuationIndex = wordPattern.SubexpIndex("punctuation")
)

// Registry resolves a word to its head. vocabulary.Vocabulary implements it.
type Registry interface {
	Lookup(stem, punctuation string) (syntax.Head, error)
}

// Error locates a failure to resolve a segment.
type Error struct {
	Pos  syntax.Position
	Text string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Segment is a piece of source text that becomes one token.
type Segment struct {
	Text   string
	Offset int
}

// Split cuts text at whitespace, keeping double-quoted literals whole even
// when they contain whitespace. A punctuation mark directly after a literal
// stays with it.
func Split(text string) []Segment {
	var segments []Segment
	pos := 0
	for _, loc := range stringPattern.FindAllStringIndex(text, -1) {
		end := loc[1]
		if end < len(text) && isMark(text[end]) && (end+1 == len(text) || isSpace(text[end+1])) {
			end++
		}
		segments = appendFields(segments, text, pos, loc[0])
		segments = append(segments, Segment{Text: text[loc[0]:end], Offset: loc[0]})
		pos = end
	}
	return appendFields(segments, text, pos, len(text))
}

func isMark(b byte) bool {
	return b == ',' || b == '.' || b == ':'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func appendFields(segments []Segment, text string, start, end int) []Segment {
	fieldStart := -1
	for i := start; i < end; {
		r, size := utf8.DecodeRuneInString(text[i:end])
		if unicode.IsSpace(r) {
			if fieldStart >= 0 {
				segments = append(segments, Segment{Text: text[fieldStart:i], Offset: fieldStart})
				fieldStart = -1
			}
		} else if fieldStart < 0 {
			fieldStart = i
		}
		i += size
	}
	if fieldStart >= 0 {
		segments = append(segments, Segment{Text: text[fieldStart:end], Offset: fieldStart})
	}
	return segments
}

type Tokenizer struct {
	registry Registry
}

func New(registry Registry) *Tokenizer {
	return &Tokenizer{registry: registry}
}

// Tokenize turns text into leaf constituencies. It fails on the first
// segment the registry cannot resolve; the error is an *Error wrapping the
// registry's error.
func (t *Tokenizer) Tokenize(text string) ([]*syntax.Constituency, error) {
	tokens, errs := t.scan(text, true)
	if len(errs) > 0 {
		return nil, errs[0]
	}
	return tokens, nil
}

// Scan is Tokenize without stopping: it returns the tokens that resolved and
// an error for every segment that did not.
func (t *Tokenizer) Scan(text string) ([]*syntax.Constituency, []*Error) {
	return t.scan(text, false)
}

func (t *Tokenizer) scan(text string, failFast bool) ([]*syntax.Constituency, []*Error) {
	lines := lineStarts(text)
	var tokens []*syntax.Constituency
	var errs []*Error
	for _, seg := range Split(text) {
		pos := position(text, lines, seg.Offset)
		head, err := t.classify(seg.Text)
		if err != nil {
			errs = append(errs, &Error{Pos: pos, Text: seg.Text, Err: err})
			if failFast {
				return nil, errs
			}
			continue
		}
		tokens = append(tokens, syntax.Leaf(head, pos))
	}
	return tokens, errs
}

func (t *Tokenizer) classify(text string) (syntax.Head, error) {
	if m := quotedPattern.FindStringSubmatch(text); m != nil {
		return NewString(m[1], m[2]), nil
	}
	if numberPattern.MatchString(text) {
		return ParseNumber(text)
	}
	m := wordPattern.FindStringSubmatch(text)
	if m == nil {
		return t.registry.Lookup(text, "")
	}
	return t.registry.Lookup(m[stemIndex], m[punctuationIndex])
}

func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func position(text string, lines []int, offset int) syntax.Position {
	line := sort.Search(len(lines), func(i int) bool { return lines[i] > offset }) - 1
	return syntax.Position{
		Offset: offset,
		Line:   line + 1,
		Column: utf8.RuneCountInString(text[lines[line]:offset]) + 1,
	}
}
