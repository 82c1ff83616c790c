package lsp

import (
	"strings"
	"unicode"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/plain/format"
	"github.com/dhamidi/plain/syntax"
	"github.com/dhamidi/plain/vocabulary"
	"github.com/dhamidi/plain/workspace"
)

const diagnosticSource = "plain"

// Diagnostics converts workspace problems to LSP diagnostics. Columns are
// counted in runes.
func Diagnostics(problems []workspace.Problem) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(problems))
	for _, p := range problems {
		severity := protocol.DiagnosticSeverityError
		if p.Severity == workspace.SeverityWarning {
			severity = protocol.DiagnosticSeverityWarning
		}
		source := diagnosticSource
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    protocol.Range{Start: toProtocol(p.Start), End: toProtocol(p.End)},
			Severity: &severity,
			Source:   &source,
			Message:  p.Message,
		})
	}
	return diagnostics
}

// Hover shows the bracketed forest of the clause under the cursor.
func Hover(doc *workspace.Document, pos protocol.Position) *protocol.Hover {
	clause, ok := doc.ClauseAt(fromProtocol(pos))
	if !ok {
		return nil
	}
	lines := make([]string, len(clause.Forest))
	for i, tree := range clause.Forest {
		lines[i] = format.Bracket(tree, format.DefaultNamer)
	}
	r := protocol.Range{
		Start: toProtocol(syntax.Leftmost(clause.Forest[0]).Pos),
		End:   toProtocol(workspace.End(clause.Forest[len(clause.Forest)-1])),
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: strings.Join(lines, "\n"),
		},
		Range: &r,
	}
}

// Completions offers the keywords that start with the word before the
// cursor.
func Completions(vocab *vocabulary.Vocabulary, content []byte, pos protocol.Position) []protocol.CompletionItem {
	prefix := wordBefore(string(content), int(pos.Line), int(pos.Character))
	if prefix == "" {
		return nil
	}
	lower := strings.ToLower(prefix)
	var items []protocol.CompletionItem
	for _, class := range vocabulary.Classes() {
		for _, stem := range vocab.Stems(class.Category) {
			if !strings.HasPrefix(stem, lower) || stem == lower {
				continue
			}
			label := stem
			if unicode.IsUpper([]rune(prefix)[0]) {
				label = strings.ToUpper(stem[:1]) + stem[1:]
			}
			kind := protocol.CompletionItemKindKeyword
			detail := class.Name
			items = append(items, protocol.CompletionItem{
				Label:  label,
				Kind:   &kind,
				Detail: &detail,
			})
		}
	}
	return items
}

func wordBefore(text string, line, character int) string {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return ""
	}
	runes := []rune(lines[line])
	if character > len(runes) {
		character = len(runes)
	}
	start := character
	for start > 0 && (unicode.IsLetter(runes[start-1]) || runes[start-1] == '-') {
		start--
	}
	return string(runes[start:character])
}

func toProtocol(pos syntax.Position) protocol.Position {
	if !pos.IsValid() {
		return protocol.Position{}
	}
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(pos.Column - 1),
	}
}

func fromProtocol(pos protocol.Position) syntax.Position {
	return syntax.Position{Line: int(pos.Line) + 1, Column: int(pos.Character) + 1}
}
