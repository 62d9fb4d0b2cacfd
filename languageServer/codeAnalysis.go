package languageServer

import (
	"context"
	"fmt"
	"path/filepath"

	"fortio.org/safecast"
	"github.com/sourcegraph/jsonrpc2"

	"github.com/assembly-tolly/assembly-language-server/analysis"
	"github.com/assembly-tolly/assembly-language-server/util"
)

var completionKinds = map[analysis.Category]CompletionItemKind{
	analysis.CategoryMnemonic:          CompletionKindFunction,
	analysis.CategoryDirective:         CompletionKindKeyword,
	analysis.CategoryRegister:          CompletionKindProperty,
	analysis.CategoryLabel:             CompletionKindReference,
	analysis.CategoryVariable:          CompletionKindVariable,
	analysis.CategoryConstant:          CompletionKindConstant,
	analysis.CategoryPredefinedMacro:   CompletionKindConstant,
	analysis.CategoryMacro:             CompletionKindTypeParameter,
	analysis.CategoryEscape:            CompletionKindValue,
	analysis.CategoryAnalyzerSeverity:  CompletionKindOperator,
	analysis.CategoryVariableOperation: CompletionKindOperator,
	analysis.CategoryCondition:         CompletionKindOperator,
	analysis.CategoryFile:              CompletionKindFile,
	analysis.CategoryFolder:            CompletionKindFolder,
}

func (h *handler) hoverRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as HoverParams
	decodedParams := TextDocumentPositionParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	doc, ok := h.document(decodedParams.TextDocument.URI)
	if !ok {
		conn.Reply(ctx, req.ID, nil)
		return
	}
	pos := decodedParams.Position
	line := lineAt(doc.Text, pos.Line)
	result, ok := analysis.Hover(line, utf16ToByte(line, pos.Char), h.snapshot.Load())
	if !ok {
		conn.Reply(ctx, req.ID, nil)
		return
	}

	// return HoverResponse
	tokenRange := lineRange(line, pos.Line, result.Start, result.End)
	conn.Reply(ctx, req.ID, Hover{
		Contents: MarkupContent{
			Kind:  "markdown",
			Value: result.Markdown,
		},
		Range: &tokenRange,
	})
}

func (h *handler) completionRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := TextDocumentPositionParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	items := make([]CompletionItem, 0)
	doc, ok := h.document(decodedParams.TextDocument.URI)
	if !ok {
		conn.Reply(ctx, req.ID, items)
		return
	}

	pos := decodedParams.Position
	line := lineAt(doc.Text, pos.Line)
	documentDir := ""
	if path := uriToPath(doc.URI); path != "" {
		documentDir = filepath.Dir(path)
	}
	candidates := analysis.Complete(analysis.CompletionRequest{
		Line:        line,
		Offset:      utf16ToByte(line, pos.Char),
		DocumentDir: documentDir,
		Snapshot:    h.snapshot.Load(),
	})

	for _, c := range candidates {
		item := CompletionItem{
			Label: c.Label,
			Kind:  completionKinds[c.Category],
			Data:  &CompletionItemData{Category: int(c.Category)},
		}
		if c.HasRange {
			item.TextEdit = &TextEdit{
				Range:   lineRange(line, pos.Line, c.Start, c.End),
				NewText: c.Label,
			}
		}
		items = append(items, item)
	}
	util.LogF("AssEmbly Language Server: %d completion candidates", len(items))
	conn.Reply(ctx, req.ID, items)
}

func (h *handler) completionResolveRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	item := CompletionItem{}
	if !decodeParams(ctx, conn, req, &item) {
		return
	}

	if item.Data != nil {
		candidate := analysis.Candidate{Label: item.Label, Category: analysis.Category(item.Data.Category)}
		if text := analysis.Resolve(candidate, h.snapshot.Load()); text != "" {
			item.Documentation = &MarkupContent{Kind: "markdown", Value: text}
		}
	}
	conn.Reply(ctx, req.ID, item)
}

func (h *handler) semanticTokensRequest(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := SemanticTokensParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	doc, ok := h.document(decodedParams.TextDocument.URI)
	if !ok {
		conn.Reply(ctx, req.ID, SemanticTokens{Data: make([]uint32, 0)})
		return
	}

	lines := analysis.SplitLines(doc.Text)
	data, err := encodeSemanticTokens(lines, analysis.SemanticTokens(lines, h.snapshot.Load()))
	if err != nil {
		util.LogErrorF("AssEmbly Language Server: %v", err)
		conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: err.Error()})
		return
	}
	conn.Reply(ctx, req.ID, SemanticTokens{Data: data})
}

// encodeSemanticTokens produces the relative five-integer encoding of tokens,
// which must be ordered by position, with columns in UTF-16 code units.
func encodeSemanticTokens(lines []string, tokens []analysis.SemanticToken) ([]uint32, error) {
	data := make([]uint32, 0, len(tokens)*5)
	prevLine, prevStart := 0, 0
	for _, token := range tokens {
		line := lines[token.Line]
		start := byteToUTF16(line, token.Start)
		length := byteToUTF16(line, token.Start+token.Length) - start

		deltaStart := start
		if token.Line == prevLine {
			deltaStart = start - prevStart
		}
		modifiers := 0
		if token.Declaration {
			modifiers = analysis.TokenModifierDeclaration
		}

		for _, v := range []int{token.Line - prevLine, deltaStart, length, analysis.TokenTypeVariable, modifiers} {
			u, err := safecast.Conv[uint32](v)
			if err != nil {
				return nil, fmt.Errorf("semantic token at line %d: %w", token.Line, err)
			}
			data = append(data, u)
		}
		prevLine, prevStart = token.Line, start
	}
	return data, nil
}
