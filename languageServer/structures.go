package languageServer

import (
	"encoding/json"

	"github.com/assembly-tolly/assembly-language-server/linter"
)

type TextDocumentItem struct {
	URI        DocumentUri `json:"uri"`
	LanguageID string      `json:"languageId"`
	Version    int         `json:"version"`
	Text       string      `json:"text"`
}

type DocumentUri string

type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

type TextDocumentIdentifier struct {
	URI DocumentUri `json:"uri"`
}

type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Text         *string                `json:"text,omitempty"`
}

type VersionedTextDocumentIdentifier struct {
	URI     DocumentUri `json:"uri"`
	Version int         `json:"version"`
}

type TextDocumentContentChangeEvent struct {
	Range *linter.TextRange `json:"range,omitempty"` // nil replaces the whole document
	Text  string            `json:"text"`
}

type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// ActiveEditorParams is sent with the assemblyTolly/didChangeActiveEditor
// notification. The LSP has no notion of an active editor, so the client
// extension reports it.
type ActiveEditorParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type WorkspaceFolder struct {
	URI  DocumentUri `json:"uri"`
	Name string      `json:"name"`
}

type InitializeParams struct {
	ProcessID             int               `json:"processId"`
	RootURI               DocumentUri       `json:"rootUri"`
	RootPath              string            `json:"rootPath"`
	WorkspaceFolders      []WorkspaceFolder `json:"workspaceFolders"`
	InitializationOptions json.RawMessage   `json:"initializationOptions"`
}

type DidChangeConfigurationParams struct {
	Settings json.RawMessage `json:"settings"`
}

type DocumentDiagnosticsParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type DocumentDiagnosticsReport struct {
	Kind  string              `json:"kind"` // always "full"
	Items []linter.Diagnostic `json:"items"`
}

type PublishDiagnosticsParams struct {
	URI         DocumentUri         `json:"uri"`
	Version     int                 `json:"version,omitempty"`
	Diagnostics []linter.Diagnostic `json:"diagnostics"`
}

type TextEdit struct {
	Range   linter.TextRange `json:"range"`
	NewText string           `json:"newText"`
}

type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     linter.TextPosition    `json:"position"`
}

type MarkupContent struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

type Hover struct {
	Contents MarkupContent     `json:"contents"`
	Range    *linter.TextRange `json:"range,omitempty"`
}

type CompletionItemKind int

const (
	CompletionKindFunction      CompletionItemKind = 3
	CompletionKindVariable      CompletionItemKind = 6
	CompletionKindProperty      CompletionItemKind = 10
	CompletionKindValue         CompletionItemKind = 12
	CompletionKindKeyword       CompletionItemKind = 14
	CompletionKindFile          CompletionItemKind = 17
	CompletionKindReference     CompletionItemKind = 18
	CompletionKindFolder        CompletionItemKind = 19
	CompletionKindConstant      CompletionItemKind = 21
	CompletionKindOperator      CompletionItemKind = 24
	CompletionKindTypeParameter CompletionItemKind = 25
)

// CompletionItemData travels with an item so completionItem/resolve knows
// how to document it.
type CompletionItemData struct {
	Category int `json:"category"`
}

type CompletionItem struct {
	Label         string              `json:"label"`
	Kind          CompletionItemKind  `json:"kind,omitempty"`
	Documentation *MarkupContent      `json:"documentation,omitempty"`
	TextEdit      *TextEdit           `json:"textEdit,omitempty"`
	Data          *CompletionItemData `json:"data,omitempty"`
}

type SemanticTokensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

type SemanticTokens struct {
	Data []uint32 `json:"data"`
}

// Capabilities

type SaveOptions struct {
	IncludeText bool `json:"includeText"`
}

type TextDocumentSyncOptions struct {
	OpenClose bool         `json:"openClose"`
	Change    int          `json:"change"` // 1 = full
	Save      *SaveOptions `json:"save,omitempty"`
}

type CompletionOptions struct {
	ResolveProvider   bool     `json:"resolveProvider"`
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

type SemanticTokensLegend struct {
	TokenTypes     []string `json:"tokenTypes"`
	TokenModifiers []string `json:"tokenModifiers"`
}

type SemanticTokensOptions struct {
	Legend SemanticTokensLegend `json:"legend"`
	Full   bool                 `json:"full"`
}

type DiagnosticOptions struct {
	InterFileDependencies bool `json:"interFileDependencies"`
	WorkspaceDiagnostics  bool `json:"workspaceDiagnostics"`
}

type ServerCapabilities struct {
	TextDocumentSync       TextDocumentSyncOptions `json:"textDocumentSync"`
	HoverProvider          bool                    `json:"hoverProvider"`
	CompletionProvider     *CompletionOptions      `json:"completionProvider,omitempty"`
	SemanticTokensProvider *SemanticTokensOptions  `json:"semanticTokensProvider,omitempty"`
	DiagnosticProvider     *DiagnosticOptions      `json:"diagnosticProvider,omitempty"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   ServerInfo         `json:"serverInfo"`
}

type DidChangeConfigurationRegistrationOptions struct {
	Section string `json:"section"`
}

type Registration struct {
	ID              string      `json:"id"`
	Method          string      `json:"method"`
	RegisterOptions interface{} `json:"registerOptions"`
}

type RegistrationParams struct {
	Registrations []Registration `json:"registrations"`
}
