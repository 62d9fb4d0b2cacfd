package languageServer

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/assembly-tolly/assembly-language-server/analysis"
	"github.com/assembly-tolly/assembly-language-server/config"
	"github.com/assembly-tolly/assembly-language-server/linter"
	"github.com/assembly-tolly/assembly-language-server/util"
)

const activeEditorMethod = "assemblyTolly/didChangeActiveEditor"

// handler holds the state of one client connection.
type handler struct {
	baseCtx context.Context
	cancel  context.CancelFunc
	runner  linter.Runner
	watch   bool

	mu            sync.Mutex
	documents     map[DocumentUri]TextDocumentItem
	activeURI     DocumentUri
	base          config.Settings // settings before the workspace file and client overlays
	settings      config.Settings
	initOptions   json.RawMessage
	clientConfig  json.RawMessage
	workspaceRoot string
	published     map[DocumentUri][]linter.Diagnostic
	stopWatching  func()

	// replaced wholesale after every successful lint, never modified
	snapshot atomic.Pointer[analysis.Snapshot]
	// incremented by every event that makes running lints stale
	lintSeq atomic.Uint64
}

func newHandler(ctx context.Context, opts Options) *handler {
	ctx, cancel := context.WithCancel(ctx)
	h := &handler{
		baseCtx:   ctx,
		cancel:    cancel,
		runner:    opts.Runner,
		watch:     opts.WatchSettings,
		documents: make(map[DocumentUri]TextDocumentItem),
		published: make(map[DocumentUri][]linter.Diagnostic),
		base:      config.Default(),
	}
	if h.runner == nil {
		h.runner = linter.ExecRunner{}
	}
	if opts.Settings != nil {
		h.base = *opts.Settings
	}
	h.settings = h.base
	return h
}

func (h *handler) shutdown() {
	h.cancel()
	h.mu.Lock()
	stop := h.stopWatching
	h.stopWatching = nil
	h.mu.Unlock()
	if stop != nil {
		stop()
	}
}

func (h *handler) document(uri DocumentUri) (TextDocumentItem, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	doc, ok := h.documents[uri]
	return doc, ok
}

func (h *handler) documentOpenNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DidOpenTextDocumentParams
	// add document to documents map
	decodedParams := DidOpenTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	doc := decodedParams.TextDocument
	h.mu.Lock()
	h.documents[doc.URI] = doc
	if doc.LanguageID == LanguageID {
		h.activeURI = doc.URI
	}
	h.mu.Unlock()

	h.scheduleLint(conn)
}

func (h *handler) documentCloseNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DidCloseTextDocumentParams
	// remove document from documents map
	decodedParams := DidCloseTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.mu.Lock()
	delete(h.documents, decodedParams.TextDocument.URI)
	if h.activeURI == decodedParams.TextDocument.URI {
		h.activeURI = ""
	}
	h.mu.Unlock()

	if h.scheduleLint(conn) {
		return
	}
	// nothing left to lint, so drop running lints and what they published
	h.mu.Lock()
	h.lintSeq.Add(1)
	h.clearPublishedLocked(ctx, conn)
	h.mu.Unlock()
}

func (h *handler) documentChangeNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DidChangeTextDocumentParams
	// update document in documents map
	decodedParams := DidChangeTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	uri := decodedParams.TextDocument.URI
	h.mu.Lock()
	doc, ok := h.documents[uri]
	if !ok {
		doc = TextDocumentItem{URI: uri}
	}
	doc.Text = applyChanges(doc.Text, decodedParams.ContentChanges)
	doc.Version = decodedParams.TextDocument.Version
	h.documents[uri] = doc

	// diagnostics no longer match the text until the next lint
	h.lintSeq.Add(1)
	h.clearPublishedLocked(ctx, conn)
	h.mu.Unlock()
}

func (h *handler) documentSaveNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := DidSaveTextDocumentParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.mu.Lock()
	if doc, ok := h.documents[decodedParams.TextDocument.URI]; ok && decodedParams.Text != nil {
		doc.Text = *decodedParams.Text
		h.documents[doc.URI] = doc
	}
	h.mu.Unlock()

	h.scheduleLint(conn)
}

func (h *handler) activeEditorNotification(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	decodedParams := ActiveEditorParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.mu.Lock()
	h.activeURI = decodedParams.TextDocument.URI
	h.mu.Unlock()

	h.scheduleLint(conn)
}

func (h *handler) documentDiagnostics(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as DocumentDiagnosticsParams
	// return the diagnostics last published for the document
	decodedParams := DocumentDiagnosticsParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	h.mu.Lock()
	diagnostics := h.published[decodedParams.TextDocument.URI]
	h.mu.Unlock()
	if diagnostics == nil {
		diagnostics = make([]linter.Diagnostic, 0)
	}
	conn.Reply(ctx, req.ID, DocumentDiagnosticsReport{
		Kind:  "full",
		Items: diagnostics,
	})
}

// clearPublishedLocked empties every published diagnostic set. h.mu must be
// held.
func (h *handler) clearPublishedLocked(ctx context.Context, conn *jsonrpc2.Conn) {
	uris := make([]string, 0, len(h.published))
	for uri := range h.published {
		uris = append(uris, string(uri))
	}
	sort.Strings(uris)
	for _, uri := range uris {
		conn.Notify(ctx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
			URI:         DocumentUri(uri),
			Diagnostics: make([]linter.Diagnostic, 0),
		})
	}
	h.published = make(map[DocumentUri][]linter.Diagnostic)
	util.LogF("AssEmbly Language Server: cleared diagnostics for %d documents", len(uris))
}
