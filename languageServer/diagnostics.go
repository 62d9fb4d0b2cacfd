package languageServer

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/assembly-tolly/assembly-language-server/analysis"
	"github.com/assembly-tolly/assembly-language-server/linter"
	"github.com/assembly-tolly/assembly-language-server/util"
)

// scheduleLint lints the active document in the background and reports
// whether a lint was started. Results of a lint that is no longer the latest
// are dropped.
func (h *handler) scheduleLint(conn *jsonrpc2.Conn) bool {
	h.mu.Lock()
	doc, ok := h.documents[h.activeURI]
	opts := h.settings.LinterOptions()
	h.mu.Unlock()
	if !ok || doc.LanguageID != LanguageID {
		return false
	}

	seq := h.lintSeq.Add(1)
	go h.lint(conn, seq, doc.URI, opts)
	return true
}

func (h *handler) lint(conn *jsonrpc2.Conn, seq uint64, uri DocumentUri, opts linter.Options) {
	defer func() {
		if r := recover(); r != nil {
			util.LogErrorF("AssEmbly linter: lint of %s panicked: %v", uri, r)
		}
	}()

	path := uriToPath(uri)
	if path == "" {
		util.LogF("AssEmbly linter: %s is not a file, not linting", uri)
		return
	}
	report, err := linter.Lint(h.baseCtx, h.runner, opts, path)
	if err != nil {
		util.LogErrorF("AssEmbly linter: %v", err)
		return
	}
	if h.lintSeq.Load() != seq {
		util.LogF("AssEmbly linter: discarding stale result #%d", seq)
		return
	}
	byPath := report.Diagnostics(h.baseCtx, opts.LintedPath(path), path, h.lineSource)

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.lintSeq.Load() != seq {
		util.LogF("AssEmbly linter: discarding stale result #%d", seq)
		return
	}
	h.snapshot.Store(report.Snapshot(h.snapshot.Load()))

	next := make(map[DocumentUri][]linter.Diagnostic, len(byPath))
	for p, diagnostics := range byPath {
		next[h.uriForPathLocked(p)] = diagnostics
	}
	h.publishLocked(conn, next)
}

// publishLocked replaces the published diagnostics with next. Documents that
// no longer have diagnostics are sent an empty set. h.mu must be held.
func (h *handler) publishLocked(conn *jsonrpc2.Conn, next map[DocumentUri][]linter.Diagnostic) {
	uris := make([]string, 0, len(next)+len(h.published))
	for uri := range h.published {
		if _, ok := next[uri]; !ok {
			uris = append(uris, string(uri))
		}
	}
	for uri := range next {
		uris = append(uris, string(uri))
	}
	sort.Strings(uris)

	for _, uri := range uris {
		diagnostics := next[DocumentUri(uri)]
		if diagnostics == nil {
			diagnostics = make([]linter.Diagnostic, 0)
		}
		conn.Notify(h.baseCtx, "textDocument/publishDiagnostics", PublishDiagnosticsParams{
			URI:         DocumentUri(uri),
			Version:     h.documents[DocumentUri(uri)].Version,
			Diagnostics: diagnostics,
		})
	}
	h.published = next
	util.LogF("AssEmbly Language Server: published diagnostics for %d documents", len(uris))
}

// uriForPathLocked prefers the URI the client opened path with, so the
// client matches diagnostics to the document. h.mu must be held.
func (h *handler) uriForPathLocked(path string) DocumentUri {
	for uri := range h.documents {
		if samePath(uriToPath(uri), path) {
			return uri
		}
	}
	return pathToURI(path)
}

// lineSource reads open documents from the editor and everything else from
// disk.
func (h *handler) lineSource(path string) ([]string, error) {
	h.mu.Lock()
	for uri, doc := range h.documents {
		if samePath(uriToPath(uri), path) {
			text := doc.Text
			h.mu.Unlock()
			return analysis.SplitLines(text), nil
		}
	}
	h.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return analysis.SplitLines(string(data)), nil
}

func samePath(a, b string) bool {
	return a != "" && filepath.Clean(a) == filepath.Clean(b)
}
