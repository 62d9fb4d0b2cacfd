package languageServer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"runtime/debug"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/jsonrpc2"
	wsjsonrpc2 "github.com/sourcegraph/jsonrpc2/websocket"

	"github.com/assembly-tolly/assembly-language-server/analysis"
	"github.com/assembly-tolly/assembly-language-server/config"
	"github.com/assembly-tolly/assembly-language-server/linter"
	"github.com/assembly-tolly/assembly-language-server/util"
)

// LanguageID is the languageId the client gives AssEmbly documents.
const LanguageID = "assembly-tolly"

const serverName = "AssEmbly Language Server"

// Options configure every connection a server accepts.
type Options struct {
	// Runner starts the linter, defaults to linter.ExecRunner
	Runner linter.Runner
	// Settings are the starting settings, defaults to config.Default()
	Settings *config.Settings
	// WatchSettings reloads the workspace settings file when it changes
	WatchSettings bool
}

type stdrwc struct{}

func (stdrwc) Read(p []byte) (int, error) {
	return os.Stdin.Read(p)
}

func (stdrwc) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

func (stdrwc) Close() error {
	if err := os.Stdin.Close(); err != nil {
		return err
	}
	return os.Stdout.Close()
}

// NewConn serves one client over stream until it disconnects.
func NewConn(ctx context.Context, stream jsonrpc2.ObjectStream, opts Options) *jsonrpc2.Conn {
	h := newHandler(ctx, opts)
	conn := jsonrpc2.NewConn(ctx, stream, h)
	go func() {
		<-conn.DisconnectNotify()
		h.shutdown()
	}()
	return conn
}

func ListenAndServe(opts Options) {
	// using stdin and stdout
	<-NewConn(context.Background(), jsonrpc2.NewBufferedStream(stdrwc{}, jsonrpc2.VSCodeObjectCodec{}), opts).DisconnectNotify()
}

// ListenAndServeTCP accepts connections until listening fails, so the server
// can be debugged remotely.
func ListenAndServeTCP(addr string, opts Options) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("could not bind to address %s: %w", addr, err)
	}
	defer lis.Close()

	log.Println("AssEmbly Language Server: listening for TCP connections on", addr)

	connectionCount := 0
	for {
		conn, err := lis.Accept()
		if err != nil {
			return fmt.Errorf("failed to accept incoming connection: %w", err)
		}
		connectionCount++
		connectionID := connectionCount
		log.Printf("AssEmbly Language Server: received incoming connection #%d\n", connectionID)
		rpcConn := NewConn(context.Background(), jsonrpc2.NewBufferedStream(conn, jsonrpc2.VSCodeObjectCodec{}), opts)
		go func() {
			<-rpcConn.DisconnectNotify()
			log.Printf("AssEmbly Language Server: connection #%d closed\n", connectionID)
		}()
	}
}

// ListenAndServeWebsocket serves the protocol over websocket connections at
// /ws, one JSON-RPC message per websocket message.
func ListenAndServeWebsocket(addr string, opts Options) error {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println(err)
			return
		}
		log.Printf("AssEmbly Language Server: websocket connection from %s\n", r.RemoteAddr)
		<-NewConn(r.Context(), wsjsonrpc2.NewObjectStream(ws), opts).DisconnectNotify()
		log.Printf("AssEmbly Language Server: websocket connection from %s closed\n", r.RemoteAddr)
	})

	log.Println("AssEmbly Language Server: listening for websocket connections on", addr)
	return http.ListenAndServe(addr, mux)
}

func (h *handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	defer func() {
		if r := recover(); r != nil {
			util.LogErrorF("AssEmbly Language Server: %s panicked: %v\n%s", req.Method, r, debug.Stack())
			if !req.Notif {
				conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeInternalError, Message: "internal error"})
			}
		}
	}()

	util.LogF("AssEmbly Language Server: received request: %s", req.Method)
	switch req.Method {
	case "initialize":
		h.handleInitialize(ctx, conn, req)
	case "initialized":
		registerRemainingCapabilities(conn)
	case "textDocument/didOpen":
		h.documentOpenNotification(ctx, conn, req)
	case "textDocument/didClose":
		h.documentCloseNotification(ctx, conn, req)
	case "textDocument/didChange":
		h.documentChangeNotification(ctx, conn, req)
	case "textDocument/didSave":
		h.documentSaveNotification(ctx, conn, req)
	case activeEditorMethod:
		h.activeEditorNotification(ctx, conn, req)
	case "textDocument/diagnostic":
		h.documentDiagnostics(ctx, conn, req)
	case "textDocument/hover":
		h.hoverRequest(ctx, conn, req)
	case "textDocument/completion":
		h.completionRequest(ctx, conn, req)
	case "completionItem/resolve":
		h.completionResolveRequest(ctx, conn, req)
	case "textDocument/semanticTokens/full":
		h.semanticTokensRequest(ctx, conn, req)
	case "workspace/didChangeConfiguration":
		h.configurationChangeNotification(ctx, conn, req)

	// quitting
	case "shutdown":
		conn.Reply(ctx, req.ID, nil)
	case "exit":
		conn.Close()
	default:
		if !req.Notif {
			conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: "method not supported: " + req.Method,
			})
		}
	}
}

// decodeParams unmarshals the request parameters into v. On failure it
// replies with an error when the request expects a reply.
func decodeParams(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request, v interface{}) bool {
	var err error
	if req.Params == nil {
		err = fmt.Errorf("missing parameters")
	} else {
		err = json.Unmarshal(*req.Params, v)
	}
	if err == nil {
		return true
	}
	util.LogErrorF("AssEmbly Language Server: invalid parameters for %s: %v", req.Method, err)
	if !req.Notif {
		conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{Code: jsonrpc2.CodeInvalidParams, Message: "invalid parameters"})
	}
	return false
}

func (h *handler) handleInitialize(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	// parse req params as InitializeParams
	// return InitializeResult
	decodedParams := InitializeParams{}
	if !decodeParams(ctx, conn, req, &decodedParams) {
		return
	}

	if err := h.applyClientSettings(decodedParams.InitializationOptions, true); err != nil {
		util.LogErrorF("AssEmbly Language Server: ignoring initialization options: %v", err)
	}
	h.setWorkspaceRoot(conn, workspaceRoot(decodedParams))

	result := InitializeResult{
		ServerInfo: ServerInfo{Name: serverName},
	}
	result.Capabilities.TextDocumentSync = TextDocumentSyncOptions{
		OpenClose: true,
		Change:    1,
		Save:      &SaveOptions{},
	}
	result.Capabilities.HoverProvider = true
	result.Capabilities.CompletionProvider = &CompletionOptions{
		ResolveProvider:   true,
		TriggerCharacters: []string{":", "@", "#", "%", "\\", "/", "\""},
	}
	result.Capabilities.SemanticTokensProvider = &SemanticTokensOptions{
		Legend: SemanticTokensLegend{
			TokenTypes:     analysis.SemanticTokenTypes,
			TokenModifiers: analysis.SemanticTokenModifiers,
		},
		Full: true,
	}
	result.Capabilities.DiagnosticProvider = &DiagnosticOptions{InterFileDependencies: true}
	conn.Reply(ctx, req.ID, result)
}

func workspaceRoot(params InitializeParams) string {
	if len(params.WorkspaceFolders) > 0 {
		if path := uriToPath(params.WorkspaceFolders[0].URI); path != "" {
			return path
		}
	}
	if path := uriToPath(params.RootURI); path != "" {
		return path
	}
	return params.RootPath
}

func registerRemainingCapabilities(conn *jsonrpc2.Conn) {
	// the client only pushes settings changes for sections it was asked about
	util.LogF("AssEmbly Language Server: registering remaining capabilities")
	params := RegistrationParams{
		Registrations: []Registration{
			{
				ID:     "workspace.didChangeConfiguration",
				Method: "workspace/didChangeConfiguration",
				RegisterOptions: DidChangeConfigurationRegistrationOptions{
					Section: config.Section,
				},
			},
		},
	}

	go conn.Call(context.Background(), "client/registerCapability", params, nil)
	util.LogF("AssEmbly Language Server: registered remaining capabilities")
}
