// Package langserver exposes parse diagnostics for any parsekit-built
// grammar over the Language Server Protocol. Editors get squiggles at
// the deepest failure point reported by the combinator engine.
package langserver

import (
	"errors"
	"net/url"

	"github.com/bluele/gcache"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/parsekit/parse"
)

const lsName = "parsekit"

const documentCacheSize = 256

// CheckFunc parses one document and returns nil, a
// *parse.TokenizationError or a *parse.ParseError. Wrapping the
// grammar in a function keeps the server independent of the token and
// node kind types.
type CheckFunc func(input []byte) error

// Server publishes diagnostics for open documents. Document contents
// live in an LRU cache so a long editing session cannot grow without
// bound.
type Server struct {
	check     CheckFunc
	documents gcache.Cache
	handler   protocol.Handler
	server    *server.Server
	version   string
}

func NewServer(version string, check CheckFunc) *Server {
	s := &Server{
		check:     check,
		documents: gcache.New(documentCacheSize).LRU().Build(),
		version:   version,
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    intPtr(int(protocol.TextDocumentSyncKindFull)),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.updateDocument(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if textChange, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.updateDocument(ctx, params.TextDocument.URI, []byte(textChange.Text))
	}
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.updateDocument(ctx, params.TextDocument.URI, []byte(*params.Text))
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.documents.Remove(params.TextDocument.URI)
	return nil
}

func (s *Server) updateDocument(ctx *glsp.Context, uri string, content []byte) {
	s.documents.Set(uri, content)
	s.publishDiagnostics(ctx, uri, content)
}

// Diagnose converts a check failure into LSP diagnostics. Exported for
// the server tests; the LSP handlers go through publishDiagnostics.
func (s *Server) Diagnose(content []byte) []protocol.Diagnostic {
	err := s.check(content)
	if err == nil {
		return nil
	}

	var where parse.Position
	var message string

	var tokErr *parse.TokenizationError
	var parseErr *parse.ParseError
	switch {
	case errors.As(err, &tokErr):
		where = tokErr.Where
		message = tokErr.Error()
	case errors.As(err, &parseErr):
		where = parseErr.Where
		message = parseErr.Error()
	default:
		where = parse.Position{Line: 1, Column: 1}
		message = err.Error()
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName
	start := protocol.Position{
		Line:      uint32(where.Line - 1),
		Character: uint32(where.Column - 1),
	}
	end := protocol.Position{Line: start.Line, Character: start.Character + 1}

	return []protocol.Diagnostic{{
		Range:    protocol.Range{Start: start, End: end},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}}
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, uri string, content []byte) {
	diagnostics := s.Diagnose(content)
	if diagnostics == nil {
		// An empty (non-nil) list clears previous squiggles.
		diagnostics = []protocol.Diagnostic{}
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI: uri,
		Diagnostics: diagnostics,
	})
}

func uriToPath(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	return parsed.Path, nil
}

func boolPtr(b bool) *bool { return &b }

func intPtr(i int) *protocol.TextDocumentSyncKind {
	kind := protocol.TextDocumentSyncKind(i)
	return &kind
}
