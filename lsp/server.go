// Package lsp exposes parse failures as Language Server Protocol
// diagnostics. Every open document is run through a parser on open,
// change and save; the aggregated failure messages are published with
// their line/column locations, so an editor shows the classic
// "expected A OR B" diagnostics inline.
package lsp

import (
	"errors"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/pars/parse"
	"github.com/dhamidi/pars/sourcemap"
)

const lsName = "pars"

// Checker validates one document and returns its parse error, if any.
// A *parse.Error is broken into per-branch diagnostics; any other
// error becomes a single diagnostic at the start of the document.
type Checker func(text string) error

// Server is an LSP server that republishes parse failures as
// diagnostics.
type Server struct {
	check   Checker
	handler protocol.Handler
	server  *server.Server
	version string

	mu        sync.Mutex
	documents map[protocol.DocumentUri]string
}

// NewServer creates a server that validates documents with check.
func NewServer(check Checker, version string) *Server {
	ls := &Server{
		check:     check,
		version:   version,
		documents: make(map[protocol.DocumentUri]string),
	}

	ls.handler = protocol.Handler{
		Initialize:            ls.initialize,
		Initialized:           ls.initialized,
		Shutdown:              ls.shutdown,
		SetTrace:              ls.setTrace,
		TextDocumentDidOpen:   ls.textDocumentDidOpen,
		TextDocumentDidChange: ls.textDocumentDidChange,
		TextDocumentDidClose:  ls.textDocumentDidClose,
		TextDocumentDidSave:   ls.textDocumentDidSave,
	}

	ls.server = server.NewServer(&ls.handler, lsName, false)

	return ls
}

// RunStdio serves LSP over stdin/stdout until the client disconnects.
func (ls *Server) RunStdio() error {
	return ls.server.RunStdio()
}

func (ls *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := ls.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &ls.version,
		},
	}, nil
}

func (ls *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (ls *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (ls *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (ls *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	ls.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (ls *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		ls.update(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		ls.update(ctx, params.TextDocument.URI, *params.Text)
	}
	return nil
}

func (ls *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	ls.mu.Lock()
	delete(ls.documents, params.TextDocument.URI)
	ls.mu.Unlock()

	// Clear stale diagnostics for the closed document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (ls *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	ls.mu.Lock()
	ls.documents[uri] = text
	ls.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: Diagnose(ls.check, text),
	})
}

// Diagnose runs check on text and converts the failure, if any, into
// protocol diagnostics.
func Diagnose(check Checker, text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	err := check(text)
	if err == nil {
		return diagnostics
	}

	severity := protocol.DiagnosticSeverityError
	source := lsName

	var parseErr *parse.Error
	if !errors.As(err, &parseErr) {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rangeAt(sourcemap.Location{Line: 1, Column: 0}),
			Severity: &severity,
			Source:   &source,
			Message:  err.Error(),
		})
		return diagnostics
	}

	for _, message := range parseErr.Messages {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    rangeAt(message.Location),
			Severity: &severity,
			Source:   &source,
			Message:  message.Text,
		})
	}
	return diagnostics
}

// rangeAt converts the engine's 1-based line/column to a zero-length
// protocol range. On line 1 the engine's column is the raw offset; on
// later lines it counts from the preceding line break, one past the
// protocol's line-relative character.
func rangeAt(loc sourcemap.Location) protocol.Range {
	line := protocol.UInteger(loc.Line - 1)
	character := protocol.UInteger(loc.Column)
	if loc.Line > 1 && loc.Column > 0 {
		character = protocol.UInteger(loc.Column - 1)
	}
	position := protocol.Position{Line: line, Character: character}
	return protocol.Range{Start: position, End: position}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
