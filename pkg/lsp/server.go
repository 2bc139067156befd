package lsp

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	lsp "github.com/sourcegraph/go-lsp"
	"github.com/sourcegraph/jsonrpc2"
	"src.crotchet.dev/pkg/diag"
	"src.crotchet.dev/pkg/eval"
	"src.crotchet.dev/pkg/parse"
)

var (
	errMethodNotFound = &jsonrpc2.Error{
		Code: jsonrpc2.CodeMethodNotFound, Message: "method not found"}
	errInvalidParams = &jsonrpc2.Error{
		Code: jsonrpc2.CodeInvalidParams, Message: "invalid params"}
)

type server struct {
	content map[lsp.DocumentURI]string
}

func newServer() *server {
	return &server{make(map[lsp.DocumentURI]string)}
}

func handler(s *server) jsonrpc2.Handler {
	return routingHandler(map[string]method{
		"initialize":              s.initialize,
		"textDocument/didOpen":    s.didOpen,
		"textDocument/didChange":  s.didChange,
		"textDocument/didClose":   s.didClose,
		"textDocument/hover":      s.hover,
		"textDocument/completion": s.completion,

		"initialized": noop,
		// Sent by some clients even when the server doesn't advertise support.
		"workspace/didChangeWatchedFiles": noop,
		"shutdown":                        noop,
		"exit":                            noop,
	})
}

type method func(context.Context, jsonrpc2.JSONRPC2, json.RawMessage) (any, error)

func noop(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return nil, nil
}

func routingHandler(methods map[string]method) jsonrpc2.Handler {
	return jsonrpc2.HandlerWithError(func(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) (any, error) {
		logger.Println("handling", req.Method)
		fn, ok := methods[req.Method]
		if !ok {
			logger.Println("unknown method", req.Method)
			return nil, errMethodNotFound
		}
		var params json.RawMessage
		if req.Params != nil {
			params = *req.Params
		}
		return fn(ctx, conn, params)
	})
}

// Handler implementations. These are all called synchronously.

func (s *server) initialize(_ context.Context, _ jsonrpc2.JSONRPC2, _ json.RawMessage) (any, error) {
	return &lsp.InitializeResult{
		Capabilities: lsp.ServerCapabilities{
			TextDocumentSync: &lsp.TextDocumentSyncOptionsOrKind{
				Options: &lsp.TextDocumentSyncOptions{
					OpenClose: true,
					Change:    lsp.TDSKFull,
				},
			},
			CompletionProvider: &lsp.CompletionOptions{},
			HoverProvider:      true,
		},
	}, nil
}

func (s *server) didOpen(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidOpenTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	uri, content := params.TextDocument.URI, params.TextDocument.Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didChange(ctx context.Context, conn jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidChangeTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil || len(params.ContentChanges) == 0 {
		return nil, errInvalidParams
	}

	// Only full syncing is advertised, so the last change has the full text.
	uri := params.TextDocument.URI
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.content[uri] = content
	go publishDiagnostics(ctx, conn, uri, content)
	return nil, nil
}

func (s *server) didClose(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.DidCloseTextDocumentParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}
	delete(s.content, params.TextDocument.URI)
	return nil, nil
}

func (s *server) hover(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.TextDocumentPositionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	content := s.content[params.TextDocument.URI]
	idx := lspPositionToIdx(content, params.Position)
	// A source that fails to tokenize still has tokens up to the error.
	tokens, _ := parse.Tokenize(parse.Source{Code: content})
	for _, tok := range tokens {
		if tok.Type != parse.SymbolToken || idx < tok.From || tok.To < idx {
			continue
		}
		doc, ok := eval.BuiltinDoc(tok.Text)
		if !ok {
			break
		}
		r := lspRangeFromRange(content, tok)
		return lsp.Hover{
			Contents: []lsp.MarkedString{lsp.RawMarkedString(doc)},
			Range:    &r,
		}, nil
	}
	return lsp.Hover{}, nil
}

func (s *server) completion(_ context.Context, _ jsonrpc2.JSONRPC2, rawParams json.RawMessage) (any, error) {
	var params lsp.CompletionParams
	if json.Unmarshal(rawParams, &params) != nil {
		return nil, errInvalidParams
	}

	content := s.content[params.TextDocument.URI]
	dot := lspPositionToIdx(content, params.Position)
	start := strings.LastIndexAny(content[:dot], " \t\r\n[]\"") + 1
	prefix := content[start:dot]
	lspRange := lspRangeFromRange(content, diag.Ranging{From: start, To: dot})

	items := []lsp.CompletionItem{}
	add := func(name string, kind lsp.CompletionItemKind) {
		if strings.HasPrefix(name, prefix) {
			items = append(items, lsp.CompletionItem{
				Label:    name,
				Kind:     kind,
				TextEdit: &lsp.TextEdit{Range: lspRange, NewText: name},
			})
		}
	}
	for _, name := range eval.BuiltinNames() {
		add(name, lsp.CIKFunction)
	}
	for _, name := range boundNames(content) {
		if !eval.IsBuiltin(name) {
			add(name, lsp.CIKVariable)
		}
	}
	return items, nil
}

// Returns the names bound in the source with let, and the parameters of fn
// forms, sorted and without duplicates.
func boundNames(content string) []string {
	tokens, _ := parse.Tokenize(parse.Source{Code: content})
	seen := make(map[string]bool)
	isSymbol := func(i int, text string) bool {
		return i < len(tokens) && tokens[i].Type == parse.SymbolToken &&
			(text == "" || tokens[i].Text == text)
	}
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Type != parse.LBracketToken {
			continue
		}
		switch {
		case isSymbol(i+1, "let") && isSymbol(i+2, ""):
			seen[tokens[i+2].Text] = true
		case isSymbol(i+1, "fn") && i+2 < len(tokens) && tokens[i+2].Type == parse.LBracketToken:
			for j := i + 3; isSymbol(j, ""); j++ {
				seen[tokens[j].Text] = true
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func publishDiagnostics(ctx context.Context, conn jsonrpc2.JSONRPC2, uri lsp.DocumentURI, content string) {
	err := conn.Notify(ctx, "textDocument/publishDiagnostics",
		lsp.PublishDiagnosticsParams{URI: uri, Diagnostics: diagnostics(uri, content)})
	if err != nil {
		logger.Println("failed to publish diagnostics:", err)
	}
}

func diagnostics(uri lsp.DocumentURI, content string) []lsp.Diagnostic {
	_, err := parse.Parse(parse.Source{Name: string(uri), Code: content})
	e := parse.UnpackError(err)
	// An empty document is not worth complaining about while it is edited.
	if e == nil || isBlank(content) {
		return []lsp.Diagnostic{}
	}
	return []lsp.Diagnostic{{
		Range:    lspRangeFromRange(content, e),
		Severity: lsp.Error,
		Source:   "parse",
		Message:  e.Message(),
	}}
}

func isBlank(content string) bool {
	tokens, err := parse.Tokenize(parse.Source{Code: content})
	return err == nil && len(tokens) == 0
}

func lspRangeFromRange(s string, r diag.Ranger) lsp.Range {
	rg := r.Range()
	return lsp.Range{
		Start: lspPositionFromIdx(s, rg.From),
		End:   lspPositionFromIdx(s, rg.To),
	}
}

func lspPositionToIdx(s string, pos lsp.Position) int {
	var idx int
	walkString(s, func(i int, p lsp.Position) bool {
		idx = i
		return p.Line < pos.Line || (p.Line == pos.Line && p.Character < pos.Character)
	})
	return idx
}

func lspPositionFromIdx(s string, idx int) lsp.Position {
	var pos lsp.Position
	walkString(s, func(i int, p lsp.Position) bool {
		pos = p
		return i < idx
	})
	return pos
}

// Generates (index, lspPosition) pairs in s, stopping if f returns false.
func walkString(s string, f func(i int, p lsp.Position) bool) {
	var p lsp.Position
	lastCR := false

	for i, r := range s {
		if !f(i, p) {
			return
		}
		switch {
		case r == '\r':
			p.Line++
			p.Character = 0
		case r == '\n':
			if !lastCR {
				p.Line++
				p.Character = 0
			}
		case r <= 0xFFFF:
			// One UTF-16 code unit
			p.Character++
		default:
			// Two UTF-16 code units
			p.Character += 2
		}
		lastCR = r == '\r'
	}
	f(len(s), p)
}
