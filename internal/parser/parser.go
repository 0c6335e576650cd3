package parser

import (
	"context"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
	"quill/internal/trace"
)

type Options struct {
	MaxErrors uint
	Reporter  diag.Reporter
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser: состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена
	failure  *diag.Error // первая ошибка; дальше не идём
}

// ParseFile разбирает весь файл. Первая синтаксическая (или лексическая)
// ошибка фатальна: она уходит в Reporter и возвращается как *diag.Error.
func ParseFile(
	ctx context.Context,
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) (Result, error) {
	span := trace.Begin(trace.FromContext(ctx), trace.ScopePass, "parse", trace.ParentFromContext(ctx))
	defer span.End("")

	start := source.Span{File: lx.File().ID}
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(start),
		fs:       fs,
		opts:     opts,
		lastSpan: start,
	}

	p.parseStmts()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(*diag.BagReporter); ok {
		bag = br.Bag
	}
	res := Result{File: p.file, Bag: bag}
	if p.failure != nil {
		span.WithExtra("error", p.failure.Diag.Code.ID())
		return res, p.failure
	}
	span.WithExtra("stmts", itoa(len(arenas.Files.Get(p.file).Stmts)))
	return res, nil
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// Failed reports whether parsing stopped on an error.
func (p *Parser) Failed() bool {
	return p.failure != nil
}

// parseStmts: верхний цикл: пока не EOF и нет ошибки.
func (p *Parser) parseStmts() {
	first := p.lx.Peek().Span
	for !p.at(token.EOF) {
		stmtID, ok := p.parseStmt()
		if !ok {
			return
		}
		p.arenas.PushStmt(p.file, stmtID)
	}
	p.arenas.Files.Get(p.file).Span = first.Cover(p.lastSpan)
}
