package vm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"quill/internal/ast"
	"quill/internal/sema"
	"quill/internal/symbols"
	"quill/internal/trace"
	"quill/internal/types"
)

// ErrNoSemantics is returned by Run when the VM was built without a checker result.
var ErrNoSemantics = errors.New("vm: missing semantic result")

// Options configure the evaluator.
type Options struct {
	Out   io.Writer // print target
	Types *types.Interner
	Sema  *sema.Result
}

// VM evaluates one file against its own symbol table.
type VM struct {
	builder *ast.Builder
	types   *types.Interner
	sema    *sema.Result
	out     io.Writer
	symbols *symbols.Table[Symbol]
	eb      errorBuilder
	upper   cases.Caser
	lower   cases.Caser
	printed int
}

// New creates a VM. Types defaults to the checker's interner.
func New(builder *ast.Builder, opts Options) *VM {
	in := opts.Types
	if in == nil && opts.Sema != nil {
		in = opts.Sema.TypeInterner
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	return &VM{
		builder: builder,
		types:   in,
		sema:    opts.Sema,
		out:     out,
		symbols: symbols.NewTable[Symbol](16),
		upper:   cases.Upper(language.Und),
		lower:   cases.Lower(language.Und),
	}
}

// Run executes every statement of fileID in order. It stops at the first
// runtime fault, returned as *VMError.
func (vm *VM) Run(ctx context.Context, fileID ast.FileID) error {
	if vm.sema == nil || vm.types == nil {
		return ErrNoSemantics
	}
	file := vm.builder.Files.Get(fileID)
	if file == nil {
		return nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "eval", trace.ParentFromContext(ctx))
	defer func() {
		span.WithExtra("printed", strconv.Itoa(vm.printed)).End("")
	}()

	for i, stmtID := range file.Stmts {
		if err := ctx.Err(); err != nil {
			return err
		}
		stmtSpan := trace.Begin(tracer, trace.ScopeStmt, "stmt:"+strconv.Itoa(i+1), span.ID())
		err := vm.execStmt(stmtID)
		stmtSpan.End("")
		if err != nil {
			trace.Point(tracer, trace.ScopePass, "panic", err.Error(), span.ID())
			return err
		}
	}
	return nil
}

// Lookup returns the runtime binding of name.
func (vm *VM) Lookup(name string) (Symbol, bool) {
	return vm.symbols.Lookup(name)
}

func (vm *VM) execStmt(id ast.StmtID) error {
	stmt := vm.builder.Stmts.Get(id)
	if stmt == nil {
		return nil
	}
	switch stmt.Kind {
	case ast.StmtLet:
		let, _ := vm.builder.Stmts.Let(id)
		return vm.execLet(id, let)
	case ast.StmtPrint:
		pr, _ := vm.builder.Stmts.Print(id)
		return vm.execPrint(pr)
	default:
		return vm.eb.unimplemented(stmt.Span, "statement "+stmt.Kind.String())
	}
}

func (vm *VM) execLet(id ast.StmtID, let *ast.LetStmt) error {
	value, vmErr := vm.evalExpr(let.Value)
	if vmErr != nil {
		return vmErr
	}
	target, ok := vm.sema.LetTypes[id]
	if !ok {
		target = value.Type
	}
	value, vmErr = vm.convert(value, target, vm.exprSpan(let.Value))
	if vmErr != nil {
		return vmErr
	}
	name := vm.builder.Name(let.Name)
	vm.symbols.Declare(name, Symbol{Name: name, Type: target, Value: value})
	return nil
}

func (vm *VM) execPrint(pr *ast.PrintStmt) error {
	value, vmErr := vm.evalExpr(pr.Value)
	if vmErr != nil {
		return vmErr
	}
	if _, err := io.WriteString(vm.out, FormatValue(value)+"\n"); err != nil {
		return fmt.Errorf("print: %w", err)
	}
	vm.printed++
	return nil
}
