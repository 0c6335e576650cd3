package sema

import (
	"context"
	"fmt"
	"strconv"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/symbols"
	"quill/internal/trace"
	"quill/internal/types"
)

// Options configure a semantic pass over a file.
type Options struct {
	Reporter diag.Reporter
	Types    *types.Interner
}

// Result stores semantic artefacts produced by the checker.
type Result struct {
	TypeInterner *types.Interner
	ExprTypes    map[ast.ExprID]types.TypeID
	// LetTypes is the binding type of each let: the annotation when present,
	// otherwise the initializer's type.
	LetTypes map[ast.StmtID]types.TypeID
	Bindings *symbols.Bindings
}

// TypeOf returns the resolved type of an expression.
func (r *Result) TypeOf(id ast.ExprID) types.TypeID {
	if r == nil {
		return types.NoTypeID
	}
	return r.ExprTypes[id]
}

// Check performs type checking. On failure the partially filled Result is
// returned together with a *diag.Error.
func Check(ctx context.Context, builder *ast.Builder, fileID ast.FileID, opts Options) (Result, error) {
	res := Result{
		ExprTypes: make(map[ast.ExprID]types.TypeID),
		LetTypes:  make(map[ast.StmtID]types.TypeID),
		Bindings:  symbols.NewBindings(),
	}
	if opts.Types != nil {
		res.TypeInterner = opts.Types
	} else {
		res.TypeInterner = types.NewInterner()
	}
	if builder == nil || fileID == ast.NoFileID {
		return res, nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "sema", trace.ParentFromContext(ctx))
	defer span.End("")

	tc := typeChecker{
		builder:  builder,
		fileID:   fileID,
		reporter: opts.Reporter,
		types:    res.TypeInterner,
		result:   &res,
		tracer:   tracer,
		spanID:   span.ID(),
	}
	tc.run()
	if tc.failure != nil {
		span.WithExtra("error", tc.failure.Diag.Code.ID())
		return res, tc.failure
	}
	return res, nil
}

type typeChecker struct {
	builder  *ast.Builder
	fileID   ast.FileID
	reporter diag.Reporter
	types    *types.Interner
	result   *Result
	tracer   trace.Tracer
	spanID   uint64
	failure  *diag.Error
}

func (tc *typeChecker) run() {
	file := tc.builder.Files.Get(tc.fileID)
	if file == nil {
		return
	}
	for i, stmtID := range file.Stmts {
		span := trace.Begin(tc.tracer, trace.ScopeStmt, "stmt:"+strconv.Itoa(i+1), tc.spanID)
		ok := tc.checkStmt(stmtID)
		span.End("")
		if !ok {
			return
		}
	}
}

func (tc *typeChecker) checkStmt(id ast.StmtID) bool {
	stmt := tc.builder.Stmts.Get(id)
	if stmt == nil {
		return true
	}
	switch stmt.Kind {
	case ast.StmtLet:
		let, _ := tc.builder.Stmts.Let(id)
		return tc.checkLet(id, let)
	case ast.StmtPrint:
		pr, _ := tc.builder.Stmts.Print(id)
		return tc.typeExpr(pr.Value) != types.NoTypeID
	default:
		tc.report(diag.SemaError, stmt.Span, "unsupported statement %s", stmt.Kind)
		return false
	}
}

// checkLet: объявленный тип должен быть совместим с типом значения и
// побеждает; без аннотации берём тип значения.
func (tc *typeChecker) checkLet(id ast.StmtID, let *ast.LetStmt) bool {
	declared := types.NoTypeID
	if let.Type.IsValid() {
		declared = tc.resolveTypeExpr(let.Type)
		// пустой [] берёт тип из аннотации
		if tc.isEmptyList(let.Value) && tc.types.Kind(declared) == types.KindList {
			tc.result.ExprTypes[let.Value] = declared
		}
	}

	valueType := tc.typeExpr(let.Value)
	if valueType == types.NoTypeID {
		return false
	}

	bound := valueType
	if declared != types.NoTypeID {
		if !tc.types.Compatible(declared, valueType) {
			tc.failWith(diag.ReportError(tc.reporter, diag.SemaTypeMismatch, tc.exprSpan(let.Value),
				fmt.Sprintf("cannot initialize '%s' of type %s with a value of type %s",
					tc.builder.Name(let.Name), tc.typeLabel(declared), tc.typeLabel(valueType))).
				WithNote(tc.builder.Types.Get(let.Type).Span, "declared here"))
			return false
		}
		bound = declared
	}

	name := tc.builder.Name(let.Name)
	tc.result.LetTypes[id] = bound
	tc.result.Bindings.Declare(name, symbols.Binding{
		Name:     name,
		Type:     bound,
		Decl:     let.NameSpan,
		Declared: declared != types.NoTypeID,
	})
	return true
}

func (tc *typeChecker) isEmptyList(id ast.ExprID) bool {
	list, ok := tc.builder.Exprs.List(id)
	return ok && len(list.Elems) == 0
}
