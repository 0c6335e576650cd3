package sema

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/types"
)

// typeExpr resolves and records the type of id. NoTypeID means the checker
// has failed and the caller must stop.
func (tc *typeChecker) typeExpr(id ast.ExprID) types.TypeID {
	if !id.IsValid() || tc.failure != nil {
		return types.NoTypeID
	}
	if ty, ok := tc.result.ExprTypes[id]; ok {
		return ty
	}
	expr := tc.builder.Exprs.Get(id)
	if expr == nil {
		return types.NoTypeID
	}

	var ty types.TypeID
	switch expr.Kind {
	case ast.ExprNumber:
		num, _ := tc.builder.Exprs.Number(id)
		ty = tc.literalType(num.Kind)
	case ast.ExprString:
		ty = tc.types.Builtins().String
	case ast.ExprIdent:
		ty = tc.typeIdent(id)
	case ast.ExprBinary:
		data, _ := tc.builder.Exprs.Binary(id)
		ty = tc.typeBinary(id, data)
	case ast.ExprUnary:
		data, _ := tc.builder.Exprs.Unary(id)
		ty = tc.typeUnary(id, data)
	case ast.ExprList:
		data, _ := tc.builder.Exprs.List(id)
		ty = tc.typeList(data)
	case ast.ExprSlice:
		data, _ := tc.builder.Exprs.Slice(id)
		ty = tc.typeSlice(data)
	case ast.ExprMethodCall:
		data, _ := tc.builder.Exprs.MethodCall(id)
		ty = tc.typeMethodCall(id, data)
	default:
		tc.report(diag.SemaError, expr.Span, "unsupported expression %s", expr.Kind)
	}

	if ty != types.NoTypeID {
		tc.result.ExprTypes[id] = ty
	}
	return ty
}

func (tc *typeChecker) literalType(kind ast.ExprLitKind) types.TypeID {
	if kind == ast.ExprLitFloat {
		return tc.types.Builtins().F64
	}
	return tc.types.Builtins().I32
}

func (tc *typeChecker) typeIdent(id ast.ExprID) types.TypeID {
	ident, _ := tc.builder.Exprs.Ident(id)
	name := tc.builder.Name(ident.Name)
	binding, ok := tc.result.Bindings.Lookup(name)
	if !ok {
		tc.report(diag.SemaUnresolvedSymbol, tc.exprSpan(id), "undeclared identifier '%s'", name)
		return types.NoTypeID
	}
	return binding.Type
}

func (tc *typeChecker) typeBinary(id ast.ExprID, data *ast.ExprBinaryData) types.TypeID {
	left := tc.typeExpr(data.Left)
	if left == types.NoTypeID {
		return types.NoTypeID
	}
	right := tc.typeExpr(data.Right)
	if right == types.NoTypeID {
		return types.NoTypeID
	}
	ty, ok := tc.types.ResolveBinary(data.Op, left, right)
	if !ok {
		tc.report(diag.SemaInvalidBinaryOperands, tc.exprSpan(id),
			"invalid operands to '%s': %s and %s", data.Op, tc.typeLabel(left), tc.typeLabel(right))
		return types.NoTypeID
	}
	return ty
}

func (tc *typeChecker) typeUnary(id ast.ExprID, data *ast.ExprUnaryData) types.TypeID {
	operand := tc.typeExpr(data.Operand)
	if operand == types.NoTypeID {
		return types.NoTypeID
	}
	ty, ok := tc.types.ResolveUnary(data.Op, operand)
	if !ok {
		tc.report(diag.SemaInvalidUnaryOperand, tc.exprSpan(id),
			"invalid operand to unary '%s': %s", data.Op, tc.typeLabel(operand))
		return types.NoTypeID
	}
	return ty
}

// typeList: [] is list[i32]. Otherwise every element must be compatible
// with the first one, and the element type is their common type, so
// [1, 2.5] is list[f64].
func (tc *typeChecker) typeList(data *ast.ExprListData) types.TypeID {
	if len(data.Elems) == 0 {
		return tc.types.List(tc.types.Builtins().I32)
	}
	first := tc.typeExpr(data.Elems[0])
	if first == types.NoTypeID {
		return types.NoTypeID
	}
	common := first
	for i, elem := range data.Elems[1:] {
		ty := tc.typeExpr(elem)
		if ty == types.NoTypeID {
			return types.NoTypeID
		}
		if !tc.types.Compatible(first, ty) {
			tc.failWith(diag.ReportError(tc.reporter, diag.SemaListElementMismatch, tc.exprSpan(elem),
				"list element "+itoa(i+2)+" has type "+tc.typeLabel(ty)+", expected "+tc.typeLabel(first)).
				WithNote(tc.exprSpan(data.Elems[0]), "element type fixed by the first element"))
			return types.NoTypeID
		}
		common = tc.types.Common(common, ty)
	}
	return tc.types.List(common)
}
