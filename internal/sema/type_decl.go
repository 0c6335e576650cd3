package sema

import (
	"quill/internal/ast"
	"quill/internal/types"
)

var typeExprKinds = map[ast.TypeExprKind]types.Kind{
	ast.TypeExprI8:     types.KindI8,
	ast.TypeExprI16:    types.KindI16,
	ast.TypeExprI32:    types.KindI32,
	ast.TypeExprI64:    types.KindI64,
	ast.TypeExprF32:    types.KindF32,
	ast.TypeExprF64:    types.KindF64,
	ast.TypeExprString: types.KindString,
}

// resolveTypeExpr maps an annotation onto an interned type.
func (tc *typeChecker) resolveTypeExpr(id ast.TypeID) types.TypeID {
	return ResolveTypeExpr(tc.builder, tc.types, id)
}

// ResolveTypeExpr maps an annotation onto an interned type.
func ResolveTypeExpr(builder *ast.Builder, in *types.Interner, id ast.TypeID) types.TypeID {
	te := builder.Types.Get(id)
	if te == nil {
		return types.NoTypeID
	}
	if te.Kind == ast.TypeExprList {
		elem := ResolveTypeExpr(builder, in, te.Elem)
		if elem == types.NoTypeID {
			return types.NoTypeID
		}
		return in.List(elem)
	}
	ty, ok := in.Scalar(typeExprKinds[te.Kind])
	if !ok {
		return types.NoTypeID
	}
	return ty
}
