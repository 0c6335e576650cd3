package sema

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/types"
)

// typeSlice: subject must be a string, bounds integers; result is string.
func (tc *typeChecker) typeSlice(data *ast.ExprSliceData) types.TypeID {
	subject := tc.typeExpr(data.Subject)
	if subject == types.NoTypeID {
		return types.NoTypeID
	}
	if tc.types.Kind(subject) != types.KindString {
		tc.report(diag.SemaSliceSubject, tc.exprSpan(data.Subject), "cannot slice a value of type %s", tc.typeLabel(subject))
		return types.NoTypeID
	}
	for _, bound := range []ast.ExprID{data.Start, data.End} {
		if !bound.IsValid() {
			continue
		}
		ty := tc.typeExpr(bound)
		if ty == types.NoTypeID {
			return types.NoTypeID
		}
		if !tc.types.Kind(ty).IsInteger() {
			tc.report(diag.SemaSliceBound, tc.exprSpan(bound), "slice bound must be an integer, got %s", tc.typeLabel(ty))
			return types.NoTypeID
		}
	}
	return subject
}

// MethodResult is the static result of a builtin method.
type MethodResult uint8

const (
	MethodResultString MethodResult = iota
	MethodResultBool                // i32 0/1
	MethodResultInt                 // i32
)

// MethodSig describes a builtin method. Every parameter is a string.
type MethodSig struct {
	Params int
	Result MethodResult
}

var stringMethods = map[string]MethodSig{
	"upper":      {Params: 0, Result: MethodResultString},
	"lower":      {Params: 0, Result: MethodResultString},
	"len":        {Params: 0, Result: MethodResultInt},
	"replace":    {Params: 2, Result: MethodResultString},
	"contains":   {Params: 1, Result: MethodResultBool},
	"startswith": {Params: 1, Result: MethodResultBool},
	"endswith":   {Params: 1, Result: MethodResultBool},
}

var listMethods = map[string]MethodSig{
	"len": {Params: 0, Result: MethodResultInt},
}

// LookupMethod returns the signature of name on a subject of kind k.
func LookupMethod(k types.Kind, name string) (MethodSig, bool) {
	switch k {
	case types.KindString:
		sig, ok := stringMethods[name]
		return sig, ok
	case types.KindList:
		sig, ok := listMethods[name]
		return sig, ok
	default:
		return MethodSig{}, false
	}
}

func (tc *typeChecker) typeMethodCall(id ast.ExprID, data *ast.ExprMethodCallData) types.TypeID {
	subject := tc.typeExpr(data.Subject)
	if subject == types.NoTypeID {
		return types.NoTypeID
	}
	name := tc.builder.Name(data.Name)
	kind := tc.types.Kind(subject)

	sig, ok := LookupMethod(kind, name)
	if !ok {
		_, known := stringMethods[name]
		switch {
		case known:
			tc.report(diag.SemaMethodSubject, data.NameSpan, "method '%s' is not defined on %s", name, tc.typeLabel(subject))
		case kind == types.KindString || kind == types.KindList:
			tc.report(diag.SemaUnknownMethod, data.NameSpan, "unknown method '%s' on %s", name, tc.typeLabel(subject))
		default:
			tc.report(diag.SemaMethodSubject, data.NameSpan, "%s has no methods", tc.typeLabel(subject))
		}
		return types.NoTypeID
	}

	if len(data.Args) != sig.Params {
		tc.report(diag.SemaMethodArity, tc.exprSpan(id),
			"method '%s' expects %d argument(s), got %d", name, sig.Params, len(data.Args))
		return types.NoTypeID
	}
	for i, arg := range data.Args {
		ty := tc.typeExpr(arg)
		if ty == types.NoTypeID {
			return types.NoTypeID
		}
		if tc.types.Kind(ty) != types.KindString {
			tc.report(diag.SemaMethodArgType, tc.exprSpan(arg),
				"argument %d of '%s' must be string, got %s", i+1, name, tc.typeLabel(ty))
			return types.NoTypeID
		}
	}

	if sig.Result == MethodResultString {
		return tc.types.Builtins().String
	}
	return tc.types.Builtins().I32
}
