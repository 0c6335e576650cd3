package vm

import (
	"quill/internal/ast"
	"quill/internal/source"
	"quill/internal/types"
)

// evalExpr computes id bottom-up, left operand first.
func (vm *VM) evalExpr(id ast.ExprID) (Value, *VMError) {
	expr := vm.builder.Exprs.Get(id)
	if expr == nil {
		return Value{}, vm.eb.unimplemented(source.Span{}, "missing expression")
	}
	ty := vm.sema.TypeOf(id)

	switch expr.Kind {
	case ast.ExprNumber:
		num, _ := vm.builder.Exprs.Number(id)
		if num.Kind == ast.ExprLitFloat {
			return MakeFloat(ty, num.Float), nil
		}
		return MakeInt(ty, num.Int), nil

	case ast.ExprString:
		lit, _ := vm.builder.Exprs.StringLit(id)
		return MakeString(ty, lit.Value), nil

	case ast.ExprIdent:
		ident, _ := vm.builder.Exprs.Ident(id)
		name := vm.builder.Name(ident.Name)
		sym, ok := vm.symbols.Lookup(name)
		if !ok {
			return Value{}, vm.eb.undefined(expr.Span, name)
		}
		return sym.Value, nil

	case ast.ExprBinary:
		data, _ := vm.builder.Exprs.Binary(id)
		return vm.evalBinary(expr.Span, data, ty)

	case ast.ExprUnary:
		data, _ := vm.builder.Exprs.Unary(id)
		return vm.evalUnary(expr.Span, data)

	case ast.ExprList:
		data, _ := vm.builder.Exprs.List(id)
		return vm.evalList(data, ty)

	case ast.ExprSlice:
		data, _ := vm.builder.Exprs.Slice(id)
		return vm.evalSlice(expr.Span, data, ty)

	case ast.ExprMethodCall:
		data, _ := vm.builder.Exprs.MethodCall(id)
		return vm.evalMethodCall(expr.Span, data, ty)

	default:
		return Value{}, vm.eb.unimplemented(expr.Span, "expression "+expr.Kind.String())
	}
}

// evalList converts every element to the list's element type.
func (vm *VM) evalList(data *ast.ExprListData, listType types.TypeID) (Value, *VMError) {
	elemType, _ := vm.types.Elem(listType)
	elems := make([]Value, 0, len(data.Elems))
	for _, elemID := range data.Elems {
		v, vmErr := vm.evalExpr(elemID)
		if vmErr != nil {
			return Value{}, vmErr
		}
		if v, vmErr = vm.convert(v, elemType, vm.exprSpan(elemID)); vmErr != nil {
			return Value{}, vmErr
		}
		elems = append(elems, v)
	}
	return MakeList(listType, elems), nil
}

func (vm *VM) evalUnary(span source.Span, data *ast.ExprUnaryData) (Value, *VMError) {
	operand, vmErr := vm.evalExpr(data.Operand)
	if vmErr != nil {
		return Value{}, vmErr
	}
	switch data.Op {
	case ast.ExprUnaryMinus:
		switch operand.Kind {
		case VKInt:
			return MakeInt(operand.Type, wrapInt(vm.types.Kind(operand.Type), -operand.Int)), nil
		case VKFloat:
			return MakeFloat(operand.Type, -operand.Float), nil
		}
	case ast.ExprUnaryNot:
		switch operand.Kind {
		case VKInt:
			return MakeInt(operand.Type, boolInt(!operand.Truthy())), nil
		case VKFloat:
			return MakeFloat(operand.Type, float64(boolInt(!operand.Truthy()))), nil
		}
	}
	return Value{}, vm.eb.typeMismatch(span, "numeric operand for unary "+data.Op.String(), operand.Kind)
}

func (vm *VM) exprSpan(id ast.ExprID) source.Span {
	if expr := vm.builder.Exprs.Get(id); expr != nil {
		return expr.Span
	}
	return source.Span{}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
