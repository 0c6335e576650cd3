package vm

import (
	"strings"

	"quill/internal/ast"
	"quill/internal/source"
	"quill/internal/types"
)

// maxStringLen caps string repetition results.
const maxStringLen = 1 << 28

func (vm *VM) evalAdd(span source.Span, left, right Value, result types.TypeID) (Value, *VMError) {
	if left.Kind == VKString && right.Kind == VKString {
		return MakeString(result, left.Str+right.Str), nil
	}
	return vm.evalArith(span, ast.ExprBinaryAdd, left, right, result)
}

// evalMul handles string repetition; non-positive counts yield "".
func (vm *VM) evalMul(span source.Span, left, right Value, result types.TypeID) (Value, *VMError) {
	if left.Kind != VKString {
		return vm.evalArith(span, ast.ExprBinaryMul, left, right, result)
	}
	if right.Kind != VKInt {
		return Value{}, vm.eb.typeMismatch(span, "integer repeat count", right.Kind)
	}
	count := right.Int
	if count <= 0 || left.Str == "" {
		return MakeString(result, ""), nil
	}
	if count > int64(maxStringLen/len(left.Str)) {
		return Value{}, vm.eb.makeError(PanicTooLarge, span, "string repetition result is too large")
	}
	return MakeString(result, strings.Repeat(left.Str, int(count))), nil
}

// evalArith computes numeric - / // % (and + * for numbers) in the promoted
// result type. Integer results wrap at the result width.
func (vm *VM) evalArith(span source.Span, op ast.ExprBinaryOp, left, right Value, result types.TypeID) (Value, *VMError) {
	if !left.IsNumeric() {
		return Value{}, vm.eb.typeMismatch(span, "numeric operand", left.Kind)
	}
	if !right.IsNumeric() {
		return Value{}, vm.eb.typeMismatch(span, "numeric operand", right.Kind)
	}
	rk := vm.types.Kind(result)
	if rk.IsFloat() {
		return vm.evalFloatArith(span, op, left, right, result, rk)
	}

	l, r := left.Int, right.Int
	var v int64
	switch op {
	case ast.ExprBinaryAdd:
		v = l + r
	case ast.ExprBinarySub:
		v = l - r
	case ast.ExprBinaryMul:
		v = l * r
	case ast.ExprBinaryDiv, ast.ExprBinaryFloorDiv:
		if r == 0 {
			return Value{}, vm.eb.divisionByZero(span, "division")
		}
		v = l / r
	case ast.ExprBinaryMod:
		if r == 0 {
			return Value{}, vm.eb.divisionByZero(span, "modulo")
		}
		v = l % r
	default:
		return Value{}, vm.eb.unimplemented(span, "arithmetic operator "+op.String())
	}
	return MakeInt(result, wrapInt(rk, v)), nil
}

// evalFloatArith: + - * / follow IEEE 754; // and % truncate both operands
// to integers first and represent the integer result as a float.
func (vm *VM) evalFloatArith(span source.Span, op ast.ExprBinaryOp, left, right Value, result types.TypeID, rk types.Kind) (Value, *VMError) {
	l, r := left.AsFloat(), right.AsFloat()
	var v float64
	switch op {
	case ast.ExprBinaryAdd:
		v = l + r
	case ast.ExprBinarySub:
		v = l - r
	case ast.ExprBinaryMul:
		v = l * r
	case ast.ExprBinaryDiv:
		v = l / r
	case ast.ExprBinaryFloorDiv, ast.ExprBinaryMod:
		li, okL := truncToInt(l)
		ri, okR := truncToInt(r)
		if !okL || !okR {
			return Value{}, vm.eb.makeError(PanicNarrowingOverflow, span, "operand of "+op.String()+" is not a finite integer")
		}
		if ri == 0 {
			if op == ast.ExprBinaryMod {
				return Value{}, vm.eb.truncatedDivisor(span, "modulo", r)
			}
			return Value{}, vm.eb.truncatedDivisor(span, "floor division", r)
		}
		if op == ast.ExprBinaryMod {
			v = float64(li % ri)
		} else {
			v = float64(li / ri)
		}
	default:
		return Value{}, vm.eb.unimplemented(span, "arithmetic operator "+op.String())
	}
	return MakeFloat(result, roundFloat(rk, v)), nil
}
