package vm

import (
	"quill/internal/ast"
	"quill/internal/source"
	"quill/internal/types"
)

// evalBinary evaluates both operands (no short-circuit) and dispatches on op.
// result is the type the checker resolved for the whole expression.
func (vm *VM) evalBinary(span source.Span, data *ast.ExprBinaryData, result types.TypeID) (Value, *VMError) {
	left, vmErr := vm.evalExpr(data.Left)
	if vmErr != nil {
		return Value{}, vmErr
	}
	right, vmErr := vm.evalExpr(data.Right)
	if vmErr != nil {
		return Value{}, vmErr
	}

	switch data.Op {
	case ast.ExprBinaryAdd:
		return vm.evalAdd(span, left, right, result)
	case ast.ExprBinaryMul:
		return vm.evalMul(span, left, right, result)
	case ast.ExprBinarySub, ast.ExprBinaryDiv, ast.ExprBinaryFloorDiv, ast.ExprBinaryMod:
		return vm.evalArith(span, data.Op, left, right, result)
	case ast.ExprBinaryLogicalAnd:
		return MakeInt(result, boolInt(left.Truthy() && right.Truthy())), nil
	case ast.ExprBinaryLogicalOr:
		return MakeInt(result, boolInt(left.Truthy() || right.Truthy())), nil
	case ast.ExprBinaryEq, ast.ExprBinaryNotEq,
		ast.ExprBinaryLess, ast.ExprBinaryLessEq, ast.ExprBinaryGreater, ast.ExprBinaryGreaterEq:
		ok, vmErr := vm.evalCompare(span, data.Op, left, right)
		if vmErr != nil {
			return Value{}, vmErr
		}
		return MakeInt(result, boolInt(ok)), nil
	default:
		return Value{}, vm.eb.unimplemented(span, "binary operator "+data.Op.String())
	}
}
