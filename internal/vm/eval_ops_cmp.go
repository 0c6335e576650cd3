package vm

import (
	"cmp"
	"math"
	"strings"

	"quill/internal/ast"
	"quill/internal/source"
)

// evalCompare: strings compare lexicographically, numbers with float
// semantics when either side is a float, lists element-wise (== and != only).
func (vm *VM) evalCompare(span source.Span, op ast.ExprBinaryOp, left, right Value) (bool, *VMError) {
	if op == ast.ExprBinaryEq || op == ast.ExprBinaryNotEq {
		eq, vmErr := vm.valuesEqual(span, left, right)
		if vmErr != nil {
			return false, vmErr
		}
		return eq == (op == ast.ExprBinaryEq), nil
	}

	var c int
	switch {
	case left.Kind == VKString && right.Kind == VKString:
		c = strings.Compare(left.Str, right.Str)
	case left.IsNumeric() && right.IsNumeric():
		if math.IsNaN(left.AsFloat()) || math.IsNaN(right.AsFloat()) {
			return false, nil
		}
		c = compareNumbers(left, right)
	default:
		return false, vm.eb.typeMismatch(span, "ordered operands", left.Kind)
	}

	switch op {
	case ast.ExprBinaryLess:
		return c < 0, nil
	case ast.ExprBinaryLessEq:
		return c <= 0, nil
	case ast.ExprBinaryGreater:
		return c > 0, nil
	default:
		return c >= 0, nil
	}
}

func compareNumbers(left, right Value) int {
	if left.Kind == VKFloat || right.Kind == VKFloat {
		return cmp.Compare(left.AsFloat(), right.AsFloat())
	}
	return cmp.Compare(left.Int, right.Int)
}

func (vm *VM) valuesEqual(span source.Span, left, right Value) (bool, *VMError) {
	switch {
	case left.Kind == VKString && right.Kind == VKString:
		return left.Str == right.Str, nil
	case left.IsNumeric() && right.IsNumeric():
		if left.Kind == VKFloat || right.Kind == VKFloat {
			return left.AsFloat() == right.AsFloat(), nil
		}
		return left.Int == right.Int, nil
	case left.Kind == VKList && right.Kind == VKList:
		if len(left.List) != len(right.List) {
			return false, nil
		}
		for i := range left.List {
			eq, vmErr := vm.valuesEqual(span, left.List[i], right.List[i])
			if vmErr != nil || !eq {
				return false, vmErr
			}
		}
		return true, nil
	default:
		return false, vm.eb.typeMismatch(span, left.Kind.String(), right.Kind)
	}
}
