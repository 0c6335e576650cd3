package vm

import (
	"strings"
	"unicode/utf8"

	"quill/internal/ast"
	"quill/internal/source"
	"quill/internal/types"
)

// evalSlice cuts subject[start:end] over characters. Negative bounds count
// from the end; a bare index s[i] is s[i:i+1]; both bounds are clamped into
// [0, len] with end >= start.
func (vm *VM) evalSlice(span source.Span, data *ast.ExprSliceData, result types.TypeID) (Value, *VMError) {
	subject, vmErr := vm.evalExpr(data.Subject)
	if vmErr != nil {
		return Value{}, vmErr
	}
	if subject.Kind != VKString {
		return Value{}, vm.eb.typeMismatch(span, "string subject for slice", subject.Kind)
	}
	runes := []rune(subject.Str)
	n := int64(len(runes))

	start := int64(0)
	if data.Start.IsValid() {
		bound, vmErr := vm.evalBound(data.Start)
		if vmErr != nil {
			return Value{}, vmErr
		}
		start = bound
		if start < 0 {
			start += n
		}
	}

	end := n
	switch {
	case data.Index:
		end = start + 1
	case data.End.IsValid():
		bound, vmErr := vm.evalBound(data.End)
		if vmErr != nil {
			return Value{}, vmErr
		}
		end = bound
		if end < 0 {
			end += n
		}
	}

	start = max(0, min(start, n))
	end = max(start, min(end, n))
	return MakeString(result, string(runes[start:end])), nil
}

func (vm *VM) evalBound(id ast.ExprID) (int64, *VMError) {
	v, vmErr := vm.evalExpr(id)
	if vmErr != nil {
		return 0, vmErr
	}
	if v.Kind != VKInt {
		return 0, vm.eb.typeMismatch(vm.exprSpan(id), "integer slice bound", v.Kind)
	}
	return v.Int, nil
}

func (vm *VM) evalMethodCall(span source.Span, data *ast.ExprMethodCallData, result types.TypeID) (Value, *VMError) {
	subject, vmErr := vm.evalExpr(data.Subject)
	if vmErr != nil {
		return Value{}, vmErr
	}
	args := make([]string, 0, len(data.Args))
	for _, argID := range data.Args {
		arg, vmErr := vm.evalExpr(argID)
		if vmErr != nil {
			return Value{}, vmErr
		}
		if arg.Kind != VKString {
			return Value{}, vm.eb.typeMismatch(vm.exprSpan(argID), "string argument", arg.Kind)
		}
		args = append(args, arg.Str)
	}

	name := vm.builder.Name(data.Name)
	if subject.Kind == VKList {
		if name == "len" {
			return MakeInt(result, int64(len(subject.List))), nil
		}
		return Value{}, vm.eb.methodSubject(data.NameSpan, name, subject.Kind)
	}
	if subject.Kind != VKString {
		return Value{}, vm.eb.methodSubject(data.NameSpan, name, subject.Kind)
	}
	if len(args) < methodArity(name) {
		return Value{}, vm.eb.makeError(PanicUnknownMethod, span, "not enough arguments for "+name)
	}

	s := subject.Str
	switch name {
	case "upper":
		return MakeString(result, vm.upper.String(s)), nil
	case "lower":
		return MakeString(result, vm.lower.String(s)), nil
	case "len":
		return MakeInt(result, int64(utf8.RuneCountInString(s))), nil
	case "replace":
		return MakeString(result, replaceAll(s, args[0], args[1])), nil
	case "contains":
		return MakeInt(result, boolInt(strings.Contains(s, args[0]))), nil
	case "startswith":
		return MakeInt(result, boolInt(strings.HasPrefix(s, args[0]))), nil
	case "endswith":
		return MakeInt(result, boolInt(strings.HasSuffix(s, args[0]))), nil
	default:
		return Value{}, vm.eb.unknownMethod(data.NameSpan, name)
	}
}

// replaceAll swaps non-overlapping occurrences left to right. An empty
// pattern matches nothing.
func replaceAll(s, old, repl string) string {
	if old == "" {
		return s
	}
	return strings.ReplaceAll(s, old, repl)
}

func methodArity(name string) int {
	switch name {
	case "replace":
		return 2
	case "contains", "startswith", "endswith":
		return 1
	default:
		return 0
	}
}
