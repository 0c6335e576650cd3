package vm

import (
	"strconv"

	"fortio.org/safecast"

	"quill/internal/source"
	"quill/internal/types"
)

// wrapInt truncates v to the width of k, two's complement.
func wrapInt(k types.Kind, v int64) int64 {
	switch k {
	case types.KindI8:
		return int64(int8(v)) //nolint:gosec // G115: intentional wrap
	case types.KindI16:
		return int64(int16(v)) //nolint:gosec // G115: intentional wrap
	case types.KindI32:
		return int64(int32(v)) //nolint:gosec // G115: intentional wrap
	default:
		return v
	}
}

// fitsInt reports whether v is representable in integer kind k.
func fitsInt(k types.Kind, v int64) bool {
	var err error
	switch k {
	case types.KindI8:
		_, err = safecast.Conv[int8](v)
	case types.KindI16:
		_, err = safecast.Conv[int16](v)
	case types.KindI32:
		_, err = safecast.Conv[int32](v)
	}
	return err == nil
}

// truncToInt drops the fraction of f; NaN, Inf and out-of-range values fail.
func truncToInt(f float64) (int64, bool) {
	n, err := safecast.Truncate[int64](f)
	if err != nil {
		return 0, false
	}
	return n, true
}

// convert represents v in type target. Numbers convert across kinds:
// floats truncate toward zero, narrowing that does not fit is a VMError.
// Lists convert element-wise.
func (vm *VM) convert(v Value, target types.TypeID, span source.Span) (Value, *VMError) {
	if target == types.NoTypeID || v.Type == target {
		return v, nil
	}
	tk := vm.types.Kind(target)
	switch {
	case tk.IsInteger():
		var n int64
		switch v.Kind {
		case VKInt:
			n = v.Int
		case VKFloat:
			var ok bool
			if n, ok = truncToInt(v.Float); !ok {
				return Value{}, vm.eb.narrowing(span, FormatValue(v), tk.String())
			}
		default:
			return Value{}, vm.eb.typeMismatch(span, tk.String(), v.Kind)
		}
		if !fitsInt(tk, n) {
			return Value{}, vm.eb.narrowing(span, strconv.FormatInt(n, 10), tk.String())
		}
		return MakeInt(target, n), nil

	case tk.IsFloat():
		if !v.IsNumeric() {
			return Value{}, vm.eb.typeMismatch(span, tk.String(), v.Kind)
		}
		return MakeFloat(target, roundFloat(tk, v.AsFloat())), nil

	case tk == types.KindString:
		if v.Kind != VKString {
			return Value{}, vm.eb.typeMismatch(span, "string", v.Kind)
		}
		v.Type = target
		return v, nil

	case tk == types.KindList:
		if v.Kind != VKList {
			return Value{}, vm.eb.typeMismatch(span, "list", v.Kind)
		}
		elemType, _ := vm.types.Elem(target)
		elems := make([]Value, len(v.List))
		for i, elem := range v.List {
			conv, vmErr := vm.convert(elem, elemType, span)
			if vmErr != nil {
				return Value{}, vmErr
			}
			elems[i] = conv
		}
		return MakeList(target, elems), nil
	}
	return Value{}, vm.eb.unimplemented(span, "conversion to "+tk.String())
}

// roundFloat keeps f32 values at float32 precision.
func roundFloat(k types.Kind, f float64) float64 {
	if k == types.KindF32 {
		return float64(float32(f))
	}
	return f
}
