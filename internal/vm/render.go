package vm

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders v the way print shows it: integers in decimal, floats
// with six significant digits, strings verbatim, lists as [a, b].
func FormatValue(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value) {
	switch v.Kind {
	case VKInt:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case VKFloat:
		sb.WriteString(formatFloat(v.Float))
	case VKString:
		sb.WriteString(v.Str)
	case VKList:
		sb.WriteByte('[')
		for i, elem := range v.List {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, elem)
		}
		sb.WriteByte(']')
	default:
		sb.WriteString("<invalid>")
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
