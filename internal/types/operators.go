package types

import "quill/internal/ast"

// FamilyMask describes broad categories of types an operator accepts.
type FamilyMask uint8

const (
	FamilyNone FamilyMask = 0
	FamilyInt  FamilyMask = 1 << iota
	FamilyFloat
	FamilyString
	FamilyList
)

const (
	FamilyNumeric = FamilyInt | FamilyFloat
	FamilyAny     = FamilyNumeric | FamilyString | FamilyList
)

// BinaryResult describes how to derive the result type for an operator.
type BinaryResult uint8

const (
	BinaryResultUnknown BinaryResult = iota
	BinaryResultLeft                 // type of the left operand
	BinaryResultBool                 // i32 holding 0/1
	BinaryResultNumeric              // Promote(left, right)
)

// BinaryFlags annotate special handling for binary operators.
type BinaryFlags uint8

const (
	BinaryFlagNone BinaryFlags = 0
	// BinaryFlagCompatible requires Compatible(left, right).
	BinaryFlagCompatible BinaryFlags = 1 << iota
)

// BinarySpec lists operand families and expected result for an operation.
type BinarySpec struct {
	Left   FamilyMask
	Right  FamilyMask
	Result BinaryResult
	Flags  BinaryFlags
}

// UnaryResult indicates how to derive the resulting type.
type UnaryResult uint8

const (
	UnaryResultUnknown UnaryResult = iota
	UnaryResultSame
)

// UnarySpec describes operand expectations for unary operators.
type UnarySpec struct {
	Operand FamilyMask
	Result  UnaryResult
}

var numericSpec = BinarySpec{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultNumeric}

var binarySpecTable = map[ast.ExprBinaryOp][]BinarySpec{
	ast.ExprBinaryAdd: {
		numericSpec,
		{Left: FamilyString, Right: FamilyString, Result: BinaryResultLeft},
	},
	ast.ExprBinarySub: {numericSpec},
	ast.ExprBinaryMul: {
		numericSpec,
		{Left: FamilyString, Right: FamilyInt, Result: BinaryResultLeft},
	},
	ast.ExprBinaryDiv:      {numericSpec},
	ast.ExprBinaryFloorDiv: {numericSpec},
	ast.ExprBinaryMod:      {numericSpec},
	ast.ExprBinaryLogicalAnd: {
		{Left: FamilyInt, Right: FamilyInt, Result: BinaryResultBool},
	},
	ast.ExprBinaryLogicalOr: {
		{Left: FamilyInt, Right: FamilyInt, Result: BinaryResultBool},
	},
	ast.ExprBinaryEq: {
		{Left: FamilyAny, Right: FamilyAny, Result: BinaryResultBool, Flags: BinaryFlagCompatible},
	},
	ast.ExprBinaryNotEq: {
		{Left: FamilyAny, Right: FamilyAny, Result: BinaryResultBool, Flags: BinaryFlagCompatible},
	},
	ast.ExprBinaryLess:      orderingSpecs,
	ast.ExprBinaryLessEq:    orderingSpecs,
	ast.ExprBinaryGreater:   orderingSpecs,
	ast.ExprBinaryGreaterEq: orderingSpecs,
}

var orderingSpecs = []BinarySpec{
	{Left: FamilyNumeric, Right: FamilyNumeric, Result: BinaryResultBool},
	{Left: FamilyString, Right: FamilyString, Result: BinaryResultBool},
}

var unarySpecTable = map[ast.ExprUnaryOp]UnarySpec{
	ast.ExprUnaryMinus: {Operand: FamilyNumeric, Result: UnaryResultSame},
	ast.ExprUnaryNot:   {Operand: FamilyNumeric, Result: UnaryResultSame},
}

// BinarySpecs returns operand rules for the given operator.
func BinarySpecs(op ast.ExprBinaryOp) []BinarySpec {
	return binarySpecTable[op]
}

// UnarySpecFor returns operand/result hints for unary operators.
func UnarySpecFor(op ast.ExprUnaryOp) (UnarySpec, bool) {
	spec, ok := unarySpecTable[op]
	return spec, ok
}

// FamilyOf maps a kind to its operator family.
func FamilyOf(k Kind) FamilyMask {
	switch {
	case k.IsInteger():
		return FamilyInt
	case k.IsFloat():
		return FamilyFloat
	case k == KindString:
		return FamilyString
	case k == KindList:
		return FamilyList
	default:
		return FamilyNone
	}
}

// ResolveBinary picks the first spec that accepts the operand types and
// returns the result type. ok is false when no spec matches.
func (in *Interner) ResolveBinary(op ast.ExprBinaryOp, left, right TypeID) (TypeID, bool) {
	lf, rf := FamilyOf(in.Kind(left)), FamilyOf(in.Kind(right))
	for _, spec := range BinarySpecs(op) {
		if lf&spec.Left == 0 || rf&spec.Right == 0 {
			continue
		}
		if spec.Flags&BinaryFlagCompatible != 0 && !in.Compatible(left, right) {
			continue
		}
		switch spec.Result {
		case BinaryResultLeft:
			return left, true
		case BinaryResultBool:
			return in.builtins.I32, true
		case BinaryResultNumeric:
			return in.Promote(left, right), true
		}
	}
	return NoTypeID, false
}

// ResolveUnary returns the result type of a unary operator.
func (in *Interner) ResolveUnary(op ast.ExprUnaryOp, operand TypeID) (TypeID, bool) {
	spec, ok := UnarySpecFor(op)
	if !ok || FamilyOf(in.Kind(operand))&spec.Operand == 0 {
		return NoTypeID, false
	}
	return operand, true
}
