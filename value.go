// value.go: the tagged Value union (spec.md §3) and its arithmetic,
// comparison, bitwise and logical operators.
//
// Grounded on original_source/include/AST/Value.hpp's
// std::variant<int,size_t,float,double,bool,char,any> and its
// std::visit-based operators: + - * / promote by the natural C usual-
// arithmetic-conversion order (double > float > size_t > int), % and the
// bitwise/logical operators only succeed when both operands are integral
// (silently yielding the zero/false of the result kind otherwise), and
// toBool is true for any non-zero integral variant.
package wisp

import (
	"fmt"
	"math"
)

// Tag identifies which variant of Value is populated.
type Tag int

const (
	TInt Tag = iota
	TSize
	TFloat32
	TFloat64
	TBool
	TChar
	TOpaque
)

func (t Tag) String() string {
	switch t {
	case TInt:
		return "Int"
	case TSize:
		return "Size"
	case TFloat32:
		return "Float32"
	case TFloat64:
		return "Float64"
	case TBool:
		return "Bool"
	case TChar:
		return "Char"
	case TOpaque:
		return "Opaque"
	default:
		return "?"
	}
}

// Value is a small tagged union. Numeric/bool/char variants are stored
// unboxed in Num/Bit; Opaque carries an arbitrary host-side object (a
// *StructInstance wrapper or built-in helper state such as a dynamic array).
type Value struct {
	Tag    Tag
	Num    float64 // backing store for Int/Size/Float32/Float64/Char (as code point)
	Bit    bool    // backing store for Bool
	Opaque any     // populated iff Tag == TOpaque
}

func IntValue(n int32) Value       { return Value{Tag: TInt, Num: float64(n)} }
func SizeValue(n uint64) Value     { return Value{Tag: TSize, Num: float64(n)} }
func Float32Value(f float32) Value { return Value{Tag: TFloat32, Num: float64(f)} }
func Float64Value(f float64) Value { return Value{Tag: TFloat64, Num: f} }
func BoolValue(b bool) Value       { return Value{Tag: TBool, Bit: b} }
func CharValue(c byte) Value       { return Value{Tag: TChar, Num: float64(c)} }
func OpaqueValue(o any) Value      { return Value{Tag: TOpaque, Opaque: o} }

// Zero is the default value a declaration with no initializer gets.
var Zero = IntValue(0)

func (v Value) AsInt32() int32    { return int32(v.Num) }
func (v Value) AsUint64() uint64  { return uint64(v.Num) }
func (v Value) AsFloat32() float32 { return float32(v.Num) }
func (v Value) AsByte() byte      { return byte(int64(v.Num)) }

func (v Value) isIntegral() bool {
	switch v.Tag {
	case TInt, TSize, TChar, TBool:
		return true
	default:
		return false
	}
}

func (v Value) isArithmeticOrPointer() bool {
	switch v.Tag {
	case TInt, TSize, TFloat32, TFloat64, TChar, TBool:
		return true
	default:
		return false
	}
}

// intOf coerces any integral variant (including Bool/Char) to an int64,
// matching the original's union-of-numeric-representations behavior.
func (v Value) intOf() int64 {
	if v.Tag == TBool {
		if v.Bit {
			return 1
		}
		return 0
	}
	return int64(v.Num)
}

func (v Value) floatOf() float64 {
	if v.Tag == TBool {
		return float64(v.intOf())
	}
	return v.Num
}

// ToBool implements spec.md §3's toBool: true for any non-zero integral
// variant, false otherwise (including for Float/Opaque).
func ToBool(v Value) bool {
	switch v.Tag {
	case TBool:
		return v.Bit
	case TInt, TSize, TChar:
		return v.Num != 0
	default:
		return false
	}
}

// promote picks the result Tag of a binary arithmetic op per the original's
// usual-arithmetic-conversion order: Float64 > Float32 > Size > Int, with
// Bool/Char treated as their integral value before promotion.
func promote(a, b Tag) Tag {
	rank := func(t Tag) int {
		switch t {
		case TFloat64:
			return 4
		case TFloat32:
			return 3
		case TSize:
			return 2
		default:
			return 1 // Int, Bool, Char
		}
	}
	if rank(a) >= rank(b) {
		if a == TBool || a == TChar {
			return TInt
		}
		return a
	}
	if b == TBool || b == TChar {
		return TInt
	}
	return b
}

func makeNumeric(tag Tag, f float64) Value {
	switch tag {
	case TFloat64:
		return Float64Value(f)
	case TFloat32:
		return Float32Value(float32(f))
	case TSize:
		return SizeValue(uint64(int64(f)))
	default:
		return IntValue(int32(int64(f)))
	}
}

// Add, Sub, Mul, Div implement binary + - * /. Both operands must be
// arithmetic-or-pointer; otherwise the natural zero of Int is returned (the
// spec defines these only over arithmetic/pointer operands via Value
// dispatch, never erroring here — callers that need a TypeError for e.g.
// `.`/`[]` on the wrong kind raise it themselves in expr_op.go).
func Add(l, r Value) Value { return arith(l, r, func(a, b float64) float64 { return a + b }) }
func Sub(l, r Value) Value { return arith(l, r, func(a, b float64) float64 { return a - b }) }
func Mul(l, r Value) Value { return arith(l, r, func(a, b float64) float64 { return a * b }) }
func Div(l, r Value) Value {
	return arith(l, r, func(a, b float64) float64 {
		if b == 0 {
			return 0
		}
		return a / b
	})
}

func arith(l, r Value, op func(a, b float64) float64) Value {
	if !l.isArithmeticOrPointer() || !r.isArithmeticOrPointer() {
		return IntValue(0)
	}
	tag := promote(l.Tag, r.Tag)
	return makeNumeric(tag, op(l.floatOf(), r.floatOf()))
}

// Mod implements %: integral operands only, else 0.
func Mod(l, r Value) Value {
	if !l.isIntegral() || !r.isIntegral() {
		return IntValue(0)
	}
	ri := r.intOf()
	if ri == 0 {
		return IntValue(0)
	}
	return IntValue(int32(l.intOf() % ri))
}

func bitwise(l, r Value, op func(a, b int64) int64) Value {
	if !l.isIntegral() || !r.isIntegral() {
		return IntValue(0)
	}
	return IntValue(int32(op(l.intOf(), r.intOf())))
}

func BitAnd(l, r Value) Value { return bitwise(l, r, func(a, b int64) int64 { return a & b }) }
func BitOr(l, r Value) Value  { return bitwise(l, r, func(a, b int64) int64 { return a | b }) }
func BitXor(l, r Value) Value { return bitwise(l, r, func(a, b int64) int64 { return a ^ b }) }

func LogicalAnd(l, r Value) Value {
	if !l.isIntegral() || !r.isIntegral() {
		return BoolValue(false)
	}
	return BoolValue(l.intOf() != 0 && r.intOf() != 0)
}

func LogicalOr(l, r Value) Value {
	if !l.isIntegral() || !r.isIntegral() {
		return BoolValue(false)
	}
	return BoolValue(l.intOf() != 0 || r.intOf() != 0)
}

// Eq/Neq apply to all variants (spec.md §3).
func Eq(l, r Value) Value  { return BoolValue(valuesEqual(l, r)) }
func Neq(l, r Value) Value { return BoolValue(!valuesEqual(l, r)) }

func valuesEqual(l, r Value) bool {
	if l.Tag == TOpaque || r.Tag == TOpaque {
		if l.Tag != r.Tag {
			return false
		}
		return l.Opaque == r.Opaque
	}
	if l.Tag == TBool || r.Tag == TBool {
		return ToBool(l) == ToBool(r) && l.Tag == r.Tag
	}
	return l.floatOf() == r.floatOf()
}

// Lt/Gt/Le/Ge require arithmetic operands (spec.md §3); Opaque/Bool yield
// false, matching the original's std::is_arithmetic_v guard.
func Lt(l, r Value) Value { return compareOrFalse(l, r, func(a, b float64) bool { return a < b }) }
func Gt(l, r Value) Value { return compareOrFalse(l, r, func(a, b float64) bool { return a > b }) }
func Le(l, r Value) Value { return compareOrFalse(l, r, func(a, b float64) bool { return a <= b }) }
func Ge(l, r Value) Value { return compareOrFalse(l, r, func(a, b float64) bool { return a >= b }) }

func compareOrFalse(l, r Value, op func(a, b float64) bool) Value {
	if l.Tag == TOpaque || r.Tag == TOpaque || l.Tag == TBool || r.Tag == TBool {
		return BoolValue(false)
	}
	return BoolValue(op(l.floatOf(), r.floatOf()))
}

// Neg implements unary -: negates any arithmetic-or-pointer variant.
func Neg(v Value) Value {
	if !v.isArithmeticOrPointer() {
		return IntValue(0)
	}
	return makeNumeric(v.Tag, -v.floatOf())
}

// Not implements unary !: inverts Bool only, false otherwise.
func Not(v Value) Value {
	if v.Tag != TBool {
		return BoolValue(false)
	}
	return BoolValue(!v.Bit)
}

// String renders a Value for print/println (builtins.go handles the
// pointer-as-C-string case separately; any other Opaque renders here as
// "Non printable").
func (v Value) String() string {
	switch v.Tag {
	case TInt:
		return fmt.Sprintf("%d", int32(v.Num))
	case TSize:
		return fmt.Sprintf("%d", uint64(v.Num))
	case TFloat32:
		return trimFloat(float64(float32(v.Num)))
	case TFloat64:
		return trimFloat(v.Num)
	case TBool:
		if v.Bit {
			return "true"
		}
		return "false"
	case TChar:
		return string(rune(byte(v.Num)))
	case TOpaque:
		return "Non printable"
	default:
		return "?"
	}
}

func trimFloat(f float64) string {
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		return fmt.Sprintf("%.1f", f)
	}
	return fmt.Sprintf("%g", f)
}
