package wisp

import "testing"

func Test_Value_NumericPromotion(t *testing.T) {
	cases := []struct {
		l, r Value
		want Tag
	}{
		{IntValue(1), SizeValue(2), TSize},
		{SizeValue(2), Float32Value(1.5), TFloat32},
		{Float32Value(1.5), Float64Value(2.5), TFloat64},
		{BoolValue(true), IntValue(1), TInt},
		{CharValue('a'), IntValue(1), TInt},
	}
	for _, c := range cases {
		got := Add(c.l, c.r)
		if got.Tag != c.want {
			t.Errorf("Add(%v, %v): want tag %s, got %s", c.l, c.r, c.want, got.Tag)
		}
	}
}

func Test_Value_DivisionByZeroIsZero(t *testing.T) {
	got := Div(IntValue(5), IntValue(0))
	if got.AsInt32() != 0 {
		t.Errorf("want 0, got %v", got)
	}
}

func Test_Value_ModAndBitwiseRequireIntegral(t *testing.T) {
	if got := Mod(Float64Value(5.5), IntValue(2)); got.AsInt32() != 0 {
		t.Errorf("Mod on a float operand should yield 0, got %v", got)
	}
	if got := BitAnd(IntValue(6), IntValue(3)); got.AsInt32() != 2 {
		t.Errorf("6 & 3 should be 2, got %v", got)
	}
}

func Test_Value_EqualityAcrossKinds(t *testing.T) {
	if !ToBool(Eq(IntValue(1), SizeValue(1))) {
		t.Error("1 (Int) should equal 1 (Size)")
	}
	if ToBool(Eq(IntValue(0), BoolValue(false))) {
		t.Error("Bool should only equal Bool, not Int, per valuesEqual")
	}
}

func Test_Value_CompareFalseForOpaqueAndBool(t *testing.T) {
	if ToBool(Lt(BoolValue(true), BoolValue(false))) {
		t.Error("Bool comparisons should be false")
	}
}

func Test_Value_ToBool(t *testing.T) {
	if ToBool(IntValue(0)) || !ToBool(IntValue(1)) {
		t.Error("toBool should track nonzero-ness for Int")
	}
	if ToBool(Float64Value(0)) {
		t.Error("toBool should be false for any Float variant")
	}
}
