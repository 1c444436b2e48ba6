package wisp

// ValueLiteral wraps an already-computed Value (spec.md §3's ValueLiteral
// node). It also backs every declared binding after a VariableDecl runs, so
// that re-reading the name doesn't re-run the initializer.
type ValueLiteral struct {
	Value Value
}

func (v *ValueLiteral) Evaluate(scope *Scope) (Value, error) {
	return v.Value, nil
}

// Clone copies the Value by value (Opaque variants alias their payload,
// matching spec.md §3's "Values are copied by value except ... Opaque").
func (v *ValueLiteral) Clone(scope *Scope) (Expression, error) {
	return &ValueLiteral{Value: v.Value}, nil
}
