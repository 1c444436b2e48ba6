package wisp

import "testing"

func newIP() *Interpreter { return NewInterpreter() }

func evalWithIP(t *testing.T, ip *Interpreter, src string) Value {
	t.Helper()
	v, err := ip.EvalSource(src)
	if err != nil {
		t.Fatalf("EvalSource error: %v\nsource:\n%s", err, src)
	}
	return v
}

func wantErrKind(t *testing.T, err error, kind Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("want %s, got no error", kind)
	}
	e, ok := err.(*Error)
	if !ok {
		t.Fatalf("want *Error, got %T (%v)", err, err)
	}
	if e.Kind != kind {
		t.Fatalf("want %s, got %s (%v)", kind, e.Kind, e.Msg)
	}
}
