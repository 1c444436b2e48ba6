package wisp

import "testing"

func parseSrc(t *testing.T, src string) *StatementList {
	t.Helper()
	ip := newIP()
	p, err := NewParser(src, "<test>", ip.Global)
	if err != nil {
		t.Fatalf("parser construction failed: %v", err)
	}
	root, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return root
}

func Test_Parser_LeftAssociativeAdditiveChain(t *testing.T) {
	// 10 - 3 - 2 must parse as (10 - 3) - 2 == 5, not 10 - (3 - 2) == 9.
	ip := newIP()
	v := evalWithIP(t, ip, "10 - 3 - 2;")
	if v.AsInt32() != 5 {
		t.Fatalf("want left-associative 5, got %v", v)
	}
}

func Test_Parser_AssignmentIsRightAssociative(t *testing.T) {
	ip := newIP()
	v := evalWithIP(t, ip, `
		var a = 0;
		var b = 0;
		a = b = 7;
		return a + b;
	`)
	if v.AsInt32() != 14 {
		t.Fatalf("want a = (b = 7) to set both to 7, got %v", v)
	}
}

func Test_Parser_MultiplicationBindsTighterThanAddition(t *testing.T) {
	ip := newIP()
	v := evalWithIP(t, ip, "1 + 2 * 3;")
	if v.AsInt32() != 7 {
		t.Fatalf("want 7, got %v", v)
	}
}

func Test_Parser_DuplicateTopLevelFunctionIsParseError(t *testing.T) {
	ip := newIP()
	_, err := ip.EvalSource(`
		fun twice() { return 1; }
		fun twice() { return 2; }
	`)
	wantErrKind(t, err, ParseError)
}

func Test_Parser_DuplicateStructAndFunctionNameIsParseError(t *testing.T) {
	ip := newIP()
	_, err := ip.EvalSource(`
		struct Thing { var n; }
		fun Thing() { return 1; }
	`)
	wantErrKind(t, err, ParseError)
}

func Test_Parser_ConstructorCallVsFunctionCallDisambiguation(t *testing.T) {
	root := parseSrc(t, `
		struct Box { var n; }
		fun Box2() { return 1; }
		Box(1);
		Box2();
	`)
	var sawCtor, sawCall bool
	for _, s := range root.Stmts {
		switch s.(type) {
		case *ConstructorCall:
			sawCtor = true
		case *FunctionCall:
			sawCall = true
		}
	}
	if !sawCtor {
		t.Errorf("want a top-level ConstructorCall node for Box(1)")
	}
	if !sawCall {
		t.Errorf("want a top-level FunctionCall node for Box2()")
	}
}

func Test_Parser_MemberAccessAndMethodCallChain(t *testing.T) {
	ip := newIP()
	v := evalWithIP(t, ip, `
		var a = array();
		a.add(5);
		return a.at(0);
	`)
	if v.AsInt32() != 5 {
		t.Fatalf("want 5, got %v", v)
	}
}

func Test_Parser_PrefixAndPostfixIncrement(t *testing.T) {
	ip := newIP()
	v := evalWithIP(t, ip, `
		var i = 5;
		i++;
		++i;
		return i;
	`)
	if v.AsInt32() != 7 {
		t.Fatalf("want 7 (5, then ++ twice), got %v", v)
	}
}
