package wisp

import (
	"strings"
	"testing"
)

func Test_Error_KindHeaderText(t *testing.T) {
	cases := map[Kind]string{
		IoError:             "IO ERROR",
		ParseError:          "PARSE ERROR",
		NameError:           "NAME ERROR",
		TypeError:           "TYPE ERROR",
		ArityError:          "ARITY ERROR",
		AssertionFailed:     "ASSERTION FAILED",
		AllocError:          "ALLOC ERROR",
		UndefinedEvaluation: "UNDEFINED EVALUATION",
		ControlFlowError:    "CONTROL FLOW ERROR",
		UsageError:          "USAGE ERROR",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func Test_Error_WithoutSourceIsPlainOneLiner(t *testing.T) {
	err := newErr(NameError, "'%s' is not defined", "foo")
	got := err.Error()
	if strings.Contains(got, "\n") {
		t.Fatalf("want a single-line message with no source context, got %q", got)
	}
	if !strings.Contains(got, "NAME ERROR") || !strings.Contains(got, "foo") {
		t.Fatalf("want message to mention kind and detail, got %q", got)
	}
}

func Test_Error_WithSourceRendersCaretSnippet(t *testing.T) {
	src := "fun main() {\n  foo(1, 2);\n}"
	err := newErrAt(TypeError, src, "prog.wisp", 2, 3, "'foo' is not a function")
	got := err.Error()

	for _, want := range []string{
		"TYPE ERROR",
		"prog.wisp",
		"2:3",
		"foo(1, 2);",
		"^",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("error text missing %q:\n%s", want, got)
		}
	}

	lines := strings.Split(got, "\n")
	var caretLine string
	for i, l := range lines {
		if strings.Contains(l, "foo(1, 2);") && i+1 < len(lines) {
			caretLine = lines[i+1]
			break
		}
	}
	if caretLine == "" || !strings.Contains(caretLine, "^") {
		t.Fatalf("want a caret line directly under the offending source line, got:\n%s", got)
	}
}

func Test_Error_CaretColumnOneHasNoLeadingSpacePastTheBar(t *testing.T) {
	src := "x"
	err := newErrAt(ParseError, src, "", 1, 1, "unexpected token")
	got := err.Error()
	if !strings.Contains(got, "| ^") {
		t.Fatalf("want caret flush against column 1, got:\n%s", got)
	}
}
