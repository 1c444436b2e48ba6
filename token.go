// token.go: lexical token kinds (spec.md §4.1).
package wisp

type TokenKind int

const (
	TokEOF TokenKind = iota
	TokIdent
	TokInt
	TokSize
	TokFloat32
	TokFloat64
	TokBool
	TokChar
	TokString // desugars to a pointer into the heap, populated on first evaluation (parser.go's stringLit)
	TokVar
	TokFun
	TokIf
	TokElse
	TokWhile
	TokFor
	TokReturn
	TokBreak
	TokContinue
	TokStruct
	TokImport
	TokLParen
	TokRParen
	TokLBrace
	TokRBrace
	TokLBracket
	TokRBracket
	TokComma
	TokSemi
	TokDot
	TokOp // any of the operator tables below, exact text kept in Text
)

var keywords = map[string]TokenKind{
	"var": TokVar, "fun": TokFun, "if": TokIf, "else": TokElse,
	"while": TokWhile, "for": TokFor, "return": TokReturn,
	"break": TokBreak, "continue": TokContinue, "struct": TokStruct,
	"import": TokImport, "true": TokBool, "false": TokBool,
}

// Token is one lexed unit; Line/Col are 1-based, for error carets.
type Token struct {
	Kind TokenKind
	Text string
	Num  float64 // populated for numeric/char/bool literals
	Line int
	Col  int
}

// operators, longest-match-first so e.g. "<=" is never lexed as "<" "=".
var operators = []string{
	"&&", "||", "==", "!=", "<=", ">=", "->",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"++", "--",
	"+", "-", "*", "/", "%", "&", "|", "^", "<", ">", "=", "!", "$",
}
