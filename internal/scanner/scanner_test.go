package scanner

import (
	"testing"

	"github.com/cwbudde/go-wisp/pkg/token"
)

func scanTypes(t *testing.T, source string) []token.Type {
	t.Helper()
	s := New(source)
	tokens, errs := s.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	types := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestScanTokensPunctuationAndOperators(t *testing.T) {
	got := scanTypes(t, "(){},.-+;*!= == <= >= < > / !")
	want := []token.Type{
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE, token.COMMA,
		token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.SLASH, token.BANG, token.EOF,
	}
	assertTypes(t, got, want)
}

func TestScanTokensKeywordsAreReserved(t *testing.T) {
	got := scanTypes(t, "and break class continue else false fn for if nil or print return static super this true var while")
	want := []token.Type{
		token.AND, token.BREAK, token.CLASS, token.CONTINUE, token.ELSE,
		token.FALSE, token.FN, token.FOR, token.IF, token.NIL, token.OR,
		token.PRINT, token.RETURN, token.STATIC, token.SUPER, token.THIS,
		token.TRUE, token.VAR, token.WHILE, token.EOF,
	}
	assertTypes(t, got, want)
}

func TestScanTokensCaseSensitiveIdentifiers(t *testing.T) {
	s := New("While Var")
	tokens, errs := s.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Type != token.IDENT || tokens[0].Literal != "While" {
		t.Errorf("expected 'While' to scan as IDENT, got %v", tokens[0])
	}
	if tokens[1].Type != token.IDENT || tokens[1].Literal != "Var" {
		t.Errorf("expected 'Var' to scan as IDENT, got %v", tokens[1])
	}
}

func TestScanNumberLiteral(t *testing.T) {
	s := New("3.14 42")
	tokens, errs := s.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Value.(float64) != 3.14 {
		t.Errorf("got %v, want 3.14", tokens[0].Value)
	}
	if tokens[1].Value.(float64) != 42 {
		t.Errorf("got %v, want 42", tokens[1].Value)
	}
}

func TestScanStringLiteral(t *testing.T) {
	s := New(`"hello world"`)
	tokens, errs := s.ScanTokens()
	if len(errs) > 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	if tokens[0].Type != token.STRING || tokens[0].Value.(string) != "hello world" {
		t.Errorf("got %+v", tokens[0])
	}
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	s := New(`"oops`)
	_, errs := s.ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("expected one scan error, got %d", len(errs))
	}
}

func TestScanLineComment(t *testing.T) {
	got := scanTypes(t, "1 // trailing comment\n2")
	want := []token.Type{token.NUMBER, token.NUMBER, token.EOF}
	assertTypes(t, got, want)
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, errs := New("@").ScanTokens()
	if len(errs) != 1 {
		t.Fatalf("expected one scan error, got %d", len(errs))
	}
}

func assertTypes(t *testing.T, got, want []token.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}
