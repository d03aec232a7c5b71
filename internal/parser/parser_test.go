package parser

import (
	"testing"

	"github.com/cwbudde/go-wisp/internal/scanner"
	"github.com/cwbudde/go-wisp/pkg/ast"
)

func parseSource(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	sc := scanner.New(source)
	tokens, scanErrs := sc.ScanTokens()
	if len(scanErrs) > 0 {
		t.Fatalf("unexpected scan errors: %v", scanErrs)
	}
	stmts, parseErrs := New(tokens).Parse()
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	return stmts
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parseSource(t, "var x = 1 + 2;")
	if len(stmts) != 1 {
		t.Fatalf("expected one statement, got %d", len(stmts))
	}
	got := ast.Print(stmts)
	want := "(var x (+ 1 2))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseIfElse(t *testing.T) {
	stmts := parseSource(t, `if (x) print 1; else print 2;`)
	got := ast.Print(stmts)
	want := "(if x (print 1) (print 2))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseWhileLoop(t *testing.T) {
	stmts := parseSource(t, `while (x < 10) { x = x + 1; }`)
	got := ast.Print(stmts)
	want := "(while (< x 10) (block (= x (+ x 1))))\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parseSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if len(stmts) != 1 {
		t.Fatalf("expected the desugared for-loop to live in one enclosing block, got %d stmts", len(stmts))
	}
	if _, ok := stmts[0].(*ast.BlockStmt); !ok {
		t.Fatalf("expected *ast.BlockStmt, got %T", stmts[0])
	}
	block := stmts[0].(*ast.BlockStmt)
	if len(block.Statements) != 2 {
		t.Fatalf("expected init + while, got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.VarStmt); !ok {
		t.Errorf("expected first statement to be the loop initializer, got %T", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected second statement to be *ast.WhileStmt, got %T", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected while body wrapped in a block for the increment, got %T", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("expected original body + increment, got %d statements", len(body.Statements))
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parseSource(t, `fn add(a, b) { return a + b; }`)
	fnStmt, ok := stmts[0].(*ast.FunctionStmt)
	if !ok {
		t.Fatalf("expected *ast.FunctionStmt, got %T", stmts[0])
	}
	if fnStmt.Decl.Name.Literal != "add" {
		t.Errorf("got name %q, want add", fnStmt.Decl.Name.Literal)
	}
	if len(fnStmt.Decl.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fnStmt.Decl.Params))
	}
}

func TestParseClassWithSuperclassAndStaticMethod(t *testing.T) {
	stmts := parseSource(t, `
		class Animal {
			fn speak() { print "..."; }
		}
		class Dog < Animal {
			static fn create() { return Dog(); }
			fn speak() { print "woof"; }
		}
	`)
	if len(stmts) != 2 {
		t.Fatalf("expected 2 class declarations, got %d", len(stmts))
	}
	dog, ok := stmts[1].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("expected *ast.ClassStmt, got %T", stmts[1])
	}
	if dog.Superclass == nil || dog.Superclass.Name.Literal != "Animal" {
		t.Errorf("expected Dog < Animal, got %+v", dog.Superclass)
	}
	if len(dog.StaticMethods) != 1 || dog.StaticMethods[0].Name.Literal != "create" {
		t.Errorf("expected one static method named create, got %+v", dog.StaticMethods)
	}
	if len(dog.Methods) != 1 || dog.Methods[0].Name.Literal != "speak" {
		t.Errorf("expected one instance method named speak, got %+v", dog.Methods)
	}
}

func TestParseCallAndPropertyAccess(t *testing.T) {
	stmts := parseSource(t, `a.b.c(1, 2);`)
	got := ast.Print(stmts)
	want := "(call (. (. a b) c) 1 2)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseMissingSemicolonIsAnError(t *testing.T) {
	sc := scanner.New("var x = 1")
	tokens, _ := sc.ScanTokens()
	_, errs := New(tokens).Parse()
	if len(errs) == 0 {
		t.Fatal("expected a parse error for the missing semicolon")
	}
}

func TestParseSynchronizesAfterError(t *testing.T) {
	sc := scanner.New("var; var y = 1;")
	tokens, _ := sc.ScanTokens()
	stmts, errs := New(tokens).Parse()
	if len(errs) == 0 {
		t.Fatal("expected at least one parse error")
	}
	if len(stmts) != 1 {
		t.Fatalf("expected parsing to recover and still parse 'var y = 1;', got %d statements", len(stmts))
	}
}
