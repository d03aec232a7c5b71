package resolver

import (
	"testing"

	"github.com/cwbudde/go-wisp/internal/errors"
	"github.com/cwbudde/go-wisp/internal/parser"
	"github.com/cwbudde/go-wisp/internal/scanner"
	"github.com/cwbudde/go-wisp/pkg/ast"
)

func mustParse(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	sc := scanner.New(source)
	tokens, scanErrs := sc.ScanTokens()
	if len(scanErrs) > 0 {
		t.Fatalf("unexpected scan errors: %v", scanErrs)
	}
	stmts, parseErrs := parser.New(tokens).Parse()
	if len(parseErrs) > 0 {
		t.Fatalf("unexpected parse errors: %v", parseErrs)
	}
	return stmts
}

func resolveKinds(t *testing.T, source string) []string {
	t.Helper()
	stmts := mustParse(t, source)
	_, errs := Resolve(stmts)
	kinds := make([]string, len(errs))
	for i, err := range errs {
		we, ok := err.(*errors.WispError)
		if !ok {
			t.Fatalf("expected *errors.WispError, got %T", err)
		}
		kinds[i] = we.Kind
	}
	return kinds
}

func TestResolveRejectsReadInOwnInitializer(t *testing.T) {
	kinds := resolveKinds(t, `{ var x = x; }`)
	assertKinds(t, kinds, "ReadInInitializer")
}

func TestResolveRejectsReturnOutsideFunction(t *testing.T) {
	kinds := resolveKinds(t, `return 1;`)
	assertKinds(t, kinds, "ReturnOutsideFunction")
}

func TestResolveRejectsBreakOutsideLoop(t *testing.T) {
	kinds := resolveKinds(t, `break;`)
	assertKinds(t, kinds, "BreakOutsideLoop")
}

func TestResolveRejectsContinueOutsideLoop(t *testing.T) {
	kinds := resolveKinds(t, `continue;`)
	assertKinds(t, kinds, "ContinueOutsideLoop")
}

func TestResolveRejectsReturnValueFromInitializer(t *testing.T) {
	kinds := resolveKinds(t, `
		class Point {
			fn init(x) { return x; }
		}
	`)
	assertKinds(t, kinds, "ReturnValueFromInit")
}

func TestResolveAllowsBareReturnFromInitializer(t *testing.T) {
	kinds := resolveKinds(t, `
		class Point {
			fn init(x) { this.x = x; return; }
		}
	`)
	if len(kinds) != 0 {
		t.Fatalf("expected no errors, got %v", kinds)
	}
}

func TestResolveRejectsThisOutsideClass(t *testing.T) {
	kinds := resolveKinds(t, `print this;`)
	assertKinds(t, kinds, "ThisOutsideClass")
}

func TestResolveRejectsSuperOutsideClass(t *testing.T) {
	kinds := resolveKinds(t, `print super.speak();`)
	assertKinds(t, kinds, "SuperOutsideClass")
}

func TestResolveRejectsSuperWithoutSuperclass(t *testing.T) {
	kinds := resolveKinds(t, `
		class Animal {
			fn speak() { super.speak(); }
		}
	`)
	assertKinds(t, kinds, "SuperWithoutSuperclass")
}

func TestResolveRejectsSelfInheritance(t *testing.T) {
	kinds := resolveKinds(t, `class Loop < Loop {}`)
	assertKinds(t, kinds, "SelfInheritance")
}

func TestResolveRejectsDuplicateLocal(t *testing.T) {
	kinds := resolveKinds(t, `{ var x = 1; var x = 2; }`)
	assertKinds(t, kinds, "DuplicateLocal")
}

func TestResolveAllowsGlobalRedeclaration(t *testing.T) {
	kinds := resolveKinds(t, `var x = 1; var x = 2;`)
	if len(kinds) != 0 {
		t.Fatalf("expected no errors for global redeclaration, got %v", kinds)
	}
}

// TestResolveFunctionBodyIsSingleScope pins down the distance a
// function parameter resolves to from a reference directly in the
// function body (not inside a nested block): it must be 0, matching
// CallFunction binding parameters into the one environment the body
// statements execute in directly.
func TestResolveFunctionBodyIsSingleScope(t *testing.T) {
	stmts := mustParse(t, `
		fn identity(x) {
			return x;
		}
	`)
	table, errs := Resolve(stmts)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	fnStmt := stmts[0].(*ast.FunctionStmt)
	retStmt := fnStmt.Decl.Body[0].(*ast.ReturnStmt)
	varExpr := retStmt.Value.(*ast.Variable)

	distance, ok := table[varExpr]
	if !ok {
		t.Fatal("expected a resolved distance for the parameter reference")
	}
	if distance != 0 {
		t.Errorf("got distance %d, want 0 (one scope per function call)", distance)
	}
}

// TestResolveNestedBlockAddsOneMoreScope confirms a reference inside an
// explicit block nested in a function body resolves one level further
// than the function's own locals.
func TestResolveNestedBlockAddsOneMoreScope(t *testing.T) {
	stmts := mustParse(t, `
		fn f(x) {
			{
				var y = x;
			}
		}
	`)
	table, errs := Resolve(stmts)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	fnStmt := stmts[0].(*ast.FunctionStmt)
	block := fnStmt.Decl.Body[0].(*ast.BlockStmt)
	varStmt := block.Statements[0].(*ast.VarStmt)
	varExpr := varStmt.Initializer.(*ast.Variable)

	distance, ok := table[varExpr]
	if !ok {
		t.Fatal("expected a resolved distance for the parameter reference")
	}
	if distance != 1 {
		t.Errorf("got distance %d, want 1 (nested block adds exactly one scope)", distance)
	}
}

// TestResolveThisAndSuperDistancesDifferByOne confirms super always
// resolves one link further out than this within the same method body,
// since resolveClass opens the super scope strictly before this.
func TestResolveThisAndSuperDistancesDifferByOne(t *testing.T) {
	stmts := mustParse(t, `
		class Animal {
			fn speak() { print "..."; }
		}
		class Dog < Animal {
			fn speak() {
				super.speak();
				print this;
			}
		}
	`)
	table, errs := Resolve(stmts)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	dog := stmts[1].(*ast.ClassStmt)
	speak := dog.Methods[0]
	superExpr := speak.Body[0].(*ast.ExpressionStmt).Expression.(*ast.Call).Callee.(*ast.Super)
	thisExpr := speak.Body[1].(*ast.PrintStmt).Expression.(*ast.This)

	superDist, ok := table[superExpr]
	if !ok {
		t.Fatal("expected a resolved distance for super")
	}
	thisDist, ok := table[thisExpr]
	if !ok {
		t.Fatal("expected a resolved distance for this")
	}
	if superDist != thisDist+1 {
		t.Errorf("got super distance %d, this distance %d; want super == this+1", superDist, thisDist)
	}
}

func assertKinds(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got error kinds %v, want %v", got, want)
	}
	for i, k := range want {
		if got[i] != k {
			t.Errorf("error %d: got kind %q, want %q", i, got[i], k)
		}
	}
}
