package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-wisp/internal/builtins"
	"github.com/cwbudde/go-wisp/internal/parser"
	"github.com/cwbudde/go-wisp/internal/resolver"
	"github.com/cwbudde/go-wisp/internal/scanner"
)

// run scans, parses, resolves, and evaluates source, returning its
// printed output and the first error encountered at any stage.
func run(t *testing.T, source string) (string, error) {
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
	table, resolveErrs := resolver.Resolve(stmts)
	if len(resolveErrs) > 0 {
		t.Fatalf("unexpected resolver errors: %v", resolveErrs)
	}

	var out bytes.Buffer
	ev := New(&out, table)
	builtins.NewDefaultRegistry().Install(ev.Globals)
	err := ev.Run(stmts)
	return out.String(), err
}

func TestRecursiveFibonacci(t *testing.T) {
	out, err := run(t, `
		fn fib(n) {
			if (n < 2) { return n; }
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "55" {
		t.Errorf("got %q, want 55", out)
	}
}

func TestClosureCounter(t *testing.T) {
	out, err := run(t, `
		fn makeCounter() {
			var count = 0;
			fn increment() {
				count = count + 1;
				return count;
			}
			return increment;
		}
		var counter = makeCounter();
		print counter();
		print counter();
		print counter();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("got %q, want \"1\\n2\\n3\\n\"", out)
	}
}

func TestShadowingResolvesToTheLexicallyEnclosingBinding(t *testing.T) {
	out, err := run(t, `
		var x = "global";
		{
			fn showX() { print x; }
			showX();
			var x = "block";
			showX();
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "global\nglobal\n" {
		t.Errorf("got %q, want the first declaration captured by showX's closure both times", out)
	}
}

func TestClassInstanceFieldsAndMethods(t *testing.T) {
	out, err := run(t, `
		class Counter {
			fn init(start) { this.value = start; }
			fn increment() { this.value = this.value + 1; return this.value; }
		}
		var c = Counter(10);
		print c.increment();
		print c.increment();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "11\n12\n" {
		t.Errorf("got %q, want \"11\\n12\\n\"", out)
	}
}

func TestSuperDispatchesToParentMethod(t *testing.T) {
	out, err := run(t, `
		class Animal {
			fn speak() { print "..."; }
		}
		class Dog < Animal {
			fn speak() {
				super.speak();
				print "woof";
			}
		}
		Dog().speak();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "...\nwoof\n" {
		t.Errorf("got %q, want \"...\\nwoof\\n\"", out)
	}
}

func TestThisBindingSurvivesMethodExtraction(t *testing.T) {
	out, err := run(t, `
		class Greeter {
			fn init(name) { this.name = name; }
			fn greet() { print "hi " + this.name; }
		}
		var g = Greeter("Ada");
		var greet = g.greet;
		greet();
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hi Ada\n" {
		t.Errorf("got %q, want \"hi Ada\\n\"", out)
	}
}

func TestBreakExitsTheLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 5) {
			i = i + 1;
			if (i == 3) { break; }
			print i;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n" {
		t.Errorf("got %q, want \"1\\n2\\n\"", out)
	}
}

func TestContinueSkipsToNextIteration(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 5) {
			i = i + 1;
			if (i == 3) { continue; }
			print i;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "1\n2\n4\n5\n" {
		t.Errorf("got %q, want \"1\\n2\\n4\\n5\\n\"", out)
	}
}

func TestForLoopDesugarsCorrectly(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q, want \"0\\n1\\n2\\n\"", out)
	}
}

func TestStackOverflowReportsRuntimeError(t *testing.T) {
	sc := scanner.New(`
		fn recurse() { return recurse(); }
		recurse();
	`)
	tokens, _ := sc.ScanTokens()
	stmts, _ := parser.New(tokens).Parse()
	table, _ := resolver.Resolve(stmts)

	var out bytes.Buffer
	ev := New(&out, table)
	ev.SetMaxRecursionDepth(64)
	err := ev.Run(stmts)
	if err == nil {
		t.Fatal("expected a stack-overflow runtime error")
	}
}

func TestDivisionByZeroIsARuntimeError(t *testing.T) {
	_, err := run(t, `print 1 / 0;`)
	if err == nil {
		t.Fatal("expected a division-by-zero runtime error")
	}
}

func TestCallingANonCallableIsATypeError(t *testing.T) {
	_, err := run(t, `var x = 1; x();`)
	if err == nil {
		t.Fatal("expected a not-callable type error")
	}
}

func TestArityMismatchIsReported(t *testing.T) {
	_, err := run(t, `
		fn needsTwo(a, b) { return a + b; }
		needsTwo(1);
	`)
	if err == nil {
		t.Fatal("expected an arity-mismatch error")
	}
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	_, err := run(t, `print doesNotExist;`)
	if err == nil {
		t.Fatal("expected an undefined-variable error")
	}
}

func TestStringConcatenationAndNumberArithmeticShareThePlusOperator(t *testing.T) {
	out, err := run(t, `print "a" + "b"; print 1 + 2;`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ab\n3\n" {
		t.Errorf("got %q, want \"ab\\n3\\n\"", out)
	}
}

func TestPlusCoercesTheNonStringOperandToItsDisplayForm(t *testing.T) {
	out, err := run(t, `print "n=" + 5; print 5 + "x";`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "n=5\n5x\n" {
		t.Errorf("got %q, want \"n=5\\n5x\\n\"", out)
	}
}

func TestTruthinessRulesDriveIf(t *testing.T) {
	out, err := run(t, `
		if (nil) { print "unreachable"; } else { print "nil is falsy"; }
		if (0) { print "zero is truthy"; }
		if ("") { print "empty string is truthy"; }
	`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "nil is falsy\nzero is truthy\nempty string is truthy\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
