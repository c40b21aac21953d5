package cmd

import (
	"strings"
	"testing"
)

// compileOK runs the full pipeline and fails the test if any stage
// produced a diagnostic, returning the generated C text.
func compileOK(t *testing.T, src string) string {
	t.Helper()

	c := NewCompiler("test.jfm", []byte(src))
	c.Run()

	if !c.Success() {
		var msgs []string
		for _, e := range c.Diagnostics().Errors() {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected clean compile, got diagnostics:\n%s", strings.Join(msgs, "\n"))
	}

	var buf strings.Builder
	if !c.GenerateC(&buf) {
		t.Fatal("GenerateC returned false on a successful compile")
	}
	return buf.String()
}

// compileErr runs the full pipeline and fails the test if it did NOT
// produce at least one diagnostic.
func compileErr(t *testing.T, src string) {
	t.Helper()

	c := NewCompiler("test.jfm", []byte(src))
	c.Run()

	if c.Success() {
		t.Fatalf("expected diagnostics, compile succeeded for:\n%s", src)
	}

	var buf strings.Builder
	if c.GenerateC(&buf) {
		t.Fatal("GenerateC should refuse to run after a failed compile")
	}
}

func TestEndToEndHello(t *testing.T) {
	out := compileOK(t, `fn main() -> i32 { println("Hello, World!"); return 0; }`)
	if !strings.Contains(out, `"Hello, World!\n"`) {
		t.Errorf("generated C missing hello string:\n%s", out)
	}
	if !strings.Contains(out, "int32_t main(void)") {
		t.Errorf("generated C missing main signature:\n%s", out)
	}
}

func TestEndToEndRecursion(t *testing.T) {
	out := compileOK(t, `fn fib(n: i32) -> i32 { if (n <= 1) { return n; } return fib(n-1)+fib(n-2); } fn main() -> i32 { println(fib(10)); return 0; }`)
	if !strings.Contains(out, "int32_t fib(int32_t n)") {
		t.Errorf("generated C missing fib signature:\n%s", out)
	}
	if !strings.Contains(out, "fib(") {
		t.Errorf("generated C missing recursive call:\n%s", out)
	}
}

func TestEndToEndMutationAndLoop(t *testing.T) {
	out := compileOK(t, `fn main() -> i32 { let mut i: i32 = 0; let mut s: i32 = 0; while (i < 5) { s = s + i; i = i + 1; } println(s); return 0; }`)
	if !strings.Contains(out, "while") {
		t.Errorf("generated C missing while loop:\n%s", out)
	}
	if strings.Contains(out, "const int32_t i") {
		t.Errorf("mutable binding should not be rendered const:\n%s", out)
	}
}

func TestEndToEndStructImplMethod(t *testing.T) {
	out := compileOK(t, `struct P { x: i32, y: i32 } impl P { fn sum(self: P) -> i32 { return self.x + self.y; } } fn main() -> i32 { let p: P = P { x: 3, y: 4 }; println(p.sum()); return 0; }`)
	if !strings.Contains(out, "typedef struct P {") {
		t.Errorf("generated C missing struct definition:\n%s", out)
	}
	if !strings.Contains(out, "P_sum(") {
		t.Errorf("generated C missing mangled method call/def:\n%s", out)
	}
	if !strings.Contains(out, "(P){") {
		t.Errorf("generated C missing compound-literal struct init:\n%s", out)
	}
}

func TestEndToEndForRange(t *testing.T) {
	out := compileOK(t, `fn main() -> i32 { for i in 0..3 { println(i); } return 0; }`)
	if !strings.Contains(out, "for (") {
		t.Errorf("generated C missing C-style for loop:\n%s", out)
	}
}

func TestEndToEndCast(t *testing.T) {
	out := compileOK(t, `fn main() -> i32 { let f: f64 = 3.9; let i: i32 = f as i32; println(i); return 0; }`)
	if !strings.Contains(out, "(int32_t)") {
		t.Errorf("generated C missing cast:\n%s", out)
	}
}

func TestErrorTypeMismatch(t *testing.T) {
	compileErr(t, `fn main() -> i32 { let x: i32 = "hi"; return 0; }`)
}

func TestErrorUndefinedVariable(t *testing.T) {
	compileErr(t, `fn main() -> i32 { x = 1; return 0; }`)
}

func TestErrorImmutableAssignment(t *testing.T) {
	compileErr(t, `fn main() -> i32 { let x: i32 = 1; x = 2; return 0; }`)
}

func TestErrorBreakOutsideLoop(t *testing.T) {
	compileErr(t, `fn main() -> i32 { break; }`)
}

func TestDuplicateTopLevelNameIsDiagnosed(t *testing.T) {
	compileErr(t, `fn main() -> i32 { return 0; } fn main() -> i32 { return 1; }`)
}

func TestIdempotentCodegen(t *testing.T) {
	src := `fn main() -> i32 { println("Hello, World!"); return 0; }`

	c1 := NewCompiler("test.jfm", []byte(src))
	c1.Run()
	var buf1 strings.Builder
	c1.GenerateC(&buf1)

	c2 := NewCompiler("test.jfm", []byte(src))
	c2.Run()
	var buf2 strings.Builder
	c2.GenerateC(&buf2)

	if buf1.String() != buf2.String() {
		t.Error("two runs on identical input produced different C output")
	}
}

func TestStatsCountsAnalyzedDecls(t *testing.T) {
	c := NewCompiler("test.jfm", []byte(`struct P { x: i32 } fn main() -> i32 { let y: i32 = 1; return y; }`))
	c.Run()
	if !c.Success() {
		t.Fatalf("unexpected diagnostics: %v", c.Diagnostics().Errors())
	}

	funcs, structs, vars := c.Stats()
	if funcs < 1 {
		t.Errorf("functions_analyzed = %d; want >= 1", funcs)
	}
	if structs < 1 {
		t.Errorf("structs_analyzed = %d; want >= 1", structs)
	}
	if vars < 1 {
		t.Errorf("variables_analyzed = %d; want >= 1", vars)
	}
}

func TestParserHaltsPipelineBeforeAnalysis(t *testing.T) {
	// A malformed program should never reach semantic analysis: Stats
	// should report zero since the walker was never constructed.
	c := NewCompiler("test.jfm", []byte(`fn main( -> i32 { return 0; }`))
	c.Run()

	if c.Success() {
		t.Fatal("malformed source should not compile")
	}
	funcs, structs, vars := c.Stats()
	if funcs != 0 || structs != 0 || vars != 0 {
		t.Errorf("Stats() after parse failure = (%d,%d,%d); want all zero", funcs, structs, vars)
	}
}
