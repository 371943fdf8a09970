package parse

import (
	"strings"
	"testing"

	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/term"
)

func parseTerm(t *testing.T, src string) term.Term {
	t.Helper()
	got, err := Term(src, nil)
	if err != nil {
		t.Fatalf("Term(%q) error: %v", src, err)
	}
	return got
}

func TestParseAtoms(t *testing.T) {
	if _, ok := parseTerm(t, "Type").(*term.Typ); !ok {
		t.Errorf("Type must parse to Typ")
	}
	ref, ok := parseTerm(t, "foo.bar_0").(*term.Ref)
	if !ok || ref.Name != "foo.bar_0" {
		t.Errorf("unscoped name must parse to Ref")
	}
}

func TestParseScopes(t *testing.T) {
	lam, ok := parseTerm(t, "(x) => x").(*term.Lam)
	if !ok {
		t.Fatalf("expected Lam")
	}
	v, ok := lam.Body.(*term.Var)
	if !ok || v.Index != 0 {
		t.Errorf("bound x must become Var 0, got %#v", lam.Body)
	}

	// Shadowing: the inner binder wins.
	outer := parseTerm(t, "(A) => (A) => A").(*term.Lam)
	inner := outer.Body.(*term.Lam)
	v, ok = inner.Body.(*term.Var)
	if !ok || v.Index != 0 {
		t.Errorf("shadowed A must point at the inner binder, got %#v", inner.Body)
	}
}

func TestParseLambdaForms(t *testing.T) {
	// With and without the arrow, relevant and erased.
	for _, src := range []string{"(x) => x", "(x) x", "<x> => x", "<x> x"} {
		lam, ok := parseTerm(t, src).(*term.Lam)
		if !ok {
			t.Fatalf("%q: expected Lam", src)
		}
		erased := strings.HasPrefix(src, "<")
		if lam.Erased != erased {
			t.Errorf("%q: erased = %v, want %v", src, lam.Erased, erased)
		}
	}
}

func TestParseApplications(t *testing.T) {
	app, ok := parseTerm(t, "f(x)").(*term.App)
	if !ok || app.Erased {
		t.Fatalf("f(x) must be a relevant App")
	}
	app, ok = parseTerm(t, "f<x>").(*term.App)
	if !ok || !app.Erased {
		t.Fatalf("f<x> must be an erased App")
	}
	app, ok = parseTerm(t, "f |x;").(*term.App)
	if !ok || app.Erased {
		t.Fatalf("f |x; must be a relevant App")
	}

	// Nested: f(f(x)) and curried f(x)(y).
	app = parseTerm(t, "f(g(x))").(*term.App)
	if _, ok := app.Arg.(*term.App); !ok {
		t.Errorf("argument of f(g(x)) must be an App")
	}
	app = parseTerm(t, "f(x)(y)").(*term.App)
	if _, ok := app.Func.(*term.App); !ok {
		t.Errorf("function of f(x)(y) must be an App")
	}
}

func TestApplicationNeedsAdjacency(t *testing.T) {
	// With a space, the bracket starts a new thing rather than an
	// application, so the term ends and residue remains.
	if _, err := Term("f (x)", nil); err == nil {
		t.Errorf("f (x) must not parse as a single term")
	}
}

func TestParseAll(t *testing.T) {
	all, ok := parseTerm(t, "(x : Type) -> x").(*term.All)
	if !ok {
		t.Fatalf("expected All")
	}
	if all.Erased || all.Self != "" || all.Name != "x" {
		t.Errorf("unexpected All shape: %#v", all)
	}
	// Body scope is [arg, self]; x is the argument.
	v, ok := all.Body.(*term.Var)
	if !ok || v.Index != 0 {
		t.Errorf("body x must be Var 0, got %#v", all.Body)
	}

	// Self binder in scope inside both bind and body.
	all = parseTerm(t, "s(x : s) -> s").(*term.All)
	if all.Self != "s" {
		t.Errorf("self name lost")
	}
	bindV, ok := all.Bind.(*term.Var)
	if !ok || bindV.Index != 0 {
		t.Errorf("s in bind must be Var 0, got %#v", all.Bind)
	}
	bodyV, ok := all.Body.(*term.Var)
	if !ok || bodyV.Index != 1 {
		t.Errorf("s in body must be Var 1, got %#v", all.Body)
	}

	// Erased form.
	all = parseTerm(t, "<x : Type> -> x").(*term.All)
	if !all.Erased {
		t.Errorf("<x : Type> -> x must be erased")
	}
}

func TestParseArrowDesugar(t *testing.T) {
	all, ok := parseTerm(t, "A -> B").(*term.All)
	if !ok {
		t.Fatalf("expected All")
	}
	if all.Erased || all.Self != "" || all.Name != "" {
		t.Errorf("arrow must desugar to a relevant unnamed All")
	}
	// A bound variable on the left shifts over the implicit self.
	lam := parseTerm(t, "(A) => A -> A").(*term.Lam)
	arr := lam.Body.(*term.All)
	bind, ok := arr.Bind.(*term.Var)
	if !ok || bind.Index != 1 {
		t.Errorf("arrow bind must shift over self: got %#v", arr.Bind)
	}
	body, ok := arr.Body.(*term.Var)
	if !ok || body.Index != 2 {
		t.Errorf("arrow body parses under two fresh scopes: got %#v", arr.Body)
	}
}

func TestParseAnnotation(t *testing.T) {
	ann, ok := parseTerm(t, "x :: T").(*term.Ann)
	if !ok {
		t.Fatalf("expected Ann")
	}
	if ann.Done {
		t.Errorf("parsed annotations start not-done")
	}
	if _, ok := ann.Type.(*term.Ref); !ok {
		t.Errorf("annotation type must be the right operand")
	}
}

func TestParseLet(t *testing.T) {
	for _, src := range []string{"let x = y; x", "let x = y x"} {
		let, ok := parseTerm(t, src).(*term.Let)
		if !ok {
			t.Fatalf("%q: expected Let", src)
		}
		v, ok := let.Body.(*term.Var)
		if !ok || v.Index != 0 {
			t.Errorf("%q: let body must see the binding, got %#v", src, let.Body)
		}
	}
}

func TestParseComments(t *testing.T) {
	src := `// slash comment
-- dash comment
/* block
   comment */ {- haskell
   comment -}
(x) => x`
	if _, ok := parseTerm(t, src).(*term.Lam); !ok {
		t.Errorf("comments must be skipped wherever whitespace is allowed")
	}
}

func TestParseModule(t *testing.T) {
	mod, err := Module(`
identity : (A : Type) -> (a : A) -> A
  (A) => (a) => a

const : (A : Type) -> (B : Type) -> (a : A) -> (b : B) -> A
  (A) => (B) => (a) => (b) => a
`)
	if err != nil {
		t.Fatalf("Module error: %v", err)
	}
	if len(mod.Names) != 2 || mod.Names[0] != "identity" || mod.Names[1] != "const" {
		t.Errorf("definition order lost: %v", mod.Names)
	}
	def, ok := mod.Get("identity")
	if !ok {
		t.Fatalf("identity missing")
	}
	if def.Hash != Combine(def.Type.Hash(), def.Body.Hash()) {
		t.Errorf("definition hash must combine type and body")
	}
}

func TestParseModuleDuplicate(t *testing.T) {
	_, err := Module("a : Type Type a : Type Type")
	if err == nil {
		t.Fatalf("duplicate definitions must fail")
	}
}

func TestParseFailures(t *testing.T) {
	if _, err := Module("!!!"); err == nil || !strings.Contains(err.Error(), "no parse") {
		t.Errorf("garbage must report no parse, got %v", err)
	}
	if _, err := Term("Type Type", nil); err == nil || !strings.Contains(err.Error(), "expected EOF") {
		t.Errorf("residue must report expected EOF, got %v", err)
	}
}

func TestShowRoundTrip(t *testing.T) {
	sources := []string{
		"(A) => (a) => a",
		"(A : Type) -> (a : A) -> A",
		"s(x : s) -> s",
		"<A : Type> -> A",
		"<x> => x",
		"f(g(x))",
		"let x = y; f(x)",
		"x :: T",
		"((x) => x)(y)",
	}
	for _, src := range sources {
		a := parseTerm(t, src)
		b := parseTerm(t, term.Show(a, nil))
		if a.Hash() != b.Hash() {
			t.Errorf("%q: round trip changed hash (shown as %q)", src, term.Show(a, nil))
		}
	}
}
