package check

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/moonad/formality-core/source"
	"github.com/moonad/formality-core/term"
)

func TestReduce(t *testing.T) {
	Convey("Reduce over an empty module", t, func() {
		mod := source.NewModule()

		Convey("β-reduces a relevant application", func() {
			// ((x) => x)(a) ~> a
			redex := term.NewApp(false, term.NewLam(false, "x", term.NewVar(0)), term.NewRef("a"))
			So(Reduce(mod, redex).Hash(), ShouldEqual, term.NewRef("a").Hash())
		})

		Convey("agrees with explicit substitution", func() {
			// reduce(App(Lam b, a)) == reduce(b[a])
			body := term.NewApp(false, term.NewVar(0), term.NewApp(false, term.NewVar(0), term.NewRef("k")))
			arg := term.NewLam(false, "y", term.NewVar(0))
			redex := term.NewApp(false, term.NewLam(false, "x", body), arg)
			direct := Reduce(mod, redex)
			substed := Reduce(mod, term.Subst(body, arg, 0))
			So(direct.Hash(), ShouldEqual, substed.Hash())
		})

		Convey("discards erased arguments", func() {
			fn := term.NewLam(false, "x", term.NewVar(0))
			erased := term.NewApp(true, fn, term.NewRef("junk"))
			So(Reduce(mod, erased).Hash(), ShouldEqual, Reduce(mod, fn).Hash())
		})

		Convey("opens erased lambdas with the sentinel", func() {
			lam := term.NewLam(true, "x", term.NewVar(0))
			So(Reduce(mod, lam).Hash(), ShouldEqual, term.NewRef(ErasedName).Hash())
		})

		Convey("unfolds lets", func() {
			let := term.NewLet("x", term.NewRef("v"), term.NewApp(false, term.NewVar(0), term.NewVar(0)))
			want := term.NewApp(false, term.NewRef("v"), term.NewRef("v"))
			So(Reduce(mod, let).Hash(), ShouldEqual, want.Hash())
		})

		Convey("drops annotations", func() {
			ann := term.NewAnn(false, term.NewTyp(), term.NewRef("x"))
			So(Reduce(mod, ann).Hash(), ShouldEqual, term.NewRef("x").Hash())
		})

		Convey("stops at weak head normal form", func() {
			// The redex under the lambda stays.
			inner := term.NewApp(false, term.NewLam(false, "y", term.NewVar(0)), term.NewVar(0))
			lam := term.NewLam(false, "x", inner)
			got := Reduce(mod, lam).(*term.Lam)
			So(got.Body.Hash(), ShouldEqual, inner.Hash())
		})

		Convey("leaves free variables alone", func() {
			So(Reduce(mod, term.NewVar(3)).Hash(), ShouldEqual, term.NewVar(3).Hash())

			// A free variable under a binder keeps its index.
			lam := term.NewLam(false, "x", term.NewVar(4))
			So(Reduce(mod, lam).Hash(), ShouldEqual, lam.Hash())
		})

		Convey("leaves neutral applications with a reduced head", func() {
			// f(x) with free f: still an App afterwards.
			app := term.NewApp(false, term.NewRef("f"), term.NewRef("x"))
			got := Reduce(mod, app).(*term.App)
			So(got.Func.Hash(), ShouldEqual, term.NewRef("f").Hash())
		})
	})

	Convey("Reduce over a module with definitions", t, func() {
		mod := source.NewModule()
		idBody := term.NewLam(false, "a", term.NewVar(0))
		So(mod.Add(source.NewDef("id", term.NewTyp(), idBody)), ShouldBeNil)
		So(mod.Add(source.NewDef("alias", term.NewTyp(), term.NewRef("id"))), ShouldBeNil)

		Convey("resolves references through the module", func() {
			So(Reduce(mod, term.NewRef("id")).Hash(), ShouldEqual, idBody.Hash())
		})

		Convey("renames reference-to-reference bodies and continues", func() {
			So(Reduce(mod, term.NewRef("alias")).Hash(), ShouldEqual, idBody.Hash())
		})

		Convey("keeps unresolvable references", func() {
			So(Reduce(mod, term.NewRef("missing")).Hash(), ShouldEqual, term.NewRef("missing").Hash())
		})

		Convey("β-reduces through a reference", func() {
			app := term.NewApp(false, term.NewRef("id"), term.NewRef("z"))
			So(Reduce(mod, app).Hash(), ShouldEqual, term.NewRef("z").Hash())
		})
	})
}
