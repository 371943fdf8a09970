package check

import (
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/moonad/formality-core/algos"
	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/source"
	"github.com/moonad/formality-core/term"
)

// freshMarker is the reference standing in for a binder opened at the
// given equality depth. Source programs cannot name it: % is not a name
// rune.
func freshMarker(depth int) term.Term {
	return term.NewRef(Name("%" + strconv.Itoa(depth)))
}

type eqPair struct {
	a, b  term.Term
	depth int
}

// Equal decides βα-equivalence of a and b under mod. A union-find over
// term hashes memoizes both reductions and already-established
// equivalences, so each term is reduced at most once logically and
// recurring subterms short-circuit. The relation lives only for the
// duration of this call.
func Equal(mod *source.Module, a, b term.Term) bool {
	eq := algos.NewUnionFind[Hash]()
	work := []eqPair{{a, b, 0}}

	for len(work) > 0 {
		var item eqPair
		item, work = PopBack(work)

		x := Reduce(mod, item.a)
		y := Reduce(mod, item.b)
		ok := congruent(eq, x, y)

		eq.Equate(item.a.Hash(), x.Hash())
		eq.Equate(item.b.Hash(), y.Hash())
		eq.Equate(x.Hash(), y.Hash())

		EqualityLog("equal step", "depth", item.depth, "congruent", ok)
		if ok {
			continue
		}

		d := item.depth
		switch x := x.(type) {
		case *term.All:
			y, ok := y.(*term.All)
			if !ok {
				return false
			}
			self := freshMarker(d)
			arg := freshMarker(d + 1)
			xBind := term.Subst(x.Bind, self, 0)
			yBind := term.Subst(y.Bind, self, 0)
			xBody := term.Subst(term.Subst(x.Body, self, 1), arg, 0)
			yBody := term.Subst(term.Subst(y.Body, self, 1), arg, 0)
			work = append(work,
				eqPair{xBind, yBind, d + 1},
				eqPair{xBody, yBody, d + 2})
		case *term.Lam:
			y, ok := y.(*term.Lam)
			if !ok {
				return false
			}
			arg := freshMarker(d)
			work = append(work,
				eqPair{term.Subst(x.Body, arg, 0), term.Subst(y.Body, arg, 0), d + 1})
		case *term.App:
			y, ok := y.(*term.App)
			if !ok {
				return false
			}
			work = append(work,
				eqPair{x.Func, y.Func, d},
				eqPair{x.Arg, y.Arg, d})
		case *term.Let:
			y, ok := y.(*term.Let)
			if !ok {
				return false
			}
			expr := freshMarker(d)
			work = append(work,
				eqPair{x.Expr, y.Expr, d},
				eqPair{term.Subst(x.Body, expr, 0), term.Subst(y.Body, expr, 0), d + 1})
		case *term.Ann:
			y, ok := y.(*term.Ann)
			if !ok {
				return false
			}
			work = append(work, eqPair{x.Expr, y.Expr, d})
		default:
			// Var, Ref and Typ have no children: a false congruence
			// verdict on them (or on mismatched constructors) is final.
			return false
		}
	}
	return true
}

// congruent is structural equality on the outermost layer plus
// recursive congruence on children, short-circuited by the memoized
// relation. Names, erasure flags and annotation done-flags are ignored;
// for Ann only the inner term is compared.
func congruent(eq *algos.UnionFind[Hash], a, b term.Term) bool {
	if eq.IsEquivalent(a.Hash(), b.Hash()) {
		return true
	}
	switch a := a.(type) {
	case *term.Var:
		b, ok := b.(*term.Var)
		return ok && a.Index == b.Index
	case *term.Ref:
		b, ok := b.(*term.Ref)
		return ok && a.Name == b.Name
	case *term.Typ:
		_, ok := b.(*term.Typ)
		return ok
	case *term.All:
		b, ok := b.(*term.All)
		return ok && congruent(eq, a.Bind, b.Bind) && congruent(eq, a.Body, b.Body)
	case *term.Lam:
		b, ok := b.(*term.Lam)
		return ok && congruent(eq, a.Body, b.Body)
	case *term.App:
		b, ok := b.(*term.App)
		return ok && congruent(eq, a.Func, b.Func) && congruent(eq, a.Arg, b.Arg)
	case *term.Let:
		b, ok := b.(*term.Let)
		return ok && congruent(eq, a.Expr, b.Expr) && congruent(eq, a.Body, b.Body)
	case *term.Ann:
		b, ok := b.(*term.Ann)
		return ok && congruent(eq, a.Expr, b.Expr)
	default:
		spew.Dump(a)
		panic("unreachable")
	}
}
