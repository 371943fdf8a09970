package term

import (
	"github.com/davecgh/go-spew/spew"
)

// Shift increments every variable with index >= depth by inc, rebuilding
// hashes on the way out. Binder crossings: All crosses 1 for its bind
// type (self) and 2 for its body (self + argument); Lam and Let cross 1
// for the body.
func Shift(t Term, inc, depth int) Term {
	switch t := t.(type) {
	case *Var:
		if t.Index >= depth {
			return NewVar(t.Index + inc)
		}
		return t
	case *Ref:
		return t
	case *Typ:
		return t
	case *All:
		bind := Shift(t.Bind, inc, depth+1)
		body := Shift(t.Body, inc, depth+2)
		return NewAll(t.Erased, t.Self, t.Name, bind, body)
	case *Lam:
		return NewLam(t.Erased, t.Name, Shift(t.Body, inc, depth+1))
	case *App:
		return NewApp(t.Erased, Shift(t.Func, inc, depth), Shift(t.Arg, inc, depth))
	case *Let:
		expr := Shift(t.Expr, inc, depth)
		body := Shift(t.Body, inc, depth+1)
		return NewLet(t.Name, expr, body)
	case *Ann:
		return NewAnn(t.Done, Shift(t.Type, inc, depth), Shift(t.Expr, inc, depth))
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

// Subst replaces the variable bound at depth with val, closing that
// binder: indices above depth shift down by one, and val is shifted by
// the size of every binder it crosses.
func Subst(t Term, val Term, depth int) Term {
	switch t := t.(type) {
	case *Var:
		switch {
		case t.Index == depth:
			return val
		case t.Index > depth:
			return NewVar(t.Index - 1)
		default:
			return t
		}
	case *Ref:
		return t
	case *Typ:
		return t
	case *All:
		bind := Subst(t.Bind, Shift(val, 1, 0), depth+1)
		body := Subst(t.Body, Shift(val, 2, 0), depth+2)
		return NewAll(t.Erased, t.Self, t.Name, bind, body)
	case *Lam:
		return NewLam(t.Erased, t.Name, Subst(t.Body, Shift(val, 1, 0), depth+1))
	case *App:
		return NewApp(t.Erased, Subst(t.Func, val, depth), Subst(t.Arg, val, depth))
	case *Let:
		expr := Subst(t.Expr, val, depth)
		body := Subst(t.Body, Shift(val, 1, 0), depth+1)
		return NewLet(t.Name, expr, body)
	case *Ann:
		return NewAnn(t.Done, Subst(t.Type, val, depth), Subst(t.Expr, val, depth))
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}
