package check

import (
	"github.com/davecgh/go-spew/spew"
	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/term"
)

// Infer synthesizes the type of t under ctx. Panics with a TypeError
// when no type can be synthesized.
func (c *Checker) Infer(ctx []term.Term, names []Name, t term.Term) term.Term {
	switch t := t.(type) {
	case *term.Var:
		if t.Index >= len(ctx) {
			panic(TypeError.New("Unbound variable"))
		}
		// ctx entries are stored just outside their binder; shift them
		// to the current depth.
		return term.Shift(ctx[t.Index], t.Index+1, 0)
	case *term.Ref:
		def, ok := c.Module.Get(t.Name)
		if !ok {
			panic(TypeError.New("Undefined Reference: %v", t.Name))
		}
		return def.Type
	case *term.Typ:
		// Type in Type.
		return term.NewTyp()
	case *term.App:
		fnT := Reduce(c.Module, c.Infer(ctx, names, t.Func))
		all, ok := fnT.(*term.All)
		if !ok {
			panic(TypeError.New("Non-function application: %v", term.Show(t, names)))
		}
		if t.Erased != all.Erased {
			panic(TypeError.New("Erasure mismatch"))
		}
		bindT := term.Subst(all.Bind, t.Func, 0)
		c.Check(ctx, names, bindT, t.Arg)
		return term.Subst(term.Subst(all.Body, term.Shift(t.Func, 1, 0), 1), t.Arg, 0)
	case *term.Let:
		exprT := c.Infer(ctx, names, t.Expr)
		bodyT := c.Infer(PushFront(ctx, exprT), PushFront(names, t.Name), t.Body)
		return term.Subst(bodyT, t.Expr, 0)
	case *term.All:
		// The self binder's type is the All term itself, already
		// trusted as a Type.
		var selfT term.Term = term.NewAnn(true, term.NewTyp(), t)
		selfCtx := PushFront(ctx, selfT)
		selfNames := PushFront(names, t.Self)
		c.Infer(selfCtx, selfNames, t.Bind)
		c.Check(PushFront(selfCtx, t.Bind), PushFront(selfNames, t.Name), term.NewTyp(), t.Body)
		return term.NewTyp()
	case *term.Ann:
		if t.Done {
			return t.Type
		}
		c.Check(ctx, names, t.Type, t.Expr)
		return t.Type
	case *term.Lam:
		panic(TypeError.New("Can't infer type"))
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}
