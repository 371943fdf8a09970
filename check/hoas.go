package check

import (
	"github.com/davecgh/go-spew/spew"
	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/term"
)

// ========================

// Higher-order term representation, built transiently for each Reduce
// call. Binders are Go closures over their parameters, so β-reduction
// is a function call and no index bookkeeping happens until the result
// is converted back.
type hoasTerm interface {
	_HoasTerm()
}

type hoasBase struct{}

func (hoasBase) _HoasTerm() {}

// hoasVar only appears for variables the closure environment does not
// cover. Depth >= 0 marks a parameter issued by fromHOAS at that depth;
// Depth < 0 encodes a variable free at distance -1-Depth past the
// outermost binder toHOAS saw.
type hoasVar struct {
	hoasBase
	Depth int
}

type hoasRef struct {
	hoasBase
	Name Name
}

type hoasTyp struct {
	hoasBase
}

type hoasAll struct {
	hoasBase
	Erased bool
	Self   Name
	Name   Name
	Bind   func(self hoasTerm) hoasTerm
	Body   func(self, arg hoasTerm) hoasTerm
}

type hoasLam struct {
	hoasBase
	Erased bool
	Name   Name
	Body   func(arg hoasTerm) hoasTerm
}

type hoasApp struct {
	hoasBase
	Erased bool
	Func   hoasTerm
	Arg    hoasTerm
}

type hoasLet struct {
	hoasBase
	Name Name
	Expr hoasTerm
	Body func(expr hoasTerm) hoasTerm
}

type hoasAnn struct {
	hoasBase
	Done bool
	Type hoasTerm
	Expr hoasTerm
}

// ========================

// toHOAS replaces every bound variable with a direct reference to its
// binder's parameter. vars lists the enclosing parameters, innermost
// first.
func toHOAS(t term.Term, vars []hoasTerm) hoasTerm {
	switch t := t.(type) {
	case *term.Var:
		if t.Index < len(vars) {
			return vars[t.Index]
		}
		return &hoasVar{Depth: -1 - (t.Index - len(vars))}
	case *term.Ref:
		return &hoasRef{Name: t.Name}
	case *term.Typ:
		return &hoasTyp{}
	case *term.All:
		return &hoasAll{
			Erased: t.Erased,
			Self:   t.Self,
			Name:   t.Name,
			Bind: func(self hoasTerm) hoasTerm {
				return toHOAS(t.Bind, PushFront(vars, self))
			},
			Body: func(self, arg hoasTerm) hoasTerm {
				return toHOAS(t.Body, PushFront(PushFront(vars, self), arg))
			},
		}
	case *term.Lam:
		return &hoasLam{
			Erased: t.Erased,
			Name:   t.Name,
			Body: func(arg hoasTerm) hoasTerm {
				return toHOAS(t.Body, PushFront(vars, arg))
			},
		}
	case *term.App:
		return &hoasApp{
			Erased: t.Erased,
			Func:   toHOAS(t.Func, vars),
			Arg:    toHOAS(t.Arg, vars),
		}
	case *term.Let:
		return &hoasLet{
			Name: t.Name,
			Expr: toHOAS(t.Expr, vars),
			Body: func(expr hoasTerm) hoasTerm {
				return toHOAS(t.Body, PushFront(vars, expr))
			},
		}
	case *term.Ann:
		return &hoasAnn{
			Done: t.Done,
			Type: toHOAS(t.Type, vars),
			Expr: toHOAS(t.Expr, vars),
		}
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

// fromHOAS re-indexes a higher-order term, issuing a fresh parameter at
// the current depth for each binder and rebuilding hashes on the way
// out.
func fromHOAS(h hoasTerm, depth int) term.Term {
	switch h := h.(type) {
	case *hoasVar:
		if h.Depth < 0 {
			return term.NewVar(depth + (-1 - h.Depth))
		}
		return term.NewVar(depth - 1 - h.Depth)
	case *hoasRef:
		return term.NewRef(h.Name)
	case *hoasTyp:
		return term.NewTyp()
	case *hoasAll:
		self := &hoasVar{Depth: depth}
		arg := &hoasVar{Depth: depth + 1}
		bind := fromHOAS(h.Bind(self), depth+1)
		body := fromHOAS(h.Body(self, arg), depth+2)
		return term.NewAll(h.Erased, h.Self, h.Name, bind, body)
	case *hoasLam:
		arg := &hoasVar{Depth: depth}
		return term.NewLam(h.Erased, h.Name, fromHOAS(h.Body(arg), depth+1))
	case *hoasApp:
		return term.NewApp(h.Erased, fromHOAS(h.Func, depth), fromHOAS(h.Arg, depth))
	case *hoasLet:
		expr := &hoasVar{Depth: depth}
		return term.NewLet(h.Name, fromHOAS(h.Expr, depth), fromHOAS(h.Body(expr), depth+1))
	case *hoasAnn:
		return term.NewAnn(h.Done, fromHOAS(h.Type, depth), fromHOAS(h.Expr, depth))
	default:
		spew.Dump(h)
		panic("unreachable")
	}
}
