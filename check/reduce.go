package check

import (
	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/source"
	"github.com/moonad/formality-core/term"
)

// ErasedName is the sentinel reference standing in for the parameter of
// an erased lambda during reduction. Source programs cannot name it.
var ErasedName = Name("<erased>")

// Reduce produces the weak-head normal form of t, resolving references
// through mod. It terminates on well-typed terms; callers guard
// ill-typed ones with the type system.
func Reduce(mod *source.Module, t term.Term) term.Term {
	ReduceLog("reduce", "hash", t.Hash())
	return fromHOAS(reduceHOAS(mod, toHOAS(t, nil)), 0)
}

func reduceHOAS(mod *source.Module, h hoasTerm) hoasTerm {
	switch h := h.(type) {
	case *hoasRef:
		def, ok := mod.Get(h.Name)
		if !ok {
			return h
		}
		if ref, ok := def.Body.(*term.Ref); ok {
			return reduceHOAS(mod, &hoasRef{Name: ref.Name})
		}
		return reduceHOAS(mod, toHOAS(def.Body, nil))
	case *hoasApp:
		if h.Erased {
			return reduceHOAS(mod, h.Func)
		}
		fn := reduceHOAS(mod, h.Func)
		if lam, ok := fn.(*hoasLam); ok {
			return reduceHOAS(mod, lam.Body(h.Arg))
		}
		return &hoasApp{Func: fn, Arg: h.Arg}
	case *hoasLam:
		if h.Erased {
			return reduceHOAS(mod, h.Body(&hoasRef{Name: ErasedName}))
		}
		return h
	case *hoasLet:
		return reduceHOAS(mod, h.Body(h.Expr))
	case *hoasAnn:
		return reduceHOAS(mod, h.Expr)
	default:
		return h
	}
}
