package check

import (
	"fmt"
	"strings"

	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/term"
)

// Check asserts that t has type expected, up to Equal. ctx holds the
// types of the enclosing binders and names their hints, innermost
// first; ctx[i] is expressed at the depth just outside binder i.
func (c *Checker) Check(ctx []term.Term, names []Name, expected, t term.Term) {
	switch t := t.(type) {
	case *term.Lam:
		rex := Reduce(c.Module, expected)
		all, ok := rex.(*term.All)
		if !ok {
			panic(TypeError.New("Lambda has a non-function type: %v", term.Show(expected, names)))
		}
		if t.Erased != all.Erased {
			panic(TypeError.New("Erasure mismatch"))
		}
		// Self type: the argument's type sees the whole lambda in
		// place of the self binder.
		bindT := term.Subst(all.Bind, t, 0)
		bodyT := term.Subst(all.Body, term.Shift(t, 1, 0), 1)
		c.Check(PushFront(ctx, bindT), PushFront(names, t.Name), bodyT, t.Body)
	default:
		inferred := c.Infer(ctx, names, t)
		if !Equal(c.Module, expected, inferred) {
			panic(unexpectedType(expected, inferred, t, ctx, names))
		}
	}
}

func unexpectedType(expected, inferred, t term.Term, ctx []term.Term, names []Name) error {
	var sb strings.Builder
	sb.WriteString("Unexpected type\n")
	fmt.Fprintf(&sb, "- Expected: %v\n", term.Show(expected, names))
	fmt.Fprintf(&sb, "- Inferred: %v\n", term.Show(inferred, names))
	fmt.Fprintf(&sb, "- On term:  %v\n", term.Show(t, names))
	sb.WriteString("- With context:\n")
	for i := len(ctx) - 1; i >= 0; i-- {
		name := names[i]
		if name == NoName {
			name = Name(fmt.Sprintf("#%d", i))
		}
		fmt.Fprintf(&sb, "  %v : %v\n", name, term.Show(ctx[i], names[i+1:]))
	}
	return TypeError.New("%v", sb.String())
}
