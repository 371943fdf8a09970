package term

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"
	. "github.com/moonad/formality-core/common"
)

// Show renders t in the concrete syntax the parser accepts. names lists
// the enclosing binder names, innermost first. A variable whose binder
// is unnamed or beyond names prints as #i, which the parser does not
// read back; a variable whose name is shadowed by an inner binder prints
// under that name, so re-parsing it points at the inner binder.
func Show(t Term, names []Name) string {
	var sb strings.Builder
	show(&sb, t, names)
	return sb.String()
}

func show(sb *strings.Builder, t Term, names []Name) {
	switch t := t.(type) {
	case *Var:
		if t.Index < len(names) && names[t.Index] != NoName {
			sb.WriteString(names[t.Index].String())
		} else {
			fmt.Fprintf(sb, "#%d", t.Index)
		}
	case *Ref:
		sb.WriteString(t.Name.String())
	case *Typ:
		sb.WriteString("Type")
	case *All:
		open, shut := "(", ")"
		if t.Erased {
			open, shut = "<", ">"
		}
		sb.WriteString(t.Self.String())
		sb.WriteString(open)
		sb.WriteString(t.Name.String())
		sb.WriteString(" : ")
		show(sb, t.Bind, PushFront(names, t.Self))
		sb.WriteString(shut)
		sb.WriteString(" -> ")
		show(sb, t.Body, PushFront(PushFront(names, t.Self), t.Name))
	case *Lam:
		open, shut := "(", ")"
		if t.Erased {
			open, shut = "<", ">"
		}
		sb.WriteString(open)
		sb.WriteString(t.Name.String())
		sb.WriteString(shut)
		sb.WriteString(" => ")
		show(sb, t.Body, PushFront(names, t.Name))
	case *App:
		showGrouped(sb, t.Func, names)
		if t.Erased {
			sb.WriteString("<")
			show(sb, t.Arg, names)
			sb.WriteString(">")
		} else {
			sb.WriteString("(")
			show(sb, t.Arg, names)
			sb.WriteString(")")
		}
	case *Let:
		sb.WriteString("let ")
		sb.WriteString(t.Name.String())
		sb.WriteString(" = ")
		show(sb, t.Expr, names)
		sb.WriteString("; ")
		show(sb, t.Body, PushFront(names, t.Name))
	case *Ann:
		showGrouped(sb, t.Expr, names)
		sb.WriteString(" :: ")
		show(sb, t.Type, names)
	default:
		spew.Dump(t)
		panic("unreachable")
	}
}

// showGrouped parenthesizes terms that would swallow a trailing
// application or annotation.
func showGrouped(sb *strings.Builder, t Term, names []Name) {
	switch t.(type) {
	case *Var, *Ref, *Typ, *App:
		show(sb, t, names)
	default:
		sb.WriteString("(")
		show(sb, t, names)
		sb.WriteString(")")
	}
}
