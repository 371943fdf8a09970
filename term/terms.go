package term

import (
	. "github.com/moonad/formality-core/common"
)

// ========================

// Term is an immutable value tree. Every node carries a precomputed
// content hash composed from its tag and its children's hashes, so
// binder names, erasure flags and annotation done-flags are invisible
// to it (α-equivalent terms hash alike).
type Term interface {
	_Term()
	Hash() Hash
}

type TermBase struct {
	TermHash Hash
}

func (TermBase) _Term() {}

func (b TermBase) Hash() Hash { return b.TermHash }

// ========================

// Var is a de-Bruijn index: 0 points at the innermost binder.
type Var struct {
	TermBase
	Index int
}

func NewVar(index int) *Var {
	Assert(index >= 0, "negative variable index")
	return &Var{TermBase{Combine(TagVar, Hash(index))}, index}
}

// Ref is a reference to a named module definition.
type Ref struct {
	TermBase
	Name Name
}

func NewRef(name Name) *Ref {
	return &Ref{TermBase{Combine(TagRef, HashStr(name))}, name}
}

// Typ is the type of types.
type Typ struct {
	TermBase
}

func NewTyp() *Typ {
	return &Typ{TermBase{Combine(TagTyp, 0)}}
}

// All is the dependent function type. Self is bound in Bind (scope 1);
// Self and Name are both bound in Body (scope 2, self then argument).
type All struct {
	TermBase
	Erased bool
	Self   Name
	Name   Name
	Bind   Term
	Body   Term
}

func NewAll(erased bool, self, name Name, bind, body Term) *All {
	hash := Combine(Combine(TagAll, bind.Hash()), body.Hash())
	return &All{TermBase{hash}, erased, self, name, bind, body}
}

// Lam is a function literal. Name is bound in Body.
type Lam struct {
	TermBase
	Erased bool
	Name   Name
	Body   Term
}

func NewLam(erased bool, name Name, body Term) *Lam {
	return &Lam{TermBase{Combine(TagLam, body.Hash())}, erased, name, body}
}

// App applies Func to Arg. Erased applications vanish under reduction.
type App struct {
	TermBase
	Erased bool
	Func   Term
	Arg    Term
}

func NewApp(erased bool, fn, arg Term) *App {
	hash := Combine(Combine(TagApp, fn.Hash()), arg.Hash())
	return &App{TermBase{hash}, erased, fn, arg}
}

// Let binds Expr as Name inside Body. Not recursive.
type Let struct {
	TermBase
	Name Name
	Expr Term
	Body Term
}

func NewLet(name Name, expr, body Term) *Let {
	hash := Combine(Combine(TagLet, expr.Hash()), body.Hash())
	return &Let{TermBase{hash}, name, expr, body}
}

// Ann annotates Expr with Type. Done marks annotations already trusted
// by the checker, so inferring them does not loop.
type Ann struct {
	TermBase
	Done bool
	Type Term
	Expr Term
}

func NewAnn(done bool, typ, expr Term) *Ann {
	hash := Combine(Combine(TagAnn, typ.Hash()), expr.Hash())
	return &Ann{TermBase{hash}, done, typ, expr}
}
