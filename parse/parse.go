package parse

import (
	"fmt"

	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/source"
	"github.com/moonad/formality-core/term"
)

// Module parses a sequence of `name : type body` definitions.
func Module(src string) (*source.Module, error) {
	p := newParser(src)
	mod := source.NewModule()
	for {
		p.skipSpace()
		if p.eof() {
			return mod, nil
		}
		name := p.parseName()
		if name == NoName || !p.matchText(":") {
			return nil, p.noParse()
		}
		typ, ok := p.parseTerm(nil)
		if !ok {
			return nil, p.noParse()
		}
		body, ok := p.parseTerm(nil)
		if !ok {
			return nil, p.noParse()
		}
		if err := mod.Add(source.NewDef(name, typ, body)); err != nil {
			return nil, ParseError.Wrap(err)
		}
	}
}

// Term parses a single term against an ambient scope (innermost binder
// first) and requires the whole input to be consumed.
func Term(src string, scope []Name) (term.Term, error) {
	p := newParser(src)
	t, ok := p.parseTerm(scope)
	if !ok {
		return nil, p.noParse()
	}
	p.skipSpace()
	if !p.eof() {
		return nil, ParseError.New("expected EOF at %v", p.position())
	}
	return t, nil
}

// ========================

type parser struct {
	src []rune
	pos int
}

func newParser(src string) *parser {
	return &parser{src: []rune(src)}
}

func (p *parser) noParse() error {
	return ParseError.New("no parse at %v", p.position())
}

func (p *parser) position() string {
	line, col := 1, 1
	for i := 0; i < p.pos && i < len(p.src); i++ {
		if p.src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Sprintf("%d:%d", line, col)
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) starts(s string) bool {
	i := p.pos
	for _, r := range s {
		if i >= len(p.src) || p.src[i] != r {
			return false
		}
		i++
	}
	return true
}

// skipSpace consumes whitespace (space, tab, LF) and all four comment
// forms wherever whitespace is allowed.
func (p *parser) skipSpace() {
	for !p.eof() {
		switch {
		case p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\n':
			p.pos++
		case p.starts("//") || p.starts("--"):
			for !p.eof() && p.src[p.pos] != '\n' {
				p.pos++
			}
		case p.starts("/*"):
			p.pos += 2
			for !p.eof() && !p.starts("*/") {
				p.pos++
			}
			p.pos += 2
		case p.starts("{-"):
			p.pos += 2
			for !p.eof() && !p.starts("-}") {
				p.pos++
			}
			p.pos += 2
		default:
			return
		}
	}
}

// matchText skips whitespace and consumes s if it is next. When s is not
// next, the position is left where it was, whitespace included.
func (p *parser) matchText(s string) bool {
	mark := p.pos
	p.skipSpace()
	if !p.starts(s) {
		p.pos = mark
		return false
	}
	p.pos += len([]rune(s))
	return true
}

// matchKeyword is matchText plus a word boundary after the keyword.
func (p *parser) matchKeyword(s string) bool {
	mark := p.pos
	if !p.matchText(s) {
		return false
	}
	if !p.eof() && IsNameRune(p.src[p.pos]) {
		p.pos = mark
		return false
	}
	return true
}

// parseName skips whitespace and reads a possibly empty identifier.
func (p *parser) parseName() Name {
	p.skipSpace()
	start := p.pos
	for !p.eof() && IsNameRune(p.src[p.pos]) {
		p.pos++
	}
	return Name(p.src[start:p.pos])
}

// ========================

// term ::= atom { application } [ '->' term ] [ '::' term ]
func (p *parser) parseTerm(scope []Name) (term.Term, bool) {
	t, ok := p.parseAtom(scope)
	if !ok {
		return nil, false
	}

	// Applications attach only without intervening whitespace, so that
	// `A (A) => A` is not an application of A.
	for {
		if p.starts("(") {
			p.pos++
			arg, ok := p.parseTerm(scope)
			if !ok || !p.matchText(")") {
				return nil, false
			}
			t = term.NewApp(false, t, arg)
			continue
		}
		if p.starts("<") {
			p.pos++
			arg, ok := p.parseTerm(scope)
			if !ok || !p.matchText(">") {
				return nil, false
			}
			t = term.NewApp(true, t, arg)
			continue
		}
		mark := p.pos
		if p.matchText("|") {
			arg, ok := p.parseTerm(scope)
			if !ok || !p.matchText(";") {
				p.pos = mark
				return nil, false
			}
			t = term.NewApp(false, t, arg)
			continue
		}
		break
	}

	// A -> B desugars to an unnamed All; A shifts over the implicit
	// self binder it never mentions, B parses under two fresh scopes.
	if p.matchText("->") {
		body, ok := p.parseTerm(PushFront(PushFront(scope, NoName), NoName))
		if !ok {
			return nil, false
		}
		t = term.NewAll(false, NoName, NoName, term.Shift(t, 1, 0), body)
	}

	if p.matchText("::") {
		typ, ok := p.parseTerm(scope)
		if !ok {
			return nil, false
		}
		t = term.NewAnn(false, typ, t)
	}

	return t, true
}

// atom ::= all | lam | let | 'Type' | var | '(' term ')'
func (p *parser) parseAtom(scope []Name) (term.Term, bool) {
	mark := p.pos

	if t, ok := p.parseAll(scope); ok {
		return t, true
	}
	p.pos = mark

	if t, ok := p.parseLam(scope); ok {
		return t, true
	}
	p.pos = mark

	if t, ok := p.parseLet(scope); ok {
		return t, true
	}
	p.pos = mark

	if p.matchKeyword("Type") {
		return term.NewTyp(), true
	}
	p.pos = mark

	if name := p.parseName(); name != NoName {
		for i, bound := range scope {
			if bound == name {
				return term.NewVar(i), true
			}
		}
		return term.NewRef(name), true
	}
	p.pos = mark

	if p.matchText("(") {
		t, ok := p.parseTerm(scope)
		if ok && p.matchText(")") {
			return t, true
		}
	}
	p.pos = mark

	return nil, false
}

// all ::= [name] ( '(' | '<' ) [name] ':' term ( ')' | '>' ) '->' term
func (p *parser) parseAll(scope []Name) (term.Term, bool) {
	self := p.parseName()

	erased := false
	shut := ")"
	switch {
	case p.matchText("("):
	case p.matchText("<"):
		erased = true
		shut = ">"
	default:
		return nil, false
	}

	name := p.parseName()
	if !p.matchText(":") {
		return nil, false
	}
	bind, ok := p.parseTerm(PushFront(scope, self))
	if !ok || !p.matchText(shut) || !p.matchText("->") {
		return nil, false
	}
	body, ok := p.parseTerm(PushFront(PushFront(scope, self), name))
	if !ok {
		return nil, false
	}
	return term.NewAll(erased, self, name, bind, body), true
}

// lam ::= ( '(' | '<' ) [name] ( ')' | '>' ) [ '=>' ] term
func (p *parser) parseLam(scope []Name) (term.Term, bool) {
	erased := false
	shut := ")"
	switch {
	case p.matchText("("):
	case p.matchText("<"):
		erased = true
		shut = ">"
	default:
		return nil, false
	}

	name := p.parseName()
	if !p.matchText(shut) {
		return nil, false
	}
	p.matchText("=>")
	body, ok := p.parseTerm(PushFront(scope, name))
	if !ok {
		return nil, false
	}
	return term.NewLam(erased, name, body), true
}

// let ::= 'let' name '=' term [';'] term
func (p *parser) parseLet(scope []Name) (term.Term, bool) {
	if !p.matchKeyword("let") {
		return nil, false
	}
	name := p.parseName()
	if name == NoName || !p.matchText("=") {
		return nil, false
	}
	expr, ok := p.parseTerm(scope)
	if !ok {
		return nil, false
	}
	p.matchText(";")
	body, ok := p.parseTerm(PushFront(scope, name))
	if !ok {
		return nil, false
	}
	return term.NewLet(name, expr, body), true
}
