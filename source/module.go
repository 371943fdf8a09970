package source

import (
	"fmt"

	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/term"
)

// Def is one named top-level definition: a declared type and a body.
type Def struct {
	Name Name
	Hash Hash
	Type term.Term
	Body term.Term
}

func NewDef(name Name, typ, body term.Term) *Def {
	return &Def{
		Name: name,
		Hash: Combine(typ.Hash(), body.Hash()),
		Type: typ,
		Body: body,
	}
}

// Module maps names to definitions. Insertion order is kept so checking
// and printing walk definitions in textual order. The aggregate hash
// covers the definitions' types and bodies, not their names, and since
// it folds them in insertion order it also depends on that order.
type Module struct {
	Names []Name
	Defs  Map[Name, *Def]
}

func NewModule() *Module {
	return &Module{
		Defs: NewMap[Name, *Def](),
	}
}

func (m *Module) Add(def *Def) error {
	if m.Defs.Contains(def.Name) {
		return fmt.Errorf("duplicate definition: %v", def.Name)
	}
	m.Names = append(m.Names, def.Name)
	m.Defs.Add(def.Name, def)
	return nil
}

func (m *Module) Get(name Name) (*Def, bool) {
	return m.Defs.Lookup(name)
}

// Hash folds the definition hashes in insertion order.
func (m *Module) Hash() Hash {
	var h Hash
	for _, name := range m.Names {
		h = Combine(h, m.Defs[name].Hash)
	}
	return h
}
