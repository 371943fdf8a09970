package check

import (
	"github.com/moonad/formality-core/source"
)

// Checker verifies that each definition's declared type is inhabited by
// its body. It holds no mutable state of its own; the module is read
// only.
type Checker struct {
	Module *source.Module
}

func NewChecker(mod *source.Module) *Checker {
	return &Checker{Module: mod}
}

// CheckDef checks one definition. It panics with a TypeError on
// failure; callers recover at the definition boundary so the remaining
// definitions still get checked.
func (c *Checker) CheckDef(def *source.Def) {
	c.Check(nil, nil, def.Type, def.Body)
}
