package compile

import (
	"github.com/spacemonkeygo/errors"
	"github.com/spacemonkeygo/errors/try"

	"github.com/moonad/formality-core/check"
	. "github.com/moonad/formality-core/common"
	"github.com/moonad/formality-core/files"
	"github.com/moonad/formality-core/parse"
	"github.com/moonad/formality-core/source"
)

// CheckUnit gathers sources into a single module and checks every
// definition in it.
type CheckUnit struct {
	Module *source.Module
}

func NewCheckUnit() *CheckUnit {
	return &CheckUnit{Module: source.NewModule()}
}

func (u *CheckUnit) AddFile(path string) error {
	src, err := files.ReadSource(path)
	if err != nil {
		return err
	}
	return u.AddSource(src)
}

func (u *CheckUnit) AddSource(src string) error {
	mod, err := parse.Module(src)
	if err != nil {
		return err
	}
	for _, name := range mod.Names {
		def, _ := mod.Get(name)
		if err := u.Module.Add(def); err != nil {
			return parse.ParseError.Wrap(err)
		}
	}
	return nil
}

// Failure pairs a definition name with the TypeError it raised.
type Failure struct {
	Name Name
	Err  error
}

// Check runs the checker over every definition in insertion order. The
// first error in a definition aborts that definition only; the rest
// still get checked.
func (u *CheckUnit) Check() []Failure {
	checker := check.NewChecker(u.Module)
	var failures []Failure
	for _, name := range u.Module.Names {
		def, _ := u.Module.Get(name)
		try.Do(func() {
			checker.CheckDef(def)
		}).Catch(check.TypeError, func(err *errors.Error) {
			failures = append(failures, Failure{Name: def.Name, Err: err})
		}).Done()
	}
	return failures
}
