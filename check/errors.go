package check

import (
	"github.com/spacemonkeygo/errors"
)

// TypeError is the single structural error kind the checker raises.
// The checker panics with instances of it; the unit boundary recovers.
var TypeError = errors.NewClass("TypeError")
