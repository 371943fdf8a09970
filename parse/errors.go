package parse

import (
	"github.com/spacemonkeygo/errors"
)

// ParseError is the single failure kind the parser surfaces.
var ParseError = errors.NewClass("ParseError")
