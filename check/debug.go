package check

import (
	"github.com/inconshreveable/log15"
)

var (
	DebugAll      = false
	DebugReduce   = false
	DebugEquality = false

	Log = log15.New("module", "check")
)

func init() {
	Log.SetHandler(log15.DiscardHandler())
}

// EnableDebug routes checker traces to stderr.
func EnableDebug() {
	DebugAll = true
	Log.SetHandler(log15.StderrHandler)
}

func ReduceLog(msg string, ctx ...interface{}) {
	if DebugAll || DebugReduce {
		Log.Debug(msg, ctx...)
	}
}

func EqualityLog(msg string, ctx ...interface{}) {
	if DebugAll || DebugEquality {
		Log.Debug(msg, ctx...)
	}
}
