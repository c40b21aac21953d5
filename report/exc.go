package report

// Throw/Catch is reserved for internal errors (spec's fourth error
// category: allocation failure, unreachable AST variant) — the kind of
// fault no stage is expected to recover from mid-file. Ordinary lexical,
// parse, and semantic diagnostics go through a Log's Add instead, so
// that a single run can keep collecting more than one of them.
type internalPanic struct {
	err error
}

func Throw(err error) {
	panic(internalPanic{err: err})
}

// Catch recovers an internalPanic and records it in log. Any other
// panic value propagates — it was never ours to swallow.
func Catch(log *Log) {
	if x := recover(); x != nil {
		if ip, ok := x.(internalPanic); ok {
			log.AddErr(ip.err)
		} else {
			panic(x)
		}
	}
}
