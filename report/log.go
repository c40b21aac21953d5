package report

// Log is the ordered diagnostic list owned by a single pipeline stage.
// The core is single-threaded and synchronous (no stage's Log is shared
// across goroutines), so no locking guards it.
type Log struct {
	errors []*SourceError
}

func NewLog() *Log {
	return &Log{}
}

// Add records a diagnostic and keeps scanning/parsing/analyzing — this is
// what lets a single run collect more than one error (panic mode for the
// parser, independent per-node errors for the semantic analyzer).
func (l *Log) Add(err *SourceError) {
	l.errors = append(l.errors, err)
}

func (l *Log) AddErr(err error) {
	if serr, ok := err.(*SourceError); ok {
		l.Add(serr)
		return
	}

	l.Add(&SourceError{Message: err.Error()})
}

func (l *Log) Errors() []*SourceError {
	return l.errors
}

func (l *Log) NoErrors() bool {
	return len(l.errors) == 0
}

func (l *Log) Count() int {
	return len(l.errors)
}

// Extend folds another stage's diagnostics into this one, preserving
// insertion order across stages the way spec requires for the combined
// diagnostic stream.
func (l *Log) Extend(other *Log) {
	l.errors = append(l.errors, other.errors...)
}
