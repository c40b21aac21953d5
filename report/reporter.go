package report

// Reporter renders a diagnostic for a human. The core never talks to one
// directly — it only ever appends to a Log — but a Log's contents are
// handed to a Reporter by the CLI layer (or a test) for display.
type Reporter interface {
	ReportError(err error)
}
