package report

import (
	"fmt"
	"io"
	"strings"
)

// TextSpan is a 1-based source range: [StartLine, StartCol) through
// [EndLine, EndCol).
type TextSpan struct {
	StartLine, StartCol int
	EndLine, EndCol     int
}

func SpanOver(start, end *TextSpan) *TextSpan {
	return &TextSpan{
		StartLine: start.StartLine,
		StartCol:  start.StartCol,
		EndLine:   end.EndLine,
		EndCol:    end.EndCol,
	}
}

/* -------------------------------------------------------------------------- */

// SourceInfo localizes a diagnostic to one file and span. SourceLine is
// optional: when set, the display layer prints it with a caret. The
// lexer, parser and analyzer leave it empty, so their diagnostics are
// shown without a source line.
type SourceInfo struct {
	FileName   string
	Span       *TextSpan
	SourceLine string
}

type SourceError struct {
	Message string
	Info    *SourceInfo
}

func (serr *SourceError) Error() string {
	b := strings.Builder{}
	serr.Dump(&b)
	return b.String()
}

func (serr *SourceError) Dump(w io.Writer) {
	fmt.Fprintf(
		w, "%s:%d:%d: %s",
		serr.Info.FileName,
		serr.Info.Span.StartLine, serr.Info.Span.StartCol,
		serr.Message,
	)
}
