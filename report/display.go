package report

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type LogLevel uint8

const (
	LOG_LEVEL_SILENT LogLevel = iota
	LOG_LEVEL_ERROR
	LOG_LEVEL_WARN
	LOG_LEVEL_ALL
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBold  = "\033[1m"
	colorDim   = "\033[2m"
	colorCyan  = "\033[36m"
)

// DisplayReporter is the optional pretty-renderer collaborator named in
// spec §6: it carets the offending source line and colors its output,
// neither of which the core itself ever does. NO_COLOR disables escapes
// regardless of Level, matching the environment contract the spec gives
// the CLI layer.
type DisplayReporter struct {
	Out      io.Writer
	Level    LogLevel
	UseColor bool
}

func NewDisplayReporter(out io.Writer, level LogLevel) *DisplayReporter {
	return &DisplayReporter{
		Out:      out,
		Level:    level,
		UseColor: os.Getenv("NO_COLOR") == "",
	}
}

func (dr *DisplayReporter) color(code string) string {
	if !dr.UseColor {
		return ""
	}
	return code
}

func (dr *DisplayReporter) ReportError(err error) {
	if dr.Level < LOG_LEVEL_ERROR {
		return
	}

	fmt.Fprintf(dr.Out, "%s%serror:%s ", dr.color(colorBold), dr.color(colorRed), dr.color(colorReset))

	serr, ok := err.(*SourceError)
	if !ok {
		fmt.Fprintf(dr.Out, "%v\n\n", err)
		return
	}

	serr.Dump(dr.Out)
	fmt.Fprint(dr.Out, "\n")

	if serr.Info != nil && serr.Info.SourceLine != "" {
		fmt.Fprintf(dr.Out, "  %s%d |%s %s\n", dr.color(colorDim), serr.Info.Span.StartLine, dr.color(colorReset), serr.Info.SourceLine)

		gutterWidth := len(fmt.Sprintf("%d", serr.Info.Span.StartLine)) + 4
		caretCol := serr.Info.Span.StartCol
		if caretCol < 1 {
			caretCol = 1
		}
		fmt.Fprintf(dr.Out, "%s%s%s^%s\n", strings.Repeat(" ", gutterWidth+caretCol-1), dr.color(colorBold), dr.color(colorCyan), dr.color(colorReset))
	}

	fmt.Fprint(dr.Out, "\n")
}

// PrintSummary emits the terminating "aborting due to N previous errors"
// line named in spec §7, after every diagnostic in log has already been
// rendered via ReportError.
func (dr *DisplayReporter) PrintSummary(log *Log) {
	if log.NoErrors() {
		return
	}

	if log.Count() == 1 {
		fmt.Fprintf(dr.Out, "aborting due to 1 previous error\n")
	} else {
		fmt.Fprintf(dr.Out, "aborting due to %d previous errors\n", log.Count())
	}
}
