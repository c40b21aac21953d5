package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogAccumulatesInOrder(t *testing.T) {
	log := NewLog()
	if !log.NoErrors() {
		t.Fatal("new log should have no errors")
	}

	span := &TextSpan{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 2}
	log.Add(&SourceError{Message: "first", Info: &SourceInfo{FileName: "a.jfm", Span: span}})
	log.Add(&SourceError{Message: "second", Info: &SourceInfo{FileName: "a.jfm", Span: span}})

	if log.NoErrors() {
		t.Error("log with two adds should have errors")
	}
	if log.Count() != 2 {
		t.Errorf("Count() = %d; want 2", log.Count())
	}
	if log.Errors()[0].Message != "first" || log.Errors()[1].Message != "second" {
		t.Error("Log.Add did not preserve insertion order")
	}
}

func TestLogExtendPreservesStageOrder(t *testing.T) {
	span := &TextSpan{StartLine: 1, StartCol: 1}

	parseLog := NewLog()
	parseLog.Add(&SourceError{Message: "parse error", Info: &SourceInfo{Span: span}})

	semLog := NewLog()
	semLog.Add(&SourceError{Message: "semantic error", Info: &SourceInfo{Span: span}})

	combined := NewLog()
	combined.Extend(parseLog)
	combined.Extend(semLog)

	if combined.Count() != 2 {
		t.Fatalf("Count() = %d; want 2", combined.Count())
	}
	if combined.Errors()[0].Message != "parse error" || combined.Errors()[1].Message != "semantic error" {
		t.Error("Extend did not preserve stage order (parse diagnostics before semantic diagnostics)")
	}
}

func TestSourceErrorDump(t *testing.T) {
	serr := &SourceError{
		Message: "undefined symbol: 'x'",
		Info:    &SourceInfo{FileName: "a.jfm", Span: &TextSpan{StartLine: 3, StartCol: 5}},
	}

	if got := serr.Error(); got != "a.jfm:3:5: undefined symbol: 'x'" {
		t.Errorf("Error() = %q", got)
	}
}

func TestPrintSummarySingularPlural(t *testing.T) {
	var buf bytes.Buffer
	dr := NewDisplayReporter(&buf, LOG_LEVEL_ALL)

	oneErr := NewLog()
	oneErr.Add(&SourceError{Message: "x", Info: &SourceInfo{Span: &TextSpan{}}})
	dr.PrintSummary(oneErr)
	if !strings.Contains(buf.String(), "1 previous error\n") {
		t.Errorf("PrintSummary(1 error) = %q; want singular form", buf.String())
	}

	buf.Reset()
	twoErrs := NewLog()
	twoErrs.Add(&SourceError{Message: "x", Info: &SourceInfo{Span: &TextSpan{}}})
	twoErrs.Add(&SourceError{Message: "y", Info: &SourceInfo{Span: &TextSpan{}}})
	dr.PrintSummary(twoErrs)
	if !strings.Contains(buf.String(), "2 previous errors\n") {
		t.Errorf("PrintSummary(2 errors) = %q; want plural form", buf.String())
	}

	buf.Reset()
	dr.PrintSummary(NewLog())
	if buf.Len() != 0 {
		t.Errorf("PrintSummary(no errors) should write nothing, got %q", buf.String())
	}
}

func TestDisplayReporterNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	dr := NewDisplayReporter(&bytes.Buffer{}, LOG_LEVEL_ALL)
	if dr.UseColor {
		t.Error("NO_COLOR=1 should disable color output")
	}
}
