package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/christopherzimmerman/jfmc/cmd"
	"github.com/christopherzimmerman/jfmc/report"
	cli "github.com/urfave/cli/v2"
)

// Exit codes per spec §6: 0 success; a distinct nonzero code when the
// external `cc` invocation itself fails, vs. an ordinary pipeline
// (lex/parse/semantic) failure.
const (
	exitOK            = 0
	exitPipelineError = 1
	exitCCError       = 2
)

func main() {
	app := &cli.App{
		Name:      "jfmc",
		Usage:     "Transpile JFM source code to C",
		ArgsUsage: "<input.jfm>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "o", Usage: "output C file (default: compile to exe)"},
			&cli.BoolFlag{Name: "exe", Aliases: []string{"e"}, Usage: "compile to executable (requires a C toolchain)"},
			&cli.StringSliceFlag{Name: "l", Usage: "link with library (e.g. -l GL -l glut)"},
			&cli.BoolFlag{Name: "dump-tokens", Usage: "dump the lexed token stream instead of compiling"},
			&cli.BoolFlag{Name: "dump-ast", Usage: "dump the parsed/analyzed AST instead of compiling"},
			&cli.BoolFlag{Name: "stats", Usage: "print analysis statistics after a successful run"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.NArg() < 1 {
		return cli.Exit("expected a source file argument", exitPipelineError)
	}

	inputFile := ctx.Args().Get(0)

	src, err := os.ReadFile(inputFile)
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not read file '%s': %v", inputFile, err), exitPipelineError)
	}

	compiler := cmd.NewCompiler(inputFile, src)
	compiler.Run()

	if ctx.Bool("dump-tokens") {
		compiler.DumpTokens(os.Stdout)
	}

	if ctx.Bool("dump-ast") {
		compiler.DumpAST(os.Stdout)
	}

	diags := compiler.Diagnostics()
	if !diags.NoErrors() {
		reporter := report.NewDisplayReporter(os.Stderr, report.LOG_LEVEL_ALL)
		for _, e := range diags.Errors() {
			reporter.ReportError(e)
		}
		reporter.PrintSummary(diags)
		return cli.Exit("", exitPipelineError)
	}

	if ctx.Bool("stats") {
		funcs, structs, vars := compiler.Stats()
		fmt.Printf("functions_analyzed=%d structs_analyzed=%d variables_analyzed=%d\n", funcs, structs, vars)
	}

	if ctx.Bool("dump-tokens") || ctx.Bool("dump-ast") {
		return nil
	}

	outputFile := ctx.String("o")
	compileToExe := ctx.Bool("exe")
	usingTemp := false

	if outputFile == "" {
		usingTemp = true
		compileToExe = true
		outputFile = tempCFileName(inputFile)
	}

	cFile, err := os.Create(outputFile)
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not open output file '%s': %v", outputFile, err), exitPipelineError)
	}

	compiler.GenerateC(cFile)
	cFile.Close()

	if usingTemp {
		defer os.Remove(outputFile)
	}

	if !compileToExe {
		return nil
	}

	exeName := strings.TrimSuffix(outputFile, filepath.Ext(outputFile))
	libs := ctx.StringSlice("l")
	libFlags := make([]string, 0, len(libs))
	for _, lib := range libs {
		libFlags = append(libFlags, "-l"+lib)
	}

	if err := compiler.BuildExecutable(outputFile, exeName, libFlags); err != nil {
		return cli.Exit(fmt.Sprintf("failed to compile C code: %v", err), exitCCError)
	}

	return nil
}

func tempCFileName(inputFile string) string {
	base := filepath.Base(inputFile)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "_temp.c"
}
