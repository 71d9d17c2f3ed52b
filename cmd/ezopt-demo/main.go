// Command ezopt-demo parses the options of a fictional image converter and
// prints what it understood. It shows registration, validation, usage
// rendering, configuration files, snapshots and completion scripts.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/ezopt"
	"github.com/napalu/ezopt/types"
	"github.com/napalu/ezopt/validation"
	"golang.org/x/text/language"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func newLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newParser(logger *slog.Logger) (*ezopt.Parser, error) {
	return ezopt.NewParserWith(
		ezopt.WithLogger(logger),
		ezopt.WithEnvPrefix("EZOPT_DEMO"),
		ezopt.WithOverview("ezopt-demo - converts images (pretend) and shows how options are parsed"),
		ezopt.WithSyntax("ezopt-demo [OPTIONS] FILE..."),
		ezopt.WithExample("ezopt-demo -s 640,480 --format png -q 90 in.tga\n"+
			"ezopt-demo --config demo.cfg --export-config -\n\n"),
		ezopt.WithFooter("ezopt-demo is part of the ezopt module.\n"),
		ezopt.WithGroup(
			ezopt.WithFlags("-h", "--help", "-help", "--usage"),
			ezopt.WithHelp("Display usage instructions.")),
		ezopt.WithGroup(
			ezopt.WithFlags("-s", "--size"),
			ezopt.WithExpectArgs(2),
			ezopt.WithDelimiter(','),
			ezopt.WithDefault("256,256"),
			ezopt.WithHelp("Output width and height in pixels."),
			ezopt.WithValidator(validation.New[uint16](types.GT, 0))),
		ezopt.WithGroup(
			ezopt.WithFlags("-f", "--format"),
			ezopt.WithExpectArgs(1),
			ezopt.WithDefault("png"),
			ezopt.WithHelp("Output format. One of png, jpg or ktx; case is ignored."),
			ezopt.WithValidator(validation.NewText(types.IN, true, "png", "jpg", "ktx"))),
		ezopt.WithGroup(
			ezopt.WithFlags("-q", "--quality"),
			ezopt.WithExpectArgs(1),
			ezopt.WithDefault("85"),
			ezopt.WithHelp("Compression quality from 0 to 100."),
			ezopt.WithValidator(validation.NewFromSpecWithLogger(logger, "u1", "gele", "0,100", false))),
		ezopt.WithGroup(
			ezopt.WithFlags("-o", "--output"),
			ezopt.WithExpectArgs(1),
			ezopt.WithHelp("Output directory.\nCreated when missing.")),
		ezopt.WithGroup(
			ezopt.WithFlags("-t", "--tag"),
			ezopt.WithExpectArgs(ezopt.Unbounded),
			ezopt.WithDelimiter(','),
			ezopt.WithHelp("Tags stored with the image. May be given more than once.")),
		ezopt.WithGroup(
			ezopt.WithFlags("--config"),
			ezopt.WithExpectArgs(1),
			ezopt.WithHelp("Read more options from a configuration file.")),
		ezopt.WithGroup(
			ezopt.WithFlags("--export-config"),
			ezopt.WithExpectArgs(1),
			ezopt.WithHelp("Write the parsed options as a configuration file; - writes to stdout.")),
		ezopt.WithGroup(
			ezopt.WithFlags("--snapshot"),
			ezopt.WithExpectArgs(1),
			ezopt.WithHelp("Print the parse state as json, yaml or toml.")),
		ezopt.WithGroup(
			ezopt.WithFlags("--layout"),
			ezopt.WithExpectArgs(1),
			ezopt.WithDefault("align"),
			ezopt.WithHelp("Usage layout: align, interleave or stagger."),
			ezopt.WithValidator(validation.NewText(types.IN, true, "align", "interleave", "stagger"))),
		ezopt.WithGroup(
			ezopt.WithFlags("--lang"),
			ezopt.WithExpectArgs(1),
			ezopt.WithHelp("Language of the usage headings, e.g. de.")),
		ezopt.WithGroup(
			ezopt.WithFlags("--completion"),
			ezopt.WithExpectArgs(1),
			ezopt.WithHelp("Print a completion script for bash, zsh, fish or powershell.")),
		ezopt.WithGroup(
			ezopt.WithFlags("-v", "--verbose"),
			ezopt.WithHelp("Print the parse state.")),
	)
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := newLogger(os.Getenv("EZOPT_DEMO_LOG_LEVEL"), stderr)
	fail := color.New(color.FgRed, color.Bold)

	parser, err := newParser(logger)
	if err != nil {
		fail.Fprintf(stderr, "ERROR: %v\n", err)
		return 2
	}

	if !parser.Parse(args) {
		for _, e := range parser.GetErrors() {
			fail.Fprintf(stderr, "ERROR: %v\n", e)
		}
		return 1
	}

	if parser.IsSet("--config") {
		if err := parser.ImportPath(parser.Get("--config").GetString()); err != nil {
			fail.Fprintf(stderr, "ERROR: %v\n", err)
			return 1
		}
	}
	if err := parser.ImportEnv(nil); err != nil {
		fail.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}

	if parser.IsSet("--lang") {
		if err := parser.SetLanguage(language.Make(parser.Get("--lang").GetString())); err != nil {
			fail.Fprintf(stderr, "ERROR: %v\n", err)
			return 1
		}
	}

	layout, _ := types.ParseLayout(parser.Get("--layout").GetString())
	if parser.IsSet("-h") {
		fmt.Fprint(stdout, parser.GetUsage(0, layout))
		return 0
	}

	if parser.IsSet("--completion") {
		script, err := parser.GenerateCompletion(parser.Get("--completion").GetString(), filepath.Base(args[0]))
		if err != nil {
			fail.Fprintf(stderr, "ERROR: %v\n", err)
			return 1
		}
		fmt.Fprint(stdout, script)
		return 0
	}

	var badOptions, badArgs []string
	if !parser.GotRequired(&badOptions) {
		reportBad(stderr, fail, "missing required option", badOptions, nil)
		return 1
	}
	if !parser.GotExpected(&badOptions) {
		reportBad(stderr, fail, "wrong number of values for option", badOptions, nil)
		fmt.Fprint(stderr, parser.GetUsage(0, layout))
		return 1
	}
	if !parser.GotValid(&badOptions, &badArgs) {
		reportBad(stderr, fail, "invalid value for option", badOptions, badArgs)
		return 1
	}

	if parser.IsSet("--export-config") {
		target := parser.Get("--export-config").GetString()
		if target == "-" {
			err = parser.ExportFile(stdout, true)
		} else {
			err = parser.ExportPath(target, true)
		}
		if err != nil {
			fail.Fprintf(stderr, "ERROR: %v\n", err)
			return 1
		}
	}

	if parser.IsSet("--snapshot") {
		format, ok := types.ParseFormat(parser.Get("--snapshot").GetString())
		if !ok {
			fail.Fprintf(stderr, "ERROR: unknown snapshot format %s\n", parser.Get("--snapshot").GetString())
			return 1
		}
		if err := parser.ExportSnapshot(stdout, format); err != nil {
			fail.Fprintf(stderr, "ERROR: %v\n", err)
			return 1
		}
	}

	if parser.IsSet("-v") {
		fmt.Fprint(stdout, parser.PrettyPrint())
	}

	size := parser.Get("--size").GetInt64s()
	files := parser.LastArgs()
	if unknown := parser.UnknownArgs(); len(unknown) > 0 {
		color.New(color.FgYellow).Fprintf(stderr, "ignoring %s\n", strings.Join(unknown, " "))
	}
	logger.Info("converting", "files", len(files), "format", parser.Get("--format").GetString())
	color.New(color.FgGreen).Fprintf(stdout, "would convert %d file(s) to %s at %v, quality %d\n",
		len(files), strings.ToLower(parser.Get("--format").GetString()), size, parser.Get("--quality").GetInt64())

	return 0
}

func reportBad(w io.Writer, c *color.Color, what string, options, values []string) {
	for i, option := range options {
		if i < len(values) {
			c.Fprintf(w, "ERROR: %s %s: %q\n", what, option, values[i])
			continue
		}
		c.Fprintf(w, "ERROR: %s %s\n", what, option)
	}
}
