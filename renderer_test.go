package ezopt

import (
	"strings"
	"testing"

	"github.com/napalu/ezopt/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newUsageParser(t *testing.T, configs ...ConfigureParserFunc) *Parser {
	t.Helper()

	p, err := NewParserWith(append([]ConfigureParserFunc{
		WithGroup(
			WithFlags("-h", "--help"),
			WithHelp("Display usage.")),
		WithGroup(
			WithFlags("--dimension", "-d"),
			WithExpectArgs(3),
			WithDelimiter(','),
			WithHelp("Width height depth.")),
	}, configs...)...)
	require.NoError(t, err)

	return p
}

func TestParser_GetUsageDescriptions(t *testing.T) {
	tests := []struct {
		name   string
		layout types.Layout
		want   string
	}{
		{
			name:   "align",
			layout: types.Align,
			want: "-d, --dimension ARG1[,ARGn]   Width height depth.\n\n" +
				"-h, --help" + strings.Repeat(" ", 20) + "Display usage.\n\n",
		},
		{
			name:   "stagger",
			layout: types.Stagger,
			want: "-d, --dimension ARG1[,ARGn]   Width height depth.\n\n" +
				"-h, --help   Display usage.\n\n",
		},
		{
			name:   "interleave",
			layout: types.Interleave,
			want: "-d, --dimension ARG1[,ARGn]\n   Width height depth.\n\n" +
				"-h, --help\n   Display usage.\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newUsageParser(t)
			assert.Equal(t, tt.want, p.GetUsageDescriptions(80, tt.layout))
		})
	}
}

func TestParser_GetUsageDescriptionsSingleSpaced(t *testing.T) {
	p := newUsageParser(t, WithDoubleSpace(false))

	assert.Equal(t, "-d, --dimension ARG1[,ARGn]\n   Width height depth.\n-h, --help\n   Display usage.\n",
		p.GetUsageDescriptions(80, types.Interleave))
}

func TestParser_GetUsageDescriptionsMultiLineHelp(t *testing.T) {
	p, err := NewParserWith(
		WithGroup(WithFlags("-a"), WithHelp("Line one.\nLine two.")),
		WithGroup(WithFlags("--bbbb"), WithHelp("")))
	require.NoError(t, err)

	want := "-a       Line one.\n" +
		"         Line two.\n\n" +
		"--bbbb   \n\n"
	assert.Equal(t, want, p.GetUsageDescriptions(80, types.Align))
}

func TestParser_GetUsageDescriptionsWrap(t *testing.T) {
	p, err := NewParserWith(WithGroup(WithFlags("-x"), WithHelp("alpha beta gamma delta epsilon")))
	require.NoError(t, err)

	want := "-x   alpha beta\n" +
		"     gamma delta\n" +
		"     epsilon\n\n"
	assert.Equal(t, want, p.GetUsageDescriptions(20, types.Stagger))
}

type fixedTerminal struct {
	width int
}

func (f fixedTerminal) IsTerminal(int) bool { return true }

func (f fixedTerminal) GetSize(int) (int, int, error) { return f.width, 24, nil }

func TestParser_GetUsageDescriptionsTerminalWidth(t *testing.T) {
	p, err := NewParserWith(
		WithTerminal(fixedTerminal{width: 20}),
		WithGroup(WithFlags("-x"), WithHelp("alpha beta gamma delta epsilon")))
	require.NoError(t, err)

	assert.Equal(t, p.GetUsageDescriptions(20, types.Stagger), p.GetUsageDescriptions(0, types.Stagger))
}

func TestParser_GetUsage(t *testing.T) {
	tests := []struct {
		name    string
		configs []ConfigureParserFunc
		want    string
	}{
		{
			name: "full document",
			configs: []ConfigureParserFunc{
				WithOverview("ov"),
				WithSyntax("prog [opts]"),
				WithExample("ex\n"),
				WithFooter("ft\n"),
			},
			want: "ov\n\nUSAGE: prog [opts]\n\nOPTIONS:\n\n-h   Help.\n\nEXAMPLES:\n\nex\nft\n",
		},
		{
			name:    "no example or footer",
			configs: []ConfigureParserFunc{WithOverview("ov"), WithSyntax("prog")},
			want:    "ov\n\nUSAGE: prog\n\nOPTIONS:\n\n-h   Help.\n\n",
		},
		{
			name: "german headings",
			configs: []ConfigureParserFunc{
				WithLanguage(language.German),
				WithOverview("ov"),
				WithSyntax("prog"),
				WithExample("ex\n"),
			},
			want: "ov\n\nVERWENDUNG: prog\n\nOPTIONEN:\n\n-h   Help.\n\nBEISPIELE:\n\nex\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParserWith(append(tt.configs, WithGroup(WithFlags("-h"), WithHelp("Help.")))...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.GetUsage(80, types.Align))
		})
	}
}

func TestDefaultRenderer_FlagsColumn(t *testing.T) {
	p := NewParser()
	r := NewRenderer(p)

	tests := []struct {
		name    string
		configs []ConfigureGroupFunc
		width   int
		want    string
	}{
		{
			name:    "flag only",
			configs: []ConfigureGroupFunc{WithFlags("--help", "-h")},
			width:   80,
			want:    "-h, --help",
		},
		{
			name:    "single value",
			configs: []ConfigureGroupFunc{WithFlags("-o"), WithExpectArgs(1)},
			width:   80,
			want:    "-o ARG",
		},
		{
			name:    "delimited values",
			configs: []ConfigureGroupFunc{WithFlags("-t"), WithExpectArgs(Unbounded), WithDelimiter(';')},
			width:   80,
			want:    "-t ARG1[;ARGn]",
		},
		{
			name:    "narrow",
			configs: []ConfigureGroupFunc{WithFlags("-a", "--bb", "--cc")},
			width:   3,
			want:    "-a, \n--bb, \n--cc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := NewGroup(tt.configs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.FlagsColumn(group, tt.width))
		})
	}
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "fits", text: "short", width: 10, want: []string{"short"}},
		{name: "space at width", text: "aaa bbb ccc", width: 7, want: []string{"aaa bbb", "ccc"}},
		{name: "last space", text: "aaa bbb ccc", width: 5, want: []string{"aaa", "bbb", "ccc"}},
		{name: "no space", text: "abcdefgh", width: 3, want: []string{"abcdefgh"}},
		{name: "newlines", text: "a\n\nb", width: 10, want: []string{"a", "", "b"}},
		{name: "empty", text: "", width: 10, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapLines(tt.text, tt.width))
		})
	}
}

type upperRenderer struct {
	*DefaultRenderer
}

func (r upperRenderer) HelpLines(group *OptionGroup, width int) []string {
	return []string{strings.ToUpper(group.Help())}
}

func TestParser_SetRenderer(t *testing.T) {
	p := newUsageParser(t, WithDoubleSpace(false))
	p.SetRenderer(upperRenderer{NewRenderer(p)})

	assert.Contains(t, p.GetUsageDescriptions(80, types.Stagger), "-h, --help   DISPLAY USAGE.\n")
}
