package ezopt

import (
	"strings"
	"unicode/utf8"

	"github.com/ef-ds/deque"
	"github.com/napalu/ezopt/internal/util"
	"github.com/napalu/ezopt/types"
)

// Renderer formats the two columns of a usage entry
type Renderer interface {
	// FlagsColumn returns the aliases of group followed by its argument hint
	FlagsColumn(group *OptionGroup, width int) string
	// HelpLines returns the help text of group split into lines no longer than width
	HelpLines(group *OptionGroup, width int) []string
}

type DefaultRenderer struct {
	parser *Parser
}

func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// FlagsColumn joins the sorted aliases with ", ". A line break follows a
// separator once the text is longer than width. Groups expecting values get an
// " ARG" hint, or " ARG1[<delim>ARGn]" when values are delimited.
func (r *DefaultRenderer) FlagsColumn(group *OptionGroup, width int) string {
	flags := SortFlags(group.flags)
	if len(flags) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, flag := range flags[:len(flags)-1] {
		sb.WriteString(flag)
		sb.WriteString(", ")
		if utf8.RuneCountInString(sb.String()) > width {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(flags[len(flags)-1])

	if group.expectArgs != 0 {
		arg := r.parser.msg(types.MsgArgKey)
		sb.WriteString(" ")
		sb.WriteString(arg)
		if group.delim != 0 {
			sb.WriteString("1[")
			sb.WriteRune(group.delim)
			sb.WriteString(arg)
			sb.WriteString("n]")
		}
	}

	return sb.String()
}

// HelpLines splits the help text at newlines and wraps every line longer than
// width at the last space which keeps it within width. A line without such a
// space is kept whole.
func (r *DefaultRenderer) HelpLines(group *OptionGroup, width int) []string {
	return wrapLines(group.help, width)
}

func wrapLines(text string, width int) []string {
	pending := deque.New()
	for _, line := range util.SplitDelim(text, '\n') {
		pending.PushBack(line)
	}

	lines := make([]string, 0, pending.Len())
	for pending.Len() > 0 {
		front, _ := pending.PopFront()
		line := []rune(front.(string))
		if len(line) <= width {
			lines = append(lines, string(line))
			continue
		}

		pos := width
		if line[width] != ' ' {
			if pos = lastSpace(line, width); pos < 0 {
				lines = append(lines, string(line))
				continue
			}
		}

		lines = append(lines, string(line[:pos]))
		if rest := strings.TrimLeft(string(line[pos:]), " "); rest != "" {
			pending.PushFront(rest)
		}
	}

	return lines
}

func lastSpace(line []rune, from int) int {
	for i := from; i >= 0; i-- {
		if line[i] == ' ' {
			return i
		}
	}

	return -1
}

// SetRenderer replaces the renderer used by GetUsage and GetUsageDescriptions
func (p *Parser) SetRenderer(renderer Renderer) {
	p.renderer = renderer
}

func (p *Parser) getRenderer() Renderer {
	if p.renderer == nil {
		p.renderer = NewRenderer(p)
	}

	return p.renderer
}

func (p *Parser) msg(key string) string {
	return p.i18n.TL(p.lang, key)
}

// GetUsage renders the usage document: the overview, the USAGE line with the
// syntax text, the OPTIONS section, then the EXAMPLES section and the footer
// when they are set. A width of 0 or less uses the terminal width.
func (p *Parser) GetUsage(width int, layout types.Layout) string {
	var sb strings.Builder

	sb.WriteString(p.overview)
	sb.WriteString("\n\n")
	sb.WriteString(p.msg(types.MsgUsageKey))
	sb.WriteString(" ")
	sb.WriteString(p.syntax)
	sb.WriteString("\n\n")
	sb.WriteString(p.msg(types.MsgOptionsKey))
	sb.WriteString("\n\n")
	sb.WriteString(p.GetUsageDescriptions(width, layout))

	if p.example != "" {
		sb.WriteString(p.msg(types.MsgExamplesKey))
		sb.WriteString("\n\n")
		sb.WriteString(p.example)
	}

	if p.footer != "" {
		sb.WriteString(p.footer)
	}

	return sb.String()
}

// GetUsageDescriptions renders the OPTIONS section body: one entry per group,
// ordered by the group's first alias under CompareFlags.
//
// With Align every help column starts after the longest flags column, with
// Stagger after the group's own flags column and with Interleave the help
// text starts on the line below the flags, indented by the gutter.
func (p *Parser) GetUsageDescriptions(width int, layout types.Layout) string {
	if width <= 0 {
		width = util.TerminalWidth(p.terminal)
	}

	renderer := p.getRenderer()
	groups := p.sortedGroups()
	columns := make([]string, len(groups))
	maxlen := 0
	for i, group := range groups {
		columns[i] = renderer.FlagsColumn(group, width)
		if layout == types.Align {
			maxlen = util.Max(maxlen, utf8.RuneCountInString(columns[i]))
		}
	}

	var sb strings.Builder
	for i, group := range groups {
		length := utf8.RuneCountInString(columns[i])
		if layout == types.Stagger {
			maxlen = length
		}
		pad := gutter + maxlen

		sb.WriteString(columns[i])
		if layout == types.Interleave {
			sb.WriteString("\n")
			sb.WriteString(strings.Repeat(" ", gutter))
		} else {
			sb.WriteString(strings.Repeat(" ", pad-length))
		}

		lines := renderer.HelpLines(group, util.Max(width-pad, 1))
		if len(lines) == 0 {
			sb.WriteString("\n")
		}
		for j, line := range lines {
			if j > 0 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}

		if p.doubleSpace {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
