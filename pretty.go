package ezopt

import (
	"fmt"
	"strings"

	"github.com/napalu/ezopt/types"
)

// PrettyPrint renders the parse state for inspection: the numbered leading
// free arguments, every group in usage order with its values (or whether it was
// set), then the numbered trailing free and unknown arguments.
func (p *Parser) PrettyPrint() string {
	var sb strings.Builder

	sb.WriteString(p.msg(types.MsgFirstArgsKey))
	sb.WriteString("\n")
	writeNumbered(&sb, p.firstArgs)

	sb.WriteString("\n")
	sb.WriteString(p.msg(types.MsgOptionsTitleKey))
	sb.WriteString("\n")
	for _, group := range p.sortedGroups() {
		sb.WriteString("\n")
		sb.WriteString(strings.Join(SortFlags(group.flags), ", "))
		sb.WriteString(":\n")

		switch {
		case !group.isSet:
			sb.WriteString(p.msg(types.MsgNotSetKey))
			sb.WriteString("\n")
		case group.expectArgs == 0:
			sb.WriteString(p.msg(types.MsgSetKey))
			sb.WriteString("\n")
		case len(group.args) == 0:
			fmt.Fprintf(&sb, "%s %s\n", group.defaults, p.msg(types.MsgDefaultKey))
		default:
			for _, values := range group.args {
				sb.WriteString(strings.Join(values, delimString(group.delim)))
				sb.WriteString("\n")
			}
		}
	}

	sb.WriteString("\n")
	sb.WriteString(p.msg(types.MsgLastArgsKey))
	sb.WriteString("\n")
	writeNumbered(&sb, p.lastArgs)

	sb.WriteString("\n")
	sb.WriteString(p.msg(types.MsgUnknownArgsKey))
	sb.WriteString("\n")
	writeNumbered(&sb, p.unknownArgs)

	return sb.String()
}

func writeNumbered(sb *strings.Builder, args []string) {
	for i, arg := range args {
		fmt.Fprintf(sb, "%d: %s\n", i+1, arg)
	}
}
