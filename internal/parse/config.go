package parse

import (
	"strings"

	"github.com/napalu/ezopt/internal/util"
)

// DefaultComment is the line comment marker of configuration text
const DefaultComment = '#'

// StripComments splits text into lines and removes comments from each of
// them. Leading whitespace is trimmed, lines starting with comment are dropped
// and the remaining lines are cut at the first comment character which is
// neither preceded by a backslash nor inside a single or double quoted span.
// A quoted span ends at the next quote of the kind that opened it. Lines that
// end up empty are omitted.
func StripComments(text string, comment rune) []string {
	lines := util.SplitDelim(text, '\n')
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimLeft(line, " \t\r")
		if line == "" || []rune(line)[0] == comment {
			continue
		}

		if line = truncateComment([]rune(line), comment); line != "" {
			out = append(out, line)
		}
	}

	return out
}

// JoinLines simulates a single command line from preprocessed lines
func JoinLines(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte(' ')
	}

	return sb.String()
}

func truncateComment(line []rune, comment rune) string {
	var open rune
	for i, r := range line {
		switch {
		case open != 0:
			if r == open {
				open = 0
			}
		case r == '"' || r == '\'':
			open = r
		case r == comment && i > 0 && line[i-1] != '\\':
			return string(line[:i])
		}
	}

	return string(line)
}

// Tokenize splits a simulated command line into tokens. Whitespace separates
// tokens outside quotes. A single or double quote opens a quoted span which
// only the same kind of quote closes, so the other kind is literal inside it;
// quotes are removed and an empty quoted span yields an empty token. The
// second result is false when the text ends inside a quoted span.
func Tokenize(cmd string) ([]string, bool) {
	var (
		tokens  []string
		current strings.Builder
		open    rune
		inToken bool
	)

	for _, r := range cmd {
		if open != 0 {
			if r == open {
				open = 0
			} else {
				current.WriteRune(r)
			}
			continue
		}

		switch r {
		case '"', '\'':
			open, inToken = r, true
		case ' ', '\t', '\n', '\r':
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
			}
			inToken = false
		default:
			inToken = true
			current.WriteRune(r)
		}
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, open == 0
}
