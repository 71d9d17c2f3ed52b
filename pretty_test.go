package ezopt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_PrettyPrint(t *testing.T) {
	p := newTestParser(t)
	require.True(t, p.Parse([]string{"prog", "-v", "stray", "-d", "1,2,3", "-d", "4,5,6", "out.png"}))

	want := "First Args:\n" +
		"1: prog\n" +
		"\nOptions:\n" +
		"\n-d, --dimension:\n1,2,3\n4,5,6\n" +
		"\n-n, --name:\nNot set\n" +
		"\n-v:\nSet\n" +
		"\n--level:\nNot set\n" +
		"\n--tag:\nNot set\n" +
		"\nLast Args:\n" +
		"1: out.png\n" +
		"\nUnknown Args:\n" +
		"1: stray\n"
	assert.Equal(t, want, p.PrettyPrint())
}
