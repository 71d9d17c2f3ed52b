package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "simple command",
			input: "prog -v --size 3",
			want:  []string{"prog", "-v", "--size", "3"},
		},
		{
			name:  "quoted arguments",
			input: `prog --name "hello world" 'x y'`,
			want:  []string{"prog", "--name", "hello world", "x y"},
		},
		{
			name:  "escaped quotes",
			input: `echo \"hello\"`,
			want:  []string{"echo", `"hello"`},
		},
		{
			name:    "unterminated quote",
			input:   `prog "open`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestState(t *testing.T) {
	s := NewState([]string{"a", "b"})
	assert.Equal(t, -1, s.Pos())
	assert.Equal(t, "", s.CurrentArg())

	next, ok := s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", next)

	assert.True(t, s.Advance())
	assert.Equal(t, "a", s.CurrentArg())
	assert.True(t, s.Advance())
	assert.Equal(t, "b", s.CurrentArg())
	_, ok = s.Peek()
	assert.False(t, ok)
	assert.False(t, s.Advance())
	assert.Equal(t, 1, s.Pos())

	s.SetPos(0)
	assert.Equal(t, "a", s.CurrentArg())
	next, ok = s.Peek()
	assert.True(t, ok)
	assert.Equal(t, "b", next)
	assert.Equal(t, 0, s.Pos())
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comment lines dropped",
			input: "# header\n  # indented\n--size 3\n",
			want:  []string{"--size 3"},
		},
		{
			name:  "trailing comment removed",
			input: "--size 3 # the size",
			want:  []string{"--size 3 "},
		},
		{
			name:  "comment inside double quotes kept",
			input: `--name "a # b" # c`,
			want:  []string{`--name "a # b" `},
		},
		{
			name:  "comment inside single quotes kept",
			input: `--name 'a#b'`,
			want:  []string{`--name 'a#b'`},
		},
		{
			name:  "escaped comment kept",
			input: `--tag a\#b`,
			want:  []string{`--tag a\#b`},
		},
		{
			name:  "leading whitespace and carriage returns trimmed",
			input: "\t\r --a\r\n\n   \n--b",
			want:  []string{"--a\r", "--b"},
		},
		{
			name:  "mixed quote kinds",
			input: `--x 'it' "a#b" #gone`,
			want:  []string{`--x 'it' "a#b" `},
		},
		{
			name:  "apostrophe inside double quotes",
			input: `--name "it's # here" # gone`,
			want:  []string{`--name "it's # here" `},
		},
		{
			name:  "double quote inside single quotes",
			input: `--name 'say "hi" #1' # gone`,
			want:  []string{`--name 'say "hi" #1' `},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComments(tt.input, DefaultComment))
		})
	}

	assert.Equal(t, []string{"--a 1 "}, StripComments("; note\n--a 1 ; trailing", ';'))
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []string
		complete bool
	}{
		{"whitespace", " a\tb \r\nc ", []string{"a", "b", "c"}, true},
		{"double quotes", `--name "hello world"`, []string{"--name", "hello world"}, true},
		{"single quotes", `'x y' z`, []string{"x y", "z"}, true},
		{"empty quoted token", `--name "" next`, []string{"--name", "", "next"}, true},
		{"quote joins adjacent text", `ab"c d"e`, []string{"abc de"}, true},
		{"apostrophe inside double quotes", `"it's" x`, []string{"it's", "x"}, true},
		{"double quote inside single quotes", `'say "hi"' -v`, []string{`say "hi"`, "-v"}, true},
		{"mixed spans join", `"a'b"'"c'`, []string{`a'b"c`}, true},
		{"unterminated quote", `"open text`, []string{"open text"}, false},
		{"stray apostrophe", `--name it's -v --tag x`, []string{"--name", "its -v --tag x"}, false},
		{"nothing", "   ", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, complete := Tokenize(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.complete, complete)
		})
	}
}

func TestJoinLines(t *testing.T) {
	assert.Equal(t, "--a 1 --b ", JoinLines([]string{"--a 1", "--b"}))
	assert.Equal(t, "", JoinLines(nil))
}
